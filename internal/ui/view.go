package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/faizmokh/workwise/internal/distraction"
	"github.com/faizmokh/workwise/internal/session"
)

const reportBarWidth = 30

// View renders the frame.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(m.renderTabs())
	b.WriteString("\n\n")

	switch m.active {
	case tabHome:
		b.WriteString(m.renderHome())
	case tabHistory:
		b.WriteString(m.viewport.View())
	case tabReport:
		b.WriteString(m.renderReport())
	case tabHelp:
		b.WriteString(m.help.FullHelpView(keys.FullHelp()))
	}
	b.WriteString("\n\n")

	if m.errorLine != "" {
		b.WriteString(styleError.Render("! " + m.errorLine))
		b.WriteByte('\n')
	} else if m.statusLine != "" {
		b.WriteString(styleStatus.Render(m.statusLine))
		b.WriteByte('\n')
	}

	if m.active != tabHelp {
		b.WriteString(m.help.View(keys))
		b.WriteByte('\n')
	}

	return b.String()
}

func (m Model) renderTabs() string {
	rendered := make([]string, 0, len(tabNames))
	for i, name := range tabNames {
		if tab(i) == m.active {
			rendered = append(rendered, styleTabActive.Render(name))
		} else {
			rendered = append(rendered, styleTab.Render(name))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
}

func (m Model) renderHome() string {
	timer := m.session.Timer()

	var b strings.Builder
	b.WriteString(styleClock.Render(session.FormatClock(timer.Remaining())))
	b.WriteString(fmt.Sprintf("  %d min  %s\n", m.minutes, timer.State()))
	b.WriteString(m.progress.ViewAs(timer.Progress()))
	b.WriteString("\n\n")

	if m.completed {
		b.WriteString(styleCompleted.Render("Session Completed!"))
		b.WriteByte('\n')
		b.WriteString(renderSessionNotes(m.sessionNotes))
		b.WriteByte('\n')
	}

	b.WriteString("Category: ")
	b.WriteString(styleCategory.Render(string(m.category)))
	b.WriteByte('\n')
	b.WriteString(stylePanel.Render(m.note.View()))
	return b.String()
}

func renderSessionNotes(notes []distraction.Entry) string {
	if len(notes) == 0 {
		return "No distractions logged this session."
	}
	blocks := make([]string, 0, len(notes))
	for _, note := range notes {
		blocks = append(blocks, fmt.Sprintf("%s: %s", styleCategory.Render(string(note.Category)), note.Note))
	}
	return strings.Join(blocks, "\n\n")
}

func renderHistory(snapshot distraction.Snapshot) string {
	if snapshot.Empty() {
		return "No distractions logged."
	}
	lines := make([]string, 0, len(snapshot.Entries))
	for _, entry := range snapshot.Entries {
		lines = append(lines, entry.String())
	}
	return strings.Join(lines, "\n")
}

func (m Model) renderReport() string {
	windows := distraction.Windows()
	selected := windows[m.windowIndex]

	var b strings.Builder
	b.WriteString("Window: ")
	for i, w := range windows {
		if i == m.windowIndex {
			b.WriteString(styleTabActive.Render(w.Label))
		} else {
			b.WriteString(styleTab.Render(w.Label))
		}
	}
	b.WriteString("\n\n")

	switch {
	case m.reportFailed:
		b.WriteString(readErrorMessage)
	case m.report == nil:
		b.WriteString("Press enter to generate the report.")
	case m.reportMissing:
		b.WriteString("No distractions to report.")
	default:
		if m.report.Window != selected {
			b.WriteString(styleStatus.Render(fmt.Sprintf("(showing %s, press enter to refresh)", m.report.Window)))
			b.WriteByte('\n')
		}
		b.WriteString(renderBars(*m.report))
	}
	return b.String()
}

func renderBars(report distraction.Report) string {
	var b strings.Builder
	highest := report.Max()
	for _, c := range distraction.Categories() {
		count := report.Count(c)
		width := 0
		if highest > 0 && count > 0 {
			width = count * reportBarWidth / highest
			if width == 0 {
				width = 1
			}
		}
		b.WriteString(styleLabel.Render(string(c)))
		b.WriteString(styleBar.Render(strings.Repeat("█", width)))
		b.WriteString(fmt.Sprintf(" %d\n", count))
	}
	b.WriteString(fmt.Sprintf("%s%d", styleLabel.Render("Total"), report.Total))
	if report.Skipped > 0 {
		b.WriteString(fmt.Sprintf("\n(%d unreadable entr%s skipped)", report.Skipped, plural(report.Skipped)))
	}
	return b.String()
}
