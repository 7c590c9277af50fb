package ui

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/faizmokh/workwise/internal/config"
	"github.com/faizmokh/workwise/internal/distraction"
	"github.com/faizmokh/workwise/internal/session"
)

// tickInterval and writeClipboard are swapped by tests.
var (
	tickInterval   = time.Second
	writeClipboard = clipboard.WriteAll
)

const readErrorMessage = "Unable to read JSON."

type tab uint8

const (
	tabHome tab = iota
	tabHistory
	tabReport
	tabHelp
)

var tabNames = []string{"Home", "History", "Report", "Help"}

// Model owns Bubble Tea state for the main TUI experience.
type Model struct {
	ctx     context.Context
	journal *distraction.Log
	session *session.Session

	active       tab
	minutes      int
	handle       session.Handle
	category     distraction.Category
	completed    bool
	sessionNotes []distraction.Entry

	historyLimit  int
	history       distraction.Snapshot
	confirmClear  bool
	windowIndex   int
	report        *distraction.Report
	reportMissing bool
	reportFailed  bool

	note     textarea.Model
	viewport viewport.Model
	progress progress.Model
	help     help.Model

	width      int
	height     int
	statusLine string
	errorLine  string
}

type tickMsg struct {
	handle session.Handle
}

type appendResultMsg struct {
	entry distraction.Entry
	err   error
}

type historyLoadedMsg struct {
	snapshot distraction.Snapshot
	err      error
}

type clearResultMsg struct {
	err error
}

type copyResultMsg struct {
	count int
	err   error
}

type reportResultMsg struct {
	report distraction.Report
	err    error
}

// NewModel seeds a Bubble Tea model with required collaborators.
func NewModel(ctx context.Context, journal *distraction.Log, cfg *config.Config) Model {
	if cfg == nil {
		cfg = config.Default()
	}

	note := textarea.New()
	note.Placeholder = "What pulled your attention away?"
	note.ShowLineNumbers = false
	note.CharLimit = 0
	note.MaxWidth = 0
	note.SetHeight(3)
	note.SetWidth(60)

	bar := progress.New(progress.WithDefaultGradient())
	bar.Width = 40

	return Model{
		ctx:          ctx,
		journal:      journal,
		session:      session.New(),
		minutes:      cfg.SessionMinutes,
		category:     distraction.CategoryFuture,
		historyLimit: cfg.HistoryLimit,
		note:         note,
		viewport:     viewport.New(80, 15),
		progress:     bar,
		help:         help.New(),
		statusLine:   "Press s to start a session.",
	}
}

// Init loads the history so the History tab opens populated.
func (m Model) Init() tea.Cmd {
	return m.loadHistoryCmd()
}

// Update wires TUI state transitions from user input and async commands.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleResize(msg)
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tickMsg:
		return m.handleTick(msg)
	case appendResultMsg:
		return m.handleAppendResult(msg)
	case historyLoadedMsg:
		return m.handleHistoryLoaded(msg)
	case clearResultMsg:
		return m.handleClearResult(msg)
	case copyResultMsg:
		return m.handleCopyResult(msg)
	case reportResultMsg:
		return m.handleReportResult(msg)
	}

	if m.note.Focused() {
		var cmd tea.Cmd
		m.note, cmd = m.note.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height

	inner := msg.Width - 4
	if inner < 20 {
		inner = 20
	}
	m.note.SetWidth(inner)
	m.progress.Width = inner
	m.viewport.Width = inner
	if h := msg.Height - 8; h > 3 {
		m.viewport.Height = h
	}
	m.help.Width = msg.Width
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.note.Focused() {
		return m.handleNoteKey(msg)
	}
	if m.confirmClear {
		return m.handleConfirmKey(msg)
	}

	switch {
	case key.Matches(msg, keys.Quit):
		m.session.Stop()
		return m, tea.Quit
	case key.Matches(msg, keys.NextTab):
		return m.switchTab((m.active + 1) % tab(len(tabNames)))
	case key.Matches(msg, keys.PrevTab):
		return m.switchTab((m.active + tab(len(tabNames)) - 1) % tab(len(tabNames)))
	}

	switch m.active {
	case tabHome:
		return m.handleHomeKey(msg)
	case tabHistory:
		return m.handleHistoryKey(msg)
	case tabReport:
		return m.handleReportKey(msg)
	}
	return m, nil
}

func (m Model) switchTab(next tab) (tea.Model, tea.Cmd) {
	m.active = next
	m.errorLine = ""
	m.statusLine = ""
	if next == tabHistory {
		m.statusLine = "Loading history..."
		return m, m.loadHistoryCmd()
	}
	return m, nil
}

func (m Model) handleHomeKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Start):
		return m.startSession()
	case key.Matches(msg, keys.Stop):
		return m.stopSession()
	case key.Matches(msg, keys.Length):
		if m.session.Timer().Running() {
			m.errorLine = "Stop the session before changing its length."
			return m, nil
		}
		if m.minutes == session.ShortMinutes {
			m.minutes = session.LongMinutes
		} else {
			m.minutes = session.ShortMinutes
		}
		m.errorLine = ""
		m.statusLine = fmt.Sprintf("Session length: %d minutes.", m.minutes)
	case key.Matches(msg, keys.Category):
		m.category = m.category.Next()
		m.errorLine = ""
		m.statusLine = fmt.Sprintf("Category: %s", m.category)
	case key.Matches(msg, keys.Note):
		m.errorLine = ""
		m.statusLine = "Writing note. Ctrl+S saves, Esc leaves."
		return m, m.note.Focus()
	}
	return m, nil
}

func (m Model) handleNoteKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case msg.String() == "ctrl+c":
		m.session.Stop()
		return m, tea.Quit
	case key.Matches(msg, keys.Save):
		return m.saveNote()
	case key.Matches(msg, keys.Leave):
		m.note.Blur()
		m.statusLine = ""
		return m, nil
	}

	var cmd tea.Cmd
	m.note, cmd = m.note.Update(msg)
	return m, cmd
}

func (m Model) startSession() (tea.Model, tea.Cmd) {
	handle, started, err := m.session.Start(m.minutes)
	if err != nil {
		m.errorLine = err.Error()
		return m, nil
	}
	if !started {
		m.errorLine = ""
		m.statusLine = "Session already running."
		return m, nil
	}

	m.handle = handle
	m.completed = false
	m.sessionNotes = nil
	m.errorLine = ""
	m.statusLine = fmt.Sprintf("Session started: %d minutes", m.minutes)
	log.Printf("session started: %d minutes", m.minutes)
	return m, firstTick(handle)
}

func (m Model) stopSession() (tea.Model, tea.Cmd) {
	wasRunning := m.session.Timer().Running()
	m.session.Stop()
	m.handle = session.Handle{}
	m.completed = false
	m.errorLine = ""
	if wasRunning {
		m.statusLine = "Session stopped."
		log.Printf("session stopped")
	} else {
		m.statusLine = "No session running."
	}
	return m, nil
}

func (m Model) handleTick(msg tickMsg) (tea.Model, tea.Cmd) {
	event := m.session.Tick(msg.handle)
	switch event.Type {
	case session.EventProgress:
		return m, scheduleTick(msg.handle)
	case session.EventCompleted:
		m.completed = true
		m.sessionNotes = event.Notes
		m.handle = session.Handle{}
		m.errorLine = ""
		m.statusLine = "Session Completed!"
		log.Printf("session completed with %d note(s)", len(event.Notes))
	}
	return m, nil
}

func (m Model) saveNote() (tea.Model, tea.Cmd) {
	text := m.note.Value()
	if strings.TrimSpace(text) == "" {
		m.errorLine = distraction.ErrEmptyNote.Error()
		return m, nil
	}
	m.errorLine = ""
	m.statusLine = "Saving note..."
	return m, m.appendCmd(m.category, text)
}

func (m Model) handleAppendResult(msg appendResultMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		m.statusLine = ""
		m.errorLine = describeError(msg.err)
		return m, nil
	}

	m.session.Record(msg.entry)
	m.note.Reset()
	m.note.Blur()
	m.errorLine = ""
	m.statusLine = fmt.Sprintf("Saved %s", msg.entry)
	return m, nil
}

func (m Model) handleHistoryKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Reload):
		m.statusLine = "Refreshing history..."
		return m, m.loadHistoryCmd()
	case key.Matches(msg, keys.Clear):
		m.confirmClear = true
		m.errorLine = ""
		m.statusLine = "Clear all history? (y/n)"
		return m, nil
	case key.Matches(msg, keys.Copy):
		if m.history.Empty() {
			m.statusLine = "Nothing to copy."
			return m, nil
		}
		return m, copyCmd(m.history.Entries)
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m Model) handleConfirmKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y":
		m.confirmClear = false
		m.statusLine = "Clearing history..."
		return m, m.clearCmd()
	case "n", "N", "esc":
		m.confirmClear = false
		m.statusLine = "Clear cancelled."
	case "ctrl+c":
		m.session.Stop()
		return m, tea.Quit
	}
	return m, nil
}

func (m Model) handleHistoryLoaded(msg historyLoadedMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		m.statusLine = ""
		m.errorLine = describeError(msg.err)
		return m, nil
	}

	m.history = msg.snapshot
	if msg.snapshot.Status == distraction.StatusCorrupt {
		log.Printf("history: %v", msg.snapshot.Err)
	}
	m.viewport.SetContent(renderHistory(m.history))
	m.viewport.GotoBottom()
	if m.active == tabHistory {
		m.statusLine = fmt.Sprintf("%d entr%s.", len(m.history.Entries), plural(len(m.history.Entries)))
	}
	return m, nil
}

func (m Model) handleClearResult(msg clearResultMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		m.statusLine = ""
		m.errorLine = describeError(msg.err)
		return m, nil
	}
	m.history = distraction.Snapshot{Status: distraction.StatusMissing}
	m.viewport.SetContent(renderHistory(m.history))
	m.report = nil
	m.errorLine = ""
	m.statusLine = "History cleared."
	return m, nil
}

func (m Model) handleCopyResult(msg copyResultMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		m.statusLine = ""
		m.errorLine = fmt.Sprintf("copy failed: %v", msg.err)
		return m, nil
	}
	m.errorLine = ""
	m.statusLine = fmt.Sprintf("Copied %d entr%s to the clipboard.", msg.count, plural(msg.count))
	return m, nil
}

func (m Model) handleReportKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	windows := distraction.Windows()
	switch {
	case key.Matches(msg, keys.Left):
		m.windowIndex = (m.windowIndex + len(windows) - 1) % len(windows)
		m.statusLine = fmt.Sprintf("Window: %s", windows[m.windowIndex])
	case key.Matches(msg, keys.Right):
		m.windowIndex = (m.windowIndex + 1) % len(windows)
		m.statusLine = fmt.Sprintf("Window: %s", windows[m.windowIndex])
	case key.Matches(msg, keys.Generate):
		m.errorLine = ""
		m.statusLine = "Generating report..."
		return m, m.reportCmd(windows[m.windowIndex])
	}
	return m, nil
}

func (m Model) handleReportResult(msg reportResultMsg) (tea.Model, tea.Cmd) {
	m.reportFailed = false
	m.reportMissing = false
	if msg.err != nil {
		m.report = nil
		m.statusLine = ""
		m.errorLine = describeError(msg.err)
		var readErr *distraction.ReadError
		m.reportFailed = errors.As(msg.err, &readErr)
		return m, nil
	}

	report := msg.report
	m.report = &report
	m.reportMissing = report.Status == distraction.StatusMissing
	m.errorLine = ""
	m.statusLine = fmt.Sprintf("%d distraction%s in %s.", report.Total, pluralS(report.Total), report.Window)
	return m, nil
}

// firstTick delivers the opening tick without waiting an interval.
func firstTick(handle session.Handle) tea.Cmd {
	return func() tea.Msg {
		return tickMsg{handle: handle}
	}
}

func scheduleTick(handle session.Handle) tea.Cmd {
	return tea.Tick(tickInterval, func(time.Time) tea.Msg {
		return tickMsg{handle: handle}
	})
}

func (m Model) appendCmd(category distraction.Category, text string) tea.Cmd {
	journal := m.journal
	ctx := m.ctx
	return func() tea.Msg {
		entry, err := journal.Append(ctx, category, text)
		if err != nil {
			return appendResultMsg{err: err}
		}
		return appendResultMsg{entry: entry}
	}
}

func (m Model) loadHistoryCmd() tea.Cmd {
	journal := m.journal
	ctx := m.ctx
	limit := m.historyLimit
	return func() tea.Msg {
		snapshot, err := journal.Recent(ctx, limit)
		if err != nil {
			return historyLoadedMsg{err: err}
		}
		return historyLoadedMsg{snapshot: snapshot}
	}
}

func (m Model) clearCmd() tea.Cmd {
	journal := m.journal
	ctx := m.ctx
	return func() tea.Msg {
		return clearResultMsg{err: journal.Clear(ctx)}
	}
}

func (m Model) reportCmd(window distraction.Window) tea.Cmd {
	journal := m.journal
	ctx := m.ctx
	return func() tea.Msg {
		report, err := journal.Aggregate(ctx, window)
		if err != nil {
			return reportResultMsg{err: err}
		}
		return reportResultMsg{report: report}
	}
}

func copyCmd(entries []distraction.Entry) tea.Cmd {
	lines := make([]string, 0, len(entries))
	for _, entry := range entries {
		lines = append(lines, entry.String())
	}
	return func() tea.Msg {
		if err := writeClipboard(strings.Join(lines, "\n")); err != nil {
			return copyResultMsg{err: err}
		}
		return copyResultMsg{count: len(lines)}
	}
}

func describeError(err error) string {
	var readErr *distraction.ReadError
	if errors.As(err, &readErr) {
		log.Printf("read %s: %v", readErr.Path, readErr.Err)
		return readErrorMessage
	}
	return err.Error()
}

func plural(count int) string {
	if count == 1 {
		return "y"
	}
	return "ies"
}

func pluralS(count int) string {
	if count == 1 {
		return ""
	}
	return "s"
}
