package ui

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/faizmokh/workwise/internal/config"
	"github.com/faizmokh/workwise/internal/distraction"
	"github.com/faizmokh/workwise/internal/session"
)

func newTestModel(t *testing.T) (Model, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "distractions.json")
	return NewModel(context.Background(), distraction.NewLog(path), config.Default()), path
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	model, ok := next.(Model)
	require.True(t, ok, "Update returned %T", next)
	return model, cmd
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestStartSchedulesOneTick(t *testing.T) {
	m, _ := newTestModel(t)

	m, cmd := update(t, m, runes("s"))
	require.NotNil(t, cmd)
	require.True(t, m.session.Timer().Running())
	require.Equal(t, 25*60, m.session.Timer().Remaining())
	require.Equal(t, "Session started: 25 minutes", m.statusLine)
	first := m.handle

	msg := cmd()
	require.Equal(t, tickMsg{handle: first}, msg)
	m, cmd = update(t, m, msg)
	require.NotNil(t, cmd)
	require.Equal(t, 25*60-1, m.session.Timer().Remaining())

	m, cmd = update(t, m, runes("s"))
	require.Nil(t, cmd)
	require.Equal(t, "Session already running.", m.statusLine)
	require.Equal(t, first, m.handle)
}

func TestTickAdvancesAndReschedules(t *testing.T) {
	m, _ := newTestModel(t)
	m, _ = update(t, m, runes("s"))

	m, cmd := update(t, m, tickMsg{handle: m.handle})
	require.NotNil(t, cmd)
	require.Equal(t, 25*60-1, m.session.Timer().Remaining())
}

func TestStaleTickAfterStopIsIgnored(t *testing.T) {
	m, _ := newTestModel(t)
	m, _ = update(t, m, runes("s"))
	stale := m.handle

	m, _ = update(t, m, runes("x"))
	require.Equal(t, "Session stopped.", m.statusLine)
	require.Contains(t, m.View(), "00:00")

	m, cmd := update(t, m, tickMsg{handle: stale})
	require.Nil(t, cmd)
	require.Equal(t, 0, m.session.Timer().Remaining())
	require.Equal(t, session.StateIdle, m.session.Timer().State())
}

func TestLengthToggleRequiresIdle(t *testing.T) {
	m, _ := newTestModel(t)

	m, _ = update(t, m, runes("d"))
	require.Equal(t, session.LongMinutes, m.minutes)

	m, _ = update(t, m, runes("s"))
	require.Equal(t, 50*60, m.session.Timer().Remaining())

	m, _ = update(t, m, runes("d"))
	require.Equal(t, session.LongMinutes, m.minutes)
	require.Contains(t, m.errorLine, "Stop the session")
}

func TestSaveEmptyNoteShowsValidation(t *testing.T) {
	m, path := newTestModel(t)

	m, _ = update(t, m, runes("i"))
	require.True(t, m.note.Focused())

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})
	require.Nil(t, cmd)
	require.Contains(t, m.errorLine, "please enter a note before saving")

	_, err := os.Stat(path)
	require.True(t, errors.Is(err, os.ErrNotExist))
}

func TestSaveNoteAppendsAndRecords(t *testing.T) {
	m, path := newTestModel(t)

	m, _ = update(t, m, runes("c"))
	require.Equal(t, distraction.CategoryPast, m.category)

	m, _ = update(t, m, runes("i"))
	m, _ = update(t, m, runes("old argument"))
	require.Equal(t, "old argument", m.note.Value())

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})
	require.NotNil(t, cmd)

	m, _ = update(t, m, cmd())
	require.Empty(t, m.errorLine)
	require.False(t, m.note.Focused())
	require.Empty(t, m.note.Value())
	require.Len(t, m.session.Notes(), 1)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(data), `"category": "Past"`)
	require.Contains(t, string(data), `"note": "old argument"`)
}

func TestCompletionShowsSessionNotes(t *testing.T) {
	m, _ := newTestModel(t)
	m, _ = update(t, m, runes("s"))

	m, _ = update(t, m, appendResultMsg{entry: distraction.Entry{
		Timestamp: "2024-05-01T10:00:00Z",
		Category:  distraction.CategoryFuture,
		Note:      "weekend plans",
	}})

	var cmd tea.Cmd
	for i := 0; i < 25*60; i++ {
		m, cmd = update(t, m, tickMsg{handle: m.handle})
		require.NotNil(t, cmd)
	}
	handle := m.handle
	m, cmd = update(t, m, tickMsg{handle: handle})
	require.Nil(t, cmd)
	require.True(t, m.completed)

	view := m.View()
	require.Contains(t, view, "Session Completed!")
	require.Contains(t, view, "Future: weekend plans")
	require.Empty(t, m.session.Notes())
}

func TestHistoryClearNeedsConfirmation(t *testing.T) {
	m, path := newTestModel(t)
	_, err := m.journal.Append(context.Background(), distraction.CategoryWishes, "a quiet cabin")
	require.NoError(t, err)

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyTab})
	require.Equal(t, tabHistory, m.active)
	require.NotNil(t, cmd)
	m, _ = update(t, m, cmd())
	require.Contains(t, m.View(), "Wishes/Imagination -> a quiet cabin")

	m, _ = update(t, m, runes("C"))
	require.True(t, m.confirmClear)
	m, cmd = update(t, m, runes("n"))
	require.Nil(t, cmd)
	require.False(t, m.confirmClear)
	_, err = os.Stat(path)
	require.NoError(t, err)

	m, _ = update(t, m, runes("C"))
	m, cmd = update(t, m, runes("y"))
	require.NotNil(t, cmd)
	m, _ = update(t, m, cmd())
	require.Equal(t, "History cleared.", m.statusLine)
	require.Contains(t, m.View(), "No distractions logged.")

	_, err = os.Stat(path)
	require.True(t, errors.Is(err, os.ErrNotExist))
}

func TestHistoryCopyUsesClipboard(t *testing.T) {
	var copied string
	prev := writeClipboard
	writeClipboard = func(text string) error {
		copied = text
		return nil
	}
	t.Cleanup(func() { writeClipboard = prev })

	m, _ := newTestModel(t)
	for _, note := range []string{"one", "two"} {
		_, err := m.journal.Append(context.Background(), distraction.CategoryFuture, note)
		require.NoError(t, err)
	}

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyTab})
	m, _ = update(t, m, cmd())

	m, cmd = update(t, m, runes("y"))
	require.NotNil(t, cmd)
	m, _ = update(t, m, cmd())

	require.Equal(t, "Copied 2 entries to the clipboard.", m.statusLine)
	lines := strings.Split(copied, "\n")
	require.Len(t, lines, 2)
	require.True(t, strings.HasSuffix(lines[0], "Future -> one"))
	require.True(t, strings.HasSuffix(lines[1], "Future -> two"))
}

func TestReportCorruptJournal(t *testing.T) {
	m, path := newTestModel(t)
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyShiftTab})
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyShiftTab})
	require.Equal(t, tabReport, m.active)

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	m, _ = update(t, m, cmd())

	require.Equal(t, readErrorMessage, m.errorLine)
	require.Contains(t, m.View(), readErrorMessage)
}

func TestReportCountsSelectedWindow(t *testing.T) {
	m, _ := newTestModel(t)
	for _, c := range []distraction.Category{distraction.CategoryPast, distraction.CategoryPast, distraction.CategoryFuture} {
		_, err := m.journal.Append(context.Background(), c, "note")
		require.NoError(t, err)
	}

	m.active = tabReport
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRight})
	require.Equal(t, 1, m.windowIndex)

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m, _ = update(t, m, cmd())

	require.NotNil(t, m.report)
	require.Equal(t, distraction.Window7Days, m.report.Window)
	require.Equal(t, 2, m.report.Count(distraction.CategoryPast))
	require.Equal(t, 1, m.report.Count(distraction.CategoryFuture))
	require.Equal(t, "3 distractions in 7 Days.", m.statusLine)
}

func TestReportWithoutJournal(t *testing.T) {
	m, _ := newTestModel(t)
	m.active = tabReport

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m, _ = update(t, m, cmd())

	require.Contains(t, m.View(), "No distractions to report.")
}

func TestQuitStopsSession(t *testing.T) {
	m, _ := newTestModel(t)
	m, _ = update(t, m, runes("s"))

	m, cmd := update(t, m, runes("q"))
	require.NotNil(t, cmd)
	require.Equal(t, session.StateIdle, m.session.Timer().State())
}

func TestLongNotesAreNotTruncated(t *testing.T) {
	m, path := newTestModel(t)
	long := strings.Repeat("wandering thoughts ", 60)

	m, _ = update(t, m, runes("i"))
	m, _ = update(t, m, runes(long))
	require.Equal(t, long, m.note.Value())

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})
	require.NotNil(t, cmd)
	m, _ = update(t, m, cmd())
	require.Empty(t, m.errorLine)

	snapshot, err := m.journal.Recent(context.Background(), 0)
	require.NoError(t, err)
	require.Len(t, snapshot.Entries, 1)
	require.Equal(t, strings.TrimSpace(long), snapshot.Entries[0].Note)
	require.FileExists(t, path)
}
