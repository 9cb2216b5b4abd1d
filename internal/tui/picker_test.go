package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

var pickerLines = []string{
	"ID       DATE    TIME    COMMAND",
	"3        09/04   11:52   git status",
	"2        09/04   11:51   make test",
	"1        09/04   11:50   ls -la",
}

func keyPress(t *testing.T, m PickerModel, key tea.KeyType) PickerModel {
	t.Helper()
	updated, _ := m.Update(tea.KeyMsg{Type: key})
	next, ok := updated.(PickerModel)
	if !ok {
		t.Fatalf("Update() returned %T, want PickerModel", updated)
	}
	return next
}

func TestPicker_EnterSelectsCursorLine(t *testing.T) {
	m := NewPickerModel(pickerLines, "", "ctrl-x")

	m = keyPress(t, m, tea.KeyEnter)

	if !m.Confirmed {
		t.Fatal("model not confirmed after enter")
	}
	want := "\n3        09/04   11:52   git status\n"
	if got := m.Output(); got != want {
		t.Errorf("Output() = %q, want %q", got, want)
	}
}

func TestPicker_CtrlXReportsExecuteKey(t *testing.T) {
	m := NewPickerModel(pickerLines, "", "ctrl-x")

	m = keyPress(t, m, tea.KeyCtrlX)

	out := m.Output()
	if !strings.HasPrefix(out, "ctrl-x\n") {
		t.Errorf("Output() = %q, want execute key on first line", out)
	}
}

func TestPicker_CtrlXIgnoredWithoutExecuteKey(t *testing.T) {
	m := NewPickerModel(pickerLines, "", "")

	m = keyPress(t, m, tea.KeyCtrlX)

	if m.Confirmed || m.DidQuit() {
		t.Error("ctrl+x must be inert when no execute key is configured")
	}
}

func TestPicker_TabMultiSelectPreservesOrder(t *testing.T) {
	m := NewPickerModel(pickerLines, "", "ctrl-x")

	// Toggle the first two candidates, then confirm.
	m = keyPress(t, m, tea.KeyTab)
	m = keyPress(t, m, tea.KeyTab)
	m = keyPress(t, m, tea.KeyEnter)

	want := "\n3        09/04   11:52   git status\n2        09/04   11:51   make test\n"
	if got := m.Output(); got != want {
		t.Errorf("Output() = %q, want %q", got, want)
	}
}

func TestPicker_CursorMovement(t *testing.T) {
	m := NewPickerModel(pickerLines, "", "ctrl-x")

	m = keyPress(t, m, tea.KeyDown)
	m = keyPress(t, m, tea.KeyDown)
	m = keyPress(t, m, tea.KeyUp)
	m = keyPress(t, m, tea.KeyEnter)

	want := "\n2        09/04   11:51   make test\n"
	if got := m.Output(); got != want {
		t.Errorf("Output() = %q, want %q", got, want)
	}
}

func TestPicker_EscQuits(t *testing.T) {
	m := NewPickerModel(pickerLines, "", "ctrl-x")

	m = keyPress(t, m, tea.KeyEsc)

	if !m.DidQuit() {
		t.Error("DidQuit() = false after esc")
	}
	if m.Output() != "" {
		t.Errorf("Output() = %q, want empty after abort", m.Output())
	}
}

func TestPicker_FilterNarrowsCandidates(t *testing.T) {
	m := NewPickerModel(pickerLines, "make", "ctrl-x")

	if len(m.Filtered) != 1 {
		t.Fatalf("Filtered = %v, want exactly the make line", m.Filtered)
	}

	m = keyPress(t, m, tea.KeyEnter)

	want := "\n2        09/04   11:51   make test\n"
	if got := m.Output(); got != want {
		t.Errorf("Output() = %q, want %q", got, want)
	}
}

func TestPicker_EnterWithNoMatchesQuits(t *testing.T) {
	m := NewPickerModel(pickerLines, "zzz-no-match", "ctrl-x")

	m = keyPress(t, m, tea.KeyEnter)

	if m.Confirmed {
		t.Error("confirmed with no matching candidates")
	}
	if !m.DidQuit() {
		t.Error("DidQuit() = false, want quiet abort")
	}
}

func TestPicker_HeaderIsFrozen(t *testing.T) {
	m := NewPickerModel(pickerLines, "", "ctrl-x")

	if m.Header != pickerLines[0] {
		t.Errorf("Header = %q, want first input line", m.Header)
	}
	if len(m.Candidates) != 3 {
		t.Errorf("Candidates = %d lines, want 3 (header excluded)", len(m.Candidates))
	}

	view := m.View()
	if !strings.Contains(view, "COMMAND") {
		t.Error("View() does not render the header line")
	}
}
