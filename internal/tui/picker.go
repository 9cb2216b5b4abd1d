// Package tui provides Bubble Tea models for zhv.
package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/lipgloss"
)

// PickerModel is a Bubble Tea model that stands in for the external
// selector: it shows the candidate list under a frozen header, filters on
// typed text, supports multi-select, and reports which key confirmed.
type PickerModel struct {
	// Header is the frozen column header line.
	Header string

	// Candidates is the list of data lines shown for selection.
	Candidates []string

	// Selected is the set of selected candidate indices.
	Selected map[int]bool

	// Filtered is the list of candidate indices after filtering.
	Filtered []int

	// cursor is the current cursor position in the filtered list.
	cursor int

	// FilterInput is the text input for filtering.
	FilterInput textinput.Model

	// ExecuteKey is the alternate-action key reported on ctrl+x confirm.
	ExecuteKey string

	// pressedKey records which key confirmed the selection. Empty means
	// the default confirm key.
	pressedKey string

	// Quit indicates the user aborted without selecting.
	Quit bool

	// Confirmed indicates the user confirmed a selection.
	Confirmed bool

	height int

	// styles
	headerStyle lipgloss.Style
	normalStyle lipgloss.Style
	cursorStyle lipgloss.Style
	markedStyle lipgloss.Style
	hintStyle   lipgloss.Style
}

// NewPickerModel creates a picker over the candidate lines. The first line
// is treated as the frozen header; query pre-populates the filter.
func NewPickerModel(lines []string, query, executeKey string) PickerModel {
	ti := textinput.New()
	ti.Placeholder = "Type to filter..."
	ti.SetValue(query)
	ti.Focus()

	var header string
	var candidates []string
	if len(lines) > 0 {
		header = lines[0]
		candidates = lines[1:]
	}

	m := PickerModel{
		Header:      header,
		Candidates:  candidates,
		Selected:    make(map[int]bool),
		FilterInput: ti,
		ExecuteKey:  executeKey,
		height:      24,
		headerStyle: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229")),
		normalStyle: lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		cursorStyle: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229")),
		markedStyle: lipgloss.NewStyle().Foreground(lipgloss.Color("green")),
		hintStyle:   lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	}
	m.applyFilter(query)
	return m
}

// Init implements tea.Model.
func (m PickerModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m PickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.Quit = true
			return m, tea.Quit

		case "enter":
			m.confirm("")
			return m, tea.Quit

		case "ctrl+x":
			if m.ExecuteKey != "" {
				m.confirm(m.ExecuteKey)
				return m, tea.Quit
			}

		case "tab":
			// Toggle selection and advance, fzf-style.
			if len(m.Filtered) > 0 {
				idx := m.Filtered[m.cursor]
				m.Selected[idx] = !m.Selected[idx]
				if m.cursor < len(m.Filtered)-1 {
					m.cursor++
				}
			}
			return m, nil

		case "up", "ctrl+p":
			if m.cursor > 0 {
				m.cursor--
			}
			return m, nil

		case "down", "ctrl+n":
			if m.cursor < len(m.Filtered)-1 {
				m.cursor++
			}
			return m, nil
		}
	}

	// Update filter input
	oldFilter := m.FilterInput.Value()
	m.FilterInput, cmd = m.FilterInput.Update(msg)
	if newFilter := m.FilterInput.Value(); newFilter != oldFilter {
		m.applyFilter(newFilter)
	}

	return m, cmd
}

// confirm records the pressed key and, when nothing was toggled, selects
// the line under the cursor.
func (m *PickerModel) confirm(key string) {
	if len(m.Selected) == 0 && len(m.Filtered) > 0 {
		m.Selected[m.Filtered[m.cursor]] = true
	}
	if len(m.Selected) == 0 {
		m.Quit = true
		return
	}
	m.pressedKey = key
	m.Confirmed = true
}

// View implements tea.Model.
func (m PickerModel) View() string {
	var b strings.Builder

	b.WriteString("  Filter: ")
	b.WriteString(m.FilterInput.View())
	b.WriteString("\n\n")

	b.WriteString("  ")
	b.WriteString(m.hintStyle.Render("[enter] edit  [ctrl+x] execute  [tab] toggle  [esc] cancel"))
	b.WriteString("\n\n")

	b.WriteString("  ")
	b.WriteString(m.headerStyle.Render(m.Header))
	b.WriteString("\n")

	if len(m.Filtered) == 0 {
		b.WriteString("  (no matches)\n")
		return b.String()
	}

	// Visible window around the cursor.
	window := m.height - 8
	if window < 5 {
		window = 5
	}
	start := max(0, m.cursor-window/2)
	end := min(len(m.Filtered), start+window)

	for i := start; i < end; i++ {
		idx := m.Filtered[i]

		marker := "  "
		if m.Selected[idx] {
			marker = "* "
		}

		style := m.normalStyle
		if i == m.cursor {
			style = m.cursorStyle
		}
		if m.Selected[idx] {
			style = m.markedStyle
		}

		b.WriteString("  " + marker + style.Render(m.Candidates[idx]) + "\n")
	}

	return b.String()
}

// applyFilter filters the candidate list with case-insensitive substring
// matching on the query.
func (m *PickerModel) applyFilter(query string) {
	query = strings.ToLower(query)

	m.Filtered = nil
	for i, line := range m.Candidates {
		if strings.Contains(strings.ToLower(line), query) {
			m.Filtered = append(m.Filtered, i)
		}
	}

	if m.cursor >= len(m.Filtered) {
		m.cursor = max(0, len(m.Filtered)-1)
	}
}

// Output renders the confirmed selection in the selector wire shape: the
// pressed key on the first line, then the selected candidate lines in
// original candidate order. Returns "" when nothing was confirmed.
func (m PickerModel) Output() string {
	if !m.Confirmed {
		return ""
	}

	var b strings.Builder
	b.WriteString(m.pressedKey)
	for i := range m.Candidates {
		if m.Selected[i] {
			b.WriteString("\n")
			b.WriteString(m.Candidates[i])
		}
	}
	b.WriteString("\n")
	return b.String()
}

// DidQuit returns true if the user aborted without selecting.
func (m PickerModel) DidQuit() bool {
	return m.Quit
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
