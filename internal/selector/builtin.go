package selector

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/a-godura/zsh-history-viewer/internal/errors"
	"github.com/a-godura/zsh-history-viewer/internal/tui"
)

// Builtin is the in-process fallback selector, backed by the Bubble Tea
// picker. It speaks the same output contract as the external program so
// the dispatcher cannot tell them apart.
type Builtin struct{}

// NewBuiltin creates the builtin selector.
func NewBuiltin() *Builtin {
	return &Builtin{}
}

// Pick runs the picker full-screen and returns its combined output.
func (b *Builtin) Pick(ctx context.Context, candidates []string, opts Options) (string, error) {
	model := tui.NewPickerModel(candidates, opts.Query, opts.ExecuteKey)

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	final, err := p.Run()
	if err != nil {
		return "", &errors.SelectorError{Op: "run", Err: err, Cmd: "builtin"}
	}

	m, ok := final.(tui.PickerModel)
	if !ok {
		return "", &errors.SelectorError{Op: "run", Err: fmt.Errorf("unexpected model type %T", final), Cmd: "builtin"}
	}
	if m.DidQuit() {
		return "", nil
	}
	return m.Output(), nil
}
