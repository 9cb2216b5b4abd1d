// Package selector invokes the interactive fuzzy selector over the
// formatted candidate list.
//
// The selector itself is an external program (fzf by default); this package
// owns spawning it, feeding it candidates, and returning its combined
// key+selections output verbatim for the dispatcher to interpret.
package selector

import "context"

// Options configures one selector invocation.
type Options struct {
	// Query pre-populates the filter, typically from the host's current
	// input buffer.
	Query string

	// ExecuteKey is the alternate-action key the selector must report
	// when used to confirm (e.g. "ctrl-x").
	ExecuteKey string

	// Prompt is the filter prompt text.
	Prompt string

	// Header is the hint text shown above the list.
	Header string
}

// Selector presents candidates and returns the raw combined output:
// first line the key that confirmed (empty for the default key), then one
// line per selected candidate. Cancellation yields an empty string and a
// nil error.
type Selector interface {
	Pick(ctx context.Context, candidates []string, opts Options) (string, error)
}
