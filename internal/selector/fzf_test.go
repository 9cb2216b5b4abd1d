package selector

import (
	"context"
	"testing"

	"github.com/a-godura/zsh-history-viewer/internal/errors"
	"github.com/a-godura/zsh-history-viewer/internal/testutil"
)

func TestBuildArgs(t *testing.T) {
	f := NewFzf("fzf", []string{"--height=40%"})

	args := f.buildArgs(Options{
		Query:      "git",
		ExecuteKey: "ctrl-x",
		Prompt:     "history> ",
	})

	want := []string{
		"--multi",
		"--no-sort",
		"--header-lines=1",
		"--expect=ctrl-x",
		"--query=git",
		"--prompt=history> ",
		"--height=40%",
	}
	if len(args) != len(want) {
		t.Fatalf("buildArgs() = %v, want %v", args, want)
	}
	for i := range want {
		if args[i] != want[i] {
			t.Errorf("args[%d] = %q, want %q", i, args[i], want[i])
		}
	}
}

func TestBuildArgs_OmitsEmptyOptions(t *testing.T) {
	f := NewFzf("fzf", nil)

	args := f.buildArgs(Options{})

	for _, a := range args {
		switch {
		case a == "--multi", a == "--no-sort", a == "--header-lines=1":
		default:
			t.Errorf("unexpected argument %q for empty options", a)
		}
	}
}

func TestPick_MissingCommandFailsClosed(t *testing.T) {
	f := NewFzf("zhv-no-such-selector", nil)

	out, err := f.Pick(context.Background(), []string{"a"}, Options{})
	if out != "" {
		t.Errorf("Pick() output = %q, want empty", out)
	}
	if !errors.IsSelectorNotFound(err) {
		t.Errorf("Pick() error = %v, want ErrSelectorNotFound", err)
	}

	se, ok := errors.AsSelectorError(err)
	if !ok {
		t.Fatal("error is not a *SelectorError")
	}
	if se.Cmd != "zhv-no-such-selector" {
		t.Errorf("Cmd = %q, want the missing command name", se.Cmd)
	}
}

func TestPick_ReturnsSelectorOutput(t *testing.T) {
	script := testutil.WriteScript(t, "stub-selector", `cat >/dev/null
printf 'ctrl-x\n3        09/04   11:52   echo hi\n'
`)
	f := NewFzf(script, nil)

	out, err := f.Pick(context.Background(), []string{"HEADER", "3        09/04   11:52   echo hi"}, Options{ExecuteKey: "ctrl-x"})
	if err != nil {
		t.Fatalf("Pick() error = %v", err)
	}

	want := "ctrl-x\n3        09/04   11:52   echo hi\n"
	if out != want {
		t.Errorf("Pick() = %q, want %q", out, want)
	}
}

func TestPick_AbortIsNoOp(t *testing.T) {
	script := testutil.WriteScript(t, "stub-abort", `cat >/dev/null
exit 130
`)
	f := NewFzf(script, nil)

	out, err := f.Pick(context.Background(), []string{"a"}, Options{})
	if err != nil {
		t.Fatalf("Pick() error = %v, want nil for abort", err)
	}
	if out != "" {
		t.Errorf("Pick() = %q, want empty output for abort", out)
	}
}

func TestPick_NoMatchIsNoOp(t *testing.T) {
	script := testutil.WriteScript(t, "stub-nomatch", `cat >/dev/null
exit 1
`)
	f := NewFzf(script, nil)

	out, err := f.Pick(context.Background(), []string{"a"}, Options{})
	if err != nil {
		t.Fatalf("Pick() error = %v, want nil for no match", err)
	}
	if out != "" {
		t.Errorf("Pick() = %q, want empty output", out)
	}
}

func TestPick_OtherExitCodeIsError(t *testing.T) {
	script := testutil.WriteScript(t, "stub-broken", `cat >/dev/null
exit 2
`)
	f := NewFzf(script, nil)

	_, err := f.Pick(context.Background(), []string{"a"}, Options{})
	if err == nil {
		t.Fatal("Pick() error = nil, want error for exit 2")
	}
	if _, ok := errors.AsSelectorError(err); !ok {
		t.Errorf("Pick() error = %T, want *SelectorError", err)
	}
}

func TestPick_CandidatesReachStdin(t *testing.T) {
	// The stub echoes its stdin back, so the output proves the candidate
	// list arrived newline-terminated and in order.
	script := testutil.WriteScript(t, "stub-echo", `cat
`)
	f := NewFzf(script, nil)

	out, err := f.Pick(context.Background(), []string{"one", "two"}, Options{})
	if err != nil {
		t.Fatalf("Pick() error = %v", err)
	}
	if out != "one\ntwo\n" {
		t.Errorf("Pick() = %q, want candidates echoed back", out)
	}
}
