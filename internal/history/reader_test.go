package history

import (
	"strings"
	"testing"
)

func TestReaderSource_PassthroughOrder(t *testing.T) {
	input := "3 09/04/2025 11:53 git push\n2 09/04/2025 11:52 make test\n1 09/04/2025 11:51 ls\n"

	source := NewReaderSource(strings.NewReader(input))
	lines, err := source.Fetch(0)
	if err != nil {
		t.Fatalf("Fetch() error = %v", err)
	}

	want := []string{
		"3 09/04/2025 11:53 git push",
		"2 09/04/2025 11:52 make test",
		"1 09/04/2025 11:51 ls",
	}
	if len(lines) != len(want) {
		t.Fatalf("Fetch() returned %d lines, want %d", len(lines), len(want))
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Errorf("lines[%d] = %q, want %q", i, lines[i], want[i])
		}
	}
}

func TestReaderSource_Limit(t *testing.T) {
	input := "3 a b c\n2 a b c\n1 a b c\n"

	source := NewReaderSource(strings.NewReader(input))
	lines, err := source.Fetch(2)
	if err != nil {
		t.Fatalf("Fetch() error = %v", err)
	}
	if len(lines) != 2 {
		t.Errorf("Fetch(2) returned %d lines, want 2", len(lines))
	}
}

func TestReaderSource_SkipsBlankLines(t *testing.T) {
	input := "\n3 a b c\n\n   \n2 a b c\n"

	source := NewReaderSource(strings.NewReader(input))
	lines, err := source.Fetch(0)
	if err != nil {
		t.Fatalf("Fetch() error = %v", err)
	}
	if len(lines) != 2 {
		t.Errorf("Fetch() returned %d lines, want 2", len(lines))
	}
}

func TestReaderSource_EmptyInput(t *testing.T) {
	source := NewReaderSource(strings.NewReader(""))
	lines, err := source.Fetch(0)
	if err != nil {
		t.Fatalf("Fetch() error = %v", err)
	}
	if len(lines) != 0 {
		t.Errorf("Fetch() returned %d lines, want 0", len(lines))
	}
}
