package dynlib

import (
	"strings"
	"testing"
)

func TestOpenRequiresNames(t *testing.T) {
	if _, err := Open(); err == nil {
		t.Fatal("expected error with no names")
	}
}

func TestOpenReportsEveryCandidate(t *testing.T) {
	_, err := Open("libeglo-missing-a.so.0", "libeglo-missing-b.so.0")
	if err == nil {
		t.Fatal("expected error for missing libraries")
	}
	msg := err.Error()
	for _, want := range []string{"libeglo-missing-a.so.0", "libeglo-missing-b.so.0"} {
		if !strings.Contains(msg, want) {
			t.Fatalf("error %q does not mention %s", msg, want)
		}
	}
}
