package convert

import (
	"errors"
	"fmt"
	"testing"
)

func TestFatalWrapping(t *testing.T) {
	base := errors.New("disk on fire")
	f := Fatal(base)
	if !IsFatal(f) {
		t.Fatal("Fatal error not recognized")
	}
	if !errors.Is(f, base) {
		t.Fatal("wrapped error lost")
	}
	// fatality survives further wrapping
	if !IsFatal(fmt.Errorf("context: %w", f)) {
		t.Fatal("fatality should survive wrapping")
	}
	if IsFatal(base) {
		t.Fatal("plain error must not be fatal")
	}
	if Fatal(nil) != nil {
		t.Fatal("Fatal(nil) should be nil")
	}
}
