package cmd

import (
	"errors"
	"fmt"
	"log/slog"
	"testing"
)

func TestErrorIs(t *testing.T) {
	cause := errors.New("cause")
	err := ErrEval.With(slog.String("expression", "x")).Wrap(cause)

	if !errors.Is(err, ErrEval) {
		t.Error("derived error should match its sentinel")
	}

	if !errors.Is(fmt.Errorf("outer: %w", err), cause) {
		t.Error("cause should be reachable")
	}

	if errors.Is(err, ErrMarshal) {
		t.Error("unrelated sentinel should not match")
	}

	if got, want := err.Error(), "evaluate expression: cause"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestErrorWith(t *testing.T) {
	base := ErrKeyNotFound.With(slog.String("command", "get"))
	a := base.With(slog.String("key", "a"))
	b := base.With(slog.String("key", "b"))

	ga, gb := a.LogValue().Group(), b.LogValue().Group()
	if len(ga) != 3 || len(gb) != 3 {
		t.Fatalf("group lengths = %d, %d", len(ga), len(gb))
	}

	if ga[2].Value.String() != "a" || gb[2].Value.String() != "b" {
		t.Errorf("attrs alias: %v, %v", ga, gb)
	}
}

func TestWrapError(t *testing.T) {
	if WrapError(ErrEval) != ErrEval {
		t.Error("WrapError should return an *Error unchanged")
	}

	plain := errors.New("plain")
	if got := WrapError(plain); !errors.Is(got, plain) || got.Error() != "plain" {
		t.Errorf("WrapError(plain) = %v", got)
	}
}
