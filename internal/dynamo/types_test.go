package dynamo

import (
	"errors"
	"math"
	"strings"
	"testing"
)

func TestStateClone(t *testing.T) {
	s := State{1, 2, 3}
	c := s.Clone()

	c[0] = 99
	if s[0] != 1 {
		t.Error("expected clone to be independent of the original")
	}
	if len(c) != len(s) {
		t.Errorf("expected length %d, got %d", len(s), len(c))
	}
}

func TestStateIsValid(t *testing.T) {
	if !(State{0, -1, 2.5}).IsValid() {
		t.Error("expected finite state to be valid")
	}
	if (State{0, math.NaN()}).IsValid() {
		t.Error("expected NaN state to be invalid")
	}
	if (State{math.Inf(1), 0}).IsValid() {
		t.Error("expected Inf state to be invalid")
	}
}

func TestStateNorm(t *testing.T) {
	if got := (State{3, 4}).Norm(); math.Abs(got-5) > 1e-12 {
		t.Errorf("expected 5, got %f", got)
	}
	if got := (State{}).Norm(); got != 0 {
		t.Errorf("expected 0, got %f", got)
	}
}

func TestStateSub(t *testing.T) {
	got := (State{5, 7, 9}).Sub(State{1, 2, 3})
	want := State{4, 5, 6}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("index %d: expected %f, got %f", i, want[i], got[i])
		}
	}
}

func TestStepErrorUnwrap(t *testing.T) {
	err := &StepError{Model: "swimmer", Time: 1.25, Wrapped: ErrSingular}

	if !errors.Is(err, ErrSingular) {
		t.Error("expected errors.Is to reach the wrapped sentinel")
	}
	if !strings.Contains(err.Error(), "swimmer") {
		t.Errorf("expected model name in message, got %q", err.Error())
	}
	if !strings.Contains(err.Error(), "1.25") {
		t.Errorf("expected step time in message, got %q", err.Error())
	}
}
