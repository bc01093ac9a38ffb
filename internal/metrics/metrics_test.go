package metrics

import (
	"math"
	"testing"

	"github.com/junyaoshi/snakesim/internal/dynamo"
)

func TestDisplacement(t *testing.T) {
	d := NewDisplacement(0, 1)

	if d.Value() != 0 {
		t.Error("expected zero before any observation")
	}

	d.Observe(dynamo.State{0, 0, 1}, nil, 0)
	d.Observe(dynamo.State{1, 1, 2}, nil, 1)
	d.Observe(dynamo.State{3, 4, 3}, nil, 2)

	if got := d.Value(); math.Abs(got-5) > 1e-12 {
		t.Errorf("expected net displacement 5, got %f", got)
	}

	d.Reset()
	if d.Value() != 0 {
		t.Error("expected zero after reset")
	}
}

func TestDisplacementIgnoresShortStates(t *testing.T) {
	d := NewDisplacement(4, 5)
	d.Observe(dynamo.State{1, 2}, nil, 0)
	if d.Value() != 0 {
		t.Error("expected short states to be ignored")
	}
}

func TestControlEffort(t *testing.T) {
	c := NewControlEffort()

	if c.Value() != 0 {
		t.Error("expected zero before any observation")
	}

	c.Observe(nil, dynamo.Control{1, -2}, 0)
	c.Observe(nil, dynamo.Control{-3, 0}, 1)

	// per-sample sums 3 and 3 over two samples
	if got := c.Value(); math.Abs(got-3) > 1e-12 {
		t.Errorf("expected 3, got %f", got)
	}
}

func TestControlEffortSkipsEmptyControl(t *testing.T) {
	c := NewControlEffort()

	c.Observe(nil, dynamo.Control{}, 0)
	c.Observe(nil, dynamo.Control{2, 2}, 1)

	if got := c.Value(); math.Abs(got-4) > 1e-12 {
		t.Errorf("expected empty controls excluded from the mean, got %f", got)
	}

	c.Reset()
	if c.Value() != 0 {
		t.Error("expected zero after reset")
	}
}
