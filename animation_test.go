package etoalium

import (
	"math"
	"testing"

	"github.com/tanema/gween/ease"
)

func TestFadeReachesTarget(t *testing.T) {
	f := NewFade(0, 1, 1.0, ease.Linear)
	if f.Value != 0 {
		t.Fatalf("initial Value = %f, want 0", f.Value)
	}

	// Exact halves avoid float32 accumulation drift.
	f.Update(0.5)
	if f.Done {
		t.Fatal("Done after half the duration")
	}
	if math.Abs(f.Value-0.5) > 0.01 {
		t.Errorf("Value = %f, want ~0.5", f.Value)
	}
	f.Update(0.5)
	if !f.Done {
		t.Fatal("expected Done after full duration")
	}
	if math.Abs(f.Value-1) > 0.01 {
		t.Errorf("Value = %f, want ~1", f.Value)
	}

	// Update after done is a no-op.
	f.Update(1)
	if math.Abs(f.Value-1) > 0.01 {
		t.Errorf("Value = %f after extra update", f.Value)
	}
}

func TestFadeRestart(t *testing.T) {
	f := NewFade(0, 1, 0.4, ease.OutQuad)
	f.Update(1)
	if !f.Done {
		t.Fatal("expected Done")
	}
	f.Restart()
	if f.Done {
		t.Error("Done after Restart")
	}
	if math.Abs(f.Value) > 0.01 {
		t.Errorf("Value = %f after Restart, want ~0", f.Value)
	}
}
