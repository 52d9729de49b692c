package etoalium

import (
	"reflect"
	"testing"
	"time"
)

func TestDotRadiusRange(t *testing.T) {
	const d = 30.0
	for now := int64(-2000); now < 3000; now += 37 {
		for k := range 16 * 16 {
			r := DotRadius(now, k, 16, d)
			if r < 0 || r >= d/2 {
				t.Fatalf("DotRadius(%d, %d) = %v, want [0, %v)", now, k, r, d/2)
			}
		}
	}
}

func TestDotRadiusPeriodic(t *testing.T) {
	for _, now := range []int64{0, 1, 499, 998, 123456789} {
		for k := range 16 * 16 {
			a := DotRadius(now, k, 16, 30)
			b := DotRadius(now+1000, k, 16, 30)
			if a != b {
				t.Fatalf("DotRadius(%d, %d) = %v, +1000 ms = %v", now, k, a, b)
			}
		}
	}
}

func TestDotRadiusValues(t *testing.T) {
	assertNear(t, "origin", DotRadius(0, 0, 16, 30), 0)
	assertNear(t, "half period", DotRadius(999, 0, 16, 30), 0)
	assertNear(t, "mid", DotRadius(333, 0, 16, 30), 333.0/999*15)
	// Index n has a full half-cell phase, which wraps to zero.
	assertNear(t, "wrapped phase", DotRadius(333, 16, 16, 30), 333.0/999*15)
	// Phase repeats every n+1 dots.
	assertNear(t, "phase period", DotRadius(200, 3, 16, 30), DotRadius(200, 20, 16, 30))
}

func TestDotBrightness(t *testing.T) {
	assertNear(t, "zero", DotBrightness(0, 30), 1)
	assertNear(t, "quarter", DotBrightness(7.5, 30), 0.5)
	assertNear(t, "half", DotBrightness(15, 30), 0)
	assertNear(t, "clamped", DotBrightness(20, 30), 0)
}

func TestWavingDotsDraw(t *testing.T) {
	w := NewWavingDots()
	rec := NewRecorder()
	w.Draw(rec, time.UnixMilli(1_700_000_000_250))

	if got := rec.Count(OpFill); got != 256 {
		t.Errorf("fills = %d, want 256", got)
	}
	if rec.Depth() != 0 {
		t.Errorf("Depth = %d, want 0", rec.Depth())
	}
	if rec.MaxDepth() != 1 {
		t.Errorf("MaxDepth = %d, want 1", rec.MaxDepth())
	}

	arcs := rec.Filter(OpArc)
	// Dot 17 is row 1, column 1.
	if arcs[17].Args[0] != 45 || arcs[17].Args[1] != 45 {
		t.Errorf("dot 17 center = (%v, %v), want (45, 45)", arcs[17].Args[0], arcs[17].Args[1])
	}
}

func TestWavingDotsPeriodicFrames(t *testing.T) {
	w := NewWavingDots()
	now := time.UnixMilli(1_700_000_000_123)
	a, b := NewRecorder(), NewRecorder()
	w.Draw(a, now)
	w.Draw(b, now.Add(time.Second))
	if !reflect.DeepEqual(a.Commands, b.Commands) {
		t.Error("frames one second apart differ")
	}
}
