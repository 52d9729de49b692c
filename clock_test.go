package etoalium

import (
	"math"
	"reflect"
	"testing"
	"time"
)

func TestClockAngles(t *testing.T) {
	cases := []struct {
		h, m, s float64
		want    HandAngles
	}{
		{12, 0, 0, HandAngles{Hour: 0, Minute: 0, Second: 0}},
		{0, 0, 0, HandAngles{Hour: 0, Minute: 0, Second: 0}},
		{3, 0, 0, HandAngles{Hour: 90, Minute: 0, Second: 0}},
		{0, 30, 0, HandAngles{Hour: 15, Minute: 180, Second: 0}},
		{15, 0, 0, HandAngles{Hour: 90, Minute: 0, Second: 0}},
		{6, 0, 30, HandAngles{Hour: 180.25, Minute: 3, Second: 180}},
	}
	for _, c := range cases {
		got := ClockAngles(c.h, c.m, c.s)
		assertNear(t, "hour", got.Hour, c.want.Hour)
		assertNear(t, "minute", got.Minute, c.want.Minute)
		assertNear(t, "second", got.Second, c.want.Second)
	}
}

func TestClockAnglesAtTicks(t *testing.T) {
	a := ClockAnglesAt(time.Date(2024, 1, 1, 9, 15, 7, 900_000_000, time.UTC))
	// Sub-second time is dropped.
	assertNear(t, "second", a.Second, 42)
}

func TestClockFaceDraw(t *testing.T) {
	c := NewClockFace()
	rec := NewRecorder()
	c.Draw(rec, time.Date(2024, 1, 1, 3, 0, 15, 0, time.Local))

	if rec.Depth() != 0 {
		t.Errorf("Depth = %d after Draw, want balanced save/restore", rec.Depth())
	}
	if got, want := rec.Count(OpSave), rec.Count(OpRestore); got != want {
		t.Errorf("saves = %d, restores = %d", got, want)
	}
	// 12 hour ticks, 48 minute ticks, hour, minute and second hands,
	// the second-hand tip ring and the frame.
	if got := rec.Count(OpStroke); got != 65 {
		t.Errorf("strokes = %d, want 65", got)
	}
	// hub and pin
	if got := rec.Count(OpFill); got != 2 {
		t.Errorf("fills = %d, want 2", got)
	}

	clears := rec.Filter(OpClearRect)
	if len(clears) != 1 || !reflect.DeepEqual(clears[0].Args, []float64{0, 0, 150, 150}) {
		t.Errorf("clearRect = %+v, want one full clear", clears)
	}
}

func TestClockFaceSecondHandPointsRightAtFifteen(t *testing.T) {
	c := NewClockFace()
	rec := NewRecorder()
	c.Draw(rec, time.Date(2024, 1, 1, 3, 0, 15, 0, time.Local))

	for _, cmd := range rec.Filter(OpStroke) {
		if cmd.Color != c.SecondHand {
			continue
		}
		// 15 s is 90 degrees; the face is pre-rotated by -90.
		assertNear(t, "rotation", cmd.Transform.Rotation(), 0)
		assertNear(t, "width", cmd.LineWidth, 6)
		return
	}
	t.Fatal("no second-hand stroke recorded")
}

func TestClockFaceFrame(t *testing.T) {
	c := NewClockFace()
	rec := NewRecorder()
	c.Draw(rec, time.Date(2024, 1, 1, 0, 0, 0, 0, time.Local))

	arcs := rec.Filter(OpArc)
	last := arcs[len(arcs)-1]
	if last.Args[2] != 142 {
		t.Errorf("frame radius = %v, want 142", last.Args[2])
	}
	if math.Abs(last.Args[4]-last.Args[3]) < 2*math.Pi {
		t.Error("frame arc is not a full circle")
	}
	if last.LineWidth != 14 || last.Color != c.Frame {
		t.Errorf("frame width %v color %v", last.LineWidth, last.Color)
	}
}

func TestClockFaceDeterministic(t *testing.T) {
	c := NewClockFace()
	now := time.Date(2024, 5, 5, 10, 10, 10, 0, time.Local)
	a, b := NewRecorder(), NewRecorder()
	c.Draw(a, now)
	c.Draw(b, now)
	if !reflect.DeepEqual(a.Commands, b.Commands) {
		t.Error("two draws at the same instant differ")
	}
}
