package plexus

import "testing"

func TestPointerTrackerStartsUnset(t *testing.T) {
	tr := NewPointerTracker(150)
	if _, ok := tr.Position(); ok {
		t.Error("new tracker reports a position")
	}
	if tr.InfluenceRadius() != 150 {
		t.Errorf("InfluenceRadius = %v, want 150", tr.InfluenceRadius())
	}
}

func TestPointerTrackerOriginIsSet(t *testing.T) {
	tr := NewPointerTracker(150)
	tr.Set(0, 0)
	pos, ok := tr.Position()
	if !ok {
		t.Fatal("(0,0) should count as a reported position")
	}
	if pos != (Vec2{0, 0}) {
		t.Errorf("Position = %v, want (0,0)", pos)
	}
}

func TestPointerTrackerLastWriteWins(t *testing.T) {
	tr := NewPointerTracker(150)
	tr.Set(1, 2)
	tr.Set(3, 4)
	tr.Set(-5, 6.5)
	pos, ok := tr.Position()
	if !ok || pos != (Vec2{-5, 6.5}) {
		t.Errorf("Position = %v (set=%v), want (-5,6.5)", pos, ok)
	}
	if tr.InfluenceRadius() != 150 {
		t.Error("Set changed the influence radius")
	}
}
