package plexus

import (
	"testing"

	"github.com/tanema/gween/ease"
)

func TestFadeLinear(t *testing.T) {
	f := NewFade(1, ease.Linear)
	if f.Alpha() != 0 || f.Done {
		t.Fatalf("fresh fade alpha=%v done=%v", f.Alpha(), f.Done)
	}

	assertNear(t, "alpha at 0.25", f.Update(0.25), 0.25)
	assertNear(t, "alpha at 0.5", f.Update(0.25), 0.5)
	if f.Done {
		t.Error("fade finished early")
	}

	assertNear(t, "alpha at end", f.Update(1), 1)
	if !f.Done {
		t.Error("fade should be done")
	}
	assertNear(t, "alpha after done", f.Update(1), 1)
}

func TestFadeNilEaseIsLinear(t *testing.T) {
	f := NewFade(2, nil)
	assertNear(t, "alpha", f.Update(1), 0.5)
}

func TestFadeRestart(t *testing.T) {
	f := NewFade(1, ease.Linear)
	f.Update(2)
	if !f.Done {
		t.Fatal("fade should be done")
	}

	f.Restart()
	if f.Done || f.Alpha() != 0 {
		t.Errorf("after Restart alpha=%v done=%v", f.Alpha(), f.Done)
	}
	assertNear(t, "alpha after restart", f.Update(0.5), 0.5)
}

func TestFadeEasedStaysInRange(t *testing.T) {
	f := NewFade(1, ease.OutBack)
	for i := 0; i < 20; i++ {
		a := f.Update(0.05)
		if a < 0 || a > 1 {
			t.Fatalf("step %d: alpha %v outside [0,1]", i, a)
		}
	}
}
