package energy

import (
	"errors"
	"testing"

	"github.com/misterclayt0n/fuel/internal/models"
)

func activity(t *testing.T, label string) models.Activity {
	t.Helper()
	a, ok := models.ActivityByLabel(label)
	if !ok {
		t.Fatalf("activity %q not in catalog", label)
	}
	return a
}

func goal(t *testing.T, label string) models.Goal {
	t.Helper()
	g, ok := models.GoalByLabel(label)
	if !ok {
		t.Fatalf("goal %q not in catalog", label)
	}
	return g
}

func newTestProfile(t *testing.T) *Profile {
	t.Helper()
	p, err := NewProfile(
		Stats{WeightKG: 80, HeightCM: 180, AgeYears: 30, Sex: SexMale},
		activity(t, "sedentary"),
		goal(t, "maintain-weight"),
	)
	if err != nil {
		t.Fatalf("NewProfile: %v", err)
	}
	return p
}

func assertConsistent(t *testing.T, p *Profile) {
	t.Helper()
	bmr, err := CalculateBMR(p.Stats())
	if err != nil {
		t.Fatal(err)
	}
	if p.BMR() != bmr {
		t.Errorf("BMR = %v, want %v", p.BMR(), bmr)
	}
	if p.TDEE() != p.BMR()*p.Activity().Multiplier {
		t.Errorf("TDEE %v != BMR %v * %v", p.TDEE(), p.BMR(), p.Activity().Multiplier)
	}
	if p.Target() != p.TDEE()*p.Goal().Multiplier {
		t.Errorf("target %v != TDEE %v * %v", p.Target(), p.TDEE(), p.Goal().Multiplier)
	}
}

func TestProfile_NewProfile(t *testing.T) {
	p := newTestProfile(t)
	assertConsistent(t, p)

	if !approxEqual(p.BMR(), 1780) || !approxEqual(p.TDEE(), 2136) || !approxEqual(p.Target(), 2136) {
		t.Errorf("got BMR %v TDEE %v target %v, want 1780 2136 2136", p.BMR(), p.TDEE(), p.Target())
	}
}

func TestProfile_SettersRecalculate(t *testing.T) {
	p := newTestProfile(t)

	if err := p.SetActivity(activity(t, "Very Active")); err != nil {
		t.Fatalf("SetActivity: %v", err)
	}
	assertConsistent(t, p)

	if err := p.SetGoal(goal(t, "Lose Weight")); err != nil {
		t.Fatalf("SetGoal: %v", err)
	}
	assertConsistent(t, p)
	if !approxEqual(p.Target(), 1780*1.725*0.8) {
		t.Errorf("target = %v, want %v", p.Target(), 1780*1.725*0.8)
	}

	s := p.Stats()
	s.WeightKG = 75
	if err := p.SetStats(s); err != nil {
		t.Fatalf("SetStats: %v", err)
	}
	assertConsistent(t, p)
	if !approxEqual(p.BMR(), 1730) {
		t.Errorf("BMR after weight change = %v, want 1730", p.BMR())
	}
}

func TestProfile_FailedUpdateLeavesProfileUnchanged(t *testing.T) {
	p := newTestProfile(t)
	before := p.Snapshot()

	bad := p.Stats()
	bad.WeightKG = -1
	if err := p.SetStats(bad); !errors.Is(err, models.ErrValidation) {
		t.Fatalf("SetStats: expected ErrValidation, got %v", err)
	}
	if err := p.SetActivity(models.Activity{Label: "Hyperactive", Multiplier: 3}); !errors.Is(err, models.ErrValidation) {
		t.Fatalf("SetActivity: expected ErrValidation, got %v", err)
	}
	if err := p.SetGoal(models.Goal{Label: "Starve", Multiplier: 0.1}); !errors.Is(err, models.ErrValidation) {
		t.Fatalf("SetGoal: expected ErrValidation, got %v", err)
	}

	if p.Snapshot() != before {
		t.Errorf("profile changed after failed updates: %+v, want %+v", p.Snapshot(), before)
	}
	assertConsistent(t, p)
}

func TestProfile_NewProfileInvalid(t *testing.T) {
	p, err := NewProfile(Stats{WeightKG: 80, HeightCM: 180, AgeYears: 30, Sex: "x"},
		activity(t, "sedentary"), goal(t, "maintain-weight"))
	if !errors.Is(err, models.ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
	if p != nil {
		t.Error("expected nil profile on error")
	}
}

func TestProfile_Snapshot(t *testing.T) {
	p := newTestProfile(t)
	if err := p.SetGoal(goal(t, "gain-weight")); err != nil {
		t.Fatal(err)
	}

	snap := p.Snapshot()
	if snap.Activity != "Sedentary" || snap.Goal != "Gain Weight" {
		t.Errorf("snapshot labels = %q, %q", snap.Activity, snap.Goal)
	}

	// Stored derived values are never trusted.
	snap.BMR, snap.TDEE, snap.Target = 1, 2, 3
	restored, err := FromSnapshot(snap)
	if err != nil {
		t.Fatalf("FromSnapshot: %v", err)
	}
	if restored.Snapshot() != p.Snapshot() {
		t.Errorf("restored %+v, want %+v", restored.Snapshot(), p.Snapshot())
	}

	snap.Goal = "Shred"
	if _, err := FromSnapshot(snap); !errors.Is(err, models.ErrValidation) {
		t.Errorf("unknown goal: expected ErrValidation, got %v", err)
	}
}
