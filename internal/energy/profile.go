package energy

import (
	"fmt"

	"github.com/misterclayt0n/fuel/internal/models"
)

// Profile is a person's stats with the energy values derived from them.
// BMR, TDEE and Target are only ever written by recalculate, so they always
// agree with the inputs.
type Profile struct {
	stats    Stats
	activity models.Activity
	goal     models.Goal

	bmr    float64
	tdee   float64
	target float64
}

func NewProfile(stats Stats, activity models.Activity, goal models.Goal) (*Profile, error) {
	p := &Profile{}
	if err := p.recalculate(stats, activity, goal); err != nil {
		return nil, err
	}
	return p, nil
}

func (p *Profile) SetStats(stats Stats) error {
	return p.recalculate(stats, p.activity, p.goal)
}

func (p *Profile) SetActivity(activity models.Activity) error {
	return p.recalculate(p.stats, activity, p.goal)
}

func (p *Profile) SetGoal(goal models.Goal) error {
	return p.recalculate(p.stats, p.activity, goal)
}

// recalculate derives everything first and only then commits, so a failed
// update leaves the profile as it was.
func (p *Profile) recalculate(stats Stats, activity models.Activity, goal models.Goal) error {
	bmr, err := CalculateBMR(stats)
	if err != nil {
		return fmt.Errorf("calculate BMR: %w", err)
	}
	tdee, err := CalculateTDEE(bmr, activity.Multiplier)
	if err != nil {
		return fmt.Errorf("calculate TDEE: %w", err)
	}
	target, err := CalculateTarget(tdee, goal.Multiplier)
	if err != nil {
		return fmt.Errorf("calculate target: %w", err)
	}

	p.stats = stats
	p.activity = activity
	p.goal = goal
	p.bmr = bmr
	p.tdee = tdee
	p.target = target
	return nil
}

func (p *Profile) Stats() Stats { return p.stats }
func (p *Profile) Activity() models.Activity { return p.activity }
func (p *Profile) Goal() models.Goal { return p.goal }
func (p *Profile) BMR() float64 { return p.bmr }
func (p *Profile) TDEE() float64 { return p.tdee }
func (p *Profile) Target() float64 { return p.target }

// Snapshot is the flat form of a profile written to disk.
type Snapshot struct {
	Stats    Stats   `toml:"stats"`
	Activity string  `toml:"activity"`
	Goal     string  `toml:"goal"`
	BMR      float64 `toml:"bmr"`
	TDEE     float64 `toml:"tdee"`
	Target   float64 `toml:"target"`
}

func (p *Profile) Snapshot() Snapshot {
	return Snapshot{
		Stats:    p.stats,
		Activity: p.activity.Label,
		Goal:     p.goal.Label,
		BMR:      p.bmr,
		TDEE:     p.tdee,
		Target:   p.target,
	}
}

// FromSnapshot rebuilds a profile. Stored BMR, TDEE and target are ignored
// and derived again.
func FromSnapshot(s Snapshot) (*Profile, error) {
	activity, ok := models.ActivityByLabel(s.Activity)
	if !ok {
		return nil, fmt.Errorf("unknown activity %q: %w", s.Activity, models.ErrValidation)
	}
	goal, ok := models.GoalByLabel(s.Goal)
	if !ok {
		return nil, fmt.Errorf("unknown goal %q: %w", s.Goal, models.ErrValidation)
	}
	return NewProfile(s.Stats, activity, goal)
}
