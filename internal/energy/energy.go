// Package energy computes BMR, TDEE and daily calorie targets.
package energy

import (
	"fmt"
	"math"
	"strings"

	"github.com/misterclayt0n/fuel/internal/models"
)

const (
	SexMale   = "male"
	SexFemale = "female"
)

type Stats struct {
	WeightKG float64 `toml:"weight_kg"`
	HeightCM float64 `toml:"height_cm"`
	AgeYears float64 `toml:"age_years"`
	Sex      string  `toml:"sex"`
}

func (s Stats) validate() error {
	for _, f := range []struct {
		name string
		v    float64
	}{
		{"weight", s.WeightKG},
		{"height", s.HeightCM},
		{"age", s.AgeYears},
	} {
		if err := positive(f.name, f.v); err != nil {
			return err
		}
	}

	switch strings.ToLower(s.Sex) {
	case SexMale, SexFemale:
	default:
		return fmt.Errorf("sex must be %q or %q, got %q: %w", SexMale, SexFemale, s.Sex, models.ErrValidation)
	}
	return nil
}

// CalculateBMR uses Mifflin-St Jeor with weight in kg, height in cm and age in years.
func CalculateBMR(s Stats) (float64, error) {
	if err := s.validate(); err != nil {
		return 0, err
	}

	bmr := 10*s.WeightKG + 6.25*s.HeightCM - 5*s.AgeYears
	if strings.EqualFold(s.Sex, SexMale) {
		bmr += 5
	} else {
		bmr -= 161
	}
	// Very old and very light profiles can push the formula below zero.
	if bmr <= 0 {
		return 0, fmt.Errorf("BMR %.2f is not positive for these stats: %w", bmr, models.ErrValidation)
	}
	return bmr, nil
}

// CalculateTDEE scales BMR by an activity multiplier from the catalog.
func CalculateTDEE(bmr, activityMultiplier float64) (float64, error) {
	if err := positive("BMR", bmr); err != nil {
		return 0, err
	}
	if _, ok := models.ActivityByMultiplier(activityMultiplier); !ok {
		return 0, fmt.Errorf("activity multiplier %v is not in the catalog: %w", activityMultiplier, models.ErrValidation)
	}
	return bmr * activityMultiplier, nil
}

// CalculateTarget scales TDEE by a goal multiplier from the catalog.
func CalculateTarget(tdee, goalMultiplier float64) (float64, error) {
	if err := positive("TDEE", tdee); err != nil {
		return 0, err
	}
	if _, ok := models.GoalByMultiplier(goalMultiplier); !ok {
		return 0, fmt.Errorf("goal multiplier %v is not in the catalog: %w", goalMultiplier, models.ErrValidation)
	}
	return tdee * goalMultiplier, nil
}

func positive(name string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
		return fmt.Errorf("%s must be a finite positive number, got %v: %w", name, v, models.ErrValidation)
	}
	return nil
}
