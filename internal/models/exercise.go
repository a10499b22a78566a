package models

import (
	"fmt"
	"math"
	"strings"
	"time"
)

type ExerciseEntry struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Reps           int       `json:"reps"`
	Sets           int       `json:"sets"`
	WeightKG       float64   `json:"weight_kg"`
	CaloriesBurned float64   `json:"calories_burned"`
	LoggedAt       time.Time `json:"logged_at"`
}

func (e ExerciseEntry) Validate() error {
	if strings.TrimSpace(e.Name) == "" {
		return fmt.Errorf("exercise name is required: %w", ErrValidation)
	}
	if e.Reps < 0 || e.Sets < 0 {
		return fmt.Errorf("exercise %q: reps and sets cannot be negative: %w", e.Name, ErrValidation)
	}
	for _, v := range []float64{e.WeightKG, e.CaloriesBurned} {
		if v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("exercise %q: weight and calories must be finite and >= 0: %w", e.Name, ErrValidation)
		}
	}
	return nil
}
