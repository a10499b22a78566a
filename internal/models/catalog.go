package models

import (
	"math"
	"strings"
)

// Activity scales BMR into TDEE.
type Activity struct {
	Label      string  `json:"label" toml:"label"`
	Multiplier float64 `json:"multiplier" toml:"multiplier"`
}

// Goal scales TDEE into a daily calorie target.
type Goal struct {
	Label      string  `json:"label" toml:"label"`
	Multiplier float64 `json:"multiplier" toml:"multiplier"`
}

const multiplierTolerance = 1e-9

var activities = [...]Activity{
	{Label: "Sedentary", Multiplier: 1.2},
	{Label: "Lightly Active", Multiplier: 1.375},
	{Label: "Moderately Active", Multiplier: 1.55},
	{Label: "Very Active", Multiplier: 1.725},
	{Label: "Extremely Active", Multiplier: 1.9},
}

var goals = [...]Goal{
	{Label: "Lose Weight", Multiplier: 0.8},
	{Label: "Maintain Weight", Multiplier: 1.0},
	{Label: "Gain Weight", Multiplier: 1.2},
}

// Activities returns the activity catalog, least to most active.
func Activities() []Activity {
	out := make([]Activity, len(activities))
	copy(out, activities[:])
	return out
}

// Goals returns the goal catalog.
func Goals() []Goal {
	out := make([]Goal, len(goals))
	copy(out, goals[:])
	return out
}

func ActivityByMultiplier(v float64) (Activity, bool) {
	for _, a := range activities {
		if sameMultiplier(a.Multiplier, v) {
			return a, true
		}
	}
	return Activity{}, false
}

func ActivityByLabel(name string) (Activity, bool) {
	for _, a := range activities {
		if labelMatches(a.Label, name) {
			return a, true
		}
	}
	return Activity{}, false
}

func GoalByLabel(name string) (Goal, bool) {
	for _, g := range goals {
		if labelMatches(g.Label, name) {
			return g, true
		}
	}
	return Goal{}, false
}

func GoalByMultiplier(v float64) (Goal, bool) {
	for _, g := range goals {
		if sameMultiplier(g.Multiplier, v) {
			return g, true
		}
	}
	return Goal{}, false
}

// Slug turns a catalog label into its command-line form ("Lose Weight" -> "lose-weight").
func Slug(label string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(label)), " ", "-")
}

func labelMatches(label, name string) bool {
	name = strings.TrimSpace(name)
	return strings.EqualFold(label, name) || Slug(label) == Slug(strings.ReplaceAll(name, "_", "-"))
}

func sameMultiplier(a, b float64) bool {
	return math.Abs(a-b) <= multiplierTolerance
}
