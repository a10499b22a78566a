// Package diary totals a day of logged foods and exercises against a calorie target.
package diary

import "github.com/misterclayt0n/fuel/internal/models"

type Totals struct {
	Target        float64
	Consumed      float64
	Carbohydrates float64
	Proteins      float64
	Fats          float64
	Burned        float64
	FoodCount     int
	ExerciseCount int
}

// Net is what was eaten minus what was burned.
func (t Totals) Net() float64 {
	return t.Consumed - t.Burned
}

// Remaining is negative once the target is exceeded.
func (t Totals) Remaining() float64 {
	return t.Target - t.Net()
}

func Summarize(target float64, foods []*models.Food, exercises []models.ExerciseEntry) Totals {
	t := Totals{Target: target}
	for _, f := range foods {
		if f == nil {
			continue
		}
		m := f.Current()
		t.Consumed += m.Calories
		t.Carbohydrates += m.Carbohydrates
		t.Proteins += m.Proteins
		t.Fats += m.Fats
		t.FoodCount++
	}
	for _, e := range exercises {
		t.Burned += e.CaloriesBurned
		t.ExerciseCount++
	}
	return t
}

// Split is the share of consumed calories, in percent, coming from each macro.
type Split struct {
	Carbohydrates float64
	Proteins      float64
	Fats          float64
}

func MacroSplit(t Totals) Split {
	kcal := models.Calories(t.Carbohydrates, t.Proteins, t.Fats)
	if kcal == 0 {
		return Split{}
	}
	return Split{
		Carbohydrates: t.Carbohydrates * models.KcalPerGramCarbohydrate / kcal * 100,
		Proteins:      t.Proteins * models.KcalPerGramProtein / kcal * 100,
		Fats:          t.Fats * models.KcalPerGramFat / kcal * 100,
	}
}
