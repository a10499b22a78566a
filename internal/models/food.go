package models

import (
	"fmt"
	"math"
	"time"
)

const (
	KcalPerGramCarbohydrate = 4
	KcalPerGramProtein      = 4
	KcalPerGramFat          = 9

	// CustomTag is appended to the display name of foods the user created.
	CustomTag = " (custom)"

	// Number of values NewFood expects: amount, carbohydrates, proteins, fats.
	foodValueCount = 4

	calorieTolerance = 1e-9
)

// Macros is one set of nutrition values for a food.
type Macros struct {
	Amount        float64 `json:"amount"`
	Carbohydrates float64 `json:"carbohydrates"`
	Proteins      float64 `json:"proteins"`
	Fats          float64 `json:"fats"`
	Calories      float64 `json:"calories"`
}

// Calories converts macro grams into kcal.
func Calories(carbohydrates, proteins, fats float64) float64 {
	return carbohydrates*KcalPerGramCarbohydrate + proteins*KcalPerGramProtein + fats*KcalPerGramFat
}

func (m Macros) scale(q float64) Macros {
	return Macros{
		Amount:        m.Amount * q,
		Carbohydrates: m.Carbohydrates * q,
		Proteins:      m.Proteins * q,
		Fats:          m.Fats * q,
		Calories:      m.Calories * q,
	}
}

// validate checks the values are usable and that calories agree with the
// macros. A zero amount is only legal on scaled values (quantity 0).
func (m Macros) validate(allowZeroAmount bool) error {
	for _, v := range []float64{m.Amount, m.Carbohydrates, m.Proteins, m.Fats, m.Calories} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("non-finite value %v: %w", v, ErrValidation)
		}
		if v < 0 {
			return fmt.Errorf("negative value %v: %w", v, ErrValidation)
		}
	}
	if m.Amount == 0 && !allowZeroAmount {
		return fmt.Errorf("amount cannot be 0: %w", ErrValidation)
	}

	expected := Calories(m.Carbohydrates, m.Proteins, m.Fats)
	if math.Abs(m.Calories-expected) > calorieTolerance*math.Max(1, expected) {
		return fmt.Errorf("calories %v do not match macros (%v): %w", m.Calories, expected, ErrValidation)
	}
	return nil
}

// Food is a quantity of food with its macro composition.
//
// The baseline values are fixed at construction. Current values are always
// baseline * quantity, so rescaling never drifts. Template foods are the
// read-only library entries that logged foods are copied from.
type Food struct {
	name     string
	template bool
	custom   bool
	quantity float64
	baseline Macros
	current  Macros
}

// NewFood builds a food from {amount, carbohydrates, proteins, fats}.
func NewFood(name string, values []float64, template bool) (*Food, error) {
	if len(values) != foodValueCount {
		return nil, fmt.Errorf("expected %d values (amount, carbs, protein, fat), got %d: %w",
			foodValueCount, len(values), ErrValidation)
	}

	base := Macros{
		Amount:        values[0],
		Carbohydrates: values[1],
		Proteins:      values[2],
		Fats:          values[3],
	}
	base.Calories = Calories(base.Carbohydrates, base.Proteins, base.Fats)
	if err := base.validate(false); err != nil {
		return nil, fmt.Errorf("food %q: %w", name, err)
	}

	return &Food{
		name:     name,
		template: template,
		quantity: 1,
		baseline: base,
		current:  base,
	}, nil
}

// NewFoodFrom copies src under a new name. The copy is never a template and
// starts without the custom flag; quantity and baseline carry over.
func NewFoodFrom(name string, src *Food) (*Food, error) {
	if src == nil {
		return nil, fmt.Errorf("copy of nil food: %w", ErrValidation)
	}
	if err := src.current.validate(true); err != nil {
		return nil, fmt.Errorf("copy of %q: %w", src.name, err)
	}
	if err := src.baseline.validate(false); err != nil {
		return nil, fmt.Errorf("copy of %q baseline: %w", src.name, err)
	}

	return &Food{
		name:     name,
		quantity: src.quantity,
		baseline: src.baseline,
		current:  src.current,
	}, nil
}

// SetQuantity rescales every current value from the baseline.
func (f *Food) SetQuantity(q float64) error {
	if f.template {
		return fmt.Errorf("set quantity on template food %q: %w", f.name, ErrInvalidOperation)
	}
	if math.IsNaN(q) || math.IsInf(q, 0) || q < 0 {
		return fmt.Errorf("quantity %v must be a finite number >= 0: %w", q, ErrValidation)
	}

	f.quantity = q
	f.current = f.baseline.scale(q)
	return nil
}

// MarkCustom flags the food as user-created. There is no way back.
func (f *Food) MarkCustom() {
	f.custom = true
}

// DisplayName is the name shown to users, tagged when the food is custom.
func (f *Food) DisplayName() string {
	if f.custom {
		return f.name + CustomTag
	}
	return f.name
}

func (f *Food) Name() string { return f.name }
func (f *Food) Template() bool { return f.template }
func (f *Food) Custom() bool { return f.custom }
func (f *Food) Quantity() float64 { return f.quantity }
func (f *Food) Current() Macros { return f.current }
func (f *Food) Baseline() Macros { return f.baseline }
func (f *Food) Amount() float64 { return f.current.Amount }
func (f *Food) Calories() float64 { return f.current.Calories }
func (f *Food) Carbohydrates() float64 { return f.current.Carbohydrates }
func (f *Food) Proteins() float64 { return f.current.Proteins }
func (f *Food) Fats() float64 { return f.current.Fats }

// BaselineValues returns the values NewFood needs to rebuild this food.
func (f *Food) BaselineValues() []float64 {
	return []float64{f.baseline.Amount, f.baseline.Carbohydrates, f.baseline.Proteins, f.baseline.Fats}
}

// FoodEntry is a food logged in the diary.
type FoodEntry struct {
	ID       string    `json:"id"`
	Food     *Food     `json:"-"`
	LoggedAt time.Time `json:"logged_at"`
}

//
// For TOML parsing only
//

type FoodDefTOML struct {
	Name    string  `toml:"name"`
	Amount  float64 `toml:"amount"`
	Carbs   float64 `toml:"carbs"`
	Protein float64 `toml:"protein"`
	Fat     float64 `toml:"fat"`
}

func (d FoodDefTOML) Values() []float64 {
	return []float64{d.Amount, d.Carbs, d.Protein, d.Fat}
}

type FoodImport struct {
	Foods []FoodDefTOML `toml:"food"`
}
