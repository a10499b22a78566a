package models

import (
	"errors"
	"math"
	"testing"
)

func mustFood(t *testing.T, name string, values []float64, template bool) *Food {
	t.Helper()
	f, err := NewFood(name, values, template)
	if err != nil {
		t.Fatalf("NewFood(%q, %v): %v", name, values, err)
	}
	return f
}

func TestNewFood_Calories(t *testing.T) {
	cases := []struct {
		name   string
		values []float64
		want   float64
	}{
		{"mixed", []float64{100, 50, 20, 10}, 370},
		{"carbs only", []float64{30, 25, 0, 0}, 100},
		{"protein only", []float64{100, 0, 31, 0}, 124},
		{"fat only", []float64{15, 0, 0, 14}, 126},
		{"all zero macros", []float64{100, 0, 0, 0}, 0},
		{"fractional", []float64{1, 0.5, 0.25, 0.125}, 4.125},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f := mustFood(t, tc.name, tc.values, false)
			if f.Calories() != tc.want {
				t.Errorf("Calories() = %v, want %v", f.Calories(), tc.want)
			}
			if f.Baseline().Calories != tc.want {
				t.Errorf("Baseline().Calories = %v, want %v", f.Baseline().Calories, tc.want)
			}
			c, p, fat := tc.values[1], tc.values[2], tc.values[3]
			if f.Calories() != 4*c+4*p+9*fat {
				t.Errorf("calories %v != 4c+4p+9f", f.Calories())
			}
			if f.Current() != f.Baseline() {
				t.Errorf("new food current %+v differs from baseline %+v", f.Current(), f.Baseline())
			}
			if f.Quantity() != 1 {
				t.Errorf("Quantity() = %v, want 1", f.Quantity())
			}
		})
	}
}

func TestNewFood_Validation(t *testing.T) {
	cases := []struct {
		name   string
		values []float64
	}{
		{"too few values", []float64{100, 1, 2}},
		{"too many values", []float64{100, 1, 2, 3, 4}},
		{"no values", nil},
		{"zero amount", []float64{0, 1, 2, 3}},
		{"negative amount", []float64{-1, 1, 2, 3}},
		{"negative carbs", []float64{100, -1, 2, 3}},
		{"negative protein", []float64{100, 1, -2, 3}},
		{"negative fat", []float64{100, 1, 2, -3}},
		{"NaN", []float64{100, math.NaN(), 2, 3}},
		{"infinite", []float64{math.Inf(1), 1, 2, 3}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f, err := NewFood("bad", tc.values, false)
			if !errors.Is(err, ErrValidation) {
				t.Fatalf("expected ErrValidation, got %v", err)
			}
			if f != nil {
				t.Errorf("expected nil food on error, got %+v", f)
			}
		})
	}
}

func TestSetQuantity_ScalesFromBaseline(t *testing.T) {
	f := mustFood(t, "rice", []float64{100, 50, 20, 10}, false)

	if err := f.SetQuantity(2); err != nil {
		t.Fatalf("SetQuantity(2): %v", err)
	}
	want := Macros{Amount: 200, Carbohydrates: 100, Proteins: 40, Fats: 20, Calories: 740}
	if f.Current() != want {
		t.Errorf("Current() = %+v, want %+v", f.Current(), want)
	}
	if f.Baseline().Calories != 370 {
		t.Errorf("baseline calories changed to %v", f.Baseline().Calories)
	}

	// Rescaling uses the baseline, not the last-set values.
	if err := f.SetQuantity(3); err != nil {
		t.Fatalf("SetQuantity(3): %v", err)
	}
	if f.Amount() != 300 || f.Calories() != 1110 {
		t.Errorf("after SetQuantity(3): amount %v calories %v, want 300 and 1110", f.Amount(), f.Calories())
	}

	if err := f.SetQuantity(1); err != nil {
		t.Fatalf("SetQuantity(1): %v", err)
	}
	if f.Current() != f.Baseline() {
		t.Errorf("SetQuantity(1) did not restore baseline: %+v vs %+v", f.Current(), f.Baseline())
	}
}

func TestSetQuantity_Grid(t *testing.T) {
	quantities := []float64{0, 0.25, 0.5, 1, 1.5, 2, 3.3, 10}

	for _, q := range quantities {
		f := mustFood(t, "oats", []float64{40, 27, 5, 3}, false)
		if err := f.SetQuantity(q); err != nil {
			t.Fatalf("SetQuantity(%v): %v", q, err)
		}
		b := f.Baseline()
		if f.Amount() != b.Amount*q ||
			f.Carbohydrates() != b.Carbohydrates*q ||
			f.Proteins() != b.Proteins*q ||
			f.Fats() != b.Fats*q ||
			f.Calories() != b.Calories*q {
			t.Errorf("q=%v: current %+v is not baseline %+v scaled", q, f.Current(), b)
		}
		if f.Quantity() != q {
			t.Errorf("Quantity() = %v, want %v", f.Quantity(), q)
		}
	}
}

func TestSetQuantity_RejectsBadQuantity(t *testing.T) {
	for _, q := range []float64{-1, math.NaN(), math.Inf(1)} {
		f := mustFood(t, "egg", []float64{50, 0.5, 6, 5}, false)
		before := f.Current()
		if err := f.SetQuantity(q); !errors.Is(err, ErrValidation) {
			t.Errorf("SetQuantity(%v): expected ErrValidation, got %v", q, err)
		}
		if f.Current() != before || f.Quantity() != 1 {
			t.Errorf("SetQuantity(%v) changed the food", q)
		}
	}
}

func TestSetQuantity_TemplateRejected(t *testing.T) {
	f := mustFood(t, "bread", []float64{30, 15, 3, 1}, true)

	for i := 0; i < 3; i++ {
		err := f.SetQuantity(2)
		if !errors.Is(err, ErrInvalidOperation) {
			t.Fatalf("call %d: expected ErrInvalidOperation, got %v", i, err)
		}
		if f.Quantity() != 1 {
			t.Errorf("template quantity changed to %v", f.Quantity())
		}
		if f.Current() != f.Baseline() {
			t.Errorf("template current %+v differs from baseline %+v", f.Current(), f.Baseline())
		}
	}
}

func TestMarkCustom_Idempotent(t *testing.T) {
	f := mustFood(t, "protein bar", []float64{60, 20, 20, 7}, false)
	if f.DisplayName() != "protein bar" {
		t.Errorf("DisplayName() = %q before MarkCustom", f.DisplayName())
	}

	f.MarkCustom()
	once := f.DisplayName()
	f.MarkCustom()
	twice := f.DisplayName()

	if once != "protein bar (custom)" {
		t.Errorf("DisplayName() = %q, want %q", once, "protein bar (custom)")
	}
	if once != twice {
		t.Errorf("MarkCustom is not idempotent: %q then %q", once, twice)
	}
	if f.Name() != "protein bar" {
		t.Errorf("Name() was rewritten to %q", f.Name())
	}
	if !f.Custom() {
		t.Error("Custom() = false after MarkCustom")
	}
}

func TestNewFoodFrom(t *testing.T) {
	t.Run("copy of template is editable", func(t *testing.T) {
		tmpl := mustFood(t, "milk", []float64{250, 12, 8, 5}, true)
		tmpl.MarkCustom()

		f, err := NewFoodFrom("milk", tmpl)
		if err != nil {
			t.Fatalf("NewFoodFrom: %v", err)
		}
		if f.Template() || f.Custom() {
			t.Errorf("copy should not be template or custom: template=%v custom=%v", f.Template(), f.Custom())
		}
		if err := f.SetQuantity(2); err != nil {
			t.Fatalf("SetQuantity on copy: %v", err)
		}
		if tmpl.Quantity() != 1 || tmpl.Calories() != tmpl.Baseline().Calories {
			t.Error("scaling the copy changed the template")
		}
	})

	t.Run("keeps quantity and baseline", func(t *testing.T) {
		src := mustFood(t, "pasta", []float64{100, 75, 13, 1.5}, false)
		if err := src.SetQuantity(1.5); err != nil {
			t.Fatal(err)
		}

		f, err := NewFoodFrom("pasta copy", src)
		if err != nil {
			t.Fatalf("NewFoodFrom: %v", err)
		}
		if f.Name() != "pasta copy" {
			t.Errorf("Name() = %q", f.Name())
		}
		if f.Quantity() != 1.5 || f.Current() != src.Current() || f.Baseline() != src.Baseline() {
			t.Errorf("copy %+v/%+v differs from source %+v/%+v", f.Current(), f.Baseline(), src.Current(), src.Baseline())
		}
		if err := f.SetQuantity(1); err != nil {
			t.Fatal(err)
		}
		if f.Current() != src.Baseline() {
			t.Errorf("copy rescaled to %+v, want baseline %+v", f.Current(), src.Baseline())
		}
	})

	t.Run("copy of zero quantity item", func(t *testing.T) {
		src := mustFood(t, "apple", []float64{180, 25, 0.5, 0.3}, false)
		if err := src.SetQuantity(0); err != nil {
			t.Fatal(err)
		}
		if _, err := NewFoodFrom("apple", src); err != nil {
			t.Errorf("NewFoodFrom(quantity 0): %v", err)
		}
	})

	t.Run("mismatched calories", func(t *testing.T) {
		src := mustFood(t, "cheese", []float64{30, 0.4, 7, 9}, false)
		src.current.Calories = 999

		f, err := NewFoodFrom("cheese", src)
		if !errors.Is(err, ErrValidation) {
			t.Fatalf("expected ErrValidation, got %v", err)
		}
		if f != nil {
			t.Error("expected nil food on error")
		}
	})

	t.Run("mismatched baseline calories", func(t *testing.T) {
		src := mustFood(t, "butter", []float64{10, 0, 0.1, 8}, false)
		src.baseline.Calories = 1

		if _, err := NewFoodFrom("butter", src); !errors.Is(err, ErrValidation) {
			t.Fatalf("expected ErrValidation, got %v", err)
		}
	})

	t.Run("negative macro", func(t *testing.T) {
		src := mustFood(t, "yogurt", []float64{150, 6, 15, 0}, false)
		src.current.Proteins = -15
		src.current.Calories = Calories(src.current.Carbohydrates, src.current.Proteins, src.current.Fats)

		if _, err := NewFoodFrom("yogurt", src); !errors.Is(err, ErrValidation) {
			t.Fatalf("expected ErrValidation, got %v", err)
		}
	})

	t.Run("nil source", func(t *testing.T) {
		if _, err := NewFoodFrom("nothing", nil); !errors.Is(err, ErrValidation) {
			t.Fatalf("expected ErrValidation, got %v", err)
		}
	})
}

func TestBaselineValues_RoundTrip(t *testing.T) {
	f := mustFood(t, "tuna", []float64{120, 0, 30, 1}, false)
	if err := f.SetQuantity(2); err != nil {
		t.Fatal(err)
	}

	rebuilt := mustFood(t, f.Name(), f.BaselineValues(), false)
	if err := rebuilt.SetQuantity(f.Quantity()); err != nil {
		t.Fatal(err)
	}
	if rebuilt.Current() != f.Current() {
		t.Errorf("rebuilt %+v, want %+v", rebuilt.Current(), f.Current())
	}
}
