package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/misterclayt0n/fuel/internal/logger"
	"github.com/misterclayt0n/fuel/internal/models"
	"github.com/misterclayt0n/fuel/internal/utils"
	"go.uber.org/zap"
)

// DayCalories is one day of the diary, keyed by local date (2006-01-02).
type DayCalories struct {
	Day      string
	Consumed float64
	Burned   float64
}

// LogFood copies the library food into the diary, scaled by quantity.
func (s *Storage) LogFood(ctx context.Context, foodName string, quantity float64, at time.Time) (*models.FoodEntry, error) {
	foodID, tmpl, err := s.getFood(ctx, foodName)
	if err != nil {
		return nil, err
	}

	f, err := models.NewFoodFrom(tmpl.Name(), tmpl)
	if err != nil {
		return nil, err
	}
	if tmpl.Custom() {
		f.MarkCustom()
	}
	if err := f.SetQuantity(quantity); err != nil {
		return nil, err
	}

	entry := &models.FoodEntry{
		ID:       uuid.New().String(),
		Food:     f,
		LoggedAt: at.UTC(),
	}
	base := f.Baseline()

	_, err = s.DB.ExecContext(ctx,
		`INSERT INTO food_log
			(id, food_id, name, amount, carbohydrates, proteins, fats, quantity, calories, custom, logged_at)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		entry.ID,
		foodID,
		f.Name(),
		base.Amount,
		base.Carbohydrates,
		base.Proteins,
		base.Fats,
		f.Quantity(),
		f.Calories(),
		utils.BoolToInt(f.Custom()),
		entry.LoggedAt.Format(time.RFC3339),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to log food %q: %w", f.Name(), err)
	}

	logger.Info("food logged",
		zap.String("name", f.Name()),
		zap.Float64("quantity", quantity),
		zap.Float64("calories", f.Calories()),
	)
	return entry, nil
}

func (s *Storage) LogExercise(ctx context.Context, e *models.ExerciseEntry) error {
	if err := e.Validate(); err != nil {
		return err
	}
	if e.ID == "" {
		e.ID = uuid.New().String()
	}
	if e.LoggedAt.IsZero() {
		e.LoggedAt = time.Now()
	}
	e.LoggedAt = e.LoggedAt.UTC()

	_, err := s.DB.ExecContext(ctx,
		`INSERT INTO exercise_log
			(id, name, reps, sets, weight_kg, calories_burned, logged_at)
			VALUES (?, ?, ?, ?, ?, ?, ?)`,
		e.ID,
		e.Name,
		e.Reps,
		e.Sets,
		e.WeightKG,
		e.CaloriesBurned,
		e.LoggedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("failed to log exercise %q: %w", e.Name, err)
	}

	logger.Info("exercise logged", zap.String("name", e.Name), zap.Float64("calories_burned", e.CaloriesBurned))
	return nil
}

// GetDay returns the food and exercise entries logged in [from, to).
func (s *Storage) GetDay(ctx context.Context, from, to time.Time) ([]models.FoodEntry, []models.ExerciseEntry, error) {
	foods, err := s.foodEntries(ctx, from, to)
	if err != nil {
		return nil, nil, err
	}
	exercises, err := s.exerciseEntries(ctx, from, to)
	if err != nil {
		return nil, nil, err
	}
	return foods, exercises, nil
}

func (s *Storage) foodEntries(ctx context.Context, from, to time.Time) ([]models.FoodEntry, error) {
	rows, err := s.DB.QueryContext(ctx,
		`SELECT id, name, amount, carbohydrates, proteins, fats, quantity, custom, logged_at
		FROM food_log
		WHERE logged_at >= ? AND logged_at < ?
		ORDER BY logged_at`,
		from.UTC().Format(time.RFC3339), to.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query food log: %w", err)
	}
	defer rows.Close()

	var entries []models.FoodEntry
	for rows.Next() {
		var (
			entry    models.FoodEntry
			name     string
			values   = make([]float64, 4)
			quantity float64
			custom   int
			loggedAt string
		)
		if err := rows.Scan(&entry.ID, &name, &values[0], &values[1], &values[2], &values[3],
			&quantity, &custom, &loggedAt); err != nil {
			return nil, err
		}

		f, err := models.NewFood(name, values, false)
		if err != nil {
			return nil, fmt.Errorf("logged food %s is invalid: %w", entry.ID, err)
		}
		if custom != 0 {
			f.MarkCustom()
		}
		if err := f.SetQuantity(quantity); err != nil {
			return nil, fmt.Errorf("logged food %s is invalid: %w", entry.ID, err)
		}

		entry.Food = f
		entry.LoggedAt, _ = time.Parse(time.RFC3339, loggedAt)
		entries = append(entries, entry)
	}
	return entries, rows.Err()
}

func (s *Storage) exerciseEntries(ctx context.Context, from, to time.Time) ([]models.ExerciseEntry, error) {
	rows, err := s.DB.QueryContext(ctx,
		`SELECT id, name, reps, sets, weight_kg, calories_burned, logged_at
		FROM exercise_log
		WHERE logged_at >= ? AND logged_at < ?
		ORDER BY logged_at`,
		from.UTC().Format(time.RFC3339), to.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query exercise log: %w", err)
	}
	defer rows.Close()

	var entries []models.ExerciseEntry
	for rows.Next() {
		var (
			e        models.ExerciseEntry
			loggedAt string
		)
		if err := rows.Scan(&e.ID, &e.Name, &e.Reps, &e.Sets, &e.WeightKG, &e.CaloriesBurned, &loggedAt); err != nil {
			return nil, err
		}
		e.LoggedAt, _ = time.Parse(time.RFC3339, loggedAt)
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// DailyCalories groups the diary in [from, to) by local day, oldest first.
// Days with nothing logged are included with zero totals.
func (s *Storage) DailyCalories(ctx context.Context, from, to time.Time) ([]DayCalories, error) {
	foods, exercises, err := s.GetDay(ctx, from, to)
	if err != nil {
		return nil, err
	}

	byDay := make(map[string]*DayCalories)
	var days []DayCalories
	for d, _ := utils.DayBounds(from); d.Before(to); d = d.AddDate(0, 0, 1) {
		days = append(days, DayCalories{Day: d.Format("2006-01-02")})
	}
	for i := range days {
		byDay[days[i].Day] = &days[i]
	}

	for _, e := range foods {
		if d, ok := byDay[e.LoggedAt.In(utils.Loc).Format("2006-01-02")]; ok {
			d.Consumed += e.Food.Calories()
		}
	}
	for _, e := range exercises {
		if d, ok := byDay[e.LoggedAt.In(utils.Loc).Format("2006-01-02")]; ok {
			d.Burned += e.CaloriesBurned
		}
	}
	return days, nil
}

// DeleteEntry removes a food or exercise entry by ID.
func (s *Storage) DeleteEntry(ctx context.Context, id string) error {
	for _, table := range []string{"food_log", "exercise_log"} {
		res, err := s.DB.ExecContext(ctx, fmt.Sprintf("DELETE FROM %s WHERE id = ?", table), id)
		if err != nil {
			return fmt.Errorf("failed to delete entry %s: %w", id, err)
		}
		if n, _ := res.RowsAffected(); n > 0 {
			logger.Info("entry deleted", zap.String("id", id), zap.String("table", table))
			return nil
		}
	}
	return fmt.Errorf("entry %s: %w", id, models.ErrNotFound)
}
