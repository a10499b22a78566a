package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/misterclayt0n/fuel/internal/logger"
	"github.com/misterclayt0n/fuel/internal/models"
	"github.com/misterclayt0n/fuel/internal/utils"
	"go.uber.org/zap"
)

// CreateFood stores f's baseline values in the food library, replacing any
// food with the same name.
func (s *Storage) CreateFood(ctx context.Context, f *models.Food) error {
	base := f.Baseline()

	_, err := s.DB.ExecContext(ctx,
		`INSERT INTO foods
			(id, name, amount, carbohydrates, proteins, fats, calories, custom, created_at)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
			ON CONFLICT(name) DO UPDATE SET
				amount = excluded.amount,
				carbohydrates = excluded.carbohydrates,
				proteins = excluded.proteins,
				fats = excluded.fats,
				calories = excluded.calories,
				custom = excluded.custom`,
		uuid.New().String(),
		f.Name(),
		base.Amount,
		base.Carbohydrates,
		base.Proteins,
		base.Fats,
		base.Calories,
		utils.BoolToInt(f.Custom()),
		time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("failed to save food %q: %w", f.Name(), err)
	}

	logger.Debug("food saved", zap.String("name", f.Name()), zap.Float64("calories", base.Calories))
	return nil
}

// GetFoodByName returns the library food as a template.
func (s *Storage) GetFoodByName(ctx context.Context, name string) (*models.Food, error) {
	_, f, err := s.getFood(ctx, name)
	return f, err
}

func (s *Storage) getFood(ctx context.Context, name string) (string, *models.Food, error) {
	var (
		id     string
		values = make([]float64, 4)
		custom int
	)

	err := s.DB.QueryRowContext(ctx,
		`SELECT id, name, amount, carbohydrates, proteins, fats, custom
		FROM foods WHERE name = ? COLLATE NOCASE`,
		name,
	).Scan(&id, &name, &values[0], &values[1], &values[2], &values[3], &custom)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil, fmt.Errorf("food %q: %w", name, models.ErrNotFound)
	}
	if err != nil {
		return "", nil, fmt.Errorf("failed to load food %q: %w", name, err)
	}

	f, err := buildTemplate(name, values, custom)
	if err != nil {
		return "", nil, err
	}
	return id, f, nil
}

func (s *Storage) ListFoods(ctx context.Context) ([]*models.Food, error) {
	rows, err := s.DB.QueryContext(ctx,
		`SELECT name, amount, carbohydrates, proteins, fats, custom
		FROM foods ORDER BY name COLLATE NOCASE`)
	if err != nil {
		return nil, fmt.Errorf("failed to list foods: %w", err)
	}
	defer rows.Close()

	var foods []*models.Food
	for rows.Next() {
		var (
			name   string
			values = make([]float64, 4)
			custom int
		)
		if err := rows.Scan(&name, &values[0], &values[1], &values[2], &values[3], &custom); err != nil {
			return nil, err
		}

		f, err := buildTemplate(name, values, custom)
		if err != nil {
			return nil, err
		}
		foods = append(foods, f)
	}
	return foods, rows.Err()
}

// Rows go back through NewFood so a corrupted row never becomes a food.
func buildTemplate(name string, values []float64, custom int) (*models.Food, error) {
	f, err := models.NewFood(name, values, true)
	if err != nil {
		return nil, fmt.Errorf("stored food %q is invalid: %w", name, err)
	}
	if custom != 0 {
		f.MarkCustom()
	}
	return f, nil
}
