package storage

import (
	"context"
	"fmt"
)

func (s *Storage) FoodExists(ctx context.Context, name string) (bool, error) {
	var exists bool
	err := s.DB.QueryRowContext(ctx,
		"SELECT EXISTS(SELECT 1 FROM foods WHERE name = ? COLLATE NOCASE)",
		name,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check food existence: %w", err)
	}

	return exists, nil
}
