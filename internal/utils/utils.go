package utils

import (
	"math"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/misterclayt0n/fuel/internal/models"
)

func ParseFoodsFromTOML(path string) (*models.FoodImport, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var foods models.FoodImport
	if err := toml.Unmarshal(data, &foods); err != nil {
		return nil, err
	}

	return &foods, nil
}

// Round rounds v half away from zero to the given number of decimal places.
func Round(v float64, places int) float64 {
	if places < 0 {
		return v
	}
	pow := math.Pow(10, float64(places))
	return math.Round(v*pow) / pow
}

func BoolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
