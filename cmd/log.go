package cmd

import (
	"fmt"
	"time"

	"github.com/misterclayt0n/fuel/internal/models"
	"github.com/misterclayt0n/fuel/internal/utils"
	"github.com/spf13/cobra"
)

var (
	logQuantity float64
	logGrams    float64
	logDay      string

	exName     string
	exReps     int
	exSets     int
	exWeight   float64
	exCalories float64
)

var logFoodCmd = &cobra.Command{
	Use:   "log-food [food]",
	Short: "Log a library food in the diary",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		at, err := logTime(logDay)
		if err != nil {
			return err
		}

		st, err := newStorage()
		if err != nil {
			return err
		}
		defer st.Close()

		quantity := logQuantity
		if cmd.Flags().Changed("grams") {
			tmpl, err := st.GetFoodByName(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			quantity = logGrams / tmpl.Baseline().Amount
		}

		entry, err := st.LogFood(cmd.Context(), args[0], quantity, at)
		if err != nil {
			return fmt.Errorf("Failed to log food: %w", err)
		}

		fmt.Printf("✅ Logged %s x%s: %s (%s)\n",
			entry.Food.DisplayName(), num(entry.Food.Quantity()), kcal(entry.Food.Calories()), entry.ID)
		return nil
	},
}

var logExerciseCmd = &cobra.Command{
	Use:   "log-exercise",
	Short: "Log an exercise in the diary",
	RunE: func(cmd *cobra.Command, args []string) error {
		at, err := logTime(logDay)
		if err != nil {
			return err
		}

		entry := models.ExerciseEntry{
			Name:           exName,
			Reps:           exReps,
			Sets:           exSets,
			WeightKG:       exWeight,
			CaloriesBurned: exCalories,
			LoggedAt:       at,
		}
		if err := entry.Validate(); err != nil {
			return fmt.Errorf("Invalid exercise: %w", err)
		}

		st, err := newStorage()
		if err != nil {
			return err
		}
		defer st.Close()

		if err := st.LogExercise(cmd.Context(), &entry); err != nil {
			return fmt.Errorf("Failed to log exercise: %w", err)
		}

		fmt.Printf("✅ Logged %s: -%s (%s)\n", entry.Name, kcal(entry.CaloriesBurned), entry.ID)
		return nil
	},
}

var deleteEntryCmd = &cobra.Command{
	Use:   "delete-entry [id]",
	Short: "Delete a food or exercise entry from the diary",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := newStorage()
		if err != nil {
			return err
		}
		defer st.Close()

		if err := st.DeleteEntry(cmd.Context(), args[0]); err != nil {
			return fmt.Errorf("Failed to delete entry: %w", err)
		}

		fmt.Printf("✅ Deleted entry %s\n", args[0])
		return nil
	},
}

// logTime is now, or noon of the given day when logging into the past.
func logTime(day string) (time.Time, error) {
	if day == "" {
		return time.Now(), nil
	}
	d, err := utils.ParseDay(day)
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to parse day: %w", err)
	}
	return d.Add(12 * time.Hour), nil
}

func init() {
	logFoodCmd.Flags().Float64VarP(&logQuantity, "quantity", "q", 1, "Multiple of the food's reference amount")
	logFoodCmd.Flags().Float64VarP(&logGrams, "grams", "g", 0, "Amount eaten in grams (overrides quantity)")
	logFoodCmd.Flags().StringVarP(&logDay, "day", "d", "", "Day to log into (2006-01-02), defaults to now")

	logExerciseCmd.Flags().StringVarP(&exName, "name", "n", "", "Exercise name")
	logExerciseCmd.Flags().IntVarP(&exReps, "reps", "r", 0, "Reps per set")
	logExerciseCmd.Flags().IntVarP(&exSets, "sets", "s", 0, "Number of sets")
	logExerciseCmd.Flags().Float64VarP(&exWeight, "weight", "w", 0, "Weight used in kg")
	logExerciseCmd.Flags().Float64VarP(&exCalories, "calories", "c", 0, "Calories burned")
	logExerciseCmd.Flags().StringVarP(&logDay, "day", "d", "", "Day to log into (2006-01-02), defaults to now")
	logExerciseCmd.MarkFlagRequired("name")
	logExerciseCmd.MarkFlagRequired("calories")

	rootCmd.AddCommand(logFoodCmd)
	rootCmd.AddCommand(logExerciseCmd)
	rootCmd.AddCommand(deleteEntryCmd)
}
