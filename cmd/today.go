package cmd

import (
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/misterclayt0n/fuel/internal/diary"
	"github.com/misterclayt0n/fuel/internal/models"
	"github.com/misterclayt0n/fuel/internal/utils"
	"github.com/spf13/cobra"
)

var todayDay string

var todayCmd = &cobra.Command{
	Use:   "today",
	Short: "Show the diary for a day: foods, exercises and what is left of the target",
	RunE: func(cmd *cobra.Command, args []string) error {
		day := time.Now()
		if todayDay != "" {
			var err error
			if day, err = utils.ParseDay(todayDay); err != nil {
				return fmt.Errorf("failed to parse day: %w", err)
			}
		}

		p, err := loadProfile()
		if err != nil {
			return err
		}

		st, err := newStorage()
		if err != nil {
			return err
		}
		defer st.Close()

		from, to := utils.DayBounds(day)
		foodEntries, exercises, err := st.GetDay(cmd.Context(), from, to)
		if err != nil {
			return fmt.Errorf("failed to load diary: %w", err)
		}

		foods := make([]*models.Food, len(foodEntries))
		for i, e := range foodEntries {
			foods[i] = e.Food
		}
		totals := diary.Summarize(p.Target(), foods, exercises)

		printBoxedHeader(from.Format("Monday, 02 Jan 2006"))

		section := color.New(color.FgGreen, color.Bold)
		dim := color.New(color.FgHiBlack)

		section.Println("Foods:")
		if len(foodEntries) == 0 {
			dim.Println("  nothing logged")
		}
		for _, e := range foodEntries {
			fmt.Printf("  • %s x%s: %s  %s\n",
				color.New(color.FgMagenta, color.Bold).Sprint(e.Food.DisplayName()),
				num(e.Food.Quantity()),
				kcal(e.Food.Calories()),
				dim.Sprintf("[%s]", e.ID))
		}
		fmt.Println()

		section.Println("Exercises:")
		if len(exercises) == 0 {
			dim.Println("  nothing logged")
		}
		for _, e := range exercises {
			fmt.Printf("  • %s %dx%d @ %s kg: -%s  %s\n",
				color.New(color.FgMagenta, color.Bold).Sprint(e.Name),
				e.Sets, e.Reps, num(e.WeightKG), kcal(e.CaloriesBurned),
				dim.Sprintf("[%s]", e.ID))
		}
		fmt.Println()

		split := diary.MacroSplit(totals)
		printMetric("Target", kcal(totals.Target))
		printMetric("Consumed", kcal(totals.Consumed))
		printMetric("Burned", kcal(totals.Burned))
		printMetric("Net", kcal(totals.Net()))
		printMetric("Macros", fmt.Sprintf("C %sg (%s%%)  P %sg (%s%%)  F %sg (%s%%)",
			num(totals.Carbohydrates), num(split.Carbohydrates),
			num(totals.Proteins), num(split.Proteins),
			num(totals.Fats), num(split.Fats)))

		remaining := totals.Remaining()
		c := color.New(color.FgGreen, color.Bold)
		if remaining < 0 {
			c = color.New(color.FgRed, color.Bold)
		}
		fmt.Printf("  %s: %s\n", c.Sprint("Remaining"), kcal(remaining))
		return nil
	},
}

func init() {
	todayCmd.Flags().StringVarP(&todayDay, "day", "d", "", "Day to show (2006-01-02), defaults to today")
	rootCmd.AddCommand(todayCmd)
}
