package cmd

import (
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/guptarohit/asciigraph"
	"github.com/misterclayt0n/fuel/internal/utils"
	"github.com/spf13/cobra"
)

var historyDays int

// historyCmd charts net calories per day against the current target.
var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Chart daily net calories against your target",
	RunE: func(cmd *cobra.Command, args []string) error {
		if historyDays < 2 {
			return fmt.Errorf("--days must be at least 2")
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

		_, to := utils.DayBounds(time.Now())
		from := to.AddDate(0, 0, -historyDays)
		days, err := st.DailyCalories(cmd.Context(), from, to)
		if err != nil {
			return fmt.Errorf("failed to load history: %w", err)
		}

		net := make([]float64, len(days))
		target := make([]float64, len(days))
		var onTarget int
		for i, d := range days {
			net[i] = d.Consumed - d.Burned
			target[i] = p.Target()
			if net[i] <= p.Target() {
				onTarget++
			}
		}

		printBoxedHeader(fmt.Sprintf("LAST %d DAYS", historyDays))
		graph := asciigraph.PlotMany([][]float64{net, target},
			asciigraph.Height(12),
			asciigraph.Precision(0),
			asciigraph.SeriesColors(asciigraph.Green, asciigraph.Red),
			asciigraph.Caption(fmt.Sprintf("net kcal (green) vs target %s (red), %s to %s",
				num(p.Target()), days[0].Day, days[len(days)-1].Day)),
		)
		fmt.Println(graph)
		fmt.Println()

		for _, d := range days {
			n := d.Consumed - d.Burned
			c := color.New(color.FgGreen)
			if n > p.Target() {
				c = color.New(color.FgRed)
			}
			fmt.Printf("  %s  %s\n", d.Day, c.Sprint(kcal(n)))
		}
		fmt.Println()
		printMetric("Days at or under target", fmt.Sprintf("%d/%d", onTarget, len(days)))
		return nil
	},
}

func init() {
	historyCmd.Flags().IntVar(&historyDays, "days", 14, "Number of days to show")
	rootCmd.AddCommand(historyCmd)
}
