package cmd

import (
	"fmt"
	"strconv"

	"github.com/fatih/color"
	"github.com/misterclayt0n/fuel/internal/energy"
	"github.com/misterclayt0n/fuel/internal/logger"
	"github.com/misterclayt0n/fuel/internal/models"
	"github.com/misterclayt0n/fuel/internal/utils"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	profileWeight   float64
	profileHeight   float64
	profileAge      float64
	profileSex      string
	profileActivity string
	profileGoal     string
)

var setProfileCmd = &cobra.Command{
	Use:   "set-profile",
	Short: "Set your body stats, activity level and goal",
	RunE: func(cmd *cobra.Command, args []string) error {
		activity, ok := models.ActivityByLabel(profileActivity)
		if !ok {
			return fmt.Errorf("Unknown activity level %q, see list-activities", profileActivity)
		}
		goal, ok := models.GoalByLabel(profileGoal)
		if !ok {
			return fmt.Errorf("Unknown goal %q, see list-goals", profileGoal)
		}

		stats := energy.Stats{
			WeightKG: profileWeight,
			HeightCM: profileHeight,
			AgeYears: profileAge,
			Sex:      profileSex,
		}

		p, err := energy.NewProfile(stats, activity, goal)
		if err != nil {
			return fmt.Errorf("Invalid profile: %w", err)
		}
		return saveAndShowProfile(p)
	},
}

var setActivityCmd = &cobra.Command{
	Use:   "set-activity [level]",
	Short: "Change your activity level",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		activity, ok := models.ActivityByLabel(args[0])
		if !ok {
			return fmt.Errorf("Unknown activity level %q, see list-activities", args[0])
		}

		p, err := loadProfile()
		if err != nil {
			return err
		}
		if err := p.SetActivity(activity); err != nil {
			return fmt.Errorf("Failed to set activity: %w", err)
		}
		return saveAndShowProfile(p)
	},
}

var setGoalCmd = &cobra.Command{
	Use:   "set-goal [goal]",
	Short: "Change your goal (lose-weight, maintain-weight, gain-weight)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		goal, ok := models.GoalByLabel(args[0])
		if !ok {
			return fmt.Errorf("Unknown goal %q, see list-goals", args[0])
		}

		p, err := loadProfile()
		if err != nil {
			return err
		}
		if err := p.SetGoal(goal); err != nil {
			return fmt.Errorf("Failed to set goal: %w", err)
		}
		return saveAndShowProfile(p)
	},
}

var setWeightCmd = &cobra.Command{
	Use:   "set-weight [kg]",
	Short: "Update your body weight and recompute targets",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		kg, err := strconv.ParseFloat(args[0], 64)
		if err != nil {
			return fmt.Errorf("Invalid weight %q", args[0])
		}

		p, err := loadProfile()
		if err != nil {
			return err
		}
		stats := p.Stats()
		stats.WeightKG = kg
		if err := p.SetStats(stats); err != nil {
			return fmt.Errorf("Failed to set weight: %w", err)
		}
		return saveAndShowProfile(p)
	},
}

var showProfileCmd = &cobra.Command{
	Use:   "show-profile",
	Short: "Show your stats, BMR, TDEE and calorie target",
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := loadProfile()
		if err != nil {
			return err
		}
		printProfile(p)
		return nil
	},
}

var listActivitiesCmd = &cobra.Command{
	Use:   "list-activities",
	Short: "List activity levels and their multipliers",
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, a := range models.Activities() {
			fmt.Printf("%-20s x%-6v (%s)\n", a.Label, a.Multiplier, models.Slug(a.Label))
		}
		return nil
	},
}

var listGoalsCmd = &cobra.Command{
	Use:   "list-goals",
	Short: "List goals and their multipliers",
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, g := range models.Goals() {
			fmt.Printf("%-20s x%-6v (%s)\n", g.Label, g.Multiplier, models.Slug(g.Label))
		}
		return nil
	},
}

func loadProfile() (*energy.Profile, error) {
	if !utils.ProfileExists() {
		return nil, fmt.Errorf("No profile yet, run set-profile first")
	}
	p, err := utils.LoadProfile()
	if err != nil {
		return nil, fmt.Errorf("Failed to load profile: %w", err)
	}
	return p, nil
}

func saveAndShowProfile(p *energy.Profile) error {
	if err := utils.SaveProfile(p); err != nil {
		return fmt.Errorf("Failed to save profile: %w", err)
	}
	logger.Info("profile recalculated",
		zap.String("activity", p.Activity().Label),
		zap.String("goal", p.Goal().Label),
		zap.Float64("target", p.Target()),
	)

	fmt.Println("✅ Profile saved")
	printProfile(p)
	return nil
}

func printProfile(p *energy.Profile) {
	s := p.Stats()
	printBoxedHeader("PROFILE")
	printMetric("Weight", num(s.WeightKG)+" kg")
	printMetric("Height", num(s.HeightCM)+" cm")
	printMetric("Age", num(s.AgeYears))
	printMetric("Sex", s.Sex)
	printMetric("Activity", fmt.Sprintf("%s (x%v)", p.Activity().Label, p.Activity().Multiplier))
	printMetric("Goal", fmt.Sprintf("%s (x%v)", p.Goal().Label, p.Goal().Multiplier))
	fmt.Println()
	printMetric("BMR", kcal(p.BMR()))
	printMetric("TDEE", kcal(p.TDEE()))
	fmt.Printf("  %s: %s\n", color.New(color.FgGreen, color.Bold).Sprint("Daily target"), kcal(p.Target()))
}

func init() {
	setProfileCmd.Flags().Float64VarP(&profileWeight, "weight", "w", 0, "Body weight in kg")
	setProfileCmd.Flags().Float64Var(&profileHeight, "height", 0, "Height in cm")
	setProfileCmd.Flags().Float64VarP(&profileAge, "age", "a", 0, "Age in years")
	setProfileCmd.Flags().StringVarP(&profileSex, "sex", "s", "", "male or female")
	setProfileCmd.Flags().StringVar(&profileActivity, "activity", "sedentary", "Activity level, see list-activities")
	setProfileCmd.Flags().StringVarP(&profileGoal, "goal", "g", "maintain-weight", "Goal, see list-goals")

	setProfileCmd.MarkFlagRequired("weight")
	setProfileCmd.MarkFlagRequired("height")
	setProfileCmd.MarkFlagRequired("age")
	setProfileCmd.MarkFlagRequired("sex")

	rootCmd.AddCommand(setProfileCmd)
	rootCmd.AddCommand(setActivityCmd)
	rootCmd.AddCommand(setGoalCmd)
	rootCmd.AddCommand(setWeightCmd)
	rootCmd.AddCommand(showProfileCmd)
	rootCmd.AddCommand(listActivitiesCmd)
	rootCmd.AddCommand(listGoalsCmd)
}
