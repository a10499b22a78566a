package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/misterclayt0n/fuel/internal/models"
	"github.com/misterclayt0n/fuel/internal/utils"
	"github.com/spf13/cobra"
)

var (
	foodName     string
	foodAmount   float64
	foodCarbs    float64
	foodProtein  float64
	foodFat      float64
	foodCustom   bool
	showQuantity float64
)

var addFoodCmd = &cobra.Command{
	Use:   "add-food",
	Short: "Add a food to the library (values per reference amount)",
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := models.NewFood(foodName, []float64{foodAmount, foodCarbs, foodProtein, foodFat}, true)
		if err != nil {
			return fmt.Errorf("Invalid food: %w", err)
		}
		if foodCustom {
			f.MarkCustom()
		}

		st, err := newStorage()
		if err != nil {
			return err
		}
		defer st.Close()

		if err := st.CreateFood(cmd.Context(), f); err != nil {
			return fmt.Errorf("Failed to create food: %w", err)
		}

		fmt.Printf("✅ Added %s: %s per %sg\n", f.DisplayName(), kcal(f.Calories()), num(f.Amount()))
		return nil
	},
}

var importFoodsCmd = &cobra.Command{
	Use:   "import-foods [file]",
	Short: "Import foods from a TOML file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		importData, err := utils.ParseFoodsFromTOML(args[0])
		if err != nil {
			return fmt.Errorf("invalid TOML file: %w", err)
		}

		// Validate everything before writing anything.
		foods := make([]*models.Food, 0, len(importData.Foods))
		for _, def := range importData.Foods {
			f, err := models.NewFood(def.Name, def.Values(), true)
			if err != nil {
				return fmt.Errorf("invalid food %s: %w", def.Name, err)
			}
			foods = append(foods, f)
		}

		st, err := newStorage()
		if err != nil {
			return err
		}
		defer st.Close()

		for _, f := range foods {
			if err := st.CreateFood(cmd.Context(), f); err != nil {
				return fmt.Errorf("failed to create food %s: %w", f.Name(), err)
			}
		}

		fmt.Printf("✅ Imported %d foods\n", len(foods))
		return nil
	},
}

var listFoodsCmd = &cobra.Command{
	Use:   "list-foods",
	Short: "List the food library",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := newStorage()
		if err != nil {
			return err
		}
		defer st.Close()

		foods, err := st.ListFoods(cmd.Context())
		if err != nil {
			return err
		}
		if len(foods) == 0 {
			fmt.Println("No foods yet, add some with add-food or import-foods")
			return nil
		}

		printFoodHeader()
		for _, f := range foods {
			printFoodRow(f)
		}
		return nil
	},
}

var showFoodCmd = &cobra.Command{
	Use:   "show-food [name]",
	Short: "Show a food's nutrition, optionally for a quantity",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := newStorage()
		if err != nil {
			return err
		}
		defer st.Close()

		tmpl, err := st.GetFoodByName(cmd.Context(), args[0])
		if err != nil {
			return err
		}

		// Library foods are templates, scale a copy.
		f, err := models.NewFoodFrom(tmpl.Name(), tmpl)
		if err != nil {
			return err
		}
		if tmpl.Custom() {
			f.MarkCustom()
		}
		if err := f.SetQuantity(showQuantity); err != nil {
			return err
		}

		printFoodHeader()
		printFoodRow(f)
		return nil
	},
}

func printFoodHeader() {
	header := color.New(color.FgCyan, color.Bold)
	header.Printf("%-30s %8s %6s %10s %8s %8s %8s\n", "Food", "Amount", "Qty", "Calories", "Carbs", "Protein", "Fat")
}

func printFoodRow(f *models.Food) {
	fmt.Printf("%-30s %8s %6s %10s %8s %8s %8s\n",
		f.DisplayName(),
		num(f.Amount()),
		num(f.Quantity()),
		num(f.Calories()),
		num(f.Carbohydrates()),
		num(f.Proteins()),
		num(f.Fats()),
	)
}

func init() {
	addFoodCmd.Flags().StringVarP(&foodName, "name", "n", "", "Food name")
	addFoodCmd.Flags().Float64VarP(&foodAmount, "amount", "a", 100, "Reference amount in grams")
	addFoodCmd.Flags().Float64VarP(&foodCarbs, "carbs", "c", 0, "Carbohydrates (g) per reference amount")
	addFoodCmd.Flags().Float64VarP(&foodProtein, "protein", "p", 0, "Protein (g) per reference amount")
	addFoodCmd.Flags().Float64VarP(&foodFat, "fat", "f", 0, "Fat (g) per reference amount")
	addFoodCmd.Flags().BoolVar(&foodCustom, "custom", true, "Mark the food as user-created")
	addFoodCmd.MarkFlagRequired("name")

	showFoodCmd.Flags().Float64VarP(&showQuantity, "quantity", "q", 1, "Multiple of the reference amount")

	rootCmd.AddCommand(addFoodCmd)
	rootCmd.AddCommand(importFoodsCmd)
	rootCmd.AddCommand(listFoodsCmd)
	rootCmd.AddCommand(showFoodCmd)
}
