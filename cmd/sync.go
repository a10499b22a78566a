package cmd

import (
	"fmt"

	"github.com/misterclayt0n/fuel/internal/config"
	"github.com/misterclayt0n/fuel/internal/storage"
	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export [output-file]",
	Short: "Export the food library and diary to a TOML file",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var outputFile string
		if len(args) == 1 {
			outputFile = args[0]
		} else {
			dir, err := config.GetConfigDir()
			if err != nil {
				return err
			}
			if outputFile, err = storage.GetDBExportPath(dir); err != nil {
				return err
			}
		}

		st, err := newStorage()
		if err != nil {
			return err
		}
		defer st.Close()

		if err := st.ExportTOML(cmd.Context(), outputFile); err != nil {
			return fmt.Errorf("error exporting database: %w", err)
		}

		fmt.Printf("✅ Database exported successfully to %s\n", outputFile)
		return nil
	},
}

var buildDBCmd = &cobra.Command{
	Use:   "build-db [dump-file]",
	Short: "Rebuild the database from a TOML dump file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := newStorage()
		if err != nil {
			return err
		}
		defer st.Close()

		if err := st.ImportTOML(cmd.Context(), args[0]); err != nil {
			return fmt.Errorf("Failed to build database: %w", err)
		}
		fmt.Println("✅ Database built successfully from TOML dump.")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(buildDBCmd)
}
