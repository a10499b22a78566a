package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var initSetupCmd = &cobra.Command{
	Use:   "init",
	Short: "Create the database tables",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := newStorage()
		if err != nil {
			return err
		}
		defer st.Close()

		fmt.Printf("✅ Database initialized at %s\n", cfg.DB.ConnectionString)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(initSetupCmd)
}
