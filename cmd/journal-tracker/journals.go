package main

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/journal-tracker/internal/export"
	"github.com/pdiddy/journal-tracker/internal/journals"
)

var journalsCmd = &cobra.Command{
	Use:   "journals",
	Short: "List the journals available for fetching",
	RunE: func(cmd *cobra.Command, args []string) error {
		dir, err := loadDirectory(viper.GetString("journals_file"))
		if err != nil {
			return err
		}
		return export.WriteJournals(cmd.OutOrStdout(), dir)
	},
}

// loadDirectory returns the journal directory from path, or the built-in
// table when path is empty.
func loadDirectory(path string) (journals.Directory, error) {
	if path == "" {
		return journals.Default(), nil
	}
	return journals.Load(path)
}

func init() {
	rootCmd.PersistentFlags().String("journals-file", "", "YAML file replacing the built-in journal list")
	_ = viper.BindPFlag("journals_file", rootCmd.PersistentFlags().Lookup("journals-file"))

	rootCmd.AddCommand(journalsCmd)
}
