package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func extractCmd() *cobra.Command {
	var flags commonFlags

	cmd := &cobra.Command{
		Use:   "extract",
		Short: "Run the extraction once and write the materials file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, _, runner, err := flags.setup(cmd)
			if err != nil {
				return err
			}
			_, report, err := runner.Build(cmd.Context(), cfg.NotesDir, cfg.OutputPath)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "total: %d records\n", report.Records)
			return nil
		},
	}
	flags.register(cmd)
	return cmd
}
