package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/dgallion1/notesgest/internal/config"
	"github.com/dgallion1/notesgest/internal/parser"
	"github.com/dgallion1/notesgest/internal/pipeline"
	"github.com/dgallion1/notesgest/internal/routing"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "notesgest",
		Short:         "Extract course-note outlines into a level/category materials file",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(extractCmd())
	root.AddCommand(serveCmd())
	return root
}

// commonFlags are the config overrides shared by every subcommand.
type commonFlags struct {
	notes  string
	out    string
	routes string
}

func (f *commonFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.notes, "notes", "", "notes directory (overrides NOTES_DIR)")
	cmd.Flags().StringVarP(&f.out, "out", "o", "", "output JSON path (overrides OUTPUT_PATH)")
	cmd.Flags().StringVar(&f.routes, "routes", "", "routing table YAML (overrides ROUTING_TABLE)")
}

// setup loads config, applies flag overrides and builds the logger and
// runner. Logs go to stderr so stdout carries only the result.
func (f *commonFlags) setup(cmd *cobra.Command) (config.Config, *slog.Logger, *pipeline.Runner, error) {
	cfg := config.Load()
	if f.notes != "" {
		cfg.NotesDir = f.notes
	}
	if f.out != "" {
		cfg.OutputPath = f.out
	}
	if f.routes != "" {
		cfg.RoutingTable = f.routes
	}
	if err := cfg.Validate(); err != nil {
		return cfg, nil, nil, fmt.Errorf("invalid configuration: %w", err)
	}
	log := cfg.NewLogger(cmd.ErrOrStderr())

	table := routing.DefaultTable()
	if cfg.RoutingTable != "" {
		var err error
		if table, err = routing.LoadTable(cfg.RoutingTable); err != nil {
			return cfg, nil, nil, err
		}
	}
	log.Debug("routing table loaded", "entries", table.Len(), "source", cfg.RoutingTable)

	runner := pipeline.NewRunner(table, parser.Options{PDFFallbackPdftotext: cfg.PDFFallbackPdftotext}, log)
	return cfg, log, runner, nil
}
