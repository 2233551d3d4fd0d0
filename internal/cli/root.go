package cli

import (
	"ProjectTracker/internal/config"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// NewRootCmd builds the tracker command tree. Without a subcommand it serves.
func NewRootCmd() *cobra.Command {
	var configPath string

	root := &cobra.Command{
		Use:   "tracker",
		Short: "Programme / module / task tracker with a JSON API",
		Long: `tracker keeps programmes, their modules and the modules' tasks in a
single document and serves them over a small JSON API next to the
browser client's static files.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(configPath)
		},
	}
	root.PersistentFlags().StringVarP(&configPath, "config", "c", os.Getenv("CONFIG_PATH"), "path to YAML config (env CONFIG_PATH)")

	root.AddCommand(newServeCmd(&configPath), newDumpCmd(&configPath))
	return root
}

func loadConfig(path string) (*config.Config, error) {
	cfg, err := config.Load(path)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return cfg, nil
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
