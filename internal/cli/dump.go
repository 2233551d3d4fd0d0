package cli

import (
	"ProjectTracker/internal/app"
	"ProjectTracker/internal/models"
	"ProjectTracker/pkg/logger"
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

const (
	formatJSON = "json"
	formatYAML = "yaml"
)

func newDumpCmd(configPath *string) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "dump",
		Short: "Print the persisted document",
		Long:  `Print every programme, module and task from the configured storage as JSON (default) or YAML.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(*configPath)
			if err != nil {
				return err
			}
			log := logger.NewWithWriter(cfg.Env, cmd.ErrOrStderr())
			repo, closeRepo, err := app.OpenStorage(cmd.Context(), cfg, log)
			if err != nil {
				return err
			}
			defer closeRepo()

			doc, err := repo.Load(cmd.Context())
			if err != nil {
				return err
			}
			return writeDocument(cmd.OutOrStdout(), doc, format)
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", formatJSON, "output format: json or yaml")
	return cmd
}

func writeDocument(w io.Writer, doc *models.Document, format string) error {
	switch format {
	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(doc)
	case formatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return err
		}
		return enc.Close()
	}
	return fmt.Errorf("unknown format %q", format)
}
