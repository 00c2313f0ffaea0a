package main

import (
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/reoring/pollyskema/config"
)

type rootOptions struct {
	configPath string
	cfg        config.Config
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	cmd := &cobra.Command{
		Use:           "pollyskema",
		Short:         "Inspect and validate speech API payloads",
		Long:          `pollyskema parses API payloads against the speech models, renders them the way requests are sent and exports their JSON Schema.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg := config.Default()
			if opts.configPath != "" {
				c, err := config.Load(opts.configPath)
				if err != nil {
					return err
				}
				cfg = c
			}
			cfg, err := config.FromEnv(cfg, os.LookupEnv)
			if err != nil {
				return err
			}
			l := log.StandardLogger()
			l.SetOutput(cmd.ErrOrStderr())
			if err := cfg.Install(l); err != nil {
				return err
			}
			opts.cfg = cfg
			return nil
		},
	}
	cmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "YAML config file")

	cmd.AddCommand(newParseCmd(opts), newSchemaCmd(), newBackendCmd(), newModelsCmd())
	return cmd
}
