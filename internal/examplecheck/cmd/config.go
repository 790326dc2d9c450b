package cmd

import (
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/timescale/examplecheck/internal/examplecheck/config"
	"github.com/timescale/examplecheck/internal/examplecheck/util"
)

func buildConfigShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		Long:  `Display the effective configuration after applying flags, environment variables and the config file`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true

			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}

			out := cmd.OutOrStdout()
			switch cfg.Output {
			case config.OutputJSON:
				return util.SerializeToJSON(out, cfg)
			case config.OutputYAML:
				return util.SerializeToYAML(out, cfg)
			default:
				return outputConfigTable(out, cfg)
			}
		},
	}
}

func buildConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect CLI configuration",
		Long:  `Inspect the configuration read from flags, EXAMPLECHECK_* environment variables and config.yaml`,
	}

	cmd.AddCommand(buildConfigShowCmd())

	return cmd
}

func outputConfigTable(out io.Writer, cfg *config.Config) error {
	table := tablewriter.NewWriter(out)
	table.Header("PROPERTY", "VALUE")

	table.Append("prefix", cfg.Prefix)
	table.Append("delimiter", strconv.Quote(cfg.Delimiter))
	table.Append("output", string(cfg.Output))
	table.Append("filename", cfg.Filename)
	table.Append("message", cfg.Message)
	table.Append("debug", strconv.FormatBool(cfg.Debug))
	table.Append("no_color", strconv.FormatBool(cfg.NoColor))
	table.Append("config_dir", cfg.ConfigDir)

	return table.Render()
}
