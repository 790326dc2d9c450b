package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/timescale/examplecheck/internal/examplecheck/config"
	"github.com/timescale/examplecheck/internal/examplecheck/logging"
)

func greeting(filename, message string) string {
	return "Hi " + filename + message
}

func buildGreetRootCmd() *cobra.Command {
	return newRootCmd(greetApp, func(cmd *cobra.Command) {
		cmd.Short = "Print a greeting"
		cmd.Long = `Print "Hi " followed by the file name and the message, with nothing added between them.`
		cmd.Args = cobra.NoArgs
		cmd.RunE = func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true

			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}

			logging.Debug("Greeting", zap.String("filename", cfg.Filename), zap.String("message", cfg.Message))
			fmt.Fprintln(cmd.OutOrStdout(), greeting(cfg.Filename, cfg.Message))
			return nil
		}

		cmd.Flags().String("filename", config.DefaultFilename, "name to greet")
		cmd.Flags().String("message", config.DefaultMessage, "text appended after the name")

		viper.BindPFlag("filename", cmd.Flags().Lookup("filename"))
		viper.BindPFlag("message", cmd.Flags().Lookup("message"))
	})
}
