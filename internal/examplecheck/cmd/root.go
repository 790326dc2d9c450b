package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/timescale/examplecheck/internal/examplecheck/config"
	"github.com/timescale/examplecheck/internal/examplecheck/logging"
)

const (
	folderCheckApp = "foldercheck"
	greetApp       = "greet"
)

// addPersistentFlags registers the flags both tools share and binds them to
// their config keys.
func addPersistentFlags(cmd *cobra.Command) {
	flags := cmd.PersistentFlags()
	flags.String("config-dir", config.GetDefaultConfigDir(), "config directory")
	flags.Bool("debug", config.DefaultDebug, "enable debug logging")
	flags.Bool("no-color", config.DefaultNoColor, "disable coloured output")

	viper.BindPFlag("debug", flags.Lookup("debug"))
	viper.BindPFlag("no_color", flags.Lookup("no-color"))
}

// initialize loads configuration and sets up logging before any command of
// the named tool runs.
func initialize(cmd *cobra.Command, app string) error {
	cmd.SilenceUsage = true

	configDir := config.GetEffectiveConfigDir(cmd.Flags().Lookup("config-dir"))
	if err := config.SetupViper(configDir); err != nil {
		return fmt.Errorf("failed to set up config: %w", err)
	}

	cfg, err := config.Load()
	if err != nil {
		return exitWithCode(ExitInvalidParameters, fmt.Errorf("failed to load config: %w", err))
	}

	if err := logging.Init(app, cfg.Debug); err != nil {
		return fmt.Errorf("failed to initialize logging: %w", err)
	}

	logging.Debug("CLI initialized",
		zap.String("config_dir", cfg.ConfigDir),
		zap.String("output", string(cfg.Output)),
		zap.Bool("debug", cfg.Debug),
	)

	return nil
}

func flagError(cmd *cobra.Command, err error) error {
	return exitWithCode(ExitInvalidParameters, err)
}

func newRootCmd(app string, build func(*cobra.Command)) *cobra.Command {
	cmd := &cobra.Command{
		Use:           app,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initialize(cmd, app)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			logging.Sync()
		},
	}
	cmd.SetFlagErrorFunc(flagError)

	addPersistentFlags(cmd)
	build(cmd)
	cmd.AddCommand(buildVersionCmd(app))

	return cmd
}

// execute runs root and reports any failure on its error stream.
func execute(ctx context.Context, root *cobra.Command) error {
	err := root.ExecuteContext(ctx)
	if err != nil {
		reportError(root.ErrOrStderr(), err, viper.GetBool("no_color"))
	}
	logging.Sync()
	return err
}

// ExecuteFolderCheck runs the foldercheck command tree.
func ExecuteFolderCheck(ctx context.Context) error {
	return execute(ctx, buildFolderCheckRootCmd())
}

// ExecuteGreet runs the greet command tree.
func ExecuteGreet(ctx context.Context) error {
	return execute(ctx, buildGreetRootCmd())
}
