// Package cli provides the command-line interface for strlist.
package cli

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/rescale/strlist/internal/config"
	"github.com/rescale/strlist/internal/logging"
	"github.com/rescale/strlist/internal/version"
)

var (
	// Global flags
	cfgFile string
	verbose bool
	debug   bool

	// Global logger
	logger *logging.Logger

	// Configuration loaded before every command runs
	appConfig *config.Config
)

// NewRootCmd creates the root command.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "strlist",
		Short: "Split, filter and deduplicate lists of strings",
		Long: `strlist ` + version.Version + ` - Built: ` + version.BuildTime + `
Tools for cutting text into string lists and cleaning them up.

Input is read from the command arguments, or from stdin when no
arguments are given. Results are written one entry per line.

Defaults for every command can be set in a CSV config file
(see 'strlist config path').`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Initialize logger
			logger = logging.NewLogger(cmd.ErrOrStderr())

			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			appConfig = cfg

			if verbose || debug {
				logging.SetGlobalLevel(zerolog.DebugLevel)
				return nil
			}
			level, err := logging.ParseLevel(cfg.LogLevel)
			if err != nil {
				return err
			}
			logging.SetGlobalLevel(level)
			return nil
		},
	}

	// Global flags
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "Configuration file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose output (shows debug messages)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debug output (same as --verbose)")

	rootCmd.Version = version.Version + " (" + version.BuildTime + ")"

	return rootCmd
}

// Execute runs the CLI.
func Execute() error {
	rootCmd := NewRootCmd()
	AddCommands(rootCmd)
	err := rootCmd.Execute()
	if err != nil {
		GetLogger().Error().Err(err).Msg("Command failed")
	}
	return err
}

// AddCommands adds all subcommands to the root command.
func AddCommands(rootCmd *cobra.Command) {
	rootCmd.AddCommand(newSplitCmd())
	rootCmd.AddCommand(newFilterCmd())
	rootCmd.AddCommand(newUniqCmd())
	rootCmd.AddCommand(newConfigCmd())
}

// GetLogger returns the global CLI logger.
func GetLogger() *logging.Logger {
	if logger == nil {
		logger = logging.NewDefaultCLILogger()
	}
	return logger
}

// GetConfig returns the configuration loaded for the running command, or the
// defaults when called outside of one.
func GetConfig() *config.Config {
	if appConfig == nil {
		return config.DefaultConfig()
	}
	return appConfig
}

func configPath() string {
	if cfgFile != "" {
		return cfgFile
	}
	return config.GetDefaultConfigPath()
}

func loadConfig() (*config.Config, error) {
	path := configPath()
	cfg, err := config.LoadConfigCSV(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	GetLogger().Debugf("Configuration loaded from %s", path)
	return cfg, nil
}
