package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rescale/strlist/internal/config"
	"github.com/rescale/strlist/internal/logging"
)

// newConfigCmd creates the 'config' command group.
func newConfigCmd() *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Manage strlist configuration",
		Long: `Configuration management commands for strlist.

Commands:
  init  - Write a configuration file with the defaults
  show  - Display current configuration
  path  - Show configuration file path`,
		// Replaces the root hook so a broken file can still be inspected
		// and rewritten.
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logger = logging.NewLogger(cmd.ErrOrStderr())
			return nil
		},
	}

	configCmd.AddCommand(newConfigInitCmd())
	configCmd.AddCommand(newConfigShowCmd())
	configCmd.AddCommand(newConfigPathCmd())

	return configCmd
}

// newConfigInitCmd creates the 'config init' command.
func newConfigInitCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a configuration file with the defaults",
		Long: `Write the default configuration to the config file path.

Use --force to overwrite an existing configuration.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := GetLogger()
			path := configPath()

			if _, err := os.Stat(path); err == nil {
				if !force {
					fmt.Fprintf(cmd.OutOrStdout(), "Configuration already exists at: %s\n", path)
					fmt.Fprintln(cmd.OutOrStdout(), "Use --force to overwrite or run 'config show' to view current config.")
					return nil
				}
				logger.Warnf("Overwriting existing configuration at %s", path)
			}

			if err := config.SaveConfigCSV(config.DefaultConfig(), path); err != nil {
				return fmt.Errorf("failed to save config: %w", err)
			}
			logger.Info().Str("path", path).Msg("Configuration saved")
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite existing configuration")

	return cmd
}

// newConfigShowCmd creates the 'config show' command.
func newConfigShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Display current configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			path := configPath()
			cfg, err := config.LoadConfigCSV(path)
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Configuration (%s):\n", path)
			fmt.Fprintf(out, "  delimiter:        %q\n", cfg.Delimiter)
			fmt.Fprintf(out, "  max_split:        %d\n", cfg.MaxSplit)
			fmt.Fprintf(out, "  trim:             %t\n", cfg.Trim)
			fmt.Fprintf(out, "  non_empty:        %t\n", cfg.NonEmpty)
			fmt.Fprintf(out, "  sort:             %t\n", cfg.Sort)
			fmt.Fprintf(out, "  include_pattern:  %s\n", strings.Join(cfg.IncludePatterns, ";"))
			fmt.Fprintf(out, "  exclude_pattern:  %s\n", strings.Join(cfg.ExcludePatterns, ";"))
			fmt.Fprintf(out, "  search:           %s\n", strings.Join(cfg.Search, ";"))
			fmt.Fprintf(out, "  log_level:        %s\n", cfg.LogLevel)
			return nil
		},
	}
}

// newConfigPathCmd creates the 'config path' command.
func newConfigPathCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Show configuration file path",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), configPath())
			return nil
		},
	}
}
