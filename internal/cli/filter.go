package cli

import (
	"github.com/spf13/cobra"

	"github.com/rescale/strlist/internal/util/filter"
)

// newFilterCmd creates the 'filter' command.
func newFilterCmd() *cobra.Command {
	var (
		prefixes  []string
		include   []string
		exclude   []string
		search    []string
		dropEmpty bool
		quote     bool
	)

	cmd := &cobra.Command{
		Use:   "filter [line...]",
		Short: "Keep only the lines matching every rule",
		Long: `Filter lines from the arguments (or stdin), keeping their order.

Rules:
  --exclude  glob patterns that drop a line (checked first)
  --include  glob patterns a line must match (** spans directories)
  --prefix   prefixes a line must start with (any of them)
  --search   substrings a line must contain (all of them, case-insensitive)

Include, exclude and search default to the config file values.

Examples:
  strlist filter --prefix y no yes      # yes
  find . -type f | strlist filter --include '**/*.dat' --exclude 'debug*'`,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := GetLogger()
			cfg := GetConfig()

			flags := cmd.Flags()
			if !flags.Changed("include") {
				include = cfg.IncludePatterns
			}
			if !flags.Changed("exclude") {
				exclude = cfg.ExcludePatterns
			}
			if !flags.Changed("search") {
				search = cfg.Search
			}

			l, err := readLines(cmd, args)
			if err != nil {
				return err
			}
			total := l.Len()

			if dropEmpty {
				l.RemoveEmptyItems(true)
			}
			filter.Apply(l, filter.Config{
				Include: include,
				Exclude: exclude,
				Prefix:  prefixes,
				Search:  search,
			})

			logger.Debug().
				Int("kept", l.Len()).
				Int("dropped", total-l.Len()).
				Msg("Filter complete")

			return writeLines(cmd.OutOrStdout(), l.Strings(), quote)
		},
	}

	cmd.Flags().StringSliceVar(&prefixes, "prefix", nil, "Keep lines starting with this prefix (repeatable)")
	cmd.Flags().StringSliceVar(&include, "include", nil, "Keep lines matching this glob (repeatable)")
	cmd.Flags().StringSliceVar(&exclude, "exclude", nil, "Drop lines matching this glob (repeatable)")
	cmd.Flags().StringSliceVar(&search, "search", nil, "Keep lines containing this text (repeatable)")
	cmd.Flags().BoolVar(&dropEmpty, "drop-empty", false, "Drop empty lines")
	cmd.Flags().BoolVarP(&quote, "quote", "q", false, "Print lines as quoted strings")

	return cmd
}
