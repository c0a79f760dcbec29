package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rescale/strlist/internal/stringlist"
)

// markRuns stores the length of every run of equal adjacent entries in the
// first entry's attachment.
func markRuns(l *stringlist.List, cmp func(a, b string) int) {
	items := l.Items()
	for i := 0; i < len(items); {
		j := i + 1
		for j < len(items) && cmp(items[i].String, items[j].String) == 0 {
			j++
		}
		items[i].Util = j - i
		i = j
	}
}

// newUniqCmd creates the 'uniq' command.
func newUniqCmd() *cobra.Command {
	var (
		sortFirst  bool
		ignoreCase bool
		count      bool
		quote      bool
	)

	cmd := &cobra.Command{
		Use:   "uniq [line...]",
		Short: "Remove duplicate lines",
		Long: `Collapse runs of equal adjacent lines from the arguments (or stdin)
into a single line.

Lines are sorted first (unless --sort=false or the config says
otherwise), so every duplicate is removed. Without sorting only adjacent
duplicates are collapsed. The first line of every run is kept.

Examples:
  strlist uniq b a b a            # a, b
  strlist uniq --sort=false a a b a   # a, b, a
  sort access.log | strlist uniq --count`,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := GetLogger()
			if !cmd.Flags().Changed("sort") {
				sortFirst = GetConfig().Sort
			}

			l, err := readLines(cmd, args)
			if err != nil {
				return err
			}
			total := l.Len()

			if ignoreCase {
				l.Cmp = func(a, b string) int {
					return strings.Compare(strings.ToLower(a), strings.ToLower(b))
				}
			}
			if sortFirst {
				l.Sort()
			}
			if count {
				cmp := l.Cmp
				if cmp == nil {
					cmp = strings.Compare
				}
				markRuns(l, cmp)
			}
			l.RemoveDuplicates(false)

			logger.Debug().
				Int("lines", total).
				Int("unique", l.Len()).
				Bool("sorted", sortFirst).
				Msg("Duplicates removed")

			if !count {
				return writeLines(cmd.OutOrStdout(), l.Strings(), quote)
			}
			out := cmd.OutOrStdout()
			return l.ForEach(func(item *stringlist.Item[string], _ any) error {
				line := item.String
				if quote {
					line = fmt.Sprintf("%q", line)
				}
				if _, err := fmt.Fprintf(out, "%7d %s\n", item.Util, line); err != nil {
					return fmt.Errorf("failed to write output: %w", err)
				}
				return nil
			}, nil)
		},
	}

	cmd.Flags().BoolVarP(&sortFirst, "sort", "s", true, "Sort lines before removing duplicates")
	cmd.Flags().BoolVarP(&ignoreCase, "ignore-case", "i", false, "Compare lines case-insensitively")
	cmd.Flags().BoolVar(&count, "count", false, "Prefix lines with their number of occurrences")
	cmd.Flags().BoolVarP(&quote, "quote", "q", false, "Print lines as quoted strings")

	return cmd
}
