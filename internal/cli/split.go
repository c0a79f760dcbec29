package cli

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/rescale/strlist/internal/stringlist"
)

// splitOptions selects the tokenizer and its limits.
type splitOptions struct {
	delimiter string
	maxSplit  int
	flags     stringlist.SplitFlag
}

// split appends the tokens of s to l. A single delimiter byte without flags
// takes the plain Split path.
func (o splitOptions) split(l *stringlist.List, s string) int {
	if len(o.delimiter) == 1 && o.flags == 0 {
		return l.Split(s, o.delimiter[0], o.maxSplit)
	}
	return l.SplitAny(s, o.delimiter, o.maxSplit, o.flags)
}

// splitInPlace cuts buf without copying; the entries of l alias buf.
func (o splitOptions) splitInPlace(l *stringlist.RefList, buf []byte) int {
	return l.SplitInPlaceFlags(buf, o.delimiter, o.maxSplit, o.flags)
}

// newSplitCmd creates the 'split' command.
func newSplitCmd() *cobra.Command {
	var (
		delimiter string
		maxSplit  int
		trim      bool
		nonEmpty  bool
		inPlace   bool
		quote     bool
	)

	cmd := &cobra.Command{
		Use:   "split [text...]",
		Short: "Split text into tokens",
		Long: `Split each argument (or stdin) into tokens, one per output line.

Every delimiter ends a token, so adjacent delimiters produce empty tokens
and a trailing delimiter produces an empty last token. When --delimiter
has more than one character, any of them ends a token.

--max-split limits the number of splits: 0 prints the input unchanged,
N prints at most N+1 tokens with the remainder as the last one, and a
negative value splits everywhere.

Examples:
  strlist split foo:bar:baz                 # foo, bar, baz
  strlist split -m 1 foo:bar:baz            # foo, bar:baz
  strlist split -d ':;' --in-place 'a:;b'   # a, "", b
  echo 'a, b,,c' | strlist split -d , --trim --non-empty`,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := GetLogger()
			cfg := GetConfig()

			// Config supplies defaults for flags not given explicitly
			flags := cmd.Flags()
			if !flags.Changed("delimiter") {
				delimiter = cfg.Delimiter
			}
			if !flags.Changed("max-split") {
				maxSplit = cfg.MaxSplit
			}
			if !flags.Changed("trim") {
				trim = cfg.Trim
			}
			if !flags.Changed("non-empty") {
				nonEmpty = cfg.NonEmpty
			}
			if delimiter == "" {
				return errors.New("--delimiter must not be empty")
			}

			opts := splitOptions{delimiter: delimiter, maxSplit: maxSplit}
			if trim {
				opts.flags |= stringlist.SplitTrim
			}
			if nonEmpty {
				opts.flags |= stringlist.SplitNonEmpty
			}

			inputs, err := readInputs(cmd, args)
			if err != nil {
				return err
			}

			var tokens []string
			count := 0
			if inPlace {
				var l stringlist.RefList
				for _, input := range inputs {
					count += opts.splitInPlace(&l, []byte(input))
				}
				tokens = l.Strings()
			} else {
				var l stringlist.List
				for _, input := range inputs {
					count += opts.split(&l, input)
				}
				tokens = l.Strings()
			}

			logger.Debug().
				Int("inputs", len(inputs)).
				Int("tokens", count).
				Bool("in_place", inPlace).
				Msg("Split complete")

			return writeLines(cmd.OutOrStdout(), tokens, quote)
		},
	}

	cmd.Flags().StringVarP(&delimiter, "delimiter", "d", ":", "Delimiter character, or set of characters")
	cmd.Flags().IntVarP(&maxSplit, "max-split", "m", -1, "Maximum number of splits (negative = unlimited)")
	cmd.Flags().BoolVar(&trim, "trim", false, "Strip whitespace around each token")
	cmd.Flags().BoolVar(&nonEmpty, "non-empty", false, "Drop empty tokens")
	cmd.Flags().BoolVar(&inPlace, "in-place", false, "Split a single buffer without copying tokens")
	cmd.Flags().BoolVarP(&quote, "quote", "q", false, "Print tokens as quoted strings")

	return cmd
}
