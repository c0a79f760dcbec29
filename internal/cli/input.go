package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/rescale/strlist/internal/stringlist"
)

var errNoInput = errors.New("no input: pass text as arguments or pipe it on stdin")

// readStdin reads all of the command's stdin. It refuses to wait on an
// interactive terminal.
func readStdin(cmd *cobra.Command) (string, error) {
	in := cmd.InOrStdin()
	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		return "", errNoInput
	}
	data, err := io.ReadAll(in)
	if err != nil {
		return "", fmt.Errorf("failed to read stdin: %w", err)
	}
	return string(data), nil
}

// readInputs returns the texts a command works on: each argument, or all of
// stdin without its final line ending.
func readInputs(cmd *cobra.Command, args []string) ([]string, error) {
	if len(args) > 0 {
		return args, nil
	}
	text, err := readStdin(cmd)
	if err != nil {
		return nil, err
	}
	return []string{trimLineEnding(text)}, nil
}

// readLines returns the arguments, or the lines of stdin, as a list.
func readLines(cmd *cobra.Command, args []string) (*stringlist.List, error) {
	if len(args) > 0 {
		return stringlist.NewList(args), nil
	}
	text, err := readStdin(cmd)
	if err != nil {
		return nil, err
	}

	l := &stringlist.List{}
	if text == "" {
		return l, nil
	}
	l.Split(trimLineEnding(text), '\n', -1)
	items := l.Items()
	for i := range items {
		items[i].String = strings.TrimSuffix(items[i].String, "\r")
	}
	return l, nil
}

func trimLineEnding(text string) string {
	text = strings.TrimSuffix(text, "\n")
	return strings.TrimSuffix(text, "\r")
}

// writeLines prints one entry per line, Go-quoted when quote is set.
func writeLines(w io.Writer, lines []string, quote bool) error {
	if quote {
		lines = lo.Map(lines, func(s string, _ int) string {
			return strconv.Quote(s)
		})
	}
	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	}
	return nil
}
