package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/rescale/strlist/internal/version"
)

// runCLI executes the command tree with args and stdin, using a config file
// inside a temp dir so the user's configuration never leaks in.
func runCLI(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	cfg := filepath.Join(t.TempDir(), "config.csv")
	return runCLIWithConfig(t, cfg, stdin, args...)
}

func runCLIWithConfig(t *testing.T, cfg, stdin string, args ...string) (string, string, error) {
	t.Helper()
	rootCmd := NewRootCmd()
	AddCommands(rootCmd)

	var stdout, stderr bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetArgs(append([]string{"--config", cfg}, args...))

	err := rootCmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestRootCommand(t *testing.T) {
	rootCmd := NewRootCmd()
	AddCommands(rootCmd)

	if rootCmd.Use != "strlist" {
		t.Errorf("Expected Use='strlist', got '%s'", rootCmd.Use)
	}
	for _, name := range []string{"config", "verbose", "debug"} {
		if rootCmd.PersistentFlags().Lookup(name) == nil {
			t.Errorf("--%s flag not found", name)
		}
	}

	want := map[string]bool{"split": false, "filter": false, "uniq": false, "config": false}
	for _, c := range rootCmd.Commands() {
		if _, ok := want[c.Name()]; ok {
			want[c.Name()] = true
		}
	}
	for name, found := range want {
		if !found {
			t.Errorf("subcommand %q not registered", name)
		}
	}
}

func TestSplitCommandFlags(t *testing.T) {
	cmd := newSplitCmd()
	if cmd.Use != "split [text...]" {
		t.Errorf("Expected Use='split [text...]', got '%s'", cmd.Use)
	}
	if cmd.RunE == nil {
		t.Error("RunE function is nil")
	}
	for _, name := range []string{"delimiter", "max-split", "trim", "non-empty", "in-place", "quote"} {
		if cmd.Flags().Lookup(name) == nil {
			t.Errorf("--%s flag not found", name)
		}
	}
}

func TestSplitCommand(t *testing.T) {
	tests := []struct {
		name  string
		stdin string
		args  []string
		want  string
	}{
		{"unlimited", "", []string{"split", "foo:bar:baz"}, "foo\nbar\nbaz\n"},
		{"max split", "", []string{"split", "-m", "1", "foo:bar:baz"}, "foo\nbar:baz\n"},
		{"no split", "", []string{"split", "-m", "0", "foo:bar:baz"}, "foo:bar:baz\n"},
		{"quoted empties", "", []string{"split", "-q", ":"}, "\"\"\n\"\"\n"},
		{"multiple args", "", []string{"split", "a:b", "c"}, "a\nb\nc\n"},
		{"stdin", "x:y\n", []string{"split"}, "x\ny\n"},
		{"delimiter set in place", "", []string{"split", "-d", ":;", "--in-place", "-q", "foo:;:bar"},
			"\"foo\"\n\"\"\n\"\"\n\"bar\"\n"},
		{"in place max split", "", []string{"split", "-d", ":;", "--in-place", "-m", "2", "foo:;:bar:;:baz"},
			"foo\n\n:bar:;:baz\n"},
		{"trim non-empty", "", []string{"split", "-d", ",", "--trim", "--non-empty", " a, ,b ,"}, "a\nb\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, _, err := runCLI(t, tt.stdin, tt.args...)
			if err != nil {
				t.Fatalf("Execute() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("output = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSplitCommandUsesConfig(t *testing.T) {
	cfg := filepath.Join(t.TempDir(), "config.csv")
	if err := os.WriteFile(cfg, []byte("delimiter,;\nmax_split,1\n"), 0600); err != nil {
		t.Fatal(err)
	}

	got, _, err := runCLIWithConfig(t, cfg, "", "split", "a;b;c")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if want := "a\nb;c\n"; got != want {
		t.Errorf("output = %q, want %q", got, want)
	}

	// Flags override the config
	got, _, err = runCLIWithConfig(t, cfg, "", "split", "-d", ":", "-m", "-1", "a:b;c")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if want := "a\nb;c\n"; got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
}

func TestSplitCommandRejectsEmptyDelimiter(t *testing.T) {
	if _, _, err := runCLI(t, "", "split", "-d", "", "abc"); err == nil {
		t.Error("Execute() error = nil, want an error for an empty delimiter")
	}
}

func TestFilterCommand(t *testing.T) {
	tests := []struct {
		name  string
		stdin string
		args  []string
		want  string
	}{
		{"prefix", "", []string{"filter", "--prefix", "y", "no", "yes"}, "yes\n"},
		{"nothing kept", "", []string{"filter", "--prefix", "y", "x1", "x2"}, ""},
		{"stdin lines", "a.dat\nb.txt\nc.dat\n", []string{"filter", "--include", "*.dat"}, "a.dat\nc.dat\n"},
		{"crlf lines", "a.dat\r\nb.txt\r\n", []string{"filter", "--include", "*.dat"}, "a.dat\n"},
		{"exclude", "", []string{"filter", "--exclude", "debug*", "debug.log", "run.log"}, "run.log\n"},
		{"drop empty", "a\n\nb\n", []string{"filter", "--drop-empty"}, "a\nb\n"},
		{"keep empty", "a\n\nb\n", []string{"filter"}, "a\n\nb\n"},
		{"search", "", []string{"filter", "--search", "FINAL", "final.csv", "draft.csv"}, "final.csv\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, _, err := runCLI(t, tt.stdin, tt.args...)
			if err != nil {
				t.Fatalf("Execute() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("output = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestUniqCommand(t *testing.T) {
	tests := []struct {
		name  string
		stdin string
		args  []string
		want  string
	}{
		{"sorted", "", []string{"uniq", "b", "a", "b", "a"}, "a\nb\n"},
		{"runs", "", []string{"uniq", "a", "a", "b", "b", "c", "c"}, "a\nb\nc\n"},
		{"unsorted keeps separate runs", "", []string{"uniq", "--sort=false", "a", "a", "b", "a"}, "a\nb\na\n"},
		{"ignore case keeps first", "", []string{"uniq", "-i", "--sort=false", "A", "a", "b"}, "A\nb\n"},
		{"count", "", []string{"uniq", "--count", "b", "a", "b"}, "      1 a\n      2 b\n"},
		{"stdin", "c\nc\nb\n", []string{"uniq"}, "b\nc\n"},
		{"empty stdin", "", []string{"uniq"}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, _, err := runCLI(t, tt.stdin, tt.args...)
			if err != nil {
				t.Fatalf("Execute() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("output = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestConfigCommands(t *testing.T) {
	cfg := filepath.Join(t.TempDir(), "sub", "config.csv")

	got, _, err := runCLIWithConfig(t, cfg, "", "config", "path")
	if err != nil {
		t.Fatalf("config path error = %v", err)
	}
	if strings.TrimSpace(got) != cfg {
		t.Errorf("config path = %q, want %q", got, cfg)
	}

	if _, _, err := runCLIWithConfig(t, cfg, "", "config", "init"); err != nil {
		t.Fatalf("config init error = %v", err)
	}
	if _, err := os.Stat(cfg); err != nil {
		t.Fatalf("config file not written: %v", err)
	}

	got, _, err = runCLIWithConfig(t, cfg, "", "config", "init")
	if err != nil {
		t.Fatalf("second config init error = %v", err)
	}
	if !strings.Contains(got, "already exists") {
		t.Errorf("second config init output = %q, want an 'already exists' notice", got)
	}

	got, _, err = runCLIWithConfig(t, cfg, "", "config", "show")
	if err != nil {
		t.Fatalf("config show error = %v", err)
	}
	if !strings.Contains(got, `delimiter:        ":"`) {
		t.Errorf("config show output missing delimiter: %q", got)
	}
}

func TestBrokenConfigFailsCommands(t *testing.T) {
	cfg := filepath.Join(t.TempDir(), "config.csv")
	if err := os.WriteFile(cfg, []byte("log_level,loud\n"), 0600); err != nil {
		t.Fatal(err)
	}
	if _, _, err := runCLIWithConfig(t, cfg, "", "split", "a:b"); err == nil {
		t.Error("split with a broken config succeeded, want an error")
	}
	if _, _, err := runCLIWithConfig(t, cfg, "", "config", "init", "--force"); err != nil {
		t.Errorf("config init --force with a broken config error = %v", err)
	}
}

func TestVerboseLogsToStderr(t *testing.T) {
	_, stderr, err := runCLI(t, "", "-v", "split", "a:b")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if !strings.Contains(stderr, "Split complete") {
		t.Errorf("stderr = %q, want the debug summary", stderr)
	}
}

func TestSubcommandFlagsDoNotShadowGlobalShorthands(t *testing.T) {
	rootCmd := NewRootCmd()
	AddCommands(rootCmd)

	global := map[string]string{}
	rootCmd.PersistentFlags().VisitAll(func(f *pflag.Flag) {
		if f.Shorthand != "" {
			global[f.Shorthand] = f.Name
		}
	})

	var walk func(*cobra.Command)
	walk = func(c *cobra.Command) {
		c.LocalNonPersistentFlags().VisitAll(func(f *pflag.Flag) {
			if name, ok := global[f.Shorthand]; ok && f.Shorthand != "" {
				t.Errorf("%s: -%s for --%s is already used by --%s", c.CommandPath(), f.Shorthand, f.Name, name)
			}
		})
		for _, sub := range c.Commands() {
			walk(sub)
		}
	}
	walk(rootCmd)
}

func TestUniqCountWithConfigFlag(t *testing.T) {
	cfg := filepath.Join(t.TempDir(), "config.csv")
	rootCmd := NewRootCmd()
	AddCommands(rootCmd)

	var stdout bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&bytes.Buffer{})
	rootCmd.SetIn(strings.NewReader(""))
	rootCmd.SetArgs([]string{"uniq", "-c", cfg, "--count", "x", "x"})

	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if want := "      2 x\n"; stdout.String() != want {
		t.Errorf("output = %q, want %q", stdout.String(), want)
	}
}

func TestConfigInitForceOverwrites(t *testing.T) {
	cfg := filepath.Join(t.TempDir(), "config.csv")
	if err := os.WriteFile(cfg, []byte("delimiter,;\n"), 0600); err != nil {
		t.Fatal(err)
	}

	_, stderr, err := runCLIWithConfig(t, cfg, "", "config", "init", "--force")
	if err != nil {
		t.Fatalf("config init --force error = %v", err)
	}
	if !strings.Contains(stderr, "Overwriting existing configuration") {
		t.Errorf("stderr = %q, want an overwrite warning", stderr)
	}

	got, _, err := runCLIWithConfig(t, cfg, "", "config", "show")
	if err != nil {
		t.Fatalf("config show error = %v", err)
	}
	if !strings.Contains(got, `delimiter:        ":"`) {
		t.Errorf("config show after --force = %q, want the default delimiter", got)
	}
}

func TestCommandsHaveDescriptions(t *testing.T) {
	rootCmd := NewRootCmd()
	AddCommands(rootCmd)
	var walk func(*cobra.Command)
	walk = func(c *cobra.Command) {
		if c.Short == "" {
			t.Errorf("command %q has no short description", c.CommandPath())
		}
		for _, sub := range c.Commands() {
			walk(sub)
		}
	}
	walk(rootCmd)
}

func TestVersionFlag(t *testing.T) {
	got, _, err := runCLI(t, "", "--version")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if !strings.Contains(got, version.Version) {
		t.Errorf("--version output = %q, want it to contain %q", got, version.Version)
	}
}
