package cli_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/yaklabco/mdwire/internal/cli"
)

func TestNewRootCommand(t *testing.T) {
	t.Parallel()

	info := cli.BuildInfo{
		Version: "test-version",
		Commit:  "test-commit",
		Date:    "test-date",
	}

	cmd := cli.NewRootCommand(info)

	if cmd == nil {
		t.Fatal("NewRootCommand returned nil")
	}

	if cmd.Use != "mdwire" {
		t.Errorf("expected Use to be 'mdwire', got %q", cmd.Use)
	}

	if cmd.Short == "" {
		t.Error("expected Short description to be set")
	}

	if cmd.Long == "" {
		t.Error("expected Long description to be set")
	}
}

func TestRootCommandHasSubcommands(t *testing.T) {
	t.Parallel()

	cmd := cli.NewRootCommand(cli.BuildInfo{Version: "test"})

	expectedSubcommands := []string{"render", "inspect", "version"}

	for _, name := range expectedSubcommands {
		subCmd, _, err := cmd.Find([]string{name})
		if err != nil {
			t.Errorf("expected subcommand %q to exist, got error: %v", name, err)
			continue
		}

		if subCmd.Name() != name {
			t.Errorf("expected subcommand name %q, got %q", name, subCmd.Name())
		}
	}
}

func TestRenderCommandFlags(t *testing.T) {
	t.Parallel()

	cmd := cli.NewRootCommand(cli.BuildInfo{Version: "test"})
	renderCmd, _, err := cmd.Find([]string{"render"})
	if err != nil {
		t.Fatalf("render command not found: %v", err)
	}

	expectedFlags := []string{
		"format",
		"output",
		"watch",
		"detect-lang",
		"plain",
	}

	for _, flagName := range expectedFlags {
		flag := renderCmd.Flags().Lookup(flagName)
		if flag == nil {
			t.Errorf("expected flag %q to exist on render command", flagName)
		}
	}
}

func TestInspectCommandFlags(t *testing.T) {
	t.Parallel()

	cmd := cli.NewRootCommand(cli.BuildInfo{Version: "test"})
	inspectCmd, _, err := cmd.Find([]string{"inspect"})
	if err != nil {
		t.Fatalf("inspect command not found: %v", err)
	}

	for _, flagName := range []string{"tokens", "tree"} {
		if inspectCmd.Flags().Lookup(flagName) == nil {
			t.Errorf("expected flag %q to exist on inspect command", flagName)
		}
	}
}

func TestGlobalFlags(t *testing.T) {
	t.Parallel()

	cmd := cli.NewRootCommand(cli.BuildInfo{Version: "test"})

	expectedFlags := []string{"debug", "config", "color"}

	for _, flagName := range expectedFlags {
		flag := cmd.PersistentFlags().Lookup(flagName)
		if flag == nil {
			t.Errorf("expected global flag %q to exist", flagName)
		}
	}
}

func TestVersionCommand(t *testing.T) {
	t.Parallel()

	cmd := cli.NewRootCommand(cli.BuildInfo{
		Version: "1.2.3",
		Commit:  "abc123",
		Date:    "2026-01-01",
	})
	cmd.SetArgs([]string{"version"})

	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)

	// Version output goes through charmbracelet/log on os.Stdout; here we
	// only verify the command runs.
	if err := cmd.Execute(); err != nil {
		t.Fatalf("version command failed: %v", err)
	}
}

func TestExitCodeForError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "nil", err: nil, want: cli.ExitSuccess},
		{name: "runtime", err: errors.New("boom"), want: cli.ExitRuntimeError},
		{name: "usage", err: cli.ErrUsage, want: cli.ExitUsageError},
		{name: "wrapped usage", err: errors.Join(cli.ErrUsage, errors.New("detail")), want: cli.ExitUsageError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := cli.ExitCodeForError(tt.err); got != tt.want {
				t.Errorf("ExitCodeForError(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}

func TestUnknownFlagIsUsageError(t *testing.T) {
	t.Parallel()

	cmd := cli.NewRootCommand(cli.BuildInfo{Version: "test"})
	cmd.SetArgs([]string{"render", "--no-such-flag"})

	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)

	err := cmd.Execute()
	if err == nil {
		t.Fatal("expected an error for an unknown flag")
	}
	if !errors.Is(err, cli.ErrUsage) {
		t.Errorf("expected unknown flag error to be a usage error, got %v", err)
	}
}
