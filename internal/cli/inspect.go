package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/yaklabco/mdwire/internal/ui/pretty"
	"github.com/yaklabco/mdwire/pkg/markdown"
)

type inspectFlags struct {
	tokens bool
	tree   bool
}

func newInspectCommand() *cobra.Command {
	flags := &inspectFlags{}

	cmd := &cobra.Command{
		Use:   "inspect [path | -]",
		Short: "Show debugging views of the parse pipeline",
		Long:  inspectLongDescription,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInspect(cmd, args, flags)
		},
	}

	cmd.Flags().BoolVar(&flags.tokens, "tokens", false, "show the lossless token table")
	cmd.Flags().BoolVar(&flags.tree, "tree", false, "show the document tree")

	return cmd
}

const inspectLongDescription = `Show debugging views of the parse pipeline.

The token table lists every token with its kind, source position, and text;
the tokens concatenate back to the input byte for byte. The tree view shows
the document tree with per-node attributes.

With neither --tokens nor --tree, both views are shown.

Examples:
  mdwire inspect README.md --tree     # document tree
  mdwire inspect notes.md --tokens    # token table
  echo '*hi*' | mdwire inspect        # both views, from stdin`

func runInspect(cmd *cobra.Command, args []string, flags *inspectFlags) error {
	ctx := commandContext(cmd)

	cfg, err := resolveConfig(cmd, nil)
	if err != nil {
		return err
	}

	input := stdinPath
	if len(args) == 1 {
		input = args[0]
	}

	content, err := readInput(ctx, cmd, input)
	if err != nil {
		return errors.Join(fmt.Errorf("read input %s", input), err)
	}

	doc := markdown.Parse(string(content), cfg.ParserOptions())

	colorMode, err := cmd.Flags().GetString("color")
	if err != nil {
		colorMode = "auto"
	}
	styles := pretty.NewStyles(pretty.IsColorEnabled(colorMode, cmd.OutOrStdout()))

	showTokens, showTree := flags.tokens, flags.tree
	if !showTokens && !showTree {
		showTokens, showTree = true, true
	}

	out := cmd.OutOrStdout()
	if showTokens {
		table := pretty.NewTokenTable(styles, terminalWidth())
		fmt.Fprint(out, table.Format(doc))
		if showTree {
			fmt.Fprintln(out)
		}
	}
	if showTree {
		view := pretty.NewTreeView(styles)
		fmt.Fprint(out, view.Format(doc))
	}

	return nil
}

// terminalWidth reports the stdout terminal width, or zero when stdout is
// not a terminal so the caller falls back to its default.
func terminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		return 0
	}
	return width
}
