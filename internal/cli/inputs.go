package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/spf13/cobra"

	"github.com/yaklabco/mdwire/pkg/fsutil"
)

// stdinPath names standard input on the command line.
const stdinPath = "-"

// expandInputs resolves path arguments into concrete inputs. Arguments may
// be literal files, doublestar globs, or "-" for standard input. No
// arguments means standard input.
func expandInputs(args []string) ([]string, error) {
	if len(args) == 0 {
		return []string{stdinPath}, nil
	}

	var inputs []string
	seen := make(map[string]bool)
	add := func(path string) {
		if !seen[path] {
			seen[path] = true
			inputs = append(inputs, path)
		}
	}

	for _, arg := range args {
		if arg == stdinPath {
			add(stdinPath)
			continue
		}

		if !doublestar.ValidatePattern(arg) {
			return nil, fmt.Errorf("%w: bad glob pattern %q", ErrUsage, arg)
		}

		matches, err := doublestar.FilepathGlob(arg, doublestar.WithFilesOnly())
		if err != nil {
			return nil, fmt.Errorf("expand %q: %w", arg, err)
		}
		if len(matches) == 0 {
			return nil, fmt.Errorf("no files match %q", arg)
		}
		for _, match := range matches {
			add(match)
		}
	}

	return inputs, nil
}

// readInput reads one input, from stdin or from disk.
func readInput(ctx context.Context, cmd *cobra.Command, path string) ([]byte, error) {
	if path == stdinPath {
		content, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}
		return content, nil
	}

	content, _, err := fsutil.ReadFile(ctx, path)
	return content, err
}

// commandContext returns the command's context, or a background context when
// the command was built without one.
func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
