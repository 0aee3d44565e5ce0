package cli

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/yaklabco/mdwire/internal/configloader"
	"github.com/yaklabco/mdwire/internal/logging"
	"github.com/yaklabco/mdwire/pkg/fsutil"
	"github.com/yaklabco/mdwire/pkg/markdown"
	"github.com/yaklabco/mdwire/pkg/mdast"
	"github.com/yaklabco/mdwire/pkg/render"
)

type renderFlags struct {
	format     string
	output     string
	watch      bool
	detectLang bool
	plain      bool
}

func newRenderCommand() *cobra.Command {
	flags := &renderFlags{}

	cmd := &cobra.Command{
		Use:   "render [paths... | -]",
		Short: "Render Markdown to a wire dialect",
		Long:  renderLongDescription,
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd, args, flags)
		},
	}

	cmd.Flags().StringVarP(&flags.format, "format", "f", configloader.FormatTelegram,
		"output dialect: telegram, canonical")
	cmd.Flags().StringVarP(&flags.output, "output", "o", "", "write to file instead of stdout")
	cmd.Flags().BoolVarP(&flags.watch, "watch", "w", false, "re-render when input files change")
	cmd.Flags().BoolVar(&flags.detectLang, "detect-lang", false,
		"classify untagged code blocks by content")
	cmd.Flags().BoolVar(&flags.plain, "plain", false, "skip language-tag normalization")

	return cmd
}

const renderLongDescription = `Render Markdown to a wire dialect.

Reads each input, parses it, and renders the document tree. The telegram
format emits Telegram MarkdownV2 with every reserved character escaped; the
canonical format re-emits standard Markdown that parses back to the same
tree. Parsing never fails: malformed constructs degrade to literal text.

Paths accept ** globs. With no paths, or with "-", input is read from stdin.
Renders for multiple inputs are separated by a blank line.

Examples:
  mdwire render README.md                 # Telegram MarkdownV2 to stdout
  mdwire render -f canonical notes.md     # normalized Markdown
  mdwire render docs/**/*.md -o out.txt   # all docs, atomically written
  mdwire render --watch draft.md          # re-render on every save
  echo '*hi*' | mdwire render             # stdin`

func runRender(cmd *cobra.Command, args []string, flags *renderFlags) error {
	logger := logging.Default()

	if cmd.Flags().Changed("format") {
		switch flags.format {
		case configloader.FormatTelegram, configloader.FormatCanonical:
		default:
			return fmt.Errorf("%w: unknown format %q", ErrUsage, flags.format)
		}
	}
	// Only flags the user actually set participate in config precedence.
	cliCfg := &configloader.Config{}
	if cmd.Flags().Changed("format") {
		cliCfg.Format = flags.format
	}
	if cmd.Flags().Changed("detect-lang") {
		cliCfg.DetectLanguage = configloader.Bool(flags.detectLang)
	}
	if cmd.Flags().Changed("plain") {
		cliCfg.NormalizeTags = configloader.Bool(!flags.plain)
	}

	cfg, err := resolveConfig(cmd, cliCfg)
	if err != nil {
		return err
	}

	inputs, err := expandInputs(args)
	if err != nil {
		return err
	}

	logger.Debug("render starting",
		logging.FieldFormat, cfg.Format,
		logging.FieldPaths, inputs,
		logging.FieldOutput, flags.output,
	)

	if flags.watch {
		return watchRender(cmd, inputs, cfg, flags.output)
	}
	return renderOnce(cmd, inputs, cfg, flags.output)
}

// renderOnce renders every input and writes the combined result to the
// output file or stdout.
func renderOnce(cmd *cobra.Command, inputs []string, cfg *configloader.Config, outputPath string) error {
	ctx := commandContext(cmd)
	logger := logging.Default()

	parseOpts := cfg.ParserOptions()
	renderOpts := cfg.RenderOptions()

	parts := make([]string, 0, len(inputs))
	for _, input := range inputs {
		content, err := readInput(ctx, cmd, input)
		if err != nil {
			return errors.Join(fmt.Errorf("read input %s", input), err)
		}

		doc := markdown.Parse(string(content), parseOpts)
		if doc.DepthLimited {
			logger.Warn("nesting depth cap reached; deeper content kept as text",
				logging.FieldInput, input)
		}
		logger.Debug("parsed",
			logging.FieldInput, input,
			logging.FieldBytesIn, len(content),
			logging.FieldTokens, len(doc.Tokens),
		)

		parts = append(parts, renderDocument(doc, cfg.Format, renderOpts))
	}

	combined := joinRenders(parts)

	if outputPath != "" {
		written, err := fsutil.WriteAtomicIfChanged(ctx, outputPath, []byte(combined), 0o644)
		if err != nil {
			return fmt.Errorf("write %s: %w", outputPath, err)
		}
		if !written {
			logger.Debug("output unchanged", logging.FieldOutput, outputPath)
			return nil
		}
		logger.Debug("wrote output",
			logging.FieldOutput, outputPath,
			logging.FieldBytesOut, len(combined),
		)
		return nil
	}

	_, err := fmt.Fprint(cmd.OutOrStdout(), combined)
	return err
}

func renderDocument(doc *mdast.Document, format string, opts render.Options) string {
	if format == configloader.FormatCanonical {
		return markdown.RenderCanonical(doc)
	}
	return markdown.RenderMarkdownV2With(doc, opts)
}

// joinRenders separates per-input renders with one blank line and ends the
// whole output with a single newline.
func joinRenders(parts []string) string {
	trimmed := make([]string, len(parts))
	for i, part := range parts {
		trimmed[i] = strings.TrimRight(part, "\n")
	}
	joined := strings.Join(trimmed, "\n\n")
	if joined == "" {
		return ""
	}
	return joined + "\n"
}

// resolveConfig loads and merges configuration for a command, with cliCfg at
// the highest precedence.
func resolveConfig(cmd *cobra.Command, cliCfg *configloader.Config) (*configloader.Config, error) {
	logger := logging.Default()
	ctx := commandContext(cmd)

	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, fmt.Errorf("get config flag: %w", err)
	}

	workDir, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("get working directory: %w", err)
	}

	loadResult, err := configloader.Load(ctx, configloader.LoadOptions{
		WorkingDir:   workDir,
		ExplicitPath: configPath,
		CLIConfig:    cliCfg,
	})
	if err != nil {
		return nil, errors.Join(errors.New("failed to load configuration"), err)
	}

	if len(loadResult.LoadedFrom) > 0 {
		logger.Debug("loaded configuration from", logging.FieldFiles, loadResult.LoadedFrom)
	}

	return loadResult.Config, nil
}
