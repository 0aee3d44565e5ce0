// Package pretty provides Lipgloss-based styled output utilities.
package pretty

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

// Styles contains all styled renderers for CLI output.
type Styles struct {
	// Token table components
	TokenKind lipgloss.Style
	TokenSpan lipgloss.Style
	TokenText lipgloss.Style

	// Tree view components
	TreeBranch lipgloss.Style
	NodeKind   lipgloss.Style
	NodeAttr   lipgloss.Style
	NodeText   lipgloss.Style

	// Table chrome
	TableHeader    lipgloss.Style
	TableSeparator lipgloss.Style

	// Status styles
	Success lipgloss.Style
	Failure lipgloss.Style
	Warning lipgloss.Style

	// Misc
	Dim  lipgloss.Style
	Bold lipgloss.Style
}

// NewStyles creates a new Styles with the given color mode.
func NewStyles(colorEnabled bool) *Styles {
	if !colorEnabled {
		return newNoColorStyles()
	}
	return newColorStyles()
}

// newColorStyles creates styles with ANSI 256 colors.
func newColorStyles() *Styles {
	return &Styles{
		TokenKind: lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
		TokenSpan: lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		TokenText: lipgloss.NewStyle(),

		TreeBranch: lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		NodeKind:   lipgloss.NewStyle().Foreground(lipgloss.Color("12")).Bold(true),
		NodeAttr:   lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
		NodeText:   lipgloss.NewStyle().Foreground(lipgloss.Color("7")),

		TableHeader:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("7")),
		TableSeparator: lipgloss.NewStyle().Foreground(lipgloss.Color("8")),

		Success: lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true),
		Failure: lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
		Warning: lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true),

		Dim:  lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		Bold: lipgloss.NewStyle().Bold(true),
	}
}

// newNoColorStyles creates styles with no color formatting.
func newNoColorStyles() *Styles {
	plain := lipgloss.NewStyle()
	return &Styles{
		TokenKind:      plain,
		TokenSpan:      plain,
		TokenText:      plain,
		TreeBranch:     plain,
		NodeKind:       plain,
		NodeAttr:       plain,
		NodeText:       plain,
		TableHeader:    plain,
		TableSeparator: plain,
		Success:        plain,
		Failure:        plain,
		Warning:        plain,
		Dim:            plain,
		Bold:           plain,
	}
}

// IsColorEnabled determines if color should be enabled based on mode and writer.
// Mode values: "auto" (default), "always", "never".
// In auto mode, color is enabled only if the writer is a TTY and NO_COLOR is not set.
func IsColorEnabled(mode string, writer io.Writer) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	default: // "auto"
		// Check NO_COLOR environment variable (https://no-color.org/)
		if os.Getenv("NO_COLOR") != "" {
			return false
		}
		// Check if output is a TTY
		if f, ok := writer.(*os.File); ok {
			return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
		}
		return false
	}
}
