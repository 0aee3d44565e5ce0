package pretty

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/yaklabco/mdwire/pkg/mdast"
)

// Token table formatting constants.
const (
	tablePadding     = 2
	minKindWidth     = 12
	minSpanWidth     = 9
	minTextWidth     = 20
	heavySeparator   = "="
	defaultTermWidth = 100
)

// TokenTable formats a lossless token stream as a styled table, one row per
// token, with the source line and column of each span.
type TokenTable struct {
	styles    *Styles
	termWidth int
}

// NewTokenTable creates a token table formatter.
func NewTokenTable(styles *Styles, termWidth int) *TokenTable {
	if termWidth <= 0 {
		termWidth = defaultTermWidth
	}
	return &TokenTable{
		styles:    styles,
		termWidth: termWidth,
	}
}

// tokenRow is one formatted table row.
type tokenRow struct {
	kind string
	span string
	text string
}

// Format renders the document's token stream as a table.
func (t *TokenTable) Format(doc *mdast.Document) string {
	if doc == nil || len(doc.Tokens) == 0 {
		return ""
	}

	lines := mdast.BuildLines(doc.Source)
	rows := make([]tokenRow, 0, len(doc.Tokens))
	for _, tok := range doc.Tokens {
		line, col := mdast.LineAt(lines, tok.StartOffset)
		rows = append(rows, tokenRow{
			kind: tok.Kind.String(),
			span: fmt.Sprintf("%d:%d+%d", line, col, tok.Len()),
			text: quoteTokenText(tok.Text(doc.Source)),
		})
	}

	widths := t.columnWidths(rows)

	var builder strings.Builder
	builder.WriteString(t.formatHeader(widths))
	builder.WriteString("\n")
	builder.WriteString(t.formatSeparator(widths))
	builder.WriteString("\n")
	for _, row := range rows {
		builder.WriteString(t.formatRow(row, widths))
		builder.WriteString("\n")
	}
	builder.WriteString(t.formatSeparator(widths))
	builder.WriteString("\n")
	builder.WriteString(t.styles.Dim.Render(fmt.Sprintf(" %d tokens, %d bytes", len(doc.Tokens), len(doc.Source))))
	builder.WriteString("\n")

	return builder.String()
}

type tokenColumnWidths struct {
	kind int
	span int
	text int
}

// columnWidths determines column widths based on content, constrained to the
// terminal width by shrinking the text column first.
func (t *TokenTable) columnWidths(rows []tokenRow) tokenColumnWidths {
	widths := tokenColumnWidths{
		kind: minKindWidth,
		span: minSpanWidth,
		text: minTextWidth,
	}

	for _, row := range rows {
		if len(row.kind) > widths.kind {
			widths.kind = len(row.kind)
		}
		if len(row.span) > widths.span {
			widths.span = len(row.span)
		}
		if len(row.text) > widths.text {
			widths.text = len(row.text)
		}
	}

	totalWidth := widths.kind + widths.span + widths.text + tablePadding*3
	if totalWidth > t.termWidth {
		excess := totalWidth - t.termWidth
		widths.text = max(minTextWidth, widths.text-excess)
	}

	return widths
}

func (t *TokenTable) formatHeader(widths tokenColumnWidths) string {
	header := fmt.Sprintf(" %-*s  %-*s  %-*s",
		widths.kind, "KIND",
		widths.span, "LINE:COL",
		widths.text, "TEXT",
	)
	return t.styles.TableHeader.Render(header)
}

func (t *TokenTable) formatSeparator(widths tokenColumnWidths) string {
	totalWidth := widths.kind + widths.span + widths.text + tablePadding*3
	return t.styles.TableSeparator.Render(strings.Repeat(heavySeparator, totalWidth))
}

func (t *TokenTable) formatRow(row tokenRow, widths tokenColumnWidths) string {
	return fmt.Sprintf(" %s  %s  %s",
		t.styles.TokenKind.Render(fmt.Sprintf("%-*s", widths.kind, row.kind)),
		t.styles.TokenSpan.Render(fmt.Sprintf("%-*s", widths.span, row.span)),
		t.styles.TokenText.Render(truncateString(row.text, widths.text)),
	)
}

// quoteTokenText renders token text with control characters escaped, so
// newlines and tabs occupy one visible cell each.
func quoteTokenText(text string) string {
	quoted := strconv.Quote(text)
	return quoted[1 : len(quoted)-1]
}

// truncateString truncates a string to maxLen, adding "..." if truncated.
func truncateString(str string, maxLen int) string {
	if len(str) <= maxLen {
		return str
	}
	if maxLen <= 3 {
		return str[:maxLen]
	}
	return str[:maxLen-3] + "..."
}
