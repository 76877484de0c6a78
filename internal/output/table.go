// Package output renders anthropac analysis results as terminal tables.
//
// This package includes:
//   - Per-participant tables of ranked items and their salience
//   - Frequency and composite salience summary tables
//   - The error banner printed when the input cannot be read
//
// Tables use plain ASCII layout. Titles are bolded with ANSI codes only when
// stdout is a terminal and NO_COLOR is unset.
package output

import (
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/dustin/go-humanize"
	"github.com/mattn/go-isatty"

	"github.com/blackwell-systems/anthropac/internal/salience"
)

// ANSI codes for titles and the error banner
const (
	colorReset = "\033[0m"
	colorBold  = "\033[1m"
	colorRed   = "\033[31m"
)

// Summary table titles
const (
	TitleByFrequency = "FREQUENCY AND COMPOSITE SALIENCE (SORTED BY WORD FREQUENCY)"
	TitleBySalience  = "FREQUENCY AND COMPOSITE SALIENCE (SORTED BY COMPOSITE SALIENCE)"
)

// maxWordWidth caps the Word column; longer tokens are truncated.
const maxWordWidth = 30

// IsColorEnabled returns true if ANSI color codes should be emitted.
// It checks that os.Stdout is a TTY and that the NO_COLOR env var is not set.
func IsColorEnabled() bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	return isatty.IsTerminal(os.Stdout.Fd())
}

// colorize wraps text in the given ANSI color code if color is enabled,
// otherwise returns the plain text.
func colorize(color, text string) string {
	if IsColorEnabled() {
		return color + text + colorReset
	}
	return text
}

// RenderListTable renders the ranked items of one participant's freelist.
func RenderListTable(report *salience.ListReport) string {
	var sb strings.Builder

	sb.WriteString(colorize(colorBold, fmt.Sprintf("PARTICIPANT #%d", report.Index)))
	sb.WriteString("\n")

	if len(report.Rows) == 0 {
		sb.WriteString("No items in this list.\n")
		return sb.String()
	}

	words := make([]string, len(report.Rows))
	for i, row := range report.Rows {
		words[i] = row.Token
	}
	ww := wordWidth(words)

	// Header
	sb.WriteString(fmt.Sprintf("%-16s  %-*s  %-13s  %s\n",
		"Position in List", ww, "Word", "Ranked Points", "Salience"))
	sb.WriteString(strings.Repeat("─", 16+2+ww+2+13+2+8))
	sb.WriteString("\n")

	// Rows
	for _, row := range report.Rows {
		sb.WriteString(fmt.Sprintf("%-16d  %-*s  %-13d  %.2f\n",
			row.Position,
			ww, truncate(row.Token, ww),
			row.ReversedRank,
			row.Salience))
	}

	return sb.String()
}

// RenderSummaryTable renders one sorted view of the aggregate results.
// When top is positive only the first top rows are shown.
// Note: Does not sort - expects rows to be pre-sorted by caller.
func RenderSummaryTable(title string, rows []salience.SummaryRow, top int) string {
	var sb strings.Builder

	sb.WriteString(colorize(colorBold, title))
	sb.WriteString("\n")

	if len(rows) == 0 {
		sb.WriteString("No items found.\n")
		return sb.String()
	}

	shown := rows
	if top > 0 && top < len(rows) {
		shown = rows[:top]
	}

	words := make([]string, len(shown))
	for i, row := range shown {
		words[i] = row.Token
	}
	ww := wordWidth(words)

	// Header
	sb.WriteString(fmt.Sprintf("%-*s  %-13s  %-13s  %s\n",
		ww, "Word", "Frequency (N)", "Frequency (%)", "Composite Salience"))
	sb.WriteString(strings.Repeat("─", ww+2+13+2+13+2+18))
	sb.WriteString("\n")

	// Rows
	for _, row := range shown {
		sb.WriteString(fmt.Sprintf("%-*s  %-13d  %-13.2f  %.2f\n",
			ww, truncate(row.Token, ww),
			row.Frequency,
			row.FrequencyPercent,
			row.CompositeSalience))
	}

	if len(shown) < len(rows) {
		sb.WriteString(fmt.Sprintf("(showing top %d of %d items)\n", len(shown), len(rows)))
	}

	return sb.String()
}

// RenderSummaryFooter renders the totals line printed after the summary tables.
// Format: "Lists: 2 · Occurrences: 1,204 · Unique items: 87"
func RenderSummaryFooter(summary *salience.Summary) string {
	return fmt.Sprintf("Lists: %s · Occurrences: %s · Unique items: %s\n",
		humanize.Comma(int64(summary.Lists)),
		humanize.Comma(int64(summary.Occurrences)),
		humanize.Comma(int64(summary.Unique())))
}

// RenderErrorBanner renders the banner shown when the tool cannot run,
// followed by the expected invocation.
func RenderErrorBanner(message, invocation string) string {
	var sb strings.Builder

	sb.WriteString(colorize(colorRed, "********* ERROR *********"))
	sb.WriteString("\n")
	sb.WriteString(message)
	sb.WriteString("\n")
	sb.WriteString("Make sure to use the following command:\n")
	sb.WriteString("\t" + invocation + "\n")

	return sb.String()
}

// wordWidth returns the Word column width for the given tokens.
func wordWidth(words []string) int {
	width := len("Word")
	for _, w := range words {
		if n := utf8.RuneCountInString(w); n > width {
			width = n
		}
	}
	if width > maxWordWidth {
		width = maxWordWidth
	}
	return width
}

// truncate truncates a string to maxLen runes, adding "..." if truncated.
func truncate(s string, maxLen int) string {
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return string(runes[:maxLen])
	}
	return string(runes[:maxLen-3]) + "..."
}
