package cliapp

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"rtscheck/internal/history"
)

var (
	headerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#3B82F6")).
			Bold(true)

	passStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#10B981")).
			Bold(true)

	failStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F87171")).
			Bold(true)

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#64748B")).
			Italic(true)
)

const dividerWidth = 50

func divider(ch rune) string {
	return strings.Repeat(string(ch), dividerWidth)
}

func printHeader() {
	fmt.Println(headerStyle.Render("RealTest Script Validator"))
	fmt.Println(divider('='))
}

func okMark() string {
	return passStyle.Render("[OK]")
}

func statusMark(passed bool) string {
	if passed {
		return passStyle.Render("[PASS]")
	}
	return failStyle.Render("[FAIL]")
}

func renderHistory(runs []history.Run) string {
	if len(runs) == 0 {
		return "No recorded runs.\n"
	}

	var b strings.Builder
	b.WriteString(headerStyle.Render("VALIDATION HISTORY"))
	b.WriteString("\n")
	b.WriteString(divider('='))
	b.WriteString("\n")

	for _, run := range runs {
		pct := 100.0 * float64(run.Passed) / float64(run.Total)
		fmt.Fprintf(&b, "%s  total=%d passed=%d failed=%d (%.1f%%)\n",
			run.Timestamp.Format(time.RFC3339), run.Total, run.Passed, run.Failed, pct)
	}
	return b.String()
}
