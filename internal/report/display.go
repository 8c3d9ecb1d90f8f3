package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/sumantkashyav/Log-Analysis-Script/internal/model"
)

var (
	styleHeading = lipgloss.NewStyle().Bold(true)
	styleInfo    = lipgloss.NewStyle().Foreground(lipgloss.Color("245")) // gray
	styleDebug   = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Faint(true)
	styleWarn    = lipgloss.NewStyle().Foreground(lipgloss.Color("220")) // yellow
	styleError   = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true) // red bold
	styleAlert   = lipgloss.NewStyle().
			Foreground(lipgloss.Color("255")).
			Background(lipgloss.Color("196")).
			Bold(true) // white on red
)

// Display prints a severity-colored summary to w for interactive runs. The
// same sorted ordering as the report files is used.
func Display(w io.Writer, s model.Summary) {
	fmt.Fprintln(w, styleHeading.Render("Log analysis summary"))
	fmt.Fprintf(w, "  files %d, records %d, failures %d, skipped %d\n\n", s.Files, s.Total, s.Failures, s.Skipped)

	for _, level := range sortedKeys(s.Levels) {
		tag := styleLevelTag(level)
		fmt.Fprintf(w, "  %s %d\n", tag, s.Levels[level])
	}

	if len(s.FailureReasons) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, styleHeading.Render("Parse failures"))
		for _, reason := range sortedKeys(s.FailureReasons) {
			fmt.Fprintf(w, "  %s: %d\n", reason, s.FailureReasons[reason])
		}
	}

	for _, key := range sortedEntityKeys(s.Entities) {
		counts := s.Entities[key]
		fmt.Fprintln(w)
		fmt.Fprintln(w, styleHeading.Render("Counts per "+key))
		for _, value := range sortedKeys(counts) {
			fmt.Fprintf(w, "  %s: %d\n", value, counts[value])
		}
		if value, n, ok := topValue(counts); ok {
			fmt.Fprintf(w, "  most frequent: %s (%d)\n", value, n)
		}
	}

	if len(s.Suspicious) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, styleAlert.Render(" Suspicious activity "))
		for _, key := range sortedEntityKeys(s.Suspicious) {
			counts := s.Suspicious[key]
			for _, value := range sortedKeys(counts) {
				fmt.Fprintf(w, "  %s %s: %d errors\n", key, value, counts[value])
			}
		}
	}
}

// topValue returns the most frequent value in counts. Ties break toward the
// lexicographically smallest value so the display stays deterministic.
func topValue(counts map[string]int64) (string, int64, bool) {
	var (
		best  string
		bestN int64
	)
	for _, value := range sortedKeys(counts) {
		if counts[value] > bestN {
			best, bestN = value, counts[value]
		}
	}
	return best, bestN, bestN > 0
}

func styleLevelTag(level string) string {
	padded := fmt.Sprintf("%-8s", level)
	switch strings.ToUpper(level) {
	case "DEBUG", "TRACE":
		return styleDebug.Render(padded)
	case "WARN", "WARNING":
		return styleWarn.Render(padded)
	case "ERROR", "FATAL", "CRITICAL":
		return styleError.Render(padded)
	default:
		return styleInfo.Render(padded)
	}
}
