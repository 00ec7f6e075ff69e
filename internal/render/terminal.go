// Package render turns lookup results into the two presentation surfaces: styled
// terminal panels for the CLI and HTML fragments for the web page.
package render

import (
	"fmt"
	"strings"
	"time"

	"github.com/Yates-Labs/floriography/internal/lookup"
	"github.com/Yates-Labs/floriography/internal/orchestrator"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
)

const panelWidth = 72

// Palette follows the web page's info-box colours.
var (
	titleColor    = lipgloss.Color("#4CAF50") // Green
	headingColor  = lipgloss.Color("#004D40") // Deep teal
	contentColor  = lipgloss.Color("#00695C") // Teal
	flowerBorder  = lipgloss.Color("#F06292") // Pink
	meaningBorder = lipgloss.Color("#66BB6A") // Light green
	missingBorder = lipgloss.Color("#FF7043") // Orange
	mutedColor    = lipgloss.Color("#6272A4") // Muted purple
)

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(titleColor).
			Bold(true)

	headingStyle = lipgloss.NewStyle().
			Foreground(headingColor).
			Bold(true)

	labelStyle = lipgloss.NewStyle().
			Foreground(contentColor).
			Bold(true)

	contentStyle = lipgloss.NewStyle().
			Foreground(contentColor)

	mutedStyle = lipgloss.NewStyle().
			Foreground(mutedColor).
			Italic(true)
)

func panel(border lipgloss.Color) lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Padding(0, 1).
		Width(panelWidth)
}

func field(name, value string) string {
	return labelStyle.Render(name+":") + " " + contentStyle.Render(value)
}

// Banner is the heading printed above interactive sessions.
func Banner() string {
	return titleStyle.Render("Flower Power") + "\n" +
		mutedStyle.Render("Welcome to the Language of Flowers.")
}

// Flower renders the answer to a flower-name query.
func Flower(result *orchestrator.FlowerResult) string {
	if !result.Found {
		return NotFound(fmt.Sprintf("Sorry, we don't have information on the flower: %s", result.DisplayName))
	}

	lines := []string{
		headingStyle.Render(fmt.Sprintf("Information for %s:", result.DisplayName)),
		field("Meaning", result.Meaning),
	}
	if result.Narrative != "" {
		lines = append(lines, field("Cultural or Historical Significance", result.Narrative))
	}
	if result.ImageURL != "" {
		lines = append(lines, field("Image", result.ImageURL))
	}

	return panel(flowerBorder).Render(strings.Join(lines, "\n"))
}

// Meaning renders the answer to a meaning query.
func Meaning(result *orchestrator.MeaningResult) string {
	if !result.Found {
		return NotFound(fmt.Sprintf("Sorry, we don't have a flower associated with the meaning: %s", result.Meaning))
	}

	lines := []string{
		headingStyle.Render(fmt.Sprintf("Flower associated with '%s':", result.Meaning)),
		field("Flower", result.DisplayName),
	}
	if result.ImageURL != "" {
		lines = append(lines, field("Image", result.ImageURL))
	}

	return panel(meaningBorder).Render(strings.Join(lines, "\n"))
}

// NotFound renders a miss.
func NotFound(message string) string {
	return panel(missingBorder).Render(contentStyle.Render(message))
}

// DatasetError renders the panel shown when the dataset cannot be loaded.
func DatasetError(err error) string {
	lines := []string{contentStyle.Render("There was an issue with loading the dataset.")}
	if err != nil {
		lines = append(lines, mutedStyle.Render(err.Error()))
	}
	return panel(missingBorder).Render(strings.Join(lines, "\n"))
}

// List renders a vocabulary list with display-cased entries.
func List(title string, items []string) string {
	var b strings.Builder
	b.WriteString(headingStyle.Render(title))
	b.WriteString("\n")
	for _, item := range items {
		b.WriteString(contentStyle.Render("  • " + lookup.DisplayName(item)))
		b.WriteString("\n")
	}
	b.WriteString(mutedStyle.Render(fmt.Sprintf("%d entries", len(items))))
	return b.String()
}

// Status renders a dataset summary relative to now.
func Status(status *orchestrator.Status, now time.Time) string {
	lines := []string{
		headingStyle.Render("Dataset"),
		field("Location", status.Location),
		field("Records", fmt.Sprintf("%s (%s skipped)", humanize.Comma(int64(status.Records)), humanize.Comma(int64(status.Skipped)))),
		field("Flowers", humanize.Comma(int64(status.Flowers))),
		field("Meanings", humanize.Comma(int64(status.Meanings))),
		field("Loaded", humanize.RelTime(status.LoadedAt, now, "ago", "from now")),
	}
	if status.Duplicates > 0 {
		lines = append(lines, mutedStyle.Render(fmt.Sprintf("%d duplicate keys resolved by last row wins", status.Duplicates)))
	}
	return panel(meaningBorder).Render(strings.Join(lines, "\n"))
}
