// Package styles holds the lipgloss styles for human-readable CLI output
package styles

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/devtrack/devtrack/internal/config"
	"github.com/devtrack/devtrack/internal/models"
)

var (
	// Card styles
	CardStyle lipgloss.Style
	CardWidth = 72

	// Text styles
	TitleStyle    lipgloss.Style
	SubtitleStyle lipgloss.Style
	LabelStyle    lipgloss.Style // For field labels like "Status:", "Deadline:"
	ValueStyle    lipgloss.Style
	ErrorStyle    lipgloss.Style

	statusColors map[models.Status]string
)

func init() {
	Init(config.DefaultColorScheme())
}

// Init initializes all CLI styles with the given color scheme
func Init(colors config.ColorScheme) {
	CardStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(colors.Accent)).
		Padding(0, 1).
		Width(CardWidth)

	TitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(colors.Title))

	SubtitleStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(colors.Subtle))

	LabelStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(colors.Accent))

	ValueStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(colors.Normal))

	ErrorStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(colors.Error))

	statusColors = map[models.Status]string{
		models.StatusNotStarted: colors.NotStarted,
		models.StatusInProgress: colors.InProgress,
		models.StatusPaused:     colors.Paused,
		models.StatusCompleted:  colors.Completed,
	}
}

// RenderStatus renders a status in its configured color
func RenderStatus(status models.Status) string {
	color, ok := statusColors[status]
	if !ok {
		return status.String()
	}
	return lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(color)).
		Render(status.String())
}

// RenderProgressBar draws a fixed-width bar for a 0-100 percentage
func RenderProgressBar(progress float64, width int) string {
	progress = models.ClampProgress(progress)
	filled := int(progress / 100 * float64(width))
	bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
	return fmt.Sprintf("%s %5.1f%%", bar, progress)
}

// RenderField renders a "Label: value" line
func RenderField(label, value string) string {
	return LabelStyle.Render(label+":") + " " + ValueStyle.Render(value)
}
