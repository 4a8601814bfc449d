package styles

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/glamour"
	"github.com/thenoetrevino/lanes/internal/config/colors"
	"github.com/thenoetrevino/lanes/internal/models"
	"github.com/thenoetrevino/lanes/internal/types"
)

var (
	// Card styles
	CardStyle lipgloss.Style
	CardWidth = 80

	// Text styles
	TitleStyle    lipgloss.Style
	SubtitleStyle lipgloss.Style
	LabelStyle    lipgloss.Style // For field labels like "Priority:", "Assignee:"
	ValueStyle    lipgloss.Style // For field values
	SectionStyle  lipgloss.Style // For section headers like "Description"

	// Status styles
	SuccessStyle lipgloss.Style
	ErrorStyle   lipgloss.Style
	WarningStyle lipgloss.Style

	scheme = *colors.Default()
)

// Init initializes all CLI styles with the given color scheme
func Init(cs colors.ColorScheme) {
	cs.ApplyDefaults()
	scheme = cs

	CardStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(cs.Border)).
		Padding(1, 2).
		Width(CardWidth)

	TitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(cs.Title))

	SubtitleStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(cs.Subtle))

	LabelStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(cs.Accent))

	ValueStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(cs.Normal))

	SectionStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(cs.Accent)).
		Bold(true).
		MarginTop(1)

	SuccessStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(cs.Success))

	ErrorStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(cs.Error))

	WarningStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(cs.Warning))
}

func init() {
	Init(scheme)
}

// ═══════════════════════════════════════════════════════════════════
// HELPER FUNCTIONS
// ═══════════════════════════════════════════════════════════════════

// ColoredText renders text with a hex color
func ColoredText(text, hexColor string) string {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(hexColor)).
		Render(text)
}

// BoldColoredText renders bold text with a hex color
func BoldColoredText(text, hexColor string) string {
	return lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(hexColor)).
		Render(text)
}

// RenderColumnHeader renders "Icon Title (n)" in the column's lane color
func RenderColumnHeader(col *models.Column) string {
	header := col.Title
	if col.Icon != "" {
		header = col.Icon + " " + header
	}
	header = fmt.Sprintf("%s (%d)", header, len(col.TaskIDs))
	return BoldColoredText(header, scheme.Lane(string(col.Color)))
}

// RenderPriorityChip renders a priority as "[high]"; unset priorities render empty
func RenderPriorityChip(p types.Priority) string {
	if p == types.PriorityNone {
		return ""
	}
	color := scheme.Subtle
	switch p {
	case types.PriorityHigh:
		color = scheme.Error
	case types.PriorityMedium:
		color = scheme.Warning
	case types.PriorityLow:
		color = scheme.Success
	}
	return BoldColoredText("["+string(p)+"]", color)
}

// RenderTaskLine renders a one-line task summary used in column listings
// Format: "• Title [priority] @assignee (id)"
func RenderTaskLine(t *models.Task) string {
	parts := []string{"• " + t.Title}
	if chip := RenderPriorityChip(t.Priority); chip != "" {
		parts = append(parts, chip)
	}
	if t.Assignee != "" {
		parts = append(parts, ValueStyle.Render("@"+t.Assignee))
	}
	parts = append(parts, SubtitleStyle.Render("("+string(t.ID)+")"))
	return strings.Join(parts, " ")
}

// RenderMarkdown renders a description as terminal markdown.
// Plain text is returned on renderer failure.
func RenderMarkdown(text string) string {
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(glamourStyle()),
		glamour.WithWordWrap(CardWidth-6),
	)
	if err != nil {
		return text
	}
	out, err := r.Render(text)
	if err != nil {
		return text
	}
	return strings.TrimSpace(out)
}

func glamourStyle() string {
	if scheme.Preset == "monochrome" {
		return "notty"
	}
	return "dark"
}

// RenderCard wraps content in a styled card border
func RenderCard(content string) string {
	return CardStyle.Render(content)
}

// Scheme returns the active color scheme
func Scheme() colors.ColorScheme {
	return scheme
}
