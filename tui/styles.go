package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	ColorPrimary = lipgloss.Color("#2563EB") // Blue
	ColorAccent  = lipgloss.Color("#F59E0B") // Amber

	ColorSuccess = lipgloss.Color("#10B981")
	ColorWarning = lipgloss.Color("#F59E0B")
	ColorError   = lipgloss.Color("#EF4444")

	ColorBorder      = lipgloss.Color("#6B7280")
	ColorBorderLight = lipgloss.Color("#9CA3AF")
	ColorText        = lipgloss.Color("#F9FAFB")
	ColorTextMuted   = lipgloss.Color("#9CA3AF")

	// Alternating row shades of the track table.
	ColorStripeEven = lipgloss.Color("#111827")
	ColorStripeOdd  = lipgloss.Color("#1F2937")
	ColorCursor     = lipgloss.Color("#1E3A8A")
)

type Theme struct {
	PanelBorder lipgloss.Border

	HeaderStyle     lipgloss.Style
	ColumnStyle     lipgloss.Style
	NormalTextStyle lipgloss.Style
	MutedTextStyle  lipgloss.Style
	HighlightStyle  lipgloss.Style

	EvenRowStyle   lipgloss.Style
	OddRowStyle    lipgloss.Style
	CursorRowStyle lipgloss.Style
	CursorCell     lipgloss.Style

	SelectedItemStyle lipgloss.Style
	ErrorStyle        lipgloss.Style
	SuccessStyle      lipgloss.Style
	WarningStyle      lipgloss.Style

	FieldLabelStyle lipgloss.Style
	FieldValueStyle lipgloss.Style
	EditingStyle    lipgloss.Style
	ModalStyle      lipgloss.Style
}

func DefaultTheme() *Theme {
	return &Theme{
		PanelBorder: lipgloss.RoundedBorder(),

		HeaderStyle: lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorText).
			Background(ColorPrimary).
			Padding(0, 1),

		ColumnStyle: lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorBorderLight).
			Underline(true),

		NormalTextStyle: lipgloss.NewStyle().
			Foreground(ColorText),

		MutedTextStyle: lipgloss.NewStyle().
			Foreground(ColorTextMuted),

		HighlightStyle: lipgloss.NewStyle().
			Foreground(ColorAccent).
			Bold(true),

		EvenRowStyle: lipgloss.NewStyle().
			Background(ColorStripeEven),

		OddRowStyle: lipgloss.NewStyle().
			Background(ColorStripeOdd),

		CursorRowStyle: lipgloss.NewStyle().
			Background(ColorCursor),

		CursorCell: lipgloss.NewStyle().
			Foreground(ColorText).
			Background(ColorPrimary).
			Bold(true),

		SelectedItemStyle: lipgloss.NewStyle().
			Foreground(ColorText).
			Background(ColorCursor).
			Bold(true),

		ErrorStyle: lipgloss.NewStyle().
			Foreground(ColorError).
			Bold(true),

		SuccessStyle: lipgloss.NewStyle().
			Foreground(ColorSuccess).
			Bold(true),

		WarningStyle: lipgloss.NewStyle().
			Foreground(ColorWarning).
			Bold(true),

		FieldLabelStyle: lipgloss.NewStyle().
			Foreground(ColorTextMuted).
			Width(14).
			Align(lipgloss.Right),

		FieldValueStyle: lipgloss.NewStyle().
			Foreground(ColorText),

		EditingStyle: lipgloss.NewStyle().
			Foreground(ColorAccent).
			Bold(true),

		ModalStyle: lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(ColorAccent).
			Padding(1, 2),
	}
}

const (
	IconFolder     = "📁"
	IconMusic      = "🎵"
	IconCheck      = "✓"
	IconCross      = "✗"
	IconWarning    = "⚠"
	IconArrowRight = "▶"
)

func KeyHelp(key, description string, theme *Theme) string {
	keyStyle := lipgloss.NewStyle().
		Foreground(ColorPrimary).
		Bold(true)

	return keyStyle.Render(key) + " " + theme.MutedTextStyle.Render(description)
}

func Separator(width int, char string, color lipgloss.Color) string {
	return lipgloss.NewStyle().Foreground(color).Render(strings.Repeat(char, max(width, 1)))
}

// truncate shortens s to width cells, marking the cut with "…".
func truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if lipgloss.Width(s) <= width {
		return s
	}
	runes := []rune(s)
	for len(runes) > 0 && lipgloss.Width(string(runes))+1 > width {
		runes = runes[:len(runes)-1]
	}
	return string(runes) + "…"
}

// pad truncates or right-pads s to exactly width cells.
func pad(s string, width int) string {
	s = truncate(s, width)
	if gap := width - lipgloss.Width(s); gap > 0 {
		s += strings.Repeat(" ", gap)
	}
	return s
}

func formatFileSize(bytes int64) string {
	const unit = 1024
	if bytes < unit {
		return fmt.Sprintf("%d B", bytes)
	}
	div, exp := int64(unit), 0
	for n := bytes / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %cB", float64(bytes)/float64(div), "KMGTPE"[exp])
}
