// Package views renders the planner screens. Every renderer takes a plain
// data struct and returns a string; no view reaches back into the domain.
package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
)

// Palette carries the colors of one theme.
type Palette struct {
	Header   lipgloss.Color
	Accent   lipgloss.Color
	Muted    lipgloss.Color
	Error    lipgloss.Color
	Overdue  lipgloss.Color
	DueSoon  lipgloss.Color
	Done     lipgloss.Color
	Selected lipgloss.Color
}

func LightPalette() Palette {
	return Palette{
		Header:   lipgloss.Color("20"),
		Accent:   lipgloss.Color("26"),
		Muted:    lipgloss.Color("243"),
		Error:    lipgloss.Color("124"),
		Overdue:  lipgloss.Color("160"),
		DueSoon:  lipgloss.Color("130"),
		Done:     lipgloss.Color("28"),
		Selected: lipgloss.Color("33"),
	}
}

func DarkPalette() Palette {
	return Palette{
		Header:   lipgloss.Color("12"),
		Accent:   lipgloss.Color("14"),
		Muted:    lipgloss.Color("8"),
		Error:    lipgloss.Color("9"),
		Overdue:  lipgloss.Color("196"),
		DueSoon:  lipgloss.Color("214"),
		Done:     lipgloss.Color("10"),
		Selected: lipgloss.Color("39"),
	}
}

// PaletteFor maps a theme name to its palette; unknown names render light.
func PaletteFor(theme string) Palette {
	if theme == "dark" {
		return DarkPalette()
	}
	return LightPalette()
}

type AppData struct {
	Header     string
	Body       string
	StatusLine string
	IsError    bool
	Footer     string
	Palette    Palette
}

// RenderApp assembles the full frame: header, body, status line, footer.
func RenderApp(data AppData) string {
	headerStyle := lipgloss.NewStyle().Bold(true).Foreground(data.Palette.Header)
	statusStyle := lipgloss.NewStyle().Foreground(data.Palette.Done)
	if data.IsError {
		statusStyle = lipgloss.NewStyle().Foreground(data.Palette.Error)
	}
	footerStyle := lipgloss.NewStyle().Foreground(data.Palette.Muted)

	lines := []string{
		headerStyle.Render(data.Header),
		data.Body,
	}
	if data.StatusLine != "" {
		lines = append(lines, statusStyle.Render(data.StatusLine))
	}
	if data.Footer != "" {
		lines = append(lines, footerStyle.Render(data.Footer))
	}
	return strings.Join(lines, "\n")
}

// RenderMarkdown renders help text through glamour, falling back to the
// raw markdown when rendering fails.
func RenderMarkdown(md, theme string) string {
	if strings.TrimSpace(md) == "" {
		return ""
	}
	style := "light"
	if theme == "dark" {
		style = "dark"
	}
	out, err := glamour.Render(md, style)
	if err != nil {
		return md
	}
	return strings.TrimSpace(out)
}

// FormatClock renders seconds as mm:ss.
func FormatClock(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}
