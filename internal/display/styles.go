// Package display renders the scoreboard, history and rules for the terminal
package display

import (
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Styles holds every style the renderers use. Build it from a renderer so
// colour can be switched off per output.
type Styles struct {
	Header   lipgloss.Style
	Section  lipgloss.Style
	Name     lipgloss.Style
	Dealer   lipgloss.Style
	Sitting  lipgloss.Style
	Positive lipgloss.Style
	Negative lipgloss.Style
	Pot      lipgloss.Style
	Muted    lipgloss.Style
	Success  lipgloss.Style
	Error    lipgloss.Style
	Warning  lipgloss.Style
}

// NewRenderer returns a renderer for w. With color false every style renders
// as plain text.
func NewRenderer(w io.Writer, color bool) *lipgloss.Renderer {
	r := lipgloss.NewRenderer(w)
	if !color {
		r.SetColorProfile(termenv.Ascii)
	}
	return r
}

func NewStyles(r *lipgloss.Renderer) Styles {
	return Styles{
		Header: r.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#2E7D32")).
			Padding(0, 1).
			Bold(true),
		Section: r.NewStyle().
			Foreground(lipgloss.Color("#96CEB4")).
			Bold(true),
		Name: r.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")),
		Dealer: r.NewStyle().
			Foreground(lipgloss.Color("#FFD700")).
			Bold(true),
		Sitting: r.NewStyle().
			Foreground(lipgloss.Color("#626262")).
			Italic(true),
		Positive: r.NewStyle().
			Foreground(lipgloss.Color("#04B575")).
			Bold(true),
		Negative: r.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B")).
			Bold(true),
		Pot: r.NewStyle().
			Foreground(lipgloss.Color("#FFD700")),
		Muted: r.NewStyle().
			Foreground(lipgloss.Color("#626262")),
		Success: r.NewStyle().
			Foreground(lipgloss.Color("#96CEB4")).
			Bold(true),
		Error: r.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B")).
			Bold(true),
		Warning: r.NewStyle().
			Foreground(lipgloss.Color("#FFEAA7")).
			Bold(true),
	}
}

// Failure renders an error a command returned
func Failure(s Styles, err error) string {
	return s.Error.Render("Error:") + " " + err.Error()
}
