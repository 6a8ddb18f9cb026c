package printer

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/indaco/ctorargs/internal/tui"
	"github.com/muesli/termenv"
)

// Style definitions for consistent console output across the application.
var (
	faintStyle   = lipgloss.NewStyle().Faint(true)
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("1")) // Red
	warningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("3")) // Yellow
)

var (
	noColor      bool
	savedProfile termenv.Profile
)

// SetNoColor disables ANSI styling for every writer when v is true.
// SetNoColor(false) restores the profile that was active before.
func SetNoColor(v bool) {
	switch {
	case v && !noColor:
		savedProfile = lipgloss.ColorProfile()
		lipgloss.SetColorProfile(termenv.Ascii)
	case !v && noColor:
		lipgloss.SetColorProfile(savedProfile)
	}
	noColor = v
}

// rendererFor returns a renderer bound to w. Writers that are not a
// terminal, or any writer once SetNoColor(true) was called, get plain text.
func rendererFor(w io.Writer) *lipgloss.Renderer {
	r := lipgloss.NewRenderer(w)
	if noColor || !tui.IsTerminal(w) {
		r.SetColorProfile(termenv.Ascii)
	}
	return r
}

// Fprint functions write styled text to w with a newline, styled for w
// rather than for stdout.

// FprintError writes text to w with error (red) styling.
func FprintError(w io.Writer, text string) {
	fprint(w, errorStyle, text)
}

// FprintWarning writes text to w with warning (yellow) styling.
func FprintWarning(w io.Writer, text string) {
	fprint(w, warningStyle, text)
}

// FprintFaint writes text to w with faint styling.
func FprintFaint(w io.Writer, text string) {
	fprint(w, faintStyle, text)
}

// Fprintln writes text to w unstyled. Used for machine-readable output.
func Fprintln(w io.Writer, text string) {
	_, _ = fmt.Fprintln(w, text)
}

func fprint(w io.Writer, style lipgloss.Style, text string) {
	_, _ = fmt.Fprintln(w, style.Renderer(rendererFor(w)).Render(text))
}
