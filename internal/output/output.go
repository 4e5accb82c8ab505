package output

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// Color modes accepted by --color and the config file.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// ColorModes lists the valid color modes.
var ColorModes = []string{ColorAuto, ColorAlways, ColorNever}

// ColorProfile picks the color profile for w. In auto mode colors are used
// only when w is a terminal and NO_COLOR is not set.
func ColorProfile(mode string, w io.Writer) termenv.Profile {
	return colorProfile(mode, isTerminal(w))
}

func colorProfile(mode string, tty bool) termenv.Profile {
	switch mode {
	case ColorAlways:
		return termenv.ANSI
	case ColorAuto:
		if tty && !termenv.EnvNoColor() {
			return termenv.ANSI
		}
	}
	return termenv.Ascii
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// Printer writes diagnostics to a single stream.
type Printer struct {
	w          io.Writer
	profile    termenv.Profile
	errorStyle lipgloss.Style
	stepStyle  lipgloss.Style
	verbose    bool
}

// New creates a Printer for w using the given color profile.
func New(w io.Writer, profile termenv.Profile) *Printer {
	r := newRenderer(w, profile)
	return &Printer{
		w:          w,
		profile:    profile,
		errorStyle: r.NewStyle().Foreground(lipgloss.Color("1")).Bold(true),
		stepStyle:  r.NewStyle().Foreground(lipgloss.Color("240")),
	}
}

// SetVerbose enables or disables verbose output.
// This should be called by the CLI when the --verbose flag is set.
func (p *Printer) SetVerbose(v bool) {
	p.verbose = v
}

// Error prints msg as a single line, in red when the stream has color.
//
// Example:
//
//	p.Error("Error walking the directory: open /root: permission denied")
func (p *Printer) Error(msg string) {
	fmt.Fprintln(p.w, render(p.profile, p.errorStyle, msg))
}

// Verbose prints a debug message with 🔍 emoji only if verbose mode is enabled.
//
// Example:
//
//	p.Verbose("Loaded config from: .treewalker.yml")
func (p *Printer) Verbose(msg string) {
	if p.verbose {
		fmt.Fprintln(p.w, render(p.profile, p.stepStyle, "🔍 "+msg))
	}
}

// Palette decorates tree entries for one output stream.
//
// Names are wrapped in escape codes only. lipgloss layout would expand
// tabs and pad multi-line names, so it is not used here.
type Palette struct {
	profile termenv.Profile
}

// NewPalette creates a Palette using the given color profile.
func NewPalette(profile termenv.Profile) *Palette {
	return &Palette{profile: profile}
}

// Directory styles a directory name. The name's text is never changed.
func (p *Palette) Directory(name string) string {
	if p.profile == termenv.Ascii {
		return name
	}
	return p.profile.String(name).Foreground(p.profile.Color("4")).Bold().String()
}

func newRenderer(w io.Writer, profile termenv.Profile) *lipgloss.Renderer {
	r := lipgloss.NewRenderer(w)
	r.SetColorProfile(profile)
	return r
}

// render leaves text untouched without color so plain output is exact.
func render(profile termenv.Profile, style lipgloss.Style, text string) string {
	if profile == termenv.Ascii {
		return text
	}
	return style.Render(text)
}
