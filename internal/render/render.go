// Package render writes extracted documentation to an output sink. The sink
// contract is deliberately narrow (a heading plus a Markdown body) so that
// the documentation core stays decoupled from terminals entirely.
package render

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Renderer writes one documentation record to w.
type Renderer interface {
	Render(w io.Writer, heading, body string) error
}

// Plain writes records without styling. Used for file output, piped output,
// and captured strings in tests.
type Plain struct{}

func (Plain) Render(w io.Writer, heading, body string) error {
	if heading != "" {
		if _, err := fmt.Fprintf(w, "%s\n\n", heading); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, body)
	return err
}

// Term styles headings for interactive terminals. The color profile is
// detected from the writer and the environment, so styling degrades to
// plain text for non-terminal writers and under NO_COLOR.
type Term struct {
	heading lipgloss.Style
}

// NewTerm builds a terminal renderer for w.
func NewTerm(w io.Writer) *Term {
	profile := termenv.NewOutput(w).EnvColorProfile()
	r := lipgloss.NewRenderer(w, termenv.WithProfile(profile))
	return &Term{heading: r.NewStyle().Bold(true).Underline(true)}
}

func (t *Term) Render(w io.Writer, heading, body string) error {
	if heading != "" {
		if _, err := fmt.Fprintf(w, "%s\n\n", t.heading.Render(heading)); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, body)
	return err
}
