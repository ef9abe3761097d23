// Package banner renders the framed text blocks printed around a session.
package banner

import (
	"fmt"
	"io"
	"math/big"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var asciiBorder = lipgloss.Border{
	Top:         "-",
	Bottom:      "-",
	Left:        "|",
	Right:       "|",
	TopLeft:     "+",
	TopRight:    "+",
	BottomLeft:  "+",
	BottomRight: "+",
}

var creditsBorder = lipgloss.Border{
	Top:         "-",
	Bottom:      "-",
	Left:        "|",
	Right:       "|",
	TopLeft:     ":",
	TopRight:    ":",
	BottomLeft:  ":",
	BottomRight: ":",
}

// Rule separates the result block from the rest of the output.
var Rule = strings.Repeat("-=x=", 15) + "-"

// Renderer styles blocks for a specific output, so colors and bold text are
// only emitted when that output is a terminal.
type Renderer struct {
	box     lipgloss.Style
	credits lipgloss.Style
	label   lipgloss.Style
}

func New(w io.Writer) *Renderer {
	r := lipgloss.NewRenderer(w)
	return &Renderer{
		box: r.NewStyle().
			Border(asciiBorder).
			Padding(0, 4).
			Align(lipgloss.Center),
		credits: r.NewStyle().
			Border(creditsBorder).
			Padding(0, 1),
		label: r.NewStyle().Bold(true),
	}
}

// Banner is printed once when the program starts.
func (r *Renderer) Banner() string {
	return r.box.Render(strings.Join([]string{
		"Code your phrases using the caesar cipher method!",
		"--Special characters will not be changed.--",
		"--Any length, any shift.--",
	}, "\n"))
}

// Result frames the phrase and its shifted form. Phrase and code are written
// verbatim; only the labels are styled.
func (r *Renderer) Result(phrase string, shift *big.Int, code string) string {
	b := &strings.Builder{}
	fmt.Fprintf(b, "%s\n", Rule)
	fmt.Fprintf(b, "%s\n", r.label.Render("The input phrase is:"))
	fmt.Fprintf(b, "\t%s\n", phrase)
	fmt.Fprintf(b, "%s\n", r.label.Render(fmt.Sprintf("The caesar cipher with %s of shift is:", shift)))
	fmt.Fprintf(b, "\t%s\n", code)
	fmt.Fprintf(b, "%s", Rule)
	return b.String()
}

// Credits lists who wrote the program and when.
func (r *Renderer) Credits(programmer, date string) string {
	rows := [][2]string{
		{"Programmer:", programmer},
		{"Date:", date},
	}

	lines := []string{"End credits", ""}
	for _, row := range rows {
		lines = append(lines, fmt.Sprintf("%-12s | %s", row[0], row[1]))
	}
	return r.credits.Render(strings.Join(lines, "\n"))
}
