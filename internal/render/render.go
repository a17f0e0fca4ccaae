// Package render draws a game board and its messages on a terminal.
//
// Nothing here decides what the player may see: cells are projected with
// Cell.Display using Game.Hidden, and only the projected code is styled.
package render

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	mb "github.com/saeidalz13/nautica/models/battleship"
)

const (
	separator = "|"
	border    = "-"
)

var glyphs = map[mb.Cell]string{
	mb.CellWater:   " ",
	mb.CellShip:    "=",
	mb.CellMiss:    ".",
	mb.CellHit:     "X",
	mb.CellUnknown: "?",
}

// ANSI background colors per cell, water and unknown keep the terminal's.
var backgrounds = map[mb.Cell]lipgloss.Color{
	mb.CellShip: lipgloss.Color("8"),
	mb.CellMiss: lipgloss.Color("1"),
	mb.CellHit:  lipgloss.Color("2"),
}

// Glyph returns the character drawn for a cell code.
func Glyph(c mb.Cell) string {
	g, ok := glyphs[c]
	if !ok {
		return "?"
	}
	return g
}

type Renderer struct {
	out         io.Writer
	term        *termenv.Output
	lg          *lipgloss.Renderer
	styles      map[mb.Cell]lipgloss.Style
	clearScreen bool
}

type Option func(*Renderer)

// WithoutColor forces plain ASCII output.
func WithoutColor() Option {
	return func(r *Renderer) {
		r.lg.SetColorProfile(termenv.Ascii)
	}
}

func WithClearScreen(clear bool) Option {
	return func(r *Renderer) {
		r.clearScreen = clear
	}
}

func New(out io.Writer, opts ...Option) *Renderer {
	r := &Renderer{
		out:  out,
		term: termenv.NewOutput(out),
		lg:   lipgloss.NewRenderer(out),
	}
	for _, opt := range opts {
		opt(r)
	}

	r.styles = make(map[mb.Cell]lipgloss.Style, len(glyphs))
	for code := range glyphs {
		style := r.lg.NewStyle()
		if bg, ok := backgrounds[code]; ok {
			style = style.Background(bg).Foreground(lipgloss.Color("15"))
		}
		r.styles[code] = style
	}
	return r
}

func (r *Renderer) cell(c mb.Cell) string {
	style, ok := r.styles[c]
	if !ok {
		return Glyph(c)
	}
	return style.Render(Glyph(c))
}

// Board draws the grid with column indexes on top and zero padded row
// indexes on the left. Water and ships are concealed while the game is
// being played.
func (r *Renderer) Board(g *mb.Game) {
	grid := g.Grid()
	size := grid.Size()
	hide := g.Hidden()

	digits := len(strconv.Itoa(size))
	pad := strings.Repeat(" ", digits-1)
	rule := strings.Repeat(border, size*2+1)

	var b strings.Builder

	b.WriteString("    " + pad)
	for i := 0; i < size; i++ {
		b.WriteString(strconv.Itoa(i) + " ")
	}
	b.WriteString("\n")

	b.WriteString("   " + pad + rule + "\n")

	for y := 0; y < size; y++ {
		fmt.Fprintf(&b, " %0*d %s", digits, y, separator)
		for x := 0; x < size; x++ {
			code, _ := grid.Cell(x, y)
			b.WriteString(r.cell(code.Display(hide)))
			b.WriteString(separator)
		}
		b.WriteString("\n")
	}

	b.WriteString(pad + "   " + rule + "\n")

	_, _ = io.WriteString(r.out, b.String())
}

// Legend lists what each revealed glyph means.
func (r *Renderer) Legend() {
	var b strings.Builder
	b.WriteString("References:\n")
	for _, ref := range []struct {
		code mb.Cell
		desc string
	}{
		{mb.CellWater, "Water"},
		{mb.CellShip, "Ship"},
		{mb.CellMiss, "Failed attempt"},
		{mb.CellHit, "Successful attempt"},
	} {
		b.WriteString(r.cell(ref.code) + " -> " + ref.desc + "\n")
	}
	b.WriteString("\n\n")
	_, _ = io.WriteString(r.out, b.String())
}

func (r *Renderer) Status(g *mb.Game) {
	fmt.Fprintf(r.out, "\nAttempts remaining: %d\n", g.AttemptsRemaining())
}

func (r *Renderer) Outcome(g *mb.Game) {
	switch g.State() {
	case mb.GameStateWon:
		fmt.Fprintln(r.out, "\nYou have won! :)")
	case mb.GameStateLost:
		fmt.Fprintln(r.out, "\nYou have lost :(")
	}
}

// Tally prints the results of every finished round in the session.
func (r *Renderer) Tally(t mb.Tally) {
	fmt.Fprintf(r.out, "\nRounds played: %d\tWon: %d\tLost: %d\n", t.Played, t.Won, t.Lost)
}

func (r *Renderer) Clear() {
	if !r.clearScreen {
		return
	}
	r.term.ClearScreen()
}
