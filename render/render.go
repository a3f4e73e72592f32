// Package render draws an overlay as a fretboard diagram for the terminal.
package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/jsphweid/fretdex/overlay"
	"github.com/jsphweid/fretdex/pitch"
	"github.com/jsphweid/fretdex/selection"
)

const CellWidth = 7

var (
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#555"))
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#888"))
	nutStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#fff")).Bold(true)
	inlayStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#ccc"))
)

func cellStyle(s overlay.Style) lipgloss.Style {
	style := lipgloss.NewStyle().
		Width(CellWidth).
		Align(lipgloss.Center).
		Background(lipgloss.Color(s.Background)).
		Foreground(lipgloss.Color(s.Foreground))
	if s.Border != "" {
		style = style.Bold(true).Underline(true)
	}
	return style
}

func center(text string) string {
	return lipgloss.NewStyle().Width(CellWidth).Align(lipgloss.Center).Render(text)
}

// Fretboard renders one line per string plus a fret number header and an
// inlay row. Standard orientation puts the highest string on top.
func Fretboard(o overlay.Overlay, orientation selection.Orientation) string {
	order := make([]int, len(o.Cells))
	for i := range order {
		if orientation == selection.OrientationFlipped {
			order[i] = i
		} else {
			order[i] = len(o.Cells) - 1 - i
		}
	}

	labelWidth := 2
	for _, open := range o.Tuning {
		labelWidth = max(labelWidth, lipgloss.Width(open))
	}

	var b strings.Builder
	b.WriteString(strings.Repeat(" ", labelWidth+1))
	for fret := 0; fret <= o.NumFrets; fret++ {
		b.WriteString(headerStyle.Render(center(fmt.Sprint(fret))))
		b.WriteString(" ")
	}
	b.WriteString("\n")

	for _, str := range order {
		name := ""
		if str < len(o.Tuning) {
			name = o.Tuning[str]
		}
		b.WriteString(fmt.Sprintf("%-*s ", labelWidth, name))
		for fret, c := range o.Cells[str] {
			if c.Visible {
				b.WriteString(cellStyle(c.Style).Render(c.Label))
			} else {
				b.WriteString(dimStyle.Render(strings.Repeat("-", CellWidth)))
			}
			if fret == 0 {
				b.WriteString(nutStyle.Render("‖"))
			} else {
				b.WriteString(dimStyle.Render("|"))
			}
		}
		b.WriteString("\n")
	}

	b.WriteString(strings.Repeat(" ", labelWidth+1))
	inlays := make(map[int]overlay.Inlay)
	for _, in := range o.Inlays {
		inlays[in.Fret] = in
	}
	for fret := 0; fret <= o.NumFrets; fret++ {
		mark := ""
		if in, ok := inlays[fret]; ok {
			mark = "•"
			if in.Double {
				mark = "••"
			}
		}
		b.WriteString(inlayStyle.Render(center(mark)))
		b.WriteString(" ")
	}
	b.WriteString("\n")
	return b.String()
}

// Legend names the selection and lists its notes.
func Legend(o overlay.Overlay) string {
	if o.Selection.IsNone() {
		return "nothing selected"
	}
	notes := make([]string, len(o.Notes))
	for i, n := range o.Notes {
		notes[i] = pitch.Display(n)
	}
	return fmt.Sprintf("%s: %s", o.Selection.Value(), strings.Join(notes, " "))
}
