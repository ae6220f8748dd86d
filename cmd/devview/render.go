package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	cellStyle = lipgloss.NewStyle().
			Align(lipgloss.Right)

	rowStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))

	colStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

// renderer draws a grid, optionally with colour.
type renderer struct {
	styled bool
}

func (r renderer) style(s lipgloss.Style, text string) string {
	if !r.styled {
		return text
	}
	return s.Render(text)
}

func cellWidth(g grid) int {
	w := 1
	for row := 0; row < g.Rows(); row++ {
		for col := 0; col < g.Cols(); col++ {
			if n := len(fmt.Sprint(g.At(row, col))); n > w {
				w = n
			}
		}
	}
	return w
}

// matrix renders g with the selected row and column highlighted. A
// negative selRow or selCol disables that highlight.
func (r renderer) matrix(g grid, selRow, selCol int) string {
	width := cellWidth(g)
	var b strings.Builder
	for row := 0; row < g.Rows(); row++ {
		cells := make([]string, g.Cols())
		for col := 0; col < g.Cols(); col++ {
			text := fmt.Sprintf("%*d", width, g.At(row, col))
			switch {
			case row == selRow && col == selCol:
				text = r.style(selectedStyle, text)
			case row == selRow:
				text = r.style(rowStyle, text)
			case col == selCol:
				text = r.style(colStyle, text)
			default:
				text = r.style(cellStyle, text)
			}
			cells[col] = text
		}
		b.WriteString(strings.Join(cells, " "))
		b.WriteString("\n")
	}
	return b.String()
}

func (r renderer) header(g grid) string {
	return fmt.Sprintf("%s %dx%d in %s (%s)",
		r.style(titleStyle, "devview"), g.Rows(), g.Cols(), g.Space(), g.Describe())
}

func (r renderer) slices(g grid, selRow, selCol int) string {
	var b strings.Builder
	if selRow >= 0 && selRow < g.Rows() {
		fmt.Fprintf(&b, "%s %v\n", r.style(rowStyle, fmt.Sprintf("row %d:", selRow)), g.Row(selRow))
	}
	if selCol >= 0 && selCol < g.Cols() {
		fmt.Fprintf(&b, "%s %v\n", r.style(colStyle, fmt.Sprintf("column %d:", selCol)), g.Column(selCol))
	}
	if raw, err := g.Raw(selRow, selCol); err == nil {
		fmt.Fprintf(&b, "%s %s\n", r.style(selectedStyle, fmt.Sprintf("cell (%d,%d):", selRow, selCol)), raw)
	}
	return b.String()
}
