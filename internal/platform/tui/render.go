package tui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-puzzles/internal/registry"
)

// cellWidth is the inner width of one board cell in characters.
const cellWidth = 6

// tileColors maps tile values to foreground colours; larger 2048 tiles
// get warmer colours. Values not listed use tileDefault.
var tileColors = map[int]lipgloss.Color{
	2:    lipgloss.Color("7"),
	4:    lipgloss.Color("15"),
	8:    lipgloss.Color("214"),
	16:   lipgloss.Color("208"),
	32:   lipgloss.Color("202"),
	64:   lipgloss.Color("196"),
	128:  lipgloss.Color("226"),
	256:  lipgloss.Color("220"),
	512:  lipgloss.Color("178"),
	1024: lipgloss.Color("136"),
	2048: lipgloss.Color("46"),
}

var (
	tileDefault = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	gridStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

// tileStyle returns the style for a tile value.
func tileStyle(v int) lipgloss.Style {
	if c, ok := tileColors[v]; ok {
		return lipgloss.NewStyle().Bold(true).Foreground(c)
	}
	return tileDefault
}

// BoardValues reads every cell of g through Get, row by row.
// Empty cells become 0 for rendering.
func BoardValues(g registry.Game) [][]int {
	w := g.Width()
	rows := make([][]int, w)
	for i := range w {
		rows[i] = make([]int, w)
		for j := range w {
			if s, err := g.Get(i+1, j+1); err == nil && s.Filled {
				rows[i][j] = s.Value
			}
		}
	}
	return rows
}

// RenderBoard draws the board as a box-drawn grid.
func RenderBoard(values [][]int) string {
	w := len(values)
	var sb strings.Builder

	border := func(left, mid, right string) {
		sb.WriteString(gridStyle.Render(left))
		for j := range w {
			sb.WriteString(gridStyle.Render(strings.Repeat("─", cellWidth)))
			if j < w-1 {
				sb.WriteString(gridStyle.Render(mid))
			}
		}
		sb.WriteString(gridStyle.Render(right))
		sb.WriteRune('\n')
	}

	border("┌", "┬", "┐")
	for i, row := range values {
		sb.WriteString(gridStyle.Render("│"))
		for _, v := range row {
			sb.WriteString(renderTile(v))
			sb.WriteString(gridStyle.Render("│"))
		}
		sb.WriteRune('\n')

		if i < w-1 {
			border("├", "┼", "┤")
		}
	}
	border("└", "┴", "┘")

	return sb.String()
}

// renderTile centres a value in a cell; empty cells are blank.
func renderTile(v int) string {
	if v == 0 {
		return strings.Repeat(" ", cellWidth)
	}

	text := strconv.Itoa(v)
	if len(text) > cellWidth {
		text = text[:cellWidth]
	}
	left := (cellWidth - len(text)) / 2
	right := cellWidth - len(text) - left
	return strings.Repeat(" ", left) + tileStyle(v).Render(text) + strings.Repeat(" ", right)
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	textWidth := lipgloss.Width(text)
	if textWidth >= width {
		return text
	}
	padding := (width - textWidth) / 2
	return strings.Repeat(" ", padding) + text
}

// centerBlock centers every line of a multi-line block.
func centerBlock(block string, width int) string {
	lines := strings.Split(strings.TrimRight(block, "\n"), "\n")
	for i, l := range lines {
		lines[i] = centerText(l, width)
	}
	return strings.Join(lines, "\n")
}
