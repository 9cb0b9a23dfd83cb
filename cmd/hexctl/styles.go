package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/joshuapare/hexkit/dump"
)

var (
	offsetStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	hexStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))
	textStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
)

// renderRows formats dump rows for the terminal, colorized unless disabled.
func renderRows(rows []dump.Row, width int, color bool) string {
	hexWidth := width*3 - 1 + (width-1)/8

	var sb strings.Builder
	for _, row := range rows {
		offset := fmt.Sprintf("%08x", row.Offset)
		hexCol := fmt.Sprintf("%-*s", hexWidth, row.Hex)
		text := row.Text
		if color {
			offset = offsetStyle.Render(offset)
			hexCol = hexStyle.Render(hexCol)
			text = textStyle.Render(text)
		}
		fmt.Fprintf(&sb, "%s  %s  |%s|\n", offset, hexCol, text)
	}
	return sb.String()
}
