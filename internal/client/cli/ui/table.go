package ui

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Table renders HPACK header lists, dynamic-table state, and fixture
// results as an aligned, Vercel-style CLI table.
type Table struct {
	headers []string
	rows    [][]string
	title   string
}

// NewTable creates a new table
func NewTable(headers []string) *Table {
	return &Table{
		headers: headers,
		rows:    [][]string{},
	}
}

// WithTitle sets the table title
func (t *Table) WithTitle(title string) *Table {
	t.title = title
	return t
}

// AddRow adds a row to the table
func (t *Table) AddRow(row []string) *Table {
	t.rows = append(t.rows, row)
	return t
}

// Render renders the table (Vercel-style)
func (t *Table) Render() string {
	if len(t.rows) == 0 {
		return ""
	}

	// Calculate column widths
	colWidths := make([]int, len(t.headers))
	for i, header := range t.headers {
		colWidths[i] = lipgloss.Width(header)
	}
	for _, row := range t.rows {
		for i, cell := range row {
			if i < len(colWidths) {
				width := lipgloss.Width(cell)
				if width > colWidths[i] {
					colWidths[i] = width
				}
			}
		}
	}

	var output strings.Builder

	// Title
	if t.title != "" {
		output.WriteString("\n")
		output.WriteString(titleStyle.Render(t.title))
		output.WriteString("\n\n")
	}

	// Header
	headerParts := make([]string, len(t.headers))
	for i, header := range t.headers {
		styled := tableHeaderStyle.Render(header)
		headerParts[i] = padRight(styled, colWidths[i])
	}
	output.WriteString(strings.Join(headerParts, "  "))
	output.WriteString("\n")

	// Separator line
	separatorChar := "─"
	if runtime.GOOS == "windows" {
		separatorChar = "-"
	}
	separatorParts := make([]string, len(t.headers))
	for i := range t.headers {
		separatorParts[i] = mutedStyle.Render(strings.Repeat(separatorChar, colWidths[i]))
	}
	output.WriteString(strings.Join(separatorParts, "  "))
	output.WriteString("\n")

	// Rows
	for _, row := range t.rows {
		rowParts := make([]string, len(t.headers))
		for i, cell := range row {
			if i < len(colWidths) {
				rowParts[i] = padRight(cell, colWidths[i])
			}
		}
		output.WriteString(strings.Join(rowParts, "  "))
		output.WriteString("\n")
	}

	output.WriteString("\n")
	return output.String()
}

// padRight pads
func padRight(text string, targetWidth int) string {
	visibleWidth := lipgloss.Width(text)
	if visibleWidth >= targetWidth {
		return text
	}
	padding := strings.Repeat(" ", targetWidth-visibleWidth)
	return text + padding
}

// Print prints the table
func (t *Table) Print() {
	fmt.Print(t.Render())
}

// wireBytesPerRow is how many octets hpackctl shows per hex-dump line.
const wireBytesPerRow = 8

// RenderWireDump renders a raw HPACK header block as an offset-prefixed
// hex dump, grouped in octets, so hpackctl's inspect subcommand can show
// the bytes a header block was decoded from alongside the decoded
// fields.
func RenderWireDump(data []byte) string {
	if len(data) == 0 {
		return ""
	}

	var output strings.Builder
	output.WriteString("\n")
	output.WriteString(titleStyle.Render("Wire bytes"))
	output.WriteString("\n\n")

	for offset := 0; offset < len(data); offset += wireBytesPerRow {
		end := offset + wireBytesPerRow
		if end > len(data) {
			end = len(data)
		}
		chunk := data[offset:end]

		groups := make([]string, len(chunk))
		for i, b := range chunk {
			groups[i] = fmt.Sprintf("%02x", b)
		}

		output.WriteString(mutedStyle.Render(fmt.Sprintf("%04x", offset)))
		output.WriteString("  ")
		output.WriteString(strings.Join(groups, " "))
		output.WriteString("\n")
	}
	output.WriteString("\n")
	return output.String()
}
