// Package output renders generated passwords as plain text, a bordered
// table, or JSON.
package output

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/olekukonko/tablewriter"

	"github.com/pwforge/pwforge/internal/models"
)

const banner = `
                 __
 _ ____      __ / _| ___  _ __ __ _  ___
| '_ \ \ /\ / /| |_ / _ \| '__/ _` + "`" + ` |/ _ \
| |_) \ V  V / |  _| (_) | | | (_| |  __/
| .__/ \_/\_/  |_|  \___/|_|  \__, |\___|
|_|                           |___/
`

// Banner writes the startup banner.
func Banner(w io.Writer) {
	fmt.Fprintf(w, "%s\n", banner)
}

// ColumnCount picks a readable table column count for n passwords.
func ColumnCount(n int) int {
	switch {
	case n <= 3:
		return 1
	case n <= 8:
		return 2
	case n <= 15:
		return 3
	case n <= 24:
		return 4
	}
	for _, d := range []int{5, 4, 3, 2} {
		if n%d == 0 {
			return d
		}
	}
	return 3
}

// WriteLines writes passwords one per line.
func WriteLines(w io.Writer, passwords []string) {
	for _, pw := range passwords {
		fmt.Fprintln(w, pw)
	}
}

// WriteTable renders passwords in a bordered table with the given column
// count, with an optional header line naming the layout.
func WriteTable(w io.Writer, passwords []string, columns int, showHeader bool) {
	if showHeader {
		fmt.Fprintf(w, "Printing %d passwords in %d columns\n", len(passwords), columns)
	}
	if len(passwords) == 0 {
		return
	}

	table := tablewriter.NewWriter(w)
	table.SetAutoFormatHeaders(false)
	table.SetBorders(tablewriter.Border{Left: true, Top: true, Right: true, Bottom: true})
	table.SetCenterSeparator("|")

	var rows [][]string
	for i := 0; i < len(passwords); i += columns {
		row := make([]string, columns)
		copy(row, passwords[i:min(i+columns, len(passwords))])
		rows = append(rows, row)
	}
	table.AppendBulk(rows)
	table.Render()
}

// WriteJSON renders the batch report as indented JSON.
func WriteJSON(w io.Writer, batch models.Batch) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(batch); err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}
	return nil
}
