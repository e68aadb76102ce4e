package board

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
)

// Render writes grid as a table with one column per sum and one row per step, top step first.
// Steps above the usual twelve are shown when someone has reached them.
func Render(w io.Writer, grid Grid) error {
	top := LastRow
	for c := range grid {
		if c.Row > top && len(grid[c]) > 0 {
			top = c.Row
		}
	}

	tw := tabwriter.NewWriter(w, 0, 0, 1, ' ', 0)

	header := []string{""}
	for col := FirstCol; col <= LastCol; col++ {
		header = append(header, fmt.Sprintf("%d", col))
	}
	fmt.Fprintln(tw, strings.Join(header, "\t")+"\t")

	for row := top; row >= FirstRow; row-- {
		line := []string{fmt.Sprintf("%d", row-2)}
		for col := FirstCol; col <= LastCol; col++ {
			names := grid[Cell{Row: row, Col: col}]
			if len(names) == 0 {
				line = append(line, ".")
				continue
			}
			line = append(line, strings.Join(names, ","))
		}
		fmt.Fprintln(tw, strings.Join(line, "\t")+"\t")
	}
	return tw.Flush()
}
