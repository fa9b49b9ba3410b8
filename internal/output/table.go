package output

import (
	"fmt"
	"strings"

	"github.com/escape-velocity-ventures/limitwarden/internal/limits"
)

var tableHeaders = []string{"NAMESPACE", "POD NAME", "CONTAINER NAME", "MISSING CPU", "MISSING MEMORY"}

// RenderTable formats findings as a bordered, fixed-width text table.
func RenderTable(findings []limits.Finding) string {
	if len(findings) == 0 {
		return "No containers with missing resource limits found."
	}

	rows := make([][]string, len(findings))
	for i, f := range findings {
		rows[i] = []string{
			f.Namespace,
			f.PodName,
			f.ContainerName,
			yesNo(f.MissingCPULimit),
			yesNo(f.MissingMemoryLimit),
		}
	}

	// Column width is the max of the header and the widest cell.
	widths := make([]int, len(tableHeaders))
	for i, h := range tableHeaders {
		widths[i] = len(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}

	var sep strings.Builder
	sep.WriteString("+")
	for _, w := range widths {
		sep.WriteString(strings.Repeat("-", w+2))
		sep.WriteString("+")
	}
	separator := sep.String()

	var b strings.Builder
	b.WriteString(separator)
	b.WriteString("\n")
	b.WriteString(formatRow(tableHeaders, widths))
	b.WriteString("\n")
	b.WriteString(separator)
	b.WriteString("\n")
	for _, row := range rows {
		b.WriteString(formatRow(row, widths))
		b.WriteString("\n")
	}
	b.WriteString(separator)
	return b.String()
}

func formatRow(cells []string, widths []int) string {
	padded := make([]string, len(cells))
	for i, cell := range cells {
		padded[i] = fmt.Sprintf("%-*s", widths[i], cell)
	}
	return "| " + strings.Join(padded, " | ") + " |"
}

func yesNo(v bool) string {
	if v {
		return "YES"
	}
	return "NO"
}
