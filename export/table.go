package export

import (
	"fmt"
	"io"
	"strconv"
	"team-draft/domain"

	"github.com/gookit/color"
	"github.com/olekukonko/tablewriter"
)

// RenderTable prints every group as rows of a single table, followed by the balance figures.
// With colours on, a group total is green when at or above the average and red below it.
func RenderTable(w io.Writer, result domain.AllocationResult, filter NameFilter, colours bool) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Group", "Player", "Score", "Category"})
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(true)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetAutoMergeCellsByColumnIndex([]int{0})
	table.SetRowLine(true)

	for _, group := range result.Groups {
		label := fmt.Sprintf("Group %d", group.Number())
		for _, p := range group.Members {
			table.Append([]string{label, filter.apply(p.Name), strconv.Itoa(p.Score), string(p.Category)})
		}
		total := strconv.Itoa(group.Score())
		if colours {
			total = totalStyle(float64(group.Score()), result.Stats.Average).Render(total)
		}
		table.Append([]string{label, "TOTAL", total, ""})
	}
	table.Render()

	fmt.Fprintf(w, "Average score: %.1f\n", result.Stats.Average)
	fmt.Fprintf(w, "Max-min difference: %.1f\n", float64(result.Stats.Difference))
	fmt.Fprintf(w, "Standard deviation: %.2f\n", result.Stats.StandardDeviation)
	fmt.Fprintf(w, "Drawn at: %s\n", result.CreatedAt.Local().Format("15:04:05"))
}

func totalStyle(total, average float64) color.Style {
	if total >= average {
		return color.New(color.FgGreen, color.OpBold)
	}
	return color.New(color.FgRed, color.OpBold)
}
