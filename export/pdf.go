package export

import (
	"fmt"
	"io"
	"team-draft/domain"

	"github.com/jung-kurt/gofpdf"
)

// WritePDF writes a single A4 document listing the groups and the balance figures.
func WritePDF(w io.Writer, result domain.AllocationResult, filter NameFilter) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	// Core fonts are cp1252; accented names need translating.
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetTitle("Drawn groups", true)
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 20)
	pdf.Cell(40, 12, "Drawn groups")
	pdf.Ln(14)

	pdf.SetFont("Arial", "", 11)
	pdf.Cell(0, 8, fmt.Sprintf("Average %.1f | Difference %.1f | Standard deviation %.2f",
		result.Stats.Average, float64(result.Stats.Difference), result.Stats.StandardDeviation))
	pdf.Ln(12)

	for _, group := range result.Groups {
		pdf.SetFont("Arial", "B", 13)
		pdf.Cell(0, 8, fmt.Sprintf("Group %d (score: %d)", group.Number(), group.Score()))
		pdf.Ln(8)

		pdf.SetFont("Arial", "", 11)
		for _, p := range group.Members {
			pdf.Cell(0, 6, tr(fmt.Sprintf("- %s (%d) - %s", filter.apply(p.Name), p.Score, p.Category)))
			pdf.Ln(6)
		}
		pdf.Ln(4)
	}

	return pdf.Output(w)
}
