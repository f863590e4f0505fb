package reports

import (
	"fmt"
	"io"
	"time"

	"github.com/jung-kurt/gofpdf"
)

type PDFOptions struct {
	Title       string
	GeneratedAt time.Time
}

var pdfColumns = []struct {
	header string
	width  float64
	align  string
}{
	{"Name", 48, "L"},
	{"Type", 42, "L"},
	{"Monthly", 24, "R"},
	{"Annual", 26, "R"},
	{"Bonus", 24, "R"},
	{"Total", 26, "R"},
}

// WritePDF renders the summary as a one-table A4 document.
func WritePDF(w io.Writer, summary Summary, opts PDFOptions) error {
	title := opts.Title
	if title == "" {
		title = "Payroll Summary"
	}
	generatedAt := opts.GeneratedAt
	if generatedAt.IsZero() {
		generatedAt = time.Now()
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(title, true)
	pdf.SetCreationDate(generatedAt)
	pdf.AddPage()
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(40, 10, tr(title))
	pdf.Ln(10)
	pdf.SetFont("Helvetica", "", 10)
	pdf.Cell(0, 6, fmt.Sprintf("Generated: %s", generatedAt.Format("2006-01-02 15:04")))
	pdf.Ln(10)

	if summary.EmployeeCount == 0 {
		pdf.SetFont("Helvetica", "", 12)
		pdf.Cell(0, 8, EmptyRosterMessage)
		return pdf.Output(w)
	}

	pdf.SetFont("Helvetica", "B", 10)
	for _, col := range pdfColumns {
		pdf.CellFormat(col.width, 7, col.header, "1", 0, col.align, false, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 10)
	for _, line := range summary.Employees {
		values := []string{
			tr(line.Name),
			line.Category,
			line.Formatted.Monthly,
			line.Formatted.Annual,
			line.Formatted.Bonus,
			line.Formatted.Total,
		}
		for i, col := range pdfColumns {
			pdf.CellFormat(col.width, 7, values[i], "1", 0, col.align, false, 0, "")
		}
		pdf.Ln(-1)
	}

	pdf.Ln(4)
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Total annual payroll: %s", summary.GrandTotalFormatted))
	return pdf.Output(w)
}
