package export

import (
	"bytes"
	"fmt"

	"github.com/go-pdf/fpdf"

	"github.com/ternarybob/gauntlet/internal/services/checklist"
)

const (
	pdfFont       = "Arial"
	pdfPageWidth  = 190.0
	pdfLineHeight = 5.0
)

// renderPDF lays the run out as a printable report: a title page
// header, then per ticker the segment overview and one reasoning table
// per segment.
func renderPDF(run *checklist.RunResult) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(10, 10, 10)
	pdf.SetAutoPageBreak(true, 12)
	pdf.AddPage()

	pdf.SetFont(pdfFont, "B", 16)
	pdf.CellFormat(pdfPageWidth, 9, "Gauntlet Checklist Report", "", 1, "L", false, 0, "")
	pdf.SetFont(pdfFont, "", 9)
	pdf.CellFormat(pdfPageWidth, 6,
		fmt.Sprintf("Run %s, %d companies, %s",
			run.RunID, len(run.Results), run.StartedAt.Format("2006-01-02 15:04 MST")),
		"", 1, "L", false, 0, "")
	pdf.Ln(4)

	for _, result := range run.Results {
		writeTickerPDF(pdf, result)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to generate pdf output: %w", err)
	}
	return buf.Bytes(), nil
}

func writeTickerPDF(pdf *fpdf.Fpdf, result *checklist.TickerResult) {
	title := result.Ticker
	if result.Company != "" {
		title = fmt.Sprintf("%s - %s", result.Ticker, result.Company)
	}

	pdf.SetFont(pdfFont, "B", 13)
	pdf.CellFormat(pdfPageWidth, 8, title, "", 1, "L", false, 0, "")
	pdf.SetFont(pdfFont, "B", 10)
	pdf.CellFormat(pdfPageWidth, 6, "Total: "+trimFloat(result.Total()), "", 1, "L", false, 0, "")
	pdf.Ln(2)

	overview := [][]string{{"Segment", "Score", "Max"}}
	for _, segment := range result.Segments {
		overview = append(overview, []string{
			segment.Name, trimFloat(segment.Total()), fmt.Sprintf("%d", segment.Max),
		})
	}
	writeTablePDF(pdf, overview, []float64{90, 30, 30})

	for _, segment := range result.Segments {
		pdf.SetFont(pdfFont, "B", 11)
		pdf.CellFormat(pdfPageWidth, 7, segment.Name, "", 1, "L", false, 0, "")

		rows := [][]string{{"Metric", "Score", "Max", "Reasoning"}}
		for _, m := range segment.Metrics {
			rows = append(rows, []string{
				m.Name, scoreCell(m), trimFloat(m.Max), m.Score.Reasoning,
			})
		}
		writeTablePDF(pdf, rows, []float64{55, 15, 12, 108})
	}
	pdf.Ln(4)
}

// writeTablePDF renders rows with wrapped cells. The first row is the
// header. Row height follows the tallest wrapped cell.
func writeTablePDF(pdf *fpdf.Fpdf, rows [][]string, widths []float64) {
	for i, row := range rows {
		if i == 0 {
			pdf.SetFont(pdfFont, "B", 8)
			pdf.SetFillColor(230, 230, 230)
		} else {
			pdf.SetFont(pdfFont, "", 8)
			pdf.SetFillColor(255, 255, 255)
		}

		height := pdfLineHeight
		for j, cell := range row {
			if j >= len(widths) {
				break
			}
			lines := pdf.SplitText(cell, widths[j]-2)
			if h := float64(len(lines)) * pdfLineHeight; h > height {
				height = h
			}
		}

		// Keep whole rows on one page.
		_, pageHeight := pdf.GetPageSize()
		_, _, _, bottom := pdf.GetMargins()
		if pdf.GetY()+height > pageHeight-bottom {
			pdf.AddPage()
		}

		x, y := pdf.GetXY()
		for j, cell := range row {
			if j >= len(widths) {
				break
			}
			pdf.Rect(x, y, widths[j], height, "FD")
			pdf.SetXY(x+1, y)
			pdf.MultiCell(widths[j]-2, pdfLineHeight, cell, "", "L", false)
			x += widths[j]
			pdf.SetXY(x, y)
		}
		pdf.SetXY(pdf.GetX()-sum(widths), y+height)
	}
	pdf.Ln(3)
}

func sum(vals []float64) float64 {
	total := 0.0
	for _, v := range vals {
		total += v
	}
	return total
}
