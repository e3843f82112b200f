package export

import (
	"fmt"

	"github.com/go-pdf/fpdf"

	"github.com/clubtarot/standings/internal/domain/standings"
)

// PDF layout constants, in centimeters unless noted.
const (
	pdfMargin   = 0.7
	titleHeight = 1.0
	titleGap    = 0.3
	headerRowH  = 0.5
	bodyRowH    = 0.45

	rankColWidth   = 1.6
	nameColWidth   = 2.6
	playsColWidth  = 1.8
	narrowColWidth = 1.2

	headerFontSize = 7 // points
	bodyFontSize   = 7
	titleFontSize  = 16
)

// fixedLeadColumns counts the columns before the points slots: rank,
// surname, given name, play count. totalsColumns counts the trailing
// total score and total points columns.
const (
	fixedLeadColumns = 4
	totalsColumns    = 2
)

// WritePDF renders the ranked table as a landscape-A4 paginated document:
// a title, a grouped two-row header repeated on every page, and one grid
// row per player with alternating background fill.
func WritePDF(path string, headers []string, rows []standings.Row, opts ...PDFOption) error {
	cfg := pdfConfig{day: "Mardi", docTitle: "Classement Tarot"}
	for _, opt := range opts {
		opt(&cfg)
	}

	pdf := fpdf.New("L", "cm", "A4", "")
	pdf.SetTitle(cfg.docTitle, true)
	pdf.SetAuthor(cfg.docTitle, true)
	pdf.SetMargins(pdfMargin, pdfMargin, pdfMargin)
	pdf.SetAutoPageBreak(false, pdfMargin)
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	widths := columnWidths(pdf, headers)
	_, pageH := pdf.GetPageSize()

	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", titleFontSize)
	pdf.CellFormat(0, titleHeight, tr("Challenge du "+cfg.day), "", 1, "C", false, 0, "")
	pdf.Ln(titleGap)

	drawTableHeader(pdf, tr, headers, widths)

	pdf.SetFont("Helvetica", "", bodyFontSize)
	pdf.SetTextColor(0, 0, 0)
	for i, row := range rows {
		if pdf.GetY()+bodyRowH > pageH-pdfMargin {
			pdf.AddPage()
			drawTableHeader(pdf, tr, headers, widths)
			pdf.SetFont("Helvetica", "", bodyFontSize)
			pdf.SetTextColor(0, 0, 0)
		}

		if i%2 == 0 {
			pdf.SetFillColor(245, 245, 245) // whitesmoke
		} else {
			pdf.SetFillColor(224, 255, 255) // light cyan
		}

		for col, cell := range row.Flatten() {
			align := "C"
			if col == 1 || col == 2 { // names read better left-aligned
				align = "L"
			}
			pdf.CellFormat(widths[col], bodyRowH, tr(cellText(cell)), "1", 0, align, true, 0, "")
		}
		pdf.Ln(bodyRowH)
	}

	if err := pdf.OutputFileAndClose(path); err != nil {
		return fmt.Errorf("%w: %w", ErrWritePDF, err)
	}
	return nil
}

// drawTableHeader draws the grouped two-row header: the four lead labels,
// a "Points" band spanning the K slot columns, and a "Totaux" band spanning
// the two totals columns, with the slot numbers and totals labels beneath.
func drawTableHeader(pdf *fpdf.Fpdf, tr func(string) string, headers []string, widths []float64) {
	k := len(headers) - fixedLeadColumns - totalsColumns

	pdf.SetFont("Helvetica", "B", headerFontSize)
	pdf.SetFillColor(211, 211, 211) // light grey
	pdf.SetTextColor(0, 0, 0)

	var slotsWidth, totalsWidth float64
	for i := 0; i < k; i++ {
		slotsWidth += widths[fixedLeadColumns+i]
	}
	totalsWidth = widths[len(widths)-2] + widths[len(widths)-1]

	for i := 0; i < fixedLeadColumns; i++ {
		pdf.CellFormat(widths[i], headerRowH, tr(headers[i]), "1", 0, "C", true, 0, "")
	}
	pdf.CellFormat(slotsWidth, headerRowH, "Points", "1", 0, "C", true, 0, "")
	pdf.CellFormat(totalsWidth, headerRowH, "Totaux", "1", 0, "C", true, 0, "")
	pdf.Ln(headerRowH)

	for i := 0; i < fixedLeadColumns; i++ {
		pdf.CellFormat(widths[i], headerRowH, "", "1", 0, "C", true, 0, "")
	}
	for i := fixedLeadColumns; i < len(headers); i++ {
		pdf.CellFormat(widths[i], headerRowH, tr(headers[i]), "1", 0, "C", true, 0, "")
	}
	pdf.Ln(headerRowH)
}

// columnWidths returns per-column widths tuned for the club table, scaled
// down uniformly when the table would overflow the printable width.
func columnWidths(pdf *fpdf.Fpdf, headers []string) []float64 {
	widths := make([]float64, len(headers))
	total := 0.0
	for i := range headers {
		switch i {
		case 0:
			widths[i] = rankColWidth
		case 1, 2:
			widths[i] = nameColWidth
		case 3:
			widths[i] = playsColWidth
		default:
			widths[i] = narrowColWidth
		}
		total += widths[i]
	}

	pageW, _ := pdf.GetPageSize()
	usable := pageW - 2*pdfMargin
	if total > usable {
		scale := usable / total
		for i := range widths {
			widths[i] *= scale
		}
	}
	return widths
}
