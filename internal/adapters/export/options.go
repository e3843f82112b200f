package export

// PDFOption applies a configuration option to the PDF renderer.
type PDFOption func(*pdfConfig)

// pdfConfig holds the adjustable parts of the PDF layout.
type pdfConfig struct {
	day      string
	docTitle string
}

// WithDayLabel sets the tournament day shown in the page title
// ("Challenge du <day>").
func WithDayLabel(day string) PDFOption {
	return func(c *pdfConfig) {
		if day != "" {
			c.day = day
		}
	}
}

// WithDocumentTitle sets the PDF document metadata title.
func WithDocumentTitle(title string) PDFOption {
	return func(c *pdfConfig) {
		if title != "" {
			c.docTitle = title
		}
	}
}
