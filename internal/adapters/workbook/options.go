package workbook

// Option applies a configuration option to the Reader.
type Option func(*Reader)

// WithRowWindow sets the inclusive 1-indexed row range scanned per sheet.
func WithRowWindow(first, last int) Option {
	return func(r *Reader) {
		r.firstRow = first
		r.lastRow = last
	}
}

// WithColumns sets the spreadsheet column letters holding surname, given
// name, score and points.
func WithColumns(surname, givenName, score, points string) Option {
	return func(r *Reader) {
		r.surnameCol = surname
		r.givenNameCol = givenName
		r.scoreCol = score
		r.pointsCol = points
	}
}
