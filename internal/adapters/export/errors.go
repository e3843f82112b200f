package export

import "errors"

// Sentinel kinds for export errors.
var (
	ErrWriteCSV = errors.New("write csv failed")
	ErrWritePDF = errors.New("write pdf failed")
)
