package workbook

import "errors"

// Sentinel kinds for extraction errors.
var (
	ErrOpenWorkbook  = errors.New("open workbook failed")
	ErrReadSheet     = errors.New("read sheet failed")
	ErrInvalidColumn = errors.New("invalid column letter")
	ErrInvalidWindow = errors.New("invalid row window")
)
