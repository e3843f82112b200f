// Package workbook extracts raw result rows from an Excel workbook. Every
// sheet shares the club's fixed layout: one tournament per sheet, player
// names and results in fixed columns within a fixed row window.
package workbook

import (
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/clubtarot/standings/internal/domain/aggregate"
	"github.com/clubtarot/standings/internal/domain/model"
)

// Default extraction window and columns, matching the club's sheet layout.
const (
	defaultFirstRow = 4
	defaultLastRow  = 100

	defaultSurnameCol   = "C"
	defaultGivenNameCol = "D"
	defaultScoreCol     = "I"
	defaultPointsCol    = "K"
)

// Reader extracts raw rows from every sheet of a workbook.
type Reader struct {
	firstRow int
	lastRow  int

	surnameCol   string
	givenNameCol string
	scoreCol     string
	pointsCol    string
}

// NewReader creates a Reader with the club's default layout, adjusted by
// options.
func NewReader(opts ...Option) *Reader {
	r := &Reader{
		firstRow:     defaultFirstRow,
		lastRow:      defaultLastRow,
		surnameCol:   defaultSurnameCol,
		givenNameCol: defaultGivenNameCol,
		scoreCol:     defaultScoreCol,
		pointsCol:    defaultPointsCol,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Read opens the workbook at path and returns one Sheet per worksheet, in
// workbook order, each holding the raw rows of the configured window.
// Rows beyond a sheet's actual extent are skipped; a sheet whose extent ends
// before the window contributes nothing. Missing cells come back as empty
// strings, distinguishable from "0".
func (r *Reader) Read(ctx context.Context, path string) ([]aggregate.Sheet, error) {
	if r.firstRow < 1 || r.firstRow > r.lastRow {
		return nil, fmt.Errorf("%w: rows %d..%d", ErrInvalidWindow, r.firstRow, r.lastRow)
	}
	cols, err := r.columnIndexes()
	if err != nil {
		return nil, err
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %w", ErrOpenWorkbook, path, err)
	}
	defer f.Close()

	var sheets []aggregate.Sheet
	for _, name := range f.GetSheetList() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		grid, err := f.GetRows(name)
		if err != nil {
			return nil, fmt.Errorf("%w: %q: %w", ErrReadSheet, name, err)
		}

		sheet := aggregate.Sheet{Name: name}
		last := r.lastRow
		if last > len(grid) {
			last = len(grid)
		}
		for row := r.firstRow; row <= last; row++ {
			cells := grid[row-1]
			sheet.Rows = append(sheet.Rows, model.RawRow{
				Surname:   cellAt(cells, cols.surname),
				GivenName: cellAt(cells, cols.givenName),
				Score:     cellAt(cells, cols.score),
				Points:    cellAt(cells, cols.points),
			})
		}
		sheets = append(sheets, sheet)
	}

	return sheets, nil
}

// columnIndexes resolves the configured column letters to 0-based indexes.
func (r *Reader) columnIndexes() (struct{ surname, givenName, score, points int }, error) {
	var out struct{ surname, givenName, score, points int }
	for _, c := range []struct {
		letter string
		dst    *int
	}{
		{r.surnameCol, &out.surname},
		{r.givenNameCol, &out.givenName},
		{r.scoreCol, &out.score},
		{r.pointsCol, &out.points},
	} {
		n, err := excelize.ColumnNameToNumber(c.letter)
		if err != nil {
			return out, fmt.Errorf("%w: %q", ErrInvalidColumn, c.letter)
		}
		*c.dst = n - 1
	}
	return out, nil
}

// cellAt returns the cell text at a 0-based column index, tolerating the
// ragged rows excelize produces for trailing empty cells.
func cellAt(cells []string, idx int) string {
	if idx < 0 || idx >= len(cells) {
		return ""
	}
	return cells[idx]
}
