// Package export renders a ranked season table to its output formats: a
// delimited CSV file and a paginated landscape PDF. Pure formatting, no
// ranking logic.
package export

import (
	"encoding/csv"
	"fmt"
	"os"

	"github.com/clubtarot/standings/internal/domain/standings"
)

// utf8BOM prefixes the CSV so spreadsheet applications detect the encoding.
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// WriteCSV writes headers plus one record per ranked row to path. Each
// record has exactly len(headers) fields; blank slots stay empty.
func WriteCSV(path string, headers []string, rows []standings.Row) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrWriteCSV, err)
	}
	defer f.Close()

	if _, err := f.Write(utf8BOM); err != nil {
		return fmt.Errorf("%w: %w", ErrWriteCSV, err)
	}

	w := csv.NewWriter(f)
	if err := w.Write(headers); err != nil {
		return fmt.Errorf("%w: %w", ErrWriteCSV, err)
	}
	for _, row := range rows {
		cells := row.Flatten()
		record := make([]string, len(cells))
		for i, c := range cells {
			record[i] = cellText(c)
		}
		if err := w.Write(record); err != nil {
			return fmt.Errorf("%w: %w", ErrWriteCSV, err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("%w: %w", ErrWriteCSV, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("%w: %w", ErrWriteCSV, err)
	}
	return nil
}
