package export

import (
	"math"
	"strconv"

	"github.com/clubtarot/standings/internal/domain/standings"
)

// FormatNumber renders a numeric value for display: whole numbers without a
// decimal point, everything else with exactly one fractional digit.
func FormatNumber(v float64) string {
	if v == math.Trunc(v) {
		return strconv.FormatFloat(v, 'f', -1, 64)
	}
	return strconv.FormatFloat(v, 'f', 1, 64)
}

// cellText renders one flattened cell. Blank cells stay empty.
func cellText(c standings.Cell) string {
	if c.Numeric {
		return FormatNumber(c.Value)
	}
	return c.Text
}
