package path

import (
	"math"
	"strconv"
	"strings"
)

// Magnitudes beyond these bounds switch to exponential notation so the
// serialized form stays short without losing the leading digits.
const (
	expUpperBound = 1e6
	expLowerBound = 1e-4
)

// String renders the path to its canonical form: command letters
// concatenated directly, parameters space-separated, numbers bounded to
// four fractional digits. Parsing the result yields commands numerically
// equivalent to the input within that precision.
func (p Path) String() string {
	var b strings.Builder
	for _, cmd := range p {
		b.WriteByte(cmd.Letter)
		for i, v := range cmd.Values {
			if i > 0 {
				b.WriteByte(' ')
			}
			b.WriteString(formatValue(v))
		}
	}
	return b.String()
}

// formatValue renders one parameter. Very large or very small non-zero
// magnitudes use exponential form with 4 significant fractional digits;
// everything else is fixed to 4 decimal places.
func formatValue(v float64) string {
	abs := math.Abs(v)
	if abs > expUpperBound || (abs != 0 && abs < expLowerBound) {
		return strconv.FormatFloat(v, 'e', 4, 64)
	}
	return strconv.FormatFloat(v, 'f', 4, 64)
}
