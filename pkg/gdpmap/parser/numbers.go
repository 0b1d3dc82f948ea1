package parser

import (
	"strconv"
	"strings"
)

// ParseNumber parses a GDP cell value as float64.
// Surrounding whitespace is ignored; anything else must be a decimal or
// scientific literal. Hexadecimal literals are rejected. "NaN" and "Inf"
// parse and are left to the caller's range check.
func ParseNumber(s string) (float64, error) {
	s = strings.TrimSpace(s)
	digits := strings.TrimLeft(s, "+-")
	if len(digits) > 1 && digits[0] == '0' && (digits[1] == 'x' || digits[1] == 'X') {
		return 0, &strconv.NumError{Func: "ParseFloat", Num: s, Err: strconv.ErrSyntax}
	}
	return strconv.ParseFloat(s, 64)
}
