// Package geo holds FIPS code helpers shared by the sources and renderers.
package geo

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/rotisserie/eris"
)

// FormatFIPS formats a numeric FIPS code with zero-padding to the given
// number of digits. County codes use 5 digits, state codes 2.
func FormatFIPS(code int, digits int) string {
	return fmt.Sprintf("%0*d", digits, code)
}

// ParseFIPS parses a FIPS code string, tolerating surrounding whitespace
// and leading zeros.
func ParseFIPS(s string) (int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, eris.New("geo: empty FIPS code")
	}
	code, err := strconv.Atoi(s)
	if err != nil {
		return 0, eris.Wrapf(err, "geo: parse FIPS %q", s)
	}
	if code < 0 {
		return 0, eris.Errorf("geo: negative FIPS code %d", code)
	}
	return code, nil
}

// StateFIPS returns the 2-digit state portion of a 5-digit county code.
func StateFIPS(countyCode int) int {
	return countyCode / 1000
}
