package location

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"weatherpoint/internal/apperr"
	"weatherpoint/internal/types"
)

// coordPattern matches "lat,lon" with optional sign, decimals, and
// surrounding whitespace.
var coordPattern = regexp.MustCompile(`^\s*([-+]?\d+(\.\d+)?)\s*,\s*([-+]?\d+(\.\d+)?)\s*$`)

// Query is the normalized form of raw user input: either a coordinate
// pair or free-form address text, never both.
type Query struct {
	Coords  *types.Coords
	Address string
}

// Normalize parses raw input into a Query. A "lat,lon" pair with both
// values in range becomes a coordinate query; any other non-empty string
// becomes an address query, including numeric pairs whose values are out
// of coordinate range. No network access happens here.
func Normalize(input string) (Query, error) {
	if m := coordPattern.FindStringSubmatch(input); m != nil {
		lat, latErr := strconv.ParseFloat(m[1], 64)
		lon, lonErr := strconv.ParseFloat(m[3], 64)
		if latErr == nil && lonErr == nil {
			coords := types.NewCoords(lat, lon)
			if err := coords.Validate(); err == nil {
				return Query{Coords: &coords}, nil
			}
		}
	}

	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return Query{}, fmt.Errorf("location input is empty: %w", apperr.ErrInvalidInput)
	}

	return Query{Address: trimmed}, nil
}
