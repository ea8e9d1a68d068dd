package hypercube

import (
	"fmt"
	"regexp"
	"strconv"

	"github.com/hyperoxo/hyperoxo/internal/model"
)

var digitRuns = regexp.MustCompile(`\d+`)
var nonDigits = regexp.MustCompile(`\D`)

// ParseCoord parses a cell specification string into a coordinate for
// h(d, n). If the string is all digits, each digit is one coordinate, which
// only works for n <= 9. Otherwise any non-digit characters act as
// separators and each maximal digit run is one coordinate. offset is
// subtracted from every coordinate; 1 parses human-friendly 1-based input,
// 0 parses raw coordinates.
//
// All failures wrap ErrUnknownMove.
func ParseCoord(d, n int, s string, offset int) (model.Coord, error) {
	var parts []string
	if !nonDigits.MatchString(s) {
		if n > 9 {
			return nil, fmt.Errorf("%w: board is too big for each dimension to be specified by a single digit", model.ErrUnknownMove)
		}
		parts = make([]string, 0, len(s))
		for _, r := range s {
			parts = append(parts, string(r))
		}
	} else {
		parts = digitRuns.FindAllString(s, -1)
	}

	if len(parts) != d {
		return nil, fmt.Errorf("%w: expected %d coordinates, got %d", model.ErrUnknownMove, d, len(parts))
	}

	cell := make(model.Coord, d)
	for i, p := range parts {
		v, err := strconv.Atoi(p)
		if err != nil {
			return nil, fmt.Errorf("%w: %q is not a number", model.ErrUnknownMove, p)
		}
		cell[i] = v - offset
	}
	if !cell.InBounds(n) {
		return nil, fmt.Errorf("%w: one or more coordinates are out of range", model.ErrUnknownMove)
	}
	return cell, nil
}
