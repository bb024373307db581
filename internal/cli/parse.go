package cli

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	algordft "github.com/cwbudde/algo-rdft"
)

var errBadDim = errors.New("dimension must be n:is:os")

// parseSizes parses a comma-separated list of positive sizes.
func parseSizes(list string) ([]int, error) {
	parts := strings.Split(list, ",")

	out := make([]int, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		n, err := strconv.Atoi(part)
		if err != nil || n <= 0 {
			return nil, fmt.Errorf("invalid size %q", part)
		}

		out = append(out, n)
	}

	return out, nil
}

// parseDim parses "n:is:os".
func parseDim(s string) (algordft.IODim, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 3 {
		return algordft.IODim{}, fmt.Errorf("%w: %q", errBadDim, s)
	}

	var vals [3]int

	for i, part := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return algordft.IODim{}, fmt.Errorf("%w: %q", errBadDim, s)
		}

		vals[i] = v
	}

	return algordft.IODim{N: vals[0], IS: vals[1], OS: vals[2]}, nil
}

func parseDims(specs []string) ([]algordft.IODim, error) {
	dims := make([]algordft.IODim, 0, len(specs))

	for _, s := range specs {
		d, err := parseDim(s)
		if err != nil {
			return nil, err
		}

		dims = append(dims, d)
	}

	return dims, nil
}

func parseKind(s string) (algordft.Kind, error) {
	switch strings.ToLower(s) {
	case "r2hc", "forward":
		return algordft.R2HC, nil
	case "hc2r", "inverse", "backward":
		return algordft.HC2R, nil
	default:
		return 0, fmt.Errorf("unknown kind %q (want r2hc or hc2r)", s)
	}
}

func validatePrecision(s string) error {
	switch s {
	case "f32", "f64":
		return nil
	default:
		return fmt.Errorf("unknown precision %q (want f32 or f64)", s)
	}
}

// layout returns the transform dimension of a size-n transform together with
// the distance between consecutive transforms on the real and half-complex
// sides. In-place layouts interleave re/im on the real array, so each real
// row is padded to 2*(n/2+1) elements.
func layout(kind algordft.Kind, n int, inplace bool) (sz algordft.IODim, realDist, cplxDist int) {
	half := n/2 + 1
	rs, cs := 1, 1
	realDist, cplxDist = n, half

	if inplace {
		cs = 2
		realDist, cplxDist = 2*half, 2*half
	}

	if kind == algordft.HC2R {
		return algordft.IODim{N: n, IS: cs, OS: rs}, realDist, cplxDist
	}

	return algordft.IODim{N: n, IS: rs, OS: cs}, realDist, cplxDist
}

// batchDim is the vector dimension of howmany transforms laid out by layout.
func batchDim(kind algordft.Kind, howmany, realDist, cplxDist int) algordft.IODim {
	if kind == algordft.HC2R {
		return algordft.IODim{N: howmany, IS: cplxDist, OS: realDist}
	}

	return algordft.IODim{N: howmany, IS: realDist, OS: cplxDist}
}
