package signer

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	ResizingFill = "fill"
	ResizingFit  = "fit"
	ResizingAuto = "auto"
)

// invalidDimension is rendered in place of a fragment that is not a number.
// The proxy rejects it, which is where lenient parsing reports the mistake.
const invalidDimension = "NaN"

type sizeSpec struct {
	resizingType string
	width        string
	height       string
}

func parseSize(size string, strict bool) (sizeSpec, error) {
	var resizingType, separator string
	switch {
	case strings.Contains(size, "x"):
		resizingType, separator = ResizingFill, "x"
	case strings.Contains(size, "z"):
		resizingType, separator = ResizingFit, "z"
	default:
		return sizeSpec{ResizingAuto, "0", "0"}, nil
	}

	parts := strings.Split(size, separator)
	width, widthOK := parseDimension(parts[0])
	height, heightOK := parseDimension(parts[1])

	if strict && (!widthOK || !heightOK || len(parts) != 2) {
		return sizeSpec{}, &SizeTokenError{Token: size}
	}

	return sizeSpec{resizingType, width, height}, nil
}

func parseDimension(fragment string) (string, bool) {
	value, err := strconv.Atoi(strings.TrimSpace(fragment))
	if err != nil {
		return invalidDimension, false
	}

	return strconv.Itoa(value), true
}

// SizeTokenError is returned in strict mode for a size token whose
// dimensions are not integers.
type SizeTokenError struct {
	Token string
}

func (e *SizeTokenError) Error() string {
	return fmt.Sprintf("%s: %q", ErrInvalidSizeToken, e.Token)
}

func (e *SizeTokenError) Unwrap() error {
	return ErrInvalidSizeToken
}
