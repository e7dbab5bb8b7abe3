package errors

import (
	"math"
	"strings"
)

// ValidFormats is the set of output formats the renderers support.
var ValidFormats = map[string]bool{
	"svg":  true,
	"png":  true,
	"pdf":  true,
	"dxf":  true,
	"json": true,
}

// ValidateBiscuits rejects biscuit counts below one. The objective is
// undefined on an empty placement, so zero is never a valid problem size.
func ValidateBiscuits(n int) error {
	if n < 1 {
		return New(ErrCodeInvalidBiscuits, "the number of biscuits to arrange must be at least 1, got %d", n)
	}
	return nil
}

// ValidateRange validates an inclusive biscuit range for batch runs.
// Equal bounds describe a single run and are accepted.
func ValidateRange(start, end int) error {
	if start < 1 || end < 1 {
		return New(ErrCodeInvalidBiscuits, "the number of biscuits to arrange must be at least 1 (start %d, end %d)", start, end)
	}
	if start > end {
		return New(ErrCodeInvalidRange, "start (%d) must not be greater than end (%d)", start, end)
	}
	return nil
}

// ValidatePan validates the pan dimensions.
//
// Both sides must be finite and strictly positive.
func ValidatePan(width, length float64) error {
	if !isPositiveFinite(width) {
		return New(ErrCodeInvalidPan, "pan width must be a positive number, got %v", width)
	}
	if !isPositiveFinite(length) {
		return New(ErrCodeInvalidPan, "pan length must be a positive number, got %v", length)
	}
	return nil
}

// ValidateBudget rejects a zero iteration budget. A run without a single
// annealing step never records a best state.
func ValidateBudget(iterations uint64) error {
	if iterations == 0 {
		return New(ErrCodeInvalidBudget, "the number of annealing runs must be at least 1")
	}
	return nil
}

// ValidateFormat checks that a format is supported. Matching is case-sensitive.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return New(ErrCodeInvalidFormat, "invalid format: %q (must be one of: %s)", format, strings.Join(formatNames(), ", "))
	}
	return nil
}

// ValidateFormats checks that all formats are supported.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

func formatNames() []string {
	return []string{"svg", "png", "pdf", "dxf", "json"}
}

func isPositiveFinite(v float64) bool {
	return v > 0 && !math.IsInf(v, 0) && !math.IsNaN(v)
}
