package errors

import (
	"math"
)

// ValidateColorRange checks that a colour range is usable by a colour map.
//
// Validation rules:
//   - Both bounds must be finite (no NaN, no ±Inf)
//   - Min must not exceed Max
//
// A degenerate range (Min == Max) is accepted; colour maps treat every
// value as the single endpoint colour.
func ValidateColorRange(min, max float64) error {
	if math.IsNaN(min) || math.IsNaN(max) {
		return New(ErrCodeEmptyRange, "color range contains NaN: (%v, %v)", min, max)
	}
	if math.IsInf(min, 0) || math.IsInf(max, 0) {
		return New(ErrCodeInvalidInput, "color range must be finite: (%v, %v)", min, max)
	}
	if min > max {
		return New(ErrCodeInvalidInput, "color range minimum %v exceeds maximum %v", min, max)
	}
	return nil
}

// ValidatePositive checks that a named numeric setting is finite and > 0.
func ValidatePositive(name string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
		return New(ErrCodeConfiguration, "%s must be a positive number, got %v", name, v)
	}
	return nil
}

// ValidateFraction checks that a named setting lies in the closed interval [0, 1].
func ValidateFraction(name string, v float64) error {
	if math.IsNaN(v) || v < 0 || v > 1 {
		return New(ErrCodeConfiguration, "%s must be between 0 and 1, got %v", name, v)
	}
	return nil
}
