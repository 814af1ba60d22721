package errors

import (
	"math"
	"testing"
)

func TestValidateColorRange(t *testing.T) {
	tests := []struct {
		name     string
		min, max float64
		wantCode Code
	}{
		{"ordered", 0, 1, ""},
		{"degenerate", 2, 2, ""},
		{"negative span", -3.5, -1, ""},

		{"reversed", 1, 0, ErrCodeInvalidInput},
		{"nan min", math.NaN(), 1, ErrCodeEmptyRange},
		{"nan max", 0, math.NaN(), ErrCodeEmptyRange},
		{"infinite", 0, math.Inf(1), ErrCodeInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateColorRange(tt.min, tt.max)
			if got := GetCode(err); got != tt.wantCode {
				t.Errorf("ValidateColorRange(%v, %v) code = %q, want %q (err=%v)", tt.min, tt.max, got, tt.wantCode, err)
			}
		})
	}
}

func TestValidatePositive(t *testing.T) {
	tests := []struct {
		name    string
		input   float64
		wantErr bool
	}{
		{"one", 1, false},
		{"small", 1e-6, false},

		{"zero", 0, true},
		{"negative", -1.5, true},
		{"nan", math.NaN(), true},
		{"inf", math.Inf(1), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePositive("zoom", tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidatePositive(%v) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeConfiguration) {
				t.Errorf("ValidatePositive(%v) code = %q, want %q", tt.input, GetCode(err), ErrCodeConfiguration)
			}
		})
	}
}

func TestValidateFraction(t *testing.T) {
	tests := []struct {
		name    string
		input   float64
		wantErr bool
	}{
		{"zero", 0, false},
		{"half", 0.5, false},
		{"one", 1, false},

		{"negative", -0.1, true},
		{"above one", 1.01, true},
		{"nan", math.NaN(), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateFraction("brightness", tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateFraction(%v) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}
