package domain_test

import (
	"errors"
	"math"
	"testing"

	"github.com/Zhouyuxin4/Scalor/internal/domain"
)

func almostEqual(a, b, epsilon float64) bool {
	return math.Abs(a-b) < epsilon
}

func TestStandardUnitPrice(t *testing.T) {
	tests := []struct {
		name     string
		price    float64
		quantity float64
		unit     string
		want     float64
	}{
		{"per gram from lb", 12, 3, "lb", 12 / (3 * 453.6)},
		{"per item", 5, 1, "EA", 5},
		{"per pack", 8, 2, "PK", 4},
		{"per ml from gal", 10, 1, "gal", 10.0 / 3785},
		{"per gram from kg", 3, 1.5, "kg", 0.002},
		{"per ml from fl oz", 2.99, 12, "fl oz", 2.99 / (12 * 29.57)},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := domain.StandardUnitPrice(tc.price, tc.quantity, tc.unit)
			if err != nil {
				t.Fatalf("StandardUnitPrice(%v, %v, %q) returned error: %v",
					tc.price, tc.quantity, tc.unit, err)
			}
			if !almostEqual(got, tc.want, 1e-9) {
				t.Errorf("StandardUnitPrice(%v, %v, %q) = %v; want %v",
					tc.price, tc.quantity, tc.unit, got, tc.want)
			}
			if got <= 0 {
				t.Errorf("StandardUnitPrice(%v, %v, %q) = %v; want > 0",
					tc.price, tc.quantity, tc.unit, got)
			}
		})
	}
}

func TestStandardUnitPrice_Invalid(t *testing.T) {
	tests := []struct {
		name     string
		price    float64
		quantity float64
		unit     string
		wantErr  error
	}{
		{"zero price", 0, 1, "g", domain.ErrInvalidPrice},
		{"negative price", -3, 1, "g", domain.ErrInvalidPrice},
		{"zero quantity", 5, 0, "g", domain.ErrInvalidQuantity},
		{"negative quantity", 5, -2, "g", domain.ErrInvalidQuantity},
		{"unknown unit", 5, 1, "bundle", domain.ErrInvalidUnit},
		{"infinite price", math.Inf(1), 1, "g", domain.ErrInvalidPrice},
		{"infinite quantity", 5, math.Inf(1), "g", domain.ErrInvalidQuantity},
		{"NaN price", math.NaN(), 1, "g", domain.ErrInvalidPrice},
		{"quotient overflows", math.MaxFloat64, 1e-300, "g", domain.ErrInvalidPrice},
		{"quotient underflows to zero", 5e-324, 1e300, "g", domain.ErrInvalidPrice},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := domain.StandardUnitPrice(tc.price, tc.quantity, tc.unit)
			if !errors.Is(err, tc.wantErr) {
				t.Errorf("StandardUnitPrice(%v, %v, %q) error = %v; want %v",
					tc.price, tc.quantity, tc.unit, err, tc.wantErr)
			}
		})
	}
}

func TestConvertUnitPrice(t *testing.T) {
	// $0.008817.../g back to dollars per lb.
	perGram := 12 / (3 * 453.6)
	got, err := domain.ConvertUnitPrice(perGram, "lb", "lb")
	if err != nil {
		t.Fatalf("ConvertUnitPrice returned error: %v", err)
	}
	if !almostEqual(got, 4.0, 1e-9) {
		t.Errorf("ConvertUnitPrice(per-gram, lb, lb) = %v; want 4", got)
	}

	perGramKg, _ := domain.StandardUnitPrice(3, 1, "kg")
	got, err = domain.ConvertUnitPrice(perGramKg, "kg", "g")
	if err != nil {
		t.Fatalf("ConvertUnitPrice returned error: %v", err)
	}
	if !almostEqual(got, 0.003, 1e-9) {
		t.Errorf("ConvertUnitPrice(per-gram, kg, g) = %v; want 0.003", got)
	}
}

func TestConvertUnitPrice_CrossDimension(t *testing.T) {
	if _, err := domain.ConvertUnitPrice(1, "kg", "ml"); !errors.Is(err, domain.ErrInvalidUnit) {
		t.Errorf("ConvertUnitPrice(kg -> ml) error = %v; want ErrInvalidUnit", err)
	}
	if _, err := domain.ConvertUnitPrice(1, "EA", "g"); !errors.Is(err, domain.ErrInvalidUnit) {
		t.Errorf("ConvertUnitPrice(EA -> g) error = %v; want ErrInvalidUnit", err)
	}
}
