package domain_test

import (
	"errors"
	"testing"

	"github.com/Zhouyuxin4/Scalor/internal/domain"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		symbol    string
		dimension domain.Dimension
		factor    float64
	}{
		{"g", domain.DimensionWeight, 1},
		{"kg", domain.DimensionWeight, 1000},
		{"mg", domain.DimensionWeight, 0.001},
		{"lb", domain.DimensionWeight, 453.6},
		{"oz", domain.DimensionWeight, 28.35},
		{"ml", domain.DimensionVolume, 1},
		{"l", domain.DimensionVolume, 1000},
		{"fl oz", domain.DimensionVolume, 29.57},
		{"pt", domain.DimensionVolume, 473},
		{"gal", domain.DimensionVolume, 3785},
		{"EA", domain.DimensionCount, 1},
		{"PK", domain.DimensionCount, 1},
	}
	for _, tc := range tests {
		t.Run(tc.symbol, func(t *testing.T) {
			info, err := domain.Classify(tc.symbol)
			if err != nil {
				t.Fatalf("Classify(%q) returned error: %v", tc.symbol, err)
			}
			if info.Dimension != tc.dimension || info.Factor != tc.factor {
				t.Errorf("Classify(%q) = (%v, %v); want (%v, %v)",
					tc.symbol, info.Dimension, info.Factor, tc.dimension, tc.factor)
			}
		})
	}
}

func TestClassify_UnknownSymbols(t *testing.T) {
	for _, symbol := range []string{"", "stone", "G", "Kg", "floz", "each"} {
		if _, err := domain.Classify(symbol); !errors.Is(err, domain.ErrInvalidUnit) {
			t.Errorf("Classify(%q) = %v; want ErrInvalidUnit", symbol, err)
		}
	}
}

func TestUnits_CoversRegistry(t *testing.T) {
	units := domain.Units()
	if len(units) != 12 {
		t.Fatalf("Units() returned %d symbols; want 12", len(units))
	}
	for _, u := range units {
		if _, err := domain.Classify(u); err != nil {
			t.Errorf("Units() symbol %q not classifiable: %v", u, err)
		}
	}
}
