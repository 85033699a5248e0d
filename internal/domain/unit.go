// Package domain contains the core business entities and interfaces.
package domain

// Dimension is the measurement category a unit belongs to.
type Dimension string

const (
	DimensionWeight Dimension = "weight"
	DimensionVolume Dimension = "volume"
	DimensionCount  Dimension = "count"
)

// UnitInfo describes a registered unit symbol: its dimension and the
// multiplicative factor converting one unit into the canonical base unit of
// that dimension (grams for weight, milliliters for volume, 1 for count).
type UnitInfo struct {
	Symbol    string    `json:"symbol"`
	Dimension Dimension `json:"dimension"`
	Factor    float64   `json:"factor"`
}

// unitRegistry is the closed set of supported units. Cross-system factors
// (lb, oz, fl oz, pt, gal) are approximations; correct them here, not at
// call sites.
var unitRegistry = map[string]UnitInfo{
	"g":  {Symbol: "g", Dimension: DimensionWeight, Factor: 1},
	"kg": {Symbol: "kg", Dimension: DimensionWeight, Factor: 1000},
	"mg": {Symbol: "mg", Dimension: DimensionWeight, Factor: 0.001},
	"lb": {Symbol: "lb", Dimension: DimensionWeight, Factor: 453.6},
	"oz": {Symbol: "oz", Dimension: DimensionWeight, Factor: 28.35},

	"ml":    {Symbol: "ml", Dimension: DimensionVolume, Factor: 1},
	"l":     {Symbol: "l", Dimension: DimensionVolume, Factor: 1000},
	"fl oz": {Symbol: "fl oz", Dimension: DimensionVolume, Factor: 29.57},
	"pt":    {Symbol: "pt", Dimension: DimensionVolume, Factor: 473},
	"gal":   {Symbol: "gal", Dimension: DimensionVolume, Factor: 3785},

	"EA": {Symbol: "EA", Dimension: DimensionCount, Factor: 1},
	"PK": {Symbol: "PK", Dimension: DimensionCount, Factor: 1},
}

// allUnits preserves the display order the unit picker uses.
var allUnits = []string{
	"g", "kg", "mg", "lb", "oz",
	"ml", "l", "fl oz", "pt", "gal",
	"EA", "PK",
}

// Classify resolves a unit symbol to its dimension and canonical conversion
// factor. It returns ErrInvalidUnit for any symbol outside the registry.
func Classify(symbol string) (UnitInfo, error) {
	info, ok := unitRegistry[symbol]
	if !ok {
		return UnitInfo{}, ErrInvalidUnit
	}
	return info, nil
}

// Units returns the registered unit symbols in display order.
func Units() []string {
	out := make([]string, len(allUnits))
	copy(out, allUnits)
	return out
}
