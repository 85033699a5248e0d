package domain

import "math"

// StandardUnitPrice converts a purchase into a price per canonical unit of
// the unit's dimension: price / (quantity * factor). For count units the
// factor is 1, so the result is price per item/pack; no attempt is made to
// infer per-unit-inside-pack pricing.
//
// The result is never rounded or clamped; presentation precision is the
// caller's concern. Inputs that overflowed or underflowed to Inf or 0 on
// conversion to float64 are rejected, as is a quotient outside the finite
// positive range, so callers always receive a finite positive price.
func StandardUnitPrice(price, quantity float64, unit string) (float64, error) {
	if price <= 0 || math.IsInf(price, 1) || math.IsNaN(price) {
		return 0, ErrInvalidPrice
	}
	if quantity <= 0 || math.IsInf(quantity, 1) || math.IsNaN(quantity) {
		return 0, ErrInvalidQuantity
	}
	info, err := Classify(unit)
	if err != nil {
		return 0, err
	}
	std := price / (quantity * info.Factor)
	if std == 0 || math.IsInf(std, 1) {
		return 0, ErrInvalidPrice
	}
	return std, nil
}

// ConvertUnitPrice re-expresses a price per canonical unit as a price per
// displayUnit. Both units must belong to the same dimension; otherwise the
// values are not comparable and ErrInvalidUnit is returned.
func ConvertUnitPrice(perCanonical float64, recordUnit, displayUnit string) (float64, error) {
	from, err := Classify(recordUnit)
	if err != nil {
		return 0, err
	}
	to, err := Classify(displayUnit)
	if err != nil {
		return 0, err
	}
	if from.Dimension != to.Dimension {
		return 0, ErrInvalidUnit
	}
	return perCanonical * to.Factor, nil
}
