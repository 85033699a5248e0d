package app

import (
	"strings"

	"github.com/spf13/cast"

	"github.com/Zhouyuxin4/Scalor/internal/domain"
)

// ReceiptCandidate carries the raw field values extracted from a receipt
// photo. The extractor is external and untrusted; values may be missing,
// mistyped or nonsense, so everything is coerced and validated here exactly
// like manually typed input.
type ReceiptCandidate struct {
	ProductName any `json:"productName"`
	PriceValue  any `json:"priceValue"`
	UnitValue   any `json:"unitValue"`
	UnitType    any `json:"unitType"`
}

// Prefill is the validated form suggestion produced from a ReceiptCandidate.
// Only fields that survived validation are set; Issues lists what was
// rejected and why.
type Prefill struct {
	ProductName string   `json:"productName,omitempty"`
	Price       float64  `json:"price,omitempty"`
	Quantity    float64  `json:"quantity,omitempty"`
	Unit        string   `json:"unit,omitempty"`
	Issues      []string `json:"issues,omitempty"`
}

// PrefillService turns untrusted receipt-scan candidates into validated
// form suggestions. It never persists anything.
type PrefillService struct{}

// NewPrefillService creates a PrefillService.
func NewPrefillService() *PrefillService {
	return &PrefillService{}
}

// Suggest validates each candidate field independently, so one garbage
// field does not discard the rest of the scan.
func (s *PrefillService) Suggest(c ReceiptCandidate) Prefill {
	var out Prefill

	if c.ProductName != nil {
		name, err := cast.ToStringE(c.ProductName)
		name = strings.TrimSpace(name)
		if err != nil || name == "" {
			out.Issues = append(out.Issues, "productName: not a usable name")
		} else {
			out.ProductName = name
		}
	}

	if c.PriceValue != nil {
		price, err := cast.ToFloat64E(c.PriceValue)
		if err != nil || price <= 0 {
			out.Issues = append(out.Issues, "priceValue: "+domain.ErrInvalidPrice.Error())
		} else {
			out.Price = price
		}
	}

	if c.UnitValue != nil {
		qty, err := cast.ToFloat64E(c.UnitValue)
		if err != nil || qty <= 0 {
			out.Issues = append(out.Issues, "unitValue: "+domain.ErrInvalidQuantity.Error())
		} else {
			out.Quantity = qty
		}
	}

	if c.UnitType != nil {
		raw, err := cast.ToStringE(c.UnitType)
		if err != nil {
			out.Issues = append(out.Issues, "unitType: "+domain.ErrInvalidUnit.Error())
		} else if unit, ok := matchUnit(raw); ok {
			out.Unit = unit
		} else {
			out.Issues = append(out.Issues, "unitType: "+domain.ErrInvalidUnit.Error())
		}
	}

	return out
}

// matchUnit maps a scanned symbol onto a registry symbol, tolerating case
// differences the way the receipt extractor produces them ("LB", "Ea").
func matchUnit(raw string) (string, bool) {
	raw = strings.TrimSpace(raw)
	if _, err := domain.Classify(raw); err == nil {
		return raw, true
	}
	for _, u := range domain.Units() {
		if strings.EqualFold(u, raw) {
			return u, true
		}
	}
	return "", false
}
