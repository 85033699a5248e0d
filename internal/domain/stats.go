package domain

// PriceObservation is one normalized purchase value, with the store it was
// seen at, feeding a product's running aggregates.
type PriceObservation struct {
	Value float64
	Store StoreRef
}

// ApplyObservation returns p with its running aggregates updated for one new
// observation: count, total, average, minimum and maximum, plus the store
// attributed to the minimum. It is pure; the caller persists the result.
//
// The update is O(1) and never rescans history, so it models only the
// addition of a new observation; edits and deletes of past records must not
// be funneled through it. A value equal to the current minimum does not move
// the store attribution (first writer wins on ties).
func ApplyObservation(p Product, obs PriceObservation) Product {
	first := p.TotalPriceRecords == 0

	p.TotalPriceRecords++
	p.TotalPrice += obs.Value
	p.AveragePrice = p.TotalPrice / float64(p.TotalPriceRecords)

	if first || obs.Value < p.LowestPrice {
		p.LowestPrice = obs.Value
		p.LowestPriceStore = obs.Store
	}
	if first || obs.Value > p.HighestPrice {
		p.HighestPrice = obs.Value
	}
	return p
}
