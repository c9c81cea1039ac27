package pricing

import "venue-pricing/internal/domain/money"

// LineItem is one priced entry of an estimate. Immutable once produced.
// The id is an opaque generator-assigned label; identical pricing runs
// produce identical costs and descriptions but may differ in ids.
type LineItem struct {
	ID             string
	Description    string
	SubDescription string
	Cost           money.Money
	Required       bool
	Editable       bool
}

func sumItems(items []LineItem) money.Money {
	var total money.Money
	for _, it := range items {
		total = total.Add(it.Cost)
	}
	return total
}
