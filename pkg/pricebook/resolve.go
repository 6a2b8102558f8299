// Package pricebook resolves the "planned unit price" for a product in a
// season year from the ranked price book.
package pricebook

import "farmops/entities"

// sourceRank orders price-book sources for planned-price resolution. Higher
// wins. Sources not listed rank below everything listed; "invoice" entries
// are excluded outright: realized cost must never leak into the planned
// baseline.
var sourceRank = map[string]int{
	"manual_override": 5,
	"manual":          4,
	"awarded":         3,
	"estimated":       2,
}

const SourceInvoice = "invoice"

type Resolved struct {
	Price    float64 `json:"price"`
	PriceUOM string  `json:"price_uom"`
	Source   string  `json:"source"`
	EntryID  uint    `json:"entry_id"`
}

// ResolvePlanned picks the best-ranked non-invoice entry for the product and
// season year. Returns nil when nothing usable exists, a normal steady-state
// of an in-progress plan, not an error.
func ResolvePlanned(entries []entities.PriceBookEntry, productID uint, seasonYear int) *Resolved {
	var best *entities.PriceBookEntry
	bestRank := -1
	for i := range entries {
		e := &entries[i]
		if e.ProductID != productID || e.SeasonYear != seasonYear || e.Source == SourceInvoice {
			continue
		}
		rank := sourceRank[e.Source]
		if best == nil || rank > bestRank {
			best = e
			bestRank = rank
		}
	}
	if best == nil {
		return nil
	}
	return &Resolved{Price: best.Price, PriceUOM: best.PriceUOM, Source: best.Source, EntryID: best.EntryID}
}
