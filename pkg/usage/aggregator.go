// Package usage flattens a season's crop plan into per-product planned
// requirements. Leaf engine: everything else (readiness, both variance
// engines) consumes its output.
package usage

import (
	"sort"

	"farmops/entities"
	"farmops/pkg/units"
)

// Usage is one (crop, timing) contribution to a requirement, kept so cost
// can later be allocated back to the pass that created the demand.
type Usage struct {
	CropID     uint    `json:"crop_id"`
	CropName   string  `json:"crop_name"`
	TimingID   uint    `json:"timing_id"`
	TimingName string  `json:"timing_name"`
	Quantity   float64 `json:"quantity_needed"`
}

// Requirement is the total planned quantity of one product in one unit.
// Mismatched units for the same product stay on separate lines; no cross-unit
// aggregation happens here.
type Requirement struct {
	ProductID   uint    `json:"product_id"`
	ProductName string  `json:"product_name"`
	Unit        string  `json:"unit"`
	TotalNeeded float64 `json:"total_needed"`
	Usages      []Usage `json:"usages"`
}

// Aggregate walks every crop, timing, planned application and targeted tier:
//
//	quantity = rate × crop.TotalAcres × tier.Percent/100
//
// summed per (product, unit). A nil season yields an empty result. Negative
// or non-finite rates, acres and percentages are coerced to 0 first.
func Aggregate(season *entities.Season, products []entities.Product) []Requirement {
	if season == nil {
		return []Requirement{}
	}

	names := make(map[uint]string, len(products))
	for _, p := range products {
		names[p.ProductID] = p.Name
	}

	type key struct {
		productID uint
		unit      string
	}
	totals := map[key]*Requirement{}
	var order []key

	for _, crop := range season.Crops {
		acres := units.Clean(crop.TotalAcres)
		tierPct := make(map[uint]float64, len(crop.Tiers))
		for _, t := range crop.Tiers {
			tierPct[t.TierID] = units.Clean(t.Percent)
		}
		for _, timing := range crop.Timings {
			for _, app := range timing.Products {
				rate := units.Clean(app.Rate)
				if rate == 0 {
					continue
				}
				var qty float64
				for _, tid := range app.TierIDs {
					qty += rate * acres * tierPct[tid] / 100
				}
				if qty == 0 {
					continue
				}
				k := key{app.ProductID, units.Normalize(units.Base(app.RateUnit))}
				req, ok := totals[k]
				if !ok {
					req = &Requirement{
						ProductID:   app.ProductID,
						ProductName: names[app.ProductID],
						Unit:        k.unit,
					}
					totals[k] = req
					order = append(order, k)
				}
				req.TotalNeeded += qty
				req.Usages = append(req.Usages, Usage{
					CropID:     crop.CropID,
					CropName:   crop.Name,
					TimingID:   timing.TimingID,
					TimingName: timing.Name,
					Quantity:   qty,
				})
			}
		}
	}

	out := make([]Requirement, 0, len(order))
	for _, k := range order {
		out = append(out, *totals[k])
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].ProductID != out[j].ProductID {
			return out[i].ProductID < out[j].ProductID
		}
		return out[i].Unit < out[j].Unit
	})
	return out
}
