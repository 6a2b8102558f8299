package variance

import (
	"math"
	"sort"

	"farmops/entities"
	"farmops/pkg/pricebook"
	"farmops/pkg/units"
	"farmops/pkg/usage"
)

// PassRow is planned vs invoiced cost for one product on one pass, allocated
// in proportion to the pass's share of the product's total planned quantity.
type PassRow struct {
	CropID      uint   `json:"crop_id"`
	CropName    string `json:"crop_name"`
	TimingID    uint   `json:"timing_id"`
	TimingName  string `json:"timing_name"`
	ProductID   uint   `json:"product_id"`
	ProductName string `json:"product_name"`
	Unit        string `json:"unit"`

	Quantity float64 `json:"quantity"`
	Share    float64 `json:"share"`

	PlannedUnitPrice    *float64 `json:"planned_unit_price"`
	PriceSource         string   `json:"price_source,omitempty"`
	PlannedCost         *float64 `json:"planned_cost"`
	ActualCostAllocated float64  `json:"actual_cost_allocated"`

	Variance    *float64 `json:"variance"`
	VariancePct *float64 `json:"variance_pct"`

	MissingPlannedPrice bool `json:"missing_planned_price,omitempty"`
	NoInvoices          bool `json:"no_invoices,omitempty"`
}

type PassResult struct {
	PlannedTotal         float64   `json:"planned_total"`
	ActualTotalAllocated float64   `json:"actual_total_allocated"`
	VarianceTotal        float64   `json:"variance_total"`
	Rows                 []PassRow `json:"rows"`
}

// Pass resolves each product's planned unit price from the ranked price book
// (invoice-sourced entries excluded), sums invoiced landed cost per product
// for the season year, and allocates both to passes by planned-quantity
// share. Unconvertible price units make planned cost nil (flagged) rather
// than guessed; rows with nil planned cost keep nil variance. Rows come back
// sorted by descending absolute variance, the largest discrepancies first.
func Pass(season *entities.Season, products []entities.Product, invoices []entities.Invoice, priceBook []entities.PriceBookEntry) PassResult {
	res := PassResult{Rows: []PassRow{}}
	if season == nil {
		return res
	}

	reqs := usage.Aggregate(season, products)
	invoiced := landedByProduct(invoices, season.Year)

	for _, req := range reqs {
		var unitPrice *float64
		var priceSource string
		if r := pricebook.ResolvePlanned(priceBook, req.ProductID, season.Year); r != nil {
			if p, ok := units.PerUnit(units.Clean(r.Price), r.PriceUOM, req.Unit); ok {
				unitPrice = &p
				priceSource = r.Source
			}
		}

		actual := invoiced[req.ProductID]
		total := req.TotalNeeded

		for _, u := range groupByPass(req.Usages) {
			row := PassRow{
				CropID:      u.CropID,
				CropName:    u.CropName,
				TimingID:    u.TimingID,
				TimingName:  u.TimingName,
				ProductID:   req.ProductID,
				ProductName: req.ProductName,
				Unit:        req.Unit,
				Quantity:    u.Quantity,
				PriceSource: priceSource,
			}
			if total > 0 {
				row.Share = u.Quantity / total
			}
			if unitPrice != nil {
				pc := *unitPrice * u.Quantity
				row.PlannedCost = &pc
			} else {
				row.MissingPlannedPrice = true
			}
			if actual == 0 {
				row.NoInvoices = true
			}
			row.ActualCostAllocated = actual * row.Share

			if row.PlannedCost != nil {
				v := row.ActualCostAllocated - *row.PlannedCost
				row.Variance = &v
				if *row.PlannedCost != 0 {
					pct := v / *row.PlannedCost * 100
					row.VariancePct = &pct
				}
				res.PlannedTotal += *row.PlannedCost
				res.VarianceTotal += v
			}
			res.ActualTotalAllocated += row.ActualCostAllocated
			res.Rows = append(res.Rows, row)
		}
	}

	sort.SliceStable(res.Rows, func(i, j int) bool {
		vi, vj := res.Rows[i].Variance, res.Rows[j].Variance
		switch {
		case vi == nil && vj == nil:
			return false
		case vi == nil:
			return false
		case vj == nil:
			return true
		default:
			return math.Abs(*vi) > math.Abs(*vj)
		}
	})
	return res
}

// landedByProduct sums realized cost per product for the season year:
// landedTotal when present, otherwise landedUnitCost × quantity.
func landedByProduct(invoices []entities.Invoice, seasonYear int) map[uint]float64 {
	out := map[uint]float64{}
	for _, inv := range invoices {
		if inv.SeasonYear != seasonYear {
			continue
		}
		for _, line := range inv.Lines {
			switch {
			case line.LandedTotal != nil:
				out[line.ProductID] += units.Clean(*line.LandedTotal)
			case line.LandedUnitCost != nil:
				out[line.ProductID] += units.Clean(*line.LandedUnitCost) * units.Clean(line.Quantity)
			}
		}
	}
	return out
}

// groupByPass folds multiple contributions for the same (crop, timing) into
// one allocation target, preserving first-seen order.
func groupByPass(usages []usage.Usage) []usage.Usage {
	type key struct{ cropID, timingID uint }
	idx := map[key]int{}
	var out []usage.Usage
	for _, u := range usages {
		k := key{u.CropID, u.TimingID}
		if i, ok := idx[k]; ok {
			out[i].Quantity += u.Quantity
			continue
		}
		idx[k] = len(out)
		out = append(out, u)
	}
	return out
}
