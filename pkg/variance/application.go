// Package variance compares the crop plan against what actually happened in
// the field: recorded applications (rate/acreage/quantity variance) and
// invoiced landed cost allocated back to passes.
package variance

import (
	"farmops/entities"
	"farmops/pkg/units"
)

const (
	StatusNotApplied  = "not-applied"
	StatusPartial     = "partial"
	StatusComplete    = "complete"
	StatusOverApplied = "over-applied"
)

// completeCoverage is the acreage-coverage threshold at which a planned pass
// counts as complete.
const completeCoverage = 0.95

// AppRow is the variance for one planned (crop, timing, product) triple.
type AppRow struct {
	CropID      uint   `json:"crop_id"`
	CropName    string `json:"crop_name"`
	TimingID    uint   `json:"timing_id"`
	TimingName  string `json:"timing_name"`
	ProductID   uint   `json:"product_id"`
	ProductName string `json:"product_name"`

	PlannedRate  float64 `json:"planned_rate"`
	RateUnit     string  `json:"rate_unit"`
	PlannedAcres float64 `json:"planned_acres"`
	PlannedTotal float64 `json:"planned_total"`

	ApplicationCount int      `json:"application_count"`
	ActualRate       *float64 `json:"actual_rate"`
	ActualAcres      float64  `json:"actual_acres"`
	ActualTotal      float64  `json:"actual_total"`

	RateVariance     *float64 `json:"rate_variance"`
	RateVariancePct  *float64 `json:"rate_variance_pct"`
	TotalVariance    float64  `json:"total_variance"`
	TotalVariancePct *float64 `json:"total_variance_pct"`

	Status string `json:"status"`
}

type AppTotals struct {
	Rows         int     `json:"rows"`
	NotApplied   int     `json:"not_applied"`
	Partial      int     `json:"partial"`
	Complete     int     `json:"complete"`
	OverApplied  int     `json:"over_applied"`
	AcresPlanned float64 `json:"acres_planned"`
	AcresTreated float64 `json:"acres_treated"`
}

type AppResult struct {
	Rows   []AppRow  `json:"rows"`
	Totals AppTotals `json:"totals"`
}

// Application computes planned-vs-recorded variance for every planned
// (crop, timing, product) triple in the season.
//
// Actual rate is the acreage-weighted average of the matching records'
// rates; when none of the records carries acreage the simple mean is used
// instead. Status precedence, applied in order:
//
//	not-applied   no matching records
//	over-applied  coverage >= 95% of planned acres AND actual total
//	              strictly exceeds planned total
//	complete      coverage >= 95%
//	partial       anything else with at least one record
func Application(season *entities.Season, products []entities.Product, records []entities.ApplicationRecord) AppResult {
	res := AppResult{Rows: []AppRow{}}
	if season == nil {
		return res
	}

	names := make(map[uint]string, len(products))
	for _, p := range products {
		names[p.ProductID] = p.Name
	}

	for _, crop := range season.Crops {
		cropAcres := units.Clean(crop.TotalAcres)
		tierPct := make(map[uint]float64, len(crop.Tiers))
		for _, t := range crop.Tiers {
			tierPct[t.TierID] = units.Clean(t.Percent)
		}
		for _, timing := range crop.Timings {
			for _, app := range timing.Products {
				row := AppRow{
					CropID:      crop.CropID,
					CropName:    crop.Name,
					TimingID:    timing.TimingID,
					TimingName:  timing.Name,
					ProductID:   app.ProductID,
					ProductName: names[app.ProductID],
					PlannedRate: units.Clean(app.Rate),
					RateUnit:    units.Normalize(app.RateUnit),
				}
				for _, tid := range app.TierIDs {
					row.PlannedAcres += cropAcres * tierPct[tid] / 100
				}
				row.PlannedTotal = row.PlannedRate * row.PlannedAcres

				fill(&row, crop.CropID, timing.TimingID, app.ProductID, records)
				classify(&row)

				res.Rows = append(res.Rows, row)
				res.Totals.AcresPlanned += row.PlannedAcres
				res.Totals.AcresTreated += row.ActualAcres
			}
		}
	}

	res.Totals.Rows = len(res.Rows)
	for _, r := range res.Rows {
		switch r.Status {
		case StatusNotApplied:
			res.Totals.NotApplied++
		case StatusPartial:
			res.Totals.Partial++
		case StatusComplete:
			res.Totals.Complete++
		case StatusOverApplied:
			res.Totals.OverApplied++
		}
	}
	return res
}

func fill(row *AppRow, cropID, timingID, productID uint, records []entities.ApplicationRecord) {
	var rateAcres, rateSum float64
	var weightedAcres float64

	for _, rec := range records {
		if rec.CropID != cropID || rec.TimingID != timingID {
			continue
		}
		for _, ap := range rec.Products {
			if ap.ProductID != productID {
				continue
			}
			acres := units.Clean(rec.AcresTreated)
			rate := units.Clean(ap.ActualRate)

			row.ApplicationCount++
			row.ActualAcres += acres
			row.ActualTotal += units.Clean(ap.TotalApplied)
			rateSum += rate
			rateAcres += rate * acres
			weightedAcres += acres
		}
	}

	row.TotalVariance = row.ActualTotal - row.PlannedTotal
	if row.PlannedTotal != 0 {
		pct := row.TotalVariance / row.PlannedTotal * 100
		row.TotalVariancePct = &pct
	}

	if row.ApplicationCount == 0 {
		return
	}
	var avg float64
	if weightedAcres > 0 {
		avg = rateAcres / weightedAcres
	} else {
		avg = rateSum / float64(row.ApplicationCount)
	}
	row.ActualRate = &avg

	rv := avg - row.PlannedRate
	row.RateVariance = &rv
	if row.PlannedRate != 0 {
		pct := rv / row.PlannedRate * 100
		row.RateVariancePct = &pct
	}
}

func classify(row *AppRow) {
	switch {
	case row.ApplicationCount == 0:
		row.Status = StatusNotApplied
	case row.ActualAcres >= completeCoverage*row.PlannedAcres && row.ActualTotal > row.PlannedTotal:
		row.Status = StatusOverApplied
	case row.ActualAcres >= completeCoverage*row.PlannedAcres:
		row.Status = StatusComplete
	default:
		row.Status = StatusPartial
	}
}
