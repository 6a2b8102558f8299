// Package restrictions validates a candidate application against each
// product's agronomic and regulatory limits. Purely advisory: it returns a
// list of violations and never blocks or mutates anything; the caller decides
// what to do (including overriding, which it records elsewhere).
package restrictions

import (
	"fmt"
	"strings"
	"time"

	"farmops/entities"
	"farmops/pkg/units"
)

type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
)

type Kind string

const (
	KindRotation      Kind = "rotation"
	KindPHI           Kind = "phi"
	KindREI           Kind = "rei"
	KindMaxRateSeason Kind = "max_rate_season"
	KindMaxRateApp    Kind = "max_rate_application"
	KindMaxAppsSeason Kind = "max_apps_season"
)

type Violation struct {
	ProductID   uint       `json:"product_id"`
	ProductName string     `json:"product_name"`
	Kind        Kind       `json:"kind"`
	Severity    Severity   `json:"severity"`
	Message     string     `json:"message"`
	CanOverride bool       `json:"can_override"`
	SafeEntry   *time.Time `json:"safe_entry,omitempty"` // REI only
}

// Context is the snapshot the engine reads. PriorSeasons (with their crops)
// and Assignments extend the rotation lookback beyond the current year.
type Context struct {
	Season       *entities.Season
	PriorSeasons []entities.Season
	Fields       []entities.Field
	Assignments  []entities.FieldAssignment
	Records      []entities.ApplicationRecord
	Products     []entities.Product
}

type CandidateProduct struct {
	ProductID uint    `json:"product_id"`
	Rate      float64 `json:"rate"`
	RateUnit  string  `json:"rate_unit"`
	Acres     float64 `json:"acres"`
}

// Candidate is the application being validated; one field/crop/timing, one or
// more products. HarvestDate is optional; without it the PHI check is
// skipped entirely.
type Candidate struct {
	FieldID     uint               `json:"field_id"`
	CropID      uint               `json:"crop_id"`
	TimingID    uint               `json:"timing_id"`
	DateApplied time.Time          `json:"date_applied"`
	Products    []CandidateProduct `json:"products"`
	HarvestDate *time.Time         `json:"harvest_date,omitempty"`
}

// Check runs the six restriction checks for every candidate product that
// carries restriction data. Products without restrictions contribute nothing;
// missing fields inside a restriction mean "no constraint of that kind".
func Check(ctx Context, cand Candidate) []Violation {
	out := []Violation{}

	byID := make(map[uint]*entities.Product, len(ctx.Products))
	for i := range ctx.Products {
		byID[ctx.Products[i].ProductID] = &ctx.Products[i]
	}
	cropName := cropNameFor(ctx, cand.CropID)
	history := cropHistory(ctx, cand.FieldID)

	for _, cp := range cand.Products {
		prod := byID[cp.ProductID]
		if prod == nil || prod.Chemical.Restrictions == nil {
			continue
		}
		r := prod.Chemical.Restrictions

		out = append(out, checkRotation(prod, r, history, cand.DateApplied)...)
		if v := checkPHI(prod, r, cropName, cand); v != nil {
			out = append(out, *v)
		}
		if v := checkREI(prod, r, cand.DateApplied); v != nil {
			out = append(out, *v)
		}
		if v := checkSeasonRate(ctx, prod, r, cand, cp); v != nil {
			out = append(out, *v)
		}
		if v := checkAppRate(prod, r, cp); v != nil {
			out = append(out, *v)
		}
		if v := checkAppCount(ctx, prod, r, cand, cp); v != nil {
			out = append(out, *v)
		}
	}
	return out
}

// historyEntry is one "crop X was on this field on date D" fact.
type historyEntry struct {
	cropName string
	date     time.Time
}

// cropHistory assembles the field's crop timeline: the current-season
// assignment, its recorded previous crop (dated a year back, the best
// available estimate), and any prior seasons' assignments.
func cropHistory(ctx Context, fieldID uint) []historyEntry {
	var out []historyEntry

	seasons := make([]entities.Season, 0, len(ctx.PriorSeasons)+1)
	if ctx.Season != nil {
		seasons = append(seasons, *ctx.Season)
	}
	seasons = append(seasons, ctx.PriorSeasons...)

	cropNames := map[uint]string{}
	seasonIDs := map[uint]bool{}
	for _, s := range seasons {
		seasonIDs[s.SeasonID] = true
		for _, c := range s.Crops {
			cropNames[c.CropID] = c.Name
		}
	}

	for _, a := range ctx.Assignments {
		if a.FieldID != fieldID || !seasonIDs[a.SeasonID] {
			continue
		}
		if name := cropNames[a.CropID]; name != "" {
			out = append(out, historyEntry{cropName: name, date: a.AssignedOn})
		}
		if a.PreviousCrop != "" {
			out = append(out, historyEntry{cropName: a.PreviousCrop, date: a.AssignedOn.AddDate(-1, 0, 0)})
		}
	}
	return out
}

func checkRotation(prod *entities.Product, r *entities.Restrictions, history []historyEntry, applied time.Time) []Violation {
	var out []Violation
	for _, rr := range r.RotationRestrictions {
		window := 0
		switch {
		case rr.IntervalDays != nil:
			window = *rr.IntervalDays
		case rr.IntervalMonths != nil:
			window = *rr.IntervalMonths * 30
		}
		if window <= 0 {
			continue
		}
		for _, h := range history {
			if !strings.EqualFold(h.cropName, rr.CropName) || h.date.After(applied) {
				continue
			}
			daysSince := int(applied.Sub(h.date).Hours() / 24)
			if daysSince < window {
				out = append(out, Violation{
					ProductID:   prod.ProductID,
					ProductName: prod.Name,
					Kind:        KindRotation,
					Severity:    SeverityWarning,
					CanOverride: true,
					Message: fmt.Sprintf("%s: %s grown %d days ago, rotation restriction is %d days",
						prod.Name, h.cropName, daysSince, window),
				})
				break
			}
		}
	}
	return out
}

func checkPHI(prod *entities.Product, r *entities.Restrictions, cropName string, cand Candidate) *Violation {
	if cand.HarvestDate == nil {
		return nil
	}
	days := phiFor(r, cropName)
	if days == nil {
		return nil
	}
	gap := cand.HarvestDate.Sub(cand.DateApplied).Hours() / 24
	if gap >= float64(*days) {
		return nil
	}
	return &Violation{
		ProductID:   prod.ProductID,
		ProductName: prod.Name,
		Kind:        KindPHI,
		Severity:    SeverityError,
		CanOverride: true,
		Message: fmt.Sprintf("%s: %.0f days to harvest, pre-harvest interval is %d days",
			prod.Name, gap, *days),
	}
}

// phiFor prefers a crop-specific PHI over the product-wide default.
func phiFor(r *entities.Restrictions, cropName string) *int {
	for _, p := range r.PHIByCrop {
		if strings.EqualFold(p.CropName, cropName) {
			d := p.Days
			return &d
		}
	}
	return r.PHIDays
}

// checkREI is informational only. REI is a worker-safety interval, not a
// planning choice, so it can never be overridden away.
func checkREI(prod *entities.Product, r *entities.Restrictions, applied time.Time) *Violation {
	if r.REIHours == nil {
		return nil
	}
	safe := applied.Add(time.Duration(*r.REIHours * float64(time.Hour)))
	return &Violation{
		ProductID:   prod.ProductID,
		ProductName: prod.Name,
		Kind:        KindREI,
		Severity:    SeverityWarning,
		CanOverride: false,
		SafeEntry:   &safe,
		Message: fmt.Sprintf("%s: restricted entry for %.0f hours, safe to re-enter %s",
			prod.Name, *r.REIHours, safe.Format(time.RFC3339)),
	}
}

// checkSeasonRate sums already-recorded rates for this product on the same
// field+crop+season, adds the candidate rate, and compares against the
// seasonal cap. A rate-unit mismatch skips the check silently (documented
// limitation: we do not convert rate units beyond the coarse match).
func checkSeasonRate(ctx Context, prod *entities.Product, r *entities.Restrictions, cand Candidate, cp CandidateProduct) *Violation {
	limit := r.MaxRatePerSeason
	if limit == nil || !units.SameRate(cp.RateUnit, limit.Unit) {
		return nil
	}
	seasonID := uint(0)
	if ctx.Season != nil {
		seasonID = ctx.Season.SeasonID
	}
	total := units.Clean(cp.Rate)
	for _, rec := range ctx.Records {
		if rec.FieldID != cand.FieldID || rec.CropID != cand.CropID || rec.SeasonID != seasonID {
			continue
		}
		for _, ap := range rec.Products {
			if ap.ProductID == cp.ProductID && units.SameRate(ap.RateUnit, limit.Unit) {
				total += units.Clean(ap.ActualRate)
			}
		}
	}
	if total <= limit.Rate {
		return nil
	}
	return &Violation{
		ProductID:   prod.ProductID,
		ProductName: prod.Name,
		Kind:        KindMaxRateSeason,
		Severity:    SeverityError,
		CanOverride: true,
		Message: fmt.Sprintf("%s: season total %.2f %s exceeds max %.2f %s",
			prod.Name, total, limit.Unit, limit.Rate, limit.Unit),
	}
}

func checkAppRate(prod *entities.Product, r *entities.Restrictions, cp CandidateProduct) *Violation {
	limit := r.MaxRatePerApplication
	if limit == nil || !units.SameRate(cp.RateUnit, limit.Unit) {
		return nil
	}
	if units.Clean(cp.Rate) <= limit.Rate {
		return nil
	}
	return &Violation{
		ProductID:   prod.ProductID,
		ProductName: prod.Name,
		Kind:        KindMaxRateApp,
		Severity:    SeverityError,
		CanOverride: true,
		Message: fmt.Sprintf("%s: rate %.2f %s exceeds per-application max %.2f %s",
			prod.Name, cp.Rate, cp.RateUnit, limit.Rate, limit.Unit),
	}
}

// checkAppCount fires when the number of prior applications already meets the
// cap (count >= max, not strictly greater).
func checkAppCount(ctx Context, prod *entities.Product, r *entities.Restrictions, cand Candidate, cp CandidateProduct) *Violation {
	if r.MaxApplicationsPerSeason == nil {
		return nil
	}
	seasonID := uint(0)
	if ctx.Season != nil {
		seasonID = ctx.Season.SeasonID
	}
	count := 0
	for _, rec := range ctx.Records {
		if rec.FieldID != cand.FieldID || rec.CropID != cand.CropID || rec.SeasonID != seasonID {
			continue
		}
		for _, ap := range rec.Products {
			if ap.ProductID == cp.ProductID {
				count++
				break
			}
		}
	}
	if count < *r.MaxApplicationsPerSeason {
		return nil
	}
	return &Violation{
		ProductID:   prod.ProductID,
		ProductName: prod.Name,
		Kind:        KindMaxAppsSeason,
		Severity:    SeverityError,
		CanOverride: true,
		Message: fmt.Sprintf("%s: already applied %d of max %d times this season",
			prod.Name, count, *r.MaxApplicationsPerSeason),
	}
}

func cropNameFor(ctx Context, cropID uint) string {
	if ctx.Season == nil {
		return ""
	}
	for _, c := range ctx.Season.Crops {
		if c.CropID == cropID {
			return c.Name
		}
	}
	return ""
}
