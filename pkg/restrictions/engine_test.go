package restrictions

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"farmops/entities"
)

func intp(i int) *int             { return &i }
func floatp(f float64) *float64   { return &f }
func timep(t time.Time) *time.Time { return &t }

func day(y, m, d int) time.Time { return time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC) }

func product(id uint, name string, r *entities.Restrictions) entities.Product {
	return entities.Product{ProductID: id, Name: name, Chemical: entities.ChemicalData{Restrictions: r}}
}

func baseContext(products ...entities.Product) Context {
	return Context{
		Season: &entities.Season{
			SeasonID: 1,
			Year:     2026,
			Crops:    []entities.Crop{{CropID: 10, Name: "Corn"}},
		},
		Fields:   []entities.Field{{FieldID: 1, Name: "North 80", Acres: 80}},
		Products: products,
	}
}

func candidate(productID uint, rate float64, unit string) Candidate {
	return Candidate{
		FieldID:     1,
		CropID:      10,
		TimingID:    100,
		DateApplied: day(2026, 6, 10),
		Products:    []CandidateProduct{{ProductID: productID, Rate: rate, RateUnit: unit, Acres: 80}},
	}
}

func TestCheck_PHIViolation(t *testing.T) {
	ctx := baseContext(product(7, "FoliarMax", &entities.Restrictions{PHIDays: intp(7)}))

	cand := candidate(7, 1, "gal/ac")
	cand.HarvestDate = timep(day(2026, 6, 15)) // 5 days after application

	vs := Check(ctx, cand)
	require.Len(t, vs, 1)
	assert.Equal(t, KindPHI, vs[0].Kind)
	assert.Equal(t, SeverityError, vs[0].Severity)
	assert.True(t, vs[0].CanOverride)
}

func TestCheck_PHISkippedWithoutHarvestDate(t *testing.T) {
	ctx := baseContext(product(7, "FoliarMax", &entities.Restrictions{PHIDays: intp(7)}))
	vs := Check(ctx, candidate(7, 1, "gal/ac"))
	assert.Empty(t, vs)
}

func TestCheck_PHIByCropWinsOverDefault(t *testing.T) {
	ctx := baseContext(product(7, "FoliarMax", &entities.Restrictions{
		PHIDays:   intp(30),
		PHIByCrop: []entities.CropPHI{{CropName: "Corn", Days: 3}},
	}))
	cand := candidate(7, 1, "gal/ac")
	cand.HarvestDate = timep(day(2026, 6, 15)) // 5 days out: fine for corn's 3... no wait, 5 >= 3
	vs := Check(ctx, cand)
	assert.Empty(t, vs, "crop-specific 3-day PHI satisfied even though default 30 is not")
}

func TestCheck_REIAlwaysInformationalAndNotOverridable(t *testing.T) {
	ctx := baseContext(product(7, "FoliarMax", &entities.Restrictions{REIHours: floatp(24)}))
	vs := Check(ctx, candidate(7, 1, "gal/ac"))

	require.Len(t, vs, 1)
	assert.Equal(t, KindREI, vs[0].Kind)
	assert.Equal(t, SeverityWarning, vs[0].Severity)
	assert.False(t, vs[0].CanOverride)
	require.NotNil(t, vs[0].SafeEntry)
	assert.Equal(t, day(2026, 6, 11), *vs[0].SafeEntry)
}

func TestCheck_MaxRatePerApplication(t *testing.T) {
	ctx := baseContext(product(7, "FoliarMax", &entities.Restrictions{
		MaxRatePerApplication: &entities.RateCap{Rate: 2, Unit: "gal/ac"},
	}))

	assert.Empty(t, Check(ctx, candidate(7, 2.0, "gal/ac")), "at the cap is allowed")

	vs := Check(ctx, candidate(7, 2.5, "gal/ac"))
	require.Len(t, vs, 1)
	assert.Equal(t, KindMaxRateApp, vs[0].Kind)
	assert.Equal(t, SeverityError, vs[0].Severity)
}

func TestCheck_RateUnitMismatchSilentlySkips(t *testing.T) {
	ctx := baseContext(product(7, "FoliarMax", &entities.Restrictions{
		MaxRatePerApplication: &entities.RateCap{Rate: 2, Unit: "lbs/ac"},
		MaxRatePerSeason:      &entities.RateCap{Rate: 4, Unit: "lbs/ac"},
	}))
	vs := Check(ctx, candidate(7, 100, "gal/ac"))
	assert.Empty(t, vs)
}

func TestCheck_SeasonalMaxRateSumsHistory(t *testing.T) {
	ctx := baseContext(product(7, "FoliarMax", &entities.Restrictions{
		MaxRatePerSeason: &entities.RateCap{Rate: 5, Unit: "lbs ai/ac"},
	}))
	ctx.Records = []entities.ApplicationRecord{
		{FieldID: 1, CropID: 10, SeasonID: 1, DateApplied: day(2026, 5, 1),
			Products: []entities.AppliedProduct{{ProductID: 7, ActualRate: 3, RateUnit: "lbs/ac"}}},
	}

	// 3 recorded + 1.5 candidate = 4.5, under the cap
	assert.Empty(t, Check(ctx, candidate(7, 1.5, "lbs/ac")))

	// 3 recorded + 2.5 candidate = 5.5, over
	vs := Check(ctx, candidate(7, 2.5, "lbs/ac"))
	require.Len(t, vs, 1)
	assert.Equal(t, KindMaxRateSeason, vs[0].Kind)
}

func TestCheck_MaxApplicationsFiresAtCap(t *testing.T) {
	ctx := baseContext(product(7, "FoliarMax", &entities.Restrictions{
		MaxApplicationsPerSeason: intp(2),
	}))
	rec := func() entities.ApplicationRecord {
		return entities.ApplicationRecord{FieldID: 1, CropID: 10, SeasonID: 1,
			Products: []entities.AppliedProduct{{ProductID: 7, ActualRate: 1, RateUnit: "gal/ac"}}}
	}

	ctx.Records = []entities.ApplicationRecord{rec()}
	assert.Empty(t, Check(ctx, candidate(7, 1, "gal/ac")), "1 prior of max 2")

	ctx.Records = []entities.ApplicationRecord{rec(), rec()}
	vs := Check(ctx, candidate(7, 1, "gal/ac"))
	require.Len(t, vs, 1, "count >= max fires, not strictly greater")
	assert.Equal(t, KindMaxAppsSeason, vs[0].Kind)
}

func TestCheck_RotationWarning(t *testing.T) {
	ctx := baseContext(product(7, "ResidualPro", &entities.Restrictions{
		RotationRestrictions: []entities.RotationRestriction{
			{CropName: "Soybeans", IntervalMonths: intp(10)}, // 300 days
		},
	}))
	ctx.Assignments = []entities.FieldAssignment{
		{FieldID: 1, SeasonID: 1, CropID: 10, PreviousCrop: "Soybeans", AssignedOn: day(2026, 4, 1)},
	}

	// previous crop dated a year before the assignment: 2025-04-01, which is
	// 435 days before application, outside the 300-day window
	assert.Empty(t, Check(ctx, candidate(7, 1, "gal/ac")))

	ctx.Products[0].Chemical.Restrictions.RotationRestrictions[0].IntervalMonths = intp(18) // 540 days
	vs := Check(ctx, candidate(7, 1, "gal/ac"))
	require.Len(t, vs, 1)
	assert.Equal(t, KindRotation, vs[0].Kind)
	assert.Equal(t, SeverityWarning, vs[0].Severity)
	assert.True(t, vs[0].CanOverride)
}

func TestCheck_RotationUsesPriorSeasons(t *testing.T) {
	ctx := baseContext(product(7, "ResidualPro", &entities.Restrictions{
		RotationRestrictions: []entities.RotationRestriction{
			{CropName: "Sugar Beets", IntervalDays: intp(540)},
		},
	}))
	ctx.PriorSeasons = []entities.Season{
		{SeasonID: 2, Year: 2025, Crops: []entities.Crop{{CropID: 20, Name: "Sugar Beets"}}},
	}
	ctx.Assignments = []entities.FieldAssignment{
		{FieldID: 1, SeasonID: 2, CropID: 20, AssignedOn: day(2025, 4, 15)},
	}

	vs := Check(ctx, candidate(7, 1, "gal/ac"))
	require.Len(t, vs, 1)
	assert.Equal(t, KindRotation, vs[0].Kind)
}

func TestCheck_NoRestrictionsNoViolations(t *testing.T) {
	ctx := baseContext(product(7, "PlainFert", nil))
	assert.Empty(t, Check(ctx, candidate(7, 100, "gal/ac")))
}

func TestCheck_Idempotent(t *testing.T) {
	ctx := baseContext(product(7, "FoliarMax", &entities.Restrictions{
		PHIDays:  intp(7),
		REIHours: floatp(12),
	}))
	cand := candidate(7, 1, "gal/ac")
	cand.HarvestDate = timep(day(2026, 6, 12))
	assert.Equal(t, Check(ctx, cand), Check(ctx, cand))
}

func TestHelpers(t *testing.T) {
	vs := []Violation{
		{ProductID: 7, Kind: KindPHI, Severity: SeverityError, CanOverride: true},
		{ProductID: 7, Kind: KindREI, Severity: SeverityWarning, CanOverride: false},
		{ProductID: 8, Kind: KindRotation, Severity: SeverityWarning, CanOverride: true},
	}

	assert.Len(t, Overridable(vs), 2)
	assert.Len(t, BySeverity(vs, SeverityWarning), 2)
	assert.Len(t, GroupByProduct(vs)[7], 2)
	assert.True(t, HasBlockingViolations(vs))
	assert.False(t, HasBlockingViolations(vs[1:]))
}
