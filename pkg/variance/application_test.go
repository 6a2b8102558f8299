package variance

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"farmops/entities"
)

func varianceSeason() *entities.Season {
	return &entities.Season{
		SeasonID: 1,
		Year:     2026,
		Crops: []entities.Crop{
			{
				CropID:     10,
				Name:       "Corn",
				TotalAcres: 100,
				Tiers:      []entities.Tier{{TierID: 1, Name: "Core Plan", Percent: 100}},
				Timings: []entities.ApplicationTiming{
					{
						TimingID: 100,
						Name:     "V4 Foliar",
						Products: []entities.PlannedApplication{
							{ProductID: 7, Rate: 2.0, RateUnit: "gal/ac", TierIDs: []uint{1}},
							{ProductID: 8, Rate: 0.5, RateUnit: "lbs/ac", TierIDs: []uint{1}},
						},
					},
				},
			},
		},
	}
}

func record(productID uint, rate, acres, total float64) entities.ApplicationRecord {
	return entities.ApplicationRecord{
		FieldID:      1,
		CropID:       10,
		TimingID:     100,
		SeasonID:     1,
		DateApplied:  time.Date(2026, 6, 10, 0, 0, 0, 0, time.UTC),
		AcresTreated: acres,
		Products: []entities.AppliedProduct{
			{ProductID: productID, ActualRate: rate, RateUnit: "gal/ac", TotalApplied: total},
		},
	}
}

// Planned 2.0 gal/ac over 100 ac = 200 gal; one record applies 2.1 gal/ac
// over all 100 ac (210 gal). Full coverage with a positive overage, so the
// over-applied classification wins over complete.
func TestApplication_WorkedExample(t *testing.T) {
	res := Application(varianceSeason(), nil, []entities.ApplicationRecord{
		record(7, 2.1, 100, 210),
	})
	require.Len(t, res.Rows, 2)

	row := res.Rows[0]
	require.Equal(t, uint(7), row.ProductID)
	assert.InDelta(t, 200, row.PlannedTotal, 1e-9)
	require.NotNil(t, row.ActualRate)
	assert.InDelta(t, 2.1, *row.ActualRate, 1e-9)
	require.NotNil(t, row.RateVariance)
	assert.InDelta(t, 0.1, *row.RateVariance, 1e-9)
	require.NotNil(t, row.RateVariancePct)
	assert.InDelta(t, 5, *row.RateVariancePct, 1e-9)
	assert.InDelta(t, 10, row.TotalVariance, 1e-9)
	assert.Equal(t, StatusOverApplied, row.Status)
}

func TestApplication_NotApplied(t *testing.T) {
	res := Application(varianceSeason(), nil, nil)
	for _, row := range res.Rows {
		assert.Equal(t, StatusNotApplied, row.Status)
		assert.Nil(t, row.ActualRate)
		assert.Nil(t, row.RateVariance)
		assert.Zero(t, row.ApplicationCount)
	}
	assert.Equal(t, 2, res.Totals.NotApplied)
}

func TestApplication_PartialCoverage(t *testing.T) {
	res := Application(varianceSeason(), nil, []entities.ApplicationRecord{
		record(7, 2.0, 60, 120), // 60% coverage, below the 95% threshold
	})
	assert.Equal(t, StatusPartial, res.Rows[0].Status)
}

func TestApplication_CompleteWithoutOverage(t *testing.T) {
	res := Application(varianceSeason(), nil, []entities.ApplicationRecord{
		record(7, 1.9, 100, 190), // full coverage, under planned total
	})
	assert.Equal(t, StatusComplete, res.Rows[0].Status)
	assert.InDelta(t, -10, res.Rows[0].TotalVariance, 1e-9)
}

func TestApplication_WeightedAverageRate(t *testing.T) {
	res := Application(varianceSeason(), nil, []entities.ApplicationRecord{
		record(7, 2.0, 75, 150),
		record(7, 3.0, 25, 75),
	})
	row := res.Rows[0]
	require.NotNil(t, row.ActualRate)
	// acres-weighted: (2.0×75 + 3.0×25) / 100 = 2.25
	assert.InDelta(t, 2.25, *row.ActualRate, 1e-9)
	assert.Equal(t, 2, row.ApplicationCount)
	assert.InDelta(t, 100, row.ActualAcres, 1e-9)
}

func TestApplication_SimpleMeanWhenNoAcreage(t *testing.T) {
	res := Application(varianceSeason(), nil, []entities.ApplicationRecord{
		record(7, 2.0, 0, 100),
		record(7, 4.0, 0, 100),
	})
	row := res.Rows[0]
	require.NotNil(t, row.ActualRate)
	assert.InDelta(t, 3.0, *row.ActualRate, 1e-9)
}

func TestApplication_ZeroPlannedRateKeepsPctNil(t *testing.T) {
	s := varianceSeason()
	s.Crops[0].Timings[0].Products[0].Rate = 0
	res := Application(s, nil, []entities.ApplicationRecord{record(7, 1.0, 100, 100)})
	row := res.Rows[0]
	assert.Nil(t, row.RateVariancePct)
	assert.Nil(t, row.TotalVariancePct)
}

func TestApplication_Idempotent(t *testing.T) {
	s := varianceSeason()
	recs := []entities.ApplicationRecord{record(7, 2.1, 100, 210)}
	assert.Equal(t, Application(s, nil, recs), Application(s, nil, recs))
}
