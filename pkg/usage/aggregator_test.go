package usage

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"farmops/entities"
)

func testSeason() *entities.Season {
	return &entities.Season{
		SeasonID: 1,
		Year:     2026,
		Crops: []entities.Crop{
			{
				CropID:     10,
				Name:       "Corn",
				TotalAcres: 100,
				Tiers: []entities.Tier{
					{TierID: 1, Name: "Core Plan", Percent: 100},
					{TierID: 2, Name: "Tier 2", Percent: 60},
				},
				Timings: []entities.ApplicationTiming{
					{
						TimingID: 100,
						Name:     "V4 Foliar",
						Products: []entities.PlannedApplication{
							{ProductID: 7, Rate: 2, RateUnit: "gal/ac", TierIDs: []uint{1}},
							{ProductID: 7, Rate: 1, RateUnit: "gal/ac", TierIDs: []uint{2}},
						},
					},
					{
						TimingID: 101,
						Name:     "Tassel",
						Products: []entities.PlannedApplication{
							{ProductID: 8, Rate: 0.5, RateUnit: "lbs/ac", TierIDs: []uint{1, 2}},
						},
					},
				},
			},
		},
	}
}

func testProducts() []entities.Product {
	return []entities.Product{
		{ProductID: 7, Name: "FoliarMax"},
		{ProductID: 8, Name: "GranuShield"},
	}
}

func TestAggregate_SumsTierContributions(t *testing.T) {
	reqs := Aggregate(testSeason(), testProducts())
	require.Len(t, reqs, 2)

	// product 7: 2 gal/ac × 100 ac + 1 gal/ac × 60 ac = 260 gal
	assert.Equal(t, uint(7), reqs[0].ProductID)
	assert.Equal(t, "gal", reqs[0].Unit)
	assert.InDelta(t, 260, reqs[0].TotalNeeded, 1e-9)
	assert.Equal(t, "FoliarMax", reqs[0].ProductName)

	// product 8: 0.5 lbs/ac × (100 + 60) ac = 80 lbs
	assert.Equal(t, uint(8), reqs[1].ProductID)
	assert.Equal(t, "lbs", reqs[1].Unit)
	assert.InDelta(t, 80, reqs[1].TotalNeeded, 1e-9)
}

func TestAggregate_AdditiveInvariant(t *testing.T) {
	reqs := Aggregate(testSeason(), testProducts())
	for _, req := range reqs {
		var sum float64
		for _, u := range req.Usages {
			sum += u.Quantity
		}
		assert.InDelta(t, req.TotalNeeded, sum, 1e-9, "product %d", req.ProductID)
	}
}

func TestAggregate_NilSeason(t *testing.T) {
	reqs := Aggregate(nil, testProducts())
	require.NotNil(t, reqs)
	assert.Empty(t, reqs)
}

func TestAggregate_CoercesBadNumbers(t *testing.T) {
	s := testSeason()
	s.Crops[0].Timings[0].Products[0].Rate = math.NaN()
	s.Crops[0].Timings[0].Products[1].Rate = -1

	reqs := Aggregate(s, testProducts())
	for _, req := range reqs {
		assert.NotEqual(t, uint(7), req.ProductID, "zeroed rates should drop product 7 entirely")
	}
}

func TestAggregate_MismatchedUnitsStaySeparate(t *testing.T) {
	s := testSeason()
	// second planned app of product 7 is entered in quarts instead
	s.Crops[0].Timings[0].Products[1].RateUnit = "qt/ac"

	reqs := Aggregate(s, testProducts())
	var unitsSeen []string
	for _, r := range reqs {
		if r.ProductID == 7 {
			unitsSeen = append(unitsSeen, r.Unit)
		}
	}
	assert.ElementsMatch(t, []string{"gal", "qt"}, unitsSeen)
}

func TestAggregate_Idempotent(t *testing.T) {
	s := testSeason()
	p := testProducts()
	assert.Equal(t, Aggregate(s, p), Aggregate(s, p))
}
