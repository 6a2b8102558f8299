package variance

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"farmops/entities"
)

// passSeason plans one product split 70/30 across two passes (70 + 30 gal).
func passSeason() *entities.Season {
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
						Name:     "Pre-plant",
						Products: []entities.PlannedApplication{
							{ProductID: 7, Rate: 0.7, RateUnit: "gal/ac", TierIDs: []uint{1}},
						},
					},
					{
						TimingID: 101,
						Name:     "V4 Foliar",
						Products: []entities.PlannedApplication{
							{ProductID: 7, Rate: 0.3, RateUnit: "gal/ac", TierIDs: []uint{1}},
						},
					},
				},
			},
		},
	}
}

func landed(total float64) []entities.Invoice {
	return []entities.Invoice{
		{InvoiceID: 1, SeasonYear: 2026, Lines: []entities.InvoiceLine{
			{ProductID: 7, Quantity: 100, Unit: "gal", LandedTotal: &total},
		}},
	}
}

func priceBook(price float64, uom string) []entities.PriceBookEntry {
	return []entities.PriceBookEntry{
		{EntryID: 1, ProductID: 7, SeasonYear: 2026, Price: price, PriceUOM: uom, Source: "awarded"},
	}
}

func TestPass_ProportionalAllocation(t *testing.T) {
	res := Pass(passSeason(), nil, landed(1000), priceBook(9, "gal"))
	require.Len(t, res.Rows, 2)

	var sum float64
	byTiming := map[uint]PassRow{}
	for _, r := range res.Rows {
		sum += r.ActualCostAllocated
		byTiming[r.TimingID] = r
	}
	// 70/30 split of $1000 with no leakage
	assert.InDelta(t, 700, byTiming[100].ActualCostAllocated, 1e-9)
	assert.InDelta(t, 300, byTiming[101].ActualCostAllocated, 1e-9)
	assert.InDelta(t, 1000, sum, 1e-9)
	assert.InDelta(t, 1000, res.ActualTotalAllocated, 1e-9)

	// planned at $9/gal: 630 + 270 = 900; variance total = 100
	assert.InDelta(t, 900, res.PlannedTotal, 1e-9)
	assert.InDelta(t, 100, res.VarianceTotal, 1e-9)
}

func TestPass_LandedUnitCostFallback(t *testing.T) {
	unitCost := 10.0
	invoices := []entities.Invoice{
		{SeasonYear: 2026, Lines: []entities.InvoiceLine{
			{ProductID: 7, Quantity: 100, Unit: "gal", LandedUnitCost: &unitCost},
		}},
	}
	res := Pass(passSeason(), nil, invoices, priceBook(9, "gal"))
	assert.InDelta(t, 1000, res.ActualTotalAllocated, 1e-9)
}

func TestPass_TonPriceForLbsQuantity(t *testing.T) {
	s := passSeason()
	s.Crops[0].Timings[0].Products[0].RateUnit = "lbs/ac"
	s.Crops[0].Timings[1].Products[0].RateUnit = "lbs/ac"

	res := Pass(s, nil, nil, priceBook(800, "ton")) // $0.40/lbs
	require.Len(t, res.Rows, 2)
	for _, r := range res.Rows {
		require.NotNil(t, r.PlannedUnitPrice)
		assert.InDelta(t, 0.40, *r.PlannedUnitPrice, 1e-9)
		assert.True(t, r.NoInvoices)
	}
}

func TestPass_UnconvertiblePriceUnitFlagsMissing(t *testing.T) {
	// price quoted per lbs for a gal-denominated plan: no declared density
	res := Pass(passSeason(), nil, landed(1000), priceBook(2, "lbs"))
	for _, r := range res.Rows {
		assert.True(t, r.MissingPlannedPrice)
		assert.Nil(t, r.PlannedCost)
		assert.Nil(t, r.Variance, "nil planned cost must not produce a variance")
		assert.Nil(t, r.VariancePct)
	}
	// actual still allocates
	assert.InDelta(t, 1000, res.ActualTotalAllocated, 1e-9)
	assert.Zero(t, res.PlannedTotal)
}

func TestPass_InvoiceSourcedPriceExcluded(t *testing.T) {
	pb := []entities.PriceBookEntry{
		{EntryID: 1, ProductID: 7, SeasonYear: 2026, Price: 5, PriceUOM: "gal", Source: "invoice"},
	}
	res := Pass(passSeason(), nil, landed(1000), pb)
	for _, r := range res.Rows {
		assert.True(t, r.MissingPlannedPrice)
	}
}

func TestPass_SortedByAbsVarianceDesc(t *testing.T) {
	res := Pass(passSeason(), nil, landed(1000), priceBook(9, "gal"))
	require.Len(t, res.Rows, 2)
	for i := 1; i < len(res.Rows); i++ {
		prev, cur := res.Rows[i-1].Variance, res.Rows[i].Variance
		if prev != nil && cur != nil {
			assert.GreaterOrEqual(t, math.Abs(*prev), math.Abs(*cur))
		}
	}
	// pass with 70% share carries the larger discrepancy
	assert.Equal(t, uint(100), res.Rows[0].TimingID)
}

func TestPass_NilSeason(t *testing.T) {
	res := Pass(nil, nil, nil, nil)
	assert.Empty(t, res.Rows)
	assert.Zero(t, res.PlannedTotal)
}

func TestPass_Idempotent(t *testing.T) {
	s := passSeason()
	inv := landed(1000)
	pb := priceBook(9, "gal")
	assert.Equal(t, Pass(s, nil, inv, pb), Pass(s, nil, inv, pb))
}
