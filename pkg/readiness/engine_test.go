package readiness

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"farmops/pkg/usage"
)

type fakeLine struct {
	productID uint
	remaining float64
	unit      string
}

func (f fakeLine) ProductID() uint       { return f.productID }
func (f fakeLine) RemainingQty() float64 { return f.remaining }
func (f fakeLine) Unit() string          { return f.unit }

func reqs() []Requirement {
	return []Requirement{
		{ID: "a", Label: "FoliarMax", ProductID: 7, Unit: "gal", Quantity: 200},
		{ID: "b", Label: "GranuShield", ProductID: 8, Unit: "lbs", Quantity: 80},
	}
}

func TestEvaluate_AllOnHand(t *testing.T) {
	stock := []StockLine{
		{ProductID: 7, Quantity: 250, Unit: "gal"},
		{ProductID: 8, Quantity: 100, Unit: "lbs"},
	}
	res := Evaluate(reqs(), stock, nil)

	assert.Equal(t, 2, res.ReadyCount)
	assert.Equal(t, 0, res.BlockingCount)
	assert.Equal(t, 2, res.TotalCount)
	assert.InDelta(t, 100, res.ReadyPct, 1e-9)
	for _, it := range res.Items {
		assert.Equal(t, StatusReady, it.Status)
		assert.Zero(t, it.ShortQty)
	}
}

func TestEvaluate_NothingAnywhere(t *testing.T) {
	res := Evaluate(reqs(), nil, nil)

	require.Len(t, res.Items, 2)
	assert.Equal(t, 2, res.BlockingCount)
	assert.Equal(t, StatusBlocking, res.Items[0].Status)
	assert.InDelta(t, 200, res.Items[0].ShortQty, 1e-9) // shortQty = full requirement
	assert.InDelta(t, 80, res.Items[1].ShortQty, 1e-9)
}

func TestEvaluate_OnOrderCoversGap(t *testing.T) {
	stock := []StockLine{{ProductID: 7, Quantity: 120, Unit: "gal"}}
	supply := []RemainingLine{
		fakeLine{productID: 7, remaining: 100, unit: "gal"},
		fakeLine{productID: 8, remaining: 30, unit: "lbs"},
	}
	res := Evaluate(reqs(), stock, supply)

	assert.Equal(t, StatusOnOrder, res.Items[0].Status) // 120 + 100 >= 200
	assert.Equal(t, StatusBlocking, res.Items[1].Status)
	assert.InDelta(t, 50, res.Items[1].ShortQty, 1e-9) // 80 - (0+30)
}

func TestEvaluate_TonLbsConversion(t *testing.T) {
	r := []Requirement{{ID: "c", ProductID: 9, Unit: "lbs", Quantity: 3000}}
	stock := []StockLine{{ProductID: 9, Quantity: 2, Unit: "ton"}} // 4000 lbs
	res := Evaluate(r, stock, nil)

	assert.Equal(t, StatusReady, res.Items[0].Status)
	assert.InDelta(t, 4000, res.Items[0].OnHand, 1e-9)
}

func TestEvaluate_MismatchedUnitsNotSummed(t *testing.T) {
	r := []Requirement{{ID: "d", ProductID: 9, Unit: "gal", Quantity: 10}}
	stock := []StockLine{{ProductID: 9, Quantity: 500, Unit: "lbs"}} // no density declared
	res := Evaluate(r, stock, nil)

	assert.Equal(t, StatusBlocking, res.Items[0].Status)
	assert.Zero(t, res.Items[0].OnHand)
}

func TestEvaluate_Idempotent(t *testing.T) {
	stock := []StockLine{{ProductID: 7, Quantity: 50, Unit: "gal"}}
	supply := []RemainingLine{fakeLine{productID: 7, remaining: 100, unit: "gal"}}
	r := reqs()
	assert.Equal(t, Evaluate(r, stock, supply), Evaluate(r, stock, supply))
}

func TestFromUsage_Relabels(t *testing.T) {
	in := []usage.Requirement{{ProductID: 7, ProductName: "FoliarMax", Unit: "gal", TotalNeeded: 200}}
	out := FromUsage(in)

	require.Len(t, out, 1)
	assert.NotEmpty(t, out[0].ID)
	assert.Equal(t, "FoliarMax", out[0].Label)
	assert.Equal(t, 200.0, out[0].Quantity)
}
