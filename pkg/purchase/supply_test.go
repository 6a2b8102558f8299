package purchase

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"farmops/entities"
)

func TestOpenSupplySkipsFullyReceivedLines(t *testing.T) {
	orders := []entities.PurchaseOrder{
		{
			OrderID: 1,
			Status:  entities.OrderPartial,
			Lines: []entities.PurchaseOrderLine{
				{LineID: 1, ProductID: 7, OrderedQty: 100, ReceivedQty: 40, Unit: "gal"},
				{LineID: 2, ProductID: 8, OrderedQty: 50, ReceivedQty: 50, Unit: "lbs"},
			},
		},
	}

	supply := OpenSupply(orders)

	assert.Len(t, supply, 1)
	assert.Equal(t, uint(7), supply[0].ProductID())
	assert.Equal(t, 60.0, supply[0].RemainingQty())
	assert.Equal(t, "gal", supply[0].Unit())
}

func TestOpenSupplyOverReceivedLineContributesNothing(t *testing.T) {
	orders := []entities.PurchaseOrder{
		{Lines: []entities.PurchaseOrderLine{
			{ProductID: 7, OrderedQty: 10, ReceivedQty: 12, Unit: "gal"},
		}},
	}

	assert.Empty(t, OpenSupply(orders))
}
