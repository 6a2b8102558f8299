// Package purchase owns vendor purchase orders and their adaptation into the
// readiness engine's supply capability.
package purchase

import (
	"farmops/entities"
	"farmops/pkg/readiness"
)

// SupplyLine adapts one purchase-order line into readiness.RemainingLine.
type SupplyLine struct {
	line entities.PurchaseOrderLine
}

func (s SupplyLine) ProductID() uint       { return s.line.ProductID }
func (s SupplyLine) RemainingQty() float64 { return s.line.Remaining() }
func (s SupplyLine) Unit() string          { return s.line.Unit }

// OpenSupply maps every still-open line of the given orders into the shape
// the readiness engine consumes. Callers pass orders already filtered to
// open statuses (repository.Open); fully received lines are dropped here.
func OpenSupply(orders []entities.PurchaseOrder) []readiness.RemainingLine {
	var out []readiness.RemainingLine
	for _, o := range orders {
		for _, l := range o.Lines {
			if l.Remaining() > 0 {
				out = append(out, SupplyLine{line: l})
			}
		}
	}
	return out
}
