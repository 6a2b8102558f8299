// Package readiness reconciles planned product requirements against on-hand
// stock and still-to-receive purchase lines, classifying each requirement as
// READY, ON_ORDER or BLOCKING.
package readiness

import (
	"github.com/google/uuid"

	"farmops/pkg/units"
	"farmops/pkg/usage"
)

type Status string

const (
	StatusReady    Status = "READY"
	StatusOnOrder  Status = "ON_ORDER"
	StatusBlocking Status = "BLOCKING"
)

// Requirement is a planned requirement relabeled for readiness display.
type Requirement struct {
	ID        string  `json:"id"`
	Label     string  `json:"label"`
	ProductID uint    `json:"product_id"`
	Unit      string  `json:"unit"`
	Quantity  float64 `json:"quantity"`
}

// FromUsage relabels aggregator output with synthetic ids. Callers do this
// once per request; Evaluate itself stays deterministic over its inputs.
func FromUsage(reqs []usage.Requirement) []Requirement {
	out := make([]Requirement, 0, len(reqs))
	for _, r := range reqs {
		out = append(out, Requirement{
			ID:        uuid.NewString(),
			Label:     r.ProductName,
			ProductID: r.ProductID,
			Unit:      r.Unit,
			Quantity:  r.TotalNeeded,
		})
	}
	return out
}

// StockLine is one on-hand inventory row, already mapped out of whatever
// shape the caller stores inventory in.
type StockLine struct {
	ProductID      uint
	Quantity       float64
	Unit           string
	ContainerCount int
}

// RemainingLine is the capability a supply source must expose: an open line
// with quantity still due in. Purchase orders and simplified purchases both
// adapt into this instead of the engine knowing either shape.
type RemainingLine interface {
	ProductID() uint
	RemainingQty() float64
	Unit() string
}

// Item is one classified requirement.
type Item struct {
	ID        string  `json:"id"`
	Label     string  `json:"label"`
	ProductID uint    `json:"product_id"`
	Unit      string  `json:"unit"`
	Required  float64 `json:"required"`
	OnHand    float64 `json:"on_hand"`
	OnOrder   float64 `json:"on_order"`
	ShortQty  float64 `json:"short_qty"`
	Status    Status  `json:"status"`
}

type Result struct {
	Items         []Item  `json:"items"`
	ReadyCount    int     `json:"ready_count"`
	OnOrderCount  int     `json:"on_order_count"`
	BlockingCount int     `json:"blocking_count"`
	TotalCount    int     `json:"total_count"`
	ReadyPct      float64 `json:"ready_pct"`
}

// Evaluate classifies every requirement. On-hand and on-order quantities are
// summed only where units match the requirement's unit (ton<->lbs converts;
// anything else is left out of the sum rather than guessed at).
//
//	READY     on-hand >= required
//	ON_ORDER  on-hand + on-order >= required
//	BLOCKING  otherwise, with shortQty = required - (on-hand + on-order)
func Evaluate(reqs []Requirement, stock []StockLine, supply []RemainingLine) Result {
	res := Result{Items: make([]Item, 0, len(reqs))}

	for _, req := range reqs {
		required := units.Clean(req.Quantity)

		var onHand float64
		for _, s := range stock {
			if s.ProductID != req.ProductID {
				continue
			}
			if q, ok := units.Convert(units.Clean(s.Quantity), s.Unit, req.Unit); ok {
				onHand += q
			}
		}

		var onOrder float64
		for _, line := range supply {
			if line.ProductID() != req.ProductID {
				continue
			}
			if q, ok := units.Convert(units.Clean(line.RemainingQty()), line.Unit(), req.Unit); ok {
				onOrder += q
			}
		}

		item := Item{
			ID:        req.ID,
			Label:     req.Label,
			ProductID: req.ProductID,
			Unit:      req.Unit,
			Required:  required,
			OnHand:    onHand,
			OnOrder:   onOrder,
		}
		switch {
		case onHand >= required:
			item.Status = StatusReady
			res.ReadyCount++
		case onHand+onOrder >= required:
			item.Status = StatusOnOrder
			res.OnOrderCount++
		default:
			item.Status = StatusBlocking
			item.ShortQty = required - (onHand + onOrder)
			res.BlockingCount++
		}
		res.Items = append(res.Items, item)
	}

	res.TotalCount = len(res.Items)
	if res.TotalCount > 0 {
		res.ReadyPct = float64(res.ReadyCount) / float64(res.TotalCount) * 100
	}
	return res
}
