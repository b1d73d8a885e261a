package aggregate

import (
	"taller_dashboards/internal/domain/correlate"
	"taller_dashboards/internal/domain/entities"
)

// BilledOrders computes, once, the set of orders referenced by at least one
// payment. Every aggregator that cares about billing (state tally, awaiting
// billing, financials) consumes this set instead of re-deriving the rule.
//
// The result maps order positions in the input slice to true.
func BilledOrders(orders []entities.WorkOrder, payments []entities.Payment) map[int]bool {
	billed := make(map[int]bool)
	if len(orders) == 0 || len(payments) == 0 {
		return billed
	}
	ix := correlate.NewIndex(len(orders), func(i int) correlate.Ref { return orders[i].Keys() })
	for _, p := range payments {
		for _, pos := range ix.Match(p.OrderRef) {
			billed[pos] = true
		}
	}
	return billed
}

// EffectiveState is the state an order is displayed and tallied under:
// a billed order counts as DELIVERED regardless of its stored state.
// CANCELLED stays CANCELLED.
func EffectiveState(o entities.WorkOrder, billed bool) entities.OrderState {
	if o.State == entities.OrderStateCancelled {
		return entities.OrderStateCancelled
	}
	if billed {
		return entities.OrderStateDelivered
	}
	return o.State
}
