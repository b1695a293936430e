package dashboard

import (
	"sort"

	"ecomdash/internal/domain/order"
)

// States returns the distinct customer states present in the dataset,
// ascending. This is the default filter selection.
func States(orders []*order.Order) []string {
	seen := make(map[string]struct{})
	var states []string
	for _, o := range orders {
		if o.CustomerState == "" {
			continue
		}
		if _, ok := seen[o.CustomerState]; ok {
			continue
		}
		seen[o.CustomerState] = struct{}{}
		states = append(states, o.CustomerState)
	}
	sort.Strings(states)
	return states
}

// FilterByState returns the rows whose customer state is in the selection,
// preserving row order and without deduplication. An empty selection is a
// valid empty result. Rows with a null state match no selection; keeping them
// is the service's job when no filter is applied.
func FilterByState(orders []*order.Order, states []string) []*order.Order {
	allowed := make(map[string]struct{}, len(states))
	for _, s := range states {
		allowed[s] = struct{}{}
	}

	filtered := make([]*order.Order, 0, len(orders))
	for _, o := range orders {
		if _, ok := allowed[o.CustomerState]; ok {
			filtered = append(filtered, o)
		}
	}
	return filtered
}
