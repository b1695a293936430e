package dashboard

import (
	"sort"

	"ecomdash/internal/domain/order"
	"ecomdash/internal/domain/report"
)

// ReviewScoreByDeliveryCategory classifies each row's delivery delay and
// averages review scores per category. Rows with unparseable dates have no
// category; rows without a score never enter a mean. Categories appear in
// their fixed display order, and only when at least one scored row exists.
func ReviewScoreByDeliveryCategory(orders []*order.Order) *report.Table {
	type agg struct {
		sum   int
		count int
	}
	byCategory := make(map[order.DeliveryCategory]*agg)
	for _, o := range orders {
		category, ok := o.DeliveryCategory()
		if !ok || o.ReviewScore == nil {
			continue
		}
		a := byCategory[category]
		if a == nil {
			a = &agg{}
			byCategory[category] = a
		}
		a.sum += *o.ReviewScore
		a.count++
	}

	table := report.NewTable("Delivery Delay Category", "Average Review Score")
	for _, category := range order.DeliveryCategories {
		if a, ok := byCategory[category]; ok {
			table.Append(string(category), float64(a.sum)/float64(a.count))
		}
	}
	return table
}

// ReviewScoreByStatusPayment averages review scores per (order status,
// payment type) pair over rows with a non-null score, pairs sorted
// lexicographically.
func ReviewScoreByStatusPayment(orders []*order.Order) *report.Table {
	type pair struct {
		status  string
		payment string
	}
	type agg struct {
		sum   int
		count int
	}
	byPair := make(map[pair]*agg)
	for _, o := range orders {
		if o.ReviewScore == nil || o.Status == "" || o.PaymentType == "" {
			continue
		}
		p := pair{status: o.Status, payment: o.PaymentType}
		a := byPair[p]
		if a == nil {
			a = &agg{}
			byPair[p] = a
		}
		a.sum += *o.ReviewScore
		a.count++
	}

	pairs := make([]pair, 0, len(byPair))
	for p := range byPair {
		pairs = append(pairs, p)
	}
	sort.Slice(pairs, func(i, j int) bool {
		if pairs[i].status != pairs[j].status {
			return pairs[i].status < pairs[j].status
		}
		return pairs[i].payment < pairs[j].payment
	})

	table := report.NewTable("Order Status", "Payment Type", "Average Review Score")
	for _, p := range pairs {
		a := byPair[p]
		table.Append(p.status, p.payment, float64(a.sum)/float64(a.count))
	}
	return table
}
