package dashboard

import (
	"sort"
	"strconv"

	"ecomdash/internal/domain/order"
	"ecomdash/internal/domain/report"
)

type valueCount struct {
	value string
	count int
}

// topValues counts occurrences of the non-null values produced by key, ordered
// by count descending. Ties keep first-encountered-value order (stable).
// n <= 0 returns the full distinct set.
func topValues(orders []*order.Order, key func(*order.Order) (string, bool), n int) []valueCount {
	counts := make(map[string]int)
	firstSeen := make(map[string]int)
	for i, o := range orders {
		v, ok := key(o)
		if !ok {
			continue
		}
		if _, seen := counts[v]; !seen {
			firstSeen[v] = i
		}
		counts[v]++
	}

	ranked := make([]valueCount, 0, len(counts))
	for v, c := range counts {
		ranked = append(ranked, valueCount{value: v, count: c})
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].count != ranked[j].count {
			return ranked[i].count > ranked[j].count
		}
		return firstSeen[ranked[i].value] < firstSeen[ranked[j].value]
	})

	if n > 0 && len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked
}

func frequencyTable(valueCol string, ranked []valueCount) *report.Table {
	table := report.NewTable(valueCol, "Frequency")
	for _, vc := range ranked {
		table.Append(vc.value, vc.count)
	}
	return table
}

func stringKey(get func(*order.Order) string) func(*order.Order) (string, bool) {
	return func(o *order.Order) (string, bool) {
		v := get(o)
		return v, v != ""
	}
}

// TopProductCategories ranks the n most frequent product categories.
func TopProductCategories(orders []*order.Order, n int) *report.Table {
	return frequencyTable("Product Category",
		topValues(orders, stringKey(func(o *order.Order) string { return o.ProductCategory }), n))
}

// TopProductCategoriesEN ranks the n most frequent English category names.
func TopProductCategoriesEN(orders []*order.Order, n int) *report.Table {
	return frequencyTable("Product Category (EN)",
		topValues(orders, stringKey(func(o *order.Order) string { return o.ProductCategoryEN }), n))
}

// TopSellerCities ranks the n most frequent seller cities.
func TopSellerCities(orders []*order.Order, n int) *report.Table {
	return frequencyTable("Seller City",
		topValues(orders, stringKey(func(o *order.Order) string { return o.SellerCity }), n))
}

// TopCustomerCities ranks the n most frequent customer cities.
func TopCustomerCities(orders []*order.Order, n int) *report.Table {
	return frequencyTable("Customer City",
		topValues(orders, stringKey(func(o *order.Order) string { return o.CustomerCity }), n))
}

// OrderStatusCounts is the frequency of every order status.
func OrderStatusCounts(orders []*order.Order) *report.Table {
	return frequencyTable("Order Status",
		topValues(orders, stringKey(func(o *order.Order) string { return o.Status }), 0))
}

// PaymentTypeCounts is the frequency of every payment type.
func PaymentTypeCounts(orders []*order.Order) *report.Table {
	return frequencyTable("Payment Type",
		topValues(orders, stringKey(func(o *order.Order) string { return o.PaymentType }), 0))
}

// ReviewScoreCounts is the frequency of every non-null review score.
func ReviewScoreCounts(orders []*order.Order) *report.Table {
	ranked := topValues(orders, func(o *order.Order) (string, bool) {
		if o.ReviewScore == nil {
			return "", false
		}
		return strconv.Itoa(*o.ReviewScore), true
	}, 0)

	table := report.NewTable("Review Score", "Frequency")
	for _, vc := range ranked {
		score, _ := strconv.Atoi(vc.value)
		table.Append(score, vc.count)
	}
	return table
}
