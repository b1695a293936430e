package dashboard

import (
	"ecomdash/internal/domain/order"
	"ecomdash/internal/domain/report"
)

// PurchaseHourDistribution counts rows per hour of day of the purchase
// timestamp. All 24 buckets are emitted, including empty ones.
func PurchaseHourDistribution(orders []*order.Order) *report.Table {
	var buckets [24]int
	for _, o := range orders {
		if o.PurchaseTimestamp == nil {
			continue
		}
		buckets[o.PurchaseTimestamp.UTC().Hour()]++
	}

	table := report.NewTable("Hour of Purchase", "Number of Orders")
	for hour, count := range buckets {
		table.Append(hour, count)
	}
	return table
}

// ShippingDurationHistogram bins per-row shipping durations into bins
// equal-width buckets over the observed [min, max] range. The duration is
// carrier handoff minus customer delivery in whole days, sign and all; rows
// missing either date contribute nothing. Each output row carries the lower
// edge of its bin.
func ShippingDurationHistogram(orders []*order.Order, bins int) *report.Table {
	table := report.NewTable("Shipping Duration (Days)", "Number of Orders")

	var values []int
	for _, o := range orders {
		if days, ok := o.ShippingDays(); ok {
			values = append(values, days)
		}
	}
	if len(values) == 0 {
		return table
	}

	min, max := values[0], values[0]
	for _, v := range values[1:] {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}

	if min == max {
		table.Append(float64(min), len(values))
		return table
	}

	width := float64(max-min) / float64(bins)
	counts := make([]int, bins)
	for _, v := range values {
		idx := int(float64(v-min) / width)
		if idx >= bins {
			// The maximum value lands on the closed upper edge of the last bin.
			idx = bins - 1
		}
		counts[idx]++
	}

	for i, count := range counts {
		table.Append(float64(min)+width*float64(i), count)
	}
	return table
}
