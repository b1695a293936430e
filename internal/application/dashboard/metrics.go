package dashboard

import (
	"sort"
	"time"

	"ecomdash/internal/domain/order"
	"ecomdash/internal/domain/report"
)

// Every derivation in this file is a pure function of the filtered row set.
// The derivations are mutually independent; an empty input yields an empty
// (never nil, never erroring) result table. A null order id never joins a
// distinct order count, though its row still contributes revenue.

// Summarize computes the two headline metrics: distinct order count and
// revenue. Revenue is summed over all rows, not per distinct order: each line
// item contributes its own price.
func Summarize(orders []*order.Order) report.Summary {
	distinct := make(map[string]struct{})
	var revenue float64
	for _, o := range orders {
		if o.OrderID != "" {
			distinct[o.OrderID] = struct{}{}
		}
		revenue += o.Price
	}
	return report.NewSummary(len(distinct), revenue)
}

// DailyOrders counts distinct orders per purchase calendar date, ascending.
// Rows without a purchase timestamp carry no date key and are excluded.
func DailyOrders(orders []*order.Order) *report.Table {
	byDate := make(map[time.Time]map[string]struct{})
	for _, o := range orders {
		if o.PurchaseTimestamp == nil {
			continue
		}
		day := dateOf(*o.PurchaseTimestamp)
		if byDate[day] == nil {
			byDate[day] = make(map[string]struct{})
		}
		if o.OrderID != "" {
			byDate[day][o.OrderID] = struct{}{}
		}
	}

	table := report.NewTable("Date", "Total Orders")
	for _, day := range sortedDates(byDate) {
		table.Append(day.Format("2006-01-02"), len(byDate[day]))
	}
	return table
}

// DailyRevenueOrders produces the dual-axis series: revenue sum and distinct
// order count per purchase date, aligned on the same date rows.
func DailyRevenueOrders(orders []*order.Order) *report.Table {
	type daily struct {
		revenue float64
		orders  map[string]struct{}
	}
	byDate := make(map[time.Time]*daily)
	for _, o := range orders {
		if o.PurchaseTimestamp == nil {
			continue
		}
		day := dateOf(*o.PurchaseTimestamp)
		d := byDate[day]
		if d == nil {
			d = &daily{orders: make(map[string]struct{})}
			byDate[day] = d
		}
		d.revenue += o.Price
		if o.OrderID != "" {
			d.orders[o.OrderID] = struct{}{}
		}
	}

	table := report.NewTable("Date", "Total Revenue", "Total Orders")
	for _, day := range sortedDates(byDate) {
		d := byDate[day]
		table.Append(day.Format("2006-01-02"), d.revenue, len(d.orders))
	}
	return table
}

// StateClusters aggregates revenue and distinct orders per customer state,
// the input of the clustering-by-state scatter.
func StateClusters(orders []*order.Order) *report.Table {
	type cluster struct {
		revenue float64
		orders  map[string]struct{}
	}
	byState := make(map[string]*cluster)
	for _, o := range orders {
		if o.CustomerState == "" {
			continue
		}
		c := byState[o.CustomerState]
		if c == nil {
			c = &cluster{orders: make(map[string]struct{})}
			byState[o.CustomerState] = c
		}
		c.revenue += o.Price
		if o.OrderID != "" {
			c.orders[o.OrderID] = struct{}{}
		}
	}

	states := make([]string, 0, len(byState))
	for s := range byState {
		states = append(states, s)
	}
	sort.Strings(states)

	table := report.NewTable("State", "Total Revenue ($)", "Total Orders")
	for _, s := range states {
		c := byState[s]
		table.Append(s, c.revenue, len(c.orders))
	}
	return table
}

// GeoPoints is a row-level passthrough of coordinates and city label for the
// geospatial scatter: no aggregation, no deduplication, null coordinates kept.
func GeoPoints(orders []*order.Order) *report.Table {
	table := report.NewTable("Latitude", "Longitude", "City")
	for _, o := range orders {
		table.Append(nullableFloat(o.GeoLat), nullableFloat(o.GeoLng), o.GeoCity)
	}
	return table
}

func dateOf(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func sortedDates[V any](m map[time.Time]V) []time.Time {
	dates := make([]time.Time, 0, len(m))
	for d := range m {
		dates = append(dates, d)
	}
	sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })
	return dates
}

func nullableFloat(f *float64) any {
	if f == nil {
		return nil
	}
	return *f
}
