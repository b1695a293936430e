package dashboard

import (
	"sort"
	"time"

	"ecomdash/internal/domain/order"
	"ecomdash/internal/domain/report"
)

// RFM computes recency/frequency/monetary per customer. The evaluation instant
// is a parameter, not a wall-clock read, so the derivation is reproducible:
// recency is evaluatedAt minus the customer's latest purchase in whole days,
// frequency the distinct order count, monetary the price sum over the
// customer's rows. Customers whose rows all lack a purchase timestamp get a
// null recency. Rows ordered by customer id.
func RFM(orders []*order.Order, evaluatedAt time.Time) *report.Table {
	type customer struct {
		lastPurchase *time.Time
		orders       map[string]struct{}
		monetary     float64
	}

	byCustomer := make(map[string]*customer)
	for _, o := range orders {
		if o.CustomerID == "" {
			continue
		}
		c := byCustomer[o.CustomerID]
		if c == nil {
			c = &customer{orders: make(map[string]struct{})}
			byCustomer[o.CustomerID] = c
		}
		if o.OrderID != "" {
			c.orders[o.OrderID] = struct{}{}
		}
		c.monetary += o.Price
		if o.PurchaseTimestamp != nil {
			if c.lastPurchase == nil || o.PurchaseTimestamp.After(*c.lastPurchase) {
				c.lastPurchase = o.PurchaseTimestamp
			}
		}
	}

	ids := make([]string, 0, len(byCustomer))
	for id := range byCustomer {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	table := report.NewTable("Customer ID", "Recency", "Frequency", "Monetary")
	for _, id := range ids {
		c := byCustomer[id]
		var recency any
		if c.lastPurchase != nil {
			recency = order.DaysBetween(*c.lastPurchase, evaluatedAt)
		}
		table.Append(id, recency, len(c.orders), c.monetary)
	}
	return table
}
