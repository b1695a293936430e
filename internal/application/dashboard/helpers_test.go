package dashboard

import (
	"time"

	"ecomdash/internal/domain/order"
)

func ts(value string) *time.Time {
	t, err := time.ParseInLocation("2006-01-02 15:04:05", value, time.UTC)
	if err != nil {
		panic(err)
	}
	return &t
}

func intPtr(n int) *int {
	return &n
}

func floatPtr(f float64) *float64 {
	return &f
}

// row is a compact order constructor for tests that only care about the
// identifiers, state, price, and purchase time.
func row(orderID, customerID, state string, price float64, purchase *time.Time) *order.Order {
	return &order.Order{
		OrderID:           orderID,
		CustomerID:        customerID,
		CustomerState:     state,
		Price:             price,
		PurchaseTimestamp: purchase,
	}
}
