package order

import (
	"math"
	"time"
)

// DeliveryCategory labels how an order's actual delivery compares with the
// estimate promised to the customer.
type DeliveryCategory string

const (
	DeliveredOnTime    DeliveryCategory = "On Time"
	DelayedUpToTwoDays DeliveryCategory = "Delayed 1-2 Days"
	DelayedOverTwoDays DeliveryCategory = "Delayed More Than 2 Days"
)

// DeliveryCategories is the fixed display order of the categories.
var DeliveryCategories = []DeliveryCategory{
	DeliveredOnTime,
	DelayedUpToTwoDays,
	DelayedOverTwoDays,
}

// ClassifyDelay maps a delivery delay in whole days to its category:
// delay <= 0 is on time, 0 < delay <= 2 is a short delay, delay > 2 is late.
func ClassifyDelay(days int) DeliveryCategory {
	switch {
	case days <= 0:
		return DeliveredOnTime
	case days <= 2:
		return DelayedUpToTwoDays
	default:
		return DelayedOverTwoDays
	}
}

// DeliveryDelayDays returns customer-delivered minus estimated-delivery in
// whole days. The second return is false when either date is missing.
func (o *Order) DeliveryDelayDays() (int, bool) {
	if o.DeliveredCustomerDate == nil || o.EstimatedDeliveryDate == nil {
		return 0, false
	}
	return DaysBetween(*o.EstimatedDeliveryDate, *o.DeliveredCustomerDate), true
}

// DeliveryCategory classifies the row's delivery delay; false when the
// underlying dates are missing and no category applies.
func (o *Order) DeliveryCategory() (DeliveryCategory, bool) {
	days, ok := o.DeliveryDelayDays()
	if !ok {
		return "", false
	}
	return ClassifyDelay(days), true
}

// ShippingDays returns carrier-handoff minus customer-delivery in whole days.
// The subtraction runs in this direction on purpose: it reproduces the values
// the dashboard has always displayed, so the result is typically negative.
// The second return is false when either date is missing.
func (o *Order) ShippingDays() (int, bool) {
	if o.DeliveredCarrierDate == nil || o.DeliveredCustomerDate == nil {
		return 0, false
	}
	return DaysBetween(*o.DeliveredCustomerDate, *o.DeliveredCarrierDate), true
}

// DaysBetween returns to minus from in whole days, flooring toward negative
// infinity, so -36h is -2 days, not -1.
func DaysBetween(from, to time.Time) int {
	return int(math.Floor(to.Sub(from).Hours() / 24))
}
