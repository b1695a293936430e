package order

import "time"

// Order is one row of the joined e-commerce dataset. The dataset is a line-item
// level join: the same order id appears on multiple rows (one per item/payment)
// and the same customer id appears across orders, so neither field is unique.
//
// Nullable columns are pointers; nil means the source cell was missing or could
// not be coerced. Categorical fields use the empty string as null.
type Order struct {
	OrderID    string
	CustomerID string

	Status            string
	CustomerCity      string
	CustomerState     string
	GeoCity           string
	ProductCategory   string
	ProductCategoryEN string
	PaymentType       string
	SellerCity        string

	Price               float64
	ReviewScore         *int
	PaymentSequential   *int
	PaymentInstallments *int
	ProductPhotosQty    *int

	GeoLat *float64
	GeoLng *float64

	PurchaseTimestamp     *time.Time
	ApprovedAt            *time.Time
	DeliveredCarrierDate  *time.Time
	DeliveredCustomerDate *time.Time
	EstimatedDeliveryDate *time.Time
	ReviewCreationDate    *time.Time
	ReviewAnswerTimestamp *time.Time
}
