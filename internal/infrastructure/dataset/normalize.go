package dataset

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"ecomdash/internal/domain/order"
)

// Column names as they appear in the published dataset. The _x/_y suffixes are
// artifacts of the upstream table join and are part of the file format.
const (
	colOrderID             = "order_id"
	colCustomerID          = "customer_id"
	colStatus              = "order_status_x"
	colCustomerCity        = "customer_city_x"
	colCustomerState       = "customer_state_y"
	colGeoCity             = "customer_city_y"
	colProductCategory     = "product_category_name"
	colProductCategoryEN   = "product_category_name_english"
	colProductPhotosQty    = "product_photos_qty"
	colPrice               = "price"
	colPaymentSequential   = "payment_sequential"
	colPaymentType         = "payment_type"
	colPaymentInstallments = "payment_installments"
	colReviewScore         = "review_score"
	colSellerCity          = "seller_city"
	colGeoLat              = "geolocation_lat"
	colGeoLng              = "geolocation_lng"

	colPurchaseTimestamp     = "order_purchase_timestamp"
	colApprovedAt            = "order_approved_at"
	colDeliveredCarrierDate  = "order_delivered_carrier_date"
	colDeliveredCustomerDate = "order_delivered_customer_date"
	colEstimatedDeliveryDate = "order_estimated_delivery_date"
	colReviewCreationDate    = "review_creation_date"
	colReviewAnswerTimestamp = "review_answer_timestamp"
)

// requiredColumns is the fixed schema the normalizer depends on. Checking it
// against the parsed header up front turns a schema drift into one clear error
// instead of silently empty charts.
var requiredColumns = []string{
	colOrderID, colCustomerID, colStatus,
	colCustomerCity, colCustomerState, colGeoCity,
	colProductCategory, colProductCategoryEN, colProductPhotosQty,
	colPrice, colPaymentSequential, colPaymentType, colPaymentInstallments,
	colReviewScore, colSellerCity, colGeoLat, colGeoLng,
	colPurchaseTimestamp, colApprovedAt,
	colDeliveredCarrierDate, colDeliveredCustomerDate, colEstimatedDeliveryDate,
	colReviewCreationDate, colReviewAnswerTimestamp,
}

// timestampLayouts are tried in order by the tolerant timestamp parser. The
// dataset uses "2006-01-02 15:04:05"; the other layouts keep re-normalization
// of already-canonical values stable.
var timestampLayouts = []string{
	"2006-01-02 15:04:05",
	time.RFC3339,
	"2006-01-02",
}

// Normalize coerces parsed CSV records into typed order rows. Individual cells
// that fail coercion become nil and never abort the run; the input records are
// not modified. The only error is a header missing a declared column.
func Normalize(parsed *ParseResult) ([]*order.Order, error) {
	if err := checkColumns(parsed.Headers); err != nil {
		return nil, err
	}

	orders := make([]*order.Order, 0, len(parsed.Records))
	for _, rec := range parsed.Records {
		orders = append(orders, &order.Order{
			OrderID:    strings.TrimSpace(rec[colOrderID]),
			CustomerID: strings.TrimSpace(rec[colCustomerID]),

			Status:            strings.TrimSpace(rec[colStatus]),
			CustomerCity:      strings.TrimSpace(rec[colCustomerCity]),
			CustomerState:     strings.TrimSpace(rec[colCustomerState]),
			GeoCity:           strings.TrimSpace(rec[colGeoCity]),
			ProductCategory:   strings.TrimSpace(rec[colProductCategory]),
			ProductCategoryEN: strings.TrimSpace(rec[colProductCategoryEN]),
			PaymentType:       strings.TrimSpace(rec[colPaymentType]),
			SellerCity:        strings.TrimSpace(rec[colSellerCity]),

			Price:               parseFloat(rec[colPrice]),
			ReviewScore:         parseNullableInt(rec[colReviewScore]),
			PaymentSequential:   parseNullableInt(rec[colPaymentSequential]),
			PaymentInstallments: parseNullableInt(rec[colPaymentInstallments]),
			ProductPhotosQty:    parseNullableInt(rec[colProductPhotosQty]),

			GeoLat: parseNullableFloat(rec[colGeoLat]),
			GeoLng: parseNullableFloat(rec[colGeoLng]),

			PurchaseTimestamp:     parseTimestamp(rec[colPurchaseTimestamp]),
			ApprovedAt:            parseTimestamp(rec[colApprovedAt]),
			DeliveredCarrierDate:  parseTimestamp(rec[colDeliveredCarrierDate]),
			DeliveredCustomerDate: parseTimestamp(rec[colDeliveredCustomerDate]),
			EstimatedDeliveryDate: parseTimestamp(rec[colEstimatedDeliveryDate]),
			ReviewCreationDate:    parseTimestamp(rec[colReviewCreationDate]),
			ReviewAnswerTimestamp: parseTimestamp(rec[colReviewAnswerTimestamp]),
		})
	}
	return orders, nil
}

func checkColumns(headers []string) error {
	present := make(map[string]struct{}, len(headers))
	for _, h := range headers {
		present[h] = struct{}{}
	}
	var missing []string
	for _, col := range requiredColumns {
		if _, ok := present[col]; !ok {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("dataset is missing columns: %s", strings.Join(missing, ", "))
	}
	return nil
}

// parseTimestamp coerces a cell to a UTC timestamp, nil when unparseable.
func parseTimestamp(s string) *time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	for _, layout := range timestampLayouts {
		if t, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
			t = t.UTC()
			return &t
		}
	}
	return nil
}

// parseNullableInt keeps null distinct from zero: a missing or non-numeric
// cell is nil, never 0.
func parseNullableInt(s string) *int {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	// The dataset writes integer columns as floats ("5.0") after the join.
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	n := int(f)
	if float64(n) != f {
		return nil
	}
	return &n
}

func parseNullableFloat(s string) *float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	return &f
}

// parseFloat is for the price column, where a missing value contributes
// nothing to any sum; 0 is the identity for every consumer.
func parseFloat(s string) float64 {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0
	}
	return f
}
