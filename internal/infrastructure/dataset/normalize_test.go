package dataset

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// parsedFixture builds a ParseResult with the full dataset schema, filling
// unlisted columns with empty strings.
func parsedFixture(rows ...map[string]string) *ParseResult {
	result := &ParseResult{Headers: requiredColumns}
	for _, row := range rows {
		rec := make(Record, len(requiredColumns))
		for _, col := range requiredColumns {
			rec[col] = row[col]
		}
		result.Records = append(result.Records, rec)
	}
	return result
}

func TestNormalize_MissingColumn(t *testing.T) {
	parsed := &ParseResult{Headers: []string{"order_id", "customer_id"}}

	_, err := Normalize(parsed)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "price")
}

func TestNormalize_TypedCoercion(t *testing.T) {
	parsed := parsedFixture(map[string]string{
		colOrderID:           "o1",
		colCustomerID:        "c1",
		colStatus:            "delivered",
		colCustomerState:     " SP ",
		colPrice:             "129.90",
		colReviewScore:       "5.0",
		colPaymentSequential: "1",
		colGeoLat:            "-23.55",
		colGeoLng:            "-46.63",
		colPurchaseTimestamp: "2018-01-01 14:30:00",
	})

	orders, err := Normalize(parsed)
	require.NoError(t, err)
	require.Len(t, orders, 1)

	o := orders[0]
	assert.Equal(t, "o1", o.OrderID)
	assert.Equal(t, "SP", o.CustomerState)
	assert.Equal(t, 129.90, o.Price)
	require.NotNil(t, o.ReviewScore)
	assert.Equal(t, 5, *o.ReviewScore)
	require.NotNil(t, o.GeoLat)
	assert.Equal(t, -23.55, *o.GeoLat)

	want := time.Date(2018, 1, 1, 14, 30, 0, 0, time.UTC)
	require.NotNil(t, o.PurchaseTimestamp)
	assert.True(t, o.PurchaseTimestamp.Equal(want))

	// Untouched columns stay null.
	assert.Nil(t, o.PaymentInstallments)
	assert.Nil(t, o.ApprovedAt)
}

func TestNormalize_MalformedCellsBecomeNull(t *testing.T) {
	parsed := parsedFixture(map[string]string{
		colOrderID:             "o1",
		colPurchaseTimestamp:   "not a date",
		colReviewScore:         "great",
		colPaymentInstallments: "2.5", // fractional: not an integer, so null
		colPrice:               "",    // missing price contributes 0 to sums
		colGeoLat:              "north",
	})

	orders, err := Normalize(parsed)
	require.NoError(t, err)

	o := orders[0]
	assert.Nil(t, o.PurchaseTimestamp)
	assert.Nil(t, o.ReviewScore)
	assert.Nil(t, o.PaymentInstallments)
	assert.Nil(t, o.GeoLat)
	assert.Equal(t, 0.0, o.Price)
}

func TestNormalize_DoesNotMutateInput(t *testing.T) {
	parsed := parsedFixture(map[string]string{
		colOrderID: "o1",
		colPrice:   "10",
	})

	_, err := Normalize(parsed)
	require.NoError(t, err)

	assert.Equal(t, "o1", parsed.Records[0][colOrderID])
	assert.Equal(t, "10", parsed.Records[0][colPrice])
}

// Re-normalizing canonically rendered values yields the same typed row, so
// normalization is stable under re-application.
func TestNormalize_StableUnderReapplication(t *testing.T) {
	parsed := parsedFixture(map[string]string{
		colOrderID:           "o1",
		colCustomerID:        "c1",
		colPrice:             "42.50",
		colReviewScore:       "4",
		colPurchaseTimestamp: "2018-06-15 09:00:00",
	})

	first, err := Normalize(parsed)
	require.NoError(t, err)

	rendered := parsedFixture(map[string]string{
		colOrderID:           first[0].OrderID,
		colCustomerID:        first[0].CustomerID,
		colPrice:             "42.50",
		colReviewScore:       "4",
		colPurchaseTimestamp: first[0].PurchaseTimestamp.Format("2006-01-02 15:04:05"),
	})

	second, err := Normalize(rendered)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestParseTimestamp_Layouts(t *testing.T) {
	tests := []struct {
		in   string
		want time.Time
	}{
		{in: "2018-01-01 14:30:00", want: time.Date(2018, 1, 1, 14, 30, 0, 0, time.UTC)},
		{in: "2018-01-01T14:30:00Z", want: time.Date(2018, 1, 1, 14, 30, 0, 0, time.UTC)},
		{in: "2018-01-01", want: time.Date(2018, 1, 1, 0, 0, 0, 0, time.UTC)},
	}

	for _, tt := range tests {
		got := parseTimestamp(tt.in)
		require.NotNil(t, got, "input %q", tt.in)
		assert.True(t, got.Equal(tt.want), "input %q", tt.in)
	}

	assert.Nil(t, parseTimestamp(""))
	assert.Nil(t, parseTimestamp("01/02/2018"))
}
