package dashboard

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ecomdash/internal/domain/order"
)

func TestSummarize(t *testing.T) {
	orders := []*order.Order{
		row("o1", "c1", "SP", 100, nil),
		row("o1", "c1", "SP", 50, nil), // second line item: same order, own price
		row("o2", "c2", "RJ", 25, nil),
	}

	s := Summarize(orders)

	assert.Equal(t, 2, s.TotalOrders)
	assert.Equal(t, 175.0, s.TotalRevenue)
}

func TestDailyOrders_WorkedExample(t *testing.T) {
	// Three rows on Jan 1 carrying two distinct orders, one row on Jan 2.
	orders := []*order.Order{
		row("o1", "c1", "SP", 10, ts("2018-01-01 08:00:00")),
		row("o1", "c1", "SP", 10, ts("2018-01-01 08:00:00")),
		row("o2", "c2", "SP", 10, ts("2018-01-01 21:30:00")),
		row("o3", "c3", "SP", 10, ts("2018-01-02 12:00:00")),
	}

	table := DailyOrders(orders)

	require.Equal(t, 2, table.Len())
	assert.Equal(t, []any{"2018-01-01", 2}, table.Rows[0])
	assert.Equal(t, []any{"2018-01-02", 1}, table.Rows[1])
}

func TestDailyOrders_SkipsRowsWithoutTimestamp(t *testing.T) {
	orders := []*order.Order{
		row("o1", "c1", "SP", 10, nil),
		row("o2", "c2", "SP", 10, ts("2018-01-05 10:00:00")),
	}

	table := DailyOrders(orders)

	require.Equal(t, 1, table.Len())
	assert.Equal(t, []any{"2018-01-05", 1}, table.Rows[0])
}

func TestDailyRevenueOrders_SeriesAlignedByDate(t *testing.T) {
	orders := []*order.Order{
		row("o1", "c1", "SP", 100, ts("2018-01-01 08:00:00")),
		row("o2", "c2", "SP", 40, ts("2018-01-01 09:00:00")),
		row("o3", "c3", "SP", 60, ts("2018-01-03 09:00:00")),
	}

	table := DailyRevenueOrders(orders)

	require.Equal(t, 2, table.Len())
	assert.Equal(t, []any{"2018-01-01", 140.0, 2}, table.Rows[0])
	assert.Equal(t, []any{"2018-01-03", 60.0, 1}, table.Rows[1])
}

func TestStateClusters(t *testing.T) {
	orders := []*order.Order{
		row("o1", "c1", "SP", 100, nil),
		row("o1", "c1", "SP", 50, nil),
		row("o2", "c2", "RJ", 30, nil),
		row("o3", "c3", "", 99, nil), // null state excluded from grouping
	}

	table := StateClusters(orders)

	require.Equal(t, 2, table.Len())
	assert.Equal(t, []any{"RJ", 30.0, 1}, table.Rows[0])
	assert.Equal(t, []any{"SP", 150.0, 1}, table.Rows[1])
}

func TestGeoPoints_RowLevelPassthrough(t *testing.T) {
	orders := []*order.Order{
		{OrderID: "o1", GeoLat: floatPtr(-23.5), GeoLng: floatPtr(-46.6), GeoCity: "sao paulo"},
		{OrderID: "o2"}, // null coordinates kept, not dropped
		{OrderID: "o1", GeoLat: floatPtr(-23.5), GeoLng: floatPtr(-46.6), GeoCity: "sao paulo"},
	}

	table := GeoPoints(orders)

	require.Equal(t, 3, table.Len())
	assert.Equal(t, []any{-23.5, -46.6, "sao paulo"}, table.Rows[0])
	assert.Equal(t, []any{nil, nil, ""}, table.Rows[1])
}

func TestDistinctOrderCounts_SkipNullOrderID(t *testing.T) {
	orders := []*order.Order{
		row("o1", "c1", "SP", 100, ts("2018-01-01 08:00:00")),
		row("", "c2", "SP", 25, ts("2018-01-01 09:00:00")),
	}

	// The null-id row adds revenue everywhere but never a distinct order.
	assert.Equal(t, 1, Summarize(orders).TotalOrders)
	assert.Equal(t, []any{"2018-01-01", 1}, DailyOrders(orders).Rows[0])
	assert.Equal(t, []any{"2018-01-01", 125.0, 1}, DailyRevenueOrders(orders).Rows[0])
	assert.Equal(t, []any{"SP", 125.0, 1}, StateClusters(orders).Rows[0])
}

func TestDerivations_EmptyInput(t *testing.T) {
	var orders []*order.Order

	assert.Equal(t, 0, Summarize(orders).TotalOrders)
	assert.Equal(t, 0, DailyOrders(orders).Len())
	assert.Equal(t, 0, DailyRevenueOrders(orders).Len())
	assert.Equal(t, 0, StateClusters(orders).Len())
	assert.Equal(t, 0, GeoPoints(orders).Len())
	assert.Equal(t, 0, TopProductCategories(orders, 10).Len())
	assert.Equal(t, 0, ShippingDurationHistogram(orders, 30).Len())
	assert.Equal(t, 0, RFM(orders, *ts("2018-06-01 00:00:00")).Len())
	assert.Equal(t, 0, ReviewScoreByDeliveryCategory(orders).Len())
	assert.Equal(t, 0, ReviewScoreByStatusPayment(orders).Len())
	// The hour distribution keeps its fixed 24 buckets, all zero.
	hours := PurchaseHourDistribution(orders)
	require.Equal(t, 24, hours.Len())
	assert.Equal(t, []any{0, 0}, hours.Rows[0])
}
