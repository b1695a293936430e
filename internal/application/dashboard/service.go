package dashboard

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"ecomdash/internal/domain/order"
	"ecomdash/internal/domain/report"
	"ecomdash/pkg/logger"
)

// DataSource hands out the normalized dataset for a source key. Implemented by
// the dataset cache; mocked in tests.
type DataSource interface {
	Get(ctx context.Context, source string) ([]*order.Order, error)
}

// Options are the tunables of the chart battery.
type Options struct {
	TopCategories int
	TopCities     int
	ShippingBins  int
}

// Service runs the full derivation battery for one filter application.
type Service struct {
	data   DataSource
	source string
	opts   Options
	now    func() time.Time
	log    logger.Logger
}

// NewService wires the dashboard service. now is the clock used as the RFM
// evaluation instant; production passes time.Now, tests pass a fixed instant.
func NewService(data DataSource, source string, opts Options, now func() time.Time, log logger.Logger) *Service {
	return &Service{data: data, source: source, opts: opts, now: now, log: log}
}

// States returns the distinct customer states of the dataset, the default
// filter selection for the UI.
func (s *Service) States(ctx context.Context) ([]string, error) {
	orders, err := s.data.Get(ctx, s.source)
	if err != nil {
		return nil, fmt.Errorf("load dataset: %w", err)
	}
	return States(orders), nil
}

// BuildReport applies the state selection and computes every result table.
// A nil selection means all states; an empty (non-nil) selection is valid and
// yields an empty report.
func (s *Service) BuildReport(ctx context.Context, states []string) (*report.Report, error) {
	orders, err := s.data.Get(ctx, s.source)
	if err != nil {
		return nil, fmt.Errorf("load dataset: %w", err)
	}

	// A nil selection takes every row, including rows with a null state that
	// no explicit selection could name. An explicit selection goes through the
	// membership filter.
	filtered := orders
	if states == nil {
		states = States(orders)
	} else {
		filtered = FilterByState(orders, states)
	}
	evaluatedAt := s.now().UTC()

	started := time.Now()
	r := &report.Report{
		ID:          uuid.NewString(),
		GeneratedAt: evaluatedAt,
		States:      states,
		Summary:     Summarize(filtered),
		Charts:      s.charts(filtered, evaluatedAt),
	}

	s.log.Info("report built",
		logger.String("report_id", r.ID),
		logger.Int("states", len(states)),
		logger.Int("rows", len(filtered)),
		logger.Duration("took", time.Since(started)),
	)
	return r, nil
}

// charts runs the fixed battery in display order. Each derivation consumes the
// same immutable snapshot and none depends on another's output.
func (s *Service) charts(orders []*order.Order, evaluatedAt time.Time) []report.Chart {
	return []report.Chart{
		{
			Name:  "daily_orders",
			Spec:  report.ChartSpec{Kind: report.KindLine, Title: "Daily Orders", X: "Date", Y: "Total Orders"},
			Table: DailyOrders(orders),
		},
		{
			Name:  "daily_revenue_orders",
			Spec:  report.ChartSpec{Kind: report.KindLine, Title: "Daily Revenue vs Orders", X: "Date", Y: "Total Revenue", Y2: "Total Orders"},
			Table: DailyRevenueOrders(orders),
		},
		{
			Name:  "top_product_categories",
			Spec:  report.ChartSpec{Kind: report.KindBar, Title: fmt.Sprintf("Top %d Product Categories", s.opts.TopCategories), X: "Product Category", Y: "Frequency"},
			Table: TopProductCategories(orders, s.opts.TopCategories),
		},
		{
			Name:  "order_status",
			Spec:  report.ChartSpec{Kind: report.KindBar, Title: "Order Status Distribution", X: "Order Status", Y: "Frequency"},
			Table: OrderStatusCounts(orders),
		},
		{
			Name:  "payment_types",
			Spec:  report.ChartSpec{Kind: report.KindBar, Title: "Payment Type Distribution", X: "Payment Type", Y: "Frequency"},
			Table: PaymentTypeCounts(orders),
		},
		{
			Name:  "review_scores",
			Spec:  report.ChartSpec{Kind: report.KindBar, Title: "Review Score Distribution", X: "Review Score", Y: "Frequency"},
			Table: ReviewScoreCounts(orders),
		},
		{
			Name:  "top_seller_cities",
			Spec:  report.ChartSpec{Kind: report.KindBar, Title: fmt.Sprintf("Top %d Seller Cities", s.opts.TopCities), X: "Seller City", Y: "Frequency"},
			Table: TopSellerCities(orders, s.opts.TopCities),
		},
		{
			Name:  "top_customer_cities",
			Spec:  report.ChartSpec{Kind: report.KindBar, Title: fmt.Sprintf("Top %d Customer Cities", s.opts.TopCities), X: "Customer City", Y: "Frequency"},
			Table: TopCustomerCities(orders, s.opts.TopCities),
		},
		{
			Name:  "top_product_categories_en",
			Spec:  report.ChartSpec{Kind: report.KindBar, Title: fmt.Sprintf("Top %d Product Categories (English)", s.opts.TopCategories), X: "Product Category (EN)", Y: "Frequency"},
			Table: TopProductCategoriesEN(orders, s.opts.TopCategories),
		},
		{
			Name:  "purchase_hours",
			Spec:  report.ChartSpec{Kind: report.KindHistogram, Title: "Purchase Time Distribution", X: "Hour of Purchase", Y: "Number of Orders", Bins: 24},
			Table: PurchaseHourDistribution(orders),
		},
		{
			Name:  "shipping_durations",
			Spec:  report.ChartSpec{Kind: report.KindHistogram, Title: "Shipping Duration Distribution", X: "Shipping Duration (Days)", Y: "Number of Orders", Bins: s.opts.ShippingBins},
			Table: ShippingDurationHistogram(orders, s.opts.ShippingBins),
		},
		{
			Name:  "rfm",
			Spec:  report.ChartSpec{Kind: report.KindScatter, Title: "RFM Analysis", X: "Frequency", Y: "Monetary", Color: "Recency", Size: "Recency"},
			Table: RFM(orders, evaluatedAt),
		},
		{
			Name:  "geolocation",
			Spec:  report.ChartSpec{Kind: report.KindScatterGeo, Title: "Geospatial Analysis of Customers", Lat: "Latitude", Lon: "Longitude", Hover: "City"},
			Table: GeoPoints(orders),
		},
		{
			Name:  "state_clusters",
			Spec:  report.ChartSpec{Kind: report.KindScatter, Title: "Customer Clustering by State", X: "Total Orders", Y: "Total Revenue ($)", Color: "State", Size: "Total Revenue ($)", Hover: "State"},
			Table: StateClusters(orders),
		},
		{
			Name:  "delivery_delay_review",
			Spec:  report.ChartSpec{Kind: report.KindBar, Title: "Average Review Score by Delivery Delay Category", X: "Delivery Delay Category", Y: "Average Review Score"},
			Table: ReviewScoreByDeliveryCategory(orders),
		},
		{
			Name:  "review_status_payment",
			Spec:  report.ChartSpec{Kind: report.KindBar, Title: "Review Score Differences by Order Status and Payment Type", X: "Payment Type", Y: "Average Review Score", Color: "Order Status"},
			Table: ReviewScoreByStatusPayment(orders),
		},
	}
}
