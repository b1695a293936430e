package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	domain "ecomdash/internal/domain/order"
)

// OrderRepository stores normalized dataset rows as a queryable snapshot.
// The table is line-item grained, matching the dataset: order_id repeats.
type OrderRepository struct {
	pool *pgxpool.Pool
}

func NewOrderRepository(pool *pgxpool.Pool) *OrderRepository {
	return &OrderRepository{pool: pool}
}

var orderColumns = []string{
	"order_id", "customer_id", "status",
	"customer_city", "customer_state", "geo_city",
	"product_category", "product_category_en", "product_photos_qty",
	"price", "payment_sequential", "payment_type", "payment_installments",
	"review_score", "seller_city", "geo_lat", "geo_lng",
	"purchase_ts", "approved_at",
	"delivered_carrier_at", "delivered_customer_at", "estimated_delivery_at",
	"review_created_at", "review_answered_at",
}

func (r *OrderRepository) EnsureSchema(ctx context.Context) error {
	const stmt = `
		CREATE TABLE IF NOT EXISTS order_items (
			order_id TEXT NOT NULL,
			customer_id TEXT NOT NULL,
			status TEXT,
			customer_city TEXT,
			customer_state TEXT,
			geo_city TEXT,
			product_category TEXT,
			product_category_en TEXT,
			product_photos_qty INT,
			price NUMERIC NOT NULL,
			payment_sequential INT,
			payment_type TEXT,
			payment_installments INT,
			review_score INT,
			seller_city TEXT,
			geo_lat DOUBLE PRECISION,
			geo_lng DOUBLE PRECISION,
			purchase_ts TIMESTAMPTZ,
			approved_at TIMESTAMPTZ,
			delivered_carrier_at TIMESTAMPTZ,
			delivered_customer_at TIMESTAMPTZ,
			estimated_delivery_at TIMESTAMPTZ,
			review_created_at TIMESTAMPTZ,
			review_answered_at TIMESTAMPTZ
		);
		CREATE INDEX IF NOT EXISTS order_items_state_idx ON order_items (customer_state);
	`
	_, err := r.pool.Exec(ctx, stmt)
	return err
}

// Truncate clears the snapshot so an ingest run replaces it wholesale.
func (r *OrderRepository) Truncate(ctx context.Context) error {
	_, err := r.pool.Exec(ctx, `TRUNCATE order_items;`)
	return err
}

// CopyOrders bulk-inserts a batch of rows with the Postgres COPY protocol.
func (r *OrderRepository) CopyOrders(ctx context.Context, orders []*domain.Order) (int64, error) {
	rows := pgx.CopyFromSlice(len(orders), func(i int) ([]any, error) {
		o := orders[i]
		return []any{
			o.OrderID, o.CustomerID, o.Status,
			o.CustomerCity, o.CustomerState, o.GeoCity,
			o.ProductCategory, o.ProductCategoryEN, o.ProductPhotosQty,
			o.Price, o.PaymentSequential, o.PaymentType, o.PaymentInstallments,
			o.ReviewScore, o.SellerCity, o.GeoLat, o.GeoLng,
			o.PurchaseTimestamp, o.ApprovedAt,
			o.DeliveredCarrierDate, o.DeliveredCustomerDate, o.EstimatedDeliveryDate,
			o.ReviewCreationDate, o.ReviewAnswerTimestamp,
		}, nil
	})

	n, err := r.pool.CopyFrom(ctx, pgx.Identifier{"order_items"}, orderColumns, rows)
	if err != nil {
		return 0, fmt.Errorf("copy order rows: %w", err)
	}
	return n, nil
}

func (r *OrderRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM order_items;`).Scan(&count)
	return count, err
}
