package dataset

import (
	"context"

	"ecomdash/internal/domain/order"
	"ecomdash/pkg/logger"
)

// Loader produces a normalized dataset from a source URL or path.
type Loader interface {
	Load(ctx context.Context, source string) ([]*order.Order, error)
}

// CSVLoader fetches, parses, and normalizes the CSV dataset.
type CSVLoader struct {
	client *Client
	log    logger.Logger
}

func NewCSVLoader(client *Client, log logger.Logger) *CSVLoader {
	return &CSVLoader{client: client, log: log}
}

func (l *CSVLoader) Load(ctx context.Context, source string) ([]*order.Order, error) {
	data, err := l.client.Fetch(ctx, source)
	if err != nil {
		return nil, err
	}

	parsed, err := Parse(data)
	if err != nil {
		return nil, err
	}
	if parsed.Dropped > 0 {
		l.log.Warn("dropped malformed dataset rows",
			logger.String("source", source),
			logger.Int("dropped", parsed.Dropped),
		)
	}

	orders, err := Normalize(parsed)
	if err != nil {
		return nil, err
	}

	l.log.Info("dataset loaded",
		logger.String("source", source),
		logger.Int("rows", len(orders)),
	)
	return orders, nil
}
