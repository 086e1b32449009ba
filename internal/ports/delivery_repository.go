package ports

import (
	"context"

	"delivery-analytics-service/internal/domain"
)

// Port: a boundary for retrieving ingested delivery records from a data source.
type DeliveryRepository interface {
	// Return all tours in ingestion order.
	ListTours(ctx context.Context) ([]domain.Tour, error)
	// Return all tasks in ingestion order.
	ListTasks(ctx context.Context) ([]domain.Task, error)
}
