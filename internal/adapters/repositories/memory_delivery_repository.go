package repositories

import (
	"context"

	"delivery-analytics-service/internal/domain"
)

// In-memory implementation of the DeliveryRepository port, for tests and
// local runs without a database. Slices are returned as stored, in
// ingestion order.
type MemoryDeliveryRepository struct {
	Tours []domain.Tour
	Tasks []domain.Task
}

func NewMemoryDeliveryRepository(tours []domain.Tour, tasks []domain.Task) *MemoryDeliveryRepository {
	return &MemoryDeliveryRepository{Tours: tours, Tasks: tasks}
}

func (m *MemoryDeliveryRepository) ListTours(ctx context.Context) ([]domain.Tour, error) {
	return m.Tours, nil
}

func (m *MemoryDeliveryRepository) ListTasks(ctx context.Context) ([]domain.Task, error) {
	return m.Tasks, nil
}
