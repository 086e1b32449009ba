package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"delivery-analytics-service/internal/domain"
)

// Postgres-backed implementation of the DeliveryRepository port.
type PostgresDeliveryRepository struct{ DB *sql.DB }

func NewPostgresDeliveryRepository(db *sql.DB) *PostgresDeliveryRepository {
	return &PostgresDeliveryRepository{DB: db}
}

// Return all tours in ingestion order.
func (r *PostgresDeliveryRepository) ListTours(ctx context.Context) ([]domain.Tour, error) {
	if r.DB == nil {
		return nil, errors.New("postgres delivery repository: DB is nil")
	}

	query := `
	SELECT
		unique_id,
		warehouse,
		driver,
		planned_start,
		planned_end,
		realized_start,
		realized_end,
		capacity_weight,
		capacity_volume,
		realized_weight,
		realized_volume,
		mobile_tracked
	FROM tours
	ORDER BY id;
	`
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list tours: query tours table: %w", err)
	}
	defer rows.Close()

	tours := make([]domain.Tour, 0, 64)
	for rows.Next() {
		var (
			t            domain.Tour
			plannedStart sql.NullTime
			plannedEnd   sql.NullTime
			realStart    sql.NullTime
			realEnd      sql.NullTime
		)
		err := rows.Scan(
			&t.UniqueID,
			&t.Warehouse,
			&t.Driver,
			&plannedStart,
			&plannedEnd,
			&realStart,
			&realEnd,
			&t.CapacityWeight,
			&t.CapacityVolume,
			&t.RealizedWeight,
			&t.RealizedVolume,
			&t.MobileTracked,
		)
		if err != nil {
			return nil, fmt.Errorf("list tours: scan row: %w", err)
		}

		t.PlannedStart = timePtr(plannedStart)
		t.PlannedEnd = timePtr(plannedEnd)
		t.RealizedStart = timePtr(realStart)
		t.RealizedEnd = timePtr(realEnd)
		tours = append(tours, t)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list tours: row iteration: %w", err)
	}

	return tours, nil
}

// Return all tasks in ingestion order.
func (r *PostgresDeliveryRepository) ListTasks(ctx context.Context) ([]domain.Task, error) {
	if r.DB == nil {
		return nil, errors.New("postgres delivery repository: DB is nil")
	}

	query := `
	SELECT
		tour_unique_id,
		sequence,
		warehouse,
		planned_arrival,
		window_end,
		realized_arrival,
		postal_code,
		city,
		rating,
		comment,
		weight
	FROM tasks
	ORDER BY id;
	`
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list tasks: query tasks table: %w", err)
	}
	defer rows.Close()

	tasks := make([]domain.Task, 0, 256)
	for rows.Next() {
		var (
			t         domain.Task
			planned   sql.NullTime
			windowEnd sql.NullTime
			realized  sql.NullTime
			rating    sql.NullFloat64
			comment   sql.NullString
		)
		err := rows.Scan(
			&t.TourUniqueID,
			&t.Sequence,
			&t.Warehouse,
			&planned,
			&windowEnd,
			&realized,
			&t.PostalCode,
			&t.City,
			&rating,
			&comment,
			&t.Weight,
		)
		if err != nil {
			return nil, fmt.Errorf("list tasks: scan row: %w", err)
		}

		t.PlannedArrival = timePtr(planned)
		t.WindowEnd = timePtr(windowEnd)
		t.RealizedArrival = timePtr(realized)
		if rating.Valid {
			t.Rating = &rating.Float64
		}
		if comment.Valid {
			t.Comment = &comment.String
		}
		tasks = append(tasks, t)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list tasks: row iteration: %w", err)
	}

	return tasks, nil
}
