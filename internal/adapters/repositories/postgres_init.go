package repositories

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"
)

// Initialize the database schema.
func InitSchema(db *sql.DB) error {
	if db == nil {
		return errors.New("init schema: DB is nil")
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("init schema: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	createToursQuery := `
	CREATE TABLE IF NOT EXISTS tours (
		id BIGSERIAL PRIMARY KEY,
		unique_id TEXT NOT NULL UNIQUE,
		warehouse TEXT NOT NULL,
		driver TEXT NOT NULL DEFAULT '',
		planned_start TIMESTAMPTZ,
		planned_end TIMESTAMPTZ,
		realized_start TIMESTAMPTZ,
		realized_end TIMESTAMPTZ,
		capacity_weight DOUBLE PRECISION NOT NULL DEFAULT 0,
		capacity_volume DOUBLE PRECISION NOT NULL DEFAULT 0,
		realized_weight DOUBLE PRECISION NOT NULL DEFAULT 0,
		realized_volume DOUBLE PRECISION NOT NULL DEFAULT 0,
		mobile_tracked BOOLEAN NOT NULL DEFAULT FALSE
	);
	`

	createTasksQuery := `
	CREATE TABLE IF NOT EXISTS tasks (
		id BIGSERIAL PRIMARY KEY,
		tour_unique_id TEXT NOT NULL,
		sequence INTEGER NOT NULL,
		warehouse TEXT NOT NULL DEFAULT '',
		planned_arrival TIMESTAMPTZ,
		window_end TIMESTAMPTZ,
		realized_arrival TIMESTAMPTZ,
		postal_code TEXT NOT NULL DEFAULT '',
		city TEXT NOT NULL DEFAULT '',
		rating DOUBLE PRECISION,
		comment TEXT,
		weight DOUBLE PRECISION NOT NULL DEFAULT 0,
		UNIQUE (tour_unique_id, sequence)
	);
	`

	createMadDelaysQuery := `
	CREATE TABLE IF NOT EXISTS mad_delays (
		warehouse TEXT NOT NULL,
		delay_date DATE NOT NULL,
		PRIMARY KEY (warehouse, delay_date)
	);
	`

	createIndexQuery := `
	CREATE INDEX IF NOT EXISTS idx_tasks_tour_unique_id
	ON tasks(tour_unique_id);
	`

	statements := []string{
		createToursQuery,
		createTasksQuery,
		createMadDelaysQuery,
		createIndexQuery,
	}

	for i, stmt := range statements {
		if _, err := tx.Exec(stmt); err != nil {
			return fmt.Errorf("init schema: exec statement #%d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("init schema: commit tx: %w", err)
	}

	return nil
}

type TourSeed struct {
	UniqueID       string     `json:"unique_id"`
	Warehouse      string     `json:"warehouse"`
	Driver         string     `json:"driver"`
	PlannedStart   *time.Time `json:"planned_start"`
	PlannedEnd     *time.Time `json:"planned_end"`
	RealizedStart  *time.Time `json:"realized_start"`
	RealizedEnd    *time.Time `json:"realized_end"`
	CapacityWeight float64    `json:"capacity_weight"`
	CapacityVolume float64    `json:"capacity_volume"`
	RealizedWeight float64    `json:"realized_weight"`
	RealizedVolume float64    `json:"realized_volume"`
	MobileTracked  bool       `json:"mobile_tracked"`
}

type TaskSeed struct {
	TourUniqueID    string     `json:"tour_unique_id"`
	Sequence        int        `json:"sequence"`
	Warehouse       string     `json:"warehouse"`
	PlannedArrival  *time.Time `json:"planned_arrival"`
	WindowEnd       *time.Time `json:"window_end"`
	RealizedArrival *time.Time `json:"realized_arrival"`
	PostalCode      string     `json:"postal_code"`
	City            string     `json:"city"`
	Rating          *float64   `json:"rating"`
	Comment         *string    `json:"comment"`
	Weight          float64    `json:"weight"`
}

// Populate the database with tour and task data from JSON files.
// Ingestion order follows file order; reseeding replaces matching keys.
func SeedFromJSON(db *sql.DB, toursPath, tasksPath string) error {
	tourBytes, err := os.ReadFile(toursPath)
	if err != nil {
		return fmt.Errorf("seed deliveries: read %q: %w", toursPath, err)
	}
	var tourSeeds []TourSeed
	if err := json.Unmarshal(tourBytes, &tourSeeds); err != nil {
		return fmt.Errorf("seed deliveries: parse tours json: %w", err)
	}

	taskBytes, err := os.ReadFile(tasksPath)
	if err != nil {
		return fmt.Errorf("seed deliveries: read %q: %w", tasksPath, err)
	}
	var taskSeeds []TaskSeed
	if err := json.Unmarshal(taskBytes, &taskSeeds); err != nil {
		return fmt.Errorf("seed deliveries: parse tasks json: %w", err)
	}

	for i, t := range tourSeeds {
		if strings.TrimSpace(t.UniqueID) == "" {
			return fmt.Errorf("seed deliveries: tour at index %d: unique_id cannot be empty", i+1)
		}
		if strings.TrimSpace(t.Warehouse) == "" {
			return fmt.Errorf("seed deliveries: tour %q: warehouse cannot be empty", t.UniqueID)
		}
	}
	for i, t := range taskSeeds {
		if strings.TrimSpace(t.TourUniqueID) == "" {
			return fmt.Errorf("seed deliveries: task at index %d: tour_unique_id cannot be empty", i+1)
		}
		if t.Sequence <= 0 {
			return fmt.Errorf("seed deliveries: task at index %d: invalid sequence %d", i+1, t.Sequence)
		}
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("seed deliveries: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	tourQuery := `
	INSERT INTO tours (
		unique_id, warehouse, driver,
		planned_start, planned_end, realized_start, realized_end,
		capacity_weight, capacity_volume, realized_weight, realized_volume,
		mobile_tracked
	)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	ON CONFLICT (unique_id) DO UPDATE SET
		warehouse = EXCLUDED.warehouse,
		driver = EXCLUDED.driver,
		planned_start = EXCLUDED.planned_start,
		planned_end = EXCLUDED.planned_end,
		realized_start = EXCLUDED.realized_start,
		realized_end = EXCLUDED.realized_end,
		capacity_weight = EXCLUDED.capacity_weight,
		capacity_volume = EXCLUDED.capacity_volume,
		realized_weight = EXCLUDED.realized_weight,
		realized_volume = EXCLUDED.realized_volume,
		mobile_tracked = EXCLUDED.mobile_tracked;
	`
	tourStmt, err := tx.Prepare(tourQuery)
	if err != nil {
		return fmt.Errorf("seed deliveries: prepare tour insert: %w", err)
	}
	defer tourStmt.Close()

	for _, t := range tourSeeds {
		_, err := tourStmt.Exec(
			t.UniqueID, t.Warehouse, t.Driver,
			t.PlannedStart, t.PlannedEnd, t.RealizedStart, t.RealizedEnd,
			t.CapacityWeight, t.CapacityVolume, t.RealizedWeight, t.RealizedVolume,
			t.MobileTracked,
		)
		if err != nil {
			return fmt.Errorf("seed deliveries: insert tour %q: %w", t.UniqueID, err)
		}
	}

	taskQuery := `
	INSERT INTO tasks (
		tour_unique_id, sequence, warehouse,
		planned_arrival, window_end, realized_arrival,
		postal_code, city, rating, comment, weight
	)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	ON CONFLICT (tour_unique_id, sequence) DO UPDATE SET
		warehouse = EXCLUDED.warehouse,
		planned_arrival = EXCLUDED.planned_arrival,
		window_end = EXCLUDED.window_end,
		realized_arrival = EXCLUDED.realized_arrival,
		postal_code = EXCLUDED.postal_code,
		city = EXCLUDED.city,
		rating = EXCLUDED.rating,
		comment = EXCLUDED.comment,
		weight = EXCLUDED.weight;
	`
	taskStmt, err := tx.Prepare(taskQuery)
	if err != nil {
		return fmt.Errorf("seed deliveries: prepare task insert: %w", err)
	}
	defer taskStmt.Close()

	for _, t := range taskSeeds {
		_, err := taskStmt.Exec(
			t.TourUniqueID, t.Sequence, t.Warehouse,
			t.PlannedArrival, t.WindowEnd, t.RealizedArrival,
			t.PostalCode, t.City, t.Rating, t.Comment, t.Weight,
		)
		if err != nil {
			return fmt.Errorf("seed deliveries: insert task %s#%d: %w", t.TourUniqueID, t.Sequence, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("seed deliveries: commit tx: %w", err)
	}

	return nil
}

func timePtr(v sql.NullTime) *time.Time {
	if !v.Valid {
		return nil
	}
	t := v.Time
	return &t
}
