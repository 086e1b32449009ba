package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"delivery-analytics-service/internal/domain"
)

// Postgres-backed implementation of the MadDelayStore port. Entries are the
// operator-curated warehouse/day pairs whose lateness is attributed to
// upstream preparation rather than transport.
type PostgresMadStore struct{ DB *sql.DB }

func NewPostgresMadStore(db *sql.DB) *PostgresMadStore {
	return &PostgresMadStore{DB: db}
}

func (s *PostgresMadStore) ListMadDelays(ctx context.Context) ([]domain.MadDelay, error) {
	if s.DB == nil {
		return nil, errors.New("postgres mad store: DB is nil")
	}

	query := `
	SELECT warehouse, delay_date
	FROM mad_delays
	ORDER BY warehouse, delay_date;
	`
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list mad delays: query mad_delays table: %w", err)
	}
	defer rows.Close()

	entries := make([]domain.MadDelay, 0, 16)
	for rows.Next() {
		var (
			warehouse string
			date      time.Time
		)
		if err := rows.Scan(&warehouse, &date); err != nil {
			return nil, fmt.Errorf("list mad delays: scan row: %w", err)
		}
		entries = append(entries, domain.MadDelay{
			Warehouse: warehouse,
			Date:      date.Format("2006-01-02"),
		})
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list mad delays: row iteration: %w", err)
	}

	return entries, nil
}

func (s *PostgresMadStore) AddMadDelay(ctx context.Context, entry domain.MadDelay) error {
	if s.DB == nil {
		return errors.New("postgres mad store: DB is nil")
	}

	query := `
	INSERT INTO mad_delays (warehouse, delay_date)
	VALUES ($1, $2)
	ON CONFLICT (warehouse, delay_date) DO NOTHING;
	`
	if _, err := s.DB.ExecContext(ctx, query, entry.Warehouse, entry.Date); err != nil {
		return fmt.Errorf("add mad delay: insert %q: %w", entry.Key(), err)
	}
	return nil
}

func (s *PostgresMadStore) RemoveMadDelay(ctx context.Context, entry domain.MadDelay) error {
	if s.DB == nil {
		return errors.New("postgres mad store: DB is nil")
	}

	query := `
	DELETE FROM mad_delays
	WHERE warehouse = $1 AND delay_date = $2;
	`
	if _, err := s.DB.ExecContext(ctx, query, entry.Warehouse, entry.Date); err != nil {
		return fmt.Errorf("remove mad delay: delete %q: %w", entry.Key(), err)
	}
	return nil
}
