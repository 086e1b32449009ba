package ports

import (
	"context"

	"delivery-analytics-service/internal/domain"
)

// Port: the operator-curated preparation-delay list. The engine never reads
// this directly; the orchestrator folds the entries into the filter set.
type MadDelayStore interface {
	ListMadDelays(ctx context.Context) ([]domain.MadDelay, error)
	AddMadDelay(ctx context.Context, entry domain.MadDelay) error
	RemoveMadDelay(ctx context.Context, entry domain.MadDelay) error
}
