package ports

import (
	"context"

	"delivery-analytics-service/internal/domain"
)

// Port: a cache for computed analysis results, keyed by a digest of the
// canonical filter encoding. A miss returns ok=false with a nil error.
type ResultCache interface {
	GetResult(ctx context.Context, key string) (*domain.AnalysisResult, bool, error)
	SetResult(ctx context.Context, key string, result *domain.AnalysisResult) error
}
