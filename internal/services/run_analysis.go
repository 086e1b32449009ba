package services

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"log"

	"delivery-analytics-service/internal/domain"
	"delivery-analytics-service/internal/lookup"
	"delivery-analytics-service/internal/platform/obs"
	"delivery-analytics-service/internal/ports"
)

// RunAnalysisRequest carries the filter set for one analysis run.
type RunAnalysisRequest struct {
	Filters domain.FilterSet
}

// RunAnalysis orchestrates one full analysis: load records, fold the
// operator-curated MAD list into the filters, merge, filter, analyze.
//
// Results are cached by a digest of the canonical filter encoding. Cache
// failures degrade to recomputation and are logged, never surfaced; the
// cache is an optimization, not a dependency.
func RunAnalysis(
	ctx context.Context,
	req RunAnalysisRequest,
	repo ports.DeliveryRepository,
	mads ports.MadDelayStore,
	cache ports.ResultCache,
	depots *lookup.DepotTable,
	carriers *lookup.CarrierTable,
) (result *domain.AnalysisResult, err error) {
	defer obs.Time(ctx, "run_analysis")(&err)

	filters := req.Filters

	// The exclusion list is input data to the engine, never engine state.
	// Caller-supplied entries take precedence over the stored list.
	if filters.ExcludeMadDelays && len(filters.MadDelays) == 0 && mads != nil {
		entries, err := mads.ListMadDelays(ctx)
		if err != nil {
			return nil, fmt.Errorf("run analysis: list mad delays: %w", err)
		}
		filters.MadDelays = make(map[string]struct{}, len(entries))
		for _, e := range entries {
			filters.MadDelays[e.Key()] = struct{}{}
		}
	}

	key := cacheKey(filters)
	if cache != nil {
		cached, ok, err := cache.GetResult(ctx, key)
		if err != nil {
			log.Printf("op=run_analysis cache_get_failed key=%s err=%v", key, err)
		} else if ok {
			return cached, nil
		}
	}

	tours, err := repo.ListTours(ctx)
	if err != nil {
		return nil, fmt.Errorf("run analysis: list tours: %w", err)
	}
	tasks, err := repo.ListTasks(ctx)
	if err != nil {
		return nil, fmt.Errorf("run analysis: list tasks: %w", err)
	}

	records := MergeRecords(tours, tasks)
	filtered := ApplyFilters(records, filters, depots)

	result, err = Analyze(filtered, filters, depots, carriers)
	if err != nil {
		return nil, fmt.Errorf("run analysis: %w", err)
	}

	if cache != nil {
		if err := cache.SetResult(ctx, key, result); err != nil {
			log.Printf("op=run_analysis cache_set_failed key=%s err=%v", key, err)
		}
	}

	return result, nil
}

// cacheKey digests the canonical filter encoding so that identical filter
// sets always hit the same cache entry.
func cacheKey(filters domain.FilterSet) string {
	sum := sha256.Sum256([]byte(filters.Canonical()))
	return "analysis:" + hex.EncodeToString(sum[:])
}
