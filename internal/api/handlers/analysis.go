package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	"strings"

	"delivery-analytics-service/internal/api/dto"
	"delivery-analytics-service/internal/domain"
	"delivery-analytics-service/internal/lookup"
	"delivery-analytics-service/internal/ports"
	"delivery-analytics-service/internal/services"
)

type AnalysisHandler struct {
	Repo     ports.DeliveryRepository
	Mads     ports.MadDelayStore
	Cache    ports.ResultCache
	Depots   *lookup.DepotTable
	Carriers *lookup.CarrierTable
}

// Analyze runs the full merge/filter/aggregate pipeline for the submitted
// filter set and returns the metrics bundle. An empty filtered set comes
// back as an explicit no_data response, not as an error.
func (h *AnalysisHandler) Analyze(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req dto.AnalysisRequest

	dec := json.NewDecoder(r.Body)
	defer r.Body.Close()
	dec.DisallowUnknownFields()

	if err := dec.Decode(&req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid json body")
		return
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		writeError(w, r, http.StatusBadRequest, "body must contain only one JSON object")
		return
	}

	switch req.Period {
	case "", domain.PeriodAll, domain.PeriodWeek, domain.PeriodMonth:
	default:
		writeError(w, r, http.StatusBadRequest, "period must be 7, 30 or all")
		return
	}

	if req.PunctualityThreshold != nil {
		t := *req.PunctualityThreshold
		if t < 0 || t > 240 {
			writeError(w, r, http.StatusBadRequest, "punctuality_threshold must be between 0 and 240 minutes")
			return
		}
	}

	if req.MaxWeightThreshold != nil && *req.MaxWeightThreshold <= 0 {
		writeError(w, r, http.StatusBadRequest, "max_weight_threshold must be positive")
		return
	}

	filters := domain.FilterSet{
		Period:               req.Period,
		Depot:                strings.TrimSpace(req.Depot),
		Warehouse:            strings.TrimSpace(req.Entrepot),
		PunctualityThreshold: req.PunctualityThreshold,
		MaxWeightThreshold:   req.MaxWeightThreshold,
		Tours100Mobile:       req.Tours100Mobile,
		ExcludeMadDelays:     req.ExcludeMadDelays,
	}
	if len(req.MadDelays) > 0 {
		filters.MadDelays = make(map[string]struct{}, len(req.MadDelays))
		for _, key := range req.MadDelays {
			filters.MadDelays[key] = struct{}{}
		}
	}

	svcReq := services.RunAnalysisRequest{Filters: filters}

	result, err := services.RunAnalysis(r.Context(), svcReq, h.Repo, h.Mads, h.Cache, h.Depots, h.Carriers)
	if errors.Is(err, services.ErrNoData) {
		writeJSON(w, r, http.StatusOK, dto.AnalysisResponse{NoData: true})
		return
	}
	if err != nil {
		log.Printf("run analysis failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, r, http.StatusOK, dto.AnalysisResponse{
		NoData: false,
		Result: toAnalysisResultResponse(result),
	})
}

func toAnalysisResultResponse(res *domain.AnalysisResult) *dto.AnalysisResultResponse {
	out := &dto.AnalysisResultResponse{
		TotalTours:              res.TotalTours,
		TotalTasks:              res.TotalTasks,
		ClassifiedTasks:         res.ClassifiedTasks,
		LateCount:               res.LateCount,
		OnTimeCount:             res.OnTimeCount,
		EarlyCount:              res.EarlyCount,
		PunctualityRateRealized: res.PunctualityRateRealized,
		PunctualityRatePlanned:  res.PunctualityRatePlanned,
		AvgDelayMinutes:         res.AvgDelayMinutes,
		AvgRating:               res.AvgRating,
		ByHour:                  toBreakdownRows(res.ByHour),
		ByTwoHourSlot:           toBreakdownRows(res.ByTwoHourSlot),
		ByDayOfWeek:             toBreakdownRows(res.ByDayOfWeek),
		ByWarehouse:             toBreakdownRows(res.ByWarehouse),
		ByDepot:                 toBreakdownRows(res.ByDepot),
		OverloadedToursCount:    res.OverloadedToursCount,
		LateStartAnomalyCount:   res.LateStartAnomalyCount,
	}

	out.Drivers = make([]dto.DriverRowResponse, 0, len(res.Drivers))
	for _, d := range res.Drivers {
		out.Drivers = append(out.Drivers, dto.DriverRowResponse{
			Driver:          d.Driver,
			Carrier:         d.Carrier,
			TaskCount:       d.TaskCount,
			TourCount:       d.TourCount,
			LateCount:       d.LateCount,
			EarlyCount:      d.EarlyCount,
			OnTimeCount:     d.OnTimeCount,
			PunctualityRate: d.PunctualityRate,
			AvgDelayMinutes: d.AvgDelayMinutes,
			AvgRating:       d.AvgRating,
		})
	}

	out.Cities = toGeoRows(res.Cities)
	out.PostalCodes = toGeoRows(res.PostalCodes)

	out.Histogram = make([]dto.HistogramBucketResponse, 0, len(res.Histogram))
	for _, b := range res.Histogram {
		out.Histogram = append(out.Histogram, dto.HistogramBucketResponse{
			Label:       b.Label,
			FromMinutes: b.FromMinutes,
			ToMinutes:   b.ToMinutes,
			Count:       b.Count,
		})
	}

	out.Saturation = make([]dto.SaturationPointResponse, 0, len(res.Saturation))
	for _, p := range res.Saturation {
		out.Saturation = append(out.Saturation, dto.SaturationPointResponse{
			Hour:      p.Hour,
			Planned:   p.Planned,
			Completed: p.Completed,
			Gap:       p.Gap,
		})
	}

	return out
}

func toBreakdownRows(rows []domain.BreakdownRow) []dto.BreakdownRowResponse {
	out := make([]dto.BreakdownRowResponse, 0, len(rows))
	for _, row := range rows {
		out = append(out, dto.BreakdownRowResponse{
			Key:                  row.Key,
			TaskCount:            row.TaskCount,
			TourCount:            row.TourCount,
			LateCount:            row.LateCount,
			EarlyCount:           row.EarlyCount,
			OnTimeCount:          row.OnTimeCount,
			PunctualityRate:      row.PunctualityRate,
			AvgDelayMinutes:      row.AvgDelayMinutes,
			AvgRating:            row.AvgRating,
			OverloadedToursCount: row.OverloadedToursCount,
		})
	}
	return out
}

func toGeoRows(rows []domain.GeoRow) []dto.GeoRowResponse {
	out := make([]dto.GeoRowResponse, 0, len(rows))
	for _, row := range rows {
		out = append(out, dto.GeoRowResponse{
			Key:                     row.Key,
			TaskCount:               row.TaskCount,
			LateCount:               row.LateCount,
			PunctualityRatePlanned:  row.PunctualityRatePlanned,
			PunctualityRateRealized: row.PunctualityRateRealized,
			AvgDelayMinutes:         row.AvgDelayMinutes,
		})
	}
	return out
}
