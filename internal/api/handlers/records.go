package handlers

import (
	"log"
	"net/http"

	"delivery-analytics-service/internal/api/dto"
	"delivery-analytics-service/internal/ports"
)

// RecordHandler exposes read-only access to the ingested tours and tasks.
type RecordHandler struct {
	Repo ports.DeliveryRepository
}

func (h *RecordHandler) ListTours(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	tours, err := h.Repo.ListTours(r.Context())
	if err != nil {
		log.Printf("list tours failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	res := dto.ListToursResponse{Tours: make([]dto.TourResponse, 0, len(tours))}
	for _, t := range tours {
		res.Tours = append(res.Tours, dto.TourResponse{
			UniqueID:       t.UniqueID,
			Warehouse:      t.Warehouse,
			Driver:         t.Driver,
			PlannedStart:   t.PlannedStart,
			PlannedEnd:     t.PlannedEnd,
			RealizedStart:  t.RealizedStart,
			RealizedEnd:    t.RealizedEnd,
			CapacityWeight: t.CapacityWeight,
			CapacityVolume: t.CapacityVolume,
			RealizedWeight: t.RealizedWeight,
			RealizedVolume: t.RealizedVolume,
			MobileTracked:  t.MobileTracked,
		})
	}

	writeJSON(w, r, http.StatusOK, res)
}

func (h *RecordHandler) ListTasks(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	tasks, err := h.Repo.ListTasks(r.Context())
	if err != nil {
		log.Printf("list tasks failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	res := dto.ListTasksResponse{Tasks: make([]dto.TaskResponse, 0, len(tasks))}
	for _, t := range tasks {
		res.Tasks = append(res.Tasks, dto.TaskResponse{
			TourUniqueID:    t.TourUniqueID,
			Sequence:        t.Sequence,
			Warehouse:       t.Warehouse,
			PlannedArrival:  t.PlannedArrival,
			WindowEnd:       t.WindowEnd,
			RealizedArrival: t.RealizedArrival,
			PostalCode:      t.PostalCode,
			City:            t.City,
			Rating:          t.Rating,
			Comment:         t.Comment,
			Weight:          t.Weight,
		})
	}

	writeJSON(w, r, http.StatusOK, res)
}
