package handlers

import (
	"encoding/json"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"delivery-analytics-service/internal/api/dto"
	"delivery-analytics-service/internal/domain"
	"delivery-analytics-service/internal/ports"
)

// MadDelayHandler manages the operator-curated preparation-delay list.
type MadDelayHandler struct {
	Store ports.MadDelayStore
}

func (h *MadDelayHandler) Handle(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		h.list(w, r)
	case http.MethodPost:
		h.add(w, r)
	case http.MethodDelete:
		h.remove(w, r)
	default:
		w.Header().Set("Allow", "GET, POST, DELETE")
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
	}
}

func (h *MadDelayHandler) list(w http.ResponseWriter, r *http.Request) {
	entries, err := h.Store.ListMadDelays(r.Context())
	if err != nil {
		log.Printf("list mad delays failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	res := dto.ListMadDelaysResponse{Entries: make([]dto.MadDelayResponse, 0, len(entries))}
	for _, e := range entries {
		res.Entries = append(res.Entries, dto.MadDelayResponse{Warehouse: e.Warehouse, Date: e.Date})
	}

	writeJSON(w, r, http.StatusOK, res)
}

func (h *MadDelayHandler) add(w http.ResponseWriter, r *http.Request) {
	entry, ok := decodeMadDelay(w, r)
	if !ok {
		return
	}

	if err := h.Store.AddMadDelay(r.Context(), entry); err != nil {
		log.Printf("add mad delay failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, r, http.StatusCreated, dto.MadDelayResponse{Warehouse: entry.Warehouse, Date: entry.Date})
}

func (h *MadDelayHandler) remove(w http.ResponseWriter, r *http.Request) {
	entry, ok := decodeMadDelay(w, r)
	if !ok {
		return
	}

	if err := h.Store.RemoveMadDelay(r.Context(), entry); err != nil {
		log.Printf("remove mad delay failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, r, http.StatusOK, dto.MadDelayResponse{Warehouse: entry.Warehouse, Date: entry.Date})
}

func decodeMadDelay(w http.ResponseWriter, r *http.Request) (domain.MadDelay, bool) {
	var req dto.MadDelayRequest

	dec := json.NewDecoder(r.Body)
	defer r.Body.Close()
	dec.DisallowUnknownFields()

	if err := dec.Decode(&req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid json body")
		return domain.MadDelay{}, false
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		writeError(w, r, http.StatusBadRequest, "body must contain only one JSON object")
		return domain.MadDelay{}, false
	}

	warehouse := strings.TrimSpace(req.Warehouse)
	if warehouse == "" {
		writeError(w, r, http.StatusBadRequest, "warehouse is required")
		return domain.MadDelay{}, false
	}

	if _, err := time.Parse("2006-01-02", req.Date); err != nil {
		writeError(w, r, http.StatusBadRequest, "date must be YYYY-MM-DD")
		return domain.MadDelay{}, false
	}

	return domain.MadDelay{Warehouse: warehouse, Date: req.Date}, true
}
