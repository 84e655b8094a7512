package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/sirupsen/logrus"

	"AstroSentinel/internal/dashboard"
	"AstroSentinel/internal/model"
	"AstroSentinel/internal/seed"
)

// Handler holds dependencies for HTTP handlers
type Handler struct {
	svc *dashboard.Service
	log *logrus.Entry
	now func() time.Time
}

// NewHandler creates a new Handler
func NewHandler(svc *dashboard.Service, log *logrus.Entry) *Handler {
	return &Handler{svc: svc, log: log, now: time.Now}
}

type errorResponse struct {
	Error string `json:"error"`
	Field string `json:"field,omitempty"`
}

type seedResponse struct {
	Input     model.SeedInput `json:"input"`
	Canonical string          `json:"canonical"`
	Seed      uint64          `json:"seed"`
}

// request reads symbol, date and timeframe from the query. date defaults to today,
// timeframe to intraday.
func (h *Handler) request(r *http.Request) dashboard.Request {
	q := r.URL.Query()
	req := dashboard.Request{
		Symbol:    q.Get("symbol"),
		Date:      q.Get("date"),
		Timeframe: q.Get("timeframe"),
	}
	if req.Date == "" {
		req.Date = h.now().Format(model.DateLayout)
	}
	if req.Timeframe == "" {
		req.Timeframe = model.Intraday.String()
	}
	return req
}

// GetSeed handles GET /seed
func (h *Handler) GetSeed(w http.ResponseWriter, r *http.Request) {
	in, sd, err := h.svc.Seed(h.request(r))
	if err != nil {
		h.respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, seedResponse{
		Input:     in,
		Canonical: seed.Canonical(in),
		Seed:      sd,
	})
}

// GetSeries handles GET /series
func (h *Handler) GetSeries(w http.ResponseWriter, r *http.Request) {
	series, err := h.svc.Series(h.request(r))
	if err != nil {
		h.respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, series)
}

// GetTransits handles GET /transits
func (h *Handler) GetTransits(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date")
	if date == "" {
		date = h.now().Format(model.DateLayout)
	}
	table, err := h.svc.Transits(date)
	if err != nil {
		h.respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, table)
}

// GetReport handles GET /report
func (h *Handler) GetReport(w http.ResponseWriter, r *http.Request) {
	rep, err := h.svc.Generate(r.Context(), h.request(r))
	if err != nil {
		h.respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, rep)
}

// GetHistory handles GET /history
func (h *Handler) GetHistory(w http.ResponseWriter, r *http.Request) {
	limit := 20
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			respondJSON(w, http.StatusBadRequest, errorResponse{Error: "limit must be a positive integer", Field: "limit"})
			return
		}
		limit = n
	}
	entries, err := h.svc.History(limit)
	if err != nil {
		h.respondError(w, err)
		return
	}
	if entries == nil {
		entries = []model.HistoryEntry{}
	}
	respondJSON(w, http.StatusOK, entries)
}

// HealthCheck handles GET /health
func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
}

func (h *Handler) respondError(w http.ResponseWriter, err error) {
	var inv *model.InvalidInputError
	if errors.As(err, &inv) {
		respondJSON(w, http.StatusBadRequest, errorResponse{Error: inv.Error(), Field: inv.Field})
		return
	}
	h.log.WithError(err).Error("request failed")
	respondJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal error"})
}

func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}
