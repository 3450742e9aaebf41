package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"cargo-route-service/internal/domain/entity"
	"cargo-route-service/internal/domain/repository"
	"cargo-route-service/internal/routing"
	"cargo-route-service/internal/usecase"
	"cargo-route-service/pkg/logger"
	"cargo-route-service/pkg/utils"
)

// RoutePlanner is the search operation served by the handler
type RoutePlanner interface {
	Plan(ctx context.Context, req routing.Request) (*usecase.RoutePlan, error)
	FindSearch(ctx context.Context, searchID string) (*entity.RouteSearch, error)
}

// CarrierManager lists and updates partnership scores
type CarrierManager interface {
	List(ctx context.Context) ([]*entity.CarrierPartnership, error)
	UpdateScore(ctx context.Context, carrier string, score int) error
}

var earliestLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04",
	utils.ISO_DATE_LAYOUT,
}

// Handler exposes route search and carrier management over JSON
type Handler struct {
	planner       RoutePlanner
	carriers      CarrierManager
	searchTimeout time.Duration
	logger        logger.Logger
}

// NewHandler creates the JSON API handler. A zero searchTimeout disables the per-search deadline.
func NewHandler(planner RoutePlanner, carriers CarrierManager, searchTimeout time.Duration, logger logger.Logger) *Handler {
	return &Handler{
		planner:       planner,
		carriers:      carriers,
		searchTimeout: searchTimeout,
		logger:        logger,
	}
}

// Register mounts the API routes on mux
func (h *Handler) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/routes", h.searchRoutes)
	mux.HandleFunc("GET /api/searches/{id}", h.getSearch)
	mux.HandleFunc("GET /api/carriers", h.listCarriers)
	mux.HandleFunc("PUT /api/carriers/{code}", h.updateCarrier)
}

// searchRoutes handles GET /api/routes?origins=GRU,VCP&destinations=MAO&earliest=2025-01-10T08:00&latest=2025-01-12&weight=250
func (h *Handler) searchRoutes(w http.ResponseWriter, r *http.Request) {
	req, err := parseRouteRequest(r)
	if err != nil {
		h.writeError(w, http.StatusBadRequest, err)
		return
	}

	ctx := r.Context()
	if h.searchTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, h.searchTimeout)
		defer cancel()
	}

	plan, err := h.planner.Plan(ctx, req)
	switch {
	case errors.Is(err, routing.ErrInvalidRequest):
		h.writeError(w, http.StatusBadRequest, err)
		return
	case errors.Is(err, usecase.ErrScheduleUnavailable):
		h.writeError(w, http.StatusServiceUnavailable, err)
		return
	case err != nil:
		h.writeError(w, http.StatusInternalServerError, err)
		return
	}

	w.Header().Set("X-Search-Id", plan.SearchID)
	h.writeJSON(w, http.StatusOK, plan.Options)
}

func (h *Handler) getSearch(w http.ResponseWriter, r *http.Request) {
	search, err := h.planner.FindSearch(r.Context(), r.PathValue("id"))
	switch {
	case errors.Is(err, repository.ErrRouteSearchNotFound):
		h.writeError(w, http.StatusNotFound, err)
		return
	case errors.Is(err, usecase.ErrAuditDisabled):
		h.writeError(w, http.StatusServiceUnavailable, err)
		return
	case err != nil:
		h.writeError(w, http.StatusInternalServerError, err)
		return
	}
	h.writeJSON(w, http.StatusOK, search)
}

func (h *Handler) listCarriers(w http.ResponseWriter, r *http.Request) {
	list, err := h.carriers.List(r.Context())
	if err != nil {
		h.writeError(w, http.StatusInternalServerError, err)
		return
	}
	h.writeJSON(w, http.StatusOK, list)
}

type scoreUpdate struct {
	Score *int `json:"score"`
}

func (h *Handler) updateCarrier(w http.ResponseWriter, r *http.Request) {
	var body scoreUpdate
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.Score == nil {
		h.writeError(w, http.StatusBadRequest, fmt.Errorf("body must be {\"score\": <0..100>}"))
		return
	}

	err := h.carriers.UpdateScore(r.Context(), r.PathValue("code"), *body.Score)
	switch {
	case errors.Is(err, usecase.ErrInvalidCarrier):
		h.writeError(w, http.StatusBadRequest, err)
		return
	case err != nil:
		h.writeError(w, http.StatusInternalServerError, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// parseRouteRequest reads the search query. Times are schedule wall-clock times.
func parseRouteRequest(r *http.Request) (routing.Request, error) {
	q := r.URL.Query()
	req := routing.Request{
		Origins:      splitCodes(q["origins"]),
		Destinations: splitCodes(q["destinations"]),
	}

	earliest, err := parseEarliest(q.Get("earliest"))
	if err != nil {
		return req, err
	}
	req.EarliestAt = earliest

	req.LatestDate = utils.TruncateToDate(earliest)
	if latest := q.Get("latest"); latest != "" {
		d, err := utils.ParseDate(latest)
		if err != nil {
			return req, fmt.Errorf("latest: %w", err)
		}
		req.LatestDate = d
	}

	if weight := q.Get("weight"); weight != "" {
		w, err := strconv.ParseFloat(strings.ReplaceAll(weight, ",", "."), 64)
		if err != nil {
			return req, fmt.Errorf("weight: invalid number %q", weight)
		}
		req.WeightKg = w
	}
	return req, nil
}

func parseEarliest(value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, fmt.Errorf("earliest is required")
	}
	for _, layout := range earliestLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			y, m, d := t.Date()
			return time.Date(y, m, d, t.Hour(), t.Minute(), t.Second(), 0, time.UTC), nil
		}
	}
	return time.Time{}, fmt.Errorf("earliest: unrecognized time %q", value)
}

// splitCodes accepts both repeated parameters and comma-separated lists
func splitCodes(values []string) []string {
	var codes []string
	for _, v := range values {
		codes = append(codes, strings.Split(v, ",")...)
	}
	return codes
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		h.logger.Error("Failed to encode response", "error", err)
	}
}

func (h *Handler) writeError(w http.ResponseWriter, status int, err error) {
	if status >= http.StatusInternalServerError {
		h.logger.Error("Request failed", "status", status, "error", err)
	}
	h.writeJSON(w, status, map[string]string{"error": err.Error()})
}
