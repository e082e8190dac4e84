package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/nileshjoshi/muhurat-api/internal/config"
	"github.com/nileshjoshi/muhurat-api/internal/database"
	"github.com/nileshjoshi/muhurat-api/internal/logger"
	"github.com/nileshjoshi/muhurat-api/internal/metrics"
	"github.com/nileshjoshi/muhurat-api/internal/muhurat"
	"github.com/nileshjoshi/muhurat-api/internal/panchang"
)

// Handlers contains all HTTP handlers and their dependencies.
type Handlers struct {
	db     *database.DB
	cfg    *config.Config
	logger *slog.Logger
}

// NewHandlers creates a new Handlers instance.
func NewHandlers(db *database.DB, cfg *config.Config, logger *slog.Logger) *Handlers {
	return &Handlers{
		db:     db,
		cfg:    cfg,
		logger: logger,
	}
}

// =============================================================================
// Response shapes
// =============================================================================

// activityResponse is one catalog entry for GET /activities.
type activityResponse struct {
	ID          string `json:"id"`
	DisplayName string `json:"display_name"`
}

// panchangResponse is the derived attribute set for one date.
type panchangResponse struct {
	Date      string `json:"date"`
	Weekday   string `json:"weekday"`
	Nakshatra string `json:"nakshatra"`
	Tithi     string `json:"tithi"`
	Yoga      string `json:"yoga"`
	RahuKaal  string `json:"rahu_kaal"`
}

// candidateResponse is one ranked auspicious day.
type candidateResponse struct {
	Date              string `json:"date"`
	Weekday           string `json:"weekday"`
	Tithi             string `json:"tithi"`
	Nakshatra         string `json:"nakshatra"`
	Yoga              string `json:"yoga"`
	RecommendedWindow string `json:"recommended_window"`
	RahuKaal          string `json:"rahu_kaal"`
	Tier              string `json:"tier"`
	Reason            string `json:"reason"`
}

func toPanchangResponse(attrs panchang.Attributes) panchangResponse {
	return panchangResponse{
		Date:      panchang.FormatDate(attrs.Date),
		Weekday:   panchang.DayName(attrs.Date),
		Nakshatra: attrs.Nakshatra,
		Tithi:     attrs.Tithi,
		Yoga:      attrs.Yoga,
		RahuKaal:  attrs.RahuKaal.String(),
	}
}

func toCandidateResponse(c muhurat.Candidate) candidateResponse {
	return candidateResponse{
		Date:              panchang.FormatDate(c.Date),
		Weekday:           c.Weekday,
		Tithi:             c.Tithi,
		Nakshatra:         c.Nakshatra,
		Yoga:              c.Yoga,
		RecommendedWindow: c.RecommendedWindow.String(),
		RahuKaal:          c.RahuKaal.String(),
		Tier:              string(c.Tier),
		Reason:            c.Reason,
	}
}

// =============================================================================
// Public handlers
// =============================================================================

// HealthCheck handles GET /health
func (h *Handlers) HealthCheck(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if err := h.db.Health(ctx); err != nil {
		h.logger.Warn("health check failed", slog.Any("error", err))
		WriteError(w, http.StatusServiceUnavailable, "Database unhealthy", "HEALTH_CHECK_FAILED")
		return
	}

	WriteSuccess(w, map[string]string{
		"status": "healthy",
	})
}

// ListActivities handles GET /api/v1/activities
func (h *Handlers) ListActivities(w http.ResponseWriter, r *http.Request) {
	rules := muhurat.Activities()
	activities := make([]activityResponse, 0, len(rules))
	for _, rule := range rules {
		activities = append(activities, activityResponse{
			ID:          rule.ID,
			DisplayName: rule.DisplayName,
		})
	}

	WriteSuccess(w, map[string]interface{}{
		"activities": activities,
	})
}

// GetTodayPanchang handles GET /api/v1/panchang/today
func (h *Handlers) GetTodayPanchang(w http.ResponseWriter, r *http.Request) {
	WriteSuccess(w, toPanchangResponse(panchang.Derive(time.Now().UTC())))
}

// GetDatePanchang handles GET /api/v1/panchang/date/{date}
func (h *Handlers) GetDatePanchang(w http.ResponseWriter, r *http.Request) {
	dateStr := chi.URLParam(r, "date")

	date, err := panchang.ParseDate(dateStr)
	if err != nil {
		WriteBadRequest(w, fmt.Sprintf("Invalid date format: %s. Use YYYY-MM-DD", dateStr))
		return
	}

	WriteSuccess(w, toPanchangResponse(panchang.Derive(date)))
}

// SearchMuhurat handles GET /api/v1/muhurat/{activity}?start=YYYY-MM-DD&end=YYYY-MM-DD
func (h *Handlers) SearchMuhurat(w http.ResponseWriter, r *http.Request) {
	activityID := chi.URLParam(r, "activity")
	if _, ok := muhurat.RuleFor(activityID); !ok {
		WriteNotFound(w, fmt.Sprintf("Unknown activity: %s", activityID))
		return
	}

	startStr := r.URL.Query().Get("start")
	endStr := r.URL.Query().Get("end")
	if startStr == "" || endStr == "" {
		WriteBadRequest(w, "Both start and end date parameters are required")
		return
	}

	startDate, err := panchang.ParseDate(startStr)
	if err != nil {
		WriteBadRequest(w, fmt.Sprintf("Invalid start date format: %s. Use YYYY-MM-DD", startStr))
		return
	}

	endDate, err := panchang.ParseDate(endStr)
	if err != nil {
		WriteBadRequest(w, fmt.Sprintf("Invalid end date format: %s. Use YYYY-MM-DD", endStr))
		return
	}

	// The engine scans linearly, so the HTTP layer bounds the window
	daysDiff := int(endDate.Sub(startDate).Hours() / 24)
	if daysDiff > h.cfg.MaxRangeDays {
		WriteBadRequest(w, fmt.Sprintf("Date range cannot exceed %d days", h.cfg.MaxRangeDays))
		return
	}

	candidates, err := muhurat.Scan(activityID, startDate, endDate)
	if err != nil {
		if errors.Is(err, muhurat.ErrInvalidRange) {
			WriteBadRequest(w, "Start date must be before or equal to end date")
			return
		}
		logger.FromContext(r.Context()).Error("muhurat scan failed",
			slog.String("activity", activityID),
			slog.Any("error", err))
		WriteInternalError(w, "Failed to search auspicious dates")
		return
	}

	metrics.RecordScan(activityID, len(candidates))

	results := make([]candidateResponse, 0, len(candidates))
	for _, c := range candidates {
		results = append(results, toCandidateResponse(c))
	}

	WriteSuccess(w, map[string]interface{}{
		"activity": activityID,
		"start":    startStr,
		"end":      endStr,
		"dates":    results,
	})
}

// =============================================================================
// Selection handlers (authenticated)
// =============================================================================

// CreateSelection handles POST /api/v1/selections
func (h *Handlers) CreateSelection(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID := GetUserID(r)

	var req struct {
		ActivityID string `json:"activity_id"`
		Date       string `json:"date"`
		Notes      string `json:"notes,omitempty"`
	}

	if err := decodeJSON(r, &req); err != nil {
		WriteBadRequest(w, fmt.Sprintf("Invalid request body: %v", err))
		return
	}

	rule, ok := muhurat.RuleFor(req.ActivityID)
	if !ok {
		WriteBadRequest(w, fmt.Sprintf("Unknown activity: %s", req.ActivityID))
		return
	}

	date, err := panchang.ParseDate(req.Date)
	if err != nil {
		WriteBadRequest(w, fmt.Sprintf("Invalid date format: %s. Use YYYY-MM-DD", req.Date))
		return
	}

	// Record the tier the engine assigns the chosen day; a day the engine
	// rejects can still be saved, it just carries no tier.
	var tier string
	if candidate, ok := muhurat.Evaluate(date, rule); ok {
		tier = string(candidate.Tier)
	}

	var notes *string
	if req.Notes != "" {
		notes = &req.Notes
	}

	selection := &database.Selection{
		UserID:     userID,
		ActivityID: req.ActivityID,
		Date:       panchang.FormatDate(date),
		Tier:       tier,
		Notes:      notes,
	}

	if err := h.db.CreateSelection(ctx, selection); err != nil {
		logger.FromContext(ctx).Error("failed to create selection", slog.Any("error", err))
		WriteInternalError(w, "Failed to save selection")
		return
	}

	WriteSuccess(w, selection)
}

// ListSelections handles GET /api/v1/selections
func (h *Handlers) ListSelections(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID := GetUserID(r)

	limit := 50
	offset := 0

	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		if l, err := strconv.Atoi(limitStr); err == nil && l > 0 && l <= 100 {
			limit = l
		}
	}

	if offsetStr := r.URL.Query().Get("offset"); offsetStr != "" {
		if o, err := strconv.Atoi(offsetStr); err == nil && o >= 0 {
			offset = o
		}
	}

	selections, err := h.db.ListSelectionsByUser(ctx, userID, limit, offset)
	if err != nil {
		logger.FromContext(ctx).Error("failed to list selections", slog.Any("error", err))
		WriteInternalError(w, "Failed to retrieve selections")
		return
	}

	WriteSuccess(w, map[string]interface{}{
		"selections": selections,
		"limit":      limit,
		"offset":     offset,
	})
}

// DeleteSelection handles DELETE /api/v1/selections/{id}
func (h *Handlers) DeleteSelection(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID := GetUserID(r)

	selectionID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		WriteBadRequest(w, "Invalid selection ID")
		return
	}

	selection, err := h.db.GetSelectionByID(ctx, selectionID)
	if err != nil {
		if database.IsNotFound(err) {
			WriteNotFound(w, "Selection not found")
			return
		}
		h.logger.Error("failed to get selection", slog.Any("error", err))
		WriteInternalError(w, "Failed to retrieve selection")
		return
	}

	if selection.UserID != userID {
		WriteUnauthorized(w, "Selection does not belong to user")
		return
	}

	if err := h.db.DeleteSelection(ctx, selectionID); err != nil {
		h.logger.Error("failed to delete selection", slog.Any("error", err))
		WriteInternalError(w, "Failed to delete selection")
		return
	}

	WriteSuccess(w, map[string]string{"message": "Selection deleted"})
}

// GetSelectionStats handles GET /api/v1/selections/stats
func (h *Handlers) GetSelectionStats(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID := GetUserID(r)

	stats, err := h.db.GetSelectionStats(ctx, userID)
	if err != nil {
		logger.FromContext(ctx).Error("failed to get selection stats", slog.Any("error", err))
		WriteInternalError(w, "Failed to retrieve statistics")
		return
	}

	WriteSuccess(w, stats)
}

// decodeJSON decodes JSON request body.
func decodeJSON(r *http.Request, v interface{}) error {
	if r.Body == nil {
		return fmt.Errorf("request body is empty")
	}
	defer r.Body.Close()

	return json.NewDecoder(r.Body).Decode(v)
}
