package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/avolkodav/fitlog/internal/logger"
	"github.com/avolkodav/fitlog/internal/models"
	"github.com/avolkodav/fitlog/internal/services"
	"github.com/avolkodav/fitlog/internal/validation"
)

// LogReader defines the interface that the exercise service must implement.
type LogReader interface {
	Logs(ctx context.Context, userID uuid.UUID, filter models.LogFilter) (*models.UserDB, []models.ExerciseDB, error)
}

// LogEntry represents one activity entry inside a log response
// swagger:model LogEntry
type LogEntry struct {
	// Activity description
	// default: run
	Description string `json:"description"`

	// Duration in minutes
	// default: 30
	Duration int `json:"duration"`

	// Calendar date of the activity
	// default: Thu Jan 05 2023
	Date string `json:"date"`
}

// GetLogsResponse represents a user's chronological activity log
// swagger:model GetLogsResponse
type GetLogsResponse struct {
	// User id
	// default: 5f1b9f2e4be9a826f8b2c001
	ID string `json:"id"`

	// Username
	// default: alice
	Username string `json:"username"`

	// Entries sorted ascending by date
	Log []LogEntry `json:"log"`

	// Number of returned entries
	// default: 1
	Count int `json:"count"`
}

// NewGetLogsHandler returns an HTTP handler for chronological log retrieval
// with optional inclusive date bounds and a result cap.
// @Summary Get a user's activity log
// @Description Returns the user's entries sorted ascending by date, optionally restricted to [from, to] and capped at limit entries.
// @Tags exercises
// @Produce json
// @Param id path string true "User id"
// @Param from query string false "Inclusive lower date bound (YYYY-MM-DD)"
// @Param to query string false "Inclusive upper date bound (YYYY-MM-DD)"
// @Param limit query int false "Maximum number of entries (0 or absent: unbounded)"
// @Success 200 {object} handlers.GetLogsResponse "Chronological log"
// @Failure 400 {object} handlers.ErrorResponse "Validation failure or unknown user"
// @Router /api/users/{id}/logs [get]
func NewGetLogsHandler(svc LogReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			writeError(w, http.StatusBadRequest, "User not found")
			return
		}

		var filter models.LogFilter
		q := r.URL.Query()

		if raw := q.Get("from"); raw != "" {
			from, err := validation.ParseDate(raw)
			if err != nil {
				writeError(w, http.StatusBadRequest, "Invalid from date")
				return
			}
			filter.From = &from
		}
		if raw := q.Get("to"); raw != "" {
			to, err := validation.ParseDate(raw)
			if err != nil {
				writeError(w, http.StatusBadRequest, "Invalid to date")
				return
			}
			filter.To = &to
		}
		if filter.Limit, err = validation.ParseLimit(q.Get("limit")); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid limit")
			return
		}

		user, exercises, err := svc.Logs(r.Context(), userID, filter)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrUserNotFound):
				writeError(w, http.StatusBadRequest, "User not found")
			default:
				logger.Log.Errorw("get logs failed", "user_id", userID, "err", err)
				writeError(w, http.StatusBadRequest, "Unable to read logs")
			}
			return
		}

		log := make([]LogEntry, 0, len(exercises))
		for _, e := range exercises {
			log = append(log, LogEntry{
				Description: e.Description,
				Duration:    e.Duration,
				Date:        e.Date.Format(dateDisplayLayout),
			})
		}

		writeJSON(w, GetLogsResponse{
			ID:       user.UserID.String(),
			Username: user.Username,
			Log:      log,
			Count:    len(log),
		})
	}
}
