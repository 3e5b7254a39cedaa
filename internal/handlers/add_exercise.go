package handlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/avolkodav/fitlog/internal/logger"
	"github.com/avolkodav/fitlog/internal/models"
	"github.com/avolkodav/fitlog/internal/services"
	"github.com/avolkodav/fitlog/internal/validation"
)

// dateDisplayLayout renders stored dates as human-readable calendar strings,
// e.g. "Thu Jan 05 2023".
const dateDisplayLayout = "Mon Jan 02 2006"

// ExerciseAdder defines the interface that the exercise service must implement.
type ExerciseAdder interface {
	Add(ctx context.Context, userID uuid.UUID, description string, duration int, date time.Time) (*models.UserDB, *models.ExerciseDB, error)
}

// AddExerciseResponse represents a successfully recorded activity entry
// swagger:model AddExerciseResponse
type AddExerciseResponse struct {
	// Owning user id
	// default: 5f1b9f2e4be9a826f8b2c001
	ID string `json:"id"`

	// Username
	// default: alice
	Username string `json:"username"`

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

// NewAddExerciseHandler returns an HTTP handler that records an activity
// entry against an existing user.
// @Summary Add an activity entry
// @Description Records a timed activity for the user. The date defaults to today when omitted. The body may be JSON or form-encoded.
// @Tags exercises
// @Accept json
// @Produce json
// @Param id path string true "User id"
// @Param description body string true "Activity description"
// @Param duration body int true "Duration (positive integer)"
// @Param date body string false "Calendar date (YYYY-MM-DD)"
// @Success 200 {object} handlers.AddExerciseResponse "Entry recorded"
// @Failure 400 {object} handlers.ErrorResponse "Validation failure or unknown user"
// @Router /api/users/{id}/exercises [post]
func NewAddExerciseHandler(svc ExerciseAdder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			// An unparseable id cannot resolve to any user.
			writeError(w, http.StatusBadRequest, "User not found")
			return
		}

		fields, err := bodyFields(r, "description", "duration", "date")
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		if err := validation.RequireField("description", fields["description"]); err != nil {
			writeError(w, http.StatusBadRequest, "description is required")
			return
		}

		duration, err := validation.ParseDuration(fields["duration"])
		if err != nil {
			switch {
			case errors.Is(err, validation.ErrMissingField):
				writeError(w, http.StatusBadRequest, "duration is required")
			default:
				writeError(w, http.StatusBadRequest, "Invalid duration")
			}
			return
		}

		date := time.Now()
		if fields["date"] != "" {
			if date, err = validation.ParseDate(fields["date"]); err != nil {
				writeError(w, http.StatusBadRequest, "Invalid date")
				return
			}
		}

		user, exercise, err := svc.Add(r.Context(), userID, fields["description"], duration, date)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrUserNotFound):
				writeError(w, http.StatusBadRequest, "User not found")
			default:
				logger.Log.Errorw("add exercise failed", "user_id", userID, "err", err)
				writeError(w, http.StatusBadRequest, "Unable to save exercise")
			}
			return
		}

		writeJSON(w, AddExerciseResponse{
			ID:          user.UserID.String(),
			Username:    user.Username,
			Description: exercise.Description,
			Duration:    exercise.Duration,
			Date:        exercise.Date.Format(dateDisplayLayout),
		})
	}
}
