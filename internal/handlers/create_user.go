package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/avolkodav/fitlog/internal/logger"
	"github.com/avolkodav/fitlog/internal/models"
	"github.com/avolkodav/fitlog/internal/services"
	"github.com/avolkodav/fitlog/internal/validation"
)

// UserCreator defines the interface that the user service must implement.
type UserCreator interface {
	Create(ctx context.Context, username string) (*models.UserDB, error)
}

// CreateUserResponse represents a successful registration response
// swagger:model CreateUserResponse
type CreateUserResponse struct {
	// Assigned user id
	// default: 5f1b9f2e4be9a826f8b2c001
	ID string `json:"id"`

	// Username
	// default: alice
	Username string `json:"username"`
}

// NewCreateUserHandler returns an HTTP handler for user registration.
// @Summary Register a new user
// @Description Creates a user with a globally unique username. The body may be JSON or form-encoded.
// @Tags users
// @Accept json
// @Produce json
// @Param username body string true "Username"
// @Success 200 {object} handlers.CreateUserResponse "User created"
// @Failure 400 {object} handlers.ErrorResponse "Missing or duplicate username"
// @Router /api/users [post]
func NewCreateUserHandler(svc UserCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		fields, err := bodyFields(r, "username")
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		username := fields["username"]
		if err := validation.RequireField("username", username); err != nil {
			writeError(w, http.StatusBadRequest, "username is required")
			return
		}

		user, err := svc.Create(r.Context(), username)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrUsernameTaken):
				writeError(w, http.StatusBadRequest, "Username already taken")
			default:
				logger.Log.Errorw("create user failed", "err", err)
				writeError(w, http.StatusBadRequest, "Unable to create user")
			}
			return
		}

		writeJSON(w, CreateUserResponse{
			ID:       user.UserID.String(),
			Username: user.Username,
		})
	}
}
