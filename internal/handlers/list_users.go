package handlers

import (
	"context"
	"net/http"

	"github.com/avolkodav/fitlog/internal/logger"
	"github.com/avolkodav/fitlog/internal/models"
)

// UserLister defines the interface that the user service must implement.
type UserLister interface {
	List(ctx context.Context) ([]models.UserDB, error)
}

// NewListUsersHandler returns an HTTP handler listing all registered users.
// @Summary List users
// @Description Returns every registered user as an array of {id, username}.
// @Tags users
// @Produce json
// @Success 200 {array} handlers.CreateUserResponse "All users"
// @Failure 400 {object} handlers.ErrorResponse "Store failure"
// @Router /api/users [get]
func NewListUsersHandler(svc UserLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		users, err := svc.List(r.Context())
		if err != nil {
			logger.Log.Errorw("list users failed", "err", err)
			writeError(w, http.StatusBadRequest, "Unable to list users")
			return
		}

		resp := make([]CreateUserResponse, 0, len(users))
		for _, u := range users {
			resp = append(resp, CreateUserResponse{
				ID:       u.UserID.String(),
				Username: u.Username,
			})
		}

		writeJSON(w, resp)
	}
}
