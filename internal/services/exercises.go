package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/avolkodav/fitlog/internal/logger"
	"github.com/avolkodav/fitlog/internal/models"
)

// ExerciseReader defines read operations for activity entries.
type ExerciseReader interface {
	ListByUser(ctx context.Context, userID uuid.UUID, filter models.LogFilter) ([]models.ExerciseDB, error)
}

// ExerciseWriter defines write operations for activity entries.
type ExerciseWriter interface {
	Save(ctx context.Context, userID uuid.UUID, description string, duration int, date time.Time) (*models.ExerciseDB, error)
}

// ExerciseService handles adding entries and retrieving logs for a user.
type ExerciseService struct {
	users  UserReader
	reader ExerciseReader
	writer ExerciseWriter
}

// NewExerciseService creates a new ExerciseService instance.
func NewExerciseService(users UserReader, reader ExerciseReader, writer ExerciseWriter) *ExerciseService {
	return &ExerciseService{
		users:  users,
		reader: reader,
		writer: writer,
	}
}

// Add records an activity entry for an existing user. The user is resolved
// once, at creation time.
func (svc *ExerciseService) Add(ctx context.Context, userID uuid.UUID, description string, duration int, date time.Time) (*models.UserDB, *models.ExerciseDB, error) {
	user, err := svc.users.GetByID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to resolve user", "user_id", userID, "err", err)
		return nil, nil, err
	}
	if user == nil {
		logger.Log.Errorw("user not found", "user_id", userID)
		return nil, nil, ErrUserNotFound
	}

	exercise, err := svc.writer.Save(ctx, userID, description, duration, date)
	if err != nil {
		logger.Log.Errorw("failed to save exercise", "user_id", userID, "err", err)
		return nil, nil, err
	}

	return user, exercise, nil
}

// Logs returns the user's entries restricted by the given filter,
// ordered ascending by date.
func (svc *ExerciseService) Logs(ctx context.Context, userID uuid.UUID, filter models.LogFilter) (*models.UserDB, []models.ExerciseDB, error) {
	user, err := svc.users.GetByID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to resolve user", "user_id", userID, "err", err)
		return nil, nil, err
	}
	if user == nil {
		logger.Log.Errorw("user not found", "user_id", userID)
		return nil, nil, ErrUserNotFound
	}

	exercises, err := svc.reader.ListByUser(ctx, userID, filter)
	if err != nil {
		logger.Log.Errorw("failed to list exercises", "user_id", userID, "err", err)
		return nil, nil, err
	}

	return user, exercises, nil
}
