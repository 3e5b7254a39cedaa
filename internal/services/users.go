package services

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/avolkodav/fitlog/internal/logger"
	"github.com/avolkodav/fitlog/internal/models"
)

// Error variables
var (
	ErrUsernameTaken = errors.New("username already taken")
	ErrUserNotFound  = errors.New("user not found")
)

// UserReader defines read-only operations for users.
type UserReader interface {
	GetByID(ctx context.Context, userID uuid.UUID) (*models.UserDB, error)
	List(ctx context.Context) ([]models.UserDB, error)
}

// UserWriter defines write operations for users.
type UserWriter interface {
	Save(ctx context.Context, username string) (uuid.UUID, error)
}

// UserService handles user registration and listing.
type UserService struct {
	reader UserReader
	writer UserWriter
}

// NewUserService creates a new UserService instance.
func NewUserService(reader UserReader, writer UserWriter) *UserService {
	return &UserService{
		reader: reader,
		writer: writer,
	}
}

// Create registers a new user. The store's unique constraint decides
// uniqueness in the same statement as the insert.
func (svc *UserService) Create(ctx context.Context, username string) (*models.UserDB, error) {
	userID, err := svc.writer.Save(ctx, username)
	if err != nil {
		logger.Log.Errorw("failed to save user", "username", username, "err", err)
		return nil, err
	}
	if userID == uuid.Nil {
		logger.Log.Errorw("username already taken", "username", username)
		return nil, ErrUsernameTaken
	}

	return &models.UserDB{UserID: userID, Username: username}, nil
}

// List returns all registered users.
func (svc *UserService) List(ctx context.Context) ([]models.UserDB, error) {
	users, err := svc.reader.List(ctx)
	if err != nil {
		logger.Log.Errorw("failed to list users", "err", err)
		return nil, err
	}
	return users, nil
}
