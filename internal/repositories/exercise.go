package repositories

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/avolkodav/fitlog/internal/logger"
	"github.com/avolkodav/fitlog/internal/models"
)

type ExerciseWriteRepository struct {
	db *sqlx.DB
}

func NewExerciseWriteRepository(db *sqlx.DB) *ExerciseWriteRepository {
	return &ExerciseWriteRepository{db: db}
}

// Save inserts an activity entry and returns the stored record.
func (r *ExerciseWriteRepository) Save(ctx context.Context, userID uuid.UUID, description string, duration int, date time.Time) (*models.ExerciseDB, error) {
	const query = `
		INSERT INTO exercises (user_id, description, duration, date)
		VALUES ($1, $2, $3, $4)
		RETURNING exercise_id, user_id, description, duration, date, created_at
	`
	args := []any{userID, description, duration, date}

	var exercise models.ExerciseDB
	err := r.db.GetContext(ctx, &exercise, query, args...)

	logger.Log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", exercise,
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	return &exercise, nil
}

type ExerciseReadRepository struct {
	db *sqlx.DB
}

func NewExerciseReadRepository(db *sqlx.DB) *ExerciseReadRepository {
	return &ExerciseReadRepository{db: db}
}

// ListByUser returns the user's entries ordered ascending by date.
// Nil bounds apply no date restriction; a zero limit returns all matches.
func (r *ExerciseReadRepository) ListByUser(ctx context.Context, userID uuid.UUID, filter models.LogFilter) ([]models.ExerciseDB, error) {
	const query = `
		SELECT exercise_id, user_id, description, duration, date, created_at
		FROM exercises
		WHERE user_id = $1
		  AND ($2::DATE IS NULL OR date >= $2)
		  AND ($3::DATE IS NULL OR date <= $3)
		ORDER BY date ASC
		LIMIT NULLIF($4, 0)
	`
	args := []any{userID, filter.From, filter.To, filter.Limit}

	var exercises []models.ExerciseDB
	err := r.db.SelectContext(ctx, &exercises, query, args...)

	logger.Log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result_count", len(exercises),
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	return exercises, nil
}
