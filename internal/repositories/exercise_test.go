package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/avolkodav/fitlog/internal/models"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestExerciseWriteRepository_Save(t *testing.T) {
	db, teardown := setupPostgresContainer(t)
	defer teardown()

	users := NewUserWriteRepository(db)
	repo := NewExerciseWriteRepository(db)
	ctx := context.Background()

	userID, err := users.Save(ctx, "alice")
	assert.NoError(t, err)

	exercise, err := repo.Save(ctx, userID, "run", 30, date(2023, time.January, 5))
	assert.NoError(t, err)
	assert.NotNil(t, exercise)
	assert.NotEqual(t, uuid.Nil, exercise.ExerciseID)
	assert.Equal(t, userID, exercise.UserID)
	assert.Equal(t, "run", exercise.Description)
	assert.Equal(t, 30, exercise.Duration)
	assert.Equal(t, "2023-01-05", exercise.Date.Format("2006-01-02"))
}

func TestExerciseReadRepository_ListByUser(t *testing.T) {
	db, teardown := setupPostgresContainer(t)
	defer teardown()

	users := NewUserWriteRepository(db)
	writeRepo := NewExerciseWriteRepository(db)
	readRepo := NewExerciseReadRepository(db)
	ctx := context.Background()

	userID, err := users.Save(ctx, "alice")
	assert.NoError(t, err)
	otherID, err := users.Save(ctx, "bob")
	assert.NoError(t, err)

	// Inserted out of chronological order on purpose.
	entries := []struct {
		description string
		duration    int
		day         time.Time
	}{
		{"swim", 45, date(2023, time.January, 7)},
		{"run", 30, date(2023, time.January, 5)},
		{"bike", 60, date(2023, time.February, 1)},
		{"row", 20, date(2023, time.January, 20)},
	}
	for _, e := range entries {
		_, err := writeRepo.Save(ctx, userID, e.description, e.duration, e.day)
		assert.NoError(t, err)
	}
	_, err = writeRepo.Save(ctx, otherID, "walk", 15, date(2023, time.January, 6))
	assert.NoError(t, err)

	t.Run("no filter returns all entries ascending by date", func(t *testing.T) {
		got, err := readRepo.ListByUser(ctx, userID, models.LogFilter{})
		assert.NoError(t, err)
		assert.Len(t, got, 4)

		descriptions := make([]string, 0, len(got))
		for i, e := range got {
			descriptions = append(descriptions, e.Description)
			if i > 0 {
				assert.False(t, e.Date.Before(got[i-1].Date))
			}
			assert.Equal(t, userID, e.UserID)
		}
		assert.Equal(t, []string{"run", "swim", "row", "bike"}, descriptions)
	})

	t.Run("inclusive date range", func(t *testing.T) {
		from := date(2023, time.January, 5)
		to := date(2023, time.January, 20)

		got, err := readRepo.ListByUser(ctx, userID, models.LogFilter{From: &from, To: &to})
		assert.NoError(t, err)
		assert.Len(t, got, 3)
		for _, e := range got {
			assert.False(t, e.Date.Before(from))
			assert.False(t, e.Date.After(to))
		}
	})

	t.Run("lower bound only", func(t *testing.T) {
		from := date(2023, time.January, 10)

		got, err := readRepo.ListByUser(ctx, userID, models.LogFilter{From: &from})
		assert.NoError(t, err)
		assert.Len(t, got, 2)
	})

	t.Run("limit caps the result", func(t *testing.T) {
		got, err := readRepo.ListByUser(ctx, userID, models.LogFilter{Limit: 2})
		assert.NoError(t, err)
		assert.Len(t, got, 2)
		assert.Equal(t, "run", got[0].Description)
		assert.Equal(t, "swim", got[1].Description)
	})

	t.Run("zero limit means unbounded", func(t *testing.T) {
		got, err := readRepo.ListByUser(ctx, userID, models.LogFilter{Limit: 0})
		assert.NoError(t, err)
		assert.Len(t, got, 4)
	})

	t.Run("unknown user yields no entries", func(t *testing.T) {
		got, err := readRepo.ListByUser(ctx, uuid.New(), models.LogFilter{})
		assert.NoError(t, err)
		assert.Empty(t, got)
	})
}
