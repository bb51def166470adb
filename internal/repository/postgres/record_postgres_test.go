package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"stresstrack/internal/model"
	"stresstrack/internal/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

func TestRecordPostgres_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewRecordPostgres(db)
	ctx := context.Background()

	now := time.Now().UTC()

	t.Run("without image", func(t *testing.T) {
		rec := &model.StressRecord{
			UserID:      "u1",
			StressLevel: 3,
			Timestamp:   now,
		}

		mock.ExpectQuery("INSERT INTO stress_level_records").
			WithArgs("u1", 3, nil, now).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("generated-id"))

		result, err := repo.Create(ctx, rec)

		assert.NoError(t, err)
		assert.NotNil(t, result)
		assert.Equal(t, "generated-id", result.ID)
		assert.Equal(t, "u1", result.UserID)
		assert.Equal(t, 3, result.StressLevel)
		assert.Nil(t, result.Image)
		assert.Equal(t, now, result.Timestamp)
		// The input record must not be mutated; the id lives on the copy.
		assert.Empty(t, rec.ID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("with image", func(t *testing.T) {
		img := "https://storage.example.com/stress-images/abc.jpg"
		rec := &model.StressRecord{
			UserID:      "u1",
			StressLevel: 5,
			Image:       &img,
			Timestamp:   now,
		}

		mock.ExpectQuery("INSERT INTO stress_level_records").
			WithArgs("u1", 5, &img, now).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("other-id"))

		result, err := repo.Create(ctx, rec)

		assert.NoError(t, err)
		assert.Equal(t, "other-id", result.ID)
		assert.Equal(t, &img, result.Image)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("insert error propagates unchanged", func(t *testing.T) {
		dbErr := errors.New("connection reset")
		mock.ExpectQuery("INSERT INTO stress_level_records").
			WithArgs("u1", 2, nil, now).
			WillReturnError(dbErr)

		result, err := repo.Create(ctx, &model.StressRecord{UserID: "u1", StressLevel: 2, Timestamp: now})

		assert.ErrorIs(t, err, dbErr)
		assert.Nil(t, result)
	})
}

func TestRecordPostgres_ListByUser(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewRecordPostgres(db)
	ctx := context.Background()

	cols := []string{"id", "user_id", "stress_level", "image", "timestamp"}

	t.Run("page of records ordered newest first", func(t *testing.T) {
		newer := time.Now().UTC()
		older := newer.Add(-time.Hour)

		rows := sqlmock.NewRows(cols).
			AddRow("r1", "u1", 3, "img1", newer).
			AddRow("r2", "u1", 2, nil, older)

		mock.ExpectQuery("SELECT (.+) FROM stress_level_records WHERE user_id").
			WithArgs("u1", 10, 0).
			WillReturnRows(rows)

		res, err := repo.ListByUser(ctx, "u1", repository.PageQuery{Limit: 10, Offset: 0})

		assert.NoError(t, err)
		assert.Len(t, res, 2)
		assert.Equal(t, "r1", res[0].ID)
		assert.Equal(t, "u1", res[0].UserID)
		assert.Equal(t, 3, res[0].StressLevel)
		assert.NotNil(t, res[0].Image)
		assert.Equal(t, "img1", *res[0].Image)
		assert.Nil(t, res[1].Image)
		assert.True(t, res[0].Timestamp.After(res[1].Timestamp))
	})

	t.Run("second page uses the computed offset", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM stress_level_records WHERE user_id").
			WithArgs("u1", 10, 10).
			WillReturnRows(sqlmock.NewRows(cols))

		res, err := repo.ListByUser(ctx, "u1", repository.PageQuery{Limit: 10, Offset: 10})

		assert.NoError(t, err)
		assert.Empty(t, res)
	})

	t.Run("no rows is an empty slice, not an error", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM stress_level_records WHERE user_id").
			WithArgs("nobody", 5, 0).
			WillReturnRows(sqlmock.NewRows(cols))

		res, err := repo.ListByUser(ctx, "nobody", repository.PageQuery{Limit: 5, Offset: 0})

		assert.NoError(t, err)
		assert.NotNil(t, res)
		assert.Empty(t, res)
	})

	t.Run("query error propagates unchanged", func(t *testing.T) {
		dbErr := errors.New("query timeout")
		mock.ExpectQuery("SELECT (.+) FROM stress_level_records WHERE user_id").
			WithArgs("u1", 10, 0).
			WillReturnError(dbErr)

		res, err := repo.ListByUser(ctx, "u1", repository.PageQuery{Limit: 10, Offset: 0})

		assert.ErrorIs(t, err, dbErr)
		assert.Nil(t, res)
	})
}
