package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/lingoproject/lingoquiz/internal/domain/entities"
	"github.com/lingoproject/lingoquiz/internal/infra/postgres"
	"github.com/lingoproject/lingoquiz/internal/infra/postgres/repository"
)

func newProgressFixture(t *testing.T) (pgxmock.PgxPoolIface, *ProgressService) {
	t.Helper()

	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)

	s := NewProgressService(
		postgres.NewTransactor(mock),
		repository.NewProgressRepository(mock),
		zap.NewNop(),
	)
	return mock, s
}

func progressRows(userID, entryID int64, mastery string, timesViewed int, viewedAt *time.Time) *pgxmock.Rows {
	return pgxmock.NewRows([]string{
		"user_id", "entry_id", "mastery_level", "times_viewed", "last_viewed_at",
	}).AddRow(userID, entryID, mastery, timesViewed, viewedAt)
}

func TestProgressService_SubmitAnswer_FirstCorrect(t *testing.T) {
	t.Parallel()

	mock, s := newProgressFixture(t)

	// The whole read-modify-write happens between begin and commit.
	mock.ExpectBegin()
	mock.ExpectQuery("INSERT INTO user_progress").
		WithArgs(int64(7), int64(42), "NEW").
		WillReturnRows(progressRows(7, 42, "NEW", 0, nil))
	mock.ExpectExec("INSERT INTO user_progress").
		WithArgs(int64(7), int64(42), "LEARNING", 0, (*time.Time)(nil)).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	mock.ExpectCommit()

	progress, err := s.SubmitAnswer(context.Background(), 7, 42, true)
	require.NoError(t, err)
	assert.Equal(t, entities.MasteryLearning, progress.Mastery)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProgressService_SubmitAnswer_IncorrectRegresses(t *testing.T) {
	t.Parallel()

	mock, s := newProgressFixture(t)

	mock.ExpectBegin()
	mock.ExpectQuery("INSERT INTO user_progress").
		WithArgs(int64(7), int64(42), "NEW").
		WillReturnRows(progressRows(7, 42, "MASTERED", 12, nil))
	mock.ExpectExec("INSERT INTO user_progress").
		WithArgs(int64(7), int64(42), "ADVANCED", 12, (*time.Time)(nil)).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	mock.ExpectCommit()

	progress, err := s.SubmitAnswer(context.Background(), 7, 42, false)
	require.NoError(t, err)
	assert.Equal(t, entities.MasteryAdvanced, progress.Mastery)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProgressService_SubmitAnswer_RollbackOnSaveError(t *testing.T) {
	t.Parallel()

	mock, s := newProgressFixture(t)

	errSave := errors.New("deadlock detected")
	mock.ExpectBegin()
	mock.ExpectQuery("INSERT INTO user_progress").
		WithArgs(int64(7), int64(42), "NEW").
		WillReturnRows(progressRows(7, 42, "LEARNING", 1, nil))
	mock.ExpectExec("INSERT INTO user_progress").
		WillReturnError(errSave)
	mock.ExpectRollback()

	progress, err := s.SubmitAnswer(context.Background(), 7, 42, true)
	assert.Nil(t, progress)
	assert.ErrorIs(t, err, errSave)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProgressService_SubmitAnswer_GetError(t *testing.T) {
	t.Parallel()

	mock, s := newProgressFixture(t)

	errGet := errors.New("connection refused")
	mock.ExpectBegin()
	mock.ExpectQuery("INSERT INTO user_progress").
		WillReturnError(errGet)
	mock.ExpectRollback()

	progress, err := s.SubmitAnswer(context.Background(), 7, 42, true)
	assert.Nil(t, progress)
	assert.ErrorIs(t, err, errGet)
}

func TestProgressService_MarkAsViewed(t *testing.T) {
	t.Parallel()

	mock, s := newProgressFixture(t)

	mock.ExpectBegin()
	mock.ExpectQuery("INSERT INTO user_progress").
		WithArgs(int64(7), int64(42), "NEW").
		WillReturnRows(progressRows(7, 42, "LEARNING", 2, nil))
	mock.ExpectExec("INSERT INTO user_progress").
		WithArgs(int64(7), int64(42), "LEARNING", 3, pgxmock.AnyArg()).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	mock.ExpectCommit()

	progress, err := s.MarkAsViewed(context.Background(), 7, 42)
	require.NoError(t, err)

	assert.Equal(t, 3, progress.TimesViewed)
	assert.Equal(t, entities.MasteryLearning, progress.Mastery, "views must not change mastery")
	require.NotNil(t, progress.LastViewedAt)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProgressService_Progress(t *testing.T) {
	t.Parallel()

	mock, s := newProgressFixture(t)

	viewedAt := time.Date(2026, 8, 27, 10, 30, 0, 0, time.UTC)
	mock.ExpectQuery("SELECT user_id, entry_id, mastery_level").
		WithArgs(int64(7), int64(42)).
		WillReturnRows(progressRows(7, 42, "ADVANCED", 9, &viewedAt))

	progress, err := s.Progress(context.Background(), 7, 42)
	require.NoError(t, err)
	assert.Equal(t, entities.MasteryAdvanced, progress.Mastery)
	assert.Equal(t, 9, progress.TimesViewed)
}

func TestProgressService_Progress_NeverInteracted(t *testing.T) {
	t.Parallel()

	mock, s := newProgressFixture(t)

	mock.ExpectQuery("SELECT user_id, entry_id, mastery_level").
		WithArgs(int64(7), int64(42)).
		WillReturnError(pgx.ErrNoRows)

	progress, err := s.Progress(context.Background(), 7, 42)
	require.NoError(t, err)
	assert.Equal(t, entities.MasteryNew, progress.Mastery)
	assert.Zero(t, progress.TimesViewed)
	assert.Equal(t, int64(7), progress.UserID)
	assert.Equal(t, int64(42), progress.EntryID)
}
