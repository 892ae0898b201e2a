package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/lingoproject/lingoquiz/internal/domain/entities"
	"github.com/lingoproject/lingoquiz/internal/infra/postgres"
)

var ErrProgressNotFound = errors.New("progress not found")

// ProgressRepository provides access to user progress records.
// A (user, entry) pair maps to exactly one row, created on first
// interaction and never deleted.
type ProgressRepository struct {
	db postgres.DBTX
}

// NewProgressRepository creates a new ProgressRepository.
func NewProgressRepository(db postgres.DBTX) *ProgressRepository {
	return &ProgressRepository{db: db}
}

// WithTx returns a copy of the repository bound to the given transaction,
// so a read-modify-write over one record can run atomically.
func (r *ProgressRepository) WithTx(tx pgx.Tx) *ProgressRepository {
	return &ProgressRepository{db: tx}
}

// GetOrCreate returns the progress record for the (user, entry) pair,
// inserting the initial NEW record if none exists yet. The insert-or-read
// runs as a single statement so concurrent first interactions cannot
// create duplicates.
func (r *ProgressRepository) GetOrCreate(ctx context.Context, userID, entryID int64) (*entities.UserProgress, error) {
	query := `
		INSERT INTO user_progress (user_id, entry_id, mastery_level, times_viewed)
		VALUES ($1, $2, $3, 0)
		ON CONFLICT (user_id, entry_id) DO UPDATE SET user_id = EXCLUDED.user_id
		RETURNING user_id, entry_id, mastery_level, times_viewed, last_viewed_at
	`

	return r.scanRow(r.db.QueryRow(ctx, query, userID, entryID, string(entities.MasteryNew)))
}

// Get retrieves a single progress record.
func (r *ProgressRepository) Get(ctx context.Context, userID, entryID int64) (*entities.UserProgress, error) {
	query := `
		SELECT user_id, entry_id, mastery_level, times_viewed, last_viewed_at
		FROM user_progress
		WHERE user_id = $1 AND entry_id = $2
	`

	progress, err := r.scanRow(r.db.QueryRow(ctx, query, userID, entryID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrProgressNotFound
		}
		return nil, err
	}

	return progress, nil
}

// Save upserts the progress record keyed on the (user, entry) pair.
func (r *ProgressRepository) Save(ctx context.Context, progress *entities.UserProgress) error {
	query := `
		INSERT INTO user_progress (user_id, entry_id, mastery_level, times_viewed, last_viewed_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (user_id, entry_id) DO UPDATE SET
			mastery_level = EXCLUDED.mastery_level,
			times_viewed = EXCLUDED.times_viewed,
			last_viewed_at = EXCLUDED.last_viewed_at
	`

	_, err := r.db.Exec(
		ctx,
		query,
		progress.UserID,
		progress.EntryID,
		string(progress.Mastery),
		progress.TimesViewed,
		progress.LastViewedAt,
	)
	if err != nil {
		return fmt.Errorf("save progress: %w", err)
	}

	return nil
}

func (r *ProgressRepository) scanRow(row pgx.Row) (*entities.UserProgress, error) {
	var (
		progress entities.UserProgress
		mastery  string
	)

	err := row.Scan(
		&progress.UserID,
		&progress.EntryID,
		&mastery,
		&progress.TimesViewed,
		&progress.LastViewedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scan progress: %w", err)
	}

	progress.Mastery = entities.ParseMasteryLevel(mastery)
	return &progress, nil
}
