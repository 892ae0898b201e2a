package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/lingoproject/lingoquiz/internal/domain/entities"
	"github.com/lingoproject/lingoquiz/internal/infra/postgres/repository"
)

// Transactor runs a function inside a single database transaction.
type Transactor interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context, tx pgx.Tx) error) error
}

// ProgressService applies quiz answers and view events to mastery
// records. Every read-modify-write runs inside one transaction, so two
// racing answers for the same (user, entry) pair serialize on the row
// instead of losing a ratchet step.
type ProgressService struct {
	tr         Transactor
	repository *repository.ProgressRepository
	log        *zap.Logger
}

// NewProgressService creates a progress service.
func NewProgressService(tr Transactor, repo *repository.ProgressRepository, log *zap.Logger) *ProgressService {
	return &ProgressService{
		tr:         tr,
		repository: repo,
		log:        log,
	}
}

// SubmitAnswer advances or regresses the mastery level by exactly one
// step and returns the updated record.
func (s *ProgressService) SubmitAnswer(
	ctx context.Context,
	userID, entryID int64,
	wasCorrect bool,
) (*entities.UserProgress, error) {
	var updated *entities.UserProgress

	err := s.tr.WithinTx(ctx, func(ctx context.Context, tx pgx.Tx) error {
		repo := s.repository.WithTx(tx)

		progress, err := repo.GetOrCreate(ctx, userID, entryID)
		if err != nil {
			return fmt.Errorf("get progress: %w", err)
		}

		before := progress.Mastery
		progress.ApplyAnswer(wasCorrect)

		if err := repo.Save(ctx, progress); err != nil {
			return fmt.Errorf("save progress: %w", err)
		}

		s.log.Debug("answer recorded",
			zap.Int64("user_id", userID),
			zap.Int64("entry_id", entryID),
			zap.Bool("correct", wasCorrect),
			zap.String("from", string(before)),
			zap.String("to", string(progress.Mastery)),
		)

		updated = progress
		return nil
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}

// MarkAsViewed records a view event for the entry. Views never change the
// mastery level.
func (s *ProgressService) MarkAsViewed(ctx context.Context, userID, entryID int64) (*entities.UserProgress, error) {
	var updated *entities.UserProgress

	err := s.tr.WithinTx(ctx, func(ctx context.Context, tx pgx.Tx) error {
		repo := s.repository.WithTx(tx)

		progress, err := repo.GetOrCreate(ctx, userID, entryID)
		if err != nil {
			return fmt.Errorf("get progress: %w", err)
		}

		progress.MarkViewed(time.Now())

		if err := repo.Save(ctx, progress); err != nil {
			return fmt.Errorf("save progress: %w", err)
		}

		updated = progress
		return nil
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}

// Progress returns the stored mastery record without creating one; a
// user who never interacted with the entry gets the initial NEW record.
func (s *ProgressService) Progress(ctx context.Context, userID, entryID int64) (*entities.UserProgress, error) {
	progress, err := s.repository.Get(ctx, userID, entryID)
	if err != nil {
		if errors.Is(err, repository.ErrProgressNotFound) {
			return entities.NewUserProgress(userID, entryID), nil
		}
		return nil, fmt.Errorf("get progress: %w", err)
	}

	return progress, nil
}
