package main

import (
	"context"
	"encoding/json"
	"flag"
	"log"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/lingoproject/lingoquiz/internal/config"
	"github.com/lingoproject/lingoquiz/internal/content"
	"github.com/lingoproject/lingoquiz/internal/domain/entities"
	"github.com/lingoproject/lingoquiz/internal/infra/postgres"
	"github.com/lingoproject/lingoquiz/internal/infra/postgres/repository"
	"github.com/lingoproject/lingoquiz/internal/logger"
	"github.com/lingoproject/lingoquiz/internal/service"
)

// quizgen generates a quiz batch from the content store and prints it as
// JSON, for smoke-testing content quality against a live database.
func main() {
	var (
		language = flag.String("language", "", "source language code filter (e.g. es)")
		category = flag.String("category", "", "category filter (e.g. slang)")
		target   = flag.String("target", "en", "language of prompts and options")
		count    = flag.Int("count", 5, "number of questions to request")
		seed     = flag.Int64("seed", 0, "random seed, 0 derives one from the clock")
		userID   = flag.Int64("user", 0, "record a view for this user on every generated entry")
	)
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	zl, err := logger.New(cfg)
	if err != nil {
		log.Fatal(err)
	}
	defer func() { _ = zl.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	bundle, err := content.LoadBundle(cfg.ContentPath)
	if err != nil {
		zl.Fatal("load content bundle", zap.Error(err))
	}

	dsn, err := cfg.DB.DSN()
	if err != nil {
		zl.Fatal("resolve database url", zap.Error(err))
	}

	pool, err := postgres.NewPool(ctx, dsn, postgres.PoolConfig{
		MaxConns:        int32(cfg.DB.MaxConnections),
		MaxConnLifetime: cfg.DB.MaxConnLifetime,
	})
	if err != nil {
		zl.Fatal("connect to postgres", zap.Error(err))
	}
	defer pool.Close()

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(*seed))

	classifier := service.NewQualityClassifier(bundle.Rules, cfg.Quiz)
	resolver := service.NewMeaningResolver(classifier, bundle.Glossary, bundle.Scripts)
	similarity := service.NewSimilarityChecker(bundle.Rules.StopWords, cfg.Quiz.SimilarityThreshold)
	distractors := service.NewDistractorSelector(resolver, classifier, similarity, cfg.Quiz, rng)

	quiz := service.NewQuizService(
		repository.NewEntryRepository(pool),
		classifier,
		resolver,
		distractors,
		bundle.Templates,
		bundle.Glossary,
		cfg.Quiz,
		rng,
		zl,
	)

	batch, err := quiz.GenerateQuiz(ctx, service.Filters{
		LanguageCode: *language,
		Category:     entities.ParseCategory(*category),
	}, *target, *count)
	if err != nil {
		zl.Fatal("generate quiz", zap.Error(err))
	}

	if *userID != 0 {
		progress := service.NewProgressService(
			postgres.NewTransactor(pool),
			repository.NewProgressRepository(pool),
			zl,
		)
		for _, q := range batch.Questions {
			if _, err := progress.MarkAsViewed(ctx, *userID, q.SourceEntryID); err != nil {
				zl.Warn("mark entry viewed",
					zap.Int64("entry_id", q.SourceEntryID),
					zap.Error(err),
				)
			}
		}
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(batch); err != nil {
		zl.Fatal("encode batch", zap.Error(err))
	}

	zl.Info("quiz generated",
		zap.Int("requested", *count),
		zap.Int("produced", batch.Count),
		zap.Int64("seed", *seed),
	)
}
