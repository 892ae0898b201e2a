package service

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"unicode/utf8"

	"go.uber.org/zap"

	"github.com/lingoproject/lingoquiz/internal/config"
	"github.com/lingoproject/lingoquiz/internal/content"
	"github.com/lingoproject/lingoquiz/internal/domain/entities"
)

// ErrInsufficientContent is returned when zero valid questions can be
// built from the available pool. A partial batch is not an error; an
// empty one always is.
var ErrInsufficientContent = errors.New("not enough high-quality content for quiz")

// EntryRepository is the read-only view of the external content store.
// An empty languageCode or unset category means no filtering on that
// dimension.
type EntryRepository interface {
	Query(ctx context.Context, languageCode string, category entities.Category) ([]*entities.Entry, error)
}

// Filters narrows the entry pool for one quiz request.
type Filters struct {
	LanguageCode string
	Category     entities.Category
}

// QuizService assembles multiple choice question batches from raw
// dictionary entries.
type QuizService struct {
	entries     EntryRepository
	classifier  *QualityClassifier
	resolver    *MeaningResolver
	distractors *DistractorSelector
	templates   *content.Templates
	glossary    content.Glossary

	distractorCount  int
	choiceCount      int
	sampleMultiplier int

	rng *rand.Rand
	log *zap.Logger
}

// NewQuizService creates a quiz assembler. The random source is injected
// so tests can supply a deterministic seed.
func NewQuizService(
	entries EntryRepository,
	classifier *QualityClassifier,
	resolver *MeaningResolver,
	distractors *DistractorSelector,
	templates *content.Templates,
	glossary content.Glossary,
	cfg config.Quiz,
	rng *rand.Rand,
	log *zap.Logger,
) *QuizService {
	return &QuizService{
		entries:          entries,
		classifier:       classifier,
		resolver:         resolver,
		distractors:      distractors,
		templates:        templates,
		glossary:         glossary,
		distractorCount:  cfg.DistractorCount,
		choiceCount:      cfg.ChoiceCount,
		sampleMultiplier: cfg.SampleMultiplier,
		rng:              rng,
		log:              log,
	}
}

// GenerateQuiz builds up to count questions from entries matching the
// filters, with meanings and options in the target language. The batch
// may be shorter than requested; it is never empty. Within one batch no
// two questions share a term and no two questions share a correct answer.
func (s *QuizService) GenerateQuiz(
	ctx context.Context,
	filters Filters,
	targetLanguage string,
	count int,
) (*entities.QuizBatch, error) {
	if count <= 0 {
		return nil, ErrInsufficientContent
	}

	pool, err := s.entries.Query(ctx, filters.LanguageCode, filters.Category)
	if err != nil {
		return nil, fmt.Errorf("query entries: %w", err)
	}

	available := s.prioritizeCandidates(pool, targetLanguage, count)
	sampled := s.sample(available, count*s.sampleMultiplier)

	usedTerms := make(map[string]struct{})
	usedAnswers := make(map[string]struct{})
	questions := make([]entities.QuizQuestion, 0, count)

	for _, entry := range sampled {
		if len(questions) >= count {
			break
		}

		termKey := strings.ToLower(entry.Term)
		if _, used := usedTerms[termKey]; used {
			continue
		}

		correct, ok := s.resolver.Resolve(entry, targetLanguage)
		if !ok || !s.classifier.IsValidQuizOption(correct, entry.Term) {
			continue
		}

		normalized := normalizeAnswer(correct)
		if _, used := usedAnswers[normalized]; used {
			continue
		}

		distractors := s.distractors.Select(
			correct,
			entry.Category,
			distractorPool(pool, entry),
			targetLanguage,
			usedAnswers,
			s.distractorCount,
		)
		if len(distractors) < s.distractorCount {
			s.log.Debug("dropping entry: not enough quality distractors",
				zap.String("term", entry.Term),
				zap.Int("found", len(distractors)),
			)
			continue
		}

		choices, correctIndex := s.buildChoices(correct, distractors)
		if len(choices) != s.choiceCount {
			// distractor_count and choice_count disagree in the config.
			s.log.Warn("dropping entry: choice count mismatch",
				zap.String("term", entry.Term),
				zap.Int("choices", len(choices)),
				zap.Int("want", s.choiceCount),
			)
			continue
		}

		questions = append(questions, entities.QuizQuestion{
			SourceEntryID: entry.ID,
			Prompt:        s.templates.Prompt(entry.Category, targetLanguage, entry.Term),
			Choices:       choices,
			CorrectIndex:  correctIndex,
			CorrectAnswer: correct,
			LanguageCode:  entry.LanguageCode,
			Category:      entry.Category,
			Explanation:   s.buildExplanation(entry, targetLanguage),
		})

		usedTerms[termKey] = struct{}{}
		usedAnswers[normalized] = struct{}{}
	}

	if len(questions) == 0 {
		return nil, ErrInsufficientContent
	}

	return &entities.QuizBatch{
		Questions: questions,
		Count:     len(questions),
	}, nil
}

// prioritizeCandidates orders the pool by content quality: entries with a
// non-generic curated meaning first, then glossary-backed terms, then, if
// the set is still short of count*3 candidates, other entries whose
// resolved meaning would survive option validation.
func (s *QuizService) prioritizeCandidates(
	pool []*entities.Entry,
	targetLanguage string,
	count int,
) []*entities.Entry {
	seen := make(map[int64]struct{}, len(pool))
	available := make([]*entities.Entry, 0, len(pool))

	for _, entry := range pool {
		curated := entry.CuratedMeaning(targetLanguage)
		if curated == "" || s.classifier.IsGeneric(curated) {
			continue
		}
		available = append(available, entry)
		seen[entry.ID] = struct{}{}
	}

	glossaryTerms := s.glossary.Terms(targetLanguage)
	for _, entry := range pool {
		if _, ok := seen[entry.ID]; ok {
			continue
		}
		if _, ok := glossaryTerms[strings.ToLower(entry.Term)]; !ok {
			continue
		}
		available = append(available, entry)
		seen[entry.ID] = struct{}{}
	}

	if len(available) >= count*3 {
		return available
	}

	extra := 0
	for _, entry := range pool {
		if _, ok := seen[entry.ID]; ok {
			continue
		}
		meaning, ok := s.resolver.Resolve(entry, targetLanguage)
		if !ok || !s.classifier.IsValidQuizOption(meaning, entry.Term) {
			continue
		}
		available = append(available, entry)
		seen[entry.ID] = struct{}{}
		extra++
		if extra >= count*2 {
			break
		}
	}

	return available
}

// sample returns up to limit entries in random order, diversifying
// question selection across repeated calls.
func (s *QuizService) sample(entries []*entities.Entry, limit int) []*entities.Entry {
	shuffled := append([]*entities.Entry(nil), entries...)
	s.rng.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	if len(shuffled) > limit {
		return shuffled[:limit]
	}
	return shuffled
}

// distractorPool returns the candidates usable as distractor sources for
// the given entry: same language, excluding the entry itself.
func distractorPool(pool []*entities.Entry, source *entities.Entry) []*entities.Entry {
	candidates := make([]*entities.Entry, 0, len(pool))
	for _, entry := range pool {
		if entry.ID == source.ID {
			continue
		}
		if entry.LanguageCode != source.LanguageCode {
			continue
		}
		candidates = append(candidates, entry)
	}
	return candidates
}

// buildChoices shuffles the correct answer in with the distractors and
// returns the resulting options and the index of the correct one.
func (s *QuizService) buildChoices(correct string, distractors []string) ([]string, int) {
	choices := make([]string, 0, 1+len(distractors))
	choices = append(choices, correct)
	choices = append(choices, distractors...)

	s.rng.Shuffle(len(choices), func(i, j int) {
		choices[i], choices[j] = choices[j], choices[i]
	})

	correctIndex := 0
	for i, choice := range choices {
		if choice == correct {
			correctIndex = i
			break
		}
	}

	return choices, correctIndex
}

// buildExplanation renders the answer explanation: category, regional
// context and the entry's notes when they are short and usable.
func (s *QuizService) buildExplanation(entry *entities.Entry, targetLanguage string) string {
	var parts []string

	if entry.Category != entities.CategoryUnset {
		parts = append(parts, s.templates.CategoryLead(entry.Category, targetLanguage))
	}
	if entry.RegionCode != "" {
		parts = append(parts, s.templates.RegionNote(targetLanguage, entry.RegionCode))
	}
	if entry.Notes != "" && utf8.RuneCountInString(entry.Notes) < 200 && !s.classifier.IsGeneric(entry.Notes) {
		parts = append(parts, strings.TrimSpace(entry.Notes))
	}

	return strings.Join(parts, ". ")
}
