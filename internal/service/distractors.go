package service

import (
	"math/rand"
	"strings"

	"github.com/lingoproject/lingoquiz/internal/config"
	"github.com/lingoproject/lingoquiz/internal/domain/entities"
)

// DistractorSelector picks wrong answers for a question from a pool of
// candidate entries. Same-category candidates are preferred because they
// make harder, more realistic questions.
type DistractorSelector struct {
	resolver   *MeaningResolver
	classifier *QualityClassifier
	similarity *SimilarityChecker

	sameCategoryCap  int
	otherCategoryCap int

	rng *rand.Rand
}

// NewDistractorSelector creates a selector. The random source is injected
// so tests can supply a deterministic seed.
func NewDistractorSelector(
	resolver *MeaningResolver,
	classifier *QualityClassifier,
	similarity *SimilarityChecker,
	cfg config.Quiz,
	rng *rand.Rand,
) *DistractorSelector {
	return &DistractorSelector{
		resolver:         resolver,
		classifier:       classifier,
		similarity:       similarity,
		sameCategoryCap:  cfg.SameCategoryCap,
		otherCategoryCap: cfg.OtherCategoryCap,
		rng:              rng,
	}
}

// Select collects up to count distractors for the correct meaning. The
// pool must not contain the source entry. exclude holds normalized
// answers that are already in use elsewhere in the batch and must not
// reappear. A result shorter than count means the caller has to drop the
// question entirely: a question with missing or duplicate distractors is
// a correctness violation, not a partial success.
func (s *DistractorSelector) Select(
	correctMeaning string,
	category entities.Category,
	pool []*entities.Entry,
	targetLanguage string,
	exclude map[string]struct{},
	count int,
) []string {
	candidates := s.orderCandidates(pool, category)

	correctNormalized := normalizeAnswer(correctMeaning)
	chosen := make(map[string]struct{}, count)
	distractors := make([]string, 0, count)

	for _, candidate := range candidates {
		if len(distractors) >= count {
			break
		}

		meaning, ok := s.resolver.Resolve(candidate, targetLanguage)
		if !ok {
			continue
		}
		if !s.classifier.IsValidQuizOption(meaning, candidate.Term) {
			continue
		}

		normalized := normalizeAnswer(meaning)
		if normalized == correctNormalized {
			continue
		}
		if _, dup := chosen[normalized]; dup {
			continue
		}
		if _, used := exclude[normalized]; used {
			continue
		}
		if s.similarity.TooSimilar(correctMeaning, meaning) {
			continue
		}

		distractors = append(distractors, meaning)
		chosen[normalized] = struct{}{}
	}

	return distractors
}

// orderCandidates caps both category partitions to bound work, puts the
// same-category partition first and shuffles the combined list, giving a
// randomized but category-biased ordering.
func (s *DistractorSelector) orderCandidates(pool []*entities.Entry, category entities.Category) []*entities.Entry {
	same := make([]*entities.Entry, 0, s.sameCategoryCap)
	other := make([]*entities.Entry, 0, s.otherCategoryCap)

	for _, entry := range pool {
		if entry.Category == category {
			if len(same) < s.sameCategoryCap {
				same = append(same, entry)
			}
		} else {
			if len(other) < s.otherCategoryCap {
				other = append(other, entry)
			}
		}
		if len(same) >= s.sameCategoryCap && len(other) >= s.otherCategoryCap {
			break
		}
	}

	combined := make([]*entities.Entry, 0, len(same)+len(other))
	combined = append(combined, same...)
	combined = append(combined, other...)

	s.rng.Shuffle(len(combined), func(i, j int) {
		combined[i], combined[j] = combined[j], combined[i]
	})

	return combined
}

// normalizeAnswer is the case- and whitespace-insensitive form used for
// all answer deduplication.
func normalizeAnswer(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
