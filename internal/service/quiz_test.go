package service

import (
	"context"
	"errors"
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/lingoproject/lingoquiz/internal/config"
	"github.com/lingoproject/lingoquiz/internal/content"
	"github.com/lingoproject/lingoquiz/internal/domain/entities"
)

type fakeEntryRepo struct {
	entries []*entities.Entry
	err     error
	calls   int
}

func (f *fakeEntryRepo) Query(_ context.Context, languageCode string, category entities.Category) ([]*entities.Entry, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}

	matched := make([]*entities.Entry, 0, len(f.entries))
	for _, entry := range f.entries {
		if languageCode != "" && entry.LanguageCode != languageCode {
			continue
		}
		if category != entities.CategoryUnset && entry.Category != category {
			continue
		}
		matched = append(matched, entry)
	}
	return matched, nil
}

func newTestQuizService(repo EntryRepository, seed int64) *QuizService {
	cfg := config.DefaultQuiz()
	classifier := newTestClassifier()
	resolver := newTestResolver()
	selector := NewDistractorSelector(
		resolver,
		classifier,
		newTestSimilarity(),
		cfg,
		rand.New(rand.NewSource(seed)),
	)

	return NewQuizService(
		repo,
		classifier,
		resolver,
		selector,
		content.DefaultTemplates(),
		content.DefaultGlossary(),
		cfg,
		rand.New(rand.NewSource(seed+100)),
		zap.NewNop(),
	)
}

func quizEntry(id int64, term string, category entities.Category, meaningEN string) *entities.Entry {
	return &entities.Entry{
		ID:           id,
		Term:         term,
		LanguageCode: "es",
		Category:     category,
		Meanings:     map[string]string{"en": meaningEN},
	}
}

func richPool() []*entities.Entry {
	return []*entities.Entry{
		quizEntry(1, "laburo", entities.CategorySlang, "Paid employment attended daily."),
		quizEntry(2, "pibe", entities.CategorySlang, "Youthful kid around neighbourhood."),
		quizEntry(3, "bondi", entities.CategorySlang, "Crowded municipal bus."),
		quizEntry(4, "tinto", entities.CategorySlang, "Dark roasted coffee drink."),
		quizEntry(5, "fiaca", entities.CategorySlang, "Deep physical laziness."),
		quizEntry(6, "quilombo", entities.CategorySlang, "Chaotic noisy disturbance."),
		quizEntry(7, "chamuyo", entities.CategorySlang, "Smooth persuasive flattery."),
		quizEntry(8, "mango", entities.CategorySlang, "Single unit currency."),
	}
}

func TestQuizService_GenerateQuiz_BatchInvariants(t *testing.T) {
	t.Parallel()

	repo := &fakeEntryRepo{entries: richPool()}
	s := newTestQuizService(repo, 1)

	batch, err := s.GenerateQuiz(context.Background(), Filters{LanguageCode: "es"}, "en", 2)
	require.NoError(t, err)
	require.Len(t, batch.Questions, 2)
	assert.Equal(t, 2, batch.Count)

	terms := make(map[string]struct{})
	answers := make(map[string]struct{})

	for _, q := range batch.Questions {
		require.Len(t, q.Choices, 4)
		assert.Equal(t, q.CorrectAnswer, q.Choices[q.CorrectIndex])
		assert.Contains(t, q.Prompt, `"`)
		assert.NotZero(t, q.SourceEntryID)
		assert.Equal(t, "es", q.LanguageCode)

		unique := make(map[string]struct{})
		for _, choice := range q.Choices {
			_, dup := unique[strings.ToLower(choice)]
			assert.False(t, dup, "duplicate choice %q", choice)
			unique[strings.ToLower(choice)] = struct{}{}
		}

		srcTerm := termByID(t, repo.entries, q.SourceEntryID)
		assert.Contains(t, q.Prompt, srcTerm)

		_, termDup := terms[strings.ToLower(srcTerm)]
		assert.False(t, termDup, "term %q reused within batch", srcTerm)
		terms[strings.ToLower(srcTerm)] = struct{}{}

		key := strings.ToLower(strings.TrimSpace(q.CorrectAnswer))
		_, ansDup := answers[key]
		assert.False(t, ansDup, "correct answer %q reused within batch", q.CorrectAnswer)
		answers[key] = struct{}{}
	}
}

func termByID(t *testing.T, entries []*entities.Entry, id int64) string {
	t.Helper()
	for _, entry := range entries {
		if entry.ID == id {
			return entry.Term
		}
	}
	t.Fatalf("question references unknown entry %d", id)
	return ""
}

func TestQuizService_GenerateQuiz_PartialBatch(t *testing.T) {
	t.Parallel()

	// Five quizzable entries can only sustain two questions: each question
	// consumes its correct answer, and later questions cannot reuse it as a
	// distractor, so the third question can no longer fill three slots.
	repo := &fakeEntryRepo{entries: richPool()[:5]}
	s := newTestQuizService(repo, 2)

	batch, err := s.GenerateQuiz(context.Background(), Filters{LanguageCode: "es"}, "en", 5)
	require.NoError(t, err)
	assert.Len(t, batch.Questions, 2)
	assert.Equal(t, 2, batch.Count)
}

func TestQuizService_GenerateQuiz_InsufficientContent(t *testing.T) {
	t.Parallel()

	repo := &fakeEntryRepo{entries: []*entities.Entry{
		{ID: 1, Term: "zzzxy", LanguageCode: "es", Notes: "slang term"},
		{ID: 2, Term: "qqwwz", LanguageCode: "es", Meanings: map[string]string{"en": "Translation needed"}},
	}}
	s := newTestQuizService(repo, 3)

	batch, err := s.GenerateQuiz(context.Background(), Filters{}, "en", 3)
	assert.Nil(t, batch)
	assert.ErrorIs(t, err, ErrInsufficientContent)
}

func TestQuizService_GenerateQuiz_CountMustBePositive(t *testing.T) {
	t.Parallel()

	repo := &fakeEntryRepo{entries: richPool()}
	s := newTestQuizService(repo, 4)

	for _, count := range []int{0, -1} {
		batch, err := s.GenerateQuiz(context.Background(), Filters{}, "en", count)
		assert.Nil(t, batch)
		assert.ErrorIs(t, err, ErrInsufficientContent)
	}
	assert.Zero(t, repo.calls, "store must not be queried for a non-positive count")
}

func TestQuizService_GenerateQuiz_RepositoryError(t *testing.T) {
	t.Parallel()

	errStore := errors.New("connection reset")
	repo := &fakeEntryRepo{err: errStore}
	s := newTestQuizService(repo, 5)

	batch, err := s.GenerateQuiz(context.Background(), Filters{}, "en", 3)
	assert.Nil(t, batch)
	assert.ErrorIs(t, err, errStore)
}

func TestQuizService_GenerateQuiz_PromptAndExplanation(t *testing.T) {
	t.Parallel()

	entries := []*entities.Entry{
		quizEntry(1, "boludo", entities.CategoryInsults, "Foolish gullible person."),
		quizEntry(2, "pelotudo", entities.CategoryInsults, "Extremely dumb individual."),
		quizEntry(3, "tarado", entities.CategoryInsults, "Brainless clumsy oaf."),
		quizEntry(4, "nabo", entities.CategoryInsults, "Hopeless silly fool."),
	}
	for _, entry := range entries {
		entry.RegionCode = "AR"
		entry.Notes = "Heard constantly around Buenos Aires"
	}

	repo := &fakeEntryRepo{entries: entries}
	s := newTestQuizService(repo, 6)

	batch, err := s.GenerateQuiz(context.Background(), Filters{Category: entities.CategoryInsults}, "en", 1)
	require.NoError(t, err)
	require.Len(t, batch.Questions, 1)

	q := batch.Questions[0]
	srcTerm := termByID(t, entries, q.SourceEntryID)

	assert.Equal(t, `What does the insult "`+srcTerm+`" mean?`, q.Prompt)
	assert.Equal(t, entities.CategoryInsults, q.Category)
	assert.Contains(t, q.Explanation, "This is a insult")
	assert.Contains(t, q.Explanation, "typical of AR")
	assert.Contains(t, q.Explanation, "Heard constantly around Buenos Aires")
}

func TestQuizService_GenerateQuiz_SpanishTarget(t *testing.T) {
	t.Parallel()

	entries := []*entities.Entry{
		quizEntry(1, "laburo", entities.CategorySlang, ""),
		quizEntry(2, "pibe", entities.CategorySlang, ""),
		quizEntry(3, "tinto", entities.CategorySlang, ""),
		quizEntry(4, "chamuyo", entities.CategorySlang, ""),
	}
	for _, entry := range entries {
		entry.Meanings = nil // force the glossary fallback
	}

	repo := &fakeEntryRepo{entries: entries}
	s := newTestQuizService(repo, 7)

	batch, err := s.GenerateQuiz(context.Background(), Filters{LanguageCode: "es"}, "es", 1)
	require.NoError(t, err)
	require.Len(t, batch.Questions, 1)

	q := batch.Questions[0]
	srcTerm := termByID(t, entries, q.SourceEntryID)
	assert.Equal(t, `¿Qué significa "`+srcTerm+`"?`, q.Prompt)
}
