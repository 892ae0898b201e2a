package entities

import "time"

// MasteryLevel is a user's quiz-derived familiarity with an entry.
type MasteryLevel string

const (
	MasteryNew          MasteryLevel = "NEW"
	MasteryLearning     MasteryLevel = "LEARNING"
	MasteryIntermediate MasteryLevel = "INTERMEDIATE"
	MasteryAdvanced     MasteryLevel = "ADVANCED"
	MasteryMastered     MasteryLevel = "MASTERED"
)

// masteryAdvance moves one level up on a correct answer. MASTERED is a
// fixed point.
var masteryAdvance = map[MasteryLevel]MasteryLevel{
	MasteryNew:          MasteryLearning,
	MasteryLearning:     MasteryIntermediate,
	MasteryIntermediate: MasteryAdvanced,
	MasteryAdvanced:     MasteryMastered,
	MasteryMastered:     MasteryMastered,
}

// masteryRegress moves one level down on an incorrect answer. Incorrect
// answers never push a learner below LEARNING once reached, and never
// below NEW.
var masteryRegress = map[MasteryLevel]MasteryLevel{
	MasteryNew:          MasteryNew,
	MasteryLearning:     MasteryLearning,
	MasteryIntermediate: MasteryLearning,
	MasteryAdvanced:     MasteryIntermediate,
	MasteryMastered:     MasteryAdvanced,
}

// ParseMasteryLevel maps a stored string to a known level, defaulting to
// NEW for anything unrecognized.
func ParseMasteryLevel(raw string) MasteryLevel {
	switch MasteryLevel(raw) {
	case MasteryLearning:
		return MasteryLearning
	case MasteryIntermediate:
		return MasteryIntermediate
	case MasteryAdvanced:
		return MasteryAdvanced
	case MasteryMastered:
		return MasteryMastered
	default:
		return MasteryNew
	}
}

// Advance returns the next level after a correct answer.
func (m MasteryLevel) Advance() MasteryLevel {
	if next, ok := masteryAdvance[m]; ok {
		return next
	}
	return MasteryLearning
}

// Regress returns the next level after an incorrect answer.
func (m MasteryLevel) Regress() MasteryLevel {
	if next, ok := masteryRegress[m]; ok {
		return next
	}
	return MasteryNew
}

// UserProgress tracks one user's learning state for one entry.
// There is exactly one record per (user, entry) pair; it is created on
// first interaction and never deleted.
type UserProgress struct {
	UserID       int64
	EntryID      int64
	Mastery      MasteryLevel
	TimesViewed  int
	LastViewedAt *time.Time // nullable
}

// NewUserProgress creates the initial progress record for a (user, entry)
// pair.
func NewUserProgress(userID, entryID int64) *UserProgress {
	return &UserProgress{
		UserID:  userID,
		EntryID: entryID,
		Mastery: MasteryNew,
	}
}

// ApplyAnswer moves the record by exactly one level in one direction.
// Each answer is a simple ratchet step regardless of past history.
func (p *UserProgress) ApplyAnswer(wasCorrect bool) {
	if wasCorrect {
		p.Mastery = p.Mastery.Advance()
		return
	}
	p.Mastery = p.Mastery.Regress()
}

// MarkViewed records a view event. Views increment the counter without
// changing the mastery level.
func (p *UserProgress) MarkViewed(now time.Time) {
	p.TimesViewed++
	p.LastViewedAt = &now
}
