package entities

// QuizQuestion is a single multiple choice question. Questions are
// constructed fresh for every quiz request and never persisted.
type QuizQuestion struct {
	SourceEntryID int64    // entry the question was built from
	Prompt        string   // question text shown to the learner
	Choices       []string // exactly 4 unique options
	CorrectIndex  int      // index of the correct choice (0-3)
	CorrectAnswer string   // the correct meaning, duplicated for convenience
	LanguageCode  string   // language of the source entry
	Category      Category // category of the source entry
	Explanation   string   // optional answer explanation
}

// QuizBatch is an ordered list of questions produced by one quiz request.
// Count mirrors len(Questions); a batch shorter than requested is a valid
// outcome as long as it is not empty.
type QuizBatch struct {
	Questions []QuizQuestion
	Count     int
}
