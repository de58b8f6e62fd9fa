package domain

import (
	"fmt"
	"strings"
)

// AnswerCount is the number of answer options every quiz row carries.
const AnswerCount = 4

// QuizRow is one validated multiple-choice question ready for export.
type QuizRow struct {
	Number    int                 `json:"number"`
	Question  string              `json:"question"`
	Answers   [AnswerCount]string `json:"answers"`
	TimeLimit int                 `json:"time_limit"`
	Correct   int                 `json:"correct"` // 1-based index into Answers
}

// Validate checks the row invariants. Distinct answers are advised, not enforced.
func (r QuizRow) Validate() error {
	if strings.TrimSpace(r.Question) == "" {
		return fmt.Errorf("question text is required")
	}
	for i, a := range r.Answers {
		if strings.TrimSpace(a) == "" {
			return fmt.Errorf("answer %d is required", i+1)
		}
	}
	if r.Correct < 1 || r.Correct > AnswerCount {
		return fmt.Errorf("correct answer must be between 1 and %d, got %d", AnswerCount, r.Correct)
	}
	if r.TimeLimit <= 0 {
		return fmt.Errorf("time limit must be positive, got %d", r.TimeLimit)
	}
	return nil
}

// HasDistinctAnswers reports whether all four options differ.
func (r QuizRow) HasDistinctAnswers() bool {
	seen := make(map[string]struct{}, AnswerCount)
	for _, a := range r.Answers {
		key := strings.TrimSpace(a)
		if _, ok := seen[key]; ok {
			return false
		}
		seen[key] = struct{}{}
	}
	return true
}

// ParseWarning is a non-fatal diagnostic recorded while parsing a model reply.
type ParseWarning struct {
	Block  string `json:"block,omitempty"`
	Reason string `json:"reason"`
}

func (w ParseWarning) String() string {
	if w.Block == "" {
		return w.Reason
	}
	return fmt.Sprintf("%s: %s...", w.Reason, w.Block)
}
