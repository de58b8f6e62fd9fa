// Package parser turns the model's free-text reply into validated quiz rows.
package parser

import (
	"fmt"
	"regexp"
	"strings"

	"quizsheet/internal/domain"
	"quizsheet/internal/prompt"
)

// NoValidQuizReason is recorded when a non-empty reply yields no rows.
const NoValidQuizReason = "no valid quiz format found"

// DuplicateAnswersReason flags an accepted row whose options repeat.
const DuplicateAnswersReason = "answer options are not distinct"

// blockPreviewRunes is how much of a discarded block a warning quotes.
const blockPreviewRunes = 150

var (
	blockPattern = regexp.MustCompile(`(?s)` + regexp.QuoteMeta(prompt.BlockStart) + `(.*?)` + regexp.QuoteMeta(prompt.BlockEnd))

	questionPattern  = labelPattern(prompt.LabelQuestion)
	optionPatterns   [domain.AnswerCount]*regexp.Regexp
	correctPattern   = labelPattern(prompt.LabelCorrect)
	timeLimitPattern = labelPattern(prompt.LabelTimeLimit)
)

func init() {
	for i := range optionPatterns {
		optionPatterns[i] = labelPattern(fmt.Sprintf("%s%d", prompt.LabelOption, i+1))
	}
}

// Result holds the accepted rows and the diagnostics for discarded blocks.
type Result struct {
	Rows     []domain.QuizRow
	Warnings []domain.ParseWarning
	Blocks   int
}

// Empty reports whether no row survived; callers must treat it as a failed run.
func (r Result) Empty() bool { return len(r.Rows) == 0 }

// BlockFields is every field lookup of one block.
type BlockFields struct {
	Question  Field[string]
	Options   [domain.AnswerCount]Field[string]
	Correct   Field[int]
	TimeLimit Field[int]
}

// ParseBlock applies the six field patterns to one block.
func ParseBlock(block string) BlockFields {
	var f BlockFields
	f.Question = textField(questionPattern, block)
	for i, re := range optionPatterns {
		f.Options[i] = textField(re, block)
	}
	f.Correct = intField(correctPattern, correctValue, block)
	f.TimeLimit = intField(timeLimitPattern, timeLimitValue, block)
	return f
}

// Row validates the fields and builds a row numbered number.
func (f BlockFields) Row(number, defaultTimeLimit int) (domain.QuizRow, error) {
	if !f.Question.OK() {
		return domain.QuizRow{}, fmt.Errorf("question is %s", f.Question.State)
	}
	row := domain.QuizRow{Number: number}
	row.Question = f.Question.Value
	for i, opt := range f.Options {
		if !opt.OK() {
			return domain.QuizRow{}, fmt.Errorf("answer %d is %s", i+1, opt.State)
		}
		row.Answers[i] = opt.Value
	}
	if !f.Correct.OK() {
		return domain.QuizRow{}, fmt.Errorf("correct answer number is %s (%q)", f.Correct.State, f.Correct.Raw)
	}
	row.Correct = f.Correct.Value

	row.TimeLimit = defaultTimeLimit
	if f.TimeLimit.OK() && f.TimeLimit.Value > 0 {
		row.TimeLimit = f.TimeLimit.Value
	}
	if err := row.Validate(); err != nil {
		return domain.QuizRow{}, err
	}
	return row, nil
}

// Blocks returns the trimmed contents of every delimited question block, in order.
func Blocks(reply string) []string {
	matches := blockPattern.FindAllStringSubmatch(reply, -1)
	blocks := make([]string, 0, len(matches))
	for _, m := range matches {
		blocks = append(blocks, strings.TrimSpace(m[1]))
	}
	return blocks
}

// Parse extracts rows from reply. Each block is handled independently: a bad
// block is dropped with a warning and never stops the blocks after it.
// Accepted rows are numbered 1..n in reply order.
func Parse(reply string, defaultTimeLimit int) Result {
	var res Result
	if strings.TrimSpace(reply) == "" {
		return res
	}

	blocks := Blocks(reply)
	res.Blocks = len(blocks)

	for _, block := range blocks {
		row, err := parseOne(block, len(res.Rows)+1, defaultTimeLimit)
		if err != nil {
			res.Warnings = append(res.Warnings, domain.ParseWarning{
				Block:  preview(block),
				Reason: err.Error(),
			})
			continue
		}
		if !row.HasDistinctAnswers() {
			res.Warnings = append(res.Warnings, domain.ParseWarning{
				Block:  preview(block),
				Reason: fmt.Sprintf("question %d: %s", row.Number, DuplicateAnswersReason),
			})
		}
		res.Rows = append(res.Rows, row)
	}

	if len(res.Rows) == 0 {
		res.Warnings = append(res.Warnings, domain.ParseWarning{Reason: NoValidQuizReason})
	}
	return res
}

func parseOne(block string, number, defaultTimeLimit int) (row domain.QuizRow, err error) {
	defer func() {
		if r := recover(); r != nil {
			row, err = domain.QuizRow{}, fmt.Errorf("block parsing panicked: %v", r)
		}
	}()
	return ParseBlock(block).Row(number, defaultTimeLimit)
}

func preview(block string) string {
	runes := []rune(block)
	if len(runes) > blockPreviewRunes {
		runes = runes[:blockPreviewRunes]
	}
	return string(runes)
}
