package domain

import "strings"

// Bounds for GenerationOptions.
const (
	MinQuestionCount = 1
	MaxQuestionCount = 30
	MinTimeLimit     = 5
	MaxTimeLimit     = 300

	DefaultQuestionCount = 5
	DefaultTimeLimit     = 20
)

// Difficulty of the generated questions.
type Difficulty string

const (
	DifficultyUnset  Difficulty = ""
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

var difficultyLabels = map[Difficulty]string{
	DifficultyUnset:  "선택 안 함",
	DifficultyEasy:   "쉬움",
	DifficultyMedium: "보통",
	DifficultyHard:   "어려움",
}

// Difficulties lists every accepted difficulty in display order.
func Difficulties() []Difficulty {
	return []Difficulty{DifficultyUnset, DifficultyEasy, DifficultyMedium, DifficultyHard}
}

func (d Difficulty) Valid() bool {
	_, ok := difficultyLabels[d]
	return ok
}

func (d Difficulty) Label() string {
	return difficultyLabels[d]
}

// ParseDifficulty accepts ids ("easy") and labels ("쉬움"); "unset" and "" map to DifficultyUnset.
func ParseDifficulty(s string) (Difficulty, bool) {
	s = strings.TrimSpace(s)
	if s == "" || strings.EqualFold(s, "unset") {
		return DifficultyUnset, true
	}
	for d, label := range difficultyLabels {
		if strings.EqualFold(s, string(d)) || s == label {
			return d, true
		}
	}
	return DifficultyUnset, false
}

// GradeLevel is the target audience of the quiz.
type GradeLevel string

const (
	GradeUnset        GradeLevel = ""
	GradeElementary12 GradeLevel = "elementary-1-2"
	GradeElementary34 GradeLevel = "elementary-3-4"
	GradeElementary56 GradeLevel = "elementary-5-6"
	GradeMiddle1      GradeLevel = "middle-1"
	GradeMiddle2      GradeLevel = "middle-2"
	GradeMiddle3      GradeLevel = "middle-3"
	GradeHigh1        GradeLevel = "high-1"
	GradeHigh2        GradeLevel = "high-2"
	GradeHigh3        GradeLevel = "high-3"
	GradeUniversity   GradeLevel = "university"
	GradeGeneralAdult GradeLevel = "adult"
)

var gradeLevels = []GradeLevel{
	GradeUnset,
	GradeElementary12, GradeElementary34, GradeElementary56,
	GradeMiddle1, GradeMiddle2, GradeMiddle3,
	GradeHigh1, GradeHigh2, GradeHigh3,
	GradeUniversity, GradeGeneralAdult,
}

var gradeLabels = map[GradeLevel]string{
	GradeUnset:        "전체 (선택 안 함)",
	GradeElementary12: "초등학교 1-2학년",
	GradeElementary34: "초등학교 3-4학년",
	GradeElementary56: "초등학교 5-6학년",
	GradeMiddle1:      "중학교 1학년",
	GradeMiddle2:      "중학교 2학년",
	GradeMiddle3:      "중학교 3학년",
	GradeHigh1:        "고등학교 1학년",
	GradeHigh2:        "고등학교 2학년",
	GradeHigh3:        "고등학교 3학년",
	GradeUniversity:   "대학생",
	GradeGeneralAdult: "일반 성인",
}

// GradeLevels lists the twelve accepted grade levels, unset first.
func GradeLevels() []GradeLevel {
	out := make([]GradeLevel, len(gradeLevels))
	copy(out, gradeLevels)
	return out
}

func (g GradeLevel) Valid() bool {
	_, ok := gradeLabels[g]
	return ok
}

func (g GradeLevel) Label() string {
	return gradeLabels[g]
}

// ParseGradeLevel accepts ids and labels; "unset" and "" map to GradeUnset.
func ParseGradeLevel(s string) (GradeLevel, bool) {
	s = strings.TrimSpace(s)
	if s == "" || strings.EqualFold(s, "unset") {
		return GradeUnset, true
	}
	for _, g := range gradeLevels {
		if strings.EqualFold(s, string(g)) || s == gradeLabels[g] {
			return g, true
		}
	}
	return GradeUnset, false
}

// GenerationOptions are the user choices for one pipeline run.
type GenerationOptions struct {
	QuestionCount int        `json:"question_count"`
	TimeLimit     int        `json:"time_limit"`
	Difficulty    Difficulty `json:"difficulty"`
	GradeLevel    GradeLevel `json:"grade_level"`
}

// DefaultOptions returns the options a run uses when the caller sets nothing.
func DefaultOptions() GenerationOptions {
	return GenerationOptions{
		QuestionCount: DefaultQuestionCount,
		TimeLimit:     DefaultTimeLimit,
	}
}

// Validate reports every out-of-range or unknown option.
func (o GenerationOptions) Validate() ValidationErrors {
	var errs ValidationErrors
	if o.QuestionCount < MinQuestionCount || o.QuestionCount > MaxQuestionCount {
		errs = append(errs, NewOutOfRangeError("question_count", o.QuestionCount, MinQuestionCount, MaxQuestionCount))
	}
	if o.TimeLimit < MinTimeLimit || o.TimeLimit > MaxTimeLimit {
		errs = append(errs, NewOutOfRangeError("time_limit", o.TimeLimit, MinTimeLimit, MaxTimeLimit))
	}
	if !o.Difficulty.Valid() {
		errs = append(errs, NewInvalidFormatError("difficulty", string(o.Difficulty)))
	}
	if !o.GradeLevel.Valid() {
		errs = append(errs, NewInvalidFormatError("grade_level", string(o.GradeLevel)))
	}
	return errs
}
