package dto

import "quizsheet/internal/domain"

// GenerateQuizRequest is the body of POST /api/quizzes.
// It is read from JSON, or from multipart form fields when a PDF is uploaded.
// @Description Quiz generation request
type GenerateQuizRequest struct {
	SourceType    string `json:"source_type" form:"source_type" example:"text"`
	Text          string `json:"text,omitempty" form:"text"`
	URL           string `json:"url,omitempty" form:"url" example:"https://www.youtube.com/watch?v=dQw4w9WgXcQ"`
	QuestionCount int    `json:"question_count,omitempty" form:"question_count" example:"5"`
	TimeLimit     int    `json:"time_limit,omitempty" form:"time_limit" example:"20"`
	Difficulty    string `json:"difficulty,omitempty" form:"difficulty" example:"medium"`
	GradeLevel    string `json:"grade_level,omitempty" form:"grade_level" example:"middle-2"`
}

// QuizRowResponse is one exported question.
type QuizRowResponse struct {
	Number    int      `json:"number"`
	Question  string   `json:"question"`
	Answers   []string `json:"answers"`
	TimeLimit int      `json:"time_limit"`
	Correct   int      `json:"correct"`
}

// DownloadLinks point at the stored files of a run.
type DownloadLinks struct {
	CSV  string `json:"csv"`
	XLSX string `json:"xlsx"`
}

// GenerateQuizResponse is returned when at least one question survived parsing.
// @Description Quiz generation result
type GenerateQuizResponse struct {
	ID               string                `json:"id"`
	FileBase         string                `json:"file_base"`
	Questions        []QuizRowResponse     `json:"questions"`
	Warnings         []domain.ParseWarning `json:"warnings,omitempty"`
	ContentLength    int                   `json:"content_length"`
	Preview          string                `json:"preview"`
	RawResponse      string                `json:"raw_response,omitempty"`
	Downloads        *DownloadLinks        `json:"downloads,omitempty"`
	ExpiresInSeconds int                   `json:"expires_in_seconds,omitempty"`
	CSV              []byte                `json:"csv,omitempty" swaggertype:"string" format:"base64"`
	XLSX             []byte                `json:"xlsx,omitempty" swaggertype:"string" format:"base64"`
	Instructions     []string              `json:"instructions"`
	GeneratedBy      string                `json:"generated_by"`
	DurationMs       int64                 `json:"duration_ms"`
}

// QuizResultResponse is the stored metadata of an earlier run.
type QuizResultResponse struct {
	ID               string                `json:"id"`
	FileBase         string                `json:"file_base"`
	Questions        []QuizRowResponse     `json:"questions"`
	Warnings         []domain.ParseWarning `json:"warnings,omitempty"`
	Downloads        DownloadLinks         `json:"downloads"`
	ExpiresInSeconds int                   `json:"expires_in_seconds"`
}

// OptionItem is one selectable enum value.
type OptionItem struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

// Range is an inclusive integer bound with its default.
type Range struct {
	Min     int `json:"min"`
	Max     int `json:"max"`
	Default int `json:"default"`
}

// OptionsResponse lists every accepted generation option.
// @Description Generation options
type OptionsResponse struct {
	SourceTypes   []string     `json:"source_types"`
	Difficulties  []OptionItem `json:"difficulties"`
	GradeLevels   []OptionItem `json:"grade_levels"`
	QuestionCount Range        `json:"question_count"`
	TimeLimit     Range        `json:"time_limit"`
	Columns       []string     `json:"columns"`
}

// HealthResponse reports process and dependency status.
type HealthResponse struct {
	Status      string `json:"status"`
	Generator   string `json:"generator"`
	ResultStore string `json:"result_store"`
}

// NewQuizRowResponses converts domain rows for output.
func NewQuizRowResponses(rows []domain.QuizRow) []QuizRowResponse {
	out := make([]QuizRowResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, QuizRowResponse{
			Number:    r.Number,
			Question:  r.Question,
			Answers:   append([]string(nil), r.Answers[:]...),
			TimeLimit: r.TimeLimit,
			Correct:   r.Correct,
		})
	}
	return out
}
