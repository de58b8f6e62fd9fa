package util

import (
	"fmt"
	"net/url"
	"path/filepath"
	"regexp"
	"strings"

	"quizsheet/internal/domain"
)

var unsafeFileChars = regexp.MustCompile(`[^a-zA-Z0-9_]`)

const (
	textPrefix        = "text_based_quiz"
	youtubePrefix     = "youtube_transcript_quiz"
	websiteFallback   = "website_content_quiz"
	pdfFallbackPrefix = "pdf"
)

// SourcePrefix names download files after where the content came from.
func SourcePrefix(src domain.Source) string {
	switch src.Kind {
	case domain.SourcePDF:
		name := strings.TrimSuffix(filepath.Base(src.FileName), filepath.Ext(src.FileName))
		name = sanitize(strings.ReplaceAll(name, " ", "_"))
		if name == "" || name == "." {
			name = pdfFallbackPrefix
		}
		return name + "_quiz"
	case domain.SourceYouTube:
		return youtubePrefix
	case domain.SourceWebsite:
		host := websiteHost(src.URL)
		if host == "" {
			return websiteFallback
		}
		return host + "_website_quiz"
	default:
		return textPrefix
	}
}

func websiteHost(raw string) string {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil || u.Host == "" {
		return ""
	}
	return sanitize(strings.TrimPrefix(u.Hostname(), "www."))
}

// QuizFileBase builds "<prefix>_<N>q[_<difficulty>][_<grade>]" without an extension.
func QuizFileBase(src domain.Source, opts domain.GenerationOptions) string {
	base := fmt.Sprintf("%s_%dq", sanitize(SourcePrefix(src)), opts.QuestionCount)
	if opts.Difficulty != domain.DifficultyUnset {
		base += "_" + sanitize(string(opts.Difficulty))
	}
	if opts.GradeLevel != domain.GradeUnset {
		base += "_" + sanitize(string(opts.GradeLevel))
	}
	return base
}

func sanitize(s string) string {
	return unsafeFileChars.ReplaceAllString(s, "")
}
