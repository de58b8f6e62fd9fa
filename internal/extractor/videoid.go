package extractor

import (
	"regexp"
	"strings"

	"quizsheet/internal/domain"
)

type videoIDPattern struct {
	// marker must appear in the URL before re is tried; empty means always try
	marker string
	re     *regexp.Regexp
}

var videoIDPatterns = []videoIDPattern{
	{marker: "googleusercontent.com/youtube.com/", re: regexp.MustCompile(`/youtube\.com/[0125]/([a-zA-Z0-9_-]{11})`)},
	{marker: "googleusercontent.com/youtube.com/3?", re: regexp.MustCompile(`v=([a-zA-Z0-9_-]{11})`)},
	{marker: "googleusercontent.com/youtube.com/", re: regexp.MustCompile(`/youtube\.com/4/([a-zA-Z0-9_-]{11})`)},
	{re: regexp.MustCompile(`(?:v=|/embed/|/shorts/|youtu\.be/)([a-zA-Z0-9_-]{11})`)},
}

// ParseVideoID finds the 11-character video identifier in watch, short-link,
// shorts, embed and mirrored URL shapes. The first matching pattern wins.
func ParseVideoID(rawURL string) (string, error) {
	rawURL = strings.TrimSpace(rawURL)
	for _, p := range videoIDPatterns {
		if p.marker != "" && !strings.Contains(rawURL, p.marker) {
			continue
		}
		if m := p.re.FindStringSubmatch(rawURL); m != nil {
			return m[1], nil
		}
	}
	return "", domain.NewExtractionError(domain.CodeVideoIDNotFound, "video identifier not found in URL", nil).
		WithContext("url", rawURL)
}
