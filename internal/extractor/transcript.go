package extractor

import (
	"context"
	"strings"

	"quizsheet/internal/domain"
	"quizsheet/internal/logger"

	"go.uber.org/zap"
)

// transcriptStrategy picks one track from the list, or reports not-found.
type transcriptStrategy struct {
	name string
	pick func(tracks []domain.TranscriptTrack) (domain.TranscriptTrack, bool)
}

// transcriptStrategies returns the selection order: authored tracks in each
// preferred language, then generated tracks in each preferred language, then
// whatever track comes first.
func transcriptStrategies(languages []string) []transcriptStrategy {
	var strategies []transcriptStrategy
	for _, generated := range []bool{false, true} {
		kind := "manual"
		if generated {
			kind = "generated"
		}
		for _, lang := range languages {
			lang, generated := lang, generated
			strategies = append(strategies, transcriptStrategy{
				name: kind + ":" + lang,
				pick: func(tracks []domain.TranscriptTrack) (domain.TranscriptTrack, bool) {
					for _, t := range tracks {
						if t.Generated == generated && languageMatches(t.LanguageCode, lang) {
							return t, true
						}
					}
					return domain.TranscriptTrack{}, false
				},
			})
		}
	}
	strategies = append(strategies, transcriptStrategy{
		name: "any",
		pick: func(tracks []domain.TranscriptTrack) (domain.TranscriptTrack, bool) {
			if len(tracks) == 0 {
				return domain.TranscriptTrack{}, false
			}
			return tracks[0], true
		},
	})
	return strategies
}

// languageMatches treats regional variants ("en-US") as the base language.
func languageMatches(code, want string) bool {
	if strings.EqualFold(code, want) {
		return true
	}
	base, _, _ := strings.Cut(code, "-")
	return strings.EqualFold(base, want)
}

// SelectTranscript applies the strategies in order and returns the first track found.
func SelectTranscript(tracks []domain.TranscriptTrack, languages []string) (domain.TranscriptTrack, string, bool) {
	for _, s := range transcriptStrategies(languages) {
		if t, ok := s.pick(tracks); ok {
			return t, s.name, true
		}
	}
	return domain.TranscriptTrack{}, "", false
}

// ExtractVideo resolves the video id in rawURL and returns its transcript as one line of text.
func (e *Extractor) ExtractVideo(ctx context.Context, rawURL string) (string, error) {
	videoID, err := ParseVideoID(rawURL)
	if err != nil {
		return "", err
	}
	if e.transcripts == nil {
		return "", domain.NewExtractionError(domain.CodeTranscriptUnavailable, "transcript provider is not configured", nil)
	}
	if e.opts.TranscriptTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, e.opts.TranscriptTimeout)
		defer cancel()
	}

	l := logger.Get().With(zap.String("video_id", videoID))

	tracks, err := e.transcripts.ListTranscripts(ctx, videoID)
	if err != nil {
		if domain.IsExtractionError(err) {
			return "", err
		}
		return "", domain.NewExtractionError(domain.CodeTranscriptUnavailable, "failed to list transcripts", err)
	}
	if len(tracks) == 0 {
		return "", domain.NewExtractionError(domain.CodeTranscriptNotFound, "no transcript is available in any language", nil).
			WithContext("video_id", videoID)
	}

	track, strategy, ok := SelectTranscript(tracks, e.opts.PreferredLanguages)
	if !ok {
		return "", domain.NewExtractionError(domain.CodeTranscriptNotFound, "no transcript is available in any language", nil).
			WithContext("video_id", videoID)
	}
	if strategy == "any" {
		l.Warn("No transcript in preferred languages, using first available",
			zap.Strings("preferred", e.opts.PreferredLanguages),
			zap.String("language", track.LanguageCode))
	}
	l.Info("Transcript selected",
		zap.String("strategy", strategy),
		zap.String("language", track.LanguageCode),
		zap.Bool("generated", track.Generated))

	segments, err := e.transcripts.FetchTranscript(ctx, track)
	if err != nil {
		if domain.IsExtractionError(err) {
			return "", err
		}
		return "", domain.NewExtractionError(domain.CodeTranscriptUnavailable, "failed to fetch transcript", err)
	}

	texts := make([]string, 0, len(segments))
	for _, s := range segments {
		texts = append(texts, s.Text)
	}
	joined := strings.Join(texts, " ")
	if strings.TrimSpace(joined) == "" {
		return "", domain.NewExtractionError(domain.CodeTranscriptMalformed, "transcript payload is empty", nil).
			WithContext("video_id", videoID)
	}
	return joined, nil
}
