package domain

import "context"

// TranscriptTrack is one caption track offered for a video.
type TranscriptTrack struct {
	LanguageCode string
	Language     string
	Generated    bool // auto-generated (speech recognition) rather than authored
	URL          string
}

// TranscriptSegment is one time-aligned piece of transcript text.
type TranscriptSegment struct {
	Text     string
	StartMs  int
	Duration int
}

// TranscriptProvider lists and downloads caption tracks for a video.
//
// ListTranscripts returns a DomainError with CodeTranscriptDisabled when the video
// has captions turned off and CodeTranscriptUnavailable on retrieval failures.
type TranscriptProvider interface {
	ListTranscripts(ctx context.Context, videoID string) ([]TranscriptTrack, error)
	FetchTranscript(ctx context.Context, track TranscriptTrack) ([]TranscriptSegment, error)
}
