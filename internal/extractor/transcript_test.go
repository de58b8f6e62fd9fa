package extractor

import (
	"context"
	"errors"
	"testing"

	"quizsheet/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockTranscriptProvider struct {
	ListFunc  func(ctx context.Context, videoID string) ([]domain.TranscriptTrack, error)
	FetchFunc func(ctx context.Context, track domain.TranscriptTrack) ([]domain.TranscriptSegment, error)
}

func (m *mockTranscriptProvider) ListTranscripts(ctx context.Context, videoID string) ([]domain.TranscriptTrack, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, videoID)
	}
	panic("mockTranscriptProvider.ListFunc not implemented")
}

func (m *mockTranscriptProvider) FetchTranscript(ctx context.Context, track domain.TranscriptTrack) ([]domain.TranscriptSegment, error) {
	if m.FetchFunc != nil {
		return m.FetchFunc(ctx, track)
	}
	panic("mockTranscriptProvider.FetchFunc not implemented")
}

func TestSelectTranscript(t *testing.T) {
	langs := []string{"ko", "en"}

	tests := []struct {
		name         string
		tracks       []domain.TranscriptTrack
		wantLang     string
		wantGen      bool
		wantStrategy string
	}{
		{
			name: "manual preferred beats generated primary",
			tracks: []domain.TranscriptTrack{
				{LanguageCode: "ko", Generated: true},
				{LanguageCode: "en", Generated: false},
			},
			wantLang: "en", wantGen: false, wantStrategy: "manual:en",
		},
		{
			name: "primary language manual first",
			tracks: []domain.TranscriptTrack{
				{LanguageCode: "en"},
				{LanguageCode: "ko"},
			},
			wantLang: "ko", wantStrategy: "manual:ko",
		},
		{
			name: "generated in language order",
			tracks: []domain.TranscriptTrack{
				{LanguageCode: "en", Generated: true},
				{LanguageCode: "ko", Generated: true},
			},
			wantLang: "ko", wantGen: true, wantStrategy: "generated:ko",
		},
		{
			name: "regional variant matches base language",
			tracks: []domain.TranscriptTrack{
				{LanguageCode: "en-US"},
			},
			wantLang: "en-US", wantStrategy: "manual:en",
		},
		{
			name: "falls back to first available",
			tracks: []domain.TranscriptTrack{
				{LanguageCode: "fr", Generated: true},
				{LanguageCode: "de"},
			},
			wantLang: "fr", wantGen: true, wantStrategy: "any",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			track, strategy, ok := SelectTranscript(tt.tracks, langs)
			require.True(t, ok)
			assert.Equal(t, tt.wantLang, track.LanguageCode)
			assert.Equal(t, tt.wantGen, track.Generated)
			assert.Equal(t, tt.wantStrategy, strategy)
		})
	}

	_, _, ok := SelectTranscript(nil, langs)
	assert.False(t, ok)
}

func TestExtractVideo(t *testing.T) {
	const url = "https://www.youtube.com/watch?v=dQw4w9WgXcQ"
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		provider := &mockTranscriptProvider{
			ListFunc: func(ctx context.Context, videoID string) ([]domain.TranscriptTrack, error) {
				assert.Equal(t, "dQw4w9WgXcQ", videoID)
				return []domain.TranscriptTrack{{LanguageCode: "en", URL: "u"}}, nil
			},
			FetchFunc: func(ctx context.Context, track domain.TranscriptTrack) ([]domain.TranscriptSegment, error) {
				return []domain.TranscriptSegment{{Text: "never gonna"}, {Text: "give you up"}}, nil
			},
		}
		text, err := New(provider, Options{}).ExtractVideo(ctx, url)
		require.NoError(t, err)
		assert.Equal(t, "never gonna give you up", text)
	})

	t.Run("Disabled", func(t *testing.T) {
		provider := &mockTranscriptProvider{
			ListFunc: func(ctx context.Context, videoID string) ([]domain.TranscriptTrack, error) {
				return nil, domain.NewExtractionError(domain.CodeTranscriptDisabled, "disabled", nil)
			},
		}
		_, err := New(provider, Options{}).ExtractVideo(ctx, url)
		assert.Equal(t, domain.CodeTranscriptDisabled, domain.CodeOf(err))
	})

	t.Run("NoTracks", func(t *testing.T) {
		provider := &mockTranscriptProvider{
			ListFunc: func(ctx context.Context, videoID string) ([]domain.TranscriptTrack, error) {
				return []domain.TranscriptTrack{}, nil
			},
		}
		_, err := New(provider, Options{}).ExtractVideo(ctx, url)
		assert.Equal(t, domain.CodeTranscriptNotFound, domain.CodeOf(err))
	})

	t.Run("TransientListError", func(t *testing.T) {
		provider := &mockTranscriptProvider{
			ListFunc: func(ctx context.Context, videoID string) ([]domain.TranscriptTrack, error) {
				return nil, errors.New("connection reset")
			},
		}
		_, err := New(provider, Options{}).ExtractVideo(ctx, url)
		assert.Equal(t, domain.CodeTranscriptUnavailable, domain.CodeOf(err))
		assert.ErrorContains(t, err, "connection reset")
	})

	t.Run("EmptyPayload", func(t *testing.T) {
		provider := &mockTranscriptProvider{
			ListFunc: func(ctx context.Context, videoID string) ([]domain.TranscriptTrack, error) {
				return []domain.TranscriptTrack{{LanguageCode: "ko"}}, nil
			},
			FetchFunc: func(ctx context.Context, track domain.TranscriptTrack) ([]domain.TranscriptSegment, error) {
				return []domain.TranscriptSegment{{Text: " "}}, nil
			},
		}
		_, err := New(provider, Options{}).ExtractVideo(ctx, url)
		assert.Equal(t, domain.CodeTranscriptMalformed, domain.CodeOf(err))
	})

	t.Run("BadURL", func(t *testing.T) {
		_, err := New(&mockTranscriptProvider{}, Options{}).ExtractVideo(ctx, "https://example.com")
		assert.Equal(t, domain.CodeVideoIDNotFound, domain.CodeOf(err))
	})
}
