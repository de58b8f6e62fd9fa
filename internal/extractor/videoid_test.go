package extractor

import (
	"testing"

	"quizsheet/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseVideoID(t *testing.T) {
	tests := []struct {
		name string
		url  string
		want string
	}{
		{"watch", "https://www.youtube.com/watch?v=dQw4w9WgXcQ", "dQw4w9WgXcQ"},
		{"watch with extra params", "https://www.youtube.com/watch?list=PL1&v=dQw4w9WgXcQ&t=42s", "dQw4w9WgXcQ"},
		{"short link with timestamp", "https://youtu.be/dQw4w9WgXcQ?t=5", "dQw4w9WgXcQ"},
		{"shorts", "https://youtube.com/shorts/a_b-c1234XY", "a_b-c1234XY"},
		{"embed", "https://www.youtube.com/embed/dQw4w9WgXcQ?autoplay=1", "dQw4w9WgXcQ"},
		{"mobile", "https://m.youtube.com/watch?v=dQw4w9WgXcQ", "dQw4w9WgXcQ"},
		{"mirror numbered path", "https://googleusercontent.com/youtube.com/0/dQw4w9WgXcQ", "dQw4w9WgXcQ"},
		{"mirror query form", "https://googleusercontent.com/youtube.com/3?v=dQw4w9WgXcQ", "dQw4w9WgXcQ"},
		{"mirror embed form", "https://googleusercontent.com/youtube.com/4/dQw4w9WgXcQ", "dQw4w9WgXcQ"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseVideoID(tt.url)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)

			again, err := ParseVideoID(tt.url)
			require.NoError(t, err)
			assert.Equal(t, got, again)
		})
	}
}

func TestParseVideoID_NotFound(t *testing.T) {
	for _, url := range []string{
		"",
		"https://example.com/article",
		"https://www.youtube.com/watch?v=short",
		"https://vimeo.com/123456789",
	} {
		_, err := ParseVideoID(url)
		require.Error(t, err, url)
		assert.Equal(t, domain.CodeVideoIDNotFound, domain.CodeOf(err), url)
		assert.True(t, domain.IsExtractionError(err))
	}
}
