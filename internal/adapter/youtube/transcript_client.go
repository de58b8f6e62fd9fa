package youtube

import (
	"context"
	"encoding/xml"
	"fmt"
	"html"
	"io"
	"net/http"
	"strconv"
	"strings"

	"quizsheet/internal/domain"
	"quizsheet/internal/logger"

	yt "github.com/kkdai/youtube/v2"
	"go.uber.org/zap"
)

// VideoLookup is the part of the youtube client used to discover caption tracks.
type VideoLookup interface {
	GetVideoContext(ctx context.Context, url string) (*yt.Video, error)
}

// TranscriptClient implements domain.TranscriptProvider on top of the public
// player metadata and the timedtext caption endpoint.
type TranscriptClient struct {
	videos     VideoLookup
	httpClient *http.Client
}

// NewTranscriptClient creates a TranscriptClient. Passing a nil lookup uses the default youtube client.
func NewTranscriptClient(videos VideoLookup, httpClient *http.Client) *TranscriptClient {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	if videos == nil {
		videos = &yt.Client{HTTPClient: httpClient}
	}
	return &TranscriptClient{videos: videos, httpClient: httpClient}
}

// ListTranscripts returns the caption tracks published for videoID.
func (c *TranscriptClient) ListTranscripts(ctx context.Context, videoID string) ([]domain.TranscriptTrack, error) {
	video, err := c.videos.GetVideoContext(ctx, videoID)
	if err != nil {
		return nil, domain.NewExtractionError(domain.CodeTranscriptUnavailable, "failed to retrieve video metadata", err).
			WithContext("video_id", videoID)
	}

	if len(video.CaptionTracks) == 0 {
		return nil, domain.NewExtractionError(domain.CodeTranscriptDisabled, "transcripts are disabled for this video", nil).
			WithContext("video_id", videoID)
	}

	tracks := make([]domain.TranscriptTrack, 0, len(video.CaptionTracks))
	for _, ct := range video.CaptionTracks {
		tracks = append(tracks, domain.TranscriptTrack{
			LanguageCode: ct.LanguageCode,
			Language:     ct.Name.SimpleText,
			Generated:    ct.Kind == "asr",
			URL:          ct.BaseURL,
		})
	}
	logger.Get().Debug("Caption tracks listed", zap.String("video_id", videoID), zap.Int("tracks", len(tracks)))
	return tracks, nil
}

type timedText struct {
	XMLName xml.Name `xml:"transcript"`
	Texts   []struct {
		Start string `xml:"start,attr"`
		Dur   string `xml:"dur,attr"`
		Body  string `xml:",chardata"`
	} `xml:"text"`
}

// FetchTranscript downloads and decodes one caption track.
func (c *TranscriptClient) FetchTranscript(ctx context.Context, track domain.TranscriptTrack) ([]domain.TranscriptSegment, error) {
	if track.URL == "" {
		return nil, domain.NewExtractionError(domain.CodeTranscriptMalformed, "caption track has no download URL", nil)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, track.URL, nil)
	if err != nil {
		return nil, domain.NewExtractionError(domain.CodeTranscriptUnavailable, "invalid caption track URL", err)
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, domain.NewExtractionError(domain.CodeTranscriptUnavailable, "failed to download transcript", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, domain.NewExtractionError(domain.CodeTranscriptUnavailable,
			fmt.Sprintf("transcript endpoint returned status %d", resp.StatusCode), nil)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, domain.NewExtractionError(domain.CodeTranscriptUnavailable, "failed to read transcript", err)
	}
	return ParseTimedText(body)
}

// ParseTimedText decodes the timedtext XML format into segments.
func ParseTimedText(body []byte) ([]domain.TranscriptSegment, error) {
	if len(strings.TrimSpace(string(body))) == 0 {
		return nil, domain.NewExtractionError(domain.CodeTranscriptMalformed, "transcript payload is empty", nil)
	}

	var doc timedText
	if err := xml.Unmarshal(body, &doc); err != nil {
		return nil, domain.NewExtractionError(domain.CodeTranscriptMalformed, "transcript payload is not valid XML", err)
	}
	if len(doc.Texts) == 0 {
		return nil, domain.NewExtractionError(domain.CodeTranscriptMalformed, "transcript has no segments", nil)
	}

	segments := make([]domain.TranscriptSegment, 0, len(doc.Texts))
	for _, t := range doc.Texts {
		// captions arrive entity-escaped twice ("&amp;#39;")
		text := strings.TrimSpace(html.UnescapeString(t.Body))
		text = strings.Join(strings.Fields(text), " ")
		segments = append(segments, domain.TranscriptSegment{
			Text:     text,
			StartMs:  secondsToMs(t.Start),
			Duration: secondsToMs(t.Dur),
		})
	}
	return segments, nil
}

func secondsToMs(s string) int {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return int(f * 1000)
}

var _ domain.TranscriptProvider = (*TranscriptClient)(nil)
