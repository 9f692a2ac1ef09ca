// Package youtube extracts video IDs from pasted YouTube URLs and looks
// up video metadata through the YouTube Data API v3.
package youtube

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"regexp"
	"time"

	"go.uber.org/zap"
)

// Errors returned by this package. ErrInvalidURL is returned before any
// network call is made.
var (
	ErrInvalidURL = errors.New("could not extract a video ID from the URL")
	ErrNotFound   = errors.New("video not found")
)

// videoIDPattern matches the common YouTube URL shapes: watch?v=, youtu.be/,
// embed/, and /v/. The capture group is the 11-character video ID.
var videoIDPattern = regexp.MustCompile(`(?:youtube\.com/(?:[^/]+/.+/|(?:v|e(?:mbed)?)/|.*[?&]v=)|youtu\.be/)([^"&?/\s]{11})`)

// ExtractVideoID parses the 11-character video identifier out of a pasted
// YouTube URL. Returns ErrInvalidURL if the URL does not match any of the
// supported shapes.
func ExtractVideoID(rawURL string) (string, error) {
	m := videoIDPattern.FindStringSubmatch(rawURL)
	if m == nil {
		return "", ErrInvalidURL
	}
	return m[1], nil
}

// EmbedURL returns the privacy-friendly embed URL for a video ID.
func EmbedURL(videoID string) string {
	return "https://www.youtube-nocookie.com/embed/" + url.PathEscape(videoID)
}

// VideoInfo is the resolved metadata for a video.
type VideoInfo struct {
	VideoID      string `json:"videoId"`
	Title        string `json:"title"`
	ThumbnailURL string `json:"thumbnailUrl"`
}

// Client looks up video metadata from the YouTube Data API v3.
type Client struct {
	apiKey  string
	baseURL string
	http    *http.Client
	logger  *zap.Logger
}

// NewClient creates a metadata client. apiKey is the YouTube Data API key.
func NewClient(apiKey string, logger *zap.Logger) *Client {
	return &Client{
		apiKey:  apiKey,
		baseURL: "https://www.googleapis.com/youtube/v3",
		http:    &http.Client{Timeout: 10 * time.Second},
		logger:  logger,
	}
}

// SetBaseURL overrides the API endpoint. Used in tests.
func (c *Client) SetBaseURL(u string) {
	c.baseURL = u
}

// videosResponse mirrors the fields we read from the videos endpoint.
type videosResponse struct {
	Items []struct {
		ID      string `json:"id"`
		Snippet struct {
			Title      string `json:"title"`
			Thumbnails struct {
				Medium struct {
					URL string `json:"url"`
				} `json:"medium"`
				Default struct {
					URL string `json:"url"`
				} `json:"default"`
			} `json:"thumbnails"`
		} `json:"snippet"`
	} `json:"items"`
}

// Lookup resolves a pasted URL to video metadata. The ID is extracted
// locally first; only a parseable URL results in an API call.
func (c *Client) Lookup(ctx context.Context, rawURL string) (*VideoInfo, error) {
	videoID, err := ExtractVideoID(rawURL)
	if err != nil {
		return nil, err
	}
	return c.LookupByID(ctx, videoID)
}

// LookupByID fetches the title and a medium-resolution thumbnail for a
// video ID. Returns ErrNotFound if the API returns an empty result set.
func (c *Client) LookupByID(ctx context.Context, videoID string) (*VideoInfo, error) {
	endpoint := fmt.Sprintf("%s/videos?id=%s&key=%s&part=snippet",
		c.baseURL, url.QueryEscape(videoID), url.QueryEscape(c.apiKey))

	req, err := http.NewRequestWithContext(ctx, "GET", endpoint, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.logger.Warn("video metadata lookup failed",
			zap.String("video_id", videoID),
			zap.Int("status", resp.StatusCode))
		return nil, fmt.Errorf("metadata API returned status %d", resp.StatusCode)
	}

	var body videosResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, err
	}
	if len(body.Items) == 0 {
		return nil, ErrNotFound
	}

	item := body.Items[0]
	thumb := item.Snippet.Thumbnails.Medium.URL
	if thumb == "" {
		thumb = item.Snippet.Thumbnails.Default.URL
	}

	return &VideoInfo{
		VideoID:      videoID,
		Title:        item.Snippet.Title,
		ThumbnailURL: thumb,
	}, nil
}
