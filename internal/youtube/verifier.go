package youtube

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"time"

	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
	youtubeapi "google.golang.org/api/youtube/v3"

	"github.com/grvbrk/tubelink-server/internal/utils"
)

const (
	defaultOembedURL = "https://www.youtube.com/oembed"
	callTimeout      = 5 * time.Second
)

// Accessibility is the result of a successful two-stage check. It is built
// fresh on every request and never cached.
type Accessibility struct {
	Exists        bool
	Title         string
	Channel_Title string
	Duration      string
	Raw_Duration  string
	Description   string
	Thumbnails    json.RawMessage
}

type Verifier interface {
	CheckVideoAccessibility(ctx context.Context, videoID string) (*Accessibility, error)
}

// Service checks video accessibility against YouTube: a public oEmbed probe
// first, then the Data API v3 as the source of truth.
type Service struct {
	yt        *youtubeapi.Service
	logger    *log.Logger
	client    *http.Client
	oembedURL string
}

func NewService(apiKey string, logger *log.Logger, opts ...option.ClientOption) (*Service, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("youtube api key required")
	}

	opts = append([]option.ClientOption{option.WithAPIKey(apiKey)}, opts...)
	yt, err := youtubeapi.NewService(context.Background(), opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create youtube service: %w", err)
	}

	return &Service{
		yt:        yt,
		logger:    logger,
		client:    &http.Client{Timeout: callTimeout},
		oembedURL: defaultOembedURL,
	}, nil
}

// CheckVideoAccessibility runs the probe stage and then the authoritative
// stage. The probe only gates on an explicit 401/404 from oEmbed; any other
// probe failure is logged and the Data API still decides.
func (s *Service) CheckVideoAccessibility(ctx context.Context, videoID string) (*Accessibility, error) {
	if err := s.probeEmbed(ctx, videoID); err != nil {
		var verr *VerificationError
		if errors.As(err, &verr) {
			return nil, verr
		}
		s.logger.Printf("Warning: oEmbed check failed for video %s, falling back to Data API: %v", videoID, err)
	}

	return s.fetchVideoDetails(ctx, videoID)
}

func (s *Service) probeEmbed(ctx context.Context, videoID string) error {
	ctx, cancel := context.WithTimeout(ctx, callTimeout)
	defer cancel()

	probeURL := fmt.Sprintf("%s?format=json&url=%s", s.oembedURL,
		url.QueryEscape("https://www.youtube.com/watch?v="+videoID))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, probeURL, nil)
	if err != nil {
		return fmt.Errorf("failed to build oEmbed request: %w", err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("oEmbed request failed: %w", err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusUnauthorized, http.StatusNotFound:
		return errNotAccessible
	case http.StatusOK:
		return nil
	default:
		return fmt.Errorf("oEmbed returned status %d", resp.StatusCode)
	}
}

func (s *Service) fetchVideoDetails(ctx context.Context, videoID string) (*Accessibility, error) {
	ctx, cancel := context.WithTimeout(ctx, callTimeout)
	defer cancel()

	call := s.yt.Videos.
		List([]string{"snippet", "contentDetails", "status"}).
		Id(videoID).
		Context(ctx)

	resp, err := call.Do()
	if err != nil {
		return nil, s.classifyAPIError(videoID, err)
	}

	if len(resp.Items) == 0 {
		return nil, errNotFound
	}

	item := resp.Items[0]
	if item.Status != nil && item.Status.PrivacyStatus == "private" {
		return nil, errPrivate
	}

	access := &Accessibility{Exists: true}
	if item.Snippet != nil {
		access.Title = item.Snippet.Title
		access.Channel_Title = item.Snippet.ChannelTitle
		access.Description = item.Snippet.Description
		if item.Snippet.Thumbnails != nil {
			thumbs, err := json.Marshal(item.Snippet.Thumbnails)
			if err != nil {
				return nil, s.classifyAPIError(videoID, err)
			}
			access.Thumbnails = thumbs
		}
	}
	if item.ContentDetails != nil {
		access.Raw_Duration = item.ContentDetails.Duration
		access.Duration = utils.FormatDuration(item.ContentDetails.Duration)
	}

	return access, nil
}

// classifyAPIError maps a Data API failure onto the error taxonomy. A 401
// means our own key is broken, so the client sees a 500. Anything without a
// known classification is logged in full and surfaced as a bare internal
// error.
func (s *Service) classifyAPIError(videoID string, err error) *VerificationError {
	var gerr *googleapi.Error
	if errors.As(err, &gerr) {
		switch gerr.Code {
		case http.StatusUnauthorized:
			return errInvalidKey
		case http.StatusForbidden:
			for _, item := range gerr.Errors {
				if item.Reason == "quotaExceeded" {
					return errQuotaExceeded
				}
			}
			return errForbidden
		}
	}

	s.logger.Printf("Error: YouTube API failure for video %s: %v", videoID, err)
	return errInternal
}
