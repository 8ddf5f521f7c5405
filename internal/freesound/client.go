package freesound

// Package freesound implements the authenticated remote catalog client: sound
// metadata lookup (fetch stage 1), preview binary download (fetch stage 2),
// and text search for the acquisition dialog.

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/samplecrate/sample-browser/internal/model"
)

const (
	// DefaultBaseURL is the Freesound APIv2 root.
	DefaultBaseURL = "https://freesound.org/apiv2"

	requestTimeout = 30 * time.Second

	searchFields = "id,name,username,duration,description,license,tags,previews"
)

var (
	// ErrNoToken is returned before any network call when no access
	// credential is configured.
	ErrNoToken = errors.New("freesound: no API token configured")

	// ErrNoPreview is returned when a sound carries neither a high- nor a
	// low-quality preview encoding.
	ErrNoPreview = errors.New("freesound: sound has no preview encodings")
)

// Previews lists the preview encodings a sound offers.
type Previews struct {
	HQMP3 string `json:"preview-hq-mp3"`
	LQMP3 string `json:"preview-lq-mp3"`
}

// Sound is the remote catalog's record shape.
type Sound struct {
	ID          int      `json:"id"`
	Name        string   `json:"name"`
	Username    string   `json:"username"`
	Duration    float64  `json:"duration"`
	Description string   `json:"description"`
	License     string   `json:"license"`
	Tags        []string `json:"tags"`
	Previews    Previews `json:"previews"`
}

// BestPreviewURL picks the higher-quality encoding first, falling back to
// the lower-quality one.
func (s *Sound) BestPreviewURL() (string, error) {
	if s.Previews.HQMP3 != "" {
		return s.Previews.HQMP3, nil
	}
	if s.Previews.LQMP3 != "" {
		return s.Previews.LQMP3, nil
	}
	return "", ErrNoPreview
}

// ToSample converts a remote sound into a local catalog record.
func (s *Sound) ToSample() model.Sample {
	return model.Sample{
		ID:          s.ID,
		Name:        s.Name,
		Author:      s.Username,
		Duration:    s.Duration,
		Description: s.Description,
		License:     s.License,
		Tags:        s.Tags,
		Enabled:     true,
	}
}

type searchResponse struct {
	Count   int     `json:"count"`
	Results []Sound `json:"results"`
}

// Client talks to the remote sample catalog over authenticated HTTP.
type Client struct {
	BaseURL string
	Token   string
	HTTP    *http.Client
}

// NewClient creates a client against the default API root.
func NewClient(token string) *Client {
	return &Client{
		BaseURL: DefaultBaseURL,
		Token:   token,
		HTTP:    &http.Client{Timeout: requestTimeout},
	}
}

// Sound fetches the metadata for one sound.
func (c *Client) Sound(ctx context.Context, id int) (*Sound, error) {
	body, err := c.get(ctx, fmt.Sprintf("%s/sounds/%d/", c.BaseURL, id))
	if err != nil {
		return nil, err
	}

	sound := &Sound{}
	if err := json.Unmarshal(body, sound); err != nil {
		return nil, fmt.Errorf("freesound: parse sound %d: %w", id, err)
	}
	return sound, nil
}

// Search runs a text query against the remote catalog and returns candidate
// sounds for the acquisition dialog.
func (c *Client) Search(ctx context.Context, query string, pageSize int) ([]Sound, error) {
	searchURL, err := url.Parse(c.BaseURL + "/search/text/")
	if err != nil {
		return nil, fmt.Errorf("freesound: parse base URL: %w", err)
	}

	params := url.Values{}
	params.Set("query", query)
	params.Set("page_size", strconv.Itoa(pageSize))
	params.Set("fields", searchFields)
	searchURL.RawQuery = params.Encode()

	body, err := c.get(ctx, searchURL.String())
	if err != nil {
		return nil, err
	}

	resp := searchResponse{}
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("freesound: parse search response: %w", err)
	}

	logrus.Infof("search %q returned %d sounds", query, len(resp.Results))
	return resp.Results, nil
}

// ResolvePreviewURL performs fetch stage 1 for a preview session: it loads
// the sound's metadata and picks the best available preview encoding.
func (c *Client) ResolvePreviewURL(ctx context.Context, sampleID int) (string, error) {
	sound, err := c.Sound(ctx, sampleID)
	if err != nil {
		return "", err
	}
	return sound.BestPreviewURL()
}

// FetchPreview performs fetch stage 2: it downloads the preview audio bytes
// through the same authenticated channel.
func (c *Client) FetchPreview(ctx context.Context, previewURL string) ([]byte, error) {
	return c.get(ctx, previewURL)
}

// get issues an authenticated GET and returns the body. It fails fast with
// ErrNoToken before touching the network when no credential is configured.
func (c *Client) get(ctx context.Context, rawURL string) ([]byte, error) {
	if c.Token == "" {
		return nil, ErrNoToken
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("freesound: build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.Token)

	res, err := c.HTTP.Do(req)
	if err != nil {
		return nil, fmt.Errorf("freesound: fetch %s: %w", rawURL, err)
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("freesound: bad status for %s: %s", rawURL, res.Status)
	}

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, fmt.Errorf("freesound: read response: %w", err)
	}
	return body, nil
}
