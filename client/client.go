package client

import (
	"context"
	"fmt"
	"net/http"

	"github.com/famomatic/ytmeta/internal/formats"
	"github.com/famomatic/ytmeta/internal/innertube"
	"github.com/famomatic/ytmeta/internal/validate"
)

// Client resolves legacy itag metadata and ranks candidate streams. It holds
// only immutable tables and is safe for concurrent use.
type Client struct {
	config   Config
	registry *formats.Registry
	headers  http.Header
	logger   Logger
}

// New creates a new client. It builds the process-wide tables on first call,
// so a defective literal table stops the program here rather than mid-run.
func New(config Config) (*Client, error) {
	if err := config.validate(); err != nil {
		return nil, err
	}

	overrides := cloneHeader(config.RequestHeaders)
	if overrides == nil {
		overrides = make(http.Header)
	}
	if config.UserAgent != "" {
		overrides.Set("User-Agent", config.UserAgent)
	}

	logger := config.Logger
	if logger == nil {
		logger = nopLogger{}
	}

	return &Client{
		config:   config,
		registry: formats.DefaultRegistry(),
		headers:  innertube.RequestHeaders(overrides),
		logger:   logger,
	}, nil
}

// LookupItag returns the static metadata of a legacy itag. Modern itags are
// usually absent; that is not an error.
func (c *Client) LookupItag(itag int) (StaticFormat, bool) {
	return c.registry.Lookup(itag)
}

// KnownItags returns every itag with static metadata, ascending.
func (c *Client) KnownItags() []int {
	return c.registry.Itags()
}

// EnrichFormats fills metadata the API left empty from the legacy itag table.
// Values the API supplied are kept.
func (c *Client) EnrichFormats(in []FormatInfo) []FormatInfo {
	out := make([]FormatInfo, 0, len(in))
	for _, f := range in {
		enriched, _ := formats.Enrich(c.registry, fromFormatInfo(f))
		if enriched.MissingMetadata() {
			c.logger.Warnf("itag %d: metadata unavailable", f.Itag)
		}
		out = append(out, toFormatInfo(enriched))
	}
	return out
}

// VideoFromPlayerResponse decodes a raw /player JSON body into a VideoInfo
// whose formats are enriched and sorted best first.
func (c *Client) VideoFromPlayerResponse(data []byte) (*VideoInfo, error) {
	resp, err := innertube.DecodePlayerResponse(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	parsed := formats.Parse(resp, c.registry)
	if len(parsed) == 0 {
		return nil, playabilityError(resp.PlayabilityStatus)
	}
	formats.SortByBest(parsed)

	info := &VideoInfo{
		ID:      resp.VideoDetails.VideoID,
		Title:   resp.VideoDetails.Title,
		Author:  resp.VideoDetails.Author,
		IsLive:  resp.VideoDetails.IsLiveContent || resp.PlayabilityStatus.IsLive(),
		Formats: make([]FormatInfo, 0, len(parsed)),
	}
	for _, f := range parsed {
		if f.MissingMetadata() {
			c.logger.Warnf("itag %d: metadata unavailable", f.Itag)
		}
		info.Formats = append(info.Formats, toFormatInfo(f))
	}
	return info, nil
}

func playabilityError(status innertube.PlayabilityStatus) error {
	switch status.Status {
	case "", "OK":
		return ErrNoPlayableFormats
	case "LOGIN_REQUIRED":
		return fmt.Errorf("%w: %s", ErrLoginRequired, status.Reason)
	default:
		return fmt.Errorf("%w: %s: %s", ErrUnavailable, status.Status, status.Reason)
	}
}

// SelectFormat picks the best candidate for opts. Within a resolution tier
// the preferred encoding wins before bitrate is considered.
func (c *Client) SelectFormat(candidates []FormatInfo, opts SelectionOptions) (FormatInfo, bool) {
	return selectFormat(candidates, opts, c.logger)
}

// IsAgeRestricted reports whether a watch page body links to an
// age-restriction notice.
func (c *Client) IsAgeRestricted(page string) bool {
	return validate.IsAgeRestricted(page)
}

// Headers returns a copy of the headers attached to every outbound request.
func (c *Client) Headers() http.Header {
	return cloneHeader(c.headers)
}

// NewRequest builds a request carrying the client headers. It does not send it.
func (c *Client) NewRequest(ctx context.Context, method, rawURL string) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	innertube.ApplyHeaders(req, c.headers)
	return req, nil
}

// ProxyURL returns the validated proxy setting.
func (c *Client) ProxyURL() string {
	return c.config.ProxyURL
}

// IPv6Block returns the validated IPv6 source block, if any.
func (c *Client) IPv6Block() string {
	return c.config.IPv6Block
}

func cloneHeader(h http.Header) http.Header {
	if h == nil {
		return nil
	}
	return h.Clone()
}
