package client

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"golang.org/x/sync/errgroup"

	"github.com/famomatic/ytmeta/internal/innertube"
)

const playerResponseFixture = `{
  "playabilityStatus": {"status": "OK"},
  "videoDetails": {"videoId": "jNQXAC9IVRw", "title": "Me at the zoo", "author": "jawed"},
  "streamingData": {
    "formats": [
      {"itag": 18, "url": "https://example.test/18"}
    ],
    "adaptiveFormats": [
      {"itag": 251, "url": "https://example.test/251", "mimeType": "audio/webm; codecs=\"opus\"", "bitrate": 160000},
      {"itag": 999, "url": "https://example.test/999"},
      {"itag": 137, "url": "https://example.test/137", "mimeType": "video/mp4; codecs=\"avc1.640028\"", "width": 1920, "height": 1080, "fps": 30, "bitrate": 4000000}
    ]
  }
}`

func TestNew_DefaultHeaders(t *testing.T) {
	c, err := New(Config{})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if got := c.Headers().Get("User-Agent"); got != innertube.DefaultUserAgent {
		t.Fatalf("User-Agent=%q, want default", got)
	}
}

func TestNew_HeaderOverrides(t *testing.T) {
	c, err := New(Config{
		UserAgent:      "ytmeta-test/1.0",
		RequestHeaders: http.Header{"accept-language": {"de-DE"}},
	})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	h := c.Headers()
	if got := h.Get("User-Agent"); got != "ytmeta-test/1.0" {
		t.Fatalf("User-Agent=%q, want override", got)
	}
	if got := h.Get("Accept-Language"); got != "de-DE" {
		t.Fatalf("Accept-Language=%q, want de-DE", got)
	}

	h.Set("User-Agent", "mutated")
	if got := c.Headers().Get("User-Agent"); got != "ytmeta-test/1.0" {
		t.Fatalf("Headers() returned shared map; User-Agent=%q", got)
	}
}

func TestNew_RemovesHeaderWithEmptyValues(t *testing.T) {
	c, err := New(Config{RequestHeaders: http.Header{"User-Agent": {}}})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if _, ok := c.Headers()["User-Agent"]; ok {
		t.Fatal("expected User-Agent to be removed")
	}
}

func TestNew_InvalidConfig(t *testing.T) {
	_, err := New(Config{IPv6Block: "2001:DB8::/32"})
	if !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("err=%v, want ErrInvalidConfig", err)
	}
}

func TestClient_LookupItag(t *testing.T) {
	c, err := New(Config{})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	f, ok := c.LookupItag(22)
	if !ok {
		t.Fatal("LookupItag(22) missing")
	}
	if f.MimeType != `video/mp4; codecs="H.264, aac"` {
		t.Fatalf("itag 22 mime=%q", f.MimeType)
	}
	if f.QualityLabel.OrEmpty() != "720p" || f.Bitrate.OrEmpty() != 2000000 || f.AudioBitrate.OrEmpty() != 192 {
		t.Fatalf("itag 22 metadata=%+v", f)
	}

	if _, ok := c.LookupItag(401); ok {
		t.Fatal("expected modern itag 401 to be absent")
	}
	if got := len(c.KnownItags()); got != 74 {
		t.Fatalf("KnownItags() len=%d, want 74", got)
	}
}

func TestClient_LookupItagConcurrent(t *testing.T) {
	c, err := New(Config{})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	var g errgroup.Group
	for i := 0; i < 32; i++ {
		g.Go(func() error {
			f, ok := c.LookupItag(251)
			if !ok || f.AudioBitrate.OrEmpty() != 160 {
				return errors.New("itag 251 lookup mismatch")
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		t.Fatal(err)
	}
}

func TestClient_EnrichFormats(t *testing.T) {
	logger := &recordingLogger{}
	c, err := New(Config{Logger: logger})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	got := c.EnrichFormats([]FormatInfo{
		{Itag: 18},
		{Itag: 140, AudioBitrate: 129},
		{Itag: 999},
	})
	if len(got) != 3 {
		t.Fatalf("len=%d, want 3", len(got))
	}
	if got[0].Height != 360 || !got[0].HasVideo || !got[0].HasAudio || got[0].VideoCodec != "H.264" {
		t.Fatalf("itag 18 not enriched: %+v", got[0])
	}
	if got[1].AudioBitrate != 129 {
		t.Fatalf("itag 140 AudioBitrate=%d, want caller value 129 kept", got[1].AudioBitrate)
	}
	if got[1].MimeType != `audio/m4a; codecs="aac"` {
		t.Fatalf("itag 140 mime=%q", got[1].MimeType)
	}
	if len(logger.lines) != 1 {
		t.Fatalf("warnings=%v, want one for itag 999", logger.lines)
	}
}

func TestClient_VideoFromPlayerResponse(t *testing.T) {
	logger := &recordingLogger{}
	c, err := New(Config{Logger: logger})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	info, err := c.VideoFromPlayerResponse([]byte(playerResponseFixture))
	if err != nil {
		t.Fatalf("VideoFromPlayerResponse() error = %v", err)
	}
	if info.ID != "jNQXAC9IVRw" || info.Title != "Me at the zoo" || info.IsLive {
		t.Fatalf("unexpected details: %+v", info)
	}

	wantOrder := []int{137, 18, 251, 999}
	if len(info.Formats) != len(wantOrder) {
		t.Fatalf("formats=%d, want %d", len(info.Formats), len(wantOrder))
	}
	for i, itag := range wantOrder {
		if info.Formats[i].Itag != itag {
			t.Fatalf("format[%d].Itag=%d, want %d", i, info.Formats[i].Itag, itag)
		}
	}
	if f := info.Formats[1]; f.QualityLabel != "360p" || f.AudioBitrate != 96 {
		t.Fatalf("itag 18 not enriched from legacy table: %+v", f)
	}
	if len(logger.lines) != 1 {
		t.Fatalf("warnings=%v, want one for itag 999", logger.lines)
	}
}

func TestClient_VideoFromPlayerResponseErrors(t *testing.T) {
	c, err := New(Config{})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	tests := []struct {
		name string
		body string
		want error
	}{
		{name: "malformed", body: "not json", want: ErrInvalidInput},
		{name: "login", body: `{"playabilityStatus":{"status":"LOGIN_REQUIRED","reason":"Sign in"}}`, want: ErrLoginRequired},
		{name: "unplayable", body: `{"playabilityStatus":{"status":"UNPLAYABLE","reason":"Private"}}`, want: ErrUnavailable},
		{name: "empty", body: `{"playabilityStatus":{"status":"OK"}}`, want: ErrNoPlayableFormats},
	}
	for _, tt := range tests {
		_, err := c.VideoFromPlayerResponse([]byte(tt.body))
		if !errors.Is(err, tt.want) {
			t.Fatalf("%s: err=%v, want %v", tt.name, err, tt.want)
		}
	}
}

func TestClient_NewRequestCarriesHeaders(t *testing.T) {
	c, err := New(Config{UserAgent: "ytmeta-test/1.0"})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	req, err := c.NewRequest(context.Background(), http.MethodGet, WatchURL("jNQXAC9IVRw"))
	if err != nil {
		t.Fatalf("NewRequest() error = %v", err)
	}
	if got := req.Header.Get("User-Agent"); got != "ytmeta-test/1.0" {
		t.Fatalf("User-Agent=%q", got)
	}
	if req.URL.Host != "www.youtube.com" {
		t.Fatalf("host=%q", req.URL.Host)
	}

	if _, err := c.NewRequest(context.Background(), http.MethodGet, "://bad"); err == nil {
		t.Fatal("expected error for malformed URL")
	}
}

func TestClient_IsAgeRestricted(t *testing.T) {
	c, err := New(Config{})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	page := `<a href="https://support.google.com/youtube/?p=age_restrictions">learn more</a>`
	if !c.IsAgeRestricted(page) {
		t.Fatal("expected age-restricted page")
	}
	if c.IsAgeRestricted("<html>ordinary watch page</html>") {
		t.Fatal("expected ordinary page to pass")
	}
}
