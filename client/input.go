package client

import (
	"net/url"
	"regexp"
	"strings"

	"github.com/famomatic/ytmeta/internal/validate"
)

// WatchURLBase is the watch page URL a video ID is appended to.
const WatchURLBase = "https://www.youtube.com/watch?v="

var (
	youtubeIDPattern = regexp.MustCompile(`^[0-9A-Za-z_-]{11}$`)
	pathIDPattern    = regexp.MustCompile(`^/(?:shorts|embed|v|live)/([0-9A-Za-z_-]{11})`)
)

// WatchURL returns the watch page URL for a video ID.
func WatchURL(videoID string) string {
	return WatchURLBase + videoID
}

// ExtractVideoID accepts either a raw id or common YouTube URL shapes. URLs
// must be on a supported host (or youtu.be); anything else is rejected with
// an *InvalidInputDetailError.
func ExtractVideoID(input string) (string, error) {
	s := strings.TrimSpace(input)
	if s == "" {
		return "", &InvalidInputDetailError{Input: input, Reason: "empty"}
	}
	if youtubeIDPattern.MatchString(s) {
		return s, nil
	}
	if !strings.Contains(s, "://") {
		s = "https://" + s
	}
	u, err := url.Parse(s)
	if err != nil || u.Host == "" {
		return "", &InvalidInputDetailError{Input: input, Reason: "malformed_url"}
	}

	host := u.Hostname()
	if host == "youtu.be" {
		id := strings.SplitN(strings.TrimPrefix(u.Path, "/"), "/", 2)[0]
		if youtubeIDPattern.MatchString(id) {
			return id, nil
		}
		return "", &InvalidInputDetailError{Input: input, Reason: "invalid_video_id"}
	}
	if !validate.IsSupportedHost(host) {
		return "", &InvalidInputDetailError{Input: input, Reason: "unsupported_host"}
	}

	if id := u.Query().Get("v"); id != "" {
		if youtubeIDPattern.MatchString(id) {
			return id, nil
		}
		return "", &InvalidInputDetailError{Input: input, Reason: "invalid_video_id"}
	}
	if m := pathIDPattern.FindStringSubmatch(u.Path); len(m) == 2 {
		return m[1], nil
	}
	return "", &InvalidInputDetailError{Input: input, Reason: "missing_video_id"}
}
