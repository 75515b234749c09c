package formats

import (
	"mime"
	"strings"

	"github.com/famomatic/ytmeta/internal/policy"
)

var codecAliases = map[string]string{
	"mp4a":   "mp4a",
	"mp4v":   "mp4v",
	"mp3":    "mp3",
	"vorbis": "vorbis",
	"aac":    "aac",
	"opus":   "opus",
	"flac":   "flac",
	"avc1":   "avc1",
	"vp8":    "VP8",
	"vp9":    "VP9",
	"vp09":   "VP9",
	"h.264":  "H.264",
	"h264":   "H.264",
}

// NormalizeCodec maps a raw codec string to the token used by the encoding
// preference tables. Table tokens pass through unchanged; RFC 6381 strings
// such as "avc1.64001f" or "vp09.00.51.08" lose their profile suffix.
// Unknown codecs come back trimmed but otherwise as given.
func NormalizeCodec(raw string) string {
	tok := strings.TrimSpace(raw)
	if policy.AudioEncodings.Contains(tok) || policy.VideoEncodings.Contains(tok) {
		return tok
	}
	lower := strings.ToLower(tok)
	if alias, ok := codecAliases[lower]; ok {
		return alias
	}
	if i := strings.IndexByte(lower, '.'); i > 0 {
		if alias, ok := codecAliases[lower[:i]]; ok {
			return alias
		}
	}
	return tok
}

// Tracks is the codec split of one mime type.
type Tracks struct {
	TopLevel   string // "audio" or "video"
	VideoCodec string
	AudioCodec string
}

func (t Tracks) HasVideo() bool {
	return t.VideoCodec != "" || t.TopLevel == "video"
}

func (t Tracks) HasAudio() bool {
	return t.AudioCodec != "" || t.TopLevel == "audio"
}

// ClassifyMime splits the codecs of mimeType into a video and an audio codec,
// normalized for ranking. A codec neither table knows is attributed to the
// mime's top-level type when that slot is still free.
func ClassifyMime(mimeType string) Tracks {
	var t Tracks
	mediaType, _, err := mime.ParseMediaType(mimeType)
	if err == nil {
		t.TopLevel, _, _ = strings.Cut(strings.ToLower(mediaType), "/")
	}
	var unknown []string
	for _, raw := range mimeCodecs(mimeType) {
		tok := NormalizeCodec(raw)
		switch {
		case policy.VideoEncodings.Contains(tok):
			if t.VideoCodec == "" {
				t.VideoCodec = tok
			}
		case policy.AudioEncodings.Contains(tok):
			if t.AudioCodec == "" {
				t.AudioCodec = tok
			}
		default:
			unknown = append(unknown, tok)
		}
	}
	for _, tok := range unknown {
		switch {
		case t.TopLevel == "video" && t.VideoCodec == "":
			t.VideoCodec = tok
		case t.TopLevel == "audio" && t.AudioCodec == "":
			t.AudioCodec = tok
		}
	}
	return t
}

func mimeCodecs(mimeType string) []string {
	_, params, err := mime.ParseMediaType(mimeType)
	if err != nil {
		return nil
	}
	var out []string
	for _, c := range strings.Split(params["codecs"], ",") {
		if c = strings.TrimSpace(c); c != "" {
			out = append(out, c)
		}
	}
	return out
}

// MimeContainer returns the lowercased subtype of mimeType, e.g. "webm".
func MimeContainer(mimeType string) string {
	mediaType, _, err := mime.ParseMediaType(mimeType)
	if err != nil {
		return ""
	}
	parts := strings.SplitN(mediaType, "/", 2)
	if len(parts) != 2 {
		return ""
	}
	return strings.ToLower(parts[1])
}
