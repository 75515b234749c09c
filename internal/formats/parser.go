package formats

import (
	"github.com/famomatic/ytmeta/internal/innertube"
)

// Format is a stream description normalized from the player response and
// completed from the legacy table where the API left fields empty.
type Format struct {
	Itag           int
	URL            string
	MimeType       string
	Container      string
	VideoCodec     string
	AudioCodec     string
	HasAudio       bool
	HasVideo       bool
	Bitrate        int
	AverageBitrate int
	AudioBitrate   int // kbit/s
	Width          int
	Height         int
	FPS            int
	Quality        string
	QualityLabel   string
	AudioQuality   string
	AudioChannels  int
	Ciphered       bool
	ThisIsLive     bool
	Protocol       string // "https", "dash", "hls"
}

// Parse extracts formats from a PlayerResponse and fills missing metadata
// from reg. A nil reg skips enrichment.
func Parse(resp *innertube.PlayerResponse, reg *Registry) []Format {
	if resp == nil {
		return nil
	}
	live := resp.PlayabilityStatus.IsLive()

	var out []Format
	extract := func(raw []innertube.Format) {
		for _, f := range raw {
			parsed := Format{
				Itag:           f.Itag,
				URL:            f.URL,
				MimeType:       f.MimeType,
				Bitrate:        f.Bitrate,
				AverageBitrate: f.AverageBitrate,
				Width:          f.Width,
				Height:         f.Height,
				FPS:            f.FPS,
				Quality:        f.Quality,
				QualityLabel:   f.QualityLabel,
				AudioQuality:   f.AudioQuality,
				AudioChannels:  f.AudioChannels,
				Ciphered:       f.URL == "" && (f.SignatureCipher != "" || f.Cipher != ""),
				ThisIsLive:     live,
				Protocol:       "https",
			}
			parsed.applyMime()
			if reg != nil {
				parsed, _ = Enrich(reg, parsed)
			}
			out = append(out, parsed)
		}
	}

	extract(resp.StreamingData.Formats)
	extract(resp.StreamingData.AdaptiveFormats)

	return out
}

// Enrich fills the fields of f that are still empty from the registry entry
// for f.Itag. Fields the API supplied are never replaced. It reports whether
// the itag was found.
func Enrich(reg *Registry, f Format) (Format, bool) {
	static, ok := reg.Lookup(f.Itag)
	if !ok {
		return f, false
	}

	if f.MimeType == "" {
		f.MimeType = static.MimeType
		f.applyMime()
	}
	if f.QualityLabel == "" {
		f.QualityLabel = static.QualityLabel.OrEmpty()
	}
	if f.Bitrate == 0 {
		f.Bitrate = static.Bitrate.OrEmpty()
	}
	if f.AudioBitrate == 0 {
		f.AudioBitrate = static.AudioBitrate.OrEmpty()
	}
	if f.Height == 0 && f.QualityLabel != "" {
		if h, ok := heightFromLabel(f.QualityLabel); ok {
			f.Height = h
		}
	}
	return f, true
}

// MissingMetadata reports whether f lacks what stream selection needs: a mime
// type and at least one of quality label, bitrate or audio bitrate.
func (f Format) MissingMetadata() bool {
	return f.MimeType == "" || (f.QualityLabel == "" && f.Bitrate == 0 && f.AudioBitrate == 0)
}

func (f *Format) applyMime() {
	tracks := ClassifyMime(f.MimeType)
	f.Container = MimeContainer(f.MimeType)
	f.VideoCodec = tracks.VideoCodec
	f.AudioCodec = tracks.AudioCodec
	f.HasVideo = tracks.HasVideo()
	f.HasAudio = tracks.HasAudio()
}
