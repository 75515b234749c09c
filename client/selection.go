package client

import (
	"strings"

	"github.com/famomatic/ytmeta/internal/formats"
	"github.com/famomatic/ytmeta/internal/policy"
)

// SelectionMode controls how a format is chosen when itag is not forced.
type SelectionMode string

const (
	SelectionModeBest         SelectionMode = "best"
	SelectionModeMP4AV        SelectionMode = "mp4av"
	SelectionModeMP4VideoOnly SelectionMode = "mp4videoonly"
	SelectionModeVideoOnly    SelectionMode = "videoonly" // Any container (webm/mp4)
	SelectionModeAudioOnly    SelectionMode = "audioonly" // Any container (webm/m4a)
)

// SelectionOptions configures SelectFormat.
type SelectionOptions struct {
	// Itag forces a specific format when non-zero.
	Itag int
	Mode SelectionMode
}

// Unranked is the encoding rank of a codec the preference tables do not list.
const Unranked = policy.Unranked

// AudioEncodingRank returns the preference rank of an audio codec token;
// higher is better. Tokens must already be normalized (see NormalizeCodec).
func AudioEncodingRank(token string) int {
	return policy.AudioEncodings.Rank(token)
}

// VideoEncodingRank returns the preference rank of a video codec token;
// higher is better.
func VideoEncodingRank(token string) int {
	return policy.VideoEncodings.Rank(token)
}

// NormalizeCodec maps a raw codec string such as "avc1.64001f" to the token
// the encoding ranks use.
func NormalizeCodec(raw string) string {
	return formats.NormalizeCodec(raw)
}

func normalizeSelectionMode(mode SelectionMode) SelectionMode {
	switch SelectionMode(strings.ToLower(strings.TrimSpace(string(mode)))) {
	case "", SelectionModeBest:
		return SelectionModeBest
	case SelectionModeMP4AV:
		return SelectionModeMP4AV
	case SelectionModeMP4VideoOnly:
		return SelectionModeMP4VideoOnly
	case SelectionModeVideoOnly:
		return SelectionModeVideoOnly
	case SelectionModeAudioOnly:
		return SelectionModeAudioOnly
	default:
		return SelectionModeBest
	}
}

func selectFormat(candidates []FormatInfo, opts SelectionOptions, logger Logger) (FormatInfo, bool) {
	if len(candidates) == 0 {
		return FormatInfo{}, false
	}

	if opts.Itag != 0 {
		for _, f := range candidates {
			if f.Itag == opts.Itag {
				return f, true
			}
		}
		return FormatInfo{}, false
	}

	mode := normalizeSelectionMode(opts.Mode)
	var (
		best     FormatInfo
		bestNorm formats.Format
		hasBest  bool
	)

	for _, f := range candidates {
		norm := fromFormatInfo(f)
		if !matchesSelectionMode(norm, mode) {
			continue
		}
		warnUnranked(logger, norm)
		if !hasBest || betterForMode(norm, bestNorm, mode) {
			best, bestNorm = f, norm
			hasBest = true
		}
	}

	return best, hasBest
}

func warnUnranked(logger Logger, f formats.Format) {
	if f.VideoCodec != "" && !policy.VideoEncodings.Contains(f.VideoCodec) {
		logger.Warnf("itag %d: video codec %q is unranked", f.Itag, f.VideoCodec)
	}
	if f.AudioCodec != "" && !policy.AudioEncodings.Contains(f.AudioCodec) {
		logger.Warnf("itag %d: audio codec %q is unranked", f.Itag, f.AudioCodec)
	}
}

func matchesSelectionMode(f formats.Format, mode SelectionMode) bool {
	container := f.Container
	switch mode {
	case SelectionModeBest:
		return f.HasAudio || f.HasVideo
	case SelectionModeMP4AV:
		return container == "mp4" && f.HasAudio && f.HasVideo
	case SelectionModeMP4VideoOnly:
		return container == "mp4" && f.HasVideo && !f.HasAudio
	case SelectionModeVideoOnly:
		return f.HasVideo && !f.HasAudio
	case SelectionModeAudioOnly:
		return f.HasAudio && !f.HasVideo
	default:
		return f.HasAudio || f.HasVideo
	}
}

// betterForMode compares within a quality tier (resolution, frame rate) by
// encoding preference first and bitrate second.
func betterForMode(a, b formats.Format, mode SelectionMode) bool {
	switch mode {
	case SelectionModeAudioOnly:
		return compareKeys(
			[]int{audioRank(a), a.AudioBitrate, a.Bitrate, boolScore(a.Ciphered), -a.Itag},
			[]int{audioRank(b), b.AudioBitrate, b.Bitrate, boolScore(b.Ciphered), -b.Itag},
		)
	case SelectionModeMP4AV, SelectionModeMP4VideoOnly, SelectionModeVideoOnly:
		return compareKeys(
			[]int{a.Height, a.Width, a.FPS, videoRank(a), a.Bitrate, audioRank(a), a.AudioBitrate, boolScore(a.Ciphered), -a.Itag},
			[]int{b.Height, b.Width, b.FPS, videoRank(b), b.Bitrate, audioRank(b), b.AudioBitrate, boolScore(b.Ciphered), -b.Itag},
		)
	default:
		return compareKeys(
			[]int{trackRank(a), a.Height, a.Width, a.FPS, videoRank(a), a.Bitrate, audioRank(a), a.AudioBitrate, boolScore(a.Ciphered), -a.Itag},
			[]int{trackRank(b), b.Height, b.Width, b.FPS, videoRank(b), b.Bitrate, audioRank(b), b.AudioBitrate, boolScore(b.Ciphered), -b.Itag},
		)
	}
}

func compareKeys(a, b []int) bool {
	for i := 0; i < len(a) && i < len(b); i++ {
		if a[i] == b[i] {
			continue
		}
		return a[i] > b[i]
	}
	return false
}

func videoRank(f formats.Format) int {
	return policy.VideoEncodings.Rank(f.VideoCodec)
}

func audioRank(f formats.Format) int {
	return policy.AudioEncodings.Rank(f.AudioCodec)
}

func trackRank(f formats.Format) int {
	switch {
	case f.HasVideo && f.HasAudio:
		return 3
	case f.HasVideo:
		return 2
	case f.HasAudio:
		return 1
	default:
		return 0
	}
}

func boolScore(ciphered bool) int {
	if ciphered {
		return 0
	}
	return 1
}
