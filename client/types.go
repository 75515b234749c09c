package client

import "github.com/famomatic/ytmeta/internal/formats"

// StaticFormat is the fixed metadata of a legacy itag. Optional fields are
// absent, not zero, when the itag does not define them.
type StaticFormat = formats.StaticFormat

// VideoInfo is the package-level metadata result.
type VideoInfo struct {
	ID      string
	Title   string
	Author  string
	IsLive  bool
	Formats []FormatInfo
}

// FormatInfo is the normalized public format model.
type FormatInfo struct {
	Itag         int
	URL          string
	MimeType     string
	VideoCodec   string
	AudioCodec   string
	HasAudio     bool
	HasVideo     bool
	Bitrate      int
	AudioBitrate int // kbit/s
	Width        int
	Height       int
	FPS          int
	Ciphered     bool
	Quality      string
	QualityLabel string
}

func toFormatInfo(f formats.Format) FormatInfo {
	bitrate := f.Bitrate
	if f.AverageBitrate != 0 && bitrate == 0 {
		bitrate = f.AverageBitrate
	}
	return FormatInfo{
		Itag:         f.Itag,
		URL:          f.URL,
		MimeType:     f.MimeType,
		VideoCodec:   f.VideoCodec,
		AudioCodec:   f.AudioCodec,
		HasAudio:     f.HasAudio,
		HasVideo:     f.HasVideo,
		Bitrate:      bitrate,
		AudioBitrate: f.AudioBitrate,
		Width:        f.Width,
		Height:       f.Height,
		FPS:          f.FPS,
		Ciphered:     f.Ciphered,
		Quality:      f.Quality,
		QualityLabel: f.QualityLabel,
	}
}

func fromFormatInfo(f FormatInfo) formats.Format {
	out := formats.Format{
		Itag:         f.Itag,
		URL:          f.URL,
		MimeType:     f.MimeType,
		Container:    formats.MimeContainer(f.MimeType),
		VideoCodec:   f.VideoCodec,
		AudioCodec:   f.AudioCodec,
		HasAudio:     f.HasAudio,
		HasVideo:     f.HasVideo,
		Bitrate:      f.Bitrate,
		AudioBitrate: f.AudioBitrate,
		Width:        f.Width,
		Height:       f.Height,
		FPS:          f.FPS,
		Ciphered:     f.Ciphered,
		Quality:      f.Quality,
		QualityLabel: f.QualityLabel,
		Protocol:     "https",
	}
	if f.MimeType != "" && f.VideoCodec == "" && f.AudioCodec == "" {
		tracks := formats.ClassifyMime(f.MimeType)
		out.VideoCodec = tracks.VideoCodec
		out.AudioCodec = tracks.AudioCodec
		out.HasVideo = out.HasVideo || tracks.HasVideo()
		out.HasAudio = out.HasAudio || tracks.HasAudio()
	}
	return out
}
