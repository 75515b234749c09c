package formats

import (
	"sort"

	"github.com/famomatic/ytmeta/internal/policy"
)

// SortByBest sorts formats by Resolution -> Video encoding -> Bitrate ->
// Audio encoding -> Audio bitrate, best first. Remaining ties keep itag order.
func SortByBest(formats []Format) {
	sort.SliceStable(formats, func(i, j int) bool {
		a, b := formats[i], formats[j]
		// 1. Resolution (Height)
		if a.Height != b.Height {
			return a.Height > b.Height
		}
		// 2. Video encoding preference within the same resolution
		if c := policy.Compare(policy.VideoEncodings, a.VideoCodec, b.VideoCodec); c != 0 {
			return c > 0
		}
		// 3. Bitrate (AverageBitrate or Bitrate)
		if ba, bb := effectiveBitrate(a), effectiveBitrate(b); ba != bb {
			return ba > bb
		}
		// 4. Audio encoding, then audio bitrate
		if c := policy.Compare(policy.AudioEncodings, a.AudioCodec, b.AudioCodec); c != 0 {
			return c > 0
		}
		if a.AudioBitrate != b.AudioBitrate {
			return a.AudioBitrate > b.AudioBitrate
		}
		return a.Itag < b.Itag
	})
}

func effectiveBitrate(f Format) int {
	if f.AverageBitrate != 0 {
		return f.AverageBitrate
	}
	return f.Bitrate
}
