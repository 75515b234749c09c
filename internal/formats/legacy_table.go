package formats

import "github.com/samber/mo"

// legacyFormats describes itags the player API historically returns without
// complete metadata. Bitrate is bits/s; AudioBitrate is kbit/s.
var legacyFormats = []Entry{
	{Itag: 5, Format: StaticFormat{MimeType: `video/flv; codecs="Sorenson H.283, mp3"`, QualityLabel: mo.Some("240p"), Bitrate: mo.Some(250000), AudioBitrate: mo.Some(64)}},
	{Itag: 6, Format: StaticFormat{MimeType: `video/flv; codecs="Sorenson H.263, mp3"`, QualityLabel: mo.Some("270p"), Bitrate: mo.Some(800000), AudioBitrate: mo.Some(64)}},
	{Itag: 13, Format: StaticFormat{MimeType: `video/3gp; codecs="MPEG-4 Visual, aac"`, Bitrate: mo.Some(500000)}},
	{Itag: 17, Format: StaticFormat{MimeType: `video/3gp; codecs="MPEG-4 Visual, aac"`, QualityLabel: mo.Some("144p"), Bitrate: mo.Some(50000), AudioBitrate: mo.Some(24)}},
	{Itag: 18, Format: StaticFormat{MimeType: `video/mp4; codecs="H.264, aac"`, QualityLabel: mo.Some("360p"), Bitrate: mo.Some(500000), AudioBitrate: mo.Some(96)}},
	{Itag: 22, Format: StaticFormat{MimeType: `video/mp4; codecs="H.264, aac"`, QualityLabel: mo.Some("720p"), Bitrate: mo.Some(2000000), AudioBitrate: mo.Some(192)}},
	{Itag: 34, Format: StaticFormat{MimeType: `video/flv; codecs="H.264, aac"`, QualityLabel: mo.Some("360p"), Bitrate: mo.Some(500000), AudioBitrate: mo.Some(128)}},
	{Itag: 35, Format: StaticFormat{MimeType: `video/flv; codecs="H.264, aac"`, QualityLabel: mo.Some("480p"), Bitrate: mo.Some(800000), AudioBitrate: mo.Some(128)}},
	{Itag: 36, Format: StaticFormat{MimeType: `video/3gp; codecs="MPEG-4 Visual, aac"`, QualityLabel: mo.Some("240p"), Bitrate: mo.Some(175000), AudioBitrate: mo.Some(32)}},
	{Itag: 37, Format: StaticFormat{MimeType: `video/mp4; codecs="H.264, aac"`, QualityLabel: mo.Some("1080p"), Bitrate: mo.Some(3000000), AudioBitrate: mo.Some(192)}},
	{Itag: 38, Format: StaticFormat{MimeType: `video/mp4; codecs="H.264, aac"`, QualityLabel: mo.Some("3072p"), Bitrate: mo.Some(3500000), AudioBitrate: mo.Some(192)}},
	{Itag: 43, Format: StaticFormat{MimeType: `video/webm; codecs="VP8, vorbis"`, QualityLabel: mo.Some("360p"), Bitrate: mo.Some(500000), AudioBitrate: mo.Some(128)}},
	{Itag: 44, Format: StaticFormat{MimeType: `video/webm; codecs="VP8, vorbis"`, QualityLabel: mo.Some("480p"), Bitrate: mo.Some(1000000), AudioBitrate: mo.Some(128)}},
	{Itag: 45, Format: StaticFormat{MimeType: `video/webm; codecs="VP8, vorbis"`, QualityLabel: mo.Some("720p"), Bitrate: mo.Some(2000000), AudioBitrate: mo.Some(192)}},
	{Itag: 46, Format: StaticFormat{MimeType: `audio/webm; codecs="vp8, vorbis"`, QualityLabel: mo.Some("1080p"), AudioBitrate: mo.Some(192)}},
	{Itag: 82, Format: StaticFormat{MimeType: `video/mp4; codecs="H.264, aac"`, QualityLabel: mo.Some("360p"), Bitrate: mo.Some(500000), AudioBitrate: mo.Some(96)}},
	{Itag: 83, Format: StaticFormat{MimeType: `video/mp4; codecs="H.264, aac"`, QualityLabel: mo.Some("240p"), Bitrate: mo.Some(500000), AudioBitrate: mo.Some(96)}},
	{Itag: 84, Format: StaticFormat{MimeType: `video/mp4; codecs="H.264, aac"`, QualityLabel: mo.Some("720p"), Bitrate: mo.Some(2000000), AudioBitrate: mo.Some(192)}},
	{Itag: 85, Format: StaticFormat{MimeType: `video/mp4; codecs="H.264, aac"`, QualityLabel: mo.Some("1080p"), Bitrate: mo.Some(3000000), AudioBitrate: mo.Some(192)}},
	{Itag: 91, Format: StaticFormat{MimeType: `video/ts; codecs="H.264, aac"`, QualityLabel: mo.Some("144p"), Bitrate: mo.Some(100000), AudioBitrate: mo.Some(48)}},
	{Itag: 92, Format: StaticFormat{MimeType: `video/ts; codecs="H.264, aac"`, QualityLabel: mo.Some("240p"), Bitrate: mo.Some(150000), AudioBitrate: mo.Some(48)}},
	{Itag: 93, Format: StaticFormat{MimeType: `video/ts; codecs="H.264, aac"`, QualityLabel: mo.Some("360p"), Bitrate: mo.Some(500000), AudioBitrate: mo.Some(128)}},
	{Itag: 94, Format: StaticFormat{MimeType: `video/ts; codecs="H.264, aac"`, QualityLabel: mo.Some("480p"), Bitrate: mo.Some(800000), AudioBitrate: mo.Some(128)}},
	{Itag: 95, Format: StaticFormat{MimeType: `video/ts; codecs="H.264, aac"`, QualityLabel: mo.Some("720p"), Bitrate: mo.Some(1500000), AudioBitrate: mo.Some(256)}},
	{Itag: 96, Format: StaticFormat{MimeType: `video/ts; codecs="H.264, aac"`, QualityLabel: mo.Some("1080p"), Bitrate: mo.Some(2500000), AudioBitrate: mo.Some(256)}},
	{Itag: 100, Format: StaticFormat{MimeType: `audio/webm; codecs="VP8, vorbis"`, QualityLabel: mo.Some("360p"), AudioBitrate: mo.Some(128)}},
	{Itag: 101, Format: StaticFormat{MimeType: `audio/webm; codecs="VP8, vorbis"`, QualityLabel: mo.Some("360p"), AudioBitrate: mo.Some(192)}},
	{Itag: 102, Format: StaticFormat{MimeType: `audio/webm; codecs="VP8, vorbis"`, QualityLabel: mo.Some("720p"), AudioBitrate: mo.Some(192)}},
	{Itag: 120, Format: StaticFormat{MimeType: `video/flv; codecs="H.264, aac"`, QualityLabel: mo.Some("720p"), Bitrate: mo.Some(2000000), AudioBitrate: mo.Some(128)}},
	{Itag: 127, Format: StaticFormat{MimeType: `audio/ts; codecs="aac"`, AudioBitrate: mo.Some(96)}},
	{Itag: 128, Format: StaticFormat{MimeType: `audio/ts; codecs="aac"`, AudioBitrate: mo.Some(96)}},
	{Itag: 132, Format: StaticFormat{MimeType: `video/ts; codecs="H.264, aac"`, QualityLabel: mo.Some("240p"), Bitrate: mo.Some(150000), AudioBitrate: mo.Some(48)}},
	{Itag: 133, Format: StaticFormat{MimeType: `video/mp4; codecs="H.264"`, QualityLabel: mo.Some("240p"), Bitrate: mo.Some(200000)}},
	{Itag: 134, Format: StaticFormat{MimeType: `video/mp4; codecs="H.264"`, QualityLabel: mo.Some("360p"), Bitrate: mo.Some(300000)}},
	{Itag: 135, Format: StaticFormat{MimeType: `video/mp4; codecs="H.264"`, QualityLabel: mo.Some("480p"), Bitrate: mo.Some(500000)}},
	{Itag: 136, Format: StaticFormat{MimeType: `video/mp4; codecs="H.264"`, QualityLabel: mo.Some("720p"), Bitrate: mo.Some(1000000)}},
	{Itag: 137, Format: StaticFormat{MimeType: `video/mp4; codecs="H.264"`, QualityLabel: mo.Some("1080p"), Bitrate: mo.Some(2500000)}},
	{Itag: 138, Format: StaticFormat{MimeType: `video/mp4; codecs="H.264"`, QualityLabel: mo.Some("4320p"), Bitrate: mo.Some(13500000)}},
	{Itag: 139, Format: StaticFormat{MimeType: `audio/mp4; codecs="aac"`, AudioBitrate: mo.Some(48)}},
	{Itag: 140, Format: StaticFormat{MimeType: `audio/m4a; codecs="aac"`, AudioBitrate: mo.Some(128)}},
	{Itag: 141, Format: StaticFormat{MimeType: `audio/mp4; codecs="aac"`, AudioBitrate: mo.Some(256)}},
	{Itag: 151, Format: StaticFormat{MimeType: `video/ts; codecs="H.264, aac"`, QualityLabel: mo.Some("720p"), Bitrate: mo.Some(50000), AudioBitrate: mo.Some(24)}},
	{Itag: 160, Format: StaticFormat{MimeType: `video/mp4; codecs="H.264"`, QualityLabel: mo.Some("144p"), Bitrate: mo.Some(100000)}},
	{Itag: 171, Format: StaticFormat{MimeType: `audio/webm; codecs="vorbis"`, AudioBitrate: mo.Some(128)}},
	{Itag: 172, Format: StaticFormat{MimeType: `audio/webm; codecs="vorbis"`, AudioBitrate: mo.Some(192)}},
	{Itag: 242, Format: StaticFormat{MimeType: `video/webm; codecs="VP9"`, QualityLabel: mo.Some("240p"), Bitrate: mo.Some(100000)}},
	{Itag: 243, Format: StaticFormat{MimeType: `video/webm; codecs="VP9"`, QualityLabel: mo.Some("360p"), Bitrate: mo.Some(250000)}},
	{Itag: 244, Format: StaticFormat{MimeType: `video/webm; codecs="VP9"`, QualityLabel: mo.Some("480p"), Bitrate: mo.Some(500000)}},
	{Itag: 247, Format: StaticFormat{MimeType: `video/webm; codecs="VP9"`, QualityLabel: mo.Some("720p"), Bitrate: mo.Some(700000)}},
	{Itag: 248, Format: StaticFormat{MimeType: `video/webm; codecs="VP9"`, QualityLabel: mo.Some("1080p"), Bitrate: mo.Some(1500000)}},
	{Itag: 249, Format: StaticFormat{MimeType: `audio/webm; codecs="opus"`, AudioBitrate: mo.Some(48)}},
	{Itag: 250, Format: StaticFormat{MimeType: `audio/webm; codecs="opus"`, AudioBitrate: mo.Some(64)}},
	{Itag: 251, Format: StaticFormat{MimeType: `audio/webm; codecs="opus"`, AudioBitrate: mo.Some(160)}},
	{Itag: 264, Format: StaticFormat{MimeType: `video/mp4; codecs="H.264"`, QualityLabel: mo.Some("1440p"), Bitrate: mo.Some(4000000)}},
	{Itag: 266, Format: StaticFormat{MimeType: `video/mp4; codecs="H.264"`, QualityLabel: mo.Some("2160p"), Bitrate: mo.Some(12500000)}},
	{Itag: 271, Format: StaticFormat{MimeType: `video/webm; codecs="VP9"`, QualityLabel: mo.Some("1440p"), Bitrate: mo.Some(9000000)}},
	{Itag: 272, Format: StaticFormat{MimeType: `video/webm; codecs="VP9"`, QualityLabel: mo.Some("4320p"), Bitrate: mo.Some(20000000)}},
	{Itag: 278, Format: StaticFormat{MimeType: `video/webm; codecs="VP9"`, QualityLabel: mo.Some("144p 30fps"), Bitrate: mo.Some(80000)}},
	{Itag: 298, Format: StaticFormat{MimeType: `video/mp4; codecs="H.264"`, QualityLabel: mo.Some("720p"), Bitrate: mo.Some(3000000)}},
	{Itag: 299, Format: StaticFormat{MimeType: `video/mp4; codecs="H.264"`, QualityLabel: mo.Some("1080p"), Bitrate: mo.Some(5500000)}},
	{Itag: 300, Format: StaticFormat{MimeType: `video/ts; codecs="H.264, aac"`, QualityLabel: mo.Some("720p"), Bitrate: mo.Some(1318000), AudioBitrate: mo.Some(48)}},
	{Itag: 302, Format: StaticFormat{MimeType: `video/webm; codecs="VP9"`, QualityLabel: mo.Some("720p HFR"), Bitrate: mo.Some(2500000)}},
	{Itag: 303, Format: StaticFormat{MimeType: `video/webm; codecs="VP9"`, QualityLabel: mo.Some("1080p HFR"), Bitrate: mo.Some(5000000)}},
	{Itag: 308, Format: StaticFormat{MimeType: `video/webm; codecs="VP9"`, QualityLabel: mo.Some("1440p HFR"), Bitrate: mo.Some(10000000)}},
	{Itag: 313, Format: StaticFormat{MimeType: `video/webm; codecs="VP9"`, QualityLabel: mo.Some("2160p"), Bitrate: mo.Some(13000000)}},
	{Itag: 315, Format: StaticFormat{MimeType: `video/webm; codecs="VP9"`, QualityLabel: mo.Some("2160p HFR"), Bitrate: mo.Some(20000000)}},
	{Itag: 330, Format: StaticFormat{MimeType: `video/webm; codecs="VP9"`, QualityLabel: mo.Some("144p HDR, HFR"), Bitrate: mo.Some(80000)}},
	{Itag: 331, Format: StaticFormat{MimeType: `video/webm; codecs="VP9"`, QualityLabel: mo.Some("240p HDR, HFR"), Bitrate: mo.Some(100000)}},
	{Itag: 332, Format: StaticFormat{MimeType: `video/webm; codecs="VP9"`, QualityLabel: mo.Some("360p HDR, HFR"), Bitrate: mo.Some(250000)}},
	{Itag: 333, Format: StaticFormat{MimeType: `video/webm; codecs="VP9"`, QualityLabel: mo.Some("240p HDR, HFR"), Bitrate: mo.Some(500000)}},
	{Itag: 334, Format: StaticFormat{MimeType: `video/webm; codecs="VP9"`, QualityLabel: mo.Some("720p HDR, HFR"), Bitrate: mo.Some(1000000)}},
	{Itag: 335, Format: StaticFormat{MimeType: `video/webm; codecs="VP9"`, QualityLabel: mo.Some("1080p HDR, HFR"), Bitrate: mo.Some(1500000)}},
	{Itag: 336, Format: StaticFormat{MimeType: `video/webm; codecs="VP9"`, QualityLabel: mo.Some("1440p HDR, HFR"), Bitrate: mo.Some(5000000)}},
	{Itag: 337, Format: StaticFormat{MimeType: `video/webm; codecs="VP9"`, QualityLabel: mo.Some("2160p HDR, HFR"), Bitrate: mo.Some(12000000)}},
}
