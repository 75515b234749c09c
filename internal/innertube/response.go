package innertube

import (
	"encoding/json"
	"fmt"
)

// PlayerResponse is the subset of the /player response that carries stream
// formats. Legacy itags often arrive with only some metadata populated.
type PlayerResponse struct {
	PlayabilityStatus PlayabilityStatus `json:"playabilityStatus"`
	StreamingData     StreamingData     `json:"streamingData"`
	VideoDetails      VideoDetails      `json:"videoDetails"`
}

type PlayabilityStatus struct {
	Status            string             `json:"status"`
	Reason            string             `json:"reason"`
	LiveStreamability *LiveStreamability `json:"liveStreamability"`
}

func (p *PlayabilityStatus) IsOK() bool {
	return p.Status == "OK"
}

func (p *PlayabilityStatus) IsLive() bool {
	return p.LiveStreamability != nil
}

type LiveStreamability struct {
	LiveStreamabilityRenderer struct {
		VideoID string `json:"videoId"`
	} `json:"liveStreamabilityRenderer"`
}

type StreamingData struct {
	ExpiresInSeconds string   `json:"expiresInSeconds"`
	Formats          []Format `json:"formats"`
	AdaptiveFormats  []Format `json:"adaptiveFormats"`
}

type Format struct {
	Itag            int    `json:"itag"`
	URL             string `json:"url"`
	MimeType        string `json:"mimeType"`
	Bitrate         int    `json:"bitrate"`
	AverageBitrate  int    `json:"averageBitrate"`
	Width           int    `json:"width"`
	Height          int    `json:"height"`
	FPS             int    `json:"fps"`
	Quality         string `json:"quality"`
	QualityLabel    string `json:"qualityLabel"`
	AudioQuality    string `json:"audioQuality"`
	AudioChannels   int    `json:"audioChannels"`
	SignatureCipher string `json:"signatureCipher"`
	Cipher          string `json:"cipher"` // Legacy
}

type VideoDetails struct {
	VideoID       string `json:"videoId"`
	Title         string `json:"title"`
	Author        string `json:"author"`
	IsLiveContent bool   `json:"isLiveContent"`
}

// DecodePlayerResponse decodes a raw /player JSON body.
func DecodePlayerResponse(data []byte) (*PlayerResponse, error) {
	var resp PlayerResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		return nil, fmt.Errorf("decode player response: %w", err)
	}
	return &resp, nil
}
