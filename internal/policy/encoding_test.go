package policy

import "testing"

func TestRankIsMonotonicInTablePosition(t *testing.T) {
	for _, table := range []*Table{AudioEncodings, VideoEncodings} {
		tokens := table.Tokens()
		for i := 0; i < len(tokens); i++ {
			if got := table.Rank(tokens[i]); got != i {
				t.Fatalf("%s: Rank(%q)=%d, want %d", table.Name(), tokens[i], got, i)
			}
			for j := i + 1; j < len(tokens); j++ {
				if Rank(table, tokens[i]) >= Rank(table, tokens[j]) {
					t.Fatalf("%s: rank(%q) >= rank(%q)", table.Name(), tokens[i], tokens[j])
				}
			}
			if Rank(table, "unknown-codec") >= Rank(table, tokens[i]) {
				t.Fatalf("%s: unranked token not below %q", table.Name(), tokens[i])
			}
		}
	}
}

func TestLiteralOrderIsPreserved(t *testing.T) {
	wantAudio := []string{"mp4a", "mp3", "vorbis", "aac", "opus", "flac"}
	wantVideo := []string{"mp4v", "avc1", "Sorenson H.283", "MPEG-4 Visual", "VP8", "VP9", "H.264"}

	if got := AudioEncodings.Tokens(); len(got) != len(wantAudio) {
		t.Fatalf("audio len=%d, want %d", len(got), len(wantAudio))
	}
	for i, tok := range wantAudio {
		if got := AudioEncodings.Rank(tok); got != i {
			t.Fatalf("audio Rank(%q)=%d, want %d", tok, got, i)
		}
	}
	for i, tok := range wantVideo {
		if got := VideoEncodings.Rank(tok); got != i {
			t.Fatalf("video Rank(%q)=%d, want %d", tok, got, i)
		}
	}
}

func TestRankIsExactAndCaseSensitive(t *testing.T) {
	tests := []struct {
		table *Table
		token string
	}{
		{table: VideoEncodings, token: "vp9"},
		{table: VideoEncodings, token: "h.264"},
		{table: VideoEncodings, token: "avc1.64001f"},
		{table: AudioEncodings, token: "Opus"},
		{table: AudioEncodings, token: " opus"},
		{table: AudioEncodings, token: ""},
	}
	for _, tt := range tests {
		if got := tt.table.Rank(tt.token); got != Unranked {
			t.Fatalf("%s: Rank(%q)=%d, want Unranked", tt.table.Name(), tt.token, got)
		}
	}
}

func TestTokensReturnsCopy(t *testing.T) {
	tokens := AudioEncodings.Tokens()
	tokens[0] = "mutated"
	if AudioEncodings.Contains("mutated") {
		t.Fatal("mutating Tokens() result changed the table")
	}
	if !AudioEncodings.Contains("mp4a") {
		t.Fatal("expected mp4a to remain ranked")
	}
}

func TestCompare(t *testing.T) {
	if Compare(AudioEncodings, "opus", "aac") <= 0 {
		t.Fatal("expected opus preferred over aac")
	}
	if Compare(VideoEncodings, "VP9", "H.264") >= 0 {
		t.Fatal("expected H.264 preferred over VP9")
	}
	if Compare(VideoEncodings, "x", "y") != 0 {
		t.Fatal("expected two unranked tokens to tie")
	}
	if Rank(nil, "opus") != Unranked {
		t.Fatal("expected nil table to rank everything Unranked")
	}
}
