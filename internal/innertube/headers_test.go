package innertube

import (
	"errors"
	"net/http"
	"sync"
	"testing"

	"github.com/famomatic/ytmeta/internal/types"
)

func TestDefaultHeaders_UserAgent(t *testing.T) {
	h := DefaultHeaders()
	if got := h.Get("User-Agent"); got != DefaultUserAgent {
		t.Fatalf("User-Agent=%q, want %q", got, DefaultUserAgent)
	}
}

func TestDefaultHeaders_ReturnsIndependentCopies(t *testing.T) {
	a := DefaultHeaders()
	a.Set("User-Agent", "mutated")
	a.Set("X-Extra", "1")

	b := DefaultHeaders()
	if got := b.Get("User-Agent"); got != DefaultUserAgent {
		t.Fatalf("defaults mutated through copy: User-Agent=%q", got)
	}
	if b.Get("X-Extra") != "" {
		t.Fatal("defaults mutated through copy: X-Extra present")
	}
}

func TestDefaultHeaders_ConcurrentFirstUse(t *testing.T) {
	var wg sync.WaitGroup
	results := make([]string, 32)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = DefaultHeaders().Get("User-Agent")
		}(i)
	}
	wg.Wait()
	for i, got := range results {
		if got != DefaultUserAgent {
			t.Fatalf("results[%d]=%q, want default user agent", i, got)
		}
	}
}

func TestRequestHeaders_OverridesAndRemoval(t *testing.T) {
	h := RequestHeaders(http.Header{
		"user-agent":      {"custom/1.0"},
		"Accept-Language": {"en-US"},
	})
	if got := h.Get("User-Agent"); got != "custom/1.0" {
		t.Fatalf("User-Agent=%q, want custom/1.0", got)
	}
	if got := h.Values("User-Agent"); len(got) != 1 {
		t.Fatalf("User-Agent values=%v, want one", got)
	}
	if got := h.Get("Accept-Language"); got != "en-US" {
		t.Fatalf("Accept-Language=%q, want en-US", got)
	}

	kept := RequestHeaders(http.Header{"Accept": {"*/*"}})
	if kept.Get("User-Agent") != DefaultUserAgent {
		t.Fatal("unrelated override dropped the baseline User-Agent")
	}

	removed := RequestHeaders(http.Header{"User-Agent": nil})
	if _, ok := removed["User-Agent"]; ok {
		t.Fatal("expected explicit empty override to remove User-Agent")
	}
}

func TestBuildHeaders_RejectsInvalid(t *testing.T) {
	tests := []struct {
		name  string
		value string
	}{
		{name: "Bad Name", value: "x"},
		{name: "", value: "x"},
		{name: "X-Test", value: "line\r\nbreak"},
		{name: "X-Test", value: "nul\x00"},
	}
	for _, tt := range tests {
		_, err := BuildHeaders(map[string]string{tt.name: tt.value})
		if !errors.Is(err, types.ErrInvalidHeader) {
			t.Fatalf("BuildHeaders(%q: %q) err=%v, want ErrInvalidHeader", tt.name, tt.value, err)
		}
	}
}

func TestApplyHeaders_ReplacesExisting(t *testing.T) {
	req, err := http.NewRequest(http.MethodGet, "https://www.youtube.com/watch?v=jNQXAC9IVRw", nil)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	req.Header.Set("User-Agent", "Go-http-client/1.1")
	ApplyHeaders(req, DefaultHeaders())
	if got := req.Header.Values("User-Agent"); len(got) != 1 || got[0] != DefaultUserAgent {
		t.Fatalf("User-Agent values=%v, want [%s]", got, DefaultUserAgent)
	}
}
