package innertube

import (
	"fmt"
	"net/http"
	"sync"

	"github.com/famomatic/ytmeta/internal/types"
	"golang.org/x/net/http/httpguts"
)

// DefaultUserAgent is the browser User-Agent sent with every outbound request.
const DefaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/87.0.4280.101 Safari/537.36"

var defaultHeaders = sync.OnceValue(func() http.Header {
	h, err := BuildHeaders(map[string]string{
		"User-Agent": DefaultUserAgent,
	})
	if err != nil {
		panic(err)
	}
	return h
})

// BuildHeaders validates every name and value and returns them as a header set.
func BuildHeaders(values map[string]string) (http.Header, error) {
	out := make(http.Header, len(values))
	for name, value := range values {
		if err := ValidateHeader(name, value); err != nil {
			return nil, err
		}
		out.Set(name, value)
	}
	return out, nil
}

// ValidateHeader reports types.ErrInvalidHeader for a malformed field name or value.
func ValidateHeader(name, value string) error {
	if !httpguts.ValidHeaderFieldName(name) {
		return fmt.Errorf("%w: name %q", types.ErrInvalidHeader, name)
	}
	if !httpguts.ValidHeaderFieldValue(value) {
		return fmt.Errorf("%w: value for %q", types.ErrInvalidHeader, name)
	}
	return nil
}

// DefaultHeaders returns a copy of the baseline headers. The set is built and
// validated once; an invalid literal panics on first use.
func DefaultHeaders() http.Header {
	return cloneHeader(defaultHeaders())
}

// RequestHeaders returns the defaults with overrides applied. An override
// replaces the default values for its key; a key present with no values
// removes that header, which is the only way to drop the User-Agent.
func RequestHeaders(overrides http.Header) http.Header {
	out := DefaultHeaders()
	for k, vals := range overrides {
		key := http.CanonicalHeaderKey(k)
		if len(vals) == 0 {
			out.Del(key)
			continue
		}
		out[key] = append([]string(nil), vals...)
	}
	return out
}

// ApplyHeaders adds headers to req, replacing any values req already has for
// the same keys.
func ApplyHeaders(req *http.Request, headers http.Header) {
	for k, vals := range headers {
		req.Header.Del(k)
		for _, v := range vals {
			req.Header.Add(k, v)
		}
	}
}

func cloneHeader(h http.Header) http.Header {
	if h == nil {
		return nil
	}
	out := make(http.Header, len(h))
	for k, vals := range h {
		cp := make([]string, len(vals))
		copy(cp, vals)
		out[k] = cp
	}
	return out
}
