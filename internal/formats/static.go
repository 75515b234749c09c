package formats

import (
	"fmt"
	"math"
	"slices"
	"strconv"
	"sync"

	"github.com/samber/lo"
	"github.com/samber/mo"

	"github.com/famomatic/ytmeta/internal/types"
	"github.com/famomatic/ytmeta/internal/validate"
)

// StaticFormat is the fixed description of a legacy itag.
type StaticFormat struct {
	MimeType     string
	QualityLabel mo.Option[string]
	Bitrate      mo.Option[int] // video, bits/s
	AudioBitrate mo.Option[int] // kbit/s
}

// Entry pairs an itag with its description.
type Entry struct {
	Itag   int
	Format StaticFormat
}

// Codecs returns the codec tokens listed in the mime type, as written.
func (f StaticFormat) Codecs() []string {
	return mimeCodecs(f.MimeType)
}

// Container returns the mime subtype, e.g. "mp4" or "webm".
func (f StaticFormat) Container() string {
	return MimeContainer(f.MimeType)
}

func (f StaticFormat) HasVideo() bool {
	return ClassifyMime(f.MimeType).HasVideo()
}

func (f StaticFormat) HasAudio() bool {
	return ClassifyMime(f.MimeType).HasAudio()
}

// Height returns the vertical resolution named by the quality label.
func (f StaticFormat) Height() (int, bool) {
	label, ok := f.QualityLabel.Get()
	if !ok {
		return 0, false
	}
	return heightFromLabel(label)
}

func heightFromLabel(label string) (int, bool) {
	n, err := validate.ParseLeadingInt(label)
	if err != nil {
		return 0, false
	}
	h, ok := n.Get()
	if !ok || h <= 0 || h > math.MaxInt32 {
		return 0, false
	}
	return int(h), true
}

func (f StaticFormat) check() error {
	if f.MimeType == "" {
		return fmt.Errorf("%w: empty mime type", types.ErrIncompleteFormat)
	}
	if f.QualityLabel.IsAbsent() && f.Bitrate.IsAbsent() && f.AudioBitrate.IsAbsent() {
		return fmt.Errorf("%w: %s has no quality, bitrate or audio bitrate", types.ErrIncompleteFormat, f.MimeType)
	}
	return nil
}

// Registry is an immutable itag lookup table. It is safe for concurrent use.
type Registry struct {
	formats map[int]StaticFormat
	itags   []int
}

// NewRegistry builds a registry from entries. Duplicate itags and incomplete
// descriptions are rejected rather than resolved by position.
func NewRegistry(entries []Entry) (*Registry, error) {
	itags := lo.Map(entries, func(e Entry, _ int) int { return e.Itag })
	if dups := lo.FindDuplicates(itags); len(dups) > 0 {
		return nil, fmt.Errorf("%w: %v", types.ErrDuplicateItag, dups)
	}

	formats := make(map[int]StaticFormat, len(entries))
	for _, e := range entries {
		if err := e.Format.check(); err != nil {
			return nil, fmt.Errorf("itag %d: %w", e.Itag, err)
		}
		formats[e.Itag] = e.Format
	}
	slices.Sort(itags)

	return &Registry{formats: formats, itags: itags}, nil
}

var defaultRegistry = sync.OnceValues(func() (*Registry, error) {
	return NewRegistry(legacyFormats)
})

// DefaultRegistry returns the process-wide legacy itag table. It is built on
// first call; a defective table panics there instead of serving lookups.
func DefaultRegistry() *Registry {
	r, err := defaultRegistry()
	if err != nil {
		panic(fmt.Sprintf("formats: legacy itag table: %v", err))
	}
	return r
}

// Lookup returns the description for itag. A miss is expected for itags the
// table does not cover.
func (r *Registry) Lookup(itag int) (StaticFormat, bool) {
	f, ok := r.formats[itag]
	return f, ok
}

// LookupString resolves a decimal itag token such as "18". Tokens that are
// not decimal numbers, or do not fit in an int, are reported as misses.
func (r *Registry) LookupString(token string) (StaticFormat, bool) {
	n, err := strconv.ParseUint(token, 10, 64)
	if err != nil || n > math.MaxInt {
		return StaticFormat{}, false
	}
	return r.Lookup(int(n))
}

// Itags returns the covered itags in ascending order.
func (r *Registry) Itags() []int {
	return slices.Clone(r.itags)
}

func (r *Registry) Len() int {
	return len(r.itags)
}
