package policy

import "github.com/samber/lo"

// Unranked is returned by Rank for tokens a table does not list. It sorts
// below every listed token.
const Unranked = -1

// Table is an ordered list of codec tokens, least preferred first.
type Table struct {
	name   string
	tokens []string
}

func newTable(name string, tokens ...string) *Table {
	return &Table{name: name, tokens: tokens}
}

var (
	// AudioEncodings ranks audio codec tokens.
	AudioEncodings = newTable("audio", "mp4a", "mp3", "vorbis", "aac", "opus", "flac")

	// VideoEncodings ranks video codec tokens. The order is kept as the platform
	// historically used it and is not chronological; stream selection depends
	// on these exact positions.
	VideoEncodings = newTable("video", "mp4v", "avc1", "Sorenson H.283", "MPEG-4 Visual", "VP8", "VP9", "H.264")
)

// Name returns "audio" or "video".
func (t *Table) Name() string {
	return t.name
}

// Len returns the number of ranked tokens.
func (t *Table) Len() int {
	return len(t.tokens)
}

// Tokens returns a copy of the table, least preferred first.
func (t *Table) Tokens() []string {
	return append([]string(nil), t.tokens...)
}

// Contains reports whether token is listed. Matching is exact and case-sensitive.
func (t *Table) Contains(token string) bool {
	return t.Rank(token) != Unranked
}

// Rank returns the zero-based position of token, or Unranked.
func (t *Table) Rank(token string) int {
	// lo.IndexOf reports -1 for a miss, which is Unranked.
	return lo.IndexOf(t.tokens, token)
}

// Rank returns the position of token in table, or Unranked.
func Rank(table *Table, token string) int {
	if table == nil {
		return Unranked
	}
	return table.Rank(token)
}

// Compare orders two codec tokens by preference: it returns a positive number
// when a is preferred over b, negative when b is preferred, and zero on a tie.
// Ties (including two unranked tokens) must be broken by the caller.
func Compare(table *Table, a, b string) int {
	return Rank(table, a) - Rank(table, b)
}
