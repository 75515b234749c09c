// Package validate holds the syntactic checks applied to user-supplied URLs,
// proxy settings and config values before they reach network code.
package validate

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/samber/lo"
	"github.com/samber/mo"
)

// ErrIntegerOverflow indicates a leading integer does not fit in int64.
var ErrIntegerOverflow = errors.New("integer overflow")

var (
	leadingIntPattern = regexp.MustCompile(`^\s*([-+]?[0-9]+)`)

	// Lowercase hextets only; the address is not normalized before matching.
	ipv6CIDRPattern = regexp.MustCompile(`^(` +
		`([0-9a-f]{1,4}:)(:[0-9a-f]{1,4}){1,6}|` +
		`([0-9a-f]{1,4}:){1,2}(:[0-9a-f]{1,4}){1,5}|` +
		`([0-9a-f]{1,4}:){1,3}(:[0-9a-f]{1,4}){1,4}|` +
		`([0-9a-f]{1,4}:){1,4}(:[0-9a-f]{1,4}){1,3}|` +
		`([0-9a-f]{1,4}:){1,5}(:[0-9a-f]{1,4}){1,2}|` +
		`([0-9a-f]{1,4}:){1,6}(:[0-9a-f]{1,4})|` +
		`([0-9a-f]{1,4}:){1,7}(([0-9a-f]{1,4})|:)` +
		`)/(1[0-1]\d|12[0-8]|\d{1,2})$`)
)

// supportedHosts are the hosts whose watch URLs carry a v= query parameter.
var supportedHosts = []string{
	"youtube.com",
	"www.youtube.com",
	"m.youtube.com",
	"music.youtube.com",
	"gaming.youtube.com",
}

var ageRestrictionURLs = []string{
	"support.google.com/youtube/?p=age_restrictions",
	"youtube.com/t/community_guidelines",
}

// ParseLeadingInt extracts the signed decimal integer at the start of input,
// after optional whitespace (newlines included). Anything after the digits is
// ignored. It returns None when input does not start that way, and
// ErrIntegerOverflow when the digits do not fit in an int64.
func ParseLeadingInt(input string) (mo.Option[int64], error) {
	m := leadingIntPattern.FindStringSubmatch(input)
	if len(m) != 2 {
		return mo.None[int64](), nil
	}
	n, err := strconv.ParseInt(m[1], 10, 64)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return mo.None[int64](), fmt.Errorf("%w: %s", ErrIntegerOverflow, m[1])
		}
		return mo.None[int64](), err
	}
	return mo.Some(n), nil
}

// IsIPv6CIDR reports whether input is exactly <ipv6-address>/<prefix> with a
// prefix length in [0, 128].
func IsIPv6CIDR(input string) bool {
	return ipv6CIDRPattern.MatchString(input)
}

// IsSupportedHost reports whether host is one of the known platform hosts.
// Matching is exact and case-sensitive.
func IsSupportedHost(host string) bool {
	return lo.Contains(supportedHosts, host)
}

// SupportedHosts returns a copy of the accepted host list.
func SupportedHosts() []string {
	return append([]string(nil), supportedHosts...)
}

// IsAgeRestricted reports whether page (a watch page body or a URL) links to
// one of the platform's age-restriction notices.
func IsAgeRestricted(page string) bool {
	return lo.SomeBy(ageRestrictionURLs, func(notice string) bool {
		return strings.Contains(page, notice)
	})
}
