package utils

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/gosimple/slug"
)

// NewToken returns the short disambiguator appended to every post slug.
// It is the first segment of a v4 UUID (8 hex chars) and is assigned once
// per post, never regenerated.
func NewToken() string {
	return strings.SplitN(uuid.NewString(), "-", 2)[0]
}

// MakeSlug normalizes raw into a URL-safe slug and appends the token.
// Text that normalizes to nothing yields just the token; an empty token
// yields just the normalized text.
func MakeSlug(raw, token string) string {
	base := slug.Make(raw)
	switch {
	case base == "":
		return token
	case token == "":
		return base
	}
	return base + "-" + token
}

// WithTimestamp is the last-resort disambiguator used when the generated
// slug already exists on another post.
func WithTimestamp(s string, now time.Time) string {
	return fmt.Sprintf("%s-%d", s, now.UnixMilli())
}

// StripToken drops the trailing token segment from a slug that already
// carries one, so the base can be re-slugged on update. A slug without a
// hyphen is returned unchanged. Slugs built through WithTimestamp carry
// two derived segments (token plus timestamp), so after the last segment
// goes, a segment that still looks like a token is dropped as well.
func StripToken(s string) string {
	i := strings.LastIndex(s, "-")
	if i <= 0 {
		return s
	}
	s = s[:i]
	if j := strings.LastIndex(s, "-"); j > 0 && isToken(s[j+1:]) {
		return s[:j]
	}
	return s
}

// isToken reports whether seg has the shape NewToken produces: exactly
// eight lowercase hex characters.
func isToken(seg string) bool {
	if len(seg) != 8 {
		return false
	}
	for _, r := range seg {
		if (r < '0' || r > '9') && (r < 'a' || r > 'f') {
			return false
		}
	}
	return true
}
