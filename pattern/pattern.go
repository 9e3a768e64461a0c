package pattern

import "strings"

// Wildcard constants and separators for path patterns.
const (
	// Wildcard matches exactly one path segment.
	Wildcard = "*"

	// Separator is the character used to separate path segments.
	Separator = "."

	// KindSeparator separates a pattern from its change-kind suffix.
	KindSeparator = ":"
)

// Segments splits a dotted path into its segments.
// The empty path denotes the root and yields nil.
func Segments(path string) []string {
	if path == "" {
		return nil
	}
	return strings.Split(path, Separator)
}

// Join joins segments into a dotted path.
// A nil or empty slice yields the empty (root) path.
func Join(segments []string) string {
	return strings.Join(segments, Separator)
}

// SplitKind separates a subscription name into its path pattern and
// change-kind suffix. The suffix is everything after the last colon;
// a name without a colon has an empty kind.
//
//	SplitKind("users.*.name:set") -> ("users.*.name", "set")
//	SplitKind(":unset")           -> ("", "unset")
//	SplitKind("users.*.name")     -> ("users.*.name", "")
func SplitKind(name string) (path, kind string) {
	idx := strings.LastIndex(name, KindSeparator)
	if idx < 0 {
		return name, ""
	}
	return name[:idx], name[idx+1:]
}

// Qualified builds the event name for a pattern and a change kind.
func Qualified(path, kind string) string {
	return path + KindSeparator + kind
}

// IsWildcard reports whether any segment of the pattern is the wildcard.
func IsWildcard(path string) bool {
	for _, seg := range Segments(path) {
		if seg == Wildcard {
			return true
		}
	}
	return false
}

// Matches reports whether the concrete path matches the pattern.
// Both must have the same number of segments; a wildcard segment in the
// pattern matches any single segment of the path.
func Matches(path, pat string) bool {
	ps := Segments(path)
	qs := Segments(pat)
	if len(ps) != len(qs) {
		return false
	}
	for i, q := range qs {
		if q != Wildcard && q != ps[i] {
			return false
		}
	}
	return true
}
