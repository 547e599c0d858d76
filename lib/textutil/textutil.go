package textutil

import (
	"regexp"
	"strings"
)

var (
	digitsRegex     = regexp.MustCompile(`\d+`)
	whitespaceRegex = regexp.MustCompile(`\s+`)
	profileIdRegex  = regexp.MustCompile(`/user/profil/(\w+)/.*\.html`)
)

// FirstInt returns the first run of digits inside a free-text label,
// e.g. "Freunde (23)" -> "23". The site renders every count as text, so
// the digits are kept as a string and passed through to storage verbatim.
// Returns "" when the label contains no digits.
func FirstInt(s string) string {
	return digitsRegex.FindString(s)
}

// ProfileId pulls the user id out of a profile link such as
// "/user/profil/123456/bob.html". Returns "" when the link does not
// follow that path pattern.
func ProfileId(link string) string {
	groups := profileIdRegex.FindStringSubmatch(link)
	if len(groups) < 2 {
		return ""
	}
	return groups[1]
}

// PathSegment returns the nth slash-separated segment of a link, where a
// leading slash produces an empty segment 0. Rating rows link to
// "/user/profil/<id>/..." so the voter id sits at segment 3.
func PathSegment(link string, n int) string {
	segments := strings.Split(link, "/")
	if n < 0 || n >= len(segments) {
		return ""
	}
	return segments[n]
}

func NormalizeSpace(s string) string {
	s = strings.Trim(s, " \n\t")
	return whitespaceRegex.ReplaceAllString(s, " ")
}
