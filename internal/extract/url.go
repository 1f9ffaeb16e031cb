package extract

import (
	"net/url"
	"strings"
)

// jobPathSegments mark a URL path as pointing at an actual posting rather
// than some other page the payload happened to reference.
var jobPathSegments = map[string]bool{
	"job": true, "jobs": true,
	"career": true, "careers": true,
	"position": true, "positions": true,
	"opening": true, "openings": true,
	"posting": true, "postings": true,
	"vacancy": true, "vacancies": true,
	"role": true, "roles": true,
	"apply": true,
}

// LooksLikeJobURL reports whether raw is an absolute http(s) URL that
// plausibly points at a job page. Used both to validate normalized jobs and
// to keep the locator off lists of unrelated links.
func LooksLikeJobURL(raw string) bool {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return false
	}
	if pathHasJobSegment(u.Path) {
		return true
	}
	// Ashby-style boards link postings as /<slug>/<uuid> with no "jobs"
	// segment anywhere; a long id-like tail still counts.
	segs := splitPath(u.Path)
	return len(segs) >= 2 && looksLikeIDSegment(segs[len(segs)-1])
}

// jobURLish is the looser form the locator predicate uses: payloads often
// carry site-relative paths that only become absolute after resolution.
func jobURLish(raw string) bool {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return false
	}
	if strings.HasPrefix(raw, "/") {
		return pathHasJobSegment(raw)
	}
	return LooksLikeJobURL(raw)
}

// ResolveURL makes raw absolute against the board page URL. Empty input
// resolves to the board URL itself.
func ResolveURL(boardURL, raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return strings.TrimSpace(boardURL)
	}
	base, err := url.Parse(strings.TrimSpace(boardURL))
	if err != nil {
		return raw
	}
	ref, err := url.Parse(raw)
	if err != nil {
		return ""
	}
	if ref.IsAbs() {
		return ref.String()
	}
	return base.ResolveReference(ref).String()
}

func isAbsoluteHTTP(raw string) bool {
	u, err := url.Parse(strings.TrimSpace(raw))
	return err == nil && (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

func pathHasJobSegment(path string) bool {
	for _, s := range splitPath(path) {
		if jobPathSegments[strings.ToLower(s)] {
			return true
		}
	}
	return false
}

func splitPath(path string) []string {
	var out []string
	for _, s := range strings.Split(path, "/") {
		if s != "" {
			out = append(out, s)
		}
	}
	return out
}

// looksLikeIDSegment accepts uuid-ish and long numeric tails.
func looksLikeIDSegment(s string) bool {
	if len(s) < 8 {
		return false
	}
	digits := 0
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9':
			digits++
		case (r >= 'a' && r <= 'f') || (r >= 'A' && r <= 'F') || r == '-':
		default:
			return false
		}
	}
	return digits > 0
}
