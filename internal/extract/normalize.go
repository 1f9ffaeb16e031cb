package extract

import (
	"strings"

	"boardscout/internal/domain"
)

// Field resolution is data-driven: one ordered key list per canonical
// field, first non-empty coerced value wins. Keeping these as literals
// makes the priority order a single inspectable artifact.
var (
	titleFieldKeys = []string{"title", "jobTitle", "job_title", "name", "position", "text"}

	teamFieldKeys = []string{"team", "teamName", "department", "departmentName", "category", "categories", "group"}

	locationFieldKeys     = []string{"location", "locationName", "jobLocation", "city", "office"}
	locationListFieldKeys = []string{"locations", "locationNames", "offices", "secondaryLocations"}

	urlFieldKeys = []string{"jobUrl", "job_url", "hostedUrl", "absolute_url", "url", "applyUrl", "apply_url", "externalPath", "link", "href"}

	idFieldKeys = []string{"id", "jobId", "job_id", "jobRequisitionId", "requisitionId", "reqId", "shortcode", "uuid"}
)

// Titles longer than this are invariably description text picked up by a
// mis-located list, not real titles.
const maxTitleBytes = 200

// Normalize converts one raw posting into a canonical Job. ok is false for
// postings that fail validation; the caller drops those and keeps going.
// Pure function: no I/O, inputs are never mutated.
func Normalize(company, boardURL string, posting map[string]any) (domain.Job, bool) {
	title := firstField(posting, titleFieldKeys)
	if title == "" || len(title) > maxTitleBytes {
		return domain.Job{}, false
	}

	jobURL := ResolveURL(boardURL, firstField(posting, urlFieldKeys))
	if !isAbsoluteHTTP(jobURL) {
		return domain.Job{}, false
	}

	id := firstField(posting, idFieldKeys)
	if id == "" {
		// No explicit id: the URL is the identity, so it has to actually
		// look like a posting page and not the bare board.
		if !LooksLikeJobURL(jobURL) {
			return domain.Job{}, false
		}
		id = jobURL
	}

	loc := firstField(posting, locationFieldKeys)
	if loc == "" {
		loc = firstField(posting, locationListFieldKeys)
	}

	return domain.Job{
		Company:  strings.TrimSpace(company),
		JobID:    id,
		Title:    title,
		Team:     firstField(posting, teamFieldKeys),
		Location: loc,
		URL:      jobURL,
	}, true
}

// firstField tries keys in order, exact match first, then a
// case-insensitive scan, and returns the first non-empty coerced value.
func firstField(posting map[string]any, keys []string) string {
	for _, key := range keys {
		if v, ok := posting[key]; ok {
			if s := coerceText(v); s != "" {
				return s
			}
		}
	}
	for _, key := range keys {
		for k, v := range posting {
			if strings.EqualFold(k, key) {
				if s := coerceText(v); s != "" {
					return s
				}
			}
		}
	}
	return ""
}
