package extract

import (
	"sort"
	"strings"
)

// knownPostingPaths are structural shortcuts tried before the full tree
// walk. Order matters: the first path holding a plausible posting list wins
// outright, which keeps the common board shapes cheap and deterministic.
var knownPostingPaths = []string{
	"jobs",
	"jobBoard.jobPostings",
	"jobPostings",
	"postings",
	"positions",
	"openings",
	"vacancies",
	"data.jobs",
	"data.postings",
	"results.jobs",
	"props.pageProps.jobs",
}

// Key name sets for the "looks like a job record" predicate. Checked
// case-insensitively against each object's keys.
var (
	titleLikeKeys = keySet("title", "jobtitle", "job_title", "name", "position", "text")
	idLikeKeys    = keySet("id", "jobid", "job_id", "jobrequisitionid", "requisitionid", "reqid", "shortcode", "uuid")
	urlLikeKeys   = keySet("joburl", "job_url", "url", "hostedurl", "absolute_url", "applyurl", "apply_url", "externalpath", "link", "href")
)

func keySet(keys ...string) map[string]bool {
	m := make(map[string]bool, len(keys))
	for _, k := range keys {
		m[k] = true
	}
	return m
}

// Locate finds the list inside doc most likely to hold job postings. It
// never fails: an unrecognized document yields an empty result, which the
// caller treats the same as a board with no openings.
func Locate(doc any) []map[string]any {
	for _, path := range knownPostingPaths {
		list, ok := objectListAt(doc, path)
		if !ok {
			continue
		}
		// at least half the elements must look like job records
		if scoreList(list)*2 >= len(list) {
			return list
		}
	}

	var best []map[string]any
	bestScore := 0
	walk(doc, func(list []map[string]any) {
		// strictly-greater keeps the first find on ties
		if score := scoreList(list); score > bestScore {
			best, bestScore = list, score
		}
	})
	return best
}

// objectListAt follows a dot-separated path of object keys and reports the
// value there if it is a non-empty list of objects.
func objectListAt(doc any, path string) ([]map[string]any, bool) {
	cur := doc
	for _, key := range strings.Split(path, ".") {
		obj, ok := cur.(map[string]any)
		if !ok {
			return nil, false
		}
		cur, ok = obj[key]
		if !ok {
			return nil, false
		}
	}
	list, ok := cur.([]any)
	if !ok {
		return nil, false
	}
	return asObjectList(list)
}

// walk visits doc pre-order, calling visit for every list whose elements
// are all objects. Object keys are visited in sorted order so the
// tie-break in Locate is stable across runs.
func walk(v any, visit func([]map[string]any)) {
	switch t := v.(type) {
	case map[string]any:
		keys := make([]string, 0, len(t))
		for k := range t {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			walk(t[k], visit)
		}
	case []any:
		if list, ok := asObjectList(t); ok {
			visit(list)
		}
		for _, item := range t {
			walk(item, visit)
		}
	}
}

func asObjectList(list []any) ([]map[string]any, bool) {
	if len(list) == 0 {
		return nil, false
	}
	out := make([]map[string]any, 0, len(list))
	for _, item := range list {
		obj, ok := item.(map[string]any)
		if !ok {
			return nil, false
		}
		out = append(out, obj)
	}
	return out, true
}

func scoreList(list []map[string]any) int {
	n := 0
	for _, obj := range list {
		if looksLikeJob(obj) {
			n++
		}
	}
	return n
}

// looksLikeJob requires a title-shaped key plus either an id-shaped key or
// a job-looking URL value. Title alone is not enough: benefits and office
// lists carry "title" keys too.
func looksLikeJob(obj map[string]any) bool {
	var hasTitle, hasID, hasJobURL bool
	for k, v := range obj {
		lk := strings.ToLower(k)
		switch {
		case titleLikeKeys[lk]:
			if s, ok := v.(string); ok && CleanText(s) != "" {
				hasTitle = true
			}
		case idLikeKeys[lk]:
			if coerceText(v) != "" {
				hasID = true
			}
		case urlLikeKeys[lk]:
			if s, ok := v.(string); ok && jobURLish(s) {
				hasJobURL = true
			}
		}
	}
	return hasTitle && (hasID || hasJobURL)
}
