package match

import (
	"strings"

	"boardscout/internal/domain"
)

// Filters holds lowered keyword lists. Empty lists mean "no constraint".
type Filters struct {
	Include          []string
	Exclude          []string
	LocationsInclude []string
}

// NewFilters trims, lowercases and de-duplicates each keyword list.
func NewFilters(include, exclude, locationsInclude []string) Filters {
	return Filters{
		Include:          lowered(include),
		Exclude:          lowered(exclude),
		LocationsInclude: lowered(locationsInclude),
	}
}

// searchableSep joins title/team/location into the composite search
// string. Chosen so the separator itself can't collide with a keyword.
const searchableSep = " | "

// Apply returns the jobs passing all three keyword checks, in input order.
func Apply(jobs []domain.Job, f Filters) []domain.Job {
	var matched []domain.Job
	for _, job := range jobs {
		searchable := strings.ToLower(strings.Join([]string{job.Title, job.Team, job.Location}, searchableSep))
		location := strings.ToLower(job.Location)

		if len(f.Include) > 0 && !anySubstring(searchable, f.Include) {
			continue
		}
		if len(f.Exclude) > 0 && anySubstring(searchable, f.Exclude) {
			continue
		}
		if len(f.LocationsInclude) > 0 && !anySubstring(location, f.LocationsInclude) {
			continue
		}
		matched = append(matched, job)
	}
	return matched
}

func anySubstring(haystack string, needles []string) bool {
	for _, n := range needles {
		if strings.Contains(haystack, n) {
			return true
		}
	}
	return false
}

func lowered(values []string) []string {
	seen := map[string]bool{}
	var out []string
	for _, v := range values {
		v = strings.ToLower(strings.TrimSpace(v))
		if v == "" || seen[v] {
			continue
		}
		seen[v] = true
		out = append(out, v)
	}
	return out
}
