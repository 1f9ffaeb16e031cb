package extract

import (
	"fmt"
	"strings"
)

// labelKeys are probed, in order, when a field value turns out to be an
// object instead of a plain string ({"name":"Remote"}, {"label":"Platform"}
// and similar wrappers).
var labelKeys = []string{"location", "name", "label", "value", "text", "title"}

func CleanText(s string) string {
	s = strings.ReplaceAll(s, "\u00a0", " ")
	s = strings.Join(strings.Fields(s), " ")
	return strings.TrimSpace(s)
}

// coerceText renders an arbitrary decoded JSON value as a display string.
// Best effort: shapes it doesn't recognize come back empty rather than as
// Go syntax.
func coerceText(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return CleanText(t)
	case bool:
		return fmt.Sprintf("%t", t)
	case float64:
		// encoding/json decodes every number as float64; keep integral
		// values free of a trailing ".0" so ids stay comparable.
		if t == float64(int64(t)) {
			return fmt.Sprintf("%d", int64(t))
		}
		return fmt.Sprintf("%g", t)
	case map[string]any:
		for _, k := range labelKeys {
			if s := coerceText(t[k]); s != "" {
				return s
			}
		}
		return ""
	case []any:
		parts := make([]string, 0, len(t))
		for _, item := range t {
			if s := coerceText(item); s != "" {
				parts = append(parts, s)
			}
		}
		return strings.Join(parts, ", ")
	default:
		return ""
	}
}
