package fetch

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Board pages embed their data as a client-side state blob under one of a
// handful of well-known globals. The markers are tried per script in
// order; anything found is decoded and handed to the locator, which does
// the actual judging.
var stateMarkers = []string{
	"window.__appData",
	"window.__APP_DATA__",
	"window.__INITIAL_STATE__",
	"window.__remixContext",
	"self.__next_f",
	"__NEXT_DATA__",
}

// Payloads extracts every JSON document it can find in a board page, in
// document order. The whole body being JSON (an API-style board) counts as
// a single payload. An empty result is normal for pages we don't
// understand.
func Payloads(body []byte) []any {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) > 0 && (trimmed[0] == '{' || trimmed[0] == '[') {
		var doc any
		if err := json.Unmarshal(trimmed, &doc); err == nil {
			return []any{doc}
		}
	}

	var out []any
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return scriptPayloads(string(body))
	}

	doc.Find("script").Each(func(_ int, s *goquery.Selection) {
		text := s.Text()
		if strings.TrimSpace(text) == "" {
			return
		}

		typ, _ := s.Attr("type")
		switch strings.ToLower(strings.TrimSpace(typ)) {
		case "application/json", "application/ld+json":
			var v any
			if err := json.Unmarshal([]byte(text), &v); err == nil {
				out = append(out, v)
				return
			}
		}

		out = append(out, scriptPayloads(text)...)
	})
	return out
}

// scriptPayloads pulls marker-assigned JSON objects out of raw script
// text.
func scriptPayloads(text string) []any {
	var out []any
	for _, marker := range stateMarkers {
		idx := strings.Index(text, marker)
		if idx == -1 {
			continue
		}
		raw, err := extractJSONValue(text, idx+len(marker))
		if err != nil {
			continue
		}
		var v any
		if err := json.Unmarshal(raw, &v); err == nil {
			out = append(out, v)
		}
	}
	return out
}

// extractJSONValue finds the first '{' or '[' at or after start and
// returns the brace-balanced value, honoring string literals and escapes.
func extractJSONValue(text string, start int) ([]byte, error) {
	body := []byte(text)

	open := -1
	for i := start; i < len(body); i++ {
		if body[i] == '{' || body[i] == '[' {
			open = i
			break
		}
		// stop at statement end: the marker wasn't an assignment
		if body[i] == ';' || body[i] == '\n' {
			return nil, errors.New("no json value after marker")
		}
	}
	if open == -1 {
		return nil, errors.New("no json value after marker")
	}

	depth := 0
	inString := false
	escape := false

	for i := open; i < len(body); i++ {
		c := body[i]
		if inString {
			if escape {
				escape = false
				continue
			}
			if c == '\\' {
				escape = true
				continue
			}
			if c == '"' {
				inString = false
			}
			continue
		}

		switch c {
		case '"':
			inString = true
		case '{', '[':
			depth++
		case '}', ']':
			depth--
			if depth == 0 {
				return body[open : i+1], nil
			}
		}
	}

	return nil, errors.New("unterminated json value")
}
