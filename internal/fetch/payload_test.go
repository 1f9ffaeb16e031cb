package fetch

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPayloadsRawJSONBody(t *testing.T) {
	got := Payloads([]byte(`{"jobs":[{"title":"Engineer","id":"1"}]}`))
	require.Len(t, got, 1)

	obj, ok := got[0].(map[string]any)
	require.True(t, ok)
	require.Contains(t, obj, "jobs")
}

func TestPayloadsAppDataScript(t *testing.T) {
	page := `<html><head>
	<script>window.__appData = {"jobBoard":{"jobPostings":[{"title":"SRE","id":"x1"}]}};</script>
	</head><body>hi</body></html>`

	got := Payloads([]byte(page))
	require.Len(t, got, 1)
}

func TestPayloadsJSONScriptTag(t *testing.T) {
	page := `<html><body>
	<script id="__NEXT_DATA__" type="application/json">{"props":{"pageProps":{"jobs":[{"title":"Engineer","id":"9"}]}}}</script>
	</body></html>`

	got := Payloads([]byte(page))
	require.Len(t, got, 1)
}

func TestPayloadsBracesInsideStrings(t *testing.T) {
	page := `<script>window.__appData = {"note":"has } and { inside","jobs":[{"title":"A \"quoted\" role","id":"1"}]};</script>`

	got := Payloads([]byte(page))
	require.Len(t, got, 1)

	obj := got[0].(map[string]any)
	require.Equal(t, "has } and { inside", obj["note"])
}

func TestPayloadsNothingRecognized(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"plain html", `<html><body><p>careers page</p></body></html>`},
		{"marker without assignment", `<script>var x = "window.__appData";</script>`},
		{"truncated blob", `<script>window.__appData = {"jobs":[{"title":"A"</script>`},
		{"empty", ``},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Payloads([]byte(tt.body)); len(got) != 0 {
				t.Errorf("expected no payloads, got %d", len(got))
			}
		})
	}
}

func TestPayloadsMultipleScriptsDocumentOrder(t *testing.T) {
	page := `<html>
	<script type="application/json">{"first":true}</script>
	<script>window.__INITIAL_STATE__ = {"second":true};</script>
	</html>`

	got := Payloads([]byte(page))
	require.Len(t, got, 2)
	require.Contains(t, got[0].(map[string]any), "first")
	require.Contains(t, got[1].(map[string]any), "second")
}
