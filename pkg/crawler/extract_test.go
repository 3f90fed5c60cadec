package crawler

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pagebotio/pagebot/pkg/schema"
)

func successConfig(raw string) *schema.ContentConfig {
	return &schema.ContentConfig{
		Outcome:       "success",
		RawResponse:   raw,
		FallbackURL:   "https://example.com/article",
		FallbackTitle: "Example Article",
		MaxLength:     6000,
	}
}

func TestExtractContent(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		expected string
	}{
		{
			name:     "results array first element",
			raw:      `{"results": [{"markdown": "A"}]}`,
			expected: "A",
		},
		{
			name:     "results array later elements ignored",
			raw:      `{"results": [{"markdown": "first"}, {"markdown": "second"}]}`,
			expected: "first",
		},
		{
			name:     "results object",
			raw:      `{"results": {"cleaned_html": "<p>clean</p>"}}`,
			expected: "<p>clean</p>",
		},
		{
			name:     "fit_markdown wins over markdown",
			raw:      `{"results": [{"markdown": "full", "fit_markdown": "fit"}]}`,
			expected: "fit",
		},
		{
			name:     "html is the last candidate",
			raw:      `{"results": [{"html": "<html>raw</html>"}]}`,
			expected: "<html>raw</html>",
		},
		{
			name:     "result object fallback",
			raw:      `{"result": {"markdown": "from result"}}`,
			expected: "from result",
		},
		{
			name:     "empty results array falls through to result",
			raw:      `{"results": [], "result": {"markdown": "B"}}`,
			expected: "B",
		},
		{
			name:     "top-level fields as last resort",
			raw:      `{"markdown": "top-level"}`,
			expected: "top-level",
		},
		{
			name:     "empty string candidate is skipped",
			raw:      `{"results": [{"fit_markdown": "", "markdown": "kept"}]}`,
			expected: "kept",
		},
		{
			name:     "non-string candidate is stringified",
			raw:      `{"results": [{"markdown": {"nested": true}}]}`,
			expected: `{"nested":true}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ExtractContent(successConfig(tt.raw)))
		})
	}
}

func TestExtractContentFallback(t *testing.T) {
	tests := []struct {
		name   string
		config *schema.ContentConfig
	}{
		{name: "empty results array and nothing else", config: successConfig(`{"results": []}`)},
		{name: "unparsable payload", config: successConfig(`not json {`)},
		{name: "no candidate fields", config: successConfig(`{"results": [{"title": "only a title"}]}`)},
		{name: "crawl failed", config: &schema.ContentConfig{
			Outcome:       "failure",
			RawResponse:   `{"results": [{"markdown": "ignored"}]}`,
			FallbackURL:   "https://example.com/article",
			FallbackTitle: "Example Article",
		}},
		{name: "missing payload", config: &schema.ContentConfig{
			Outcome:       "success",
			FallbackURL:   "https://example.com/article",
			FallbackTitle: "Example Article",
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			content := ExtractContent(tt.config)
			assert.Contains(t, content, "URL: https://example.com/article")
			assert.Contains(t, content, "Title: Example Article")
			assert.Contains(t, content, "Content could not be retrieved")
		})
	}
}

func TestExtractContentReadsResultFile(t *testing.T) {
	resultFile := filepath.Join(t.TempDir(), "crawl_result_response.json")
	require.NoError(t, os.WriteFile(resultFile, []byte(`{"results": [{"markdown": "from file"}]}`+"\n"), 0o644))

	config := successConfig("")
	config.ResultFile = resultFile

	assert.Equal(t, "from file", ExtractContent(config))
}

func TestExtractContentEnvPayloadWinsOverFile(t *testing.T) {
	resultFile := filepath.Join(t.TempDir(), "crawl_result_response.json")
	require.NoError(t, os.WriteFile(resultFile, []byte(`{"results": [{"markdown": "from file"}]}`), 0o644))

	config := successConfig(`{"results": [{"markdown": "from env"}]}`)
	config.ResultFile = resultFile

	assert.Equal(t, "from env", ExtractContent(config))
}

func TestTruncate(t *testing.T) {
	t.Run("over budget", func(t *testing.T) {
		content := strings.Repeat("x", 7000)
		truncated := Truncate(content, 6000)
		assert.Equal(t, strings.Repeat("x", 6000)+TruncationMarker, truncated)
	})

	t.Run("within budget", func(t *testing.T) {
		content := strings.Repeat("x", 3000)
		assert.Equal(t, content, Truncate(content, 6000))
	})

	t.Run("exactly at budget", func(t *testing.T) {
		content := strings.Repeat("x", 6000)
		assert.Equal(t, content, Truncate(content, 6000))
	})

	t.Run("counts characters not bytes", func(t *testing.T) {
		content := strings.Repeat("ü", 10)
		assert.Equal(t, content, Truncate(content, 10))
		assert.Equal(t, strings.Repeat("ü", 5)+TruncationMarker, Truncate(content, 5))
	})
}

func TestFallbackContent(t *testing.T) {
	content := FallbackContent("https://example.com", "Example")
	assert.Equal(t, "URL: https://example.com\nTitle: Example\nDescription: Content could not be retrieved from the URL. Please check if the URL is accessible and try again.", content)

	errContent := ErrorFallbackContent("https://example.com", "Example")
	assert.Equal(t, "URL: https://example.com\nTitle: Example\nDescription: Error processing content.", errContent)
}
