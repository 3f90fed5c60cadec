// Package crawler handles the crawler service's responses: extracting
// page content from crawl results and polling tasks to completion.
package crawler

import (
	"fmt"
	"os"
	"strings"

	jsoniter "github.com/json-iterator/go"

	log "github.com/pagebotio/pagebot/pkg/logger"
	"github.com/pagebotio/pagebot/pkg/schema"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// contentFields are the candidate content fields of a crawl result,
// in priority order. Pre-filtered markdown beats markdown beats the
// progressively rawer HTML forms.
var contentFields = []string{
	"fit_markdown",
	"markdown",
	"cleaned_html",
	"raw_html",
	"html",
}

// TruncationMarker is appended whenever content is cut to the length budget.
const TruncationMarker = "... [Content truncated to fit token limit]"

// previewLen bounds how much of an unparsable payload is logged.
const previewLen = 200

// ExtractContent produces the best-available text from a crawl result.
// It never returns an empty string: when the crawl failed, the payload
// is missing, or no candidate field matches, it substitutes the fixed
// fallback text built from the configured URL and title.
func ExtractContent(config *schema.ContentConfig) string {
	content := ""

	raw := config.RawResponse
	if raw == "" && config.ResultFile != "" {
		if data, err := os.ReadFile(config.ResultFile); err == nil {
			raw = strings.TrimSpace(string(data))
		}
	}

	if config.Outcome == "success" && raw != "" {
		var payload map[string]any
		if err := json.Unmarshal([]byte(raw), &payload); err != nil {
			log.Warn("Failed to parse crawl response", "error", err, "preview", preview(raw))
		} else {
			content = extractFromPayload(payload)
			if content == "" {
				log.Warn("No content found in crawl response")
			}
		}
	} else {
		log.Warn("Crawl step was not successful or response is empty", "outcome", config.Outcome)
	}

	if content == "" {
		log.Warn("Using fallback content due to extraction failure")
		content = FallbackContent(config.FallbackURL, config.FallbackTitle)
	}

	return content
}

// extractFromPayload searches the candidate fields across the payload
// shapes the crawler is known to produce: a `results` value (object or
// first element of a non-empty array), a `result` object, and as a
// last resort the payload itself.
func extractFromPayload(payload map[string]any) string {
	if content := firstCandidate(resultRecord(payload["results"])); content != "" {
		return content
	}

	if result, ok := payload["result"].(map[string]any); ok {
		if content := firstCandidate(result); content != "" {
			return content
		}
	}

	return firstCandidate(payload)
}

// resultRecord normalizes a `results` value to a single record.
// An empty array is treated as absent.
func resultRecord(results any) map[string]any {
	switch v := results.(type) {
	case map[string]any:
		return v
	case []any:
		if len(v) > 0 {
			if record, ok := v[0].(map[string]any); ok {
				return record
			}
		}
	}
	return nil
}

// firstCandidate returns the first non-empty candidate field of the
// record, stringifying non-string values as a last resort.
func firstCandidate(record map[string]any) string {
	for _, field := range contentFields {
		value, ok := record[field]
		if !ok || value == nil {
			continue
		}
		if text, ok := value.(string); ok {
			if text != "" {
				return text
			}
			continue
		}
		if data, err := json.Marshal(value); err == nil {
			return string(data)
		}
	}
	return ""
}

// FallbackContent is the fixed placeholder substituted when no real
// content could be obtained.
func FallbackContent(url, title string) string {
	return fmt.Sprintf("URL: %s\nTitle: %s\nDescription: Content could not be retrieved from the URL. Please check if the URL is accessible and try again.", url, title)
}

// ErrorFallbackContent is the placeholder used when the extraction
// pipeline itself fails unexpectedly.
func ErrorFallbackContent(url, title string) string {
	return fmt.Sprintf("URL: %s\nTitle: %s\nDescription: Error processing content.", url, title)
}

// Truncate cuts content to at most maxLength characters, appending the
// truncation marker when anything was cut. Lengths are measured in
// characters, not bytes, so multi-byte content is never split.
func Truncate(content string, maxLength int) string {
	runes := []rune(content)
	if len(runes) <= maxLength {
		log.Debug("Content within limit, no truncation needed", "length", len(runes))
		return content
	}

	log.Info("Content truncated", "from", len(runes), "to", maxLength)
	return string(runes[:maxLength]) + TruncationMarker
}

func preview(raw string) string {
	if len(raw) <= previewLen {
		return raw
	}
	return raw[:previewLen] + "..."
}
