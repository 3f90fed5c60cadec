package crawler

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/cockroachdb/errors"

	errUtils "github.com/pagebotio/pagebot/errors"
	httpClient "github.com/pagebotio/pagebot/pkg/http"
	log "github.com/pagebotio/pagebot/pkg/logger"
	"github.com/pagebotio/pagebot/pkg/retry"
	"github.com/pagebotio/pagebot/pkg/schema"
)

// Task status values the crawler reports. Anything else is treated as
// still pending.
const (
	StatusCompleted = "completed"
	StatusFailed    = "failed"
)

// Polling defaults: 12 attempts 5 seconds apart bounds the wait at
// roughly a minute.
const (
	DefaultPollAttempts = 12
	DefaultPollInterval = 5 * time.Second
)

// taskIDFields are the submission response fields that may carry the
// task identifier, in the order they are consulted.
var taskIDFields = []string{"task_id", "id", "job_id"}

// Poller polls the crawler's task-status endpoint until a task reaches
// a terminal state or the attempt budget runs out.
type Poller struct {
	config *schema.CrawlerConfig
	client httpClient.Client
	retry  schema.RetryConfig
}

// PollerOption is a functional option for configuring the Poller.
type PollerOption func(*Poller)

// WithHTTPClient substitutes the HTTP client, for tests.
func WithHTTPClient(client httpClient.Client) PollerOption {
	return func(p *Poller) {
		p.client = client
	}
}

// WithRetryConfig overrides the polling loop configuration.
func WithRetryConfig(config schema.RetryConfig) PollerOption {
	return func(p *Poller) {
		p.retry = config
	}
}

// NewPoller creates a Poller for the configured crawler service.
func NewPoller(config *schema.CrawlerConfig, opts ...PollerOption) *Poller {
	p := &Poller{
		config: config,
		client: httpClient.NewDefaultClient(httpClient.WithTimeout(config.RequestTimeout)),
		retry: schema.RetryConfig{
			MaxAttempts:     DefaultPollAttempts,
			BackoffStrategy: schema.BackoffConstant,
			InitialDelay:    DefaultPollInterval,
		},
	}

	for _, opt := range opts {
		opt(p)
	}

	return p
}

// ReadSubmission reads and parses the crawl submission response file.
func ReadSubmission(path string) (map[string]any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(errUtils.ErrSubmitFileNotFound, "%s", path)
	}

	raw := strings.TrimSpace(string(data))
	log.Debug("Read crawl submit response", "length", len(raw))
	if raw == "" {
		return nil, errUtils.ErrEmptySubmitFile
	}

	var payload map[string]any
	if err := json.Unmarshal([]byte(raw), &payload); err != nil {
		return nil, fmt.Errorf("failed to parse crawl submit response: %w", err)
	}

	if success, ok := payload["success"].(bool); ok && !success {
		return nil, errUtils.ErrCrawlNotSuccessful
	}

	return payload, nil
}

// TaskID extracts the task identifier from a submission payload,
// trying the known top-level fields first and then results.task_id.
func TaskID(payload map[string]any) string {
	for _, field := range taskIDFields {
		if id, ok := payload[field].(string); ok && id != "" {
			return id
		}
	}
	if results, ok := payload["results"].(map[string]any); ok {
		if id, ok := results["task_id"].(string); ok && id != "" {
			return id
		}
	}
	return ""
}

// WaitForCompletion reads the submission file, resolves the task id
// and polls until the task completes. A submission that already
// carries results is returned as is without polling; the crawler
// answers synchronously for cached pages.
func (p *Poller) WaitForCompletion(ctx context.Context) (map[string]any, error) {
	payload, err := ReadSubmission(p.config.SubmitFile)
	if err != nil {
		return nil, err
	}

	taskID := TaskID(payload)
	if taskID == "" {
		if hasResults(payload) {
			log.Info("Received synchronous response with results, no polling needed")
			return payload, nil
		}
		return nil, errors.Wrapf(errUtils.ErrTaskIDNotFound, "keys: %v", payloadKeys(payload))
	}

	log.Info("Extracted task_id from crawl submit response", "taskID", taskID)
	return p.Wait(ctx, taskID)
}

// Wait polls the task-status endpoint for the given task until it
// reaches a terminal state. Transport errors, non-200 statuses and
// malformed bodies count as attempts and are retried; a failed task
// stops the loop immediately.
func (p *Poller) Wait(ctx context.Context, taskID string) (map[string]any, error) {
	url := fmt.Sprintf("%s/task/%s", strings.TrimSuffix(p.config.BaseURL, "/"), taskID)

	var task map[string]any
	attempt := 0

	executor := retry.New(p.retry)
	err := executor.ExecuteWithPredicate(ctx, func() error {
		attempt++

		body, err := httpClient.Get(ctx, url, p.client)
		if err != nil {
			log.Warn("Task status request failed", "attempt", attempt, "error", err)
			return err
		}

		var data map[string]any
		if err := json.Unmarshal(body, &data); err != nil {
			log.Warn("Invalid JSON in task status response", "attempt", attempt, "error", err)
			return err
		}

		status, _ := data["status"].(string)
		if status == "" {
			status = "unknown"
		}
		log.Info("Task status", "attempt", attempt, "status", status)

		switch status {
		case StatusCompleted:
			task = data
			return nil
		case StatusFailed:
			errMsg, _ := data["error"].(string)
			if errMsg == "" {
				errMsg = "No error details"
			}
			return errors.Wrapf(errUtils.ErrTaskFailed, "%s", errMsg)
		default:
			return errUtils.ErrTaskStillPending
		}
	}, func(err error) bool {
		return !errors.Is(err, errUtils.ErrTaskFailed)
	})
	if err != nil {
		if errors.Is(err, errUtils.ErrTaskFailed) {
			log.Error("Task failed", "error", err)
			return nil, err
		}
		var maxAttempts retry.MaxAttemptsError
		if errors.As(err, &maxAttempts) {
			log.Error("Task timeout", "attempts", maxAttempts.MaxAttempts)
			return nil, errors.Wrapf(errUtils.ErrTaskTimeout, "after %d attempts", maxAttempts.MaxAttempts)
		}
		return nil, err
	}

	log.Info("Task completed successfully", "taskID", taskID)
	return task, nil
}

// hasResults reports whether the submission payload already carries a
// non-empty results value.
func hasResults(payload map[string]any) bool {
	switch v := payload["results"].(type) {
	case nil:
		return false
	case []any:
		return len(v) > 0
	case map[string]any:
		return len(v) > 0
	case string:
		return v != ""
	default:
		return true
	}
}

func payloadKeys(payload map[string]any) []string {
	keys := make([]string, 0, len(payload))
	for key := range payload {
		keys = append(keys, key)
	}
	return keys
}
