package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	errUtils "github.com/pagebotio/pagebot/errors"
	"github.com/pagebotio/pagebot/pkg/ai"
	"github.com/pagebotio/pagebot/pkg/config"
	"github.com/pagebotio/pagebot/pkg/github"
	log "github.com/pagebotio/pagebot/pkg/logger"
)

// FallbackResponse is published when inference fails, so the
// downstream comment still carries something readable.
const FallbackResponse = "AI inference failed. Please check your API configuration."

var inferCmd = &cobra.Command{
	Use:   "infer",
	Short: "Call the configured AI provider and publish the response",
	Long: `Builds a chat request from the system-prompt file and the user prompt
(USER_PROMPT or stdin), dispatches it to the provider selected by AI_PROVIDER
and publishes the response text as the 'response' step output. On failure a
fixed fallback message is published instead and the command exits non-zero.`,
	Example: "USER_PROMPT='Summarize this' pagebot infer",
	RunE: func(cmd *cobra.Command, args []string) error {
		return executeInfer(cmd.Context(), cmd.InOrStdin())
	},
}

func executeInfer(ctx context.Context, stdin io.Reader) error {
	cfg := config.LoadAIConfig()

	log.Info("AI inference",
		"provider", cfg.Provider,
		"model", cfg.Model,
		"maxTokens", cfg.MaxTokens,
		"baseURL", cfg.BaseURL)

	// Configuration errors are fatal before any network activity.
	if cfg.Provider == "" {
		return errUtils.ErrMissingProvider
	}
	if cfg.APIKey == "" {
		return errUtils.ErrMissingAPIKey
	}
	if cfg.SystemPromptFile == "" {
		return errUtils.ErrMissingSystemPromptFile
	}

	systemPrompt, err := loadSystemPrompt(cfg.SystemPromptFile)
	if err != nil {
		return err
	}

	userPrompt, err := loadUserPrompt(cfg.UserPrompt, stdin)
	if err != nil {
		return err
	}

	log.Debug("Prompts loaded",
		"systemPromptLength", len(systemPrompt),
		"userPromptLength", len(userPrompt))

	client, err := ai.ForProvider(cfg)
	if err != nil {
		return err
	}

	response, err := client.SendMessage(ctx, systemPrompt, userPrompt)
	if err != nil {
		// Runtime API failures degrade to the fallback text, but the
		// command still signals failure via its exit code.
		log.Error("AI inference failed", "error", err)
		if outErr := github.SetOutput("response", FallbackResponse); outErr != nil {
			log.Error("Failed to publish fallback response", "error", outErr)
		}
		return errUtils.ErrInferenceFailed
	}

	log.Info("AI inference completed successfully", "responseLength", len(response))
	return github.SetOutput("response", response)
}

// loadSystemPrompt reads and trims the system prompt file.
func loadSystemPrompt(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("error loading system prompt: %w", err)
	}

	prompt := strings.TrimSpace(string(data))
	if prompt == "" {
		return "", errUtils.ErrEmptySystemPrompt
	}
	return prompt, nil
}

// loadUserPrompt prefers the environment value and falls back to stdin
// for interactive usage.
func loadUserPrompt(fromEnv string, stdin io.Reader) (string, error) {
	if fromEnv != "" {
		return fromEnv, nil
	}

	data, err := io.ReadAll(stdin)
	if err != nil {
		return "", fmt.Errorf("error reading prompt: %w", err)
	}

	prompt := strings.TrimSpace(string(data))
	if prompt == "" {
		return "", errUtils.ErrEmptyUserPrompt
	}
	return prompt, nil
}

func init() {
	RootCmd.AddCommand(inferCmd)
}
