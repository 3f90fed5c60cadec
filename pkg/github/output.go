// Package github integrates with the GitHub Actions environment: it
// publishes step outputs and posts issue comments through the gh CLI.
package github

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"

	"github.com/pagebotio/pagebot/pkg/config"
	log "github.com/pagebotio/pagebot/pkg/logger"
)

// outputFilePerm is the permission used when the runner's output file
// does not exist yet.
const outputFilePerm = 0o644

// DelimiterFor returns the heredoc delimiter used for a named output.
func DelimiterFor(name string) string {
	return strings.ToUpper(name) + "_EOF_DELIMITER"
}

// SetOutput appends a named value to the GitHub Actions output file
// using the multi-line-safe heredoc format, so values containing
// newlines or special characters survive the trip.
func SetOutput(name, value string) error {
	return SetOutputWithDelimiter(name, DelimiterFor(name), value)
}

// SetOutputWithDelimiter appends a named value using an explicit
// delimiter. The delimiter must not occur inside the value.
//
// The block format is:
//
//	NAME<<DELIMITER
//	value
//	DELIMITER
func SetOutputWithDelimiter(name, delimiter, value string) error {
	_ = viper.BindEnv(config.EnvGitHubOutput, config.EnvGitHubOutput)
	outputFile := viper.GetString(config.EnvGitHubOutput)
	if outputFile == "" {
		log.Warn("GITHUB_OUTPUT not set, skipping output", "name", name)
		return nil
	}

	f, err := os.OpenFile(outputFile, os.O_WRONLY|os.O_APPEND|os.O_CREATE, outputFilePerm)
	if err != nil {
		return fmt.Errorf("failed to open output file: %w", err)
	}
	defer f.Close()

	if _, err := fmt.Fprintf(f, "%s<<%s\n%s\n%s\n", name, delimiter, value, delimiter); err != nil {
		return fmt.Errorf("failed to write output '%s': %w", name, err)
	}

	return nil
}
