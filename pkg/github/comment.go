package github

import (
	"bytes"
	"fmt"
	"os"
	"os/exec"

	"github.com/cockroachdb/errors"
	"github.com/spf13/viper"

	errUtils "github.com/pagebotio/pagebot/errors"
	"github.com/pagebotio/pagebot/pkg/config"
	log "github.com/pagebotio/pagebot/pkg/logger"
)

// execCommand is a variable so tests can substitute the gh invocation.
var execCommand = exec.Command

// PostIssueComment posts the contents of bodyFile as a comment on the
// given issue using the gh CLI. Passing the body as a file sidesteps
// shell-escaping issues with arbitrary AI-generated content.
//
// Preconditions (checked before any subprocess is started): the body
// file must exist and GH_TOKEN must be set in the environment.
func PostIssueComment(bodyFile, issueNumber string) error {
	if _, err := os.Stat(bodyFile); err != nil {
		return errors.Wrapf(errUtils.ErrCommentBodyFileNotFound, "%s", bodyFile)
	}

	_ = viper.BindEnv(config.EnvGitHubToken, config.EnvGitHubToken)
	if viper.GetString(config.EnvGitHubToken) == "" {
		return errUtils.ErrMissingGitHubToken
	}

	log.Info("Posting comment", "issue", issueNumber, "bodyFile", bodyFile)

	cmd := execCommand("gh", "issue", "comment", issueNumber, "--body-file", bodyFile)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("%w: %s: %w", errUtils.ErrCommentFailed, stderr.String(), err)
	}

	log.Info("Comment posted successfully", "issue", issueNumber)
	return nil
}
