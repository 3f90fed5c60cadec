package github

import (
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errUtils "github.com/pagebotio/pagebot/errors"
)

func writeBodyFile(t *testing.T) string {
	t.Helper()
	bodyFile := filepath.Join(t.TempDir(), "comment.md")
	require.NoError(t, os.WriteFile(bodyFile, []byte("AI summary"), 0o644))
	return bodyFile
}

func TestPostIssueCommentMissingFile(t *testing.T) {
	t.Setenv("GH_TOKEN", "ghp_test")

	err := PostIssueComment(filepath.Join(t.TempDir(), "missing.md"), "42")
	assert.ErrorIs(t, err, errUtils.ErrCommentBodyFileNotFound)
}

func TestPostIssueCommentMissingToken(t *testing.T) {
	t.Setenv("GH_TOKEN", "")

	err := PostIssueComment(writeBodyFile(t), "42")
	assert.ErrorIs(t, err, errUtils.ErrMissingGitHubToken)
}

func TestPostIssueCommentSuccess(t *testing.T) {
	t.Setenv("GH_TOKEN", "ghp_test")

	var gotName string
	var gotArgs []string
	execCommand = func(name string, args ...string) *exec.Cmd {
		gotName = name
		gotArgs = args
		return exec.Command("true")
	}
	defer func() { execCommand = exec.Command }()

	bodyFile := writeBodyFile(t)
	require.NoError(t, PostIssueComment(bodyFile, "42"))

	assert.Equal(t, "gh", gotName)
	assert.Equal(t, []string{"issue", "comment", "42", "--body-file", bodyFile}, gotArgs)
}

func TestPostIssueCommentSubprocessFailure(t *testing.T) {
	t.Setenv("GH_TOKEN", "ghp_test")

	execCommand = func(name string, args ...string) *exec.Cmd {
		return exec.Command("sh", "-c", "echo 'gh: not authorized' >&2; exit 1")
	}
	defer func() { execCommand = exec.Command }()

	err := PostIssueComment(writeBodyFile(t), "42")
	require.Error(t, err)
	assert.ErrorIs(t, err, errUtils.ErrCommentFailed)
	assert.Contains(t, err.Error(), "gh: not authorized", "stderr is surfaced in the error")
}
