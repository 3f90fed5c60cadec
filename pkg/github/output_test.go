package github

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDelimiterFor(t *testing.T) {
	assert.Equal(t, "RESPONSE_EOF_DELIMITER", DelimiterFor("response"))
	assert.Equal(t, "CONTENT_EOF_DELIMITER", DelimiterFor("content"))
}

func TestSetOutput(t *testing.T) {
	outputFile := filepath.Join(t.TempDir(), "output")
	t.Setenv("GITHUB_OUTPUT", outputFile)

	require.NoError(t, SetOutput("response", "hello\nworld"))

	data, err := os.ReadFile(outputFile)
	require.NoError(t, err)
	assert.Equal(t, "response<<RESPONSE_EOF_DELIMITER\nhello\nworld\nRESPONSE_EOF_DELIMITER\n", string(data))
}

func TestSetOutputAppends(t *testing.T) {
	outputFile := filepath.Join(t.TempDir(), "output")
	t.Setenv("GITHUB_OUTPUT", outputFile)

	require.NoError(t, SetOutput("response", "first"))
	require.NoError(t, SetOutputWithDelimiter("response", "RESPONSE_EOF", "{}"))

	data, err := os.ReadFile(outputFile)
	require.NoError(t, err)
	assert.Equal(t,
		"response<<RESPONSE_EOF_DELIMITER\nfirst\nRESPONSE_EOF_DELIMITER\n"+
			"response<<RESPONSE_EOF\n{}\nRESPONSE_EOF\n",
		string(data))
}

func TestSetOutputUnsetIsNotAnError(t *testing.T) {
	t.Setenv("GITHUB_OUTPUT", "")

	assert.NoError(t, SetOutput("content", "ignored"))
}

func TestSetOutputUnwritableFile(t *testing.T) {
	t.Setenv("GITHUB_OUTPUT", filepath.Join(t.TempDir(), "missing", "output"))

	assert.Error(t, SetOutput("content", "value"))
}
