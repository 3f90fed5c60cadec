package errors

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
)

func TestWithExitCode(t *testing.T) {
	assert.Nil(t, WithExitCode(nil, 3))

	err := WithExitCode(ErrInferenceFailed, 2)
	assert.Equal(t, ErrInferenceFailed.Error(), err.Error())
	assert.True(t, errors.Is(err, ErrInferenceFailed))
}

func TestGetExitCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{
			name:     "nil error",
			err:      nil,
			expected: 0,
		},
		{
			name:     "plain error defaults to 1",
			err:      errors.New("boom"),
			expected: 1,
		},
		{
			name:     "attached exit code",
			err:      WithExitCode(errors.New("boom"), 7),
			expected: 7,
		},
		{
			name:     "attached exit code through wrapping",
			err:      errors.Wrap(WithExitCode(ErrCommentFailed, 4), "posting"),
			expected: 4,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, GetExitCode(tt.err))
		})
	}
}
