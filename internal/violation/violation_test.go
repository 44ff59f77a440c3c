package violation

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

var errGone = errors.New("storage already released")

func TestError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *Error
		expected string
	}{
		{
			name:     "holder",
			err:      New(Holder, "begin scope", errors.New("holder is checked out")),
			expected: "holder begin scope: holder is checked out",
		},
		{
			name:     "bound",
			err:      New(Bound, "push", errGone),
			expected: "bound push: storage already released",
		},
		{
			name:     "stale guard",
			err:      StaleGuard("release", errGone, 3, 4),
			expected: "guard release: storage already released (guard epoch 3, holder epoch 4)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.expected, tt.err.Error())
		})
	}
}

func TestError_MatchesCause(t *testing.T) {
	var err error = StaleGuard("get", errGone, 0, 1)
	require.ErrorIs(t, err, errGone)

	var verr *Error
	require.True(t, errors.As(err, &verr))
	require.Equal(t, Guard, verr.Subject)
	require.True(t, verr.Stale)
	require.Equal(t, uint64(0), verr.GuardEpoch)
	require.Equal(t, uint64(1), verr.HolderEpoch)
}
