package commands

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestForgetKeys(t *testing.T) {
	keys, err := forgetKeys([]string{"event", "18247", "17963"})
	require.NoError(t, err)
	require.Equal(t, []string{"event_18247", "event_17963"}, keys)
}

func TestForgetKeysRejectsUnknownType(t *testing.T) {
	_, err := forgetKeys([]string{"widget", "5"})
	require.EqualError(t, err, `unknown object type "widget"`)
}

func TestForgetKeysRejectsBadID(t *testing.T) {
	_, err := forgetKeys([]string{"fighter", "x-461"})
	require.EqualError(t, err, `invalid id "x-461"`)
}
