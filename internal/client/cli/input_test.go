package cli

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGetSecret(t *testing.T) {
	orig := readPassword
	t.Cleanup(func() { readPassword = orig })

	readPassword = func(int) ([]byte, error) { return []byte("  tok-1 \n"), nil }
	var out bytes.Buffer
	got, err := GetSecret(&out, "Token: ")
	require.NoError(t, err)
	require.Equal(t, "tok-1", got)
	require.Equal(t, "Token: \n", out.String())

	readPassword = func(int) ([]byte, error) { return nil, errors.New("not a terminal") }
	_, err = GetSecret(&out, "Token: ")
	require.Error(t, err)
}
