package cli

import (
	"bufio"
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetSimpleText_ReadsAndTrims(t *testing.T) {
	var out bytes.Buffer
	r := bufio.NewReader(strings.NewReader("  user@test.com  \n"))

	got, err := GetSimpleText(r, "Enter email", &out)
	require.NoError(t, err)
	assert.Equal(t, "user@test.com", got)
	assert.Contains(t, out.String(), "Enter email")
}

func TestGetSimpleText_PartialLineAtEOF(t *testing.T) {
	var out bytes.Buffer
	r := bufio.NewReader(strings.NewReader("user@test.com"))

	got, err := GetSimpleText(r, "Enter email", &out)
	require.NoError(t, err)
	assert.Equal(t, "user@test.com", got)
}

func TestGetSimpleText_EmptyInputIsError(t *testing.T) {
	var out bytes.Buffer
	r := bufio.NewReader(strings.NewReader(""))

	_, err := GetSimpleText(r, "Enter email", &out)
	require.Error(t, err)
}

func TestGetPassword_UsesReadPasswordSeam(t *testing.T) {
	saved := readPassword
	readPassword = func(fd int) ([]byte, error) {
		return []byte("hunter2"), nil
	}
	t.Cleanup(func() { readPassword = saved })

	var out bytes.Buffer
	pw, err := GetPassword(&out)
	require.NoError(t, err)
	assert.Equal(t, []byte("hunter2"), pw)
	assert.Contains(t, out.String(), "Enter password")
}
