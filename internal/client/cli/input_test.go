package cli

import (
	"bufio"
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGetSimpleText(t *testing.T) {
	var out bytes.Buffer
	reader := bufio.NewReader(strings.NewReader("  /docs/report.pdf  \n"))

	got, err := GetSimpleText(reader, "File path:", &out)
	require.NoError(t, err)
	require.Equal(t, "/docs/report.pdf", got)
	require.Contains(t, out.String(), "File path:")
}

func TestGetSimpleText_PartialLineAtEOF(t *testing.T) {
	var out bytes.Buffer
	reader := bufio.NewReader(strings.NewReader("notes.txt"))

	got, err := GetSimpleText(reader, "File path:", &out)
	require.NoError(t, err)
	require.Equal(t, "notes.txt", got)
}

func TestGetSimpleText_EmptyInput(t *testing.T) {
	var out bytes.Buffer
	reader := bufio.NewReader(strings.NewReader(""))

	_, err := GetSimpleText(reader, "File path:", &out)
	require.ErrorIs(t, err, io.EOF)
}

func TestGetPassword_NonTerminalFallback(t *testing.T) {
	orig := isTerminal
	isTerminal = func(fd int) bool { return false }
	t.Cleanup(func() { isTerminal = orig })

	var out bytes.Buffer
	reader := bufio.NewReader(strings.NewReader("s3cret\n"))

	got, err := GetPassword(reader, &out)
	require.NoError(t, err)
	require.Equal(t, "s3cret", got)
	require.Contains(t, out.String(), "Password: ")
	// the password itself never hits the writer
	require.NotContains(t, out.String(), "s3cret")
}

func TestGetPassword_Terminal(t *testing.T) {
	origTerm, origRead := isTerminal, readPassword
	isTerminal = func(fd int) bool { return true }
	readPassword = func(fd int) ([]byte, error) { return []byte("s3cret"), nil }
	t.Cleanup(func() {
		isTerminal = origTerm
		readPassword = origRead
	})

	var out bytes.Buffer
	reader := bufio.NewReader(strings.NewReader(""))

	got, err := GetPassword(reader, &out)
	require.NoError(t, err)
	require.Equal(t, "s3cret", got)
}
