package logging

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTextLogger_WritesLevelsAndAttrs(t *testing.T) {
	var buf bytes.Buffer
	l := NewTextLogger(&buf)

	ctx := context.Background()
	l.Info(ctx, "hello", "k", "v")
	l.Warn(ctx, "careful")
	l.Error(ctx, "boom", "code", 500)

	out := buf.String()
	require.Contains(t, out, "level=INFO")
	require.Contains(t, out, "k=v")
	require.Contains(t, out, "level=WARN")
	require.Contains(t, out, "level=ERROR")
	require.Contains(t, out, "code=500")
}

func TestTextLogger_WithAddsPermanentAttrs(t *testing.T) {
	var buf bytes.Buffer
	l := NewTextLogger(&buf).With("component", "store")

	l.Info(context.Background(), "first")
	l.Info(context.Background(), "second")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	for _, line := range lines {
		require.Contains(t, line, "component=store")
	}
}
