package session

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"caesar/internal/banner"
	"caesar/internal/ctxlog"
	"caesar/internal/prompt"
)

func run(t *testing.T, input string, config Config) (string, error) {
	t.Helper()
	out := &bytes.Buffer{}
	err := Run(context.Background(), prompt.New(strings.NewReader(input), out), banner.New(out), config)
	return out.String(), err
}

func TestRun(t *testing.T) {
	out, err := run(t, "Hello, World!\n3\n", DefaultConfig())
	require.NoError(t, err)

	assert.Contains(t, out, "Code your phrases using the caesar cipher method!")
	assert.Contains(t, out, "Write your super secret phrase:")
	assert.Contains(t, out, "Write whichever integer increment you want:")
	assert.Contains(t, out, "The input phrase is:\n\tHello, World!\n")
	assert.Contains(t, out, "The caesar cipher with 3 of shift is:\n\tKhoor, Zruog!\n")
	assert.Contains(t, out, "Ana Atala")

	assert.Less(t, strings.Index(out, "Write your super secret phrase:"), strings.Index(out, "Write whichever integer"))
	assert.Less(t, strings.Index(out, "Khoor, Zruog!"), strings.Index(out, "End credits"))
}

func TestRunHugeShift(t *testing.T) {
	out, err := run(t, "abc\n-100000000000000000000001\n", Config{})
	require.NoError(t, err)

	assert.Contains(t, out, "The caesar cipher with -100000000000000000000001 of shift is:\n\tvwx\n")
}

func TestRunNoCredits(t *testing.T) {
	out, err := run(t, "abc\n1\n", Config{})
	require.NoError(t, err)

	assert.Contains(t, out, "\tbcd\n")
	assert.NotContains(t, out, "End credits")
}

func TestRunInvalidShift(t *testing.T) {
	out, err := run(t, "abc\nthree\n", DefaultConfig())

	require.ErrorIs(t, err, prompt.ErrInvalidInput)
	assert.Contains(t, err.Error(), `"three"`)
	assert.NotContains(t, out, "The input phrase is:")
	assert.NotContains(t, out, "End credits")
}

func TestRunNoInput(t *testing.T) {
	_, err := run(t, "", DefaultConfig())
	assert.ErrorIs(t, err, prompt.ErrNoInput)

	_, err = run(t, "abc\n", DefaultConfig())
	assert.ErrorIs(t, err, prompt.ErrNoInput)
}

func TestRunLogs(t *testing.T) {
	logs := &bytes.Buffer{}
	ctx := ctxlog.Store(context.Background(), ctxlog.New(logs, slog.LevelDebug))

	const phrase = "Attack at dawn"
	out := &bytes.Buffer{}
	err := Run(ctx, prompt.New(strings.NewReader(phrase+"\n-30\n"), out), banner.New(out), DefaultConfig())
	require.NoError(t, err)
	require.Contains(t, out.String(), "\tWppwyg wp zwsj\n")

	assert.NotContains(t, logs.String(), phrase)
	assert.NotContains(t, logs.String(), "Wppwyg wp zwsj")

	lines := strings.Split(strings.TrimSpace(logs.String()), "\n")
	require.Len(t, lines, 2)
	for _, line := range lines {
		var rec map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &rec))
		assert.Equal(t, "-30", rec["shift"], "log line %s", line)
		assert.EqualValues(t, len(phrase), rec["length"], "log line %s", line)
	}
}
