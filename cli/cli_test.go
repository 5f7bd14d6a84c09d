package cli

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDefaults(t *testing.T) {
	var out bytes.Buffer
	opts, exit, err := Parse(nil, &out)
	require.NoError(t, err)
	require.False(t, exit)

	assert.Equal(t, -1, opts.WeeksBefore)
	assert.Equal(t, -1, opts.WeeksAfter)
	assert.True(t, opts.Date.IsZero())
	assert.Equal(t, "-", opts.Out)
	assert.Equal(t, "html", opts.Format)
	assert.Equal(t, "info", opts.LogLevel)
	assert.Equal(t, "text", opts.LogFormat)
	assert.False(t, opts.Preview)
}

func TestParseFlags(t *testing.T) {
	var out bytes.Buffer
	opts, exit, err := Parse([]string{
		"-weeks-before", "0",
		"-weeks-after", "10",
		"-date", "2024-03-01",
		"-format", "TEXT",
		"-out", "cal.txt",
		"-log-level", "debug",
	}, &out)
	require.NoError(t, err)
	require.False(t, exit)

	assert.Equal(t, 0, opts.WeeksBefore)
	assert.Equal(t, 10, opts.WeeksAfter)
	assert.Equal(t, time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC), opts.Date)
	assert.Equal(t, "text", opts.Format)
	assert.Equal(t, "cal.txt", opts.Out)
	assert.Equal(t, "debug", opts.LogLevel)
}

func TestParseHelp(t *testing.T) {
	var out bytes.Buffer
	opts, exit, err := Parse([]string{"-h"}, &out)
	require.NoError(t, err)
	assert.True(t, exit)
	assert.Nil(t, opts)
	assert.Contains(t, out.String(), "notecal - a printable multi-week calendar.")
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		args []string
		msg  string
	}{
		{[]string{"-weeks-before", "-1"}, "weeks-before"},
		{[]string{"-weeks-after", "-3"}, "weeks-after"},
		{[]string{"-weeks-after", "1.5"}, "weeks-after"},
		{[]string{"-date", "01/03/2024"}, "invalid date"},
		{[]string{"-format", "pdf"}, "invalid format"},
		{[]string{"-log-format", "xml"}, "invalid log-format"},
		{[]string{"-log-level", "trace"}, "invalid log-level"},
		{[]string{"-preview", "-serve", ":8080"}, "cannot be combined"},
		{[]string{"extra"}, "unexpected argument"},
	}

	for _, tt := range tests {
		var out bytes.Buffer
		_, _, err := Parse(tt.args, &out)
		require.Error(t, err, "args=%v", tt.args)

		exitErr, ok := err.(*ExitError)
		require.True(t, ok, "args=%v err=%T", tt.args, err)
		assert.Equal(t, 2, exitErr.Code)
		assert.Contains(t, exitErr.Message, tt.msg, "args=%v", tt.args)
	}
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger("warn", "json", &buf)

	logger.Info("hidden")
	logger.Warn("shown", "weeks", 48)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1)

	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	assert.Equal(t, "shown", entry["msg"])
	assert.Equal(t, float64(48), entry["weeks"])
}
