package main

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.abhg.dev/attview/internal/grammar"
	"go.abhg.dev/attview/internal/preview"
)

func TestHelp_Write(t *testing.T) {
	t.Parallel()

	tests := []struct {
		give    Help
		wantErr string
	}{
		{give: "usage"},
		{give: "default"},
		{give: "formats"},
		{give: "charsets"},
		{give: "languages"},
		{give: "config"},
		{
			give:    "not-a-topic",
			wantErr: `unknown help topic "not-a-topic": valid values`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.give.String(), func(t *testing.T) {
			t.Parallel()

			err := tt.give.Write(io.Discard)
			if len(tt.wantErr) > 0 {
				assert.ErrorContains(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestHelp_noHelp(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, NoHelp.Write(&buf))
	assert.Empty(t, buf.String())
	assert.False(t, NoHelp.Known())
}

func TestHelp_Set(t *testing.T) {
	t.Parallel()

	tests := []struct {
		give string
		want Help
	}{
		{"true", DefaultHelp},
		{"false", NoHelp},
		{" Formats ", "formats"},
	}

	for _, tt := range tests {
		var h Help
		require.NoError(t, h.Set(tt.give))
		assert.Equal(t, tt.want, h, "Set(%q)", tt.give)
		assert.Equal(t, tt.want, h.Get())
	}
}

func TestUsageHelp(t *testing.T) {
	t.Parallel()

	assert.True(t, strings.HasPrefix(_usageHelp, "usage: attview"))
	assert.True(t, strings.HasSuffix(_usageHelp, "\n"))
	assert.Equal(t, 1, strings.Count(_usageHelp, "\n"))
}

// The help text lists the builtin languages and charsets.
// Keep it in sync.
func TestHelp_topicsUpToDate(t *testing.T) {
	t.Parallel()

	for _, name := range grammar.Builtin().Names() {
		assert.Contains(t, _languagesHelp, name)
	}
	for _, name := range preview.Charsets() {
		assert.Contains(t, _charsetsHelp, name)
	}
}
