package moderation

import (
	"log/slog"
	"testing"

	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
)

const replacementChar = '*'

// The dictionary avoids words hidden inside common ones (e.g. "he" inside "The").
func TestModerator_Censor(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	dictionary := []string{"idiot", "loser", "scam"}
	mod, err := NewModerator(dictionary, replacementChar, log)
	req.NoError(err)
	req.True(mod.Enabled())

	tests := []struct {
		name     string
		input    string
		expected string
		words    []string
	}{
		{
			name:     "Simple word and space preservation",
			input:    "Do not be an idiot today",
			expected: "Do not be an ***** today",
			words:    []string{"idiot"},
		},
		{
			name:     "Multiple occurrences",
			input:    "loser loser",
			expected: "***** *****",
			words:    []string{"loser", "loser"},
		},
		{
			name:     "Leet speak and internal punctuation",
			input:    "That hostel is a 5.c.@.m ok",
			expected: "That hostel is a ******* ok",
			words:    []string{"scam"},
		},
		{
			name:     "Uppercase and noise",
			input:    "L-O-S-E-R",
			expected: "*********",
			words:    []string{"loser"},
		},
		{
			name:     "Word adjacent to trailing punctuation",
			input:    "what a scam.",
			expected: "what a ****.",
			words:    []string{"scam"},
		},
		{
			name:     "Nothing to censor",
			input:    "Welcome to the peer circle",
			expected: "Welcome to the peer circle",
			words:    nil,
		},
		{
			name:     "Empty string",
			input:    "",
			expected: "",
			words:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			content, words := mod.Censor(tt.input)
			require.Equal(t, tt.expected, content)
			require.Equal(t, tt.words, words)
		})
	}
}

func TestModerator_Noise_Only_Words_Are_Ignored(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)

	mod, err := NewModerator([]string{"...", ",,,", "", "scam", "SCAM"}, replacementChar, log)
	req.NoError(err)

	content, words := mod.Censor("Hello ... scam")
	req.Equal("Hello ... ****", content)
	req.Equal([]string{"scam"}, words)
}

func TestModerator_Empty_Dictionary_Is_Disabled(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)

	mod, err := NewModerator(nil, replacementChar, log)
	req.NoError(err)
	req.False(mod.Enabled())

	content, words := mod.Censor("anything goes")
	req.Equal("anything goes", content)
	req.Nil(words)
}
