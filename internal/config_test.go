package internal

import (
	"testing"

	"github.com/Netflix/go-env"
	"github.com/stretchr/testify/require"
)

func TestCharacterRune(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected rune
		wantErr  bool
	}{
		{"Ascii", "*", '*', false},
		{"Multibyte", "█", '█', false},
		{"Empty", "", 0, true},
		{"Too long", "**", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := require.New(t)
			r, err := CharacterRune(tt.input)
			if tt.wantErr {
				req.Error(err)
				return
			}
			req.NoError(err)
			req.Equal(tt.expected, r)
		})
	}
}

func TestConfig_Defaults(t *testing.T) {
	req := require.New(t)
	var config Config

	err := env.Unmarshal(env.EnvSet{}, &config)

	req.NoError(err)
	req.Equal("INFO", config.LogLevel)
	req.Equal(2, config.GroupCount)
	req.Equal(5, config.GroupSize)
	req.Equal(100, config.MaxAttempts)
	req.Equal(2, config.BalanceTolerance)
	req.Equal(1, config.MinScore)
	req.Equal(10, config.MaxScore)
	req.True(config.Colours)
	req.Empty(config.CensoredWords)
	req.NoError(config.Validate())
}

func TestConfig_FromEnvironment(t *testing.T) {
	req := require.New(t)
	var config Config

	err := env.Unmarshal(env.EnvSet{
		"GROUP_COUNT":    "4",
		"MAX_SCORE":      "5",
		"CENSORED_WORDS": "idiot|loser",
		"COLOURS":        "false",
	}, &config)

	req.NoError(err)
	req.Equal(4, config.GroupCount)
	req.Equal(5, config.MaxScore)
	req.Equal([]string{"idiot", "loser"}, config.CensoredWords)
	req.False(config.Colours)
}

func TestConfig_Validate(t *testing.T) {
	req := require.New(t)

	req.Error(Config{MinScore: 8, MaxScore: 3}.Validate())
	req.Error(Config{MinScore: 1, MaxScore: 10, MaxAttempts: -1}.Validate())
	req.NoError(Config{MinScore: 1, MaxScore: 10}.Validate())
}
