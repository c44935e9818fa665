package internal

import (
	"fmt"
)

type Config struct {
	LogLevel         string   `env:"LOG_LEVEL,default=INFO"`
	GroupCount       int      `env:"GROUP_COUNT,default=2"`
	GroupSize        int      `env:"GROUP_SIZE,default=5"`
	MaxAttempts      int      `env:"MAX_ATTEMPTS,default=100"`
	BalanceTolerance int      `env:"BALANCE_TOLERANCE,default=2"`
	MinScore         int      `env:"MIN_SCORE,default=1"`
	MaxScore         int      `env:"MAX_SCORE,default=10"`
	HistoryLimit     int      `env:"HISTORY_LIMIT,default=10"`
	CensoredWords    []string `env:"CENSORED_WORDS"`
	CharReplacement  string   `env:"CHARACTER_REPLACEMENT,default=*"`
	Colours          bool     `env:"COLOURS,default=true"`
	ShareSubject     string   `env:"SHARE_SUBJECT,default=Drawn groups"`
}

func (c Config) Validate() error {
	if c.MinScore > c.MaxScore {
		return fmt.Errorf("MIN_SCORE (%d) must not exceed MAX_SCORE (%d)", c.MinScore, c.MaxScore)
	}
	if c.MaxAttempts < 0 {
		return fmt.Errorf("MAX_ATTEMPTS must not be negative, got %d", c.MaxAttempts)
	}
	return nil
}

func CharacterRune(str string) (rune, error) {
	r := []rune(str)
	if len(r) != 1 {
		return 0, fmt.Errorf(
			"CHARACTER_REPLACEMENT must be a single character, got %q",
			str,
		)
	}
	return r[0], nil
}
