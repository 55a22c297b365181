package internal

import (
	"fmt"
	"strings"
	"time"

	"github.com/samber/lo"
)

type Config struct {
	LogLevel string `env:"LOG_LEVEL,default=INFO"`
	Host     string `env:"HOST,default=0.0.0.0"`
	Port     int    `env:"PORT,default=8080"`

	BadgerFilepath string `env:"BADGER_FILEPATH,default=./data/freshconnect"`
	BadgerInMemory bool   `env:"BADGER_IN_MEMORY,default=false"`
	StoreCodec     string `env:"STORE_CODEC,default=json"`

	GroupCapacity    int `env:"GROUP_CAPACITY,default=5"`
	MaxContentLength int `env:"MAX_CONTENT_LENGTH,default=500"`

	ModerationWords string `env:"MODERATION_WORDS"`
	CharReplacement string `env:"MODERATION_CHARACTER_REPLACEMENT,default=*"`

	GeminiAPIKey    string        `env:"GEMINI_API_KEY"`
	GeminiModel     string        `env:"GEMINI_MODEL"`
	ListingTimeout  time.Duration `env:"LISTING_TIMEOUT,default=20s"`
	ListingCacheTTL time.Duration `env:"LISTING_CACHE_TTL,default=1h"`

	AllowedOrigins  string        `env:"ALLOWED_ORIGINS,default=*"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT,default=10s"`
}

func (c Config) Address() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// BannedWords splits the comma separated MODERATION_WORDS list.
func (c Config) BannedWords() []string {
	return splitList(c.ModerationWords)
}

func (c Config) Origins() []string {
	return splitList(c.AllowedOrigins)
}

func (c Config) Validate() error {
	if c.GroupCapacity < 1 {
		return fmt.Errorf("GROUP_CAPACITY must be positive, got %d", c.GroupCapacity)
	}
	if c.MaxContentLength < 1 {
		return fmt.Errorf("MAX_CONTENT_LENGTH must be positive, got %d", c.MaxContentLength)
	}
	if !c.BadgerInMemory && c.BadgerFilepath == "" {
		return fmt.Errorf("BADGER_FILEPATH is required unless BADGER_IN_MEMORY is set")
	}
	return nil
}

func splitList(raw string) []string {
	return lo.FilterMap(strings.Split(raw, ","), func(item string, _ int) (string, bool) {
		item = strings.TrimSpace(item)
		return item, item != ""
	})
}

func CharacterRune(str string) (rune, error) {
	r := []rune(str)
	if len(r) != 1 {
		return 0, fmt.Errorf(
			"MODERATION_CHARACTER_REPLACEMENT must be a single character, got %q",
			str,
		)
	}
	return r[0], nil
}
