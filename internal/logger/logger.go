package logger

import (
	"os"
	"time"

	"github.com/rs/zerolog"
)

// New はアプリ共通のzerologロガーを作る。
// devでは人間が読めるコンソール形式、それ以外はJSON。
func New(env string) zerolog.Logger {
	zerolog.TimeFieldFormat = time.RFC3339

	if env == "dev" {
		out := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}
		return zerolog.New(out).With().Timestamp().Logger()
	}

	return zerolog.New(os.Stdout).With().Timestamp().Logger()
}
