package logger

import (
	"io"
	"os"

	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Init routes the global logger to stderr, leaving stdout to the table.
// Without debug only warnings and errors are written.
func Init(debug bool, pretty bool, additionalWriters ...io.Writer) {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix

	zerolog.SetGlobalLevel(zerolog.WarnLevel)
	if debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	if pretty {
		additionalWriters = append(additionalWriters, zerolog.ConsoleWriter{Out: os.Stderr})
	} else {
		additionalWriters = append(additionalWriters, os.Stderr)
	}

	log.Logger = zerolog.New(zerolog.MultiLevelWriter(additionalWriters...)).
		With().Timestamp().Caller().Logger()
}

func InitWithConfig(cfg Config) {
	Init(cfg.Debug, cfg.Pretty)
}

// InitFromEnv reads LOG_DEBUG and LOG_PRETTY.
func InitFromEnv() {
	var cfg Config
	envconfig.MustProcess("LOG", &cfg)
	InitWithConfig(cfg)
}
