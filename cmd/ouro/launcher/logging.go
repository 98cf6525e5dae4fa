package launcher

import (
	"fmt"

	"github.com/evalphobia/logrus_sentry"
	"github.com/sirupsen/logrus"
)

// SetupLogging configures the process-wide logrus logger from the config:
// level, formatter and, when a DSN is given, a Sentry hook reporting
// error-and-above entries.
func SetupLogging(cfg LoggingConfig) error {
	if cfg.Verbosity < 0 || cfg.Verbosity > int(logrus.TraceLevel) {
		return fmt.Errorf("invalid log verbosity %d", cfg.Verbosity)
	}
	logrus.SetLevel(logrus.Level(cfg.Verbosity))

	switch cfg.Format {
	case "json":
		logrus.SetFormatter(&logrus.JSONFormatter{})
	case "text", "":
		logrus.SetFormatter(&logrus.TextFormatter{
			ForceColors:   cfg.Color,
			FullTimestamp: true,
		})
	default:
		return fmt.Errorf("unknown log format %q", cfg.Format)
	}

	if cfg.SentryDSN != "" {
		hook, err := logrus_sentry.NewSentryHook(cfg.SentryDSN, []logrus.Level{
			logrus.PanicLevel,
			logrus.FatalLevel,
			logrus.ErrorLevel,
		})
		if err != nil {
			return fmt.Errorf("failed to set up Sentry hook: %w", err)
		}
		logrus.AddHook(hook)
	}

	return nil
}
