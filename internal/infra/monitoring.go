package infra

import (
	"time"

	"github.com/getsentry/sentry-go"

	"github.com/pedrodiniz00/sistema-obras/internal/config"
)

// SetupSentry initialises the Sentry client when SENTRY_DSN is set. The
// returned flush func is always safe to call.
func SetupSentry(cfg *config.Config) (func(), error) {
	if cfg.SentryDSN == "" {
		return func() {}, nil
	}
	err := sentry.Init(sentry.ClientOptions{
		Dsn:         cfg.SentryDSN,
		Environment: cfg.Env,
	})
	if err != nil {
		return func() {}, err
	}
	return func() { sentry.Flush(2 * time.Second) }, nil
}
