package config

import (
	"context"
	"log/slog"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/m-mizutani/bzsweep/pkg/domain/types"
	"github.com/m-mizutani/bzsweep/pkg/utils/logging"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
)

const sentryFlushTimeout = 2 * time.Second

type Sentry struct {
	dsn         string
	environment string
}

func (x *Sentry) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "sentry-dsn",
			Usage:       "Sentry DSN",
			Category:    "Sentry",
			Destination: &x.dsn,
			Sources:     cli.EnvVars("BZSWEEP_SENTRY_DSN"),
		},
		&cli.StringFlag{
			Name:        "sentry-env",
			Usage:       "Sentry environment",
			Category:    "Sentry",
			Destination: &x.environment,
			Sources:     cli.EnvVars("BZSWEEP_SENTRY_ENV"),
		},
	}
}

func (x *Sentry) Enabled() bool {
	return x.dsn != ""
}

type SentryOption func(*sentry.ClientOptions)

// WithSentryTransport replaces the default asynchronous HTTP transport.
func WithSentryTransport(transport sentry.Transport) SentryOption {
	return func(opts *sentry.ClientOptions) {
		opts.Transport = transport
	}
}

func (x *Sentry) Configure(ctx context.Context, options ...SentryOption) error {
	if !x.Enabled() {
		logging.From(ctx).Debug("sentry is not configured")
		return nil
	}

	clientOptions := sentry.ClientOptions{
		Dsn:         x.dsn,
		Environment: x.environment,
	}
	for _, opt := range options {
		opt(&clientOptions)
	}

	if err := sentry.Init(clientOptions); err != nil {
		return goerr.Wrap(err, "failed to initialize sentry")
	}

	return nil
}

// Flush waits for queued events to be delivered before the process exits.
func (x *Sentry) Flush(ctx context.Context) {
	if !x.Enabled() {
		return
	}
	if !sentry.Flush(sentryFlushTimeout) {
		logging.From(ctx).Warn("sentry events may not have been sent", "timeout", sentryFlushTimeout)
	}
}

func (x *Sentry) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Any("DSN", types.SentryDSN(x.dsn)),
		slog.Any("Environment", x.environment),
	)
}
