package cli_test

import (
	"context"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/m-mizutani/bzsweep/pkg/cli"
	"github.com/m-mizutani/bzsweep/pkg/cli/config"
	"github.com/m-mizutani/bzsweep/pkg/utils/testutil"
	"github.com/m-mizutani/gt"
)

type transportMock struct {
	mu      sync.Mutex
	events  []*sentry.Event
	flushed int
}

func (x *transportMock) Configure(options sentry.ClientOptions) {}
func (x *transportMock) Close()                                 {}

func (x *transportMock) SendEvent(event *sentry.Event) {
	x.mu.Lock()
	defer x.mu.Unlock()
	x.events = append(x.events, event)
}

func (x *transportMock) Flush(timeout time.Duration) bool {
	x.mu.Lock()
	defer x.mu.Unlock()
	x.flushed++
	return true
}

func (x *transportMock) FlushWithContext(ctx context.Context) bool {
	return x.Flush(0)
}

func (x *transportMock) Events() []*sentry.Event {
	x.mu.Lock()
	defer x.mu.Unlock()
	return append([]*sentry.Event{}, x.events...)
}

func (x *transportMock) Flushed() int {
	x.mu.Lock()
	defer x.mu.Unlock()
	return x.flushed
}

func withSentryTransport(t *testing.T, transport sentry.Transport) {
	t.Helper()
	orig := cli.ConfigureSentry
	cli.ConfigureSentry = func(ctx context.Context, s *config.Sentry) error {
		return s.Configure(ctx, config.WithSentryTransport(transport))
	}
	t.Cleanup(func() {
		cli.ConfigureSentry = orig
		sentry.CurrentHub().BindClient(nil)
	})
}

const testSentryDSN = "https://public@sentry.example.com/1"

func TestSweepReportsToSentry(t *testing.T) {
	t.Run("skipped and summary errors are delivered before exit", func(t *testing.T) {
		transport := &transportMock{}
		withSentryTransport(t, transport)

		root := t.TempDir()
		testutil.WriteFile(t, filepath.Join(root, "broken.bz2"), []byte("garbage"))
		testutil.WriteBzip2(t, filepath.Join(root, "good.bz2"), []byte("good"))

		err := cli.New().Run([]string{"bzsweep", "sweep",
			"--root", root,
			"--on-error", "skip",
			"--sentry-dsn", testSentryDSN,
		})
		gt.Error(t, err)

		// one event for the skipped archive, one for the failed run
		gt.V(t, len(transport.Events())).Equal(2)
		gt.V(t, transport.Flushed()).Equal(1)
		gt.V(t, transport.Events()[0].Tags["run_id"]).NotEqual("")
	})

	t.Run("abort failure is delivered", func(t *testing.T) {
		transport := &transportMock{}
		withSentryTransport(t, transport)

		root := t.TempDir()
		testutil.WriteFile(t, filepath.Join(root, "broken.bz2"), []byte("garbage"))

		err := cli.New().Run([]string{"bzsweep", "sweep",
			"--root", root,
			"--sentry-dsn", testSentryDSN,
		})
		gt.Error(t, err)

		gt.V(t, len(transport.Events())).Equal(1)
		gt.V(t, transport.Flushed()).Equal(1)
	})

	t.Run("successful run sends nothing but still flushes", func(t *testing.T) {
		transport := &transportMock{}
		withSentryTransport(t, transport)

		root := t.TempDir()
		testutil.WriteBzip2(t, filepath.Join(root, "good.bz2"), []byte("good"))

		err := cli.New().Run([]string{"bzsweep", "sweep",
			"--root", root,
			"--sentry-dsn", testSentryDSN,
		})
		gt.NoError(t, err)

		gt.V(t, len(transport.Events())).Equal(0)
		gt.V(t, transport.Flushed()).Equal(1)
		gt.V(t, testutil.ReadFile(t, filepath.Join(root, "good"))).Equal("good")
	})
}
