package logging_test

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/m-mizutani/bzsweep/pkg/utils/logging"
	"github.com/m-mizutani/gt"
)

func TestWith(t *testing.T) {
	ctx := context.Background()
	logger := slog.Default()

	newCtx := logging.With(ctx, logger)
	// Verify the logger can be retrieved from the context
	retrieved := logging.From(newCtx)
	gt.V(t, retrieved).Equal(logger)
}

func TestFrom(t *testing.T) {
	t.Run("get logger from context with logger", func(t *testing.T) {
		ctx := context.Background()
		logger := slog.Default()
		ctx = logging.With(ctx, logger)

		retrieved := logging.From(ctx)
		gt.V(t, retrieved).Equal(logger)
	})

	t.Run("get logger from context without logger", func(t *testing.T) {
		ctx := context.Background()
		retrieved := logging.From(ctx)
		// Should return default logger, verify it's the same instance when called again
		retrieved2 := logging.From(ctx)
		gt.V(t, retrieved).Equal(retrieved2)
		// Verify it's actually a logger instance by checking it can be used
		gt.V(t, retrieved.Handler()).Equal(logging.Default().Handler())
	})
}

func TestCtxRunID(t *testing.T) {
	t.Run("get new run ID from context", func(t *testing.T) {
		ctx := context.Background()

		runID, newCtx := logging.CtxRunID(ctx)
		gt.V(t, runID).NotEqual("")
		// Verify the context contains the run ID
		retrievedID, _ := logging.CtxRunID(newCtx)
		gt.V(t, retrievedID).Equal(runID)
	})

	t.Run("get existing run ID from context", func(t *testing.T) {
		ctx := context.Background()

		runID1, ctx1 := logging.CtxRunID(ctx)
		runID2, _ := logging.CtxRunID(ctx1)

		gt.V(t, runID1).Equal(runID2)
	})

	t.Run("independent contexts get different run IDs", func(t *testing.T) {
		runID1, _ := logging.CtxRunID(context.Background())
		runID2, _ := logging.CtxRunID(context.Background())

		gt.V(t, runID1).NotEqual(runID2)
	})
}

func TestCtxTime(t *testing.T) {
	t.Run("get current time from context", func(t *testing.T) {
		ctx := context.Background()

		tm := logging.CtxTime(ctx)
		gt.V(t, tm.IsZero()).Equal(false)
	})
}

func TestCtxWithTime(t *testing.T) {
	t.Run("set and get custom time from context", func(t *testing.T) {
		ctx := context.Background()

		called := false
		ctx = logging.CtxWithTime(ctx, func() time.Time {
			called = true
			return time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
		})

		tm := logging.CtxTime(ctx)
		gt.True(t, called)
		gt.V(t, tm.Year()).Equal(2024)
	})
}
