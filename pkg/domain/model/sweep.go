package model

import (
	"log/slog"
	"time"

	"github.com/m-mizutani/bzsweep/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
)

type SweepInput struct {
	Root    string
	OnError types.ErrorPolicy
	DryRun  bool
}

func (x *SweepInput) Validate() error {
	if x.Root == "" {
		return goerr.Wrap(types.ErrInvalidOption, "root directory is required")
	}
	if !x.OnError.Valid() {
		return goerr.Wrap(types.ErrInvalidOption, "invalid error policy, should be 'abort' or 'skip'", goerr.V("value", x.OnError))
	}
	return nil
}

func (x SweepInput) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("root", x.Root),
		slog.String("on_error", x.OnError.String()),
		slog.Bool("dry_run", x.DryRun),
	)
}

type EntryResult struct {
	Entry   ArchiveEntry
	Status  types.EntryStatus
	Written int64
	Err     error
}

// SweepReport is the outcome of one run. It is not persisted.
type SweepReport struct {
	RunID      types.RunID
	Root       string
	StartedAt  time.Time
	FinishedAt time.Time
	Results    []EntryResult
}

// Failures returns results whose decompression failed, in walk order.
func (x *SweepReport) Failures() []EntryResult {
	var failed []EntryResult
	for _, r := range x.Results {
		if r.Status == types.EntryStatusFailed {
			failed = append(failed, r)
		}
	}
	return failed
}

func (x *SweepReport) Add(r EntryResult) {
	x.Results = append(x.Results, r)
}

func (x *SweepReport) Count(status types.EntryStatus) int {
	var n int
	for _, r := range x.Results {
		if r.Status == status {
			n++
		}
	}
	return n
}

func (x *SweepReport) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("run_id", x.RunID.String()),
		slog.String("root", x.Root),
		slog.Int("total", len(x.Results)),
		slog.Int("decompressed", x.Count(types.EntryStatusDecompressed)),
		slog.Int("exists", x.Count(types.EntryStatusExists)),
		slog.Int("failed", x.Count(types.EntryStatusFailed)),
		slog.Int("planned", x.Count(types.EntryStatusPlanned)),
		slog.Duration("elapsed", x.FinishedAt.Sub(x.StartedAt)),
	)
}
