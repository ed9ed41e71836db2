package usecase

import (
	"context"
	"errors"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/m-mizutani/bzsweep/pkg/domain/model"
	"github.com/m-mizutani/bzsweep/pkg/domain/types"
	"github.com/m-mizutani/bzsweep/pkg/utils/errutil"
	"github.com/m-mizutani/bzsweep/pkg/utils/logging"
	"github.com/m-mizutani/bzsweep/pkg/utils/safe"
	"github.com/m-mizutani/goerr/v2"
)

// SweepArchives walks input.Root and decompresses every archive whose output does not exist yet.
// Entries are enumerated before any output is written, so outputs created by this run are never
// picked up as new entries. Access errors always abort; other entry failures follow input.OnError.
func (x *UseCase) SweepArchives(ctx context.Context, input *model.SweepInput) (*model.SweepReport, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	runID, ctx := logging.CtxRunID(ctx)
	logger := logging.From(ctx).With(slog.String("run_id", runID.String()))
	ctx = logging.With(ctx, logger)

	report := &model.SweepReport{
		RunID:     runID,
		Root:      input.Root,
		StartedAt: logging.CtxTime(ctx),
	}

	logger.Info("Starting sweep", slog.Any("input", input))

	entries, err := findArchives(ctx, input.Root)
	if err != nil {
		return report, err
	}

	if len(entries) == 0 {
		logger.Info("No archives found", slog.String("root", input.Root))
	}

	for _, entry := range entries {
		if err := ctx.Err(); err != nil {
			return report, goerr.Wrap(err, "sweep interrupted", goerr.V("next", entry.Path))
		}

		result := x.sweepEntry(ctx, entry, input.DryRun)
		report.Add(result)
		if result.Status != types.EntryStatusFailed {
			continue
		}

		if input.OnError == types.ErrorPolicyAbort || isFatal(ctx, result.Err) {
			return report, result.Err
		}
		errutil.HandleError(ctx, "Failed to decompress archive, skipped", result.Err)
	}

	report.FinishedAt = logging.CtxTime(ctx)
	logger.Info("Sweep finished", slog.Any("report", report))

	if failures := report.Failures(); len(failures) > 0 {
		paths := make([]string, len(failures))
		for i, f := range failures {
			paths[i] = f.Entry.Path
		}
		return report, goerr.Wrap(types.ErrEntryFailed, "some archives failed to decompress",
			goerr.V("root", input.Root),
			goerr.V("failure_count", len(failures)),
			goerr.V("failed", paths),
		)
	}

	return report, nil
}

func isFatal(ctx context.Context, err error) bool {
	return errors.Is(err, types.ErrAccess) || ctx.Err() != nil
}

// findArchives lists archive entries under root in lexical depth-first order.
// Only directory entries are read; files are never opened here.
func findArchives(ctx context.Context, root string) ([]model.ArchiveEntry, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, goerr.Wrap(types.ErrAccess, "failed to access root directory",
			goerr.V("root", root),
			goerr.V("cause", err.Error()),
		)
	}
	if !info.IsDir() {
		return nil, goerr.Wrap(types.ErrInvalidOption, "root is not a directory", goerr.V("root", root))
	}

	var entries []model.ArchiveEntry
	walkErr := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return goerr.Wrap(types.ErrAccess, "failed to read directory",
				goerr.V("path", path),
				goerr.V("cause", err.Error()),
			)
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		if entry, ok := model.NewArchiveEntry(path); ok {
			entries = append(entries, entry)
		}
		return nil
	})
	if walkErr != nil {
		return nil, walkErr
	}

	logging.From(ctx).Debug("Archives found", slog.String("root", root), slog.Int("count", len(entries)))

	return entries, nil
}

func (x *UseCase) sweepEntry(ctx context.Context, entry model.ArchiveEntry, dryRun bool) model.EntryResult {
	logger := logging.From(ctx).With(
		slog.String("archive", entry.Path),
		slog.String("output", entry.OutputPath),
	)
	result := model.EntryResult{Entry: entry}

	exists, err := pathExists(entry.OutputPath)
	if err != nil {
		result.Status = types.EntryStatusFailed
		result.Err = err
		return result
	}
	if exists {
		logger.Info("Output already exists")
		result.Status = types.EntryStatusExists
		return result
	}

	if dryRun {
		logger.Info("Would decompress")
		result.Status = types.EntryStatusPlanned
		return result
	}

	written, err := x.decompressFile(ctx, entry)
	if err != nil {
		result.Status = types.EntryStatusFailed
		result.Err = err
		return result
	}

	logger.Info("Decompressed", slog.Int64("bytes", written))
	result.Status = types.EntryStatusDecompressed
	result.Written = written
	return result
}

// pathExists reports whether anything, including a dangling symlink, occupies path.
func pathExists(path string) (bool, error) {
	_, err := os.Lstat(path)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	return false, goerr.Wrap(types.ErrAccess, "failed to check output path",
		goerr.V("path", path),
		goerr.V("cause", err.Error()),
	)
}

// decompressFile streams the archive into a temp file next to the output and renames it into place.
// A partial output never appears at OutputPath.
func (x *UseCase) decompressFile(ctx context.Context, entry model.ArchiveEntry) (int64, error) {
	src, err := os.Open(filepath.Clean(entry.Path))
	if err != nil {
		return 0, goerr.Wrap(types.ErrAccess, "failed to open archive",
			goerr.V("archive", entry.Path),
			goerr.V("cause", err.Error()),
		)
	}
	defer safe.Close(src)

	perm := fs.FileMode(0644)
	if info, err := src.Stat(); err == nil {
		perm = info.Mode().Perm()
	}

	r, err := x.clients.Decompressor().NewReader(src)
	if err != nil {
		return 0, goerr.Wrap(err, "failed to open compressed stream", goerr.V("archive", entry.Path))
	}

	dir := filepath.Dir(entry.OutputPath)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(entry.OutputPath)+".tmp-*")
	if err != nil {
		return 0, goerr.Wrap(types.ErrAccess, "failed to create temp file for output",
			goerr.V("dir", dir),
			goerr.V("cause", err.Error()),
		)
	}
	tmpPath := tmp.Name()
	committed := false
	defer func() {
		if !committed {
			safe.Close(tmp)
			safe.Remove(tmpPath)
		}
	}()

	written, err := io.Copy(tmp, readerWithCtx(ctx, r))
	if err != nil {
		if errors.Is(err, types.ErrCorruptArchive) || ctx.Err() != nil {
			return 0, goerr.Wrap(err, "failed to decompress archive", goerr.V("archive", entry.Path))
		}
		return 0, goerr.Wrap(types.ErrAccess, "failed to write decompressed data",
			goerr.V("archive", entry.Path),
			goerr.V("tmp", tmpPath),
			goerr.V("cause", err.Error()),
		)
	}

	if err := tmp.Chmod(perm); err != nil {
		return 0, goerr.Wrap(types.ErrAccess, "failed to set output permission",
			goerr.V("tmp", tmpPath),
			goerr.V("cause", err.Error()),
		)
	}
	if err := tmp.Sync(); err != nil {
		return 0, goerr.Wrap(types.ErrAccess, "failed to sync output",
			goerr.V("tmp", tmpPath),
			goerr.V("cause", err.Error()),
		)
	}
	if err := tmp.Close(); err != nil {
		return 0, goerr.Wrap(types.ErrAccess, "failed to close output",
			goerr.V("tmp", tmpPath),
			goerr.V("cause", err.Error()),
		)
	}

	if err := os.Rename(tmpPath, entry.OutputPath); err != nil {
		return 0, goerr.Wrap(types.ErrAccess, "failed to move output into place",
			goerr.V("tmp", tmpPath),
			goerr.V("output", entry.OutputPath),
			goerr.V("cause", err.Error()),
		)
	}
	committed = true
	safe.SyncDir(dir)

	return written, nil
}

func readerWithCtx(ctx context.Context, r io.Reader) io.Reader {
	return &ctxReader{ctx: ctx, r: r}
}

// ctxReader checks for cancellation before every Read.
type ctxReader struct {
	ctx context.Context
	r   io.Reader
}

func (x *ctxReader) Read(p []byte) (int, error) {
	if err := x.ctx.Err(); err != nil {
		return 0, err
	}
	return x.r.Read(p)
}
