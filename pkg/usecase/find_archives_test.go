package usecase_test

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/m-mizutani/bzsweep/pkg/usecase"
	"github.com/m-mizutani/bzsweep/pkg/utils/testutil"
	"github.com/m-mizutani/gt"
)

func TestFindArchives(t *testing.T) {
	ctx := context.Background()

	t.Run("lexical depth-first order", func(t *testing.T) {
		root := t.TempDir()
		for _, name := range []string{"b.bz2", "a/z.bz2", "a/b/c.bz2", "c.bz2", "a.bz2"} {
			testutil.WriteFile(t, filepath.Join(root, filepath.FromSlash(name)), []byte("x"))
		}

		entries := gt.R1(usecase.FindArchivesForTest(ctx, root)).NoError(t)
		var got []string
		for _, e := range entries {
			rel := gt.R1(filepath.Rel(root, e.Path)).NoError(t)
			got = append(got, filepath.ToSlash(rel))
		}
		gt.V(t, got).Equal([]string{"a/b/c.bz2", "a/z.bz2", "a.bz2", "b.bz2", "c.bz2"})
	})

	t.Run("output path strips one suffix", func(t *testing.T) {
		root := t.TempDir()
		testutil.WriteFile(t, filepath.Join(root, "table1.csv.bz2"), []byte("x"))

		entries := gt.R1(usecase.FindArchivesForTest(ctx, root)).NoError(t)
		gt.V(t, len(entries)).Equal(1)
		gt.V(t, entries[0].OutputPath).Equal(filepath.Join(root, "table1.csv"))
	})
}

func TestPathExists(t *testing.T) {
	root := t.TempDir()
	testutil.WriteFile(t, filepath.Join(root, "present"), []byte("x"))

	gt.True(t, gt.R1(usecase.PathExistsForTest(filepath.Join(root, "present"))).NoError(t))
	gt.True(t, gt.R1(usecase.PathExistsForTest(root)).NoError(t))
	gt.False(t, gt.R1(usecase.PathExistsForTest(filepath.Join(root, "absent"))).NoError(t))
}

func TestReaderWithCtx(t *testing.T) {
	t.Run("reads while context is alive", func(t *testing.T) {
		r := usecase.ReaderWithCtxForTest(context.Background(), strings.NewReader("data"))
		buf := make([]byte, 4)
		n := gt.R1(r.Read(buf)).NoError(t)
		gt.V(t, string(buf[:n])).Equal("data")
	})

	t.Run("fails after cancel", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		r := usecase.ReaderWithCtxForTest(ctx, strings.NewReader("data"))
		_, err := r.Read(make([]byte, 4))
		gt.True(t, errors.Is(err, context.Canceled))
	})
}
