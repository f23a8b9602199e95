package yeet

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/thomas-vilte/mischief/internal/errors"
	"github.com/thomas-vilte/mischief/internal/logger"
	"golang.org/x/sync/errgroup"
)

const maxConcurrentScans = 4

// Target is a directory found under the scan root.
type Target struct {
	Name  string
	Path  string
	Size  int64
	Count int
}

// Totals sums size and file count over targets.
func Totals(targets []Target) (int64, int) {
	var size int64
	var count int
	for _, t := range targets {
		size += t.Size
		count += t.Count
	}
	return size, count
}

// Scan measures each named entry under root. Missing names are left out; the
// rest come back in the order of names, empty ones with size 0 and count 0.
// Names must stay inside root: ".", ".." and anything escaping it fail with
// ErrUnsafeTarget before anything is measured.
// Symlinks count as one file of their own size and are never followed.
func Scan(ctx context.Context, root string, names []string) ([]Target, error) {
	for _, name := range names {
		if !isInside(name) {
			return nil, errors.ErrUnsafeTarget.WithContext("target", name)
		}
	}

	results := make([]*Target, len(names))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentScans)

	for i, name := range names {
		g.Go(func() error {
			path := filepath.Join(root, name)
			if _, err := os.Lstat(path); err != nil {
				return nil
			}

			size, count, err := measure(gctx, path)
			if err != nil {
				return errors.ErrScanTarget.WithError(err).WithContext("path", path)
			}
			results[i] = &Target{Name: name, Path: path, Size: size, Count: count}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	log := logger.FromContext(ctx)
	targets := make([]Target, 0, len(names))
	for _, r := range results {
		if r == nil {
			continue
		}
		log.Debug("target scanned", "path", r.Path, "size", r.Size, "files", r.Count)
		targets = append(targets, *r)
	}
	return targets, nil
}

// NonEmpty drops targets without files.
func NonEmpty(targets []Target) []Target {
	out := make([]Target, 0, len(targets))
	for _, t := range targets {
		if t.Count > 0 {
			out = append(out, t)
		}
	}
	return out
}

func isInside(name string) bool {
	clean := filepath.Clean(name)
	return clean != "." && filepath.IsLocal(clean)
}

// measure walks path without following links. Unreadable entries are
// skipped; only cancellation stops the walk.
func measure(ctx context.Context, path string) (int64, int, error) {
	var size int64
	var count int

	err := filepath.WalkDir(path, func(p string, d fs.DirEntry, err error) error {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		if err != nil {
			if d != nil && d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			return nil
		}

		info, err := d.Info()
		if err != nil {
			return nil
		}
		size += info.Size()
		count++
		return nil
	})

	return size, count, err
}
