package yeet

import (
	"context"
	"os"

	"github.com/thomas-vilte/mischief/internal/errors"
	"github.com/thomas-vilte/mischief/internal/logger"
)

// Delete removes targets one after another. onDone, when set, is called
// after each successful removal.
func Delete(ctx context.Context, targets []Target, onDone func(Target)) error {
	for _, t := range targets {
		if err := ctx.Err(); err != nil {
			return errors.ErrDeleteTarget.WithError(err).WithContext("path", t.Path)
		}
		if err := os.RemoveAll(t.Path); err != nil {
			return errors.ErrDeleteTarget.WithError(err).WithContext("path", t.Path)
		}
		logger.Info(ctx, "target deleted", "path", t.Path, "files", t.Count)
		if onDone != nil {
			onDone(t)
		}
	}
	return nil
}
