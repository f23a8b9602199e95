package global

import (
	"context"
	"fmt"
	"io"
	"math/rand/v2"
	"time"

	"github.com/thomas-vilte/mischief/internal/clierr"
	"github.com/thomas-vilte/mischief/internal/config"
	"github.com/thomas-vilte/mischief/internal/i18n"
	"github.com/thomas-vilte/mischief/internal/ui"
	"github.com/urfave/cli/v3"
)

// Load reads the config under homeDir and overlays the environment. A
// config that cannot be read is reported on stderr and replaced by the
// defaults; only missing translations are fatal.
func Load(homeDir string, stderr io.Writer, lookup func(string) (string, bool)) (*config.Config, *i18n.Translations, error) {
	cfg := config.Default()
	if homeDir != "" {
		loaded, err := config.LoadConfig(homeDir)
		if err != nil {
			_, _ = fmt.Fprintf(stderr, "%s %v\n", ui.Warn.Sprint("warning:"), err)
		} else {
			cfg = loaded
		}
	}
	cfg.ApplyEnv(lookup)
	cfg.Language = config.NormalizeLanguage(cfg.Language)

	t, err := i18n.NewTranslations(cfg.Language)
	if err != nil {
		return nil, nil, fmt.Errorf("loading translations: %w", err)
	}
	return cfg, t, nil
}

func NewRand() *rand.Rand {
	return rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), rand.Uint64()))
}

// Execute runs cmd and turns its result into a process exit code. Errors
// the command already rendered are not printed again; the rest are shown
// without their exit code wrappers.
func Execute(ctx context.Context, cmd *cli.Command, args []string, theme ui.Theme, t *i18n.Translations) int {
	err := cmd.Run(ctx, args)
	if err == nil {
		return 0
	}
	if !clierr.IsReported(err) {
		w := cmd.ErrWriter
		if w == nil {
			w = cmd.Writer
		}
		ui.HandleAppError(w, clierr.Cause(err), theme, t)
	}
	return clierr.ExitCodeOf(err)
}
