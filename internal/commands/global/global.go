// Package global holds the flags and hooks every tool's root command shares.
package global

import (
	"context"

	"github.com/google/uuid"
	"github.com/thomas-vilte/mischief/internal/clierr"
	"github.com/thomas-vilte/mischief/internal/config"
	"github.com/thomas-vilte/mischief/internal/i18n"
	"github.com/thomas-vilte/mischief/internal/logger"
	"github.com/urfave/cli/v3"
)

const (
	FlagDebug   = "debug"
	FlagVerbose = "verbose"
	FlagLang    = "lang"
)

func Flags(t *i18n.Translations, cfg *config.Config) []cli.Flag {
	return []cli.Flag{
		&cli.BoolFlag{
			Name:  FlagDebug,
			Usage: t.GetMessage("flag.debug", 0, nil),
		},
		&cli.BoolFlag{
			Name:  FlagVerbose,
			Usage: t.GetMessage("flag.verbose", 0, nil),
		},
		&cli.StringFlag{
			Name:    FlagLang,
			Aliases: []string{"l"},
			Usage:   t.GetMessage("flag.lang", 0, nil),
			Value:   cfg.Language,
		},
	}
}

// Setup is the Before hook of every root command. It installs the logger on
// the command's error writer, switches t to --lang and tags the context with
// the tool name and a fresh run id.
func Setup(tool string, t *i18n.Translations) cli.BeforeFunc {
	return func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
		log := logger.Initialize(cmd.Root().ErrWriter, cmd.Bool(FlagDebug), cmd.Bool(FlagVerbose))
		ctx = logger.WithLogger(ctx, log)
		ctx = logger.With(ctx, "tool", tool, "run_id", uuid.NewString())

		lang := config.NormalizeLanguage(cmd.String(FlagLang))
		if lang != t.Language() {
			if err := t.SetLanguage(lang); err != nil {
				logger.Warn(ctx, "language not available, keeping current", "lang", lang, "error", err)
			}
		}
		return ctx, nil
	}
}

// NoExit replaces urfave/cli's default exit handling so main owns the exit
// code.
func NoExit(context.Context, *cli.Command, error) {}

// UsageError is the OnUsageError hook of every root command: flag values
// urfave/cli rejects exit with the usage code.
func UsageError(_ context.Context, _ *cli.Command, err error, _ bool) error {
	return clierr.Usage(err)
}
