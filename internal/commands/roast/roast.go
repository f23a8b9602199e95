package roast

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/thomas-vilte/mischief/internal/ai"
	"github.com/thomas-vilte/mischief/internal/cache"
	"github.com/thomas-vilte/mischief/internal/clierr"
	"github.com/thomas-vilte/mischief/internal/commands/completion_helper"
	"github.com/thomas-vilte/mischief/internal/commands/global"
	"github.com/thomas-vilte/mischief/internal/config"
	domainErrors "github.com/thomas-vilte/mischief/internal/errors"
	"github.com/thomas-vilte/mischief/internal/i18n"
	"github.com/thomas-vilte/mischief/internal/logger"
	core "github.com/thomas-vilte/mischief/internal/roast"
	"github.com/thomas-vilte/mischief/internal/ui"
	"github.com/thomas-vilte/mischief/internal/version"
	"github.com/urfave/cli/v3"
)

const (
	spinnerInterval = 100 * time.Millisecond
	phraseEvery     = 15
)

// ReviewerFactory opens a reviewer for model. It runs only once there is
// code to review.
type ReviewerFactory func(ctx context.Context, apiKey, model string) (ai.CodeReviewer, error)

type RoastCommandFactory struct {
	newReviewer ReviewerFactory
	workDir     string
	cacheDir    string
	rng         *rand.Rand
}

// NewRoastCommandFactory builds the roast command. Relative paths resolve
// against workDir; an empty cacheDir disables the response cache.
func NewRoastCommandFactory(newReviewer ReviewerFactory, workDir, cacheDir string, rng *rand.Rand) *RoastCommandFactory {
	return &RoastCommandFactory{
		newReviewer: newReviewer,
		workDir:     workDir,
		cacheDir:    cacheDir,
		rng:         rng,
	}
}

func (f *RoastCommandFactory) CreateCommand(t *i18n.Translations, cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:                  "roast",
		Version:               version.Version,
		Usage:                 t.GetMessage("roast.usage", 0, nil),
		Description:           t.GetMessage("roast.help", 0, nil),
		ArgsUsage:             t.GetMessage("roast.args", 0, nil),
		Flags:                 append(f.createFlags(cfg, t), global.Flags(t, cfg)...),
		EnableShellCompletion: true,
		ShellComplete:         completion_helper.DefaultFlagComplete,
		Before:                global.Setup("roast", t),
		Action:                f.createAction(cfg, t),
		OnUsageError:          global.UsageError,
		ExitErrHandler:        global.NoExit,
	}
}

func (f *RoastCommandFactory) createFlags(cfg *config.Config, t *i18n.Translations) []cli.Flag {
	return []cli.Flag{
		&cli.BoolFlag{
			Name:  "gentle",
			Usage: t.GetMessage("roast.flag_gentle", 0, nil),
		},
		&cli.BoolFlag{
			Name:  "savage",
			Usage: t.GetMessage("roast.flag_savage", 0, nil),
		},
		&cli.BoolFlag{
			Name:  "clipboard",
			Usage: t.GetMessage("roast.flag_clipboard", 0, nil),
		},
		&cli.BoolFlag{
			Name:  "yolo",
			Usage: t.GetMessage("roast.flag_yolo", 0, nil),
		},
		&cli.StringFlag{
			Name:    "model",
			Aliases: []string{"m"},
			Value:   string(cfg.Gemini.Model),
			Usage:   t.GetMessage("roast.flag_model", 0, nil),
		},
		&cli.BoolFlag{
			Name:  "no-cache",
			Usage: t.GetMessage("roast.flag_no_cache", 0, nil),
		},
	}
}

func (f *RoastCommandFactory) createAction(cfg *config.Config, t *i18n.Translations) cli.ActionFunc {
	return func(ctx context.Context, cmd *cli.Command) error {
		log := logger.FromContext(ctx)
		w := cmd.Root().Writer
		severity := core.ParseSeverity(cmd.Bool("gentle"), cmd.Bool("savage"))
		theme := severity.Theme()

		reader := core.NewInputReader(cmd.Root().Reader, f.workDir, cfg.Roast.MaxChars, cfg.Roast.MaxFiles)
		input, err := reader.Read(core.Options{
			Path:      cmd.Args().First(),
			Clipboard: cmd.Bool("clipboard"),
			Yolo:      cmd.Bool("yolo"),
		})
		if err != nil {
			ui.HandleAppError(w, err, theme, t)
			if errors.Is(err, domainErrors.ErrNoInput) {
				_, _ = fmt.Fprintf(w, "  %s roast %s [--gentle | --savage] [--clipboard] [--yolo]\n\n",
					ui.Dim.Sprint(t.GetMessage("roast.usage_hint", 0, nil)), theme.A("<file>"))
				return clierr.Reported(clierr.Usage(err))
			}
			return clierr.Reported(err)
		}

		model := cmd.String("model")
		log.Info("roasting",
			"severity", severity.Name,
			"source", input.Filename,
			"lines", input.Lines,
			"files", input.Files,
			"model", model)

		reviewer, err := f.newReviewer(ctx, cfg.Gemini.APIKey, model)
		if err != nil {
			ui.HandleAppError(w, err, theme, t)
			return clierr.Reported(err)
		}

		service := core.NewService(reviewer, f.responseCache(ctx, cfg, cmd.Bool("no-cache")))
		var resp core.Response
		sp := ui.NewSpinner(w, theme, ui.HeatFrames, spinnerInterval, ui.PhraseSuffix(theme, f.rng, core.ThinkingPhrases, phraseEvery))
		err = sp.Run(func() error {
			var err error
			resp, err = service.Roast(ctx, core.Request{
				Input:    input,
				Severity: severity,
				Spanish:  t.Language() == config.LangES,
			})
			return err
		})
		if err != nil {
			logger.Error(ctx, "roast failed", err, "model", model)
			ui.HandleAppError(w, err, theme, t)
			return clierr.Reported(err)
		}

		printResult(w, theme, t, f.rng, severity, input, resp)
		return nil
	}
}

func (f *RoastCommandFactory) responseCache(ctx context.Context, cfg *config.Config, noCache bool) core.ResponseCache {
	if noCache || !cfg.Roast.CacheEnabled || f.cacheDir == "" {
		return nil
	}
	c, err := cache.NewCache(f.cacheDir, cfg.CacheTTL())
	if err != nil {
		logger.Warn(ctx, "response cache disabled", "error", err)
		return nil
	}
	return c
}
