package yeet

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"strings"

	"github.com/thomas-vilte/mischief/internal/clierr"
	"github.com/thomas-vilte/mischief/internal/commands/completion_helper"
	"github.com/thomas-vilte/mischief/internal/commands/global"
	"github.com/thomas-vilte/mischief/internal/config"
	domainErrors "github.com/thomas-vilte/mischief/internal/errors"
	"github.com/thomas-vilte/mischief/internal/i18n"
	"github.com/thomas-vilte/mischief/internal/logger"
	"github.com/thomas-vilte/mischief/internal/ui"
	"github.com/thomas-vilte/mischief/internal/version"
	core "github.com/thomas-vilte/mischief/internal/yeet"
	"github.com/urfave/cli/v3"
)

type YeetCommandFactory struct {
	workDir string
	rng     *rand.Rand
}

// NewYeetCommandFactory builds the yeet command. Targets are looked up in
// workDir.
func NewYeetCommandFactory(workDir string, rng *rand.Rand) *YeetCommandFactory {
	return &YeetCommandFactory{workDir: workDir, rng: rng}
}

func (f *YeetCommandFactory) CreateCommand(t *i18n.Translations, cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:                  "yeet",
		Version:               version.Version,
		Usage:                 t.GetMessage("yeet.usage", 0, nil),
		Flags:                 append(f.createFlags(t), global.Flags(t, cfg)...),
		EnableShellCompletion: true,
		ShellComplete:         completion_helper.DefaultFlagComplete,
		Before:                global.Setup("yeet", t),
		Action:                f.createAction(cfg, t),
		OnUsageError:          global.UsageError,
		ExitErrHandler:        global.NoExit,
	}
}

func (f *YeetCommandFactory) createFlags(t *i18n.Translations) []cli.Flag {
	return []cli.Flag{
		&cli.StringSliceFlag{
			Name:    "target",
			Aliases: []string{"t"},
			Usage:   t.GetMessage("yeet.flag_target", 0, nil),
		},
		&cli.BoolFlag{
			Name:    "everything",
			Aliases: []string{"e"},
			Usage:   t.GetMessage("yeet.flag_everything", 0, nil),
		},
		&cli.BoolFlag{
			Name:    "force",
			Aliases: []string{"f"},
			Usage:   t.GetMessage("yeet.flag_force", 0, nil),
		},
		&cli.BoolFlag{
			Name:  "dry",
			Usage: t.GetMessage("yeet.flag_dry", 0, nil),
		},
	}
}

func (f *YeetCommandFactory) createAction(cfg *config.Config, t *i18n.Translations) cli.ActionFunc {
	return func(ctx context.Context, cmd *cli.Command) error {
		log := logger.FromContext(ctx)
		w := cmd.Root().Writer
		theme := ui.NewTheme("yeet", ui.HexYeet)
		everything := cmd.Bool("everything")
		dry := cmd.Bool("dry")

		names := core.ResolveTargets(cmd.StringSlice("target"), everything, cfg.Yeet.ExtraTargets)
		log.Debug("scanning targets", "root", f.workDir, "names", strings.Join(names, ","))

		scanned, err := core.Scan(ctx, f.workDir, names)
		if err != nil {
			ui.HandleAppError(w, err, theme, t)
			if errors.Is(err, domainErrors.ErrUnsafeTarget) {
				return clierr.Reported(clierr.Usage(err))
			}
			return clierr.Reported(err)
		}
		targets := core.NonEmpty(scanned)
		if len(targets) == 0 {
			_, _ = fmt.Fprintf(w, "\n  %s %s\n\n", ui.Warn.Sprint(t.GetMessage("yeet.nothing", 0, nil)), t.GetMessage("yeet.no_targets", 0, nil))
			return nil
		}

		totalSize, totalCount := core.Totals(targets)
		counts := core.NewCountFormatter(t.Tag())
		log.Info("targets acquired", "count", len(targets), "size", totalSize, "files", totalCount)

		printTargets(w, theme, t, counts, targets, everything, dry)

		if dry {
			_, _ = fmt.Fprintf(w, "  %s\n", ui.Dim.Sprint(t.GetMessage("yeet.dry_1", 0, nil)))
			_, _ = fmt.Fprintf(w, "  %s\n\n", ui.Dim.Sprint(t.GetMessage("yeet.dry_2", 0, nil)))
			return nil
		}

		if !cmd.Bool("force") {
			key := "yeet.confirm_one"
			if len(targets) > 1 {
				key = "yeet.confirm_many"
			}
			question := fmt.Sprintf("  %s %s %s ", theme.A("?"), t.GetMessage(key, 0, nil), ui.Dim.Sprint(t.GetMessage("ui.yes_no", 0, nil)))
			if !ui.Confirm(cmd.Root().Reader, w, question) {
				_, _ = fmt.Fprintf(w, "\n  %s\n\n", ui.Dim.Sprint(t.GetMessage("yeet.aborted", 0, nil)))
				return nil
			}
		}
		_, _ = fmt.Fprintln(w)

		progress := &core.Progress{
			W:           w,
			Theme:       theme,
			Rng:         f.rng,
			Counts:      counts,
			MinDuration: cfg.MinAnimation(),
			Total:       totalCount,
			FilesLabel:  t.GetMessage("yeet.files", 0, nil),
			DoneLabel:   t.GetMessage("yeet.yeeted", 0, nil),
		}
		elapsed, err := progress.Run(ctx, func() error {
			return core.Delete(ctx, targets, nil)
		})
		if err != nil {
			_, _ = fmt.Fprintln(w)
			ui.HandleAppError(w, err, theme, t)
			return clierr.Reported(err)
		}

		printSummary(w, theme, t, f.rng, counts, targets, elapsed)
		return nil
	}
}
