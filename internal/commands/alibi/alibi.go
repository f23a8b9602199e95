package alibi

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math/rand/v2"
	"strings"
	"time"

	core "github.com/thomas-vilte/mischief/internal/alibi"
	"github.com/thomas-vilte/mischief/internal/clierr"
	"github.com/thomas-vilte/mischief/internal/commands/completion_helper"
	"github.com/thomas-vilte/mischief/internal/commands/global"
	"github.com/thomas-vilte/mischief/internal/config"
	domainErrors "github.com/thomas-vilte/mischief/internal/errors"
	"github.com/thomas-vilte/mischief/internal/i18n"
	"github.com/thomas-vilte/mischief/internal/logger"
	"github.com/thomas-vilte/mischief/internal/ui"
	"github.com/thomas-vilte/mischief/internal/version"
	"github.com/urfave/cli/v3"
)

const (
	spinnerInterval = 100 * time.Millisecond
	phraseEvery     = 20
	dateLayout      = "Monday, January 2, 2006"
	clockLayout     = "15:04"
)

// gitService is what the command needs from git.
type gitService interface {
	core.GitClient
	IsRepository(ctx context.Context) bool
	RepoRoot(ctx context.Context) (string, error)
	ValidateGitConfig(ctx context.Context) error
	CommitCount(ctx context.Context) (int, error)
}

type AlibiCommandFactory struct {
	git     gitService
	workDir string
	rng     *rand.Rand
}

// NewAlibiCommandFactory builds the alibi command. git must run in workDir,
// which is also where the work files go.
func NewAlibiCommandFactory(gitSvc gitService, workDir string, rng *rand.Rand) *AlibiCommandFactory {
	return &AlibiCommandFactory{
		git:     gitSvc,
		workDir: workDir,
		rng:     rng,
	}
}

func (f *AlibiCommandFactory) CreateCommand(t *i18n.Translations, cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:                  "alibi",
		Version:               version.Version,
		Usage:                 t.GetMessage("alibi.usage", 0, nil),
		Description:           t.GetMessage("alibi.help", 0, nil),
		Flags:                 append(f.createFlags(cfg, t), global.Flags(t, cfg)...),
		EnableShellCompletion: true,
		ShellComplete:         completion_helper.DefaultFlagComplete,
		Before:                global.Setup("alibi", t),
		Action:                f.createAction(cfg, t),
		OnUsageError:          global.UsageError,
		ExitErrHandler:        global.NoExit,
	}
}

func (f *AlibiCommandFactory) createFlags(cfg *config.Config, t *i18n.Translations) []cli.Flag {
	return []cli.Flag{
		&cli.IntFlag{
			Name:    "hours",
			Aliases: []string{"H"},
			Value:   8,
			Usage:   t.GetMessage("alibi.flag_hours", 0, nil),
		},
		&cli.StringFlag{
			Name:  "date",
			Usage: t.GetMessage("alibi.flag_date", 0, nil),
		},
		&cli.StringFlag{
			Name:  "style",
			Value: core.DefaultStyle,
			Usage: t.GetMessage("alibi.flag_style", 0, struct{ Styles string }{strings.Join(core.StyleNames(), ", ")}),
		},
		&cli.BoolFlag{
			Name:  "dry",
			Usage: t.GetMessage("alibi.flag_dry", 0, nil),
		},
		&cli.StringFlag{
			Name:  "templates",
			Value: cfg.Alibi.TemplatesFile,
			Usage: t.GetMessage("alibi.flag_templates", 0, nil),
		},
		&cli.StringFlag{
			Name:  "on-failure",
			Value: string(core.PolicyKeep),
			Usage: t.GetMessage("alibi.flag_on_failure", 0, nil),
		},
	}
}

func (f *AlibiCommandFactory) createAction(cfg *config.Config, t *i18n.Translations) cli.ActionFunc {
	return func(ctx context.Context, cmd *cli.Command) error {
		log := logger.FromContext(ctx)
		w := cmd.Root().Writer
		theme := ui.NewTheme("alibi", ui.HexAlibi)

		if !f.git.IsRepository(ctx) {
			ui.PrintFailure(w, theme, t.GetMessage("alibi.not_git_repo", 0, struct{ Cmd string }{theme.A("git init")}))
			return clierr.Reported(domainErrors.ErrNotInGitRepo)
		}

		hours := core.ClampHours(int(cmd.Int("hours")))
		date, err := core.ParseDate(cmd.String("date"))
		if err != nil {
			ui.HandleAppError(w, err, theme, t)
			return clierr.Reported(clierr.Usage(err))
		}
		policy, err := core.ParsePolicy(cmd.String("on-failure"))
		if err != nil {
			ui.HandleAppError(w, err, theme, t)
			return clierr.Reported(clierr.Usage(err))
		}
		style, known := core.ParseStyle(cmd.String("style"))
		if !known {
			log.Warn("unknown style, using the default",
				"style", cmd.String("style"),
				"default", core.DefaultStyle,
				"known", strings.Join(core.StyleNames(), ","))
		}

		pack := core.DefaultPack()
		if path := cmd.String("templates"); path != "" {
			if pack, err = core.LoadTemplatePack(path); err != nil {
				ui.HandleAppError(w, err, theme, t)
				return clierr.Reported(err)
			}
		}

		planner := core.NewPlanner(f.rng, core.NewSynthesizer(f.rng, pack))
		plan := planner.Generate(date, hours, style.PickCount(f.rng))
		dry := cmd.Bool("dry")

		log.Info("commit plan ready",
			"commits", len(plan),
			"hours", hours,
			"style", style.Name,
			"dry", dry)

		printPlan(w, theme, t, plan, style, hours, dry)

		if dry {
			_, _ = fmt.Fprintf(w, "  %s\n", ui.Dim.Sprint(t.GetMessage("alibi.dry_done", 0, nil)))
			_, _ = fmt.Fprintf(w, "  %s\n\n", ui.Dim.Sprint(t.GetMessage("alibi.dry_hint", 0, nil)))
			return nil
		}

		question := fmt.Sprintf("  %s %s %s ", theme.A("?"), t.GetMessage("alibi.confirm", 0, nil), ui.Dim.Sprint(t.GetMessage("ui.yes_no", 0, nil)))
		if !ui.Confirm(cmd.Root().Reader, w, question) {
			_, _ = fmt.Fprintf(w, "\n  %s\n\n", ui.Dim.Sprint(t.GetMessage("alibi.aborted", 0, nil)))
			return nil
		}
		_, _ = fmt.Fprintln(w)

		if err := f.git.ValidateGitConfig(ctx); err != nil {
			ui.HandleAppError(w, err, theme, t)
			return clierr.Reported(err)
		}
		if root, err := f.git.RepoRoot(ctx); err == nil {
			log.Debug("fabricating commits", "repo_root", root, "policy", string(policy))
		}
		before, err := f.git.CommitCount(ctx)
		if err != nil {
			log.Debug("could not count commits", "error", err)
		}

		fabricator := core.NewFabricator(f.git, f.workDir, cfg.Alibi.MarkerDir, cfg.StepDelay())
		var report core.Report
		sp := ui.NewSpinner(w, theme, ui.ClockFrames, spinnerInterval, ui.PhraseSuffix(theme, f.rng, core.WorkingPhrases, phraseEvery))
		fabErr := sp.Run(func() error {
			var err error
			report, err = fabricator.Fabricate(ctx, plan)
			return err
		})

		if fabErr != nil {
			return f.handleFailure(ctx, w, theme, t, fabricator, &report, policy, fabErr)
		}

		if after, err := f.git.CommitCount(ctx); err == nil {
			log.Info("history rewritten", "history_before", before, "history_after", after, "commits", len(plan))
		}

		printSuccess(w, theme, t, f.rng, len(plan), cfg.Alibi.MarkerDir)
		return nil
	}
}

func (f *AlibiCommandFactory) handleFailure(ctx context.Context, w io.Writer, theme ui.Theme, t *i18n.Translations, fabricator *core.Fabricator, report *core.Report, policy core.Policy, fabErr error) error {
	logger.Error(ctx, "fabrication stopped", fabErr, "done", report.Done(), "total", len(report.Steps))

	index := 1
	if failed := report.Failed(); failed != nil {
		index = failed.Index + 1
	}
	ui.PrintFailure(w, theme, t.GetMessage("alibi.step_failed", 0, struct {
		Index   int
		Message string
	}{index, errorMessage(fabErr)}))

	if policy == core.PolicyRollback {
		if err := fabricator.Rollback(ctx, report); err != nil {
			ui.HandleAppError(w, err, theme, t)
			return clierr.Reported(errors.Join(fabErr, err))
		}
		_, _ = fmt.Fprintf(w, "  %s\n\n", ui.Dim.Sprint(t.GetMessage("alibi.rolled_back", 0, nil)))
		return clierr.Reported(fabErr)
	}

	_, _ = fmt.Fprintf(w, "  %s\n\n", ui.Dim.Sprint(t.GetMessage("alibi.kept", 0, struct {
		Done  int
		Total int
	}{report.Done(), len(report.Steps)})))
	return clierr.Reported(fabErr)
}

func errorMessage(err error) string {
	var appErr *domainErrors.AppError
	if errors.As(err, &appErr) {
		return appErr.Message
	}
	return err.Error()
}
