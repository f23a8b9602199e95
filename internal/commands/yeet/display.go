package yeet

import (
	"fmt"
	"io"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/thomas-vilte/mischief/internal/i18n"
	"github.com/thomas-vilte/mischief/internal/ui"
	"github.com/thomas-vilte/mischief/internal/version"
	core "github.com/thomas-vilte/mischief/internal/yeet"
)

func printTargets(w io.Writer, theme ui.Theme, t *i18n.Translations, counts core.CountFormatter, targets []core.Target, everything, dry bool) {
	var modes []string
	if everything {
		modes = append(modes, t.GetMessage("yeet.mode_everything", 0, nil))
	}
	if dry {
		modes = append(modes, t.GetMessage("yeet.mode_dry", 0, nil))
	}

	left := theme.AB("YEET") + " " + ui.Dim.Sprint(version.FullVersion())
	right := ""
	if len(modes) > 0 {
		right = ui.Dim.Sprint(t.GetMessage("yeet.label_mode", 0, nil)) + " " + theme.A(strings.Join(modes, " + "))
	}
	_, _ = fmt.Fprintln(w, "\n"+ui.Box(theme, []string{ui.HeaderLine(left, right, ui.BoxWidth-2)}, ui.BoxWidth))

	if len(targets) == 1 {
		target := targets[0]
		_, _ = fmt.Fprintf(w, "\n  %s %s\n", ui.Dim.Sprint(t.GetMessage("yeet.target_acquired", 0, nil)), ui.Bold.Sprint(target.Name+"/"))
		_, _ = fmt.Fprintf(w, "  %s  %s\n", ui.Dim.Sprint(t.GetMessage("yeet.label_size", 0, nil)), theme.A(core.FormatBytes(target.Size)))
		_, _ = fmt.Fprintf(w, "  %s %s\n", ui.Dim.Sprint(t.GetMessage("yeet.label_files", 0, nil)), theme.A(counts.Format(target.Count)))
		_, _ = fmt.Fprintf(w, "  %s %s\n\n", ui.Dim.Sprint(t.GetMessage("yeet.label_prognosis", 0, nil)), theme.AD(t.GetMessage("yeet.annihilation", 0, nil)))
		return
	}

	_, _ = fmt.Fprintf(w, "\n  %s\n", ui.Dim.Sprint(t.GetMessage("yeet.targets_acquired", 0, nil)))
	for i, target := range targets {
		branch := "├──"
		if i == len(targets)-1 {
			branch = "└──"
		}
		_, _ = fmt.Fprintf(w, "  %s %s  %s %s\n",
			theme.A(branch),
			ui.Bold.Sprint(target.Name+"/"),
			theme.A(fmt.Sprintf("%-10s", core.FormatBytes(target.Size))),
			ui.Dim.Sprint(t.GetMessage("yeet.file_count", target.Count, struct{ Count string }{counts.Format(target.Count)})))
	}

	size, count := core.Totals(targets)
	_, _ = fmt.Fprintf(w, "\n  %s %s %s %s %s\n\n",
		ui.Dim.Sprint(t.GetMessage("yeet.label_total", 0, nil)),
		theme.A(core.FormatBytes(size)),
		ui.Dim.Sprint(t.GetMessage("yeet.across", 0, nil)),
		theme.A(counts.Format(count)),
		ui.Dim.Sprint(t.GetMessage("yeet.files", 0, nil)))
}

func printSummary(w io.Writer, theme ui.Theme, t *i18n.Translations, rng *rand.Rand, counts core.CountFormatter, targets []core.Target, elapsed time.Duration) {
	_, _ = fmt.Fprintln(w)
	_, _ = fmt.Fprintln(w, ui.VoidArt(theme))

	what := targets[0].Name
	if len(targets) > 1 {
		what = t.GetMessage("yeet.directories", len(targets), struct{ Count int }{len(targets)})
	}
	tip := t.GetMessage("yeet.tip_gone", 0, nil)
	if core.HasTarget(targets, core.DefaultTarget) {
		tip = t.GetMessage("yeet.tip_npm", 0, nil)
	}

	size, count := core.Totals(targets)
	labels := []string{
		t.GetMessage("yeet.label_freed", 0, nil),
		t.GetMessage("yeet.label_files", 0, nil),
		t.GetMessage("yeet.label_time", 0, nil),
	}
	width := 0
	for _, l := range labels {
		width = max(width, len([]rune(l)))
	}
	label := func(i int) string {
		return ui.Dim.Sprint(fmt.Sprintf("%-*s", width+2, labels[i]))
	}

	lines := []string{
		"",
		t.GetMessage("yeet.been_yeeted", len(targets), struct{ What string }{what}),
		theme.AD(ui.Pick(rng, core.DonePhrases)),
		"",
		label(0) + theme.A(core.FormatBytes(size)),
		label(1) + theme.A(counts.Format(count)),
		label(2) + theme.A(fmt.Sprintf("%.1fs", elapsed.Seconds())),
		"",
		ui.Dim.Sprint(tip),
		theme.A(t.GetMessage("yeet.next", 0, nil)),
		"",
	}
	_, _ = fmt.Fprintln(w, "\n"+ui.Box(theme, lines, ui.BoxWidth))
}
