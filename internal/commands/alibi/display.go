package alibi

import (
	"fmt"
	"io"
	"math/rand/v2"
	"strings"

	core "github.com/thomas-vilte/mischief/internal/alibi"
	"github.com/thomas-vilte/mischief/internal/i18n"
	"github.com/thomas-vilte/mischief/internal/ui"
	"github.com/thomas-vilte/mischief/internal/version"
)

func printPlan(w io.Writer, theme ui.Theme, t *i18n.Translations, plan []core.PlanEntry, style core.Style, hours int, dry bool) {
	left := theme.AB("ALIBI") + " " + ui.Dim.Sprint(version.FullVersion())
	right := ui.Dim.Sprint(t.GetMessage("alibi.label_style", 0, nil)) + " " + theme.A(style.Label)
	if dry {
		right = ui.Dim.Sprint(t.GetMessage("alibi.label_mode", 0, nil)) + " " + theme.A(t.GetMessage("alibi.dry_run", 0, nil))
	}
	_, _ = fmt.Fprintln(w, "\n"+ui.Box(theme, []string{ui.HeaderLine(left, right, ui.BoxWidth-2)}, ui.BoxWidth))

	if len(plan) == 0 {
		return
	}
	first, last := plan[0].Timestamp, plan[len(plan)-1].Timestamp

	labels := []string{
		t.GetMessage("alibi.label_date", 0, nil),
		t.GetMessage("alibi.label_hours", 0, nil),
		t.GetMessage("alibi.label_commits", 0, nil),
	}
	width := 0
	for _, l := range labels {
		width = max(width, len([]rune(l)))
	}
	label := func(i int) string {
		return ui.Dim.Sprint(fmt.Sprintf("%-*s", width+1, labels[i]))
	}

	_, _ = fmt.Fprintln(w)
	_, _ = fmt.Fprintf(w, "  %s%s\n", label(0), first.Format(dateLayout))
	_, _ = fmt.Fprintf(w, "  %s%d (%s - %s)\n", label(1), hours, first.Format(clockLayout), last.Format(clockLayout))
	_, _ = fmt.Fprintf(w, "  %s%s\n\n", label(2), theme.A(fmt.Sprint(len(plan))))

	_, _ = fmt.Fprintf(w, "  %s\n", ui.Dim.Sprint(t.GetMessage("alibi.label_timeline", 0, nil)))
	lastHour := -1
	for _, entry := range plan {
		hour := entry.Timestamp.Hour()
		if lastHour < 12 && hour >= 13 {
			_, _ = fmt.Fprintf(w, "  %s%s\n", strings.Repeat(" ", 8), ui.Dim.Sprint(t.GetMessage("alibi.lunch_break", 0, nil)))
		}
		lastHour = hour
		_, _ = fmt.Fprintf(w, "  %s  %s %s\n", theme.A(entry.Timestamp.Format(clockLayout)), theme.A("○"), entry.Message)
	}
	_, _ = fmt.Fprintln(w)
}

func printSuccess(w io.Writer, theme ui.Theme, t *i18n.Translations, rng *rand.Rand, count int, markerDir string) {
	_, _ = fmt.Fprintln(w, ui.ShredderArt(theme))

	lines := []string{
		"",
		t.GetMessage("alibi.fabricated", count, struct{ Count string }{theme.A(fmt.Sprint(count))}),
		theme.AD(ui.Pick(rng, core.DonePhrases)),
		"",
		ui.Dim.Sprint(t.GetMessage("alibi.files_in", 0, nil)) + " " + theme.A(strings.TrimSuffix(markerDir, "/")+"/"),
		t.GetMessage("alibi.run_log", 0, struct{ Cmd string }{ui.Bold.Sprint("git log")}),
		"",
		theme.AD(t.GetMessage("alibi.disclaimer_1", 0, nil)),
		theme.AD(t.GetMessage("alibi.disclaimer_2", 0, nil)),
		"",
	}
	_, _ = fmt.Fprintln(w, ui.Box(theme, lines, ui.BoxWidth))
}
