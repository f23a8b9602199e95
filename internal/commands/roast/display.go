package roast

import (
	"fmt"
	"io"
	"math/rand/v2"
	"strings"

	"github.com/thomas-vilte/mischief/internal/i18n"
	core "github.com/thomas-vilte/mischief/internal/roast"
	"github.com/thomas-vilte/mischief/internal/ui"
	"github.com/thomas-vilte/mischief/internal/version"
)

const (
	roastWrap   = 55
	verdictWrap = 48
)

func printResult(w io.Writer, theme ui.Theme, t *i18n.Translations, rng *rand.Rand, severity core.Severity, input core.Input, resp core.Response) {
	left := theme.AB("ROAST") + " " + ui.Dim.Sprint(version.FullVersion())
	right := ui.Dim.Sprint(t.GetMessage("roast.label_severity", 0, nil)) + " " + theme.A(severity.Label)
	_, _ = fmt.Fprintln(w, "\n"+ui.Box(theme, []string{ui.HeaderLine(left, right, ui.BoxWidth-2)}, ui.BoxWidth))

	if input.Filename != "" {
		line := fmt.Sprintf("  %s %s %s",
			ui.Dim.Sprint(t.GetMessage("roast.label_file", 0, nil)),
			ui.Bold.Sprint(input.Filename),
			ui.Dim.Sprint(t.GetMessage("roast.lines", input.Lines, struct{ Count int }{input.Lines})))
		if resp.Cached {
			line += " " + theme.AD(t.GetMessage("roast.cached", 0, nil))
		}
		_, _ = fmt.Fprintf(w, "\n%s\n", line)
	}

	_, _ = fmt.Fprintln(w)
	for _, r := range resp.Result.Roasts {
		_, _ = fmt.Fprintf(w, "  %s %s\n",
			theme.A(t.GetMessage("roast.line", 0, struct{ Line string }{r.LineLabel()})),
			ui.Bold.Sprint(r.Target))
		for _, line := range ui.WordWrap(r.Roast, roastWrap) {
			_, _ = fmt.Fprintf(w, "  %s %s%s%s\n", theme.A(">"), ui.Dim.Sprint(`"`), line, ui.Dim.Sprint(`"`))
		}
		if r.Suggestion != "" {
			_, _ = fmt.Fprintf(w, "  %s %s\n", ui.Dim.Sprint("  ↳"), ui.Dim.Sprint(r.Suggestion))
		}
		_, _ = fmt.Fprintln(w)
	}

	_, _ = fmt.Fprintln(w, ui.FireArt(theme))

	count := len(resp.Result.Roasts)
	verdictLabel := t.GetMessage("roast.verdict", 0, nil)
	indent := strings.Repeat(" ", len([]rune(verdictLabel))+1)

	lines := []string{
		"",
		t.GetMessage("roast.served", count, struct{ Count string }{theme.A(fmt.Sprint(count))}),
		ui.Dim.Sprint(ui.Pick(rng, core.DonePhrases)),
		"",
	}
	for i, line := range ui.WordWrap(resp.Result.Verdict, verdictWrap) {
		if i == 0 {
			lines = append(lines, ui.Dim.Sprint(verdictLabel)+" "+line)
		} else {
			lines = append(lines, indent+strings.TrimPrefix(line, " "))
		}
	}
	lines = append(lines, "", theme.AD(t.GetMessage("roast.more", 0, nil)), "")

	_, _ = fmt.Fprintln(w, "\n"+ui.Box(theme, lines, ui.BoxWidth))
}
