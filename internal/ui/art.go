package ui

import "strings"

func ShredderArt(t Theme) string {
	return strings.Join([]string{
		"",
		"        " + t.A("┌─────────┐"),
		"        " + t.A("│") + " " + t.AD("░░░░░░░") + " " + t.A("│"),
		"        " + t.A("│") + " " + t.AD("░░░░░░░") + " " + t.A("│"),
		"        " + t.A("└────┬────┘"),
		"        " + t.A("═════╧═════"),
		"        " + t.A("║║║║║║║║║║║"),
		"        " + t.AD("│││││││││││"),
		"        " + t.AD("││││ ││││││"),
		"        " + t.AD("│││  │ ││ │"),
		"        " + t.AD("││     │  │"),
		"        " + t.AD("│         │"),
		"",
		"         " + t.AB("a l i b i"),
		"",
	}, "\n")
}

// FireArt is a column of flames with embers above it.
func FireArt(t Theme) string {
	a, ad := t.A, t.AD
	return strings.Join([]string{
		"",
		"                " + ad("·") + "                   " + ad("·"),
		"        " + ad("·") + "               " + ad("·"),
		"                    " + ad("·") + "         " + ad("·"),
		"            " + ad("·") + "     " + ad("°") + "     " + ad("·"),
		"        " + ad("°") + "       " + a("░") + "       " + ad("°"),
		"              " + a("░") + " " + a("▒") + " " + a("░"),
		"            " + a("░") + " " + a("▒") + " " + a("▓") + " " + a("▒") + " " + a("░"),
		"          " + a("▒") + " " + a("▓") + " " + a("█") + " " + a("▓") + " " + a("█") + " " + a("▓") + " " + a("▒"),
		"            " + a("▓") + " " + a("█") + " " + a("▓") + " " + a("█") + " " + a("▓"),
		"              " + a("█") + " " + a("▓") + " " + a("█"),
		"                " + a("▓"),
		"",
		"           " + t.AB("r o a s t e d"),
		"",
	}, "\n")
}

// VoidArt is a mirrored portal; every row is 31 cells wide after the
// indent.
func VoidArt(t Theme) string {
	const indent = "      "
	a, ad := t.A, t.AD

	dotRow := indent + ad("·  ·  ·  ·  ·  ·  ·  ·  ·  ·  ·")
	liteRow := indent + ad("·") + "  " + a("░  ░  ░  ░  ░  ░  ░  ░  ░") + "  " + ad("·")
	fillRow := indent + ad("·") + "  " + a("░") + "  " + a("▒  ▒  ▒  ▒  ▒  ▒  ▒") + "  " + a("░") + "  " + ad("·")
	openRow := indent + ad("·") + "  " + a("░") + "  " + a("▒") + strings.Repeat(" ", 17) + a("▒") + "  " + a("░") + "  " + ad("·")
	textRow := indent + ad("·") + "  " + a("░") + "  " + a("▒") + "   " + t.AB("y e e t e d") + "   " + a("▒") + "  " + a("░") + "  " + ad("·")

	return strings.Join([]string{
		"", dotRow, liteRow, fillRow, openRow,
		textRow,
		openRow, fillRow, liteRow, dotRow, "",
	}, "\n")
}
