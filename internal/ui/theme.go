package ui

import (
	"strconv"
	"strings"

	"github.com/fatih/color"
)

// Theme is the accent palette of one tool run. It is built once and passed to
// every render call.
type Theme struct {
	Name       string
	Hex        string
	Accent     *color.Color
	AccentBold *color.Color
	AccentDim  *color.Color
}

var (
	Dim  = color.New(color.Faint)
	Bold = color.New(color.Bold)
	Warn = color.New(color.FgYellow)
)

const (
	HexGentle = "#7ec9a0"
	HexHonest = "#d4a76a"
	HexSavage = "#f27a93"
	HexAlibi  = "#5F9EA0"
	HexYeet   = "#6C5CE7"
)

// NewTheme builds a theme from a #rrggbb colour. Malformed input falls back
// to white.
func NewTheme(name, hex string) Theme {
	r, g, b := parseHex(hex)
	return Theme{
		Name:       name,
		Hex:        hex,
		Accent:     color.RGB(r, g, b),
		AccentBold: color.RGB(r, g, b).Add(color.Bold),
		AccentDim:  color.RGB(r, g, b).Add(color.Faint),
	}
}

func parseHex(hex string) (int, int, int) {
	hex = strings.TrimPrefix(hex, "#")
	if len(hex) != 6 {
		return 255, 255, 255
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return 255, 255, 255
	}
	return int(v >> 16 & 0xff), int(v >> 8 & 0xff), int(v & 0xff)
}

func (t Theme) A(s string) string  { return t.Accent.Sprint(s) }
func (t Theme) AB(s string) string { return t.AccentBold.Sprint(s) }
func (t Theme) AD(s string) string { return t.AccentDim.Sprint(s) }
