package yeet

import (
	"fmt"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var byteUnits = []string{"B", "KB", "MB", "GB", "TB"}

// FormatBytes renders n in powers of 1024 with one decimal above plain
// bytes. Anything past TB stays in TB.
func FormatBytes(n int64) string {
	if n <= 0 {
		return "0 B"
	}
	value := float64(n)
	i := 0
	for value >= 1024 && i < len(byteUnits)-1 {
		value /= 1024
		i++
	}
	if i == 0 {
		return fmt.Sprintf("%d B", n)
	}
	return fmt.Sprintf("%.1f %s", value, byteUnits[i])
}

// CountFormatter groups digits the way tag's locale does.
type CountFormatter struct {
	p *message.Printer
}

func NewCountFormatter(tag language.Tag) CountFormatter {
	return CountFormatter{p: message.NewPrinter(tag)}
}

func (f CountFormatter) Format(n int) string {
	return f.p.Sprintf("%d", n)
}
