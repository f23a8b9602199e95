package ui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
)

func TestVoidArt_IsSymmetric(t *testing.T) {
	rows := strings.Split(VoidArt(NewTheme("yeet", HexYeet)), "\n")

	assert.Len(t, rows, 11)
	for i := 1; i < len(rows)-1; i++ {
		assert.Equal(t, 6+31, lipgloss.Width(rows[i]), "row %d", i)
		if i != 5 {
			assert.Equal(t, rows[i], rows[len(rows)-1-i])
		}
	}
	assert.Contains(t, rows[5], "y e e t e d")
}

func TestArtBanners(t *testing.T) {
	assert.Contains(t, ShredderArt(NewTheme("alibi", HexAlibi)), "a l i b i")
	assert.Contains(t, FireArt(NewTheme("savage", HexSavage)), "r o a s t e d")
}
