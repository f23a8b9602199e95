package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseHex(t *testing.T) {
	tests := []struct {
		hex     string
		r, g, b int
	}{
		{HexAlibi, 95, 158, 160},
		{HexYeet, 108, 92, 231},
		{HexSavage, 242, 122, 147},
		{"7ec9a0", 126, 201, 160},
		{"#zzzzzz", 255, 255, 255},
		{"#fff", 255, 255, 255},
	}

	for _, tt := range tests {
		t.Run(tt.hex, func(t *testing.T) {
			r, g, b := parseHex(tt.hex)
			assert.Equal(t, []int{tt.r, tt.g, tt.b}, []int{r, g, b})
		})
	}
}

func TestNewTheme(t *testing.T) {
	theme := NewTheme("honest", HexHonest)

	assert.Equal(t, "honest", theme.Name)
	assert.Equal(t, HexHonest, theme.Hex)
	assert.NotNil(t, theme.Accent)
	assert.NotNil(t, theme.AccentBold)
	assert.NotNil(t, theme.AccentDim)
	assert.Contains(t, theme.A("ROAST"), "ROAST")
}
