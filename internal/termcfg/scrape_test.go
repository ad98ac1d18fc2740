package termcfg

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScrapeKitty(t *testing.T) {
	txt := `
# kitty.conf
font_family      monospace
background       #1d2021
foreground       #d4be98
cursor           #a89984
selection_background #d4be98
selection_foreground #1d2021
`
	pal := ScrapeKitty(txt)
	assert.Equal(t, "#1d2021", pal.Background)
	assert.Equal(t, "#d4be98", pal.Foreground)
	assert.Equal(t, "#a89984", pal.Caret)
	assert.Equal(t, "#d4be98", pal.SelectionBG)
	assert.Equal(t, "#1d2021", pal.SelectionFG)
}

func TestScrapeKitty_PartialAndEmpty(t *testing.T) {
	pal := ScrapeKitty("background #101010\n")
	assert.Equal(t, "#101010", pal.Background)
	assert.Empty(t, pal.Foreground)

	assert.True(t, ScrapeKitty("").IsEmpty())
	assert.True(t, ScrapeKitty("not a kitty config").IsEmpty())
}

func TestScrapeFoot(t *testing.T) {
	txt := `
[colors]
background = #fbf1c7
foreground = #3c3836
cursor = rgb:3c/38/36
selection-background = #d5c4a1
selection-foreground = #3c3836
`
	pal := ScrapeFoot(txt)
	assert.Equal(t, "#fbf1c7", pal.Background)
	assert.Equal(t, "#3c3836", pal.Foreground)
	assert.Equal(t, "#3c3836", pal.Caret)
	assert.Equal(t, "#d5c4a1", pal.SelectionBG)
	assert.Equal(t, "#3c3836", pal.SelectionFG)
}

func TestScrapeFoot_AlternateLiteralForms(t *testing.T) {
	pal := ScrapeFoot("background = 0x1e1e2e\n")
	assert.Equal(t, "#1e1e2e", pal.Background)
}
