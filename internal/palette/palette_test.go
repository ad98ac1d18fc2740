package palette

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsEmpty(t *testing.T) {
	assert.True(t, Palette{}.IsEmpty())
	assert.False(t, Palette{Caret: "#ffffff"}.IsEmpty())
}

func TestMerge_LeftBiased(t *testing.T) {
	got := Merge(
		Palette{Background: "#111111"},
		Palette{Background: "#222222", Foreground: "#eeeeee"},
	)
	assert.Equal(t, "#111111", got.Background)
	assert.Equal(t, "#eeeeee", got.Foreground)
}

func TestMerge_FillsPerField(t *testing.T) {
	got := Merge(
		Palette{SelectionBG: "#333333"},
		Palette{SelectionBG: "#444444", SelectionFG: "#555555"},
		Palette{Caret: "#666666"},
	)
	assert.Equal(t, Palette{
		SelectionBG: "#333333",
		SelectionFG: "#555555",
		Caret:       "#666666",
	}, got)
}

func TestMerge_AllEmpty(t *testing.T) {
	assert.True(t, Merge(Palette{}, Palette{}).IsEmpty())
	assert.True(t, Merge().IsEmpty())
}
