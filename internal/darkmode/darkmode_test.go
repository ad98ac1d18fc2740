package darkmode

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type stubDetector struct {
	name string
	dark bool
	ok   bool
}

func (s *stubDetector) Name() string         { return s.name }
func (s *stubDetector) Detect() (bool, bool) { return s.dark, s.ok }

func TestIsDark_FirstAnswerWins(t *testing.T) {
	chain := []Detector{
		&stubDetector{name: "unavailable", ok: false, dark: true},
		&stubDetector{name: "light", ok: true, dark: false},
		&stubDetector{name: "dark", ok: true, dark: true},
	}
	assert.False(t, isDark(nil, chain))
}

func TestIsDark_DefaultsDark(t *testing.T) {
	chain := []Detector{
		&stubDetector{name: "a", ok: false},
		&stubDetector{name: "b", ok: false},
	}
	assert.True(t, isDark(nil, chain))
	assert.True(t, isDark(nil, nil))
}
