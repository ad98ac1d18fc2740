package color

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize_AcceptedForms(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"#1e1e2e", "#1e1e2e"},
		{"#1e1e2eff", "#1e1e2e"}, // alpha dropped
		{"0x1e1e2e", "#1e1e2e"},
		{"rgb:1e/1e/2e", "#1e1e2e"},
		{"  #1e1e2e  ", "#1e1e2e"},
		{"#AABBCC", "#AABBCC"}, // case preserved
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expected, Normalize(tt.input), "input %q", tt.input)
	}
}

func TestNormalize_SameColorAllForms(t *testing.T) {
	forms := []string{"#a1b2c3", "#a1b2c3ff", "0xa1b2c3", "rgb:a1/b2/c3"}
	for _, f := range forms {
		assert.Equal(t, "#a1b2c3", Normalize(f), "form %q", f)
	}
}

func TestNormalize_Rejected(t *testing.T) {
	rejected := []string{
		"",
		"   ",
		"#12345",    // too short
		"#1234567",  // odd length
		"rgb:12/34", // missing channel
		"rgb:1/2/3", // channels not two digits
		"0x123",     // too short
		"1e1e2e",    // bare hex not accepted
		"red",       // named colors not accepted
	}
	for _, s := range rejected {
		assert.Empty(t, Normalize(s), "input %q", s)
	}
}

func TestBlend_Endpoints(t *testing.T) {
	assert.Equal(t, "#102030", Blend("#102030", "#ffffff", 0.0))
	assert.Equal(t, "#ffffff", Blend("#102030", "#ffffff", 1.0))
}

func TestBlend_Midpoint(t *testing.T) {
	// 0x00..0xff midpoint rounds to 0x80
	assert.Equal(t, "#808080", Blend("#000000", "#ffffff", 0.5))
}

func TestBlend_Clamped(t *testing.T) {
	for _, tfrac := range []float64{-0.5, 0.0, 0.25, 0.75, 1.0, 1.5} {
		out := Blend("#000000", "#ffffff", tfrac)
		assert.Len(t, out, 7)
		assert.Equal(t, byte('#'), out[0])
	}
}

func TestBlend_MalformedFallsBack(t *testing.T) {
	// Malformed inputs blend between the fixed dark/light pair.
	assert.Equal(t, "#1e1e1e", Blend("nonsense", "#ffffff", 0.0))
	assert.Equal(t, "#e0e0e0", Blend("#ffffff", "nonsense", 1.0))
}

func TestBlend_BareHexTolerated(t *testing.T) {
	assert.Equal(t, "#102030", Blend("102030", "ffffff", 0.0))
}
