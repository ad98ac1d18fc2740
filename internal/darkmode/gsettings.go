package darkmode

import (
	"os/exec"
	"strings"
)

// GsettingsDetector shells out to gsettings, the last resort for GNOME-based
// desktops without a reachable portal.
type GsettingsDetector struct{}

// NewGsettingsDetector creates a gsettings-based detector.
func NewGsettingsDetector() *GsettingsDetector { return &GsettingsDetector{} }

// Name implements Detector.
func (*GsettingsDetector) Name() string { return "gsettings" }

// Detect implements Detector.
func (*GsettingsDetector) Detect() (dark bool, ok bool) {
	if _, err := exec.LookPath("gsettings"); err != nil {
		return false, false
	}

	output, err := exec.Command("gsettings", "get", "org.gnome.desktop.interface", "color-scheme").Output()
	if err != nil {
		return false, false
	}

	// Output is like "'prefer-dark'\n"; strip quotes and whitespace.
	result := strings.Trim(strings.TrimSpace(string(output)), "'\"")
	switch result {
	case "prefer-dark":
		return true, true
	case "prefer-light":
		return false, true
	default:
		return false, false
	}
}
