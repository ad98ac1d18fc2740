package darkmode

import (
	"github.com/diamondburned/gotk4-adwaita/pkg/adw"
	"github.com/diamondburned/gotk4/pkg/gdk/v4"
)

// AdwaitaDetector queries libadwaita's StyleManager. Only usable once GTK is
// initialized with a display; it answers for the same state the widgets see.
type AdwaitaDetector struct{}

// NewAdwaitaDetector creates a libadwaita-based detector.
func NewAdwaitaDetector() *AdwaitaDetector { return &AdwaitaDetector{} }

// Name implements Detector.
func (*AdwaitaDetector) Name() string { return "libadwaita" }

// Detect implements Detector.
func (*AdwaitaDetector) Detect() (dark bool, ok bool) {
	if gdk.DisplayGetDefault() == nil {
		return false, false
	}
	sm := adw.StyleManagerGetDefault()
	if sm == nil {
		return false, false
	}
	return sm.Dark(), true
}
