package darkmode

import (
	"github.com/godbus/dbus/v5"
)

// Color-scheme values defined by the org.freedesktop.appearance namespace.
const (
	schemeNoPreference uint32 = 0
	schemePreferDark   uint32 = 1
	schemePreferLight  uint32 = 2
)

// PortalDetector reads org.freedesktop.appearance color-scheme from the XDG
// settings portal on the session bus. Works without a GTK display.
type PortalDetector struct{}

// NewPortalDetector creates a settings-portal detector.
func NewPortalDetector() *PortalDetector { return &PortalDetector{} }

// Name implements Detector.
func (*PortalDetector) Name() string { return "xdg-portal" }

// Detect implements Detector.
func (*PortalDetector) Detect() (dark bool, ok bool) {
	conn, err := dbus.SessionBus()
	if err != nil {
		return false, false
	}

	obj := conn.Object("org.freedesktop.portal.Desktop", "/org/freedesktop/portal/desktop")
	var out dbus.Variant
	err = obj.Call("org.freedesktop.portal.Settings.Read", 0,
		"org.freedesktop.appearance", "color-scheme").Store(&out)
	if err != nil {
		return false, false
	}

	// The portal wraps the value in nested variants.
	value := out.Value()
	for {
		v, isVariant := value.(dbus.Variant)
		if !isVariant {
			break
		}
		value = v.Value()
	}

	scheme, isUint := value.(uint32)
	if !isUint {
		return false, false
	}
	switch scheme {
	case schemePreferDark:
		return true, true
	case schemePreferLight:
		return false, true
	default:
		return false, false
	}
}
