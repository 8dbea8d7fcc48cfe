// Package notify sends desktop notifications
package notify

import (
	"os"
	"runtime"

	"github.com/gen2brain/beeep"

	"github.com/ayoisaiah/meow/internal/apperr"
	"github.com/ayoisaiah/meow/internal/osutil"
)

// Title is shown on every notification.
const Title = "Study with Cat"

var errUnsupported = &apperr.Error{
	Message: "desktop notifications are not supported on %s",
}

// Notifier displays a desktop notification.
type Notifier interface {
	Notify(title, body string) error
}

// SendFunc delivers a notification to the operating system.
type SendFunc func(title, body, icon string) error

// Desktop is a Notifier backed by the platform notification service.
type Desktop struct {
	send    SendFunc
	icon    string
	enabled bool
}

// New returns a desktop notifier. A disabled notifier accepts every
// message and does nothing.
func New(enabled bool, icon string) *Desktop {
	return &Desktop{
		enabled: enabled,
		icon:    icon,
		send:    beeepSend,
	}
}

// NewWithSender creates a notifier with a custom sender (for testing).
func NewWithSender(enabled bool, send SendFunc) *Desktop {
	return &Desktop{
		enabled: enabled,
		send:    send,
	}
}

func (d *Desktop) Notify(title, body string) error {
	if !d.enabled {
		return nil
	}

	return d.send(title, body, d.icon)
}

func beeepSend(title, body, icon string) error {
	if !supported(runtime.GOOS) {
		return errUnsupported.Fmt(runtime.GOOS)
	}

	// an icon that cannot be found is dropped rather than failing the
	// notification
	if icon != "" {
		if _, err := os.Stat(icon); err != nil {
			icon = ""
		}
	}

	return beeep.Notify(title, body, icon)
}

func supported(goos string) bool {
	switch goos {
	case "linux", "freebsd", "netbsd", "openbsd", osutil.Darwin, osutil.Windows:
		return true
	default:
		return false
	}
}
