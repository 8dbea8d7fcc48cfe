package timer

import (
	"context"
	"log/slog"

	"github.com/ayoisaiah/meow/internal/config"
)

// EffectKind names a best-effort side effect of the timer.
type EffectKind string

const (
	EffectNotify EffectKind = "notify"
	EffectAlarm  EffectKind = "alarm"
	EffectAck    EffectKind = "acknowledge"
	EffectHook   EffectKind = "session_cmd"
)

// Effect is the outcome of a side effect. Failures never change the timer
// state.
type Effect struct {
	Err  error
	Kind EffectKind
}

// Failed reports whether the side effect returned an error.
func (e Effect) Failed() bool {
	return e.Err != nil
}

// Notifier shows a desktop notification.
type Notifier interface {
	Notify(title, body string) error
}

// Alarm plays the end-of-interval sound.
type Alarm interface {
	Play() error
}

// Acknowledger shows a message that must be dismissed by the user.
type Acknowledger interface {
	Acknowledge(title, body string) error
}

// Hook runs after an interval completes.
type Hook interface {
	Run(ctx context.Context, name config.SessionType) error
}

// Dispatcher executes a side effect and arranges for its outcome to be
// reported. The default runs fn immediately.
type Dispatcher func(kind EffectKind, fn func() error)

// LogEffect records the outcome of a side effect.
func LogEffect(e Effect) {
	if e.Failed() {
		slog.Warn("side effect failed",
			slog.String("effect", string(e.Kind)),
			slog.Any("error", e.Err),
		)

		return
	}

	slog.Debug("side effect done", slog.String("effect", string(e.Kind)))
}

type noopNotifier struct{}

func (noopNotifier) Notify(_, _ string) error { return nil }

type noopAlarm struct{}

func (noopAlarm) Play() error { return nil }

type noopAcknowledger struct{}

func (noopAcknowledger) Acknowledge(_, _ string) error { return nil }
