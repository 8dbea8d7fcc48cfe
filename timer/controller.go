package timer

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/davecgh/go-spew/spew"

	"github.com/ayoisaiah/meow/internal/config"
)

const (
	appTitle     = "Meow Learning"
	notifyTitle  = "Study with Cat"
	checkMark    = "✓"
	cycleTitle   = "Congratulations!"
	cycleMessage = "You've completed a full Pomodoro cycle!\n" +
		"Take a longer break and reflect on what you've learned."
)

var titles = map[config.SessionType]string{
	config.Work:       appTitle,
	config.ShortBreak: "Short Break!",
	config.LongBreak:  "Long Break!",
}

var messages = map[config.SessionType]string{
	config.Work:       "Focus time! 25 minutes of concentrated study.",
	config.ShortBreak: "Quick 5-minute break! Stand up and stretch.",
	config.LongBreak:  "Time for a long break! Take 15 minutes to refresh.",
}

// Collaborators are the side effects available to a Controller. Nil fields
// are replaced with no-ops.
type Collaborators struct {
	Notifier Notifier
	Alarm    Alarm
	Ack      Acknowledger
	Hook     Hook
	Dispatch Dispatcher
	Report   func(Effect)
}

// Controller advances a Pomodoro cycle. It owns the repetition count and the
// running flag and must only be used from one goroutine.
type Controller struct {
	surface   Surface
	countdown *Countdown
	fx        Collaborators
	reps      int
	tip       int
	running   bool
}

// NewController creates a controller in the idle state and renders it.
func NewController(
	surface Surface,
	sched Scheduler,
	fx Collaborators,
) *Controller {
	if fx.Notifier == nil {
		fx.Notifier = noopNotifier{}
	}

	if fx.Alarm == nil {
		fx.Alarm = noopAlarm{}
	}

	if fx.Ack == nil {
		fx.Ack = noopAcknowledger{}
	}

	if fx.Report == nil {
		fx.Report = LogEffect
	}

	c := &Controller{
		surface: surface,
		fx:      fx,
	}

	c.countdown = NewCountdown(
		sched,
		surface.SetTimer,
		c.Running,
		c.intervalComplete,
	)

	c.idle()
	c.surface.SetTip(tipText(c.tip))

	return c
}

// Start begins the next interval from its full duration.
func (c *Controller) Start() {
	c.running = true
	c.surface.SetControls(false, true)

	c.reps++

	name := Classify(c.reps)

	c.countdown.Run(DurationSeconds(name))
	c.surface.SetTitle(titles[name])

	msg := messages[name]
	c.effect(EffectNotify, func() error {
		return c.fx.Notifier.Notify(notifyTitle, msg)
	})

	if name == config.Work {
		c.surface.SetSession(sessionLabel(sessionNumber(c.reps)))
	}

	slog.Debug("interval started",
		slog.Int("reps", c.reps),
		slog.String("session", string(name)),
	)
}

// Pause stops the countdown. The paused interval is abandoned: the next
// Start begins a new interval.
func (c *Controller) Pause() {
	if !c.running {
		return
	}

	c.running = false
	c.surface.SetControls(true, false)
	c.countdown.Cancel()

	slog.Debug("interval paused", slog.Int("reps", c.reps))
}

// Reset returns the controller to its idle state from any state.
func (c *Controller) Reset() {
	c.countdown.Clear()
	c.idle()
	c.nextTip()

	slog.Debug("timer reset")
}

// idle restores the display and counters shown at startup.
func (c *Controller) idle() {
	c.reps = 0
	c.running = false

	c.surface.SetTimer(Format(0))
	c.surface.SetTitle(appTitle)
	c.surface.SetMarks("")
	c.surface.SetSession(sessionLabel(0))
	c.surface.SetControls(true, false)
}

// intervalComplete is called by the countdown when it reaches zero.
func (c *Controller) intervalComplete() {
	name := Classify(c.reps)

	c.running = false

	c.effect(EffectAlarm, c.fx.Alarm.Play)

	if c.fx.Hook != nil {
		c.effect(EffectHook, func() error {
			return c.fx.Hook.Run(context.Background(), name)
		})
	}

	slog.Debug("interval complete", slog.String("state", spew.Sdump(c.Snapshot())))

	if name == config.Work {
		c.surface.SetControls(true, false)
		return
	}

	completed := completedWorkSessions(c.reps)
	c.surface.SetMarks(strings.Repeat(checkMark, completed))

	if completed >= config.CycleLength {
		c.effect(EffectAck, func() error {
			return c.fx.Ack.Acknowledge(cycleTitle, cycleMessage)
		})

		c.Reset()

		return
	}

	c.nextTip()
	c.surface.SetControls(true, false)
}

func (c *Controller) nextTip() {
	c.tip = (c.tip + 1) % len(Tips)
	c.surface.SetTip(tipText(c.tip))
}

// effect runs a side effect through the dispatcher, or inline when there is
// none.
func (c *Controller) effect(kind EffectKind, fn func() error) {
	if c.fx.Dispatch != nil {
		c.fx.Dispatch(kind, fn)
		return
	}

	c.Report(Effect{Kind: kind, Err: fn()})
}

// Report delivers the outcome of a side effect.
func (c *Controller) Report(e Effect) {
	c.fx.Report(e)
}

// Running reports whether a countdown is in progress.
func (c *Controller) Running() bool {
	return c.running
}

// Reps returns the number of intervals started since the last reset.
func (c *Controller) Reps() int {
	return c.reps
}

// Current returns the kind of the latest interval. It is Work when the
// timer is idle.
func (c *Controller) Current() config.SessionType {
	if c.reps == 0 {
		return config.Work
	}

	return Classify(c.reps)
}

// TipIndex returns the position of the tip on display.
func (c *Controller) TipIndex() int {
	return c.tip
}

// Progress returns the fraction of the current interval that has elapsed.
func (c *Controller) Progress() float64 {
	total := c.countdown.Total()
	if total == 0 {
		return 0
	}

	return 1 - float64(c.countdown.Remaining())/float64(total)
}

// Remaining returns the seconds left in the current interval.
func (c *Controller) Remaining() int {
	return c.countdown.Remaining()
}

// Snapshot is a copy of the controller state for logging and tests.
type Snapshot struct {
	Current   config.SessionType
	Reps      int
	Completed int
	Remaining int
	Tip       int
	Running   bool
}

func (c *Controller) Snapshot() Snapshot {
	return Snapshot{
		Current:   c.Current(),
		Reps:      c.reps,
		Completed: completedWorkSessions(c.reps),
		Remaining: c.countdown.Remaining(),
		Tip:       c.tip,
		Running:   c.running,
	}
}

func sessionLabel(n int) string {
	return fmt.Sprintf("Session: %d/%d", n, config.CycleLength)
}
