package timer

import "time"

// tickInterval is the delay between two renders of the countdown.
const tickInterval = time.Second

// Countdown renders a once-per-second decreasing sequence of remaining
// seconds until it reaches zero or is cancelled. Each Run starts a new
// sequence; a finished or cancelled sequence cannot be restarted.
type Countdown struct {
	sched   Scheduler
	render  func(string)
	running func() bool
	done    func()

	pending   Handle
	remaining int
	total     int
}

// NewCountdown creates a countdown. render receives each MM:SS value,
// running is consulted before every tick and done is called once when a
// sequence reaches zero.
func NewCountdown(
	sched Scheduler,
	render func(string),
	running func() bool,
	done func(),
) *Countdown {
	return &Countdown{
		sched:   sched,
		render:  render,
		running: running,
		done:    done,
	}
}

// Run begins a new sequence from seconds, replacing any sequence in
// progress.
func (c *Countdown) Run(seconds int) {
	if seconds < 0 {
		seconds = 0
	}

	c.Cancel()

	c.total = seconds
	c.remaining = seconds

	c.tick(seconds)
}

func (c *Countdown) tick(seconds int) {
	c.pending = 0

	if !c.running() {
		return
	}

	c.remaining = seconds
	c.render(Format(seconds))

	if seconds > 0 {
		c.pending = c.sched.Schedule(tickInterval, func() {
			c.tick(seconds - 1)
		})

		return
	}

	c.done()
}

// Cancel drops the pending tick, if any.
func (c *Countdown) Cancel() {
	if c.pending == 0 {
		return
	}

	c.sched.Cancel(c.pending)
	c.pending = 0
}

// Clear cancels the sequence and zeroes the remaining time.
func (c *Countdown) Clear() {
	c.Cancel()

	c.remaining = 0
	c.total = 0
}

// Remaining returns the last rendered number of seconds.
func (c *Countdown) Remaining() int {
	return c.remaining
}

// Total returns the length of the current sequence in seconds.
func (c *Countdown) Total() int {
	return c.total
}

// Ticking reports whether a tick is scheduled.
func (c *Countdown) Ticking() bool {
	return c.pending != 0
}
