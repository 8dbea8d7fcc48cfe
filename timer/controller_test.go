package timer

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ayoisaiah/meow/internal/config"
)

func TestClassify(t *testing.T) {
	testCases := []struct {
		reps int
		want config.SessionType
	}{
		{1, config.Work},
		{2, config.ShortBreak},
		{3, config.Work},
		{4, config.ShortBreak},
		{7, config.Work},
		{8, config.LongBreak},
		{9, config.Work},
		{10, config.ShortBreak},
		{16, config.LongBreak},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.want, Classify(tc.reps), "Classify(%d)", tc.reps)
	}
}

func TestClassifyProperty(t *testing.T) {
	for n := 1; n <= 256; n++ {
		var want config.SessionType

		switch {
		case n%8 == 0:
			want = config.LongBreak
		case n%2 == 0:
			want = config.ShortBreak
		default:
			want = config.Work
		}

		require.Equal(t, want, Classify(n), "Classify(%d)", n)
	}
}

func TestNewControllerIdle(t *testing.T) {
	f := newFixture()

	assert.Equal(t, Board{
		Title:        "Meow Learning",
		Timer:        "00:00",
		Tip:          "Tip: Focus on one topic at a time",
		Session:      "Session: 0/4",
		StartEnabled: true,
	}, f.surface.Board)
	assert.False(t, f.ctrl.Running())
	assert.Zero(t, f.ctrl.Reps())
}

// advanceTo starts intervals, pausing each one, until reps intervals have
// been started.
func advanceTo(f *fixture, reps int) {
	for f.ctrl.Reps() < reps {
		if f.ctrl.Running() {
			f.ctrl.Pause()
		}

		f.ctrl.Start()
	}
}

func TestStartScenarios(t *testing.T) {
	testCases := []struct {
		name    string
		reps    int
		kind    config.SessionType
		seconds int
		timer   string
		title   string
		session string
		message string
	}{
		{
			name:    "first work session",
			reps:    1,
			kind:    config.Work,
			seconds: 1500,
			timer:   "25:00",
			title:   "Meow Learning",
			session: "Session: 1/4",
			message: "Focus time! 25 minutes of concentrated study.",
		},
		{
			name:    "short break",
			reps:    2,
			kind:    config.ShortBreak,
			seconds: 300,
			timer:   "05:00",
			title:   "Short Break!",
			session: "Session: 1/4",
			message: "Quick 5-minute break! Stand up and stretch.",
		},
		{
			name:    "third work session",
			reps:    5,
			kind:    config.Work,
			seconds: 1500,
			timer:   "25:00",
			title:   "Meow Learning",
			session: "Session: 3/4",
			message: "Focus time! 25 minutes of concentrated study.",
		},
		{
			name:    "long break",
			reps:    8,
			kind:    config.LongBreak,
			seconds: 900,
			timer:   "15:00",
			title:   "Long Break!",
			session: "Session: 4/4",
			message: "Time for a long break! Take 15 minutes to refresh.",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			f := newFixture()

			advanceTo(f, tc.reps)

			assert.Equal(t, tc.reps, f.ctrl.Reps())
			assert.Equal(t, tc.kind, f.ctrl.Current())
			assert.Equal(t, tc.seconds, f.ctrl.Remaining())
			assert.Equal(t, tc.timer, f.surface.Timer)
			assert.Equal(t, tc.title, f.surface.Title)
			assert.Equal(t, tc.session, f.surface.Session)
			assert.True(t, f.ctrl.Running())
			assert.False(t, f.surface.StartEnabled)
			assert.True(t, f.surface.PauseEnabled)

			require.NotEmpty(t, f.notifier.sent)
			last := f.notifier.sent[len(f.notifier.sent)-1]
			assert.Equal(t, notification{"Study with Cat", tc.message}, last)
		})
	}
}

func TestStartIncrementsByOne(t *testing.T) {
	f := newFixture()

	for i := 1; i <= 20; i++ {
		f.ctrl.Pause()
		f.ctrl.Start()

		require.Equal(t, i, f.ctrl.Reps())
	}
}

func TestSessionNumberWraps(t *testing.T) {
	f := newFixture()

	advanceTo(f, 9)

	assert.Equal(t, config.Work, f.ctrl.Current())
	assert.Equal(t, "Session: 1/4", f.surface.Session)
}

func TestPause(t *testing.T) {
	f := newFixture()

	f.ctrl.Start()

	for range 10 {
		f.sched.step()
	}

	assert.Equal(t, "24:50", f.surface.Timer)

	f.ctrl.Pause()

	assert.False(t, f.ctrl.Running())
	assert.True(t, f.surface.StartEnabled)
	assert.False(t, f.surface.PauseEnabled)
	assert.False(t, f.sched.step(), "no tick after pause")
	assert.Equal(t, "24:50", f.surface.Timer)
	assert.Equal(t, 1490, f.ctrl.Remaining())

	// the paused interval is abandoned, not resumed
	f.ctrl.Start()

	assert.Equal(t, 2, f.ctrl.Reps())
	assert.Equal(t, "05:00", f.surface.Timer)
	assert.Equal(t, 300, f.ctrl.Remaining())
}

func TestPauseWhenIdle(t *testing.T) {
	f := newFixture()

	before := f.surface.Board

	f.ctrl.Pause()

	assert.Equal(t, before, f.surface.Board)
	assert.Zero(t, f.ctrl.Reps())
}

func TestReset(t *testing.T) {
	testCases := []struct {
		name  string
		setup func(f *fixture)
	}{
		{
			name:  "idle",
			setup: func(_ *fixture) {},
		},
		{
			name: "running",
			setup: func(f *fixture) {
				f.ctrl.Start()
				f.sched.step()
			},
		},
		{
			name: "paused",
			setup: func(f *fixture) {
				f.ctrl.Start()
				f.ctrl.Pause()
			},
		},
		{
			name: "after two completed sessions",
			setup: func(f *fixture) {
				for range 4 {
					f.startAndFinish()
				}
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			f := newFixture()

			tc.setup(f)

			tip := f.ctrl.TipIndex()

			f.ctrl.Reset()

			assert.Zero(t, f.ctrl.Reps())
			assert.False(t, f.ctrl.Running())
			assert.Zero(t, f.ctrl.Remaining())
			assert.Equal(t, "00:00", f.surface.Timer)
			assert.Equal(t, "Meow Learning", f.surface.Title)
			assert.Equal(t, "Session: 0/4", f.surface.Session)
			assert.Empty(t, f.surface.Marks)
			assert.True(t, f.surface.StartEnabled)
			assert.False(t, f.surface.PauseEnabled)
			assert.Equal(t, (tip+1)%len(Tips), f.ctrl.TipIndex())
			assert.False(t, f.sched.step(), "no tick after reset")
		})
	}
}

func TestWorkCompletion(t *testing.T) {
	f := newFixture()
	f.surface.timers = nil

	f.startAndFinish()

	assert.Equal(t, "00:00", f.surface.Timer)
	assert.Len(t, f.surface.timers, 1501)
	assert.Equal(t, 1, f.alarm.plays)
	assert.Equal(t, []config.SessionType{config.Work}, f.hook.runs)
	assert.False(t, f.ctrl.Running())
	assert.True(t, f.surface.StartEnabled)
	assert.False(t, f.surface.PauseEnabled)
	assert.Empty(t, f.surface.Marks, "marks wait for the paired break")
	assert.Zero(t, f.ctrl.TipIndex())
}

func TestBreakCompletion(t *testing.T) {
	f := newFixture()

	f.startAndFinish()
	f.startAndFinish()

	assert.Equal(t, "✓", f.surface.Marks)
	assert.Equal(t, 1, f.ctrl.TipIndex())
	assert.Equal(t, "Tip: Take brief notes during work sessions", f.surface.Tip)
	assert.Equal(t, 2, f.alarm.plays)
	assert.True(t, f.surface.StartEnabled)
	assert.Equal(t, 2, f.ctrl.Reps())
}

func TestFullCycle(t *testing.T) {
	f := newFixture()

	wantMarks := []string{"", "✓", "", "✓✓", "", "✓✓✓", ""}

	for i := range 7 {
		f.startAndFinish()

		if wantMarks[i] != "" {
			assert.Equal(t, wantMarks[i], f.surface.Marks, "after rep %d", i+1)
		}

		assert.Empty(t, f.ack.shown)
	}

	assert.Equal(t, config.LongBreak, Classify(f.ctrl.Reps()+1))

	f.startAndFinish()

	require.Len(t, f.ack.shown, 1)
	assert.Equal(t, "Congratulations!", f.ack.shown[0].title)
	assert.Contains(t, f.ack.shown[0].body, "completed a full Pomodoro cycle")

	assert.Zero(t, f.ctrl.Reps())
	assert.False(t, f.ctrl.Running())
	assert.Equal(t, "00:00", f.surface.Timer)
	assert.Equal(t, "Session: 0/4", f.surface.Session)
	assert.Empty(t, f.surface.Marks)
	assert.Equal(t, 8, f.alarm.plays)
	assert.Len(t, f.notifier.sent, 8)
	// three mid-cycle breaks and the reset
	assert.Equal(t, 4, f.ctrl.TipIndex())

	assert.Equal(t, []config.SessionType{
		config.Work, config.ShortBreak,
		config.Work, config.ShortBreak,
		config.Work, config.ShortBreak,
		config.Work, config.LongBreak,
	}, f.hook.runs)

	// a new cycle starts from scratch
	f.ctrl.Start()

	assert.Equal(t, 1, f.ctrl.Reps())
	assert.Equal(t, "Session: 1/4", f.surface.Session)
	assert.Len(t, f.ack.shown, 1)
}

func TestTipWraps(t *testing.T) {
	f := newFixture()

	for range len(Tips) {
		f.ctrl.Reset()
	}

	assert.Zero(t, f.ctrl.TipIndex())
	assert.Equal(t, tipText(0), f.surface.Tip)
}

func TestFailedEffectsAreReported(t *testing.T) {
	f := newFixture()

	errNotify := errors.New("notify-send not found")
	errAudio := errors.New("no audio device")

	f.notifier.err = errNotify
	f.alarm.err = errAudio

	f.startAndFinish()

	var failed []Effect

	for _, e := range f.effects {
		if e.Failed() {
			failed = append(failed, e)
		}
	}

	assert.Equal(t, []Effect{
		{Kind: EffectNotify, Err: errNotify},
		{Kind: EffectAlarm, Err: errAudio},
	}, failed)

	// failures do not disturb the timer
	assert.True(t, f.surface.StartEnabled)
	assert.Equal(t, 1, f.ctrl.Reps())
}

func TestProgress(t *testing.T) {
	f := newFixture()

	assert.Zero(t, f.ctrl.Progress())

	f.ctrl.Start()

	for range 750 {
		f.sched.step()
	}

	assert.InDelta(t, 0.5, f.ctrl.Progress(), 0.001)
}

func TestSnapshot(t *testing.T) {
	f := newFixture()

	f.startAndFinish()
	f.ctrl.Start()

	assert.Equal(t, Snapshot{
		Current:   config.ShortBreak,
		Reps:      2,
		Completed: 1,
		Remaining: 300,
		Tip:       0,
		Running:   true,
	}, f.ctrl.Snapshot())
}
