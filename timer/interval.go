package timer

import (
	"fmt"

	"github.com/ayoisaiah/meow/internal/config"
)

const (
	// every eighth repetition is a long break
	longBreakEvery = 2 * config.CycleLength
	breakEvery     = 2
)

// Classify reports the kind of interval started by the nth repetition.
// Long breaks are checked first since every multiple of eight is even.
func Classify(n int) config.SessionType {
	switch {
	case n%longBreakEvery == 0:
		return config.LongBreak
	case n%breakEvery == 0:
		return config.ShortBreak
	default:
		return config.Work
	}
}

// DurationSeconds returns the fixed length of an interval in seconds.
func DurationSeconds(name config.SessionType) int {
	return int(config.Durations[name].Seconds())
}

// Format renders seconds as MM:SS.
func Format(seconds int) string {
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}

// completedWorkSessions is the number of finished work and break pairs.
func completedWorkSessions(reps int) int {
	return reps / 2
}

// sessionNumber is the position of the current work session within its
// cycle, starting from 1.
func sessionNumber(reps int) int {
	n := (reps + 1) / 2
	if n == 0 {
		return 0
	}

	return (n-1)%config.CycleLength + 1
}
