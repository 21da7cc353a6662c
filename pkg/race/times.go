package race

import (
	"fmt"
	"syscall"
	"time"
)

// stopwatch captures a wall-clock and CPU-time baseline so a run can be
// timed from the moment the start gate is released.
type stopwatch struct {
	wall time.Time
	cpu  time.Duration
}

func startStopwatch() stopwatch {
	return stopwatch{wall: time.Now(), cpu: cpuTime()}
}

// split returns the wall-clock and CPU time elapsed since the baseline.
func (s stopwatch) split() (elapsed, cpu time.Duration) {
	return time.Since(s.wall), cpuTime() - s.cpu
}

// cpuTime returns the process's total CPU time, user plus system, across
// all threads. A rusage failure reads as zero rather than failing the run.
func cpuTime() time.Duration {
	var ru syscall.Rusage
	if err := syscall.Getrusage(syscall.RUSAGE_SELF, &ru); err != nil {
		return 0
	}
	return time.Duration(ru.Utime.Nano() + ru.Stime.Nano())
}

// FormatDuration renders d as seconds with microsecond precision, e.g.
// "1.234567s".
func FormatDuration(d time.Duration) string {
	us := d.Microseconds()
	if us < 0 {
		us = 0
	}
	const usPerSecond = 1_000_000
	return fmt.Sprintf("%d.%06ds", us/usPerSecond, us%usPerSecond)
}
