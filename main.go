package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/hAkselS/mutexes/pkg/race"
)

// Minimal entry point matching the original demonstration: up to two
// optional positional arguments, workers then loops per worker. The full
// CLI with flags lives in cmd/mutexes.
func main() {
	workers := race.DefaultWorkers
	loops := int64(race.DefaultLoops)
	if len(os.Args) > 1 {
		if n, err := strconv.Atoi(os.Args[1]); err == nil && n >= 0 {
			workers = n
		}
	}
	if len(os.Args) > 2 {
		if n, err := strconv.ParseInt(os.Args[2], 10, 64); err == nil && n >= 0 {
			loops = n
		}
	}

	r := race.Run(race.Config{
		Workers: workers,
		Loops:   loops,
		Locked:  true,
		Chatter: os.Stderr,
	})
	fmt.Printf("%d total count, expected %d, time %s, cpu time %s\n",
		r.Count, r.Expected,
		race.FormatDuration(r.Elapsed), race.FormatDuration(r.CPU))
}
