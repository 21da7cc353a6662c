package cmd

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/felixge/fgprof"
	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/hAkselS/mutexes/pkg/race"
)

// runCmd represents the run command
var runCmd = &cobra.Command{
	Use:   "run [workers] [loops]",
	Short: "run the shared-counter demonstration",
	Long: `run spawns the given number of workers, each incrementing the shared
counter the given number of times, and reports the final count, the
expected count, and the elapsed wall-clock and CPU time. Missing or
non-numeric arguments fall back to the defaults (2 workers, 10 million
loops each).`,
	Args: cobra.MaximumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		workers := positional(args, 0, race.DefaultWorkers)
		loops := positional(args, 1, race.DefaultLoops)

		if cpuprofile != "" {
			f, err := os.Create(cpuprofile)
			if err != nil {
				return fmt.Errorf("failed to create profile file: %w", err)
			}
			defer f.Close()
			stop := fgprof.Start(f, fgprof.FormatPprof)
			defer func() {
				if err := stop(); err != nil {
					fmt.Fprintf(os.Stderr, "mutexes: %v\n", err)
				}
			}()
		}

		var chatter io.Writer
		if verbose {
			chatter = cmd.ErrOrStderr()
		}

		p := message.NewPrinter(language.English)
		for i := 0; i < trials; i++ {
			r := race.Run(race.Config{
				Workers: workers,
				Loops:   int64(loops),
				Locked:  !unlocked,
				Chatter: chatter,
			})
			p.Fprintf(cmd.OutOrStdout(),
				"%d total count, expected %d, time %s, cpu time %s\n",
				r.Count, r.Expected,
				race.FormatDuration(r.Elapsed), race.FormatDuration(r.CPU))
			if traceFile != "" {
				if err := race.SaveTrace(traceFile, r.Trace); err != nil {
					return err
				}
			}
		}
		return nil
	},
}

var unlocked bool
var verbose bool
var trials int
var traceFile string
var cpuprofile string

// positional returns args[i] as a number, or def when the argument is
// missing or not numeric. Negative values clamp to zero.
func positional(args []string, i, def int) int {
	if i >= len(args) {
		return def
	}
	n, err := strconv.Atoi(args[i])
	if err != nil {
		return def
	}
	if n < 0 {
		return 0
	}
	return n
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().BoolVarP(&unlocked, "unlocked", "u", false,
		"increment without the counter mutex to demonstrate the race")
	runCmd.Flags().BoolVarP(&verbose, "verbose", "v", false,
		"print spawn and finish notices to stderr")
	runCmd.Flags().IntVarP(&trials, "trials", "n", 1,
		"repeat the run this many times")
	runCmd.Flags().StringVarP(&traceFile, "trace", "t", "",
		"write the diagnostic event log to this file as JSON lines")
	runCmd.Flags().StringVar(&cpuprofile, "cpuprofile", "",
		"write an fgprof CPU profile to this file")
}
