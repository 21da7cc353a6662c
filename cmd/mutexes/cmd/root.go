package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "mutexes",
	Short: "demonstrate that incrementing a shared variable is not atomic",
	Long: `mutexes runs a configurable number of goroutines that each increment a
shared counter in a loop. With the counter's mutex in place the final
total equals workers times loops on every run; with --unlocked the
increment is a data race and increments are lost under contention.`,
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main().
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}
