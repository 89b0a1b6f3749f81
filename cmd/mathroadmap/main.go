// Command mathroadmap draws the mathematics prerequisite roadmap and prints
// its reading lists.
//
//	mathroadmap render -f png,html
//	mathroadmap books --tab essential
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/mathroadmap/mathroadmap/internal/cli"
)

// exitInterrupted is the shell status of a job stopped by SIGINT.
const exitInterrupted = 130

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx); err != nil {
		if errors.Is(err, context.Canceled) {
			os.Exit(exitInterrupted)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	c := cli.New(os.Stderr, cli.LogInfo)
	root := c.RootCommand()
	addVerboseFlag(c, root)
	return root.ExecuteContext(ctx)
}

// addVerboseFlag registers -v on root. The level is applied before root's
// own hook runs, so the raster library's logs are bridged at that level.
func addVerboseFlag(c *cli.CLI, root *cobra.Command) {
	var verbose bool
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	next := root.PersistentPreRunE
	root.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		if verbose {
			c.SetLogLevel(cli.LogDebug)
		} else {
			c.SetLogLevel(cli.LogInfo)
		}
		if next == nil {
			return nil
		}
		return next(cmd, args)
	}
}
