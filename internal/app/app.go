// internal/app/app.go
package app

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"mininorm/internal/appcore"
	"mininorm/internal/cli"
)

const name = "mininorm"

// RunContext parses argv and runs a normalization. It returns the process
// exit code; usage errors exit 2.
func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	var (
		opts cli.Options
		code int
	)
	cmd := cli.NewCommand(name, &opts, func(cmd *cobra.Command, o cli.Options) error {
		code = appcore.Run(cmd.Context(), stdout, stderr, appcore.Options{
			Inputs:      o.Inputs,
			Params:      o.Params(),
			Outfile:     o.Outfile,
			Rejects:     o.Rejects,
			Format:      o.Format,
			Stats:       o.Stats,
			StatsFormat: o.StatsFormat,
			Counts:      o.Counts,
			Threads:     o.Threads,
			CPUProfile:  o.CPUProfile,
			Progress:    o.Progress,
			LogLevel:    o.LogLevel,
			Quiet:       o.Quiet,
		})
		return nil
	})
	cmd.SetArgs(argv)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	if err := cmd.ExecuteContext(parent); err != nil {
		_, _ = fmt.Fprintln(stderr, "error:", err)
		_, _ = fmt.Fprintf(stderr, "Run '%s --help' for usage.\n", name)
		return 2
	}
	return code
}

func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}
