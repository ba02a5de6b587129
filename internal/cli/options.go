// internal/cli/options.go
package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"mininorm/internal/cliutil"
	"mininorm/internal/cmdutil"
	"mininorm/internal/normalize"
	"mininorm/internal/version"
	"mininorm/internal/writers"
)

// Defaults for the run parameters.
const (
	DefaultWindow   = 20
	DefaultK        = 20
	DefaultCoverage = 20
)

// Options holds all CLI flags and arguments.
type Options struct {
	// Input
	Inputs []string

	// Output
	Outfile     string // "-" = stdout
	Rejects     string // "" = drop rejected reads
	Format      string // fastq | fasta
	Stats       string // "" = no stats
	StatsFormat string // tsv | jsonl
	Counts      string // "" = no counts report

	// Normalization
	Window   int
	K        int
	Coverage int

	// Performance
	Threads    int
	CPUProfile string

	// Misc
	Progress bool
	LogLevel string
	Quiet    bool
}

// Params returns the normalization parameters.
func (o Options) Params() normalize.Params {
	return normalize.Params{Window: o.Window, K: o.K, Coverage: o.Coverage}
}

// NewCommand builds the root command. run is called with validated options.
func NewCommand(name string, opt *Options, run func(cmd *cobra.Command, opt Options) error) *cobra.Command {
	cmd := &cobra.Command{
		Use:   name + " [flags] <reads.fastq[.gz]>...",
		Short: "Digitally normalise long-read FASTQ files using k-mer minimisers",
		Long: name + ` – digital normalisation of long-read DNA sequence files

Each read's coverage is estimated as the median count of its window
minimisers across all reads seen so far (including itself). Reads whose
median exceeds the coverage threshold are discarded as likely redundant.
Multiple inputs are processed in order against one shared minimiser table.

Author:  Erick Samera (erick.samera@kpu.ca)
License: MIT`,
		Example: `  # keep reads with median minimiser count <= 30, stream to stdout
  ` + name + ` -c 30 reads.fastq.gz > norm.fastq

  # collect rejects and per-read statistics
  ` + name + ` -o norm.fq.gz -r rejects.fq.gz -s stats.tsv reads.fastq`,
		Version:       version.Version,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := AfterParse(opt, args); err != nil {
				return err
			}
			return run(cmd, *opt)
		},
	}
	cmd.SetVersionTemplate(name + " version {{.Version}}\n")

	f := cmd.Flags()
	f.SortFlags = false
	AddFlags(f, opt)
	return cmd
}

// AddFlags registers every option flag on f, bound to opt.
func AddFlags(f *pflag.FlagSet, opt *Options) {
	f.StringVarP(&opt.Outfile, "outfile", "o", "-", "FASTQ file for the kept reads ('-' for stdout)")
	f.StringVarP(&opt.Rejects, "reject", "r", "", "FASTQ file for reads rejected as likely duplicates (default: discard)")
	f.StringVar(&opt.Format, "format", writers.FormatFASTQ, "record format for kept/rejected reads: "+strings.Join(writers.RecordFormatNames(), " | "))

	f.IntVarP(&opt.Window, "window-size", "w", DefaultWindow, "window size")
	f.IntVarP(&opt.K, "kmer-size", "k", DefaultK, "k-mer size")
	f.IntVarP(&opt.Coverage, "coverage-threshold", "c", DefaultCoverage, "median minimiser count above which a read is discarded")

	f.StringVarP(&opt.Stats, "stats", "s", "", "file for per-read statistics (default: none)")
	f.StringVar(&opt.StatsFormat, "stats-format", writers.StatsTSV, "stats format: tsv | jsonl")
	f.StringVarP(&opt.Counts, "counts", "n", "", "file for the counts of all minimisers (very large)")

	f.IntVarP(&opt.Threads, "threads", "t", 0, "minimiser extraction workers (0 = all CPUs)")
	f.StringVar(&opt.CPUProfile, "cpu-profile", "", "write a CPU profile into this directory")

	f.BoolVar(&opt.Progress, "progress", false, "show a read counter on stderr")
	f.StringVar(&opt.LogLevel, "log-level", cmdutil.LevelInfo, "log level: debug | info | warn | error")
	f.BoolVarP(&opt.Quiet, "quiet", "q", false, "only log warnings and errors")
}

// AfterParse expands input globs and runs Validate.
func AfterParse(o *Options, args []string) error {
	in, err := cliutil.ExpandInputs(args)
	if err != nil {
		return err
	}
	o.Inputs = in
	return Validate(o)
}

// Validate applies CLI invariants.
func Validate(o *Options) error {
	if len(o.Inputs) == 0 {
		return errors.New("at least one input file is required")
	}
	if err := o.Params().Validate(); err != nil {
		return err
	}
	if o.Threads < 0 {
		return errors.New("--threads must be ≥ 0")
	}
	if _, err := writers.LookupRecordFormat(o.Format); err != nil {
		return fmt.Errorf("invalid --format %q", o.Format)
	}
	switch o.StatsFormat {
	case writers.StatsTSV, writers.StatsJSONL:
	default:
		return fmt.Errorf("invalid --stats-format %q", o.StatsFormat)
	}
	if _, err := cmdutil.ParseLevel(o.LogLevel); err != nil {
		return err
	}
	if o.Outfile == "" {
		return errors.New("--outfile must not be empty (use '-' for stdout)")
	}

	// No two outputs may share a destination.
	seen := map[string]string{o.Outfile: "--outfile"}
	for _, out := range []struct{ flag, path string }{
		{"--reject", o.Rejects}, {"--stats", o.Stats}, {"--counts", o.Counts},
	} {
		if out.path == "" {
			continue
		}
		if prev, dup := seen[out.path]; dup {
			return fmt.Errorf("%s and %s both write to %q", prev, out.flag, out.path)
		}
		seen[out.path] = out.flag
	}
	for _, in := range o.Inputs {
		if in == "-" {
			continue
		}
		if flag, dup := seen[in]; dup {
			return fmt.Errorf("%s would overwrite input %q", flag, in)
		}
	}
	return nil
}
