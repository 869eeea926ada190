// internal/cli/options.go
package cli

import (
	"errors"
	"flag"
	"fmt"

	"github.com/aryanthorat85-star/DNA-Analyzer/internal/version"
)

// Output formats accepted by --output.
const (
	OutputText = "text"
	OutputJSON = "json"
)

// Options holds all CLI flags and arguments.
type Options struct {
	// Input
	Input string // file path; "" = interactive, "-" = stdin

	// Analysis parameters
	K    int // k-mer window length
	TopN int // number of top k-mers to report

	// Output
	Output string // text | json

	Version bool
}

// NewFlagSet returns a configured FlagSet with custom usage/help.
func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(),
			`%s: DNA sequence statistics

Reads one DNA sequence from a file (plain text or FASTA) or from an
interactive paste, and reports length, GC/AT content, the reverse
complement and the most frequent k-mers.

Version: %s

Usage of %s:
`, name, version.Version, name)
		fs.PrintDefaults()
	}
	return fs
}

// ParseArgs registers and parses all flags, returns an Options struct.
func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var opt Options
	var help bool

	// Input
	fs.StringVar(&opt.Input, "i", "", "input file path, plain or FASTA; '-' for stdin (shorthand)")
	fs.StringVar(&opt.Input, "input", "", "input file path, plain or FASTA; '-' for stdin; omit for interactive mode")

	// Analysis parameters
	fs.IntVar(&opt.K, "k", 3, "k-mer window length (shorthand) [3]")
	fs.IntVar(&opt.K, "kmer", 3, "k-mer window length [3]")
	fs.IntVar(&opt.TopN, "n", 5, "number of top k-mers to report (shorthand) [5]")
	fs.IntVar(&opt.TopN, "top", 5, "number of top k-mers to report [5]")

	// Output
	fs.StringVar(&opt.Output, "output", OutputText, "output format: text | json [text]")

	fs.BoolVar(&opt.Version, "v", false, "print version and exit (shorthand) [false]")
	fs.BoolVar(&opt.Version, "version", false, "print version and exit [false]")
	fs.BoolVar(&help, "h", false, "show this help message (shorthand) [false]")

	if err := fs.Parse(argv); err != nil {
		return opt, err
	}
	if help {
		fs.Usage()
		return opt, flag.ErrHelp
	}
	if opt.Version {
		return opt, nil
	}

	// Validation
	if opt.K <= 0 {
		return opt, errors.New("--kmer must be ≥ 1")
	}
	if opt.TopN <= 0 {
		return opt, errors.New("--top must be ≥ 1")
	}
	if opt.Output != OutputText && opt.Output != OutputJSON {
		return opt, fmt.Errorf("invalid --output %q", opt.Output)
	}
	return opt, nil
}
