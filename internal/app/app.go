// internal/app/app.go
package app

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"

	"github.com/aryanthorat85-star/DNA-Analyzer/internal/cli"
	"github.com/aryanthorat85-star/DNA-Analyzer/internal/input"
	"github.com/aryanthorat85-star/DNA-Analyzer/internal/output"
	"github.com/aryanthorat85-star/DNA-Analyzer/internal/report"
	"github.com/aryanthorat85-star/DNA-Analyzer/internal/seq"
	"github.com/aryanthorat85-star/DNA-Analyzer/internal/version"
)

// RunContext parses argv, acquires a sequence, and renders its summary
// to stdout. Exit codes: 0 success (including "no sequence" warnings),
// 2 usage/validation errors, 3 write failures other than broken pipe.
func RunContext(ctx context.Context, argv []string, stdin io.Reader, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)
	defer func() { _ = outw.Flush() }()

	fs := cli.NewFlagSet("dna-analyzer")
	fs.SetOutput(io.Discard)

	opts, err := cli.ParseArgs(fs, argv)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			fs.SetOutput(outw)
			fs.Usage()
			return flushExit(outw, stderr, 0)
		}
		_, _ = fmt.Fprintln(stderr, err)
		fs.SetOutput(outw)
		fs.Usage()
		return flushExit(outw, stderr, 2)
	}

	if opts.Version {
		_, _ = fmt.Fprintf(outw, "dna-analyzer version %s\n", version.Version)
		return flushExit(outw, stderr, 0)
	}

	var raw string
	if opts.Input != "" {
		raw, err = input.ReadFile(opts.Input)
		if err != nil {
			warnf(stderr, "reading %s: %v", opts.Input, err)
		}
		if raw == "" {
			_, _ = fmt.Fprintln(outw, "No sequence found in file or file couldn't be read.")
			return flushExit(outw, stderr, 0)
		}
	} else {
		_, _ = fmt.Fprintln(stderr, "Enter DNA sequence (paste raw sequence or FASTA). Finish with an empty line:")
		raw, err = input.ReadInteractive(stdin)
		if err != nil {
			warnf(stderr, "reading input: %v", err)
		}
	}

	rep, err := report.Build(seq.Clean(raw), opts.K, opts.TopN)
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 2
	}

	switch opts.Output {
	case cli.OutputJSON:
		err = output.WriteJSON(outw, rep)
	default:
		err = output.WriteText(outw, rep)
	}
	if err != nil {
		if output.IsBrokenPipe(err) {
			return 0
		}
		_, _ = fmt.Fprintln(stderr, err)
		return 3
	}
	return flushExit(outw, stderr, 0)
}

// Run is the background-context convenience wrapper.
func Run(argv []string, stdin io.Reader, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdin, stdout, stderr)
}

func flushExit(outw *bufio.Writer, stderr io.Writer, code int) int {
	if err := outw.Flush(); output.IsBrokenPipe(err) {
		return 0
	} else if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 3
	}
	return code
}

func warnf(dst io.Writer, format string, a ...any) {
	_, _ = fmt.Fprintf(dst, "WARN: "+format+"\n", a...)
}
