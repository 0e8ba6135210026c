// Package cli implements the huff command line:
//
//	huff -c <input> -o <output> [-p]   # compress
//	huff -d <input> -o <output> [-p]   # decompress
package cli

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"

	huffman "github.com/chronos-tachyon/huffile"
	"github.com/chronos-tachyon/huffile/internal/config"
	"github.com/chronos-tachyon/huffile/internal/logger"
)

var (
	// ErrUsage reports missing, extra, or malformed arguments.
	ErrUsage = errors.New("usage error")

	// ErrUnknownMode reports a first argument other than -c or -d.
	ErrUnknownMode = errors.New("unknown mode")
)

const usage = `usage: huff -c|-d <input> -o <output> [-p]
  -c  compress <input> into <output>
  -d  decompress <input> into <output>
  -o  output file (required)
  -p  print the code table to standard error
`

// Mode selects the direction of a run.  Its value is the flag that names it.
type Mode string

const (
	// CompressMode turns a raw file into a container.
	CompressMode Mode = "-c"

	// DecompressMode turns a container back into the raw file.
	DecompressMode Mode = "-d"
)

type options struct {
	mode      Mode
	input     string
	output    string
	dumpTable bool
}

// Run executes the command with the given arguments (excluding the program
// name) and returns the process exit code.
func Run(args []string, stderr io.Writer) int {
	conf, err := config.Load()
	if err != nil {
		fmt.Fprintf(stderr, "huff: config: %v\n", err)
		return 1
	}

	log, err := logger.New(conf, stderr)
	if err != nil {
		fmt.Fprintf(stderr, "huff: %v\n", err)
		return 1
	}

	opts, err := parseArgs(args)
	if err != nil {
		log.Error().Err(err).Msg("invalid arguments")
		io.WriteString(stderr, usage)
		return 1
	}
	opts.dumpTable = opts.dumpTable || conf.Bool(config.KeyDumpTable, false)

	log = log.With().Str("mode", string(opts.mode)).Str("in", opts.input).Str("out", opts.output).Logger()

	switch opts.mode {
	case CompressMode:
		err = compressFile(opts, stderr, log)
	case DecompressMode:
		err = decompressFile(opts, stderr, log)
	}
	if err != nil {
		log.Error().Err(err).Msg("failed")
		return 1
	}
	return 0
}

func parseArgs(args []string) (options, error) {
	var opts options
	if len(args) < 2 {
		return opts, fmt.Errorf("%w: expected a mode and an input file", ErrUsage)
	}

	opts.mode = Mode(args[0])
	if opts.mode != CompressMode && opts.mode != DecompressMode {
		return opts, fmt.Errorf("%w %q: use -c to compress or -d to decompress", ErrUnknownMode, args[0])
	}
	opts.input = args[1]

	fs := flag.NewFlagSet("huff", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.StringVar(&opts.output, "o", "", "output file")
	fs.BoolVar(&opts.dumpTable, "p", false, "print the code table")
	if err := fs.Parse(args[2:]); err != nil {
		return opts, fmt.Errorf("%w: %v", ErrUsage, err)
	}
	if fs.NArg() != 0 {
		return opts, fmt.Errorf("%w: unexpected argument %q", ErrUsage, fs.Arg(0))
	}
	if opts.output == "" {
		return opts, fmt.Errorf("%w: -o is required", ErrUsage)
	}
	return opts, nil
}

func compressFile(opts options, stderr io.Writer, log zerolog.Logger) error {
	data, err := os.ReadFile(opts.input)
	if err != nil {
		return &huffman.IOError{Op: "read input", Err: err}
	}

	var stats huffman.Stats
	if err := writeFileAtomic(opts.output, func(w io.Writer) (err error) {
		stats, err = huffman.Compress(w, data)
		return err
	}); err != nil {
		return err
	}
	return report(opts, stats, stderr, log, "compressed")
}

func decompressFile(opts options, stderr io.Writer, log zerolog.Logger) error {
	f, err := os.Open(opts.input)
	if err != nil {
		return &huffman.IOError{Op: "open input", Err: err}
	}
	defer f.Close()

	data, stats, err := huffman.DecompressStats(bufio.NewReader(f))
	if err != nil {
		return err
	}

	if err := writeFileAtomic(opts.output, func(w io.Writer) error {
		if _, err := w.Write(data); err != nil {
			return &huffman.IOError{Op: "write output", Err: err}
		}
		return nil
	}); err != nil {
		return err
	}
	return report(opts, stats, stderr, log, "decompressed")
}

func report(opts options, stats huffman.Stats, stderr io.Writer, log zerolog.Logger, msg string) error {
	if opts.dumpTable {
		if _, err := stats.Table.Dump(stderr); err != nil {
			return &huffman.IOError{Op: "dump", Err: err}
		}
	}

	log.Info().
		Int64("inBytes", stats.InBytes).
		Int64("outBytes", stats.OutBytes).
		Int("symbols", stats.Symbols).
		Uint64("bits", stats.Bits).
		Msg(msg)
	return nil
}

// writeFileAtomic writes to a temporary file beside path and renames it into
// place only once fill and the flush succeed.
func writeFileAtomic(path string, fill func(w io.Writer) error) (err error) {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".huff-*")
	if err != nil {
		return &huffman.IOError{Op: "create output", Err: err}
	}
	defer func() {
		if err != nil {
			tmp.Close()
			os.Remove(tmp.Name())
		}
	}()

	if err = tmp.Chmod(0o644); err != nil {
		return &huffman.IOError{Op: "create output", Err: err}
	}

	bw := bufio.NewWriter(tmp)
	if err = fill(bw); err != nil {
		return err
	}
	if err = bw.Flush(); err != nil {
		return &huffman.IOError{Op: "write output", Err: err}
	}
	if err = tmp.Close(); err != nil {
		return &huffman.IOError{Op: "close output", Err: err}
	}
	if err = os.Rename(tmp.Name(), path); err != nil {
		return &huffman.IOError{Op: "rename output", Err: err}
	}
	return nil
}
