// aco builds, inspects and converts Adobe Color Table (.aco) swatch files.
//
// Usage:
//
//	aco [--verbose] make [-o name] [--zstd] <palette.yaml|palette.jsonc>
//	aco [--verbose] read [--format json|yaml|cbor] [--chunk-size N] <file.aco[.zst]>
//	aco [--verbose] show [--chunk-size N] <file.aco[.zst]>
package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/pflag"

	"go_aco/internal/palette"
	"go_aco/internal/stream"
	"go_aco/internal/swatch"
	"go_aco/pkg/aco"
)

// chunkSizeEnv overrides the default decoder read size.
const chunkSizeEnv = "ACO_CHUNK_SIZE"

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			os.Exit(0)
		}
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	var verbose bool
	global := pflag.NewFlagSet("aco", pflag.ContinueOnError)
	global.SetOutput(stderr)
	global.SetInterspersed(false)
	global.BoolVarP(&verbose, "verbose", "v", false, "log decoder diagnostics at debug level")
	global.Usage = func() { printUsage(stderr, global) }
	if err := global.Parse(args); err != nil {
		return err
	}

	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	rest := global.Args()
	if len(rest) == 0 {
		printUsage(stderr, global)
		return errors.New("missing command")
	}

	switch rest[0] {
	case "make":
		return runMake(rest[1:], stdout, stderr, logger)
	case "read":
		return runRead(rest[1:], stdout, stderr, logger)
	case "show":
		return runShow(rest[1:], stdout, stderr, logger)
	}
	printUsage(stderr, global)
	return fmt.Errorf("unknown command %q", rest[0])
}

func printUsage(w io.Writer, flagSet *pflag.FlagSet) {
	fmt.Fprint(w, `aco builds, inspects and converts Adobe Color Table swatch files.

Usage:
  aco [flags] make [-o name] [--zstd] <palette.yaml|palette.jsonc>
  aco [flags] read [--format json|yaml|cbor] [--chunk-size N] <file.aco[.zst]>
  aco [flags] show [--chunk-size N] <file.aco[.zst]>

Environment:
  ACO_CHUNK_SIZE  default read size for read and show

Flags:
`)
	flagSet.SetOutput(w)
	flagSet.PrintDefaults()
}

func runMake(args []string, stdout, stderr io.Writer, logger *slog.Logger) error {
	var output string
	var compress bool
	flagSet := pflag.NewFlagSet("make", pflag.ContinueOnError)
	flagSet.SetOutput(stderr)
	flagSet.StringVarP(&output, "output", "o", "", "output file name; .aco is appended when missing (default: timestamped name)")
	flagSet.BoolVar(&compress, "zstd", false, "zstd compress the output and add a .zst suffix")
	if err := flagSet.Parse(args); err != nil {
		return err
	}
	if flagSet.NArg() != 1 {
		return errors.New("make: expected exactly one palette definition")
	}

	colors, err := palette.ReadFile(flagSet.Arg(0))
	if err != nil {
		return err
	}

	path := aco.SanitizeFilename(output, time.Now())
	if compress {
		path += stream.CompressedSuffix
	}

	w, err := stream.Create(path)
	if err != nil {
		return err
	}
	encodeErr := aco.Encode(w, colors)
	closeErr := w.Close()
	if encodeErr != nil {
		return fmt.Errorf("writing %s: %w", path, encodeErr)
	}
	if closeErr != nil {
		return closeErr
	}

	logger.Debug("palette written", "path", path, "colors", len(colors))
	fmt.Fprintln(stdout, path)
	return nil
}

func runRead(args []string, stdout, stderr io.Writer, logger *slog.Logger) error {
	var formatName string
	flagSet := pflag.NewFlagSet("read", pflag.ContinueOnError)
	flagSet.SetOutput(stderr)
	flagSet.StringVarP(&formatName, "format", "f", string(palette.FormatJSON), "output format: json, yaml or cbor")
	chunkSize := addChunkSizeFlag(flagSet)
	if err := flagSet.Parse(args); err != nil {
		return err
	}
	if flagSet.NArg() != 1 {
		return errors.New("read: expected exactly one color table")
	}

	format, err := palette.ParseFormat(formatName)
	if err != nil {
		return err
	}
	colors, err := decodeFile(flagSet.Arg(0), *chunkSize, logger)
	if err != nil {
		return err
	}
	return palette.Export(stdout, format, colors)
}

func runShow(args []string, stdout, stderr io.Writer, logger *slog.Logger) error {
	flagSet := pflag.NewFlagSet("show", pflag.ContinueOnError)
	flagSet.SetOutput(stderr)
	chunkSize := addChunkSizeFlag(flagSet)
	if err := flagSet.Parse(args); err != nil {
		return err
	}
	if flagSet.NArg() != 1 {
		return errors.New("show: expected exactly one color table")
	}

	colors, err := decodeFile(flagSet.Arg(0), *chunkSize, logger)
	if err != nil {
		return err
	}
	return swatch.Render(stdout, lipgloss.NewRenderer(stdout), colors)
}

func addChunkSizeFlag(flagSet *pflag.FlagSet) *int {
	def := aco.DefaultChunkSize
	if value, err := strconv.Atoi(os.Getenv(chunkSizeEnv)); err == nil && value > 0 {
		def = value
	}
	return flagSet.Int("chunk-size", def, "bytes handed to the decoder per read")
}

func decodeFile(path string, chunkSize int, logger *slog.Logger) ([]aco.ColorEntry, error) {
	r, err := stream.Open(path)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	decoder := aco.NewDecoder(aco.DecoderOptions{
		Observer:  aco.LogObserver(logger),
		ChunkSize: chunkSize,
	})
	n, err := decoder.ReadFrom(r)
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}
	colors, err := decoder.Finish()
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}

	logger.Debug("color table decoded", "path", path, "bytes", n, "colors", len(colors))
	return colors, nil
}
