// Command escposenc encodes a receipt job file into an ESC/POS byte stream.
package main

import (
	"encoding/hex"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/rs/zerolog"

	escposgo "github.com/ericlevine/escposgo"
)

func newLogger(verbose bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	output := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
	}
	return zerolog.New(output).Level(level).With().Timestamp().Str("app", "escposenc").Logger()
}

func main() {
	out := flag.String("o", "-", "output file, - for stdout")
	dump := flag.Bool("hex", false, "write a hex dump instead of raw bytes")
	verbose := flag.Bool("v", false, "log encoder diagnostics")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: escposenc [flags] <job.toml|job.yaml>\n\n")
		fmt.Fprintf(os.Stderr, "Encode a receipt job into ESC/POS printer commands.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(1)
	}

	log := newLogger(*verbose)
	if *verbose {
		escposgo.SetLogger(slog.New(newZerologHandler(log)))
	}

	if err := run(flag.Arg(0), *out, *dump, log); err != nil {
		log.Error().Err(err).Str("job", flag.Arg(0)).Msg("encode failed")
		os.Exit(1)
	}
}

func run(jobPath, outPath string, dump bool, log zerolog.Logger) error {
	j, err := loadJob(jobPath)
	if err != nil {
		return err
	}
	log.Debug().
		Str("encoding", j.Printer.Encoding).
		Bool("defaults", j.Printer.Defaults).
		Int("steps", len(j.Steps)).
		Msg("job loaded")

	data, err := encodeJob(j)
	if err != nil {
		return err
	}

	var w io.Writer = os.Stdout
	if outPath != "-" {
		f, err := os.Create(outPath)
		if err != nil {
			return err
		}
		defer f.Close()
		w = f
	}
	if dump {
		_, err = io.WriteString(w, hex.Dump(data))
	} else {
		_, err = w.Write(data)
	}
	if err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	log.Info().Int("bytes", len(data)).Str("out", outPath).Msg("job encoded")
	return nil
}
