// Package main - Card fraud detection with logistic regression.
// Loads labelled transactions from CSV, selects correlated features and
// cross-validates a logistic-regression model over resampled sets.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"github.com/FlavioCFOliveira/GoFraud/gofraud"
	"github.com/FlavioCFOliveira/GoFraud/internal/utils/logger"
)

var errNoInput = errors.New("no input files")

func main() {
	debug := flag.Bool("debug", false, "sets log level to debug")
	trace := flag.Bool("trace", false, "sets log level to trace")
	generate := flag.Int("generate", 0, "write N synthetic transactions to --out before running")
	out := flag.String("out", "creditcard.csv", "destination of --generate")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [--debug|--trace] [--generate N --out file] files...\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	envErr := godotenv.Load()

	cfg, err := gofraud.LoadConfig()
	if err != nil {
		logger.Init(os.Getenv("ENVIRONMENT"), *debug, *trace)
		log.Fatal().Stack().Err(err).Msg("Invalid configuration")
	}
	logger.Init(cfg.Environment, *debug, *trace)
	if envErr != nil {
		log.Debug().Err(envErr).Msg("No .env file loaded")
	}

	err = run(cfg, *generate, *out, flag.Args(), os.Stdout)
	if errors.Is(err, errNoInput) {
		flag.Usage()
		os.Exit(2)
	}
	if err != nil {
		log.Fatal().Stack().Err(err).Msg("Run failed")
	}
}

// run optionally writes synthetic data, then runs the pipeline on paths, or
// on the generated file when no path is given. Generation has its own random
// source so the pipeline draws the same partitions for a given seed whether
// or not data was generated in the same invocation.
func run(cfg *gofraud.EnvConfig, generate int, out string, paths []string, stdout io.Writer) error {
	if generate > 0 {
		if err := gofraud.WriteCSV(out, gofraud.Generate(gofraud.NewRand(cfg.Seed), generate)); err != nil {
			return errors.Wrap(err, "failed to generate data")
		}
		log.Info().Int("rows", generate).Str("file", out).Msg("Synthetic data written")
		if len(paths) == 0 {
			paths = []string{out}
		}
	}
	if len(paths) == 0 {
		return errNoInput
	}

	callbacks := []gofraud.Callback{gofraud.LogCallback()}
	if cfg.ReportPath != "" {
		callbacks = append(callbacks, gofraud.CSVLogger(cfg.ReportPath, false))
	}

	p := gofraud.NewPipeline(cfg.Pipeline(), gofraud.NewRand(cfg.Seed),
		gofraud.WithOutput(stdout),
		gofraud.WithCallbacks(callbacks...),
	)
	_, err := p.Run(paths...)
	return err
}
