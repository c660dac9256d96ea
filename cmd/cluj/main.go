package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"runtime/pprof"
	"strings"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"

	"github.com/domino14/cluj/automatic"
	"github.com/domino14/cluj/board"
	"github.com/domino14/cluj/config"
	"github.com/domino14/cluj/deal"
)

func setupLogging(cfg *config.Config) {
	output := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	output.FormatLevel = func(i interface{}) string {
		return strings.ToUpper(fmt.Sprintf("| %-6s|", i))
	}
	output.FormatMessage = func(i interface{}) string {
		return fmt.Sprintf("%s", i)
	}
	output.FormatFieldName = func(i interface{}) string {
		return fmt.Sprintf("%s:", i)
	}

	var logger zerolog.Logger
	if cfg.GetBool(config.ConfigDebug) {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
		logger = zerolog.New(output).Level(zerolog.DebugLevel).With().Timestamp().Logger()
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
		logger = zerolog.New(output).Level(zerolog.InfoLevel).With().Timestamp().Logger()
	}
	zerolog.DefaultContextLogger = &logger
	log.Logger = logger
	logger.Debug().Msg("Debug logging is on")
}

// loadDeals reads the deals named on the command line, stdin when there
// are none, or generates random ones.
func loadDeals(cfg *config.Config, stdin io.Reader) ([]deal.Deal, error) {
	if n := cfg.GetInt(config.ConfigRandomDeals); n > 0 {
		deals := make([]deal.Deal, n)
		for i := range deals {
			deals[i] = deal.Random(fmt.Sprintf("random-%d", i+1))
		}
		return deals, nil
	}
	if len(cfg.Args()) == 0 {
		b, err := board.Parse(stdin)
		if err != nil {
			return nil, err
		}
		return []deal.Deal{{Name: "stdin", Board: b}}, nil
	}
	var deals []deal.Deal
	for _, path := range cfg.Args() {
		d, err := deal.FromFile(path)
		if err != nil {
			return nil, err
		}
		deals = append(deals, d)
	}
	return deals, nil
}

func writeResults(w io.Writer, cfg *config.Config, results []automatic.Result) error {
	switch cfg.GetString(config.ConfigOutputFormat) {
	case "yaml":
		enc := yaml.NewEncoder(w)
		defer enc.Close()
		return enc.Encode(results)
	case "text":
		verbose := cfg.GetBool(config.ConfigVerbose)
		for _, res := range results {
			if !res.Solved {
				log.Info().Str("deal", res.Name).Str("reason", res.Err).Msg("no-solution")
				continue
			}
			if len(results) > 1 {
				fmt.Fprintf(w, "# %s (%s)\n", res.Name, res.ID)
			}
			fmt.Fprintln(w, res.Solution.Text(verbose))
		}
		return nil
	}
	return fmt.Errorf("unknown output format %q", cfg.GetString(config.ConfigOutputFormat))
}

func run(ctx context.Context, cfg *config.Config, stdin io.Reader, stdout io.Writer) error {
	deals, err := loadDeals(cfg, stdin)
	if err != nil {
		return err
	}
	results, err := automatic.SolveAll(ctx, cfg, deals)
	if err != nil {
		return err
	}
	if err := writeResults(stdout, cfg, results); err != nil {
		return err
	}
	if len(results) > 1 {
		sum := automatic.Summarize(results)
		log.Info().Msg(sum.String())
		if cfg.GetBool(config.ConfigVerbose) {
			return automatic.WriteStepHistogram(os.Stderr, results, 10)
		}
	}
	return nil
}

func main() {
	os.Exit(realMain(os.Args[1:]))
}

// realMain returns the process exit code, so that deferred cleanup such
// as stopping the CPU profile runs before the process exits.
func realMain(args []string) int {
	cfg := &config.Config{}
	if err := cfg.Load(args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 2
	}
	setupLogging(cfg)
	log.Debug().Interface("config", cfg.SanitizedSettings()).Msg("loaded-config")

	if path := cfg.GetString(config.ConfigCPUProfile); path != "" {
		f, err := os.Create(path)
		if err != nil {
			log.Error().Err(err).Msg("could-not-create-cpu-profile")
			return 1
		}
		defer f.Close()
		if err := pprof.StartCPUProfile(f); err != nil {
			log.Error().Err(err).Msg("could-not-start-cpu-profile")
			return 1
		}
		defer pprof.StopCPUProfile()
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, os.Stdin, os.Stdout); err != nil {
		if errors.Is(err, context.Canceled) {
			log.Info().Msg("got quit signal, exiting")
			return 0
		}
		log.Error().Err(err).Msg("solver-failed")
		return 1
	}
	return 0
}
