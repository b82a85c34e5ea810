// Command sortbench times the sorting algorithms on a random dataset and
// prints what each one cost.
//
// Settings come from SORTBENCH_* environment variables, optionally seeded
// from a file given with -config:
//
//	SORTBENCH_SIZE=5000 SORTBENCH_REPEAT=3 sortbench -format yaml
//	sortbench -config bench.env -save last-run.env
//	sortbench -i
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/amp-labs/amp-sorting/benchmark"
	"github.com/amp-labs/amp-sorting/build"
	"github.com/amp-labs/amp-sorting/config"
	"github.com/amp-labs/amp-sorting/envutil"
	"github.com/amp-labs/amp-sorting/logger"
	"github.com/amp-labs/amp-sorting/report"
	"github.com/amp-labs/amp-sorting/shutdown"
	"github.com/amp-labs/amp-sorting/stage"
	"github.com/amp-labs/amp-sorting/telemetry"
)

const app = "sortbench"

func main() {
	ctx := shutdown.SetupHandler(context.Background())

	err := run(ctx, os.Args[1:], os.Stdout)

	if err != nil && !errors.Is(err, flag.ErrHelp) {
		logger.Fatal("sortbench failed", "error", err)
	}
}

type options struct {
	configPath  string
	savePath    string
	format      string
	interactive bool
	demo        bool
	version     bool
}

func parseFlags(args []string, stderr io.Writer) (*options, error) {
	opts := &options{}

	fs := flag.NewFlagSet(app, flag.ContinueOnError)
	fs.SetOutput(stderr)

	fs.StringVar(&opts.configPath, "config", "", "read SORTBENCH_* settings from a .env, .json or .yaml `file`")
	fs.StringVar(&opts.savePath, "save", "", "write the settings of this run, including its seed, to a .env `file`")
	fs.StringVar(&opts.format, "format", "", "output format: text, json or yaml (overrides SORTBENCH_FORMAT)")
	fs.BoolVar(&opts.interactive, "i", false, "choose algorithms and sizes interactively")
	fs.BoolVar(&opts.demo, "demo", false, "print each algorithm's output instead of timing it")
	fs.BoolVar(&opts.version, "version", false, "print version information and exit")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	return opts, nil
}

func run(ctx context.Context, args []string, stdout io.Writer) error {
	opts, err := parseFlags(args, os.Stderr)
	if err != nil {
		return err
	}

	if opts.version {
		_, err := fmt.Fprintf(stdout, "%s %s\n", app, build.Current())

		return err
	}

	if opts.configPath != "" {
		ctx, err = config.WithFile(ctx, opts.configPath)
		if err != nil {
			return err
		}
	}

	logger.ConfigureLogging(ctx, app)

	if err := setupTelemetry(ctx); err != nil {
		return err
	}

	defer func() {
		if err := telemetry.Shutdown(context.WithoutCancel(ctx)); err != nil {
			logger.Get(ctx).Warn("telemetry shutdown failed", "error", err)
		}
	}()

	cfg, err := config.Load(ctx)
	if err != nil {
		return err
	}

	if opts.format != "" {
		if cfg.Format, err = report.ParseFormat(opts.format); err != nil {
			return err
		}
	}

	if opts.interactive {
		if err := prompt(&cfg.Benchmark); err != nil {
			return err
		}

		if err := config.Validate(cfg); err != nil {
			return err
		}
	}

	if opts.demo {
		return demo(cfg.Benchmark, stdout)
	}

	rep, err := benchmark.NewRunner().Run(ctx, cfg.Benchmark)
	if rep != nil {
		if renderErr := report.Render(stdout, rep, cfg.Format); renderErr != nil {
			return errors.Join(err, renderErr)
		}
	}

	if err != nil {
		return err
	}

	if opts.savePath != "" {
		if err := envutil.WriteEnvFile(opts.savePath, config.Environ(cfg, rep.Seed)); err != nil {
			return fmt.Errorf("saving run settings: %w", err)
		}

		logger.Get(ctx).Info("run settings saved", "path", opts.savePath)
	}

	return rep.Err()
}

func setupTelemetry(ctx context.Context) error {
	tcfg, err := telemetry.LoadConfig(ctx, stage.Current(ctx).String())
	if err != nil {
		return err
	}

	if err := telemetry.Initialize(ctx, tcfg); err != nil {
		return err
	}

	shutdown.BeforeShutdown("telemetry", telemetry.Shutdown)

	return nil
}
