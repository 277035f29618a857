// tuplegen generates a typed tuple package with compile-time position
// access.
//
//	tuplegen generate --config tuplegen.yaml
//	tuplegen check
//	tuplegen plan --max 4
//	tuplegen watch
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/dustin/go-humanize"
	"gopkg.in/alecthomas/kingpin.v2"

	"github.com/syssam/typedtuple/compiler"
	"github.com/syssam/typedtuple/compiler/gen"
	"github.com/syssam/typedtuple/compiler/load"
)

// flags holds the global command line flags.
type flags struct {
	config   string
	maxArity int
	target   string
	pkg      string
	workers  int
	verbose  bool
}

// options converts flags set on the command line into generator options.
// They take precedence over the declaration file.
func (f *flags) options(log *slog.Logger) []gen.Option {
	opts := []gen.Option{gen.WithLogger(log)}
	if f.maxArity != 0 {
		opts = append(opts, gen.WithMaxArity(f.maxArity))
	}
	if f.target != "" {
		opts = append(opts, gen.WithTarget(f.target))
	}
	if f.pkg != "" {
		opts = append(opts, gen.WithPackage(f.pkg))
	}
	if f.workers != 0 {
		opts = append(opts, gen.WithWorkers(f.workers))
	}
	return opts
}

// configPath returns the declaration file to load. The default file is
// optional, so a missing one is skipped.
func (f *flags) configPath() string {
	if f.config != load.DefaultFile {
		return f.config
	}
	if _, err := os.Stat(f.config); errors.Is(err, os.ErrNotExist) {
		return ""
	}
	return f.config
}

func main() {
	app := kingpin.New("tuplegen", "Generates fixed-arity tuples with typed position accessors.")
	app.HelpFlag.Short('h')

	var f flags
	app.Flag("config", "declaration file").Short('c').Default(load.DefaultFile).StringVar(&f.config)
	app.Flag("max", "maximum tuple arity, overrides the declaration file").Short('n').IntVar(&f.maxArity)
	app.Flag("target", "output directory of the tuple package").Short('o').StringVar(&f.target)
	app.Flag("package", "import path of the tuple package").Short('p').StringVar(&f.pkg)
	app.Flag("workers", "number of files rendered in parallel").IntVar(&f.workers)
	app.Flag("verbose", "log every written file").Short('v').BoolVar(&f.verbose)

	generateCmd := app.Command("generate", "Write the tuple package and records.").Default()
	checkCmd := app.Command("check", "Fail if generated files are out of date.")
	planCmd := app.Command("plan", "Print the accessor shapes without writing files.")
	watchCmd := app.Command("watch", "Regenerate whenever the declaration file changes.")

	cmd := kingpin.MustParse(app.Parse(os.Args[1:]))

	log := newLogger(os.Stderr, f.verbose)
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var err error
	switch cmd {
	case generateCmd.FullCommand():
		err = runGenerate(ctx, &f, log)
	case checkCmd.FullCommand():
		err = runCheck(ctx, &f, log)
	case planCmd.FullCommand():
		err = runPlan(os.Stdout, &f, log)
	case watchCmd.FullCommand():
		err = runWatch(ctx, &f, log)
	}
	if err != nil {
		log.Error(cmd+" failed", "err", err)
		stop()
		os.Exit(1)
	}
}

func runGenerate(ctx context.Context, f *flags, log *slog.Logger) error {
	m, err := compiler.Generate(ctx, f.configPath(), f.options(log)...)
	if err != nil {
		return err
	}
	report(log, m)
	return nil
}

func runCheck(ctx context.Context, f *flags, log *slog.Logger) error {
	err := compiler.Check(ctx, f.configPath(), f.options(log)...)
	var drift *gen.DriftError
	if errors.As(err, &drift) {
		for _, p := range drift.Changed {
			fmt.Fprintf(os.Stderr, "changed: %s\n", p)
		}
		for _, p := range drift.Missing {
			fmt.Fprintf(os.Stderr, "missing: %s\n", p)
		}
		for _, p := range drift.Stale {
			fmt.Fprintf(os.Stderr, "stale:   %s\n", p)
		}
		return errors.New("generated files are out of date, run tuplegen generate")
	}
	if err == nil {
		log.Info("generated files are up to date")
	}
	return err
}

// report logs the generation metrics.
func report(log *slog.Logger, m *gen.WriterMetrics) {
	log.Info("wrote tuple package",
		"files", m.FilesGenerated,
		"removed", m.FilesRemoved,
		"size", humanize.Bytes(uint64(m.TotalBytes)))
}
