// Command tstbench compares the ternary and binary string trees across input
// sizes and insertion cases and saves the results as CSV.
package main

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/carlmjohnson/versioninfo"
	_ "github.com/joho/godotenv/autoload"
	"github.com/urfave/cli/v2"
	_ "go.uber.org/automaxprocs"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/e11jah/tstbench"
	"github.com/e11jah/tstbench/bench"
	"github.com/e11jah/tstbench/internal/report"
)

var registry = map[string]tstbench.Factory{
	"tst": tstbench.NewTernary,
	"bst": tstbench.NewBinary,
}

func main() {
	if err := newApp().Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func newApp() *cli.App {
	app := &cli.App{
		Name:    "tstbench",
		Usage:   "ternary vs binary search tree benchmark",
		Version: versioninfo.Short(),
		Action:  runBench,
	}

	app.Flags = []cli.Flag{
		&cli.StringFlag{
			Name:    "name",
			Usage:   "name of the person running the comparison, used in the output file name",
			Value:   "local",
			EnvVars: []string{"TSTBENCH_NAME"},
		},
		&cli.StringFlag{
			Name:    "out-dir",
			Usage:   "directory the CSV is written to",
			Value:   "data",
			EnvVars: []string{"TSTBENCH_OUT_DIR"},
		},
		&cli.IntSliceFlag{
			Name:  "sizes",
			Usage: "explicit word-set sizes; overrides the size grid",
		},
		&cli.BoolFlag{
			Name:    "hpc",
			Usage:   "use the large-scale size grid starting at 1M words",
			EnvVars: []string{"TSTBENCH_HPC"},
		},
		&cli.IntFlag{
			Name:    "step",
			Usage:   "use a linear size grid step, 2*step, ... up to max-size",
			EnvVars: []string{"TSTBENCH_STEP"},
		},
		&cli.IntFlag{
			Name:    "max-size",
			Usage:   "upper bound of the large-scale and linear size grids",
			Value:   5_000_000,
			EnvVars: []string{"TSTBENCH_MAX_SIZE"},
		},
		&cli.IntFlag{
			Name:    "repeat",
			Usage:   "trials per variant and size",
			Value:   3,
			EnvVars: []string{"TSTBENCH_REPEAT"},
		},
		&cli.StringSliceFlag{
			Name:  "cases",
			Usage: "insertion cases to run (best, worst, average)",
			Value: cli.NewStringSlice("best", "worst", "average"),
		},
		&cli.StringSliceFlag{
			Name:  "variants",
			Usage: "tree variants to compare (tst, bst)",
			Value: cli.NewStringSlice("tst", "bst"),
		},
		&cli.Int64Flag{
			Name:    "seed",
			Usage:   "word generator seed; 0 picks a random one",
			Value:   bench.DefaultSeed,
			EnvVars: []string{"TSTBENCH_SEED"},
		},
		&cli.StringFlag{
			Name:    "log-level",
			Usage:   "log level",
			Value:   "info",
			EnvVars: []string{"TSTBENCH_LOG_LEVEL"},
		},
	}

	return app
}

func runBench(cctx *cli.Context) error {
	logger, err := newLogger(cctx.String("log-level"))
	if err != nil {
		return err
	}
	defer func() {
		_ = logger.Sync()
	}()

	sizes, err := pickSizes(cctx.IntSlice("sizes"), cctx.Int("step"), cctx.Bool("hpc"), cctx.Int("max-size"))
	if err != nil {
		return err
	}
	variants, err := pickVariants(cctx.StringSlice("variants"))
	if err != nil {
		return err
	}
	cases, err := pickCases(cctx.StringSlice("cases"))
	if err != nil {
		return err
	}

	runLog := logger.With(zap.String("source", "tstbench_main"))
	runLog.Info("starting comparison",
		zap.Ints("sizes", sizes),
		zap.Strings("variants", cctx.StringSlice("variants")),
		zap.Int("repeat", cctx.Int("repeat")),
		zap.Int64("seed", cctx.Int64("seed")),
	)

	// one generator for the whole run so every case draws from the same seeded stream
	gen := bench.NewGenerator(cctx.Int64("seed"))
	runner := bench.NewRunner(bench.NewProcSampler())

	tables := make([]report.CaseTable, 0, len(cases))
	for _, c := range cases {
		table, err := bench.Compare(sizes, variants, cctx.Int("repeat"), c,
			bench.WithGenerator(gen),
			bench.WithRunner(runner),
			bench.WithLogger(runLog),
		)
		if err != nil {
			return fmt.Errorf("%s case: %w", c, err)
		}
		ct := report.CaseTable{Case: c, Table: table}
		tables = append(tables, ct)

		if err := report.Summary(os.Stdout, ct); err != nil {
			return err
		}
	}

	path, err := report.Save(cctx.String("out-dir"), cctx.String("name"), tables)
	if err != nil {
		return err
	}
	runLog.Info("saved results", zap.String("path", path))
	return nil
}

func newLogger(level string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("%w: log level %q", bench.ErrInvalidArgument, level)
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	return cfg.Build()
}

func pickSizes(explicit []int, step int, hpc bool, maxSize int) ([]int, error) {
	if len(explicit) > 0 {
		for _, n := range explicit {
			if n <= 0 {
				return nil, fmt.Errorf("%w: size %d", bench.ErrInvalidArgument, n)
			}
		}
		return explicit, nil
	}
	if step != 0 {
		return bench.StepSizes(step, maxSize)
	}
	if hpc {
		return bench.ScaleSizes(bench.ScaleStart, maxSize)
	}
	return bench.LocalSizes(), nil
}

func pickVariants(labels []string) ([]bench.Variant, error) {
	variants := make([]bench.Variant, 0, len(labels))
	for _, l := range labels {
		l = strings.TrimSpace(l)
		factory, ok := registry[l]
		if !ok {
			return nil, fmt.Errorf("%w: unknown variant %q", bench.ErrInvalidArgument, l)
		}
		variants = append(variants, bench.Variant{Label: l, Factory: factory})
	}
	return variants, nil
}

func pickCases(names []string) ([]bench.Case, error) {
	cases := make([]bench.Case, 0, len(names))
	for _, n := range names {
		c, err := bench.ParseCase(strings.TrimSpace(n))
		if err != nil {
			return nil, err
		}
		cases = append(cases, c)
	}
	return cases, nil
}
