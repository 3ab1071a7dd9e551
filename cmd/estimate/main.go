// Command estimate prices a YAML crop plan against the reference data and prints
// the per-row breakdown with totals.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/osse101/CropCalc_Go/internal/catalog"
	"github.com/osse101/CropCalc_Go/internal/config"
	"github.com/osse101/CropCalc_Go/internal/domain"
	"github.com/osse101/CropCalc_Go/internal/format"
	"github.com/osse101/CropCalc_Go/internal/logger"
	"github.com/osse101/CropCalc_Go/internal/plan"
	"github.com/osse101/CropCalc_Go/internal/session"
)

// Exit codes
const (
	exitOK           = 0
	exitFailed       = 1
	exitUsage        = 2
	exitOverCapacity = 3
)

const usage = `Usage: estimate [flags] <plan.yaml>

Prices a crop plan. Channel quantities are filled in order (sold, jarred, kegged, aged);
any channel that would push a row past its harvest is reduced and reported.

Flags:
`

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stdout, os.Stderr))
}

type options struct {
	cropsPath string
	probPath  string
	initPlan  bool
	asJSON    bool
	noColor   bool
	planPath  string
}

func parseFlags(args []string, stderr io.Writer) (*options, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	opts := &options{}
	fs := flag.NewFlagSet("estimate", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprint(stderr, usage)
		fs.PrintDefaults()
	}
	fs.StringVar(&opts.cropsPath, "crops", cfg.CropsPath, "crop catalog file")
	fs.StringVar(&opts.probPath, "probabilities", cfg.ProbabilitiesPath, "quality probability file")
	fs.BoolVar(&opts.initPlan, "init", false, "write an example plan to <plan.yaml> and exit")
	fs.BoolVar(&opts.asJSON, "json", false, "print the report as JSON")
	fs.BoolVar(&opts.noColor, "no-color", os.Getenv("NO_COLOR") != "", "disable colored output")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() != 1 {
		fs.Usage()
		return nil, errors.New("expected exactly one plan file")
	}
	opts.planPath = fs.Arg(0)
	return opts, nil
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	opts, err := parseFlags(args, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}
		fmt.Fprintln(stderr, err)
		return exitUsage
	}

	out := console{w: stdout, color: !opts.noColor}
	errOut := console{w: stderr, color: !opts.noColor}

	if opts.initPlan {
		if err := writeExample(opts.planPath); err != nil {
			errOut.Error("%v", err)
			return exitFailed
		}
		out.Success("Wrote example plan to %s", opts.planPath)
		return exitOK
	}

	// Loader logs go to stderr so stdout stays clean for -json
	logger.InitLoggerWithWriter(logger.NewConfig(logger.LogLevelWarn, logger.LogFormatText, "cropcalc-estimate", "", "", false), stderr)

	data, err := catalog.NewLoader().Load(ctx, opts.cropsPath, opts.probPath)
	if err != nil {
		errOut.Error("Failed to load reference data: %v", err)
		return exitFailed
	}

	p, err := plan.Load(opts.planPath)
	if err != nil {
		errOut.Error("%v", err)
		return exitFailed
	}

	state, corrections, err := p.ToState(catalog.NewResolver(data))
	if err != nil {
		errOut.Error("%v", err)
		return exitFailed
	}

	report, err := session.Evaluate(data, state)
	if err != nil {
		errOut.Error("%v", err)
		return exitFailed
	}

	if opts.asJSON {
		enc := json.NewEncoder(stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(struct {
			*session.Report
			Corrections []domain.Correction `json:"corrections"`
		}{report, corrections}); err != nil {
			errOut.Error("%v", err)
			return exitFailed
		}
	} else {
		printReport(out, state, report, corrections)
	}

	if !report.Valid {
		return exitOverCapacity
	}
	return exitOK
}

func writeExample(path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("%s already exists", path)
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := plan.Example().Encode(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func printReport(out console, state *domain.SessionState, report *session.Report, corrections []domain.Correction) {
	out.Header(fmt.Sprintf("%s · level %d", format.SeasonTitle(state.Season), state.SkillLevel))
	if state.HasTiller || state.HasArtisan {
		out.Info("Professions: tiller=%t artisan=%t", state.HasTiller, state.HasArtisan)
	}

	for _, c := range corrections {
		out.Warning("%s %s reduced from %s to %s (%s over harvest)",
			c.RowID, c.Channel, format.Quantity(c.Requested), format.Quantity(c.Applied), format.Quantity(c.Excess))
	}
	for _, c := range report.Capacity {
		if !c.OK {
			out.Error("%s %s allocates %s of %s harvested", c.RowID, c.CropName,
				format.Quantity(c.Allocated), format.Quantity(c.Harvest))
		}
	}

	fmt.Fprintln(out.w)
	fmt.Fprint(out.w, format.BreakdownTable(report.Totals))
	fmt.Fprintln(out.w)

	if report.Totals.TotalProfit < 0 {
		out.Warning("Profit: %s", format.Currency(report.Totals.TotalProfit))
	} else {
		out.Success("Profit: %s", format.Currency(report.Totals.TotalProfit))
	}
}
