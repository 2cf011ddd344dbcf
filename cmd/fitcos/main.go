// Command fitcos refits the coefficients of an even cosine polynomial on
// [0, π/2] with Nelder-Mead, minimising the maximum absolute error, and
// compares the result with the built-in approximator of the same size.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"math"
	"os"
	"path/filepath"
	"time"

	"github.com/pthm-cable/quickmath/config"
	"github.com/pthm-cable/quickmath/report"
)

func main() {
	configPath := flag.String("config", "", "Base config YAML file (empty = use defaults)")
	terms := flag.Int("terms", 0, "Polynomial coefficients, 3 to 5 (0 = use config)")
	maxEvals := flag.Int("max-evals", 0, "Maximum number of evaluations (0 = use config)")
	outputDir := flag.String("output", "", "Directory to save the config used (empty = don't save)")
	flag.Parse()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	if err := config.Init(*configPath); err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	cfg := config.Cfg()
	if *terms != 0 {
		cfg.Fit.Terms = *terms
	}
	if *maxEvals != 0 {
		cfg.Fit.MaxEvals = *maxEvals
	}
	if err := cfg.Validate(); err != nil {
		slog.Error("invalid flags", "error", err)
		os.Exit(1)
	}

	slog.Info("starting Nelder-Mead fit",
		"terms", cfg.Fit.Terms,
		"samples", cfg.Fit.Samples,
		"max_evals", cfg.Fit.MaxEvals,
	)

	start := time.Now()
	res, err := report.FitCosine(cfg)
	if err != nil {
		slog.Error("fit failed", "error", err)
		os.Exit(1)
	}

	slog.Info("fit complete",
		"evals", res.Evals,
		"status", res.Status,
		"elapsed", time.Since(start).Round(time.Millisecond).String(),
		"taylor_max_err", res.StartErr,
		"fitted_max_err", res.MaxErr,
	)
	for i, c := range res.Coeffs {
		slog.Info("coefficient", "power", 2*i, "value", fmt.Sprintf("%.13g", c))
	}

	if ap, ok := report.Shipped(cfg.Fit.Terms); ok {
		var worst float64
		for _, x := range report.QuarterSamples(cfg.Fit.Samples) {
			worst = max(worst, math.Abs(float64(ap.Fn(float32(x)))-math.Cos(x)))
		}
		slog.Info("built-in comparison",
			"name", ap.Name,
			"builtin_max_err", worst,
			"fitted_max_err", res.MaxErr,
		)
	}

	if *outputDir != "" {
		if err := os.MkdirAll(*outputDir, 0755); err != nil {
			slog.Error("failed to create output directory", "error", err)
			os.Exit(1)
		}
		path := filepath.Join(*outputDir, "fit_config.yaml")
		if err := cfg.WriteYAML(path); err != nil {
			slog.Error("failed to write config", "error", err)
			os.Exit(1)
		}
		slog.Info("config saved", "path", path)
	}
}
