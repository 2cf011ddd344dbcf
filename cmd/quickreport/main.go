// Command quickreport measures the fast math approximations, the MSWS
// generator and the fixed-key hash families, logging a summary and
// optionally writing CSV tables.
package main

import (
	"flag"
	"log/slog"
	"os"
	"strings"

	"github.com/pthm-cable/quickmath/config"
	"github.com/pthm-cable/quickmath/hasher"
	"github.com/pthm-cable/quickmath/report"
)

func main() {
	configPath := flag.String("config", "", "Path to config.yaml (empty = use defaults)")
	outputDir := flag.String("output-dir", "", "Output directory for CSV tables and config snapshot (overrides config)")
	seed := flag.Int64("seed", -1, "Seed for the generator and hash checks (-1 = use config)")
	algs := flag.String("alg", "", "Comma-separated hash families (empty = use config)")
	flag.Parse()

	// Set up slog (JSON to stdout for structured logging)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	if err := config.Init(*configPath); err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	cfg := config.Cfg()

	// CLI flags override config
	if *seed >= 0 {
		cfg.RNG.Seed = uint64(*seed)
		cfg.Hash.Seed = uint64(*seed)
	}
	if *algs != "" {
		cfg.Hash.Algorithms = strings.Split(*algs, ",")
		cfg.Derived.Algorithms = cfg.Derived.Algorithms[:0]
		for _, name := range cfg.Hash.Algorithms {
			alg, err := hasher.ParseAlgorithm(strings.TrimSpace(name))
			if err != nil {
				slog.Error("invalid -alg", "error", err)
				os.Exit(1)
			}
			cfg.Derived.Algorithms = append(cfg.Derived.Algorithms, alg)
		}
	}
	if *outputDir != "" {
		cfg.Output.Dir = *outputDir
	}

	om, err := report.NewOutputManager(cfg.Output.Dir)
	if err != nil {
		slog.Error("failed to create output manager", "error", err)
		os.Exit(1)
	}
	defer om.Close()

	if err := om.WriteConfig(cfg); err != nil {
		slog.Error("failed to write config", "error", err)
	}

	perf := report.NewPerfCollector()

	trig := report.SweepTrig(cfg, perf)
	for _, row := range trig {
		slog.Info("accuracy",
			"name", row.Name,
			"domain", []float64{row.Lo, row.Hi},
			"max_err", row.MaxErr,
			"max_err_at", row.MaxErrAt,
			"p99_err", row.P99Err,
			"ns_per_call", row.NsPerCall,
		)
	}
	inv := report.SweepInvSqrt(cfg, perf)
	slog.Info("accuracy",
		"name", inv.Name,
		"domain", []float64{inv.Lo, inv.Hi},
		"max_rel_err", inv.MaxErr,
		"max_err_at", inv.MaxErrAt,
		"ns_per_call", inv.NsPerCall,
	)
	if err := om.WriteAccuracy(append(trig, inv)...); err != nil {
		slog.Error("failed to write accuracy", "error", err)
	}

	prng := report.PRNGUniformity(cfg, perf)
	slog.Info("prng",
		"seed", prng.Seed,
		"draws", prng.Draws,
		"chi_square", prng.ChiSquare,
		"dof", prng.DoF,
		"mean", prng.Mean,
		"ns_per_call", prng.NsPerCall,
	)
	if err := om.WritePRNG(prng); err != nil {
		slog.Error("failed to write prng", "error", err)
	}

	hashes := report.HashDistribution(cfg, perf)
	for _, row := range hashes {
		slog.Info("hash",
			"algorithm", row.Algorithm,
			"key_bits", row.KeyBits,
			"keys", row.Keys,
			"chi_square", row.ChiSquare,
			"collisions", row.Collisions,
			"avalanche", row.Avalanche,
			"ns_per_call", row.NsPerCall,
		)
	}
	if err := om.WriteHash(hashes...); err != nil {
		slog.Error("failed to write hash", "error", err)
	}

	for _, s := range perf.Stats() {
		slog.Info("perf", "stats", s)
	}
	slog.Info("report complete", "output_dir", om.Dir())
}
