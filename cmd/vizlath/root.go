// SPDX-License-Identifier: MIT
// Package: vizlath/cmd/vizlath
//
// root.go — command tree, shared flags and ambient wiring.
//
// Conventions:
//   - Flags bind into viper; precedence is flags > config file > defaults.
//   - Logs are logfmt on stderr, filtered by --log.level; results (tables,
//     embed tags) go to stdout, files go where --out points. Logs never
//     pollute stdout.
//   - Every command is RunE: errors propagate to Execute, land on stderr and
//     exit non-zero.

package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/spf13/cobra"
	flag "github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/katalvlaran/vizlath/dataset"
	"github.com/katalvlaran/vizlath/render"
)

// Flag/viper keys. Generation keys are shared by every subcommand.
const (
	cfgConfigFile = "config"
	cfgLogLevel   = "log.level"

	cfgDist    = "dist"
	cfgSamples = "samples"
	cfgSeed    = "seed"
	cfgMean    = "mean"
	cfgStdDev  = "stddev"
	cfgLow     = "low"
	cfgHigh    = "high"

	cfgThreshold = "threshold"
)

var (
	rootCmd = &cobra.Command{
		Use:   "vizlath",
		Short: "random datasets, summary statistics and threshold charts",
		Long: `vizlath generates reproducible random datasets (uniform or normal),
summarizes them (mean, spread, extrema, quartiles) and renders threshold
charts as PNG files or inline markdown embeds.

Pass --seed for bit-for-bit reproducible output; without it every run
draws a fresh dataset.`,
		Version: "0.1.0",
	}

	// rootFlags are persistent: config file locator and log verbosity.
	rootFlags = flag.NewFlagSet("", flag.ContinueOnError)

	// genFlags describe the dataset to draw; shared by chart and stats so
	// the two commands accept identical generation arguments.
	genFlags = flag.NewFlagSet("generation", flag.ContinueOnError)

	// analysisFlags carry the threshold shared by chart (rule + fill) and
	// stats (above/below counts).
	analysisFlags = flag.NewFlagSet("analysis", flag.ContinueOnError)

	cfgFile string
)

// Execute runs the command tree; any error has already been printed by
// cobra, so only the exit code is left to set.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// newLogger builds the stderr logfmt logger filtered to --log.level.
func newLogger() (log.Logger, error) {
	logger := log.NewLogfmtLogger(log.NewSyncWriter(os.Stderr))

	lvl := strings.ToLower(viper.GetString(cfgLogLevel))
	switch lvl {
	case "debug":
		logger = level.NewFilter(logger, level.AllowDebug())
	case "", "info":
		logger = level.NewFilter(logger, level.AllowInfo())
	case "warn":
		logger = level.NewFilter(logger, level.AllowWarn())
	case "error":
		logger = level.NewFilter(logger, level.AllowError())
	default:
		return nil, fmt.Errorf("root: unknown log level %q (want debug, info, warn or error)", lvl)
	}
	return log.With(logger, "ts", log.DefaultTimestampUTC), nil
}

// datasetConfig assembles the generation request from the bound flags.
// Validation is left to dataset.Generate so its errors stay the single
// source of truth.
func datasetConfig() (dataset.Config, error) {
	dist, err := dataset.ParseDistribution(viper.GetString(cfgDist))
	if err != nil {
		return dataset.Config{}, err
	}
	return dataset.Config{
		Samples: viper.GetInt(cfgSamples),
		Dist:    dist,
		Low:     viper.GetFloat64(cfgLow),
		High:    viper.GetFloat64(cfgHigh),
		Mean:    viper.GetFloat64(cfgMean),
		StdDev:  viper.GetFloat64(cfgStdDev),
		Seed:    viper.GetInt64(cfgSeed),
	}, nil
}

func init() {
	rootFlags.StringVar(&cfgFile, cfgConfigFile, "", "config file (YAML/TOML/JSON; flags win over file values)")
	rootFlags.String(cfgLogLevel, "info", "log verbosity: debug, info, warn or error")
	_ = viper.BindPFlags(rootFlags)
	rootCmd.PersistentFlags().AddFlagSet(rootFlags)

	genFlags.String(cfgDist, dataset.Normal.String(), "distribution to draw from: uniform or normal")
	genFlags.Int(cfgSamples, dataset.DefaultSamples, "number of samples to generate")
	genFlags.Int64(cfgSeed, 0, "RNG seed; 0 draws a fresh one from the OS (non-deterministic)")
	genFlags.Float64(cfgMean, dataset.DefaultMean, "normal: location (mean)")
	genFlags.Float64(cfgStdDev, dataset.DefaultStdDev, "normal: scale (standard deviation), > 0")
	genFlags.Float64(cfgLow, dataset.DefaultLow, "uniform: inclusive lower bound")
	genFlags.Float64(cfgHigh, dataset.DefaultHigh, "uniform: exclusive upper bound, > low")
	_ = viper.BindPFlags(genFlags)

	analysisFlags.Float64(cfgThreshold, render.DefaultThreshold, "threshold level for chart highlighting and stats counts")
	_ = viper.BindPFlags(analysisFlags)

	cobra.OnInitialize(initConfig)
}

// initConfig loads the optional config file before any RunE fires.
func initConfig() {
	if cfgFile == "" {
		return
	}
	viper.SetConfigFile(cfgFile)
	if err := viper.ReadInConfig(); err != nil {
		fmt.Fprintln(os.Stderr, "vizlath:", err)
		os.Exit(1)
	}
}
