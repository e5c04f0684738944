// SPDX-License-Identifier: MIT
// Package: vizlath/cmd/vizlath
//
// chart.go — `vizlath chart`: generate → summarize → render.

package main

import (
	"fmt"

	"github.com/go-kit/log/level"
	"github.com/spf13/cobra"
	flag "github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/katalvlaran/vizlath/dataset"
	"github.com/katalvlaran/vizlath/render"
	"github.com/katalvlaran/vizlath/summary"
)

// Chart-only flag/viper keys (generation and threshold keys live in root.go).
const (
	cfgOut      = "out"
	cfgMarkdown = "markdown"
	cfgTitle    = "title"
	cfgScheme   = "scheme"
	cfgWidth    = "width"
	cfgHeight   = "height"
	cfgDPI      = "dpi"
)

var (
	chartCmd = &cobra.Command{
		Use:   "chart",
		Short: "generate a dataset and render its threshold chart",
		Example: `  vizlath chart --seed 42 --out demo.png
  vizlath chart --dist uniform --low 10 --high 20 --threshold 18 --markdown
  vizlath chart --seed 7 --scheme dark --width 8 --height 4.5 --dpi 96`,
		RunE: runChart,
	}

	chartFlags = flag.NewFlagSet("chart", flag.ContinueOnError)
)

func runChart(cmd *cobra.Command, _ []string) error {
	cmd.SilenceUsage = true

	logger, err := newLogger()
	if err != nil {
		return err
	}

	gen, err := datasetConfig()
	if err != nil {
		return err
	}
	level.Debug(logger).Log("msg", "generating dataset",
		"dist", gen.Dist, "samples", gen.Samples, "seed", gen.Seed)

	xs, err := dataset.Generate(gen)
	if err != nil {
		return err
	}

	st, err := summary.Summarize(xs)
	if err != nil {
		return err
	}
	level.Info(logger).Log("msg", "dataset ready",
		"count", st.Count, "mean", st.Mean, "std", st.StdDev,
		"min", st.Min, "max", st.Max)

	ccfg, err := chartConfig()
	if err != nil {
		return err
	}

	chart, err := render.Series(xs, ccfg)
	if err != nil {
		return err
	}

	// --markdown prints the inline embed to stdout instead of writing a file.
	if viper.GetBool(cfgMarkdown) {
		md, merr := chart.Markdown("", 0, 0)
		if merr != nil {
			return merr
		}
		fmt.Println(md)
		return nil
	}

	out := viper.GetString(cfgOut)
	if err := chart.SavePNG(out); err != nil {
		return err
	}
	level.Info(logger).Log("msg", "chart written", "path", out,
		"size", fmt.Sprintf("%gx%gin@%ddpi", ccfg.WidthIn, ccfg.HeightIn, ccfg.DPI))
	return nil
}

// chartConfig assembles the render configuration from the bound flags,
// starting from the library defaults.
func chartConfig() (render.ChartConfig, error) {
	scheme, err := render.ParseScheme(viper.GetString(cfgScheme))
	if err != nil {
		return render.ChartConfig{}, err
	}

	cfg := render.DefaultChartConfig()
	cfg.Title = viper.GetString(cfgTitle)
	cfg.Threshold = viper.GetFloat64(cfgThreshold)
	cfg.WidthIn = viper.GetFloat64(cfgWidth)
	cfg.HeightIn = viper.GetFloat64(cfgHeight)
	cfg.DPI = viper.GetInt(cfgDPI)
	cfg.Scheme = scheme
	return cfg, nil
}

func init() {
	chartFlags.String(cfgOut, "chart.png", "output PNG path")
	chartFlags.Bool(cfgMarkdown, false, "print a markdown <img> embed to stdout instead of writing a PNG")
	chartFlags.String(cfgTitle, render.DefaultTitle, "chart title")
	chartFlags.String(cfgScheme, render.Light.String(), "palette: light or dark")
	chartFlags.Float64(cfgWidth, render.DefaultWidthIn, "figure width in inches")
	chartFlags.Float64(cfgHeight, render.DefaultHeightIn, "figure height in inches")
	chartFlags.Int(cfgDPI, render.DefaultDPI, "raster density for PNG encoding")
	_ = viper.BindPFlags(chartFlags)

	chartCmd.Flags().AddFlagSet(genFlags)
	chartCmd.Flags().AddFlagSet(analysisFlags)
	chartCmd.Flags().AddFlagSet(chartFlags)
	rootCmd.AddCommand(chartCmd)
}
