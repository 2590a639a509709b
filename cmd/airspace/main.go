package main

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"

	"github.com/jessevdk/go-flags"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/gabriel-briffe/openaip-airspace/internal/config"
	"github.com/gabriel-briffe/openaip-airspace/internal/geo"
	"github.com/gabriel-briffe/openaip-airspace/internal/logger"
	"github.com/gabriel-briffe/openaip-airspace/internal/openair"
	"github.com/gabriel-briffe/openaip-airspace/internal/processor"
)

type Options struct {
	Logger logger.Logger `group:"Logger options"`

	ConfigFile string `short:"c" long:"config"    env:"CONFIG_FILE" description:"Path to configuration file" default:"config.yaml"`
	InputDir   string `short:"i" long:"input-dir" env:"INPUT_DIR"   description:"Read OpenAir sources from a local directory instead of fetching"`
	Output     string `short:"o" long:"output"    env:"OUTPUT_FILE" description:"Output GeoJSON path (overrides config)"`
	Report     string `short:"r" long:"report"    env:"REPORT_FILE" description:"Diagnostics report path" default:"airspace.report.json"`
	Minify     bool   `short:"m" long:"minify"    description:"Minify the output GeoJSON"`
	Strict     bool   `short:"s" long:"strict"    description:"Treat segmenter repairs as file failures"`
}

// sourceResult pairs one source's converted collection with its
// diagnostics. A failed source leaves the collection empty and never
// blocks its siblings.
type sourceResult struct {
	collection geo.FeatureCollection
	report     processor.FileReport
}

func main() {
	var opts Options
	parser := flags.NewParser(&opts, flags.Default)
	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	opts.Logger.Setup()

	cfg, err := config.Load(opts.ConfigFile)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}
	if opts.Output != "" {
		cfg.Output = opts.Output
	}

	client := processor.NewClient()

	log.Info().
		Int("sources", len(cfg.Sources)).
		Bool("strict", opts.Strict).
		Str("output", cfg.Output).
		Msg("Starting airspace pipeline")

	// Convert every source; a failed file is reported and skipped.
	results := make([]sourceResult, len(cfg.Sources))
	var g errgroup.Group
	g.SetLimit(4)
	for i, src := range cfg.Sources {
		i, src := i, src
		g.Go(func() error {
			results[i] = processSource(client, cfg, src, opts)
			return nil
		})
	}
	_ = g.Wait()

	var report processor.RunReport
	primary := geo.NewFeatureCollection()
	for i, res := range results {
		report.Add(res.report)
		if res.report.Failed() {
			log.Error().
				Str("source", cfg.Sources[i].Name).
				Str("error", res.report.Error).
				Msg("Source failed, excluded from output")
			continue
		}
		primary.Features = append(primary.Features, res.collection.Features...)
	}

	if report.FailedFiles == len(cfg.Sources) {
		writeReport(&report, opts.Report)
		log.Fatal().Msg("All sources failed, nothing to publish")
	}

	for _, raw := range cfg.DropClasses {
		primary = geo.FilterOut(primary, openair.ParseClass(raw))
	}

	merged := primary
	if cfg.External != nil {
		external, err := fetchExternal(client, cfg.External)
		if err != nil {
			log.Fatal().Err(err).Str("source", cfg.External.Name).Msg("External dataset failed")
		}
		merged, err = geo.Merge(primary, external)
		if err != nil {
			log.Fatal().Err(err).Msg("Merge aborted")
		}
	}

	data, err := processor.WriteCollection(cfg.Output, merged, opts.Minify)
	if err != nil {
		log.Fatal().Err(err).Str("path", cfg.Output).Msg("Failed to write output")
	}

	sum := processor.Checksum(data)
	previous, hadPrevious := processor.PreviousChecksum(cfg.Output)
	report.Checksum = sum
	report.Changed = !hadPrevious || previous != sum
	if err := processor.WriteChecksum(cfg.Output, sum); err != nil {
		log.Fatal().Err(err).Msg("Failed to write checksum")
	}

	writeReport(&report, opts.Report)

	log.Info().
		Int("features", len(merged.Features)).
		Int("failed_files", report.FailedFiles).
		Bool("changed", report.Changed).
		Str("checksum", sum).
		Msg("Airspace pipeline finished")
}

func processSource(client *http.Client, cfg *config.Config, src config.Source, opts Options) sourceResult {
	content, err := loadSource(client, cfg, src, opts.InputDir)
	if err != nil {
		return sourceResult{
			collection: geo.NewFeatureCollection(),
			report:     processor.FileReport{File: src.Name, Error: fmt.Sprintf("fetch: %v", err)},
		}
	}

	fc, rep := processor.ProcessFile(src.Name, content, opts.Strict)
	if src.KeepOnly != "" && !rep.Failed() {
		fc = geo.KeepOnly(fc, openair.ParseClass(src.KeepOnly))
		rep.Features = len(fc.Features)
	}
	return sourceResult{collection: fc, report: rep}
}

func loadSource(client *http.Client, cfg *config.Config, src config.Source, inputDir string) (string, error) {
	if inputDir != "" {
		data, err := os.ReadFile(filepath.Join(inputDir, src.Object))
		return string(data), err
	}
	data, err := processor.Fetch(client, processor.BucketURL(cfg.BucketURL, src.Object))
	return string(data), err
}

func fetchExternal(client *http.Client, ext *config.External) (geo.FeatureCollection, error) {
	data, err := processor.Fetch(client, ext.URL)
	if err != nil {
		return geo.FeatureCollection{}, err
	}
	fc, err := geo.TransformExternal(data)
	if err != nil {
		return geo.FeatureCollection{}, err
	}
	if ext.KeepOnly != "" {
		fc = geo.KeepOnly(fc, openair.ParseClass(ext.KeepOnly))
	}

	log.Info().
		Str("source", ext.Name).
		Int("features", len(fc.Features)).
		Msg("External dataset transformed")

	return fc, nil
}

func writeReport(r *processor.RunReport, path string) {
	if path == "" {
		return
	}
	if err := r.Write(path); err != nil {
		log.Error().Err(err).Str("path", path).Msg("Failed to write run report")
	}
}
