package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"wabbex/internal/archive"
	"wabbex/internal/config"
	"wabbex/internal/deps"
	"wabbex/internal/logging"
	"wabbex/internal/modlist"
	"wabbex/internal/render"
)

type extractOptions struct {
	modPages     bool
	dumpManifest string
}

func runExtract(cmd *cobra.Command, cmdCtx *commandContext, inputArg, outputArg string, opts extractOptions) error {
	cfg, err := cmdCtx.ensureConfig()
	if err != nil {
		return err
	}

	logger, err := logging.NewFromConfig(cfg)
	if err != nil {
		return fmt.Errorf("initialize logging: %w", err)
	}
	runID := uuid.NewString()
	logger = logger.With(logging.String(logging.FieldRunID, runID))

	inputPath, err := config.ExpandPath(inputArg)
	if err != nil {
		return fmt.Errorf("resolve archive path: %w", err)
	}
	outputPath, err := config.ExpandPath(outputArg)
	if err != nil {
		return fmt.Errorf("resolve output path: %w", err)
	}

	if _, err := os.Stat(outputPath); err == nil {
		return fmt.Errorf("refusing to overwrite %s: %w", outputPath, render.ErrOutputExists)
	} else if !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("check output path: %w", err)
	}

	if err := deps.CheckRequired(deps.Requirements(cfg)); err != nil {
		return err
	}

	logger.Info("starting extraction",
		logging.String("archive", inputPath),
		logging.String("output", outputPath),
		logging.Bool("mod_pages", opts.modPages))

	stageTimeout := time.Duration(cfg.Detector.TimeoutSeconds) * time.Second
	baseCtx := cmd.Context()
	if baseCtx == nil {
		baseCtx = context.Background()
	}

	opener := archive.NewOpener(cfg.DetectorBinary(), cfg.Modlist.ManifestName, cfg.Paths.WorkDir, logger)
	manifestPath, cleanup, err := withStageTimeout(baseCtx, stageTimeout, func(ctx context.Context) (string, func(), error) {
		return opener.ExtractManifest(ctx, inputPath)
	})
	if err != nil {
		return err
	}
	defer cleanup()

	loader := modlist.NewLoader(cfg.DetectorBinary(), logger)
	loadCtx, cancelLoad := context.WithTimeout(baseCtx, stageTimeout)
	manifest, err := loader.Load(loadCtx, manifestPath)
	cancelLoad()
	if err != nil {
		return err
	}

	if strings.TrimSpace(opts.dumpManifest) != "" {
		if err := dumpManifest(manifest, opts.dumpManifest); err != nil {
			return err
		}
		logger.Info("dumped manifest", logging.String("path", opts.dumpManifest))
	}

	entries := manifest.Archives()
	validator := modlist.NewValidator(cfg.Modlist.TypeMarker)
	records := validator.CollectRecords(entries, logger)

	formatter := render.Formatter{BaseURL: cfg.Modlist.NexusBaseURL, UseModURLs: opts.modPages}
	if err := render.WriteFile(outputPath, formatter.Render(records)); err != nil {
		return err
	}

	logger.Info("extraction complete",
		logging.Int("entries", len(entries)),
		logging.Int("records", len(records)),
		logging.String("output", outputPath))

	out := cmd.OutOrStdout()
	printStatus(out, statusOK, fmt.Sprintf("Wrote %d of %d entries to %s", len(records), len(entries), outputPath))
	if skipped := len(entries) - len(records); skipped > 0 {
		printStatus(out, statusWarn, fmt.Sprintf("Skipped %d entries without usable Nexus metadata", skipped))
	}
	if summary := renderRecordSummary(records); summary != "" {
		fmt.Fprintln(out, summary)
	}
	return nil
}

func withStageTimeout(parent context.Context, timeout time.Duration, fn func(context.Context) (string, func(), error)) (string, func(), error) {
	ctx, cancel := context.WithTimeout(parent, timeout)
	defer cancel()
	return fn(ctx)
}

func dumpManifest(manifest *modlist.Manifest, target string) error {
	path, err := config.ExpandPath(target)
	if err != nil {
		return fmt.Errorf("resolve manifest dump path: %w", err)
	}
	data, err := manifest.DumpJSON()
	if err != nil {
		return fmt.Errorf("encode manifest: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write manifest dump: %w", err)
	}
	return nil
}
