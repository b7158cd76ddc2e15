package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/darianmavgo/internseed/config"
	"github.com/darianmavgo/internseed/converters"
	_ "github.com/darianmavgo/internseed/converters/all"
	"github.com/darianmavgo/internseed/converters/common"
	"github.com/darianmavgo/internseed/generator"
	"github.com/darianmavgo/internseed/logging"

	"github.com/sirupsen/logrus"
)

// openWorkbook opens the input with the driver matching its extension.
func openWorkbook(cfg *config.Config, logger logrus.FieldLogger) (common.RowProvider, func(), error) {
	driverName, err := converters.DriverFor(cfg.InputPath)
	if err != nil {
		return nil, nil, err
	}

	inputFile, err := os.Open(cfg.InputPath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open input: %w", err)
	}

	provider, err := converters.Open(driverName, inputFile, &common.ConversionConfig{Sheet: cfg.Sheet})
	if err != nil {
		inputFile.Close()
		return nil, nil, fmt.Errorf("failed to open workbook: %w", err)
	}

	cleanup := func() {
		// Clean up workbook resources if it implements io.Closer
		if c, ok := provider.(io.Closer); ok {
			if err := c.Close(); err != nil {
				logging.LogError(logger, "failed to close workbook", err)
			}
		}
		inputFile.Close()
	}
	return provider, cleanup, nil
}

func run(ctx context.Context, cfg *config.Config, logger *logrus.Logger) (int, error) {
	provider, cleanup, err := openWorkbook(cfg, logger)
	if err != nil {
		return 0, err
	}
	defer cleanup()

	sheet := common.SelectSheet(provider, &common.ConversionConfig{Sheet: cfg.Sheet})
	if sheet == "" {
		return 0, fmt.Errorf("sheet %q not found in %s", cfg.Sheet, cfg.InputPath)
	}

	gen, err := generator.New(generator.DefaultRecruiterID, generator.WithLogger(logger))
	if err != nil {
		return 0, err
	}

	// Ensure output directory exists
	if err := os.MkdirAll(filepath.Dir(cfg.OutputPath), 0755); err != nil {
		return 0, fmt.Errorf("failed to create output directory: %w", err)
	}

	outputFile, err := os.Create(cfg.OutputPath)
	if err != nil {
		return 0, fmt.Errorf("failed to create output file: %w", err)
	}
	defer outputFile.Close()

	logger.WithFields(logrus.Fields{"input": cfg.InputPath, "sheet": sheet}).Debug("reading workbook")
	n, err := gen.Generate(ctx, provider, sheet, filepath.Base(cfg.InputPath), outputFile)
	if err == nil && n == 0 {
		logging.LogWarn(logger, fmt.Sprintf("no listings found in sheet %s", sheet))
	}
	return n, err
}

func main() {
	cfg, err := config.LoadOptional(config.FileName)
	if err != nil {
		logging.LogFatal(logging.New(false), "failed to load config", err)
	}
	logger := logging.New(cfg.Verbose)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	n, err := run(ctx, cfg, logger)
	if err != nil {
		cancel()
		logging.LogFatal(logger, "failed to generate SQL", err)
	}

	logging.LogInfo(logger, fmt.Sprintf("wrote %d INSERT statements to %s", n, cfg.OutputPath))
}
