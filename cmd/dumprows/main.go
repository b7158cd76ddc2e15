package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/darianmavgo/internseed/config"
	"github.com/darianmavgo/internseed/converters"
	_ "github.com/darianmavgo/internseed/converters/all"
	"github.com/darianmavgo/internseed/converters/common"
	"github.com/darianmavgo/internseed/dumper"
	"github.com/darianmavgo/internseed/logging"

	"github.com/sirupsen/logrus"
)

func dump(ctx context.Context, cfg *config.Config, w io.Writer, logger *logrus.Logger) (int, error) {
	driverName, err := converters.DriverFor(cfg.InputPath)
	if err != nil {
		return 0, err
	}

	file, err := os.Open(cfg.InputPath)
	if err != nil {
		return 0, fmt.Errorf("failed to open input file: %w", err)
	}
	defer file.Close()

	convCfg := &common.ConversionConfig{Sheet: cfg.Sheet}
	provider, err := converters.Open(driverName, file, convCfg)
	if err != nil {
		return 0, fmt.Errorf("failed to open workbook: %w", err)
	}

	// Clean up workbook resources if it implements io.Closer
	if c, ok := provider.(io.Closer); ok {
		defer func() {
			if err := c.Close(); err != nil {
				logging.LogError(logger, "failed to close workbook", err)
			}
		}()
	}

	sheet := common.SelectSheet(provider, convCfg)
	if sheet == "" {
		return 0, fmt.Errorf("sheet %q not found in %s", cfg.Sheet, cfg.InputPath)
	}
	logger.WithFields(logrus.Fields{"input": cfg.InputPath, "sheet": sheet}).Debug("dumping rows")

	return dumper.Dump(ctx, provider, sheet, cfg.Delimiter, w)
}

func main() {
	cfg, err := config.LoadOptional(config.FileName)
	if err != nil {
		logging.LogFatal(logging.New(false), "failed to load config", err)
	}
	logger := logging.New(cfg.Verbose)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	n, err := dump(ctx, cfg, os.Stdout, logger)
	if err != nil {
		cancel()
		logging.LogFatal(logger, "failed to dump rows", err)
	}
	logger.WithField("rows", n).Debug("dump complete")
}
