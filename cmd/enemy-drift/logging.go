package main

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/lixenwraith/enemy-drift/config"
)

const bytesPerMB = 1024 * 1024

// setupLogging opens the log file under cfg.Dir, rotating it once it exceeds
// MaxSizeMB, and builds a zap logger writing to it
// The terminal backend owns stdout, so logs never go to the console
// Level "off" returns a no-op logger and a nil file
func setupLogging(cfg config.LoggingConfig) (*zap.Logger, *os.File, error) {
	if cfg.Level == "off" {
		return zap.NewNop(), nil, nil
	}

	var level zapcore.Level
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		level = zapcore.InfoLevel
	}

	if err := os.MkdirAll(cfg.Dir, 0755); err != nil {
		return nil, nil, fmt.Errorf("create log dir: %w", err)
	}

	logPath := filepath.Join(cfg.Dir, cfg.File)
	if info, err := os.Stat(logPath); err == nil && cfg.MaxSizeMB > 0 && info.Size() > int64(cfg.MaxSizeMB)*bytesPerMB {
		if err := os.Rename(logPath, logPath+".old"); err != nil {
			return nil, nil, fmt.Errorf("rotate log: %w", err)
		}
	}

	f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log: %w", err)
	}

	var encoder zapcore.Encoder
	if cfg.Format == "json" {
		encoder = zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
	} else {
		encCfg := zap.NewDevelopmentEncoderConfig()
		encCfg.EncodeLevel = zapcore.CapitalLevelEncoder
		encCfg.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05.000")
		encCfg.ConsoleSeparator = "  "
		encoder = zapcore.NewConsoleEncoder(encCfg)
	}

	zc := zapcore.NewCore(encoder, zapcore.AddSync(f), zap.NewAtomicLevelAt(level))
	return zap.New(zc), f, nil
}
