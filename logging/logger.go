// Package logging builds the game's zap logger
// The terminal owns stdout, so output goes to a rotated file or nowhere
package logging

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/lixenwraith/air-hockey/constant"
)

// Options selects logger output
type Options struct {
	// Debug enables file output; a disabled logger is a no-op
	Debug bool
	Level string
	Dir   string
}

// New returns a logger and a cleanup func that flushes and closes the file
func New(opts Options) (*zap.Logger, func(), error) {
	if !opts.Debug {
		return zap.NewNop(), func() {}, nil
	}

	level := zap.NewAtomicLevel()
	if err := level.UnmarshalText([]byte(opts.Level)); err != nil {
		level.SetLevel(zap.InfoLevel)
	}

	dir := opts.Dir
	if dir == "" {
		dir = constant.LogDir
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, nil, fmt.Errorf("create log dir: %w", err)
	}

	rotator := &lumberjack.Logger{
		Filename:   filepath.Join(dir, constant.LogFileName),
		MaxSize:    constant.LogMaxSizeMB,
		MaxBackups: constant.LogMaxBackups,
		MaxAge:     constant.LogMaxAgeDays,
	}

	encCfg := zap.NewProductionEncoderConfig()
	encCfg.EncodeTime = zapcore.TimeEncoderOfLayout("2006-01-02T15:04:05.000Z07:00")
	encCfg.EncodeLevel = zapcore.CapitalLevelEncoder

	core := zapcore.NewCore(zapcore.NewJSONEncoder(encCfg), zapcore.AddSync(rotator), level)
	logger := zap.New(core, zap.AddStacktrace(zap.ErrorLevel)).Named("air-hockey")

	// Stray stdlib log calls would corrupt the terminal
	undo := zap.RedirectStdLog(logger)

	cleanup := func() {
		_ = logger.Sync()
		undo()
		_ = rotator.Close()
	}
	return logger, cleanup, nil
}
