// Package injector assembles the process runtime. A command calls
// InitializeRuntime once at startup and closes the result on exit:
//
//	runtime, err := injector.InitializeRuntime(configFile)
//	if err != nil {
//		return err
//	}
//	defer runtime.Close()
//
// cmd/dimension is the reference entry point.
package injector

import (
	"io"

	"github.com/google/wire"

	"github.com/zeusync/dimension/internal/config"
	"github.com/zeusync/dimension/internal/core/observability/log"
	"github.com/zeusync/dimension/pkg/quantity"
)

var ProviderSet = wire.NewSet(ProvideConfig, ProvideLogger, NewRuntime)

// Runtime holds the configured process state. Close restores the precision
// that was in effect before it was built.
type Runtime struct {
	Config config.Config
	Logger *log.Logger

	previous int
}

func ProvideConfig(r io.Reader) (config.Config, error) {
	return config.Load(r)
}

func ProvideLogger(cfg config.Config) (*log.Logger, error) {
	level, err := cfg.Level()
	if err != nil {
		return nil, err
	}
	return log.New(level)
}

func NewRuntime(cfg config.Config, logger *log.Logger) (*Runtime, error) {
	previous, err := config.Apply(cfg, logger)
	if err != nil {
		return nil, err
	}
	return &Runtime{Config: cfg, Logger: logger, previous: previous}, nil
}

func (r *Runtime) Close() {
	quantity.SetPrecision(r.previous)
	r.Logger.Info("precision restored", log.Int("digits", r.previous))
	// stderr cannot be synced on every platform.
	_ = r.Logger.Sync()
}
