// Package logger is a thin package-level facade over zap so call sites
// stay short: logger.Info("msg", "key", value).
package logger

import (
	"go.uber.org/zap"
)

var log *zap.SugaredLogger

// Init configures the process logger. Production gets JSON output and
// info level; everything else gets the development console encoder.
func Init(env string) {
	var base *zap.Logger
	var err error
	if env == "production" {
		base, err = zap.NewProduction(zap.AddCallerSkip(1))
	} else {
		base, err = zap.NewDevelopment(zap.AddCallerSkip(1))
	}
	if err != nil {
		panic("failed to build logger: " + err.Error())
	}
	log = base.Sugar()
}

func ensure() {
	if log == nil {
		Init("development")
	}
}

func Info(msg string, keysAndValues ...any) {
	ensure()
	log.Infow(msg, keysAndValues...)
}

func Warn(msg string, keysAndValues ...any) {
	ensure()
	log.Warnw(msg, keysAndValues...)
}

func Error(msg string, err error) {
	ensure()
	log.Errorw(msg, "error", err)
}

func Fatal(msg string, keysAndValues ...any) {
	ensure()
	log.Fatalw(msg, keysAndValues...)
}

func Sync() {
	if log != nil {
		_ = log.Sync()
	}
}
