package logger

import (
	"log"

	"go.uber.org/zap"
)

var l *zap.Logger

// Init builds the process-wide logger. Call once from main before anything
// that logs.
func Init() {
	zl, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	l = zl
	zap.ReplaceGlobals(zl)
}

func L() *zap.Logger {
	if l == nil {
		return zap.L()
	}
	return l
}

func Sync() {
	if l != nil {
		_ = l.Sync()
	}
}
