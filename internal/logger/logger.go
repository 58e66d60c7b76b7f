package logger

import (
	"os"

	"go.uber.org/zap"
)

// New builds a production JSON logger when env is "production" and a
// development console logger otherwise.
func New(env string) (*zap.Logger, error) {
	if env == "production" {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}

// Init builds the process logger from ENV and installs it as the global one.
func Init() *zap.Logger {
	log, err := New(os.Getenv("ENV"))
	if err != nil {
		panic("failed to initialize logger: " + err.Error())
	}
	zap.ReplaceGlobals(log)
	return log
}

// Sync flushes buffered entries. Errors from syncing stdout are ignored.
func Sync() {
	_ = zap.L().Sync()
}
