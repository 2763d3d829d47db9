package nativelog

import (
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// NewZapLogger builds the production logger: console output plus a JSON file
// under dir (when dir is non-empty). Falls back to console-only when the log
// directory cannot be created.
func NewZapLogger(dir string) (*zap.Logger, error) {
	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	consoleCore := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encoderCfg),
		zapcore.Lock(os.Stdout),
		zap.NewAtomicLevelAt(zapcore.InfoLevel),
	)

	cores := []zapcore.Core{consoleCore}

	if dir != "" {
		if err := os.MkdirAll(dir, 0o755); err == nil {
			f, err := os.OpenFile(filepath.Join(dir, "server.log"), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
			if err == nil {
				fileCore := zapcore.NewCore(
					zapcore.NewJSONEncoder(encoderCfg),
					zapcore.Lock(f),
					zap.NewAtomicLevelAt(zapcore.InfoLevel),
				)
				cores = append(cores, fileCore)
			}
		}
	}

	return zap.New(zapcore.NewTee(cores...), zap.AddCaller()), nil
}
