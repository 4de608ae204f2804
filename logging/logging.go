package logging

import (
	"fmt"
	"log"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/rkbarth/catalogdb/configuration"
)

// Setup builds the application logger. Logs go to c.LogFile when set,
// otherwise to stderr so they never mix with command output on stdout.
// The returned function flushes and releases the sink.
func Setup(c *configuration.Configuration) (*zap.Logger, func(), error) {

	level, err := zapcore.ParseLevel(c.LogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("parse log level: %w", err)
	}

	sink := zapcore.Lock(os.Stderr)
	closer := func() {}
	if c.LogFile != "" {
		logFile, err := os.OpenFile(c.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		sink = zapcore.AddSync(logFile)
		closer = func() {
			if err := logFile.Close(); err != nil {
				log.Println("error during closing of log file:", err)
			}
		}
	}

	zapConfig := zap.NewDevelopmentEncoderConfig()
	zapConfig.TimeKey = "ts"
	zapConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	zapConfig.LevelKey = "lvl"
	zapConfig.NameKey = "name"
	zapConfig.MessageKey = "msg"
	zapConfig.CallerKey = "caller"
	zapConfig.StacktraceKey = "skt"

	core := zapcore.NewCore(zapcore.NewConsoleEncoder(zapConfig), sink, level)
	logger := zap.New(core, zap.AddCaller(), zap.AddStacktrace(zapcore.FatalLevel))

	flusher := func() {
		logger.Sync() // stderr may refuse fsync
		closer()
	}

	return logger, flusher, nil
}
