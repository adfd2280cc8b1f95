package logger

import (
	"os"
	"path/filepath"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	config "github.com/inference-gateway/drawbot/config"
)

var (
	mu     sync.RWMutex
	logger *zap.SugaredLogger
	file   *os.File
)

// Init initializes the global logger. When cfg points at a log directory the
// output goes to drawbot.log inside it, otherwise to stderr.
func Init(verbose bool, cfg *config.Config) {
	level := zapcore.InfoLevel
	if verbose || (cfg != nil && cfg.Logging.Debug) {
		level = zapcore.DebugLevel
	}

	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.TimeKey = "time"
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	sink := zapcore.Lock(os.Stderr)
	if cfg != nil && cfg.Logging.Dir != "" {
		if f, err := openLogFile(cfg.Logging.Dir); err == nil {
			sink = zapcore.AddSync(f)
			mu.Lock()
			file = f
			mu.Unlock()
		}
	}

	core := zapcore.NewCore(zapcore.NewJSONEncoder(encoderCfg), sink, level)
	z := zap.New(core, zap.AddCaller(), zap.AddCallerSkip(1))

	zap.ReplaceGlobals(z)

	mu.Lock()
	logger = z.Sugar()
	mu.Unlock()
}

func openLogFile(dir string) (*os.File, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}
	return os.OpenFile(filepath.Join(dir, "drawbot.log"), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
}

// Close flushes buffered entries and closes the log file if one is open
func Close() {
	mu.Lock()
	defer mu.Unlock()

	if logger != nil {
		_ = logger.Sync()
	}
	if file != nil {
		_ = file.Close()
		file = nil
	}
}

func current() *zap.SugaredLogger {
	mu.RLock()
	defer mu.RUnlock()
	return logger
}

// Debug logs a debug message
func Debug(msg string, args ...any) {
	if l := current(); l != nil {
		l.Debugw(msg, args...)
	}
}

// Info logs an info message
func Info(msg string, args ...any) {
	if l := current(); l != nil {
		l.Infow(msg, args...)
	}
}

// Warn logs a warning message
func Warn(msg string, args ...any) {
	if l := current(); l != nil {
		l.Warnw(msg, args...)
	}
}

// Error logs an error message
func Error(msg string, args ...any) {
	if l := current(); l != nil {
		l.Errorw(msg, args...)
	}
}

// SetLogger replaces the global logger, mainly so tests can observe output
func SetLogger(l *zap.Logger) {
	mu.Lock()
	defer mu.Unlock()
	logger = l.Sugar()
}
