package observability

import (
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger is the process-wide logger. It discards everything until
// InitLogger installs a real sink.
var Logger = zap.NewNop()

// SessionID identifies the running calculator session in every log line.
var SessionID = uuid.NewString()

// InitLogger points Logger at a JSON log file. The terminal belongs to the
// UI (or to the MCP stdio transport), so an empty path keeps logging off.
func InitLogger(path, level string) error {
	if path == "" {
		Logger = zap.NewNop()
		return nil
	}

	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("parse log level %q: %w", level, err)
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	cfg.OutputPaths = []string{path}
	cfg.ErrorOutputPaths = []string{path}

	l, err := cfg.Build()
	if err != nil {
		return fmt.Errorf("build logger: %w", err)
	}

	Logger = l.With(zap.String("session_id", SessionID))
	return nil
}

func SyncLogger() {
	_ = Logger.Sync()
}
