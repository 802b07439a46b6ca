package debug

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	level     = zap.NewAtomicLevelAt(zapcore.WarnLevel)
	noColor   bool
	noColorMu sync.RWMutex

	logger = newLogger()
)

// ANSI color codes
const (
	colorReset  = "\033[0m"
	colorRed    = "\033[31m"
	colorYellow = "\033[33m"
	colorCyan   = "\033[36m"
	colorGray   = "\033[90m"
)

// stderrSyncer looks up os.Stderr on every write so that redirecting it
// after package initialization still takes effect.
type stderrSyncer struct{}

func (stderrSyncer) Write(p []byte) (int, error) { return os.Stderr.Write(p) }
func (stderrSyncer) Sync() error                 { return nil }

func newLogger() *zap.Logger {
	encCfg := zapcore.EncoderConfig{
		TimeKey:          "time",
		LevelKey:         "level",
		MessageKey:       "msg",
		LineEnding:       zapcore.DefaultLineEnding,
		EncodeLevel:      encodeLevel,
		EncodeTime:       encodeTime,
		EncodeDuration:   zapcore.StringDurationEncoder,
		ConsoleSeparator: " ",
	}
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(encCfg), stderrSyncer{}, level)
	return zap.New(core)
}

func encodeLevel(l zapcore.Level, enc zapcore.PrimitiveArrayEncoder) {
	tag := "[" + l.CapitalString() + "]"
	if !useColor() {
		enc.AppendString(tag)
		return
	}
	color := colorCyan
	switch {
	case l >= zapcore.ErrorLevel:
		color = colorRed
	case l == zapcore.WarnLevel:
		color = colorYellow
	}
	enc.AppendString(color + tag + colorReset)
}

func encodeTime(t time.Time, enc zapcore.PrimitiveArrayEncoder) {
	ts := t.Format("15:04:05.000")
	if useColor() {
		enc.AppendString(colorGray + ts + colorReset)
		return
	}
	enc.AppendString(ts)
}

func useColor() bool {
	noColorMu.RLock()
	defer noColorMu.RUnlock()
	return !noColor
}

// SetDebug enables or disables debug mode. Warnings and errors are always
// written; debug messages only while enabled.
func SetDebug(enable bool) {
	if enable {
		level.SetLevel(zapcore.DebugLevel)
		return
	}
	level.SetLevel(zapcore.WarnLevel)
}

// IsEnabled returns whether debug mode is enabled
func IsEnabled() bool {
	return level.Enabled(zapcore.DebugLevel)
}

// SetNoColor enables or disables colored output
func SetNoColor(disable bool) {
	noColorMu.Lock()
	defer noColorMu.Unlock()
	noColor = disable
}

// Logger returns the structured logger shared by the debug helpers.
func Logger() *zap.Logger {
	return logger
}

// Debug prints a debug message with timestamp
func Debug(format string, args ...interface{}) {
	if !IsEnabled() {
		return
	}
	logger.Debug(fmt.Sprintf(format, args...))
}

// Debugf is an alias for Debug
func Debugf(format string, args ...interface{}) {
	Debug(format, args...)
}

// DebugSection prints a section header for debug output
func DebugSection(section string) {
	if !IsEnabled() {
		return
	}
	logger.Debug(fmt.Sprintf("=== %s ===", section))
}

// DebugValue prints key=value style debug info
func DebugValue(key string, value interface{}) {
	if !IsEnabled() {
		return
	}
	logger.Debug(fmt.Sprintf("%s = %v", key, value))
}

// DebugJSON prints structured data as JSON for debugging
func DebugJSON(key string, v interface{}) {
	if !IsEnabled() {
		return
	}

	jsonBytes, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		Debug("Failed to marshal %s to JSON: %v", key, err)
		return
	}
	logger.Debug(fmt.Sprintf("%s:\n%s", key, string(jsonBytes)))
}
