package logger

import (
	"fmt"
	"io"
	"os"
)

// Logger provides structured logging for journald.
// Diagnostics go to stderr so generated passwords on stdout stay clean.
type Logger struct {
	writer io.Writer
}

// New creates a new logger instance
func New() *Logger {
	return &Logger{
		writer: os.Stderr,
	}
}

// NewWithWriter creates a logger with a custom writer
func NewWithWriter(w io.Writer) *Logger {
	return &Logger{
		writer: w,
	}
}

// Info logs informational messages
func (l *Logger) Info(msg string, fields ...Field) {
	l.log("INFO", msg, fields...)
}

// Error logs error messages
func (l *Logger) Error(msg string, fields ...Field) {
	l.log("ERROR", msg, fields...)
}

// Warn logs warning messages
func (l *Logger) Warn(msg string, fields ...Field) {
	l.log("WARNING", msg, fields...)
}

// Debug logs debug messages
func (l *Logger) Debug(msg string, fields ...Field) {
	l.log("DEBUG", msg, fields...)
}

func (l *Logger) log(level, msg string, fields ...Field) {
	output := fmt.Sprintf("LEVEL=%s MESSAGE=%s", level, msg)
	for _, field := range fields {
		output += fmt.Sprintf(" %s=%v", field.Key, field.Value)
	}
	_, _ = fmt.Fprintln(l.writer, output)
}

// Field represents a key-value pair for structured logging
type Field struct {
	Key   string
	Value interface{}
}

// F creates a new field (shorthand)
func F(key string, value interface{}) Field {
	return Field{Key: key, Value: value}
}

// Common field constructors
func Action(value string) Field   { return F("ACTION", value) }
func Status(value string) Field   { return F("STATUS", value) }
func Count(value int) Field       { return F("COUNT", value) }
func Length(value int) Field      { return F("LENGTH", value) }
func Format(value string) Field   { return F("FORMAT", value) }
func Pattern(value string) Field  { return F("PATTERN", value) }
func Seed(value uint64) Field     { return F("SEED", value) }
func Alphabet(value int) Field    { return F("ALPHABET_SIZE", value) }
func Entropy(value float64) Field { return F("ENTROPY_BITS", fmt.Sprintf("%.1f", value)) }
func Error(value error) Field     { return F("ERROR", value) }
func Path(value string) Field     { return F("PATH", value) }
func Reason(value string) Field   { return F("REASON", value) }
