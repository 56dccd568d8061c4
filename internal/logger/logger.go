package logger

import (
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
)

// Logger is the component-tagged logging surface used across the application.
type Logger interface {
	Debug(component, message string, fields map[string]interface{})
	Info(component, message string, fields map[string]interface{})
	Warning(component, message string, fields map[string]interface{})
	Error(component string, err error, fields map[string]interface{})
}

const (
	FormatConsole = "console"
	FormatJSON    = "json"
)

// New builds a Logger writing to stdout in the given format.
// Unknown levels fall back to info.
func New(level, format string) *ZerologAdapter {
	return NewWithWriter(os.Stdout, level, format)
}

func NewWithWriter(writer io.Writer, level, format string) *ZerologAdapter {
	lvl, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}

	if format == FormatConsole {
		writer = zerolog.ConsoleWriter{Out: writer, NoColor: writer != os.Stdout}
	}
	return NewZerolog(writer, lvl)
}

// NewNop returns a Logger that discards everything.
func NewNop() *ZerologAdapter {
	return &ZerologAdapter{logger: zerolog.Nop()}
}
