package log

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
)

// The debug logger discards everything until InitDebug is called, so
// instrumented code paths never have to check whether debugging is on.
var (
	debugLog  = zerolog.Nop()
	debugFile *os.File
)

// Debug starts a new debug log event
func Debug() *zerolog.Event {
	return debugLog.Debug()
}

// InitDebug opens the debug log file and enables the debug logger
func InitDebug(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create log directory: %v", err)
	}
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("failed to open log file: %v", err)
	}
	debugFile = file
	debugLog = zerolog.New(file).Level(zerolog.DebugLevel).With().Timestamp().Logger()
	return nil
}

// CloseDebug closes the debug log file and disables the debug logger
func CloseDebug() {
	if debugFile != nil {
		debugFile.Close()
		debugFile = nil
	}
	debugLog = zerolog.Nop()
}
