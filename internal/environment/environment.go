// Package environment reads the settings pwshcomplete takes from environment
// variables.
package environment

import (
	"os"

	"go.uber.org/zap"
)

const (
	logLevelVar = "PWSHCOMPLETE_LOG_LEVEL"
	logFileVar  = "PWSHCOMPLETE_LOG_FILE"
)

// GetLogLevel returns the level set in PWSHCOMPLETE_LOG_LEVEL, or warn when it
// is unset or not a valid level.
func GetLogLevel() zap.AtomicLevel {
	level, err := zap.ParseAtomicLevel(os.Getenv(logLevelVar))
	if err != nil || os.Getenv(logLevelVar) == "" {
		return zap.NewAtomicLevelAt(zap.WarnLevel)
	}
	return level
}

// GetLogFile returns the log destination set in PWSHCOMPLETE_LOG_FILE,
// defaulting to stderr.
func GetLogFile() string {
	if path := os.Getenv(logFileVar); path != "" {
		return path
	}
	return "stderr"
}
