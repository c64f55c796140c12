package core

import (
	"os"
	"path/filepath"
)

type Paths struct {
	CompletionsDir string
}

var defaultPaths *Paths

func ensureDefaultPaths() {
	if defaultPaths == nil {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			panic(err)
		}

		configDir := os.Getenv("XDG_CONFIG_HOME")
		if configDir == "" {
			configDir = filepath.Join(homeDir, ".config")
		}

		defaultPaths = &Paths{
			CompletionsDir: filepath.Join(configDir, "powershell", "completions"),
		}
	}
}

// CompletionsDir is where installed completion scripts are written by
// default. It is not created until something is installed.
func CompletionsDir() string {
	ensureDefaultPaths()
	return defaultPaths.CompletionsDir
}

// ResetPaths clears the cached paths, forcing them to be reinitialized.
// This is primarily used for testing purposes.
func ResetPaths() {
	defaultPaths = nil
}
