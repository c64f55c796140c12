// Package installer writes generated completion scripts to disk.
package installer

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/atinylittleshell/pwshcomplete/internal/completion/powershell"
	"github.com/dustin/go-humanize"
	"go.uber.org/zap"
)

// Install writes script into dir under the conventional file name for
// binName, creating dir if needed, and returns the path of the written file.
func Install(logger *zap.Logger, dir, binName, script string) (string, error) {
	if dir == "" {
		return "", fmt.Errorf("no install directory given")
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("could not create completions directory %q: %w", dir, err)
	}

	path := filepath.Join(dir, powershell.FileName(binName))
	if err := os.WriteFile(path, []byte(script), 0644); err != nil {
		return "", fmt.Errorf("could not write completions file: %w", err)
	}

	if logger != nil {
		logger.Info("installed completion script",
			zap.String("path", path),
			zap.String("size", humanize.Bytes(uint64(len(script)))),
		)
	}

	return path, nil
}
