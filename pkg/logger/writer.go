// pkg/logger/writer.go

package logger

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap/zapcore"

	"github.com/CodeMonkeyCybersecurity/securepass/pkg/shared"
)

// GetLogFileWriter tries to create a file writer at the specified path.
// Log files can record command names and settings, so they are created
// owner-only.
func GetLogFileWriter(path string) (zapcore.WriteSyncer, error) {
	if err := os.MkdirAll(filepath.Dir(path), shared.DirPermPrivate); err != nil {
		return zapcore.AddSync(os.Stdout), fmt.Errorf("log directory error: %w", err)
	}

	file, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, shared.FilePermOwnerReadWrite)
	if err != nil {
		return zapcore.AddSync(os.Stdout), fmt.Errorf("failed to open log file: %w", err)
	}

	return zapcore.AddSync(file), nil
}

// FindWritableLogPath returns the first usable log path using the
// platform fallback chain.
func FindWritableLogPath() (string, error) {
	for _, path := range PlatformLogPaths() {
		if _, err := GetLogFileWriter(path); err == nil {
			return path, nil
		}
	}
	return "", fmt.Errorf("no writable log path found")
}
