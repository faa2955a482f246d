// Package writers resolves a log output setting to an io.Writer.
package writers

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// WriterType is the kind of destination a log output string names.
type WriterType string

const (
	WriterTypeStdout WriterType = "stdout"
	WriterTypeStderr WriterType = "stderr"
	WriterTypeFile   WriterType = "file"
)

// CreateWriter returns a writer for output. Accepted forms:
//   - "" or "stdout"
//   - "stderr"
//   - "file:///path/to/file" or any path containing a separator
//
// Files are opened for append and parent directories are created.
func CreateWriter(output string) (io.Writer, error) {
	switch {
	case output == "" || output == "stdout":
		return os.Stdout, nil
	case output == "stderr":
		return os.Stderr, nil
	case strings.HasPrefix(output, "file://"):
		return createFileWriter(strings.TrimPrefix(output, "file://"))
	case isFilePath(output):
		return createFileWriter(output)
	default:
		return nil, fmt.Errorf("unsupported output format: %s", output)
	}
}

func isFilePath(path string) bool {
	if strings.Contains(path, "://") {
		return false
	}
	return strings.Contains(path, "/") || strings.Contains(path, "\\")
}

func createFileWriter(filePath string) (io.Writer, error) {
	dir := filepath.Dir(filePath)
	if dir != "." && dir != "/" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}

	file, err := os.OpenFile(filePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("failed to open file %s: %w", filePath, err)
	}
	return file, nil
}

// ParseWriterType classifies output without opening anything.
func ParseWriterType(output string) WriterType {
	switch output {
	case "", "stdout":
		return WriterTypeStdout
	case "stderr":
		return WriterTypeStderr
	}
	return WriterTypeFile
}
