package output

import (
	"bytes"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
)

// Writer is the interface for pom output destinations.
type Writer interface {
	// Write sends rendered output to the destination.
	Write(data []byte) error
}

// StdoutWriter writes a rendered pom to os.Stdout.
type StdoutWriter struct {
	out io.Writer
}

// NewStdoutWriter creates a writer that sends output to the given writer.
// If w is nil, os.Stdout is used.
func NewStdoutWriter(w io.Writer) *StdoutWriter {
	if w == nil {
		w = os.Stdout
	}

	return &StdoutWriter{out: w}
}

// Write sends data to stdout.
func (sw *StdoutWriter) Write(data []byte) error {
	_, err := sw.out.Write(data)
	if err != nil {
		return fmt.Errorf("writing to stdout: %w", err)
	}

	return nil
}

// FileWriter writes a pom to a file, creating parent directories as needed.
// The file is replaced atomically, so a reader never sees a partial pom.
type FileWriter struct {
	path          string
	perm          os.FileMode
	skipUnchanged bool
	logger        *slog.Logger
	changed       bool
}

// FileWriterOption configures a FileWriter.
type FileWriterOption func(*FileWriter)

// WithPermissions overrides the default file permissions (0644).
func WithPermissions(perm os.FileMode) FileWriterOption {
	return func(fw *FileWriter) {
		fw.perm = perm
	}
}

// WithLogger sets a logger for the FileWriter.
func WithLogger(logger *slog.Logger) FileWriterOption {
	return func(fw *FileWriter) {
		fw.logger = logger
	}
}

// WithSkipUnchanged leaves the file untouched when it already holds the
// same bytes, keeping its modification time stable for build tools.
func WithSkipUnchanged() FileWriterOption {
	return func(fw *FileWriter) {
		fw.skipUnchanged = true
	}
}

// NewFileWriter creates a writer that writes to the specified file path.
func NewFileWriter(path string, opts ...FileWriterOption) *FileWriter {
	fw := &FileWriter{
		path:   path,
		perm:   0o644,
		logger: slog.Default(),
	}

	for _, opt := range opts {
		opt(fw)
	}

	return fw
}

// Write creates parent directories and replaces the file with data.
func (fw *FileWriter) Write(data []byte) error {
	fw.changed = false

	dir := filepath.Dir(fw.path)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return fmt.Errorf("creating directory %s: %w", dir, err)
	}

	existing, err := os.ReadFile(fw.path)
	if err == nil {
		if fw.skipUnchanged && bytes.Equal(existing, data) {
			fw.logger.Debug("pom unchanged, skipping write", slog.String("path", fw.path))
			return nil
		}

		fw.logger.Warn("overwriting existing file", slog.String("path", fw.path))
	}

	if err := fw.replace(dir, data); err != nil {
		return err
	}

	fw.changed = true

	return nil
}

func (fw *FileWriter) replace(dir string, data []byte) error {
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(fw.path)+".*")
	if err != nil {
		return fmt.Errorf("writing file %s: %w", fw.path, err)
	}

	name := tmp.Name()
	defer func() { _ = os.Remove(name) }()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("writing file %s: %w", fw.path, err)
	}

	if err := tmp.Close(); err != nil {
		return fmt.Errorf("writing file %s: %w", fw.path, err)
	}

	if err := os.Chmod(name, fw.perm); err != nil {
		return fmt.Errorf("setting permissions on %s: %w", fw.path, err)
	}

	if err := os.Rename(name, fw.path); err != nil {
		return fmt.Errorf("writing file %s: %w", fw.path, err)
	}

	return nil
}

// Path returns the output file path.
func (fw *FileWriter) Path() string {
	return fw.path
}

// Changed reports whether the last Write modified the file.
func (fw *FileWriter) Changed() bool {
	return fw.changed
}
