// Package sink writes generated TypeScript files to disk.
package sink

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/GabrielNunesIT/go-libs/logger"

	"github.com/GabrielNunesIT/swagger-ts-gen/internal/domain"
)

const fileExt = ".ts"

// FileSink writes each generated file as <dir>/<name>.ts.
type FileSink struct {
	dir string
	log logger.ILogger
}

// NewFileSink creates a sink rooted at dir. Forward slashes in dir are
// accepted on every platform.
func NewFileSink(dir string, log logger.ILogger) *FileSink {
	return &FileSink{
		dir: filepath.FromSlash(dir),
		log: log,
	}
}

// Dir returns the output directory.
func (s *FileSink) Dir() string {
	return s.dir
}

// Prepare creates the output directory and its parents.
func (s *FileSink) Prepare() error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory %s: %w", s.dir, err)
	}

	return nil
}

// Path returns the path a file with the given name is written to.
func (s *FileSink) Path(name string) string {
	return filepath.Join(s.dir, name+fileExt)
}

// Write stores file, leaving an existing file with identical content untouched.
// Names that would leave the output directory are rejected.
func (s *FileSink) Write(file domain.GeneratedFile) error {
	if !validName(file.Name) {
		return fmt.Errorf("invalid output file name %q", file.Name)
	}

	path := s.Path(file.Name)
	content := []byte(file.Content)

	existing, err := os.ReadFile(path)
	if err == nil && bytes.Equal(existing, content) {
		s.log.Infof("Unchanged %s (%d operations)", path, file.Operations)
		return nil
	}

	if err := os.WriteFile(path, content, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}

	s.log.Infof("Generated %s (%d operations)", path, file.Operations)

	return nil
}

func validName(name string) bool {
	return name != "" && name != "." && name != ".." && !strings.ContainsAny(name, `/\`)
}
