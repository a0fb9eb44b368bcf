package formatters

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
)

const prettierFormat = "prettier"

// PrettierFormatter pipes the source through the project's prettier via npx.
type PrettierFormatter struct {
	style   StyleConfig
	dir     string
	command []string
}

// NewPrettierFormatter creates a formatter running prettier from dir, which
// should be the project root holding node_modules.
func NewPrettierFormatter(style StyleConfig, dir string) *PrettierFormatter {
	return &PrettierFormatter{
		style:   style,
		dir:     dir,
		command: []string{"npx", "prettier"},
	}
}

// Name returns the formatter name.
func (f *PrettierFormatter) Name() string {
	return prettierFormat
}

// Format runs prettier on source as if it were fileName.ts.
func (f *PrettierFormatter) Format(ctx context.Context, fileName, source string) (string, error) {
	args := append([]string{}, f.command[1:]...)
	args = append(args, "--stdin-filepath", fileName+".ts", "--parser", "typescript")

	if f.style.Path != "" {
		args = append(args, "--config", f.style.Path)
	}

	var stdout, stderr bytes.Buffer

	cmd := exec.CommandContext(ctx, f.command[0], args...)
	cmd.Dir = f.dir
	cmd.Stdin = strings.NewReader(source)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("prettier failed on %s: %w: %s", fileName, err, strings.TrimSpace(stderr.String()))
	}

	return stdout.String(), nil
}

// NoopFormatter returns the source unchanged.
type NoopFormatter struct{}

// Name returns the formatter name.
func (NoopFormatter) Name() string {
	return "none"
}

// Format returns source as is.
func (NoopFormatter) Format(_ context.Context, _ string, source string) (string, error) {
	return source, nil
}
