// Package formatters provides implementations for normalizing generated TypeScript source.
package formatters

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"sigs.k8s.io/yaml"
)

// styleConfigFiles are looked up in the project root, first match wins.
var styleConfigFiles = []string{
	"prettierrc.js",
	"prettierrc",
	".prettierrc",
	".prettierrc.json",
	".prettierrc.yaml",
	".prettierrc.yml",
}

// StyleConfig is the subset of prettier options the builtin formatter honors.
// Path is the file it was read from, empty when none was found.
type StyleConfig struct {
	TabWidth int    `json:"tabWidth,omitempty"`
	UseTabs  bool   `json:"useTabs,omitempty"`
	Parser   string `json:"parser,omitempty"`
	Path     string `json:"-"`
}

// indent returns the string used for one indentation level.
func (s StyleConfig) indent() string {
	if s.UseTabs {
		return "\t"
	}

	width := s.TabWidth
	if width <= 0 {
		width = 2
	}

	return strings.Repeat(" ", width)
}

// LoadStyleConfig reads the first style config found in root. JSON and YAML
// are both accepted. The parser is always forced to typescript. A missing
// file yields the empty config; an unreadable one yields the empty config
// and an error the caller may report.
func LoadStyleConfig(root string) (StyleConfig, error) {
	for _, name := range styleConfigFiles {
		path := filepath.Join(root, name)

		data, err := os.ReadFile(path)
		if errors.Is(err, os.ErrNotExist) {
			continue
		}
		if err != nil {
			return StyleConfig{Parser: "typescript"}, fmt.Errorf("failed to read style config %s: %w", path, err)
		}

		var cfg StyleConfig
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return StyleConfig{Parser: "typescript"}, fmt.Errorf("failed to parse style config %s: %w", path, err)
		}

		cfg.Parser = "typescript"
		cfg.Path = path

		return cfg, nil
	}

	return StyleConfig{Parser: "typescript"}, nil
}
