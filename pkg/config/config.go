// Package config loads the optional oolang.yml that can sit next to an
// entry script: ambient scaffolding around the language core, decoded
// with gopkg.in/yaml.v3 the way the teacher repo decodes its package
// manifest.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"
)

// DefaultIndentWidth is the number of source columns one indent level
// corresponds to when the parser reports a diagnostic position.
const DefaultIndentWidth = 2

// RunConfig is the run-time configuration read from oolang.yml.
type RunConfig struct {
	IndentWidth   IndentWidth `yaml:"indent_width"`
	CaptureOutput bool        `yaml:"capture_output"`
}

// IndentWidth accepts either a YAML integer (`indent_width: 4`) or a
// quoted numeric string (`indent_width: "4"`), the same flexible-scalar
// decoding the teacher's manifest types use for fields that tend to get
// hand-edited.
type IndentWidth struct {
	Value int
	set   bool
}

func (w IndentWidth) OrDefault() int {
	if !w.set {
		return DefaultIndentWidth
	}
	return w.Value
}

func (w *IndentWidth) UnmarshalYAML(value *yaml.Node) error {
	var asInt int
	if err := value.Decode(&asInt); err == nil {
		w.Value, w.set = asInt, true
		return nil
	}
	var asString string
	if err := value.Decode(&asString); err != nil {
		return fmt.Errorf("indent_width: expected an integer or numeric string")
	}
	n, err := strconv.Atoi(asString)
	if err != nil {
		return fmt.Errorf("indent_width: %q is not an integer", asString)
	}
	w.Value, w.set = n, true
	return nil
}

// Default returns the configuration used when no oolang.yml is present.
func Default() *RunConfig {
	return &RunConfig{IndentWidth: IndentWidth{Value: DefaultIndentWidth, set: true}}
}

// Load reads oolang.yml next to scriptPath, if present, falling back to
// Default when the file does not exist.
func Load(scriptPath string) (*RunConfig, error) {
	configPath := filepath.Join(filepath.Dir(scriptPath), "oolang.yml")
	f, err := os.Open(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, fmt.Errorf("opening %s: %w", configPath, err)
	}
	defer f.Close()

	cfg := Default()
	dec := yaml.NewDecoder(f)
	if err := dec.Decode(cfg); err != nil {
		return nil, fmt.Errorf("decoding %s: %w", configPath, err)
	}
	return cfg, nil
}
