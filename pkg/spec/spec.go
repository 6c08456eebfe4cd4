package spec

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Load reads a case definition from a YAML file.
func Load(path string) (*CaseSpec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading case file: %w", err)
	}

	var cs CaseSpec
	if err := yaml.Unmarshal(data, &cs); err != nil {
		return nil, fmt.Errorf("parsing case YAML: %w", err)
	}

	return &cs, nil
}

// LoadProject loads a case definition from a project directory.
// It looks for case.yaml in the given directory.
func LoadProject(projectDir string) (*CaseSpec, error) {
	casePath := filepath.Join(projectDir, "case.yaml")
	return Load(casePath)
}
