package suite

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Manager handles save/load for named suites under one directory
type Manager struct {
	basePath string
}

// NewManager creates a manager with the given base directory
func NewManager(basePath string) *Manager {
	return &Manager{basePath: basePath}
}

// FilePath returns the path for a suite file
func (m *Manager) FilePath(name string) string {
	return filepath.Join(m.basePath, name+".yaml")
}

// Exists checks if a suite file exists
func (m *Manager) Exists(name string) bool {
	_, err := os.Stat(m.FilePath(name))
	return err == nil
}

// Save writes a suite to disk, creating the directory if needed
func (m *Manager) Save(name string, s Suite) error {
	if err := os.MkdirAll(m.basePath, 0755); err != nil {
		return fmt.Errorf("creating suite directory: %w", err)
	}

	data, err := yaml.Marshal(s)
	if err != nil {
		return fmt.Errorf("encoding suite %s: %w", name, err)
	}

	if err := os.WriteFile(m.FilePath(name), data, 0644); err != nil {
		return fmt.Errorf("writing suite %s: %w", name, err)
	}
	return nil
}

// Load reads a suite from disk
func (m *Manager) Load(name string) (Suite, error) {
	var s Suite

	data, err := os.ReadFile(m.FilePath(name))
	if err != nil {
		return s, fmt.Errorf("reading suite %s: %w", name, err)
	}

	if err := yaml.Unmarshal(data, &s); err != nil {
		return s, fmt.Errorf("parsing suite %s: %w", name, err)
	}
	return s, nil
}
