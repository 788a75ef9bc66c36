// Package homepage seeds a brand-new dashboard from a Homepage-style
// services.yaml: groups become categories and service entries become
// shortcuts. Seeding only ever runs against an empty store.
package homepage

import (
	"fmt"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"
)

// Loader reads and parses a Homepage services.yaml file.
type Loader struct {
	filePath string
}

func NewLoader(filePath string) *Loader {
	return &Loader{filePath: filePath}
}

// Load reads and parses the services file.
func (l *Loader) Load() (ServicesConfig, error) {
	data, err := os.ReadFile(l.filePath)
	if err != nil {
		return nil, fmt.Errorf("read services file: %w", err)
	}

	// Homepage template variables ({{HOMEPAGE_VAR_...}}) are secrets we
	// neither have nor need; blank them before parsing.
	data = stripTemplateVariables(data)

	var config ServicesConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("parse services yaml: %w", err)
	}

	return config, nil
}

var templateVarPattern = regexp.MustCompile(`\{\{[^}]+\}\}`)

func stripTemplateVariables(data []byte) []byte {
	return templateVarPattern.ReplaceAll(data, []byte(`""`))
}
