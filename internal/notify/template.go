package notify

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// CardTemplate is the optional YAML file that overrides card presentation
// without touching the workflow's environment wiring.
type CardTemplate struct {
	Title      string `yaml:"title"`
	ThemeColor string `yaml:"theme_color"`
}

// LoadCardTemplate parses a card template file.
func LoadCardTemplate(path string) (*CardTemplate, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read card template: %w", err)
	}

	var tpl CardTemplate
	if err := yaml.Unmarshal(data, &tpl); err != nil {
		return nil, fmt.Errorf("failed to parse card template %q: %w", path, err)
	}

	return &tpl, nil
}
