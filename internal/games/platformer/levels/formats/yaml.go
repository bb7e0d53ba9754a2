package formats

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// YAMLPack is the YAML structure of a level pack file.
type YAMLPack struct {
	Levels []YAMLLevel `yaml:"levels"`
}

// YAMLLevel is a single level entry.
type YAMLLevel struct {
	ID   string   `yaml:"id"`
	Name string   `yaml:"name"`
	Plan []string `yaml:"plan"`
}

// ParseYAML parses a YAML level pack.
func ParseYAML(data []byte, stem string) ([]Level, error) {
	var pack YAMLPack
	if err := yaml.Unmarshal(data, &pack); err != nil {
		return nil, fmt.Errorf("yaml unmarshal: %w", err)
	}

	levels := make([]Level, 0, len(pack.Levels))
	for i, yl := range pack.Levels {
		if len(yl.Plan) == 0 {
			return nil, fmt.Errorf("level %d: empty plan", i+1)
		}
		id := yl.ID
		if id == "" {
			id = derivedID(stem, i)
		}
		name := yl.Name
		if name == "" {
			name = id
		}
		levels = append(levels, Level{ID: id, Name: name, Plan: yl.Plan})
	}
	return levels, nil
}
