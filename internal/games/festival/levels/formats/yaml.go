package formats

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/festival-crush/internal/games/festival/core"
)

// ParseYAML parses a YAML level file.
func ParseYAML(id string, data []byte) (core.LevelSpec, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return core.LevelSpec{}, fmt.Errorf("yaml unmarshal: %w", err)
	}
	return f.ToSpec(id)
}
