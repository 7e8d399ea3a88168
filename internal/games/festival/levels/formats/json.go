package formats

import (
	"fmt"

	jsoniter "github.com/json-iterator/go"

	"github.com/vovakirdan/festival-crush/internal/games/festival/core"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// ParseJSON parses a JSON level file.
func ParseJSON(id string, data []byte) (core.LevelSpec, error) {
	var f File
	if err := json.Unmarshal(data, &f); err != nil {
		return core.LevelSpec{}, fmt.Errorf("json unmarshal: %w", err)
	}
	return f.ToSpec(id)
}

// EncodeJSON writes a level in the canonical JSON layout.
func EncodeJSON(spec core.LevelSpec) ([]byte, error) {
	return json.MarshalIndent(FromSpec(spec), "", "  ")
}
