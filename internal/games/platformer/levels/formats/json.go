package formats

import (
	"encoding/json"
	"fmt"
)

// ParseJSON parses a JSON array of plans, each an array of row strings.
// Levels are named after the file stem and their position.
func ParseJSON(data []byte, stem string) ([]Level, error) {
	var plans [][]string
	if err := json.Unmarshal(data, &plans); err != nil {
		return nil, fmt.Errorf("json unmarshal: %w", err)
	}

	levels := make([]Level, 0, len(plans))
	for i, plan := range plans {
		if len(plan) == 0 {
			return nil, fmt.Errorf("level %d: empty plan", i+1)
		}
		id := derivedID(stem, i)
		levels = append(levels, Level{ID: id, Name: fmt.Sprintf("%s #%d", stem, i+1), Plan: plan})
	}
	return levels, nil
}
