package matter

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// ParseConfig parses YAML text into a configuration map and merges it over
// defaults. Only the plain YAML data model is produced: scalars, sequences,
// and mappings; no custom types, no code execution. Empty and null documents
// yield an empty map. The top-level document must be a mapping.
func ParseConfig(text []byte, defaults map[string]any) (map[string]any, error) {
	var cfg map[string]any
	if err := yaml.Unmarshal(text, &cfg); err != nil {
		return nil, fmt.Errorf("parse YAML config: %w", err)
	}

	if defaults != nil {
		return Merge(defaults, cfg), nil
	}
	if cfg == nil {
		cfg = make(map[string]any)
	}
	return cfg, nil
}
