package matter

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ReadConfig reads a file's metadata and merges it over defaults. A shadow
// config file next to the path always wins over an embedded front matter
// header; with neither present the result is a fresh copy of defaults.
func ReadConfig(path string, defaults map[string]any) (map[string]any, error) {
	if !HasShadowConfig(path, DefaultShadowExtension) {
		return ReadConfigHeader(path, defaults)
	}

	shadow := ShadowConfigPath(path, DefaultShadowExtension)
	data, err := os.ReadFile(shadow)
	if err != nil {
		return nil, fmt.Errorf("read shadow config %s: %w", shadow, err)
	}

	cfg, err := ParseConfig(data, defaults)
	if err != nil {
		return nil, fmt.Errorf("shadow config %s: %w", shadow, err)
	}
	return cfg, nil
}

// DecodeConfig unmarshals a file's metadata into out, following the usual
// yaml.v3 rules (struct with yaml tags, map, etc). The metadata source is
// chosen as in ReadConfig: shadow config file first, then front matter
// header. A file with no metadata leaves out untouched.
func DecodeConfig(path string, out any) error {
	var (
		data []byte
		err  error
	)

	switch {
	case HasShadowConfig(path, DefaultShadowExtension):
		shadow := ShadowConfigPath(path, DefaultShadowExtension)
		data, err = os.ReadFile(shadow)
		if err != nil {
			return fmt.Errorf("read shadow config %s: %w", shadow, err)
		}
	case HasConfigHeader(path):
		data, err = extractHeader(path)
		if err != nil {
			return err
		}
	default:
		return nil
	}

	if err := yaml.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decode config for %s: %w", path, err)
	}
	return nil
}
