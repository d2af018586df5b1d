package matter

import (
	"os"
	"path/filepath"
	"strings"
)

// DefaultShadowExtension is the extension used for shadow config files when
// none is specified.
const DefaultShadowExtension = "yml"

// ShadowConfigPath returns the sidecar config path for a file: same
// directory, same stem, with the given extension (no leading dot). An empty
// extension selects DefaultShadowExtension. Pure path computation, no I/O.
func ShadowConfigPath(path, extension string) string {
	if extension == "" {
		extension = DefaultShadowExtension
	}

	base := filepath.Base(path)
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	if stem == "" {
		// Dotfiles like ".env" have no extension to strip.
		stem = base
	}
	return filepath.Join(filepath.Dir(path), stem+"."+extension)
}

// HasShadowConfig reports whether a shadow config file exists alongside
// path. An empty extension selects DefaultShadowExtension.
func HasShadowConfig(path, extension string) bool {
	_, err := os.Stat(ShadowConfigPath(path, extension))
	return err == nil
}
