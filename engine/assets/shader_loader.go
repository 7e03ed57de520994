package assets

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// ErrEmptyShader is returned for a shader file with no source text.
var ErrEmptyShader = errors.New("assets: empty shader source")

// LoadShader reads dir/name as GLSL source terminated by a single NUL, the
// form gl.Strs expects.
func LoadShader(dir, name string) (string, error) {
	b, err := os.ReadFile(filepath.Join(dir, name))
	if err != nil {
		return "", fmt.Errorf("load shader %q: %w", name, err)
	}
	b = bytes.TrimRight(b, "\x00")
	if len(bytes.TrimSpace(b)) == 0 {
		return "", fmt.Errorf("load shader %q: %w", name, ErrEmptyShader)
	}
	return string(b) + "\x00", nil
}
