// Package config loads engine settings from YAML or TOML files.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/hubastard/echlib/engine/colors"
	"github.com/hubastard/echlib/engine/core"
	"gopkg.in/yaml.v3"
)

// ErrUnknownFormat is returned for files that are neither YAML nor TOML.
var ErrUnknownFormat = errors.New("config: unknown file format")

// File is the on-disk layout. Keys missing from a file keep their Default value.
type File struct {
	Title          string    `yaml:"title" toml:"title"`
	Width          int       `yaml:"width" toml:"width"`
	Height         int       `yaml:"height" toml:"height"`
	VSync          bool      `yaml:"vsync" toml:"vsync"`
	Resizable      bool      `yaml:"resizable" toml:"resizable"`
	ClearColor     []float32 `yaml:"clear_color" toml:"clear_color"`
	FPSLimit       int       `yaml:"fps_limit" toml:"fps_limit"`
	CircleSegments int       `yaml:"circle_segments" toml:"circle_segments"`

	ShaderDir string  `yaml:"shader_dir" toml:"shader_dir"`
	FontPath  string  `yaml:"font" toml:"font"`
	FontSize  float32 `yaml:"font_size" toml:"font_size"`
	LogLevel  string  `yaml:"log_level" toml:"log_level"`
}

// Default mirrors the window the library opens when no file is given.
func Default() File {
	return File{
		Title:          "echlib",
		Width:          800,
		Height:         600,
		VSync:          true,
		Resizable:      true,
		ClearColor:     []float32{0.1, 0.1, 0.12, 1},
		CircleSegments: 64,
		FontSize:       24,
		LogLevel:       "info",
	}
}

// Load reads path over Default. The format follows the extension:
// .yaml/.yml or .toml.
func Load(path string) (File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return File{}, fmt.Errorf("read config: %w", err)
	}
	f, err := Parse(data, filepath.Ext(path))
	if err != nil {
		return File{}, fmt.Errorf("config %q: %w", path, err)
	}
	return f, nil
}

// Parse decodes data in the format named by ext (with or without the dot).
func Parse(data []byte, ext string) (File, error) {
	f := Default()
	switch strings.ToLower(strings.TrimPrefix(ext, ".")) {
	case "yaml", "yml":
		if err := yaml.Unmarshal(data, &f); err != nil {
			return File{}, fmt.Errorf("decode yaml: %w", err)
		}
	case "toml":
		if _, err := toml.Decode(string(data), &f); err != nil {
			return File{}, fmt.Errorf("decode toml: %w", err)
		}
	default:
		return File{}, fmt.Errorf("%w: %q", ErrUnknownFormat, ext)
	}
	if err := f.Validate(); err != nil {
		return File{}, err
	}
	return f, nil
}

// Validate checks the fields that have no meaningful fallback.
func (f File) Validate() error {
	if f.Width <= 0 || f.Height <= 0 {
		return fmt.Errorf("window size must be positive, got %dx%d", f.Width, f.Height)
	}
	if n := len(f.ClearColor); n != 0 && n != 3 && n != 4 {
		return fmt.Errorf("clear_color needs 3 or 4 components, got %d", n)
	}
	if f.FontSize < 0 {
		return fmt.Errorf("font_size must not be negative, got %v", f.FontSize)
	}
	if _, err := f.Level(); err != nil {
		return err
	}
	return nil
}

// Level parses LogLevel; an empty value is info.
func (f File) Level() (slog.Level, error) {
	var l slog.Level
	if f.LogLevel == "" {
		return slog.LevelInfo, nil
	}
	if err := l.UnmarshalText([]byte(f.LogLevel)); err != nil {
		return 0, fmt.Errorf("log_level: %w", err)
	}
	return l, nil
}

// Engine maps the file onto core.Config.
func (f File) Engine() core.Config {
	cfg := core.Config{
		Title:          f.Title,
		Width:          f.Width,
		Height:         f.Height,
		VSync:          f.VSync,
		Resizable:      f.Resizable,
		ClearColor:     colors.Black,
		FPSLimit:       f.FPSLimit,
		CircleSegments: f.CircleSegments,
	}
	switch len(f.ClearColor) {
	case 3:
		cfg.ClearColor = colors.Color{f.ClearColor[0], f.ClearColor[1], f.ClearColor[2], 1}
	case 4:
		cfg.ClearColor = colors.Color(f.ClearColor)
	}
	return cfg
}
