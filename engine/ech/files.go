package ech

import (
	"github.com/hubastard/echlib/engine/assets"
	"github.com/hubastard/echlib/engine/core"
)

// WriteFile replaces path with content.
func WriteFile(path, content string) bool {
	if err := assets.WriteFile(path, content); err != nil {
		core.Logger().Warn("write failed", "error", err)
		return false
	}
	return true
}

func AppendFile(path, content string) bool {
	if err := assets.AppendFile(path, content); err != nil {
		core.Logger().Warn("append failed", "error", err)
		return false
	}
	return true
}

// ReadFile returns the whole file, or "" when it cannot be read.
func ReadFile(path string) string {
	s, err := assets.ReadFile(path)
	if err != nil {
		core.Logger().Warn("read failed", "error", err)
		return ""
	}
	return s
}

func FileExists(path string) bool { return assets.FileExists(path) }

func DeleteFile(path string) bool {
	if err := assets.DeleteFile(path); err != nil {
		core.Logger().Warn("delete failed", "error", err)
		return false
	}
	return true
}
