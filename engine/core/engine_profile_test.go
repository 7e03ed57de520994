//go:build profile

package core

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/hubastard/echlib/engine/profiler"
)

func TestFrameBracketRecordsScopes(t *testing.T) {
	profiler.Init(64)
	win := newFakeWindow(100, 100)
	e := NewEngine(win, &fakeRenderer{}, Config{}, newFakeClock())

	e.BeginFrame()
	e.EndFrame()
	e.BeginFrame()
	e.Close() // mid-frame

	path := filepath.Join(t.TempDir(), "frames.json")
	if err := profiler.Dump(path); err != nil {
		t.Fatalf("Dump() error = %v", err)
	}
	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	var doc struct {
		Shared struct {
			Frames []struct{ Name string } `json:"frames"`
		} `json:"shared"`
		Profiles []struct {
			Events []struct{ Type string } `json:"events"`
		} `json:"profiles"`
	}
	if err := json.Unmarshal(b, &doc); err != nil {
		t.Fatal(err)
	}
	seen := map[string]bool{}
	for _, f := range doc.Shared.Frames {
		seen[f.Name] = true
	}
	if !seen["frame"] || !seen["present"] {
		t.Errorf("scope names = %v, want frame and present", seen)
	}
	// frame+present, then a frame closed by Close
	if got := len(doc.Profiles[0].Events); got != 6 {
		t.Errorf("events = %d, want 6", got)
	}
}
