package core

import (
	"testing"

	"github.com/hubastard/echlib/engine/colors"
)

func TestEngineNilWindowIsClosed(t *testing.T) {
	rend := &fakeRenderer{}
	e := NewEngine(nil, rend, Config{}, newFakeClock())

	if !e.ShouldClose() {
		t.Error("ShouldClose() with nil window = false, want true")
	}
	e.BeginFrame()
	e.EndFrame()
	if len(rend.clears) != 0 {
		t.Errorf("BeginFrame with nil window cleared %d times, want 0", len(rend.clears))
	}
	if e.State() != StateUninitialized {
		t.Errorf("State() = %v, want %v", e.State(), StateUninitialized)
	}
}

func TestEngineFrameLifecycle(t *testing.T) {
	win := newFakeWindow(640, 360)
	rend := &fakeRenderer{}
	e := NewEngine(win, rend, Config{ClearColor: colors.Beige}, newFakeClock())

	if e.State() != StateWindowOpen {
		t.Fatalf("State() = %v, want %v", e.State(), StateWindowOpen)
	}
	if len(rend.resizes) != 1 || rend.resizes[0] != [2]int{640, 360} {
		t.Errorf("initial resizes = %v, want [[640 360]]", rend.resizes)
	}

	e.BeginFrame()
	if e.State() != StateFrameBegun {
		t.Errorf("State() after BeginFrame = %v, want %v", e.State(), StateFrameBegun)
	}
	if len(rend.clears) != 1 || rend.clears[0] != [4]float32(colors.Beige) {
		t.Errorf("clears = %v, want one Beige clear", rend.clears)
	}

	e.SetClearColor(colors.Red)
	e.EndFrame()
	if e.State() != StateFrameEnded {
		t.Errorf("State() after EndFrame = %v, want %v", e.State(), StateFrameEnded)
	}
	if win.swaps != 1 || win.polls != 1 {
		t.Errorf("swaps, polls = %d, %d; want 1, 1", win.swaps, win.polls)
	}

	e.BeginFrame()
	if got := rend.clears[len(rend.clears)-1]; got != [4]float32(colors.Red) {
		t.Errorf("second clear = %v, want Red", got)
	}

	e.Close()
	e.Close()
	if rend.shutdown != 1 {
		t.Errorf("renderer shutdown %d times, want 1", rend.shutdown)
	}
	if !e.ShouldClose() {
		t.Error("ShouldClose() after Close = false, want true")
	}
}

func TestEngineEndFrameRefreshesInput(t *testing.T) {
	win := newFakeWindow(100, 100)
	e := NewEngine(win, &fakeRenderer{}, Config{}, newFakeClock())

	win.keys[KeyEscape] = ActionPress
	if e.Input.IsKeyPressed(KeyEscape) {
		t.Fatal("input changed before EndFrame")
	}
	e.BeginFrame()
	e.EndFrame()
	if !e.Input.IsKeyPressed(KeyEscape) {
		t.Error("IsKeyPressed after EndFrame = false, want true")
	}
}

func TestEngineResizeForwarded(t *testing.T) {
	win := newFakeWindow(100, 100)
	rend := &fakeRenderer{}
	e := NewEngine(win, rend, Config{}, newFakeClock())

	var seen []Event
	e.OnEvent = func(ev Event) { seen = append(seen, ev) }

	win.pending = []Event{EventResize{W: 300, H: 200}, EventResize{W: 0, H: 0}}
	e.EndFrame()

	if got := rend.resizes[len(rend.resizes)-1]; got != [2]int{300, 200} {
		t.Errorf("last resize = %v, want [300 200]", got)
	}
	if len(rend.resizes) != 2 {
		t.Errorf("resizes = %v, want zero-size resize ignored", rend.resizes)
	}
	if len(seen) != 2 {
		t.Errorf("OnEvent saw %d events, want 2", len(seen))
	}
}
