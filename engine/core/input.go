package core

// Input keeps the last two polled snapshots of keyboard and mouse state.
// Refresh is called once per event poll; queries between two refreshes are
// pure reads, so asking for the same key twice in a frame gives the same answer.
type Input struct {
	keys, prevKeys       [KeyCount]bool // pressed or repeating
	buttons, prevButtons [MouseButtonCount]bool

	mouseX, mouseY   float64
	scrollX, scrollY float64
}

func NewInput() *Input { return &Input{} }

// Refresh shifts the current snapshot to previous and reads a new one from p.
func (in *Input) Refresh(p InputPoller) {
	in.prevKeys = in.keys
	in.prevButtons = in.buttons
	if p == nil {
		in.keys = [KeyCount]bool{}
		in.buttons = [MouseButtonCount]bool{}
		return
	}
	for k := Key(0); k < KeyCount; k++ {
		a := p.KeyAction(k)
		in.keys[k] = a == ActionPress || a == ActionRepeat
	}
	for b := MouseButton(0); b < MouseButtonCount; b++ {
		in.buttons[b] = p.MouseButtonDown(b)
	}
	in.mouseX, in.mouseY = p.CursorPos()
}

// Handle tracks event-only state (cursor, scroll).
func (in *Input) Handle(ev Event) {
	switch e := ev.(type) {
	case EventMouseMove:
		in.mouseX, in.mouseY = e.X, e.Y
	case EventScroll:
		in.scrollX += e.Xoff
		in.scrollY += e.Yoff
	}
}

// IsKeyPressed is true only on the poll where k went from up to down.
func (in *Input) IsKeyPressed(k Key) bool {
	if !k.Valid() {
		return false
	}
	return in.keys[k] && !in.prevKeys[k]
}

// IsKeyHeld reports the raw pressed/repeat state.
func (in *Input) IsKeyHeld(k Key) bool {
	if !k.Valid() {
		return false
	}
	return in.keys[k]
}

func (in *Input) IsMouseButtonPressed(b MouseButton) bool {
	if !b.Valid() {
		return false
	}
	return in.buttons[b] && !in.prevButtons[b]
}

func (in *Input) IsMouseButtonHeld(b MouseButton) bool {
	if !b.Valid() {
		return false
	}
	return in.buttons[b]
}

func (in *Input) Mouse() (float64, float64) { return in.mouseX, in.mouseY }

// Scroll returns and clears the scroll accumulated since the last call.
func (in *Input) Scroll() (float64, float64) {
	x, y := in.scrollX, in.scrollY
	in.scrollX, in.scrollY = 0, 0
	return x, y
}
