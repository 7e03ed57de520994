package core

// Layer is one slice of an application driven by Run. Layers are updated and
// rendered bottom to top; events travel top to bottom until one is consumed.
type Layer interface {
	OnAttach(e *Engine)
	OnDetach(e *Engine)
	OnUpdate(e *Engine, dt float64)
	OnRender(e *Engine, alpha float64)
	OnEvent(e *Engine, ev Event) bool // true consumes the event
}

// LayerStack orders the layers of an Engine. The zero value is empty.
type LayerStack struct{ list []Layer }

func (ls *LayerStack) Len() int { return len(ls.list) }

func (ls *LayerStack) Push(l Layer) { ls.list = append(ls.list, l) }

// Pop removes the top layer without detaching it.
func (ls *LayerStack) Pop() (Layer, bool) {
	n := len(ls.list)
	if n == 0 {
		return nil, false
	}
	l := ls.list[n-1]
	ls.list[n-1] = nil
	ls.list = ls.list[:n-1]
	return l, true
}

func (ls *LayerStack) attach(e *Engine) {
	for _, l := range ls.list {
		l.OnAttach(e)
	}
}

func (ls *LayerStack) update(e *Engine, dt float64) {
	for _, l := range ls.list {
		l.OnUpdate(e, dt)
	}
}

func (ls *LayerStack) render(e *Engine, alpha float64) {
	for _, l := range ls.list {
		l.OnRender(e, alpha)
	}
}

// dispatch offers ev to the top layer first and reports whether one consumed it.
func (ls *LayerStack) dispatch(e *Engine, ev Event) bool {
	for i := len(ls.list) - 1; i >= 0; i-- {
		if ls.list[i].OnEvent(e, ev) {
			return true
		}
	}
	return false
}

// detach pops every layer, top first, calling OnDetach on each.
func (ls *LayerStack) detach(e *Engine) {
	for l, ok := ls.Pop(); ok; l, ok = ls.Pop() {
		l.OnDetach(e)
	}
}
