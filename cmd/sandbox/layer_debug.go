package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/hubastard/echlib/engine/colors"
	"github.com/hubastard/echlib/engine/core"
	"github.com/hubastard/echlib/engine/gfx/renderer2d"
	"github.com/hubastard/echlib/engine/profiler"
	"github.com/hubastard/echlib/engine/text"
)

// LayerDebug draws a screen-space statistics panel. H toggles it; P writes
// the recorded profiler scopes to a speedscope file.
type LayerDebug struct {
	r2d     *renderer2d.Renderer2D
	font    *text.FontAtlas
	visible bool

	frames    int
	frameTime float64 // smoothed seconds per render
	runtime   profiler.Stats
}

func (l *LayerDebug) OnAttach(e *core.Engine) {}

func (l *LayerDebug) OnDetach(e *core.Engine) {}

func (l *LayerDebug) OnUpdate(e *core.Engine, dt float64) {}

func (l *LayerDebug) OnRender(e *core.Engine, alpha float64) {
	defer profiler.Start("LayerDebug.OnRender")()

	l.frames++
	dt := e.Timer.LastDelta()
	if l.frameTime == 0 {
		l.frameTime = dt
	}
	l.frameTime += (dt - l.frameTime) * 0.05

	if !l.visible || l.font == nil {
		return
	}
	// one runtime read per second at 60 fps
	if l.frames%60 == 1 {
		l.runtime = profiler.ReadStats()
	}

	stats := l.r2d.Stats()
	var b strings.Builder
	fmt.Fprintf(&b, "Frame: %d\n", l.frames)
	if l.frameTime > 0 {
		fmt.Fprintf(&b, "  %2.3f ms (%.1f FPS)\n", l.frameTime*1000, 1/l.frameTime)
	}
	fmt.Fprintf(&b, "2D Renderer\n")
	fmt.Fprintf(&b, "  Draw calls: %d\n", stats.DrawCalls)
	fmt.Fprintf(&b, "  Vertices: %d  Indices: %d\n", stats.Vertices, stats.Indices)
	fmt.Fprintf(&b, "  Skipped: %d\n", stats.SkippedDraw)
	fmt.Fprintf(&b, "  Textures: %d\n", l.r2d.TextureCount())
	fmt.Fprintf(&b, "Memory\n")
	fmt.Fprintf(&b, "  Usage: %.3f MB\n", l.runtime.HeapMB())
	fmt.Fprintf(&b, "  Allocs: %d  GCs: %d\n", l.runtime.Mallocs, l.runtime.NumGC)
	fmt.Fprintf(&b, "  Goroutines: %d\n", l.runtime.Goroutines)
	fmt.Fprintf(&b, "CPU\n")
	fmt.Fprintf(&b, "  Count: %d", l.runtime.CPUs)
	if profiler.Enabled {
		fmt.Fprintf(&b, "\n  Profiling (P to dump)")
	}
	panel := b.String()

	l.r2d.ResetView()
	w, h := text.MeasureText(l.font, panel, 1)
	const pad = 16
	l.r2d.DrawRectangle(pad, pad, w+2*pad, h+2*pad, colors.Black.WithAlpha(0.5))
	text.DrawText(l.r2d, l.font, panel, 2*pad, 2*pad, 1, colors.Yellow)
}

func (l *LayerDebug) OnEvent(e *core.Engine, ev core.Event) bool {
	k, ok := ev.(core.EventKey)
	if !ok || k.Action != core.ActionPress {
		return false
	}
	switch k.Key {
	case core.KeyH:
		l.visible = !l.visible
		return true
	case core.KeyP:
		path := filepath.Join(os.TempDir(), "echlib.speedscope.json")
		if err := profiler.Dump(path); err != nil {
			core.Logger().Warn("profile dump failed", "error", err)
		} else {
			core.Logger().Info("profile written", "path", path)
		}
		return true
	}
	return false
}
