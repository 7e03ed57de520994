package core

import (
	"runtime"
	"time"

	"github.com/hubastard/echlib/engine/profiler"
)

// Run wires the platform window + renderer and executes the main loop,
// dispatching to app and then to every pushed layer.
func Run(app App, cfg Config, newWindow func(Config) (Window, error), newRenderer func(Window, Config) (Renderer, error)) error {
	return RunWithClock(app, cfg, newWindow, newRenderer, SystemClock)
}

// RunWithClock is Run with an explicit time source.
func RunWithClock(app App, cfg Config, newWindow func(Config) (Window, error), newRenderer func(Window, Config) (Renderer, error), clock Clock) error {
	// Graphics contexts require the main OS thread.
	runtime.LockOSThread()

	win, err := newWindow(cfg)
	if err != nil {
		return err
	}
	rend, err := newRenderer(win, cfg)
	if err != nil {
		win.Close()
		return err
	}

	eng := NewEngine(win, rend, cfg, clock)
	defer eng.Close()

	eng.OnEvent = func(ev Event) {
		app.OnEvent(eng, ev)
		eng.Layers.dispatch(eng, ev)
	}

	app.OnStart(eng)
	eng.Layers.attach(eng)

	// Fixed-timestep (60 Hz) with interpolation
	const tick = time.Second / 60
	var (
		accum   time.Duration
		maxStep = 10 // prevent spiral of death
	)
	eng.Timer.DeltaTime()

	for !eng.ShouldClose() {
		frameStart := clock.Now()
		accum += time.Duration(eng.Timer.DeltaTime() * float64(time.Second))

		endUpdate := profiler.Start("update")
		steps := 0
		for accum >= tick && steps < maxStep {
			dt := tick.Seconds()
			app.OnUpdate(eng, dt)
			eng.Layers.update(eng, dt)
			accum -= tick
			steps++
		}
		if steps == maxStep {
			accum = 0
		}
		endUpdate()
		alpha := float64(accum) / float64(tick)

		eng.BeginFrame()
		app.OnRender(eng, alpha)
		eng.Layers.render(eng, alpha)
		eng.EndFrame()

		eng.Timer.ApplyFPSLimit(clock.Now().Sub(frameStart).Seconds())
	}

	eng.Layers.detach(eng)
	app.OnShutdown(eng)
	Logger().Info("engine exit")
	return nil
}
