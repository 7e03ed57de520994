package main

import (
	"flag"
	"log/slog"
	"os"

	"github.com/hubastard/echlib/engine/config"
	"github.com/hubastard/echlib/engine/core"
	glbackend "github.com/hubastard/echlib/engine/gfx/gl"
	"github.com/hubastard/echlib/engine/gfx/renderer2d"
	"github.com/hubastard/echlib/engine/platform"
	"github.com/hubastard/echlib/engine/profiler"
	"github.com/hubastard/echlib/engine/text"
)

type App struct {
	settings   config.File
	r2d        *renderer2d.Renderer2D
	font       *text.FontAtlas
	layer      *Layer2D
	debugLayer *LayerDebug
}

func (a *App) OnStart(e *core.Engine) {
	var err error
	a.r2d, err = renderer2d.New(e.Renderer, e.Window, renderer2d.Options{
		CircleSegments: a.settings.CircleSegments,
	})
	if err != nil {
		core.Logger().Error("2d renderer", "error", err)
		e.Window.RequestClose()
		return
	}

	if a.settings.FontPath != "" {
		a.font, err = text.LoadTTF(e.Renderer, a.settings.FontPath, a.settings.FontSize)
	} else {
		a.font, err = text.Default(e.Renderer, a.settings.FontSize)
	}
	if err != nil {
		core.Logger().Warn("font unavailable, overlay disabled", "error", err)
	}

	// push the 2D demo layer
	a.layer = &Layer2D{r2d: a.r2d}
	e.Layers.Push(a.layer)

	a.debugLayer = &LayerDebug{r2d: a.r2d, font: a.font, visible: true}
	e.Layers.Push(a.debugLayer)
}

func (a *App) OnUpdate(e *core.Engine, dt float64) {}

// OnRender runs before the layers, so statistics cover exactly one frame.
func (a *App) OnRender(e *core.Engine, alpha float64) {
	if a.r2d != nil {
		a.r2d.ResetStats()
	}
}

func (a *App) OnEvent(e *core.Engine, ev core.Event) {
	if _, ok := ev.(core.EventCloseRequested); ok {
		core.Logger().Info("close requested")
	}
}

func (a *App) OnShutdown(e *core.Engine) {
	a.font.Release(e.Renderer)
}

func main() {
	cfgPath := flag.String("config", "", "YAML or TOML settings file")
	shaderDir := flag.String("shaders", "", "directory with <material>.vert/.frag overrides")
	flag.Parse()

	settings := config.Default()
	settings.Title = "echlib sandbox"
	settings.Width, settings.Height = 1280, 720
	if *cfgPath != "" {
		var err error
		if settings, err = config.Load(*cfgPath); err != nil {
			slog.Error("config", "error", err)
			os.Exit(1)
		}
	}
	if *shaderDir != "" {
		settings.ShaderDir = *shaderDir
	}

	profiler.Init(1 << 16) // scope events kept in the ring; no-op without -tags profile

	level, _ := settings.Level()
	core.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	app := &App{settings: settings}
	newRenderer := func(win core.Window, cfg core.Config) (core.Renderer, error) {
		return glbackend.NewRendererGL(win, cfg, glbackend.Options{ShaderDir: settings.ShaderDir})
	}

	if err := core.Run(app, settings.Engine(), platform.Open, newRenderer); err != nil {
		core.Logger().Error("sandbox", "error", err)
		os.Exit(1)
	}
}
