// Command platformer is a side-scrolling movement demo driven by an explicit
// frame loop over the ech facade.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/hubastard/echlib/engine/colors"
	"github.com/hubastard/echlib/engine/config"
	"github.com/hubastard/echlib/engine/core"
	"github.com/hubastard/echlib/engine/ech"
	glbackend "github.com/hubastard/echlib/engine/gfx/gl"
)

func main() {
	cfgPath := flag.String("config", "", "YAML or TOML settings file")
	flag.Parse()

	settings := config.Default()
	settings.Title = "echlib - movement + spikes"
	settings.FPSLimit = 60
	if *cfgPath != "" {
		var err error
		if settings, err = config.Load(*cfgPath); err != nil {
			slog.Error("config", "error", err)
			os.Exit(1)
		}
	}
	level, _ := settings.Level()
	core.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	cfg := settings.Engine()
	ctx := ech.Open(cfg, glbackend.Options{ShaderDir: settings.ShaderDir})
	defer ctx.Close()

	font := ctx.DefaultFont(settings.FontSize)
	defer ctx.UnloadFont(font)

	w := newWorld(float32(cfg.Height))
	shadow := colors.Color{0, 0, 0, 0.15}

	for !ctx.ShouldClose() {
		start := time.Now()
		dt := float32(ctx.GetDeltaTime())
		if dt <= 0 || dt > 0.25 {
			dt = 1.0 / 60
		}

		if ctx.IsKeyPressed(core.KeyEscape) {
			ctx.RequestClose()
		}
		in := controls{
			Left:  ctx.IsKeyHeld(core.KeyA) || ctx.IsKeyHeld(core.KeyLeft),
			Right: ctx.IsKeyHeld(core.KeyD) || ctx.IsKeyHeld(core.KeyRight),
			Jump:  ctx.IsKeyPressed(core.KeySpace) || ctx.IsKeyPressed(core.KeyW),
		}
		if w.step(in, dt) {
			core.Logger().Info("hit a spike", "deaths", w.Deaths)
		}

		fx, fy := w.focus()
		ctx.UpdateCamera(fx, fy, cameraLerp)

		ctx.BeginFrame()
		ctx.ClearBackground(colors.Beige)

		g := w.Ground
		ctx.DrawRectangle(g.X, g.Y, g.W, g.H, colors.LightBlue)
		for _, s := range w.Spikes {
			ctx.DrawTriangle(s.X, s.Y+s.H, s.W, -s.H, colors.Red)
		}
		p := w.Player
		ctx.DrawRectangle(p.X+6, g.Y-6, p.W, 6, shadow)
		ctx.DrawRectangle(p.X, p.Y, p.W, p.H, colors.LightGreen)

		if font != nil {
			r2d := ctx.Renderer2D()
			view := r2d.View()
			r2d.ResetView()
			ctx.DrawText(font, fmt.Sprintf("deaths: %d", w.Deaths), 12, 12, 1, colors.DarkGray)
			r2d.SetView(view)
		}

		ctx.EndFrame()
		ctx.ApplyFPSLimit(time.Since(start).Seconds())
	}
}
