package main

import "github.com/hubastard/echlib/engine/ech"

const (
	playerW, playerH = 48, 48
	moveSpeed        = 300  // px/s
	gravity          = 1500 // px/s^2
	jumpVelocity     = -450 // px/s, y grows downward
	cameraLerp       = 0.12
)

var spawn = [2]float32{100, 100}

type box struct{ X, Y, W, H float32 }

func (b box) hits(o box) bool {
	return ech.CheckCollision(b.X, b.Y, b.W, b.H, o.X, o.Y, o.W, o.H)
}

// controls is one frame of player intent.
type controls struct {
	Left, Right bool
	Jump        bool // edge-triggered
}

type world struct {
	Player   box
	VY       float32
	OnGround bool
	Ground   box
	Spikes   []box
	Deaths   int
}

func newWorld(screenH float32) *world {
	gy := screenH - 60
	w := &world{
		Player: box{spawn[0], spawn[1], playerW, playerH},
		Ground: box{-400, gy, 2400, 60},
	}
	for _, x := range []float32{400, 600, 850, 1200, 1500} {
		w.Spikes = append(w.Spikes, box{x, gy - 32, 32, 32})
	}
	return w
}

// step advances the simulation by dt seconds. It reports whether the player
// touched a spike and was sent back to spawn.
func (w *world) step(in controls, dt float32) bool {
	var vx float32
	if in.Right {
		vx += moveSpeed
	}
	if in.Left {
		vx -= moveSpeed
	}
	if in.Jump && w.OnGround {
		w.VY = jumpVelocity
		w.OnGround = false
	}

	w.Player.X += vx * dt
	w.VY += gravity * dt
	w.Player.Y += w.VY * dt

	if w.Player.hits(w.Ground) {
		w.Player.Y = w.Ground.Y - w.Player.H
		w.VY = 0
		w.OnGround = true
	} else {
		w.OnGround = false
	}

	for _, s := range w.Spikes {
		if w.Player.hits(s) {
			w.Player.X, w.Player.Y = spawn[0], spawn[1]
			w.VY = 0
			w.Deaths++
			return true
		}
	}
	return false
}

// focus is the point the camera follows.
func (w *world) focus() (float32, float32) {
	return w.Player.X + w.Player.W/2, w.Player.Y + w.Player.H/2
}
