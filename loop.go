package main

import (
	"snake-arcade/game"
	"snake-arcade/ui"
)

// run drives the game until the front end reports Quit. Each iteration
// applies pending input, advances the game by at most one step and draws a
// frame. It returns the number of movement steps taken.
func run(fe ui.Frontend, g *game.Game, r *ui.Renderer) int {
	steps := 0
	for {
		for _, ev := range fe.PollEvents() {
			if ev == game.EventQuit {
				return steps
			}
			g.HandleEvent(ev, fe.Now())
		}
		if g.Update(fe.Now()) {
			steps++
		}
		r.Draw(fe, g)
	}
}
