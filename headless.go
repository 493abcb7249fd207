package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/automoto/isoterrain/config"
	"github.com/automoto/isoterrain/shared/clock"
	"github.com/automoto/isoterrain/shared/gamemath"
	"github.com/automoto/isoterrain/shared/terrain"
	"github.com/automoto/isoterrain/systems/factory"
)

// runHeadless steps the player on the level with no input for the given
// number of frames, paced like the windowed game, and logs where it ends up.
// SIGINT or SIGTERM stops the loop early.
func runHeadless(level *terrain.Level, frames int) {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigChan)

	player := factory.NewPlayerActor(*level.Spawn)
	timer := clock.NewTimer(float64(config.C.TPS))

	log.Printf("Running %d headless frames on %s (%dx%d) from %.2f %.2f %.2f",
		frames, level.Name, level.World.Width(), level.World.Depth(), player.Pos.X, player.Pos.Y, player.Pos.Z)

	frame := 0
loop:
	for ; frame < frames; frame++ {
		select {
		case <-sigChan:
			log.Println("Interrupted, stopping headless run...")
			break loop
		default:
		}
		player.Logic(gamemath.DirNone, false, level.World)
		timer.Wait()
	}

	log.Printf("After %d frames player is at %.2f %.2f %.2f (on ground: %t, %.2f FPS)",
		frame, player.Pos.X, player.Pos.Y, player.Pos.Z, player.OnGround, timer.Framerate())
}
