// Windowbirds opens the window scene: white birds every second, black birds
// every minute, and a sky that follows the wall clock.
package main

import (
	"log"

	"github.com/phanxgames/windowbirds"
)

const (
	windowTitle = "Bird (Time-Tracking Window Scene)"
	showFPS     = false
)

func main() {
	scene := windowbirds.NewScene(windowbirds.SceneConfig{})

	if err := windowbirds.Run(scene, windowbirds.RunConfig{
		Title:   windowTitle,
		Width:   windowbirds.CanvasWidth,
		Height:  windowbirds.CanvasHeight,
		ShowFPS: showFPS,
	}); err != nil {
		log.Fatal(err)
	}
}
