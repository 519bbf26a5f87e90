package main

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/boyrun/prefabs"
)

func main() {
	spec, err := prefabs.LoadCharacterSpec()
	if err != nil {
		log.Fatal(err)
	}

	game, err := NewGame(spec)
	if err != nil {
		log.Fatal(err)
	}
	defer game.Close()

	ebiten.SetWindowSize(spec.Window.Width, spec.Window.Height)
	ebiten.SetWindowTitle(spec.Title)
	// closing the window becomes a quit event handled by the loop
	ebiten.SetWindowClosingHandled(true)

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
