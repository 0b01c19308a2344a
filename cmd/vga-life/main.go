//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"vga-life/internal/app"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg, err := app.NewConfig()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	game := app.New(cfg)
	w, h := game.ScreenSize()

	ebiten.SetWindowTitle("vga-life")
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(w*cfg.Scale, h*cfg.Scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
