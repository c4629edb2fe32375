// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Command ui2dwindow shows the animated ui2d sample frame in an
// Ebitengine window.
package main

import (
	"flag"
	"log"
	"log/slog"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/gogpu/ui2d"
	ebitensink "github.com/gogpu/ui2d/drawlist/sinks/ebiten"
	"github.com/gogpu/ui2d/internal/demo"
	"github.com/gogpu/ui2d/render"
)

// game adapts a Renderer to the ebiten.Game interface.
type game struct {
	r     *render.Renderer
	sink  *ebitensink.Sink
	frame int
	err   error
}

func (g *game) Update() error {
	g.frame++
	return g.err
}

func (g *game) Draw(screen *ebiten.Image) {
	g.sink.SetTarget(screen)
	if err := demo.DrawFrame(g.r, g.frame); err != nil {
		g.err = err
		return
	}
	if err := g.r.Flush(true, 0); err != nil {
		g.err = err
	}
}

func (g *game) Layout(_, _ int) (int, int) {
	vp := g.r.Viewport()
	return int(vp.W), int(vp.H)
}

func main() {
	var (
		configPath = flag.String("config", "", "TOML config file")
		zoom       = flag.Int("zoom", 2, "window zoom factor")
		debug      = flag.Bool("debug", false, "log debug output to stderr")
	)
	flag.Parse()

	if *debug {
		ui2d.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	cfg := render.DefaultConfig()
	if *configPath != "" {
		var err error
		if cfg, err = render.LoadConfig(*configPath); err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
	}

	sink := ebitensink.New()
	r, err := render.NewFromConfig(cfg, render.WithSink(sink))
	if err != nil {
		log.Fatalf("Failed to create renderer: %v", err)
	}
	defer r.Dispose()

	z := *zoom
	ebiten.SetWindowSize(cfg.Width*z, cfg.Height*z)
	ebiten.SetWindowTitle("ui2d")
	if err := ebiten.RunGame(&game{r: r, sink: sink}); err != nil {
		log.Fatal(err)
	}
}
