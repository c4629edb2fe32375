// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Command ui2ddemo renders the ui2d sample frame. With the software sink
// the frame is written to a PNG file; with the recorder sink the flushed
// primitives are listed on stdout.
package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strings"

	"github.com/anthonynsimon/bild/imgio"
	"github.com/anthonynsimon/bild/transform"

	"github.com/gogpu/ui2d"
	"github.com/gogpu/ui2d/drawlist"
	"github.com/gogpu/ui2d/drawlist/sinks/software"
	"github.com/gogpu/ui2d/internal/demo"
	"github.com/gogpu/ui2d/render"
)

func main() {
	var (
		configPath = flag.String("config", "", "TOML config file")
		sinkName   = flag.String("sink", "", "sink to flush to (overrides config), one of: "+strings.Join(drawlist.Sinks(), ", "))
		width      = flag.Int("width", 0, "viewport width (overrides config)")
		height     = flag.Int("height", 0, "viewport height (overrides config)")
		output     = flag.String("output", "ui2d.png", "output file")
		scale      = flag.Int("scale", 1, "integer upscale factor for the saved image")
		frame      = flag.Int("frame", 0, "animation frame to render")
		xShift     = flag.Int("xshift", 0, "horizontal shift applied at flush")
		debug      = flag.Bool("debug", false, "log debug output to stderr")
		dumpConfig = flag.Bool("dump-config", false, "print the effective config and exit")
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
	if *width > 0 {
		cfg.Width = *width
	}
	if *height > 0 {
		cfg.Height = *height
	}
	if *sinkName != "" {
		cfg.Sink = *sinkName
	}
	if cfg.Sink == "" {
		cfg.Sink = render.DefaultSink
	}
	if !drawlist.IsRegistered(cfg.Sink) {
		log.Fatalf("Unknown sink %q, registered: %s", cfg.Sink, strings.Join(drawlist.Sinks(), ", "))
	}

	if *dumpConfig {
		data, err := cfg.Marshal()
		if err != nil {
			log.Fatalf("Failed to encode config: %v", err)
		}
		_, _ = os.Stdout.Write(data)
		return
	}

	r, err := render.NewFromConfig(cfg)
	if err != nil {
		log.Fatalf("Failed to create renderer: %v", err)
	}
	defer r.Dispose()

	if err := demo.DrawFrame(r, *frame); err != nil {
		log.Fatalf("Failed to draw frame: %v", err)
	}
	if err := r.Flush(true, *xShift); err != nil {
		log.Fatalf("Failed to flush: %v", err)
	}

	switch sink := r.Sink().(type) {
	case *software.Sink:
		savePNG(sink, cfg, *output, *scale)
	case *drawlist.Recorder:
		printFrame(sink)
	default:
		log.Fatalf("Sink %q produces no output", cfg.Sink)
	}
}

// savePNG writes the software sink's pixmap, upscaled by scale.
func savePNG(sink *software.Sink, cfg render.Config, output string, scale int) {
	img := sink.Pixmap().ToImage()
	if scale > 1 {
		img = transform.Resize(img, cfg.Width*scale, cfg.Height*scale, transform.NearestNeighbor)
	}
	if err := imgio.Save(output, img, imgio.PNGEncoder()); err != nil {
		log.Fatalf("Failed to save: %v", err)
	}

	log.Printf("Frame saved to %s (%dx%d)\n", output, img.Bounds().Dx(), img.Bounds().Dy())
}

// printFrame lists the recorded primitives in compositing order.
func printFrame(rec *drawlist.Recorder) {
	fmt.Printf("frame %dx%d, %d primitives\n", rec.Width, rec.Height, len(rec.Prims))
	for i, p := range rec.Prims {
		switch p := p.(type) {
		case drawlist.Sprite:
			fmt.Printf("%3d %-10s %v color=%v rot=%.3f\n", i, p.Kind(), p.Dst, p.Color, p.Rotation)
		case drawlist.Text:
			fmt.Printf("%3d %-10s %q at %v color=%v\n", i, p.Kind(), p.Text, p.Pos, p.Color)
		}
	}
}
