// Package main provides a headless reveal verification tool.
//
// It drives a scratch surface with synthetic strokes, reports the erased
// fraction after every stroke, then runs the fade-out and reports how many ticks
// it took. No window or GPU is needed.
//
// Usage:
//
//	go run ./cmd/verify_reveal [flags]
//
// Flags:
//
//	--config <path>     scratch.yaml to read (default: data/scratch.yaml)
//	--landscape         Use the landscape surface size
//	--spacing <px>      Vertical distance between strokes (default: 30)
//	--out <file.png>    Write the overlay at the moment of reveal as PNG
//	--verbose           Enable verbose logging
package main

import (
	"errors"
	"flag"
	"fmt"
	"image/png"
	"io"
	"log"
	"os"

	"github.com/decker502/scratchcard/internal/scratch"
	"github.com/decker502/scratchcard/pkg/config"
)

var (
	configFlag    = flag.String("config", config.ScratchConfigPath, "scratch.yaml to read")
	landscapeFlag = flag.Bool("landscape", false, "Use the landscape surface size")
	spacingFlag   = flag.Float64("spacing", 30, "Vertical distance between strokes")
	outFlag       = flag.String("out", "", "Write the overlay at reveal time as PNG")
	verboseFlag   = flag.Bool("verbose", false, "Enable verbose logging")
)

func main() {
	flag.Parse()
	if !*verboseFlag {
		log.SetOutput(io.Discard)
	}

	cfg, err := config.LoadScratchConfig(*configFlag)
	if err != nil {
		log.Printf("[verify_reveal] %v, using defaults", err)
		cfg = config.DefaultScratchConfig()
	}
	if *spacingFlag <= 0 {
		fmt.Fprintf(os.Stderr, "❌ --spacing must be positive\n")
		os.Exit(2)
	}

	orientation := config.OrientationPortrait
	if *landscapeFlag {
		orientation = config.OrientationLandscape
	}
	w, h := config.CardSizeFor(orientation, cfg.BaseWidth, cfg.BaseHeight)

	notified := 0
	surface := scratch.NewSurface(scratch.Options{
		RevealThreshold: cfg.RevealThreshold,
		BrushSize:       cfg.BrushSize,
		FadeStep:        cfg.FadeStep,
		MaskColor:       cfg.Mask(),
	}, nil, func() { notified++ })

	// 没有奖品图片，ErrImageNotDecoded 是预期结果
	if err := surface.Initialize(w, h); err != nil && !errors.Is(err, scratch.ErrImageNotDecoded) {
		fmt.Fprintf(os.Stderr, "❌ Initialize(%d, %d) 失败: %v\n", w, h, err)
		os.Exit(1)
	}
	fmt.Printf("surface %dx%d (%s), threshold %.2f, brush %.0f, fade step %.3f\n",
		w, h, orientation, cfg.RevealThreshold, cfg.BrushSize, cfg.FadeStep)

	strokes := 0
	for y := 0.0; y <= float64(h) && !surface.Revealed(); y += *spacingFlag {
		surface.BeginStroke(scratch.Point{X: 0, Y: y})
		surface.ExtendStroke(scratch.Point{X: float64(w), Y: y})
		surface.EndStroke()
		strokes++
		fmt.Printf("stroke %3d  y=%5.1f  erased %.4f  state %s\n",
			strokes, y, surface.ComputeErasedFraction(), surface.State())
	}

	if !surface.Revealed() {
		fmt.Fprintf(os.Stderr, "❌ 刮完整张卡片仍未揭晓\n")
		os.Exit(1)
	}
	fmt.Printf("✅ revealed after %d strokes\n", strokes)

	if *outFlag != "" {
		if err := writePNG(*outFlag, surface); err != nil {
			fmt.Fprintf(os.Stderr, "❌ %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("overlay written to %s\n", *outFlag)
	}

	ticks := 1
	for surface.TickFade() {
		ticks++
	}
	fmt.Printf("✅ fade finished after %d ticks (expected %d), progress %.3f, notified %d time(s)\n",
		ticks, surface.FadeTicks(), surface.FadeProgress(), notified)

	if ticks != surface.FadeTicks() || notified != 1 || surface.OverlayVisible() {
		fmt.Fprintf(os.Stderr, "❌ unexpected fade result\n")
		os.Exit(1)
	}
}

func writePNG(path string, surface *scratch.Surface) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer f.Close()
	if err := png.Encode(f, surface.Overlay()); err != nil {
		return fmt.Errorf("failed to encode overlay: %w", err)
	}
	return nil
}
