//go:build withcv
// +build withcv

/*
DESCRIPTION
  colorcheck-probe is a standalone diagnostic tool that runs the
  ColorChecker detection core against a single image file and prints its
  DetectionOutput as JSON, following the flag-driven, lumberjack-rotated
  logging setup of cmd/rv/main.go and cmd/looper/main.go.

AUTHORS
  ColorCheck Contributors

LICENSE
  Copyright (C) 2026 ColorCheck Contributors. All rights reserved.
*/

// Command colorcheck-probe runs the detection core against a single
// image file and prints the result as JSON.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"gocv.io/x/gocv"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/ausocean/colorcheck/config"
	"github.com/ausocean/colorcheck/orchestrate"
	"github.com/ausocean/colorcheck/score"
	"github.com/ausocean/utils/logging"
)

// Logging related constants, following cmd/looper/main.go's pattern.
const (
	logPath      = "colorcheck-probe.log"
	logMaxSize   = 100 // MB
	logMaxBackup = 3
	logMaxAge    = 28 // days
	logVerbosity = logging.Debug
	logSuppress  = false
)

func main() {
	imgPath := flag.String("image", "", "path to the image file to analyze")
	rotation := flag.Int("rotation", 0, "rotation degrees of the source frame (0,90,180,270), informational only")
	flag.Parse()

	if *imgPath == "" {
		fmt.Fprintln(os.Stderr, "colorcheck-probe: -image is required")
		os.Exit(2)
	}

	fileLog := &lumberjack.Logger{
		Filename:   logPath,
		MaxSize:    logMaxSize,
		MaxAge:     logMaxAge,
		MaxBackups: logMaxBackup,
	}
	l := logging.New(logVerbosity, fileLog, logSuppress)

	out, err := run(*imgPath, int(*rotation), l)
	if err != nil {
		log.Fatalf("colorcheck-probe: %v", err)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		log.Fatalf("colorcheck-probe: encode output: %v", err)
	}
}

func run(imgPath string, rotation int, l logging.Logger) (score.DetectionOutput, error) {
	img := gocv.IMRead(imgPath, gocv.IMReadUnchanged)
	if img.Empty() {
		return score.DetectionOutput{}, fmt.Errorf("failed to read image %q", imgPath)
	}
	defer img.Close()

	rgba := gocv.NewMat()
	defer rgba.Close()
	gocv.CvtColor(img, &rgba, colorToRGBA(img.Channels()))

	w, h := rgba.Cols(), rgba.Rows()
	pixels, err := rgba.DataPtrUint8()
	if err != nil {
		return score.DetectionOutput{}, fmt.Errorf("read pixel buffer: %w", err)
	}

	frame := orchestrate.Frame{
		Width:           w,
		Height:          h,
		RotationDegrees: rotation,
		Pixels:          append([]byte(nil), pixels...),
	}

	cfg := config.Config{Logger: l}
	if err := cfg.Validate(); err != nil {
		return score.DetectionOutput{}, fmt.Errorf("validate config: %w", err)
	}

	core, err := orchestrate.New(cfg)
	if err != nil {
		return score.DetectionOutput{}, fmt.Errorf("create core: %w", err)
	}
	defer core.Close()

	return core.Detect(frame), nil
}

// colorToRGBA picks the gocv conversion code to 4-channel RGBA: 3-channel
// input is treated as BGR, any other channel count as BGRA. Single-channel
// input is not handled.
func colorToRGBA(channels int) gocv.ColorConversionCode {
	if channels == 3 {
		return gocv.ColorBGRToRGBA
	}
	return gocv.ColorBGRAToRGBA
}
