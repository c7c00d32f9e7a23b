package main

import (
	"context"
	"flag"
	"fmt"
	"image/png"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"

	"github.com/quatray/go-quaternion-julia/pkg/config"
	"github.com/quatray/go-quaternion-julia/pkg/renderer"
)

func main() {
	configPath := flag.String("config", "", "Path to a TOML scene options file")
	shapeName := flag.String("shape", "", "Override the active shape: sphere, cylinder, box, torus, julia, julia-power")
	width := flag.Int("width", 0, "Override the frame width in pixels")
	height := flag.Int("height", 0, "Override the frame height in pixels")
	heatmap := flag.Bool("heatmap", false, "Render the marching-cost heatmap instead of shaded geometry")
	axes := flag.Bool("axes", false, "Overlay the debug coordinate axes")
	outputDir := flag.String("output", "output", "Directory to write the rendered PNG into")
	help := flag.Bool("help", false, "Show help information")
	flag.Parse()

	if *help {
		fmt.Println("Quaternion Julia sphere tracer")
		fmt.Println("Usage: quatjulia [options]")
		fmt.Println()
		fmt.Println("Options:")
		flag.PrintDefaults()
		fmt.Println()
		fmt.Println("Output will be saved to <output>/<shape>_<timestamp>.png")
		return
	}

	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.RFC3339,
	})

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			logger.Fatalf("loading config: %v", err)
		}
		cfg = loaded
	}
	if *width > 0 {
		cfg.Width = *width
	}
	if *height > 0 {
		cfg.Height = *height
	}
	if *shapeName != "" {
		cfg.Shape = *shapeName
	}

	opts := cfg.Options()
	if *heatmap {
		opts.Heatmap = true
	}
	if *axes {
		opts.ShowAxes = true
	}

	camera := renderer.NewOrbitCamera(cfg.Camera.Distance, cfg.Camera.Phi, cfg.Camera.Theta)
	frames := renderer.NewFrameRenderer(cfg.Width, cfg.Height, renderer.DefaultConfig(), logger)

	logger.Infof("rendering %s at %dx%d", opts.Shape, cfg.Width, cfg.Height)

	startTime := time.Now()
	img, stats, err := frames.RenderFrame(context.Background(), opts, camera)
	if err != nil {
		logger.Fatalf("rendering frame: %v", err)
	}
	logger.Infof("frame completed in %v (max %d steps on one ray)",
		time.Since(startTime), stats.MaxStepsUsed)

	if err := os.MkdirAll(*outputDir, 0755); err != nil {
		logger.Fatalf("creating output directory: %v", err)
	}

	timestamp := time.Now().Format("20060102_150405")
	filename := filepath.Join(*outputDir, fmt.Sprintf("%s_%s.png", opts.Shape, timestamp))

	file, err := os.Create(filename)
	if err != nil {
		logger.Fatalf("creating file: %v", err)
	}
	defer file.Close()

	if err := png.Encode(file, img); err != nil {
		logger.Fatalf("saving PNG: %v", err)
	}

	logger.Infof("render saved as %s", filename)
}
