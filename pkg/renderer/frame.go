// Package renderer contains the camera projector, the sphere-tracing loop
// and the parallel frame renderer that maps it over the pixel grid.
package renderer

import (
	"context"
	"fmt"
	"image"
	"image/color"
	"runtime"
	"sync"

	"github.com/quatray/go-quaternion-julia/pkg/core"
	"github.com/quatray/go-quaternion-julia/pkg/scene"
)

// DefaultLogger implements core.Logger by writing to stdout
type DefaultLogger struct{}

func (dl *DefaultLogger) Printf(format string, args ...interface{}) {
	fmt.Printf(format, args...)
}

// NewDefaultLogger creates a new default logger
func NewDefaultLogger() core.Logger {
	return &DefaultLogger{}
}

// Config contains configuration for parallel frame rendering
type Config struct {
	TileSize   int // size of each tile (64 recommended)
	NumWorkers int // number of parallel workers (0 = use CPU count)
}

// DefaultConfig returns sensible default values
func DefaultConfig() Config {
	return Config{TileSize: 64, NumWorkers: 0}
}

// FrameRenderer renders whole frames by sphere tracing every pixel in
// parallel across a pool of tile workers. Per-pixel evaluation is pure, so
// tiles may complete in any order with identical output.
type FrameRenderer struct {
	width, height int
	config        Config
	logger        core.Logger
}

// NewFrameRenderer creates a frame renderer for the given viewport
func NewFrameRenderer(width, height int, config Config, logger core.Logger) *FrameRenderer {
	if config.TileSize <= 0 {
		config.TileSize = DefaultConfig().TileSize
	}
	if config.NumWorkers <= 0 {
		config.NumWorkers = runtime.NumCPU()
	}
	if logger == nil {
		logger = NewDefaultLogger()
	}
	return &FrameRenderer{width: width, height: height, config: config, logger: logger}
}

type tileResult struct {
	stats FrameStats
	err   error
}

// RenderFrame traces every pixel against a snapshot of the scene options
// and returns the assembled RGBA frame. The options are copied by value at
// the call boundary, so a configuration change mid-frame can never tear:
// every pixel of the frame sees the same constants. If ctx is cancelled the
// partially rendered frame is discarded and the context error returned.
func (fr *FrameRenderer) RenderFrame(ctx context.Context, opts scene.Options, cam Camera) (*image.RGBA, FrameStats, error) {
	layers := scene.Compose(opts)
	tiles := NewTileGrid(fr.width, fr.height, fr.config.TileSize)
	img := image.NewRGBA(image.Rect(0, 0, fr.width, fr.height))

	taskQueue := make(chan Tile, len(tiles))
	results := make(chan tileResult, len(tiles))

	var wg sync.WaitGroup
	for w := 0; w < fr.config.NumWorkers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for tile := range taskQueue {
				select {
				case <-ctx.Done():
					results <- tileResult{err: ctx.Err()}
					continue
				default:
				}
				// Tiles have non-overlapping bounds, so writing the shared
				// image from multiple workers is safe.
				results <- tileResult{stats: fr.renderTile(tile, img, layers, opts, cam)}
			}
		}()
	}

	for _, tile := range tiles {
		taskQueue <- tile
	}
	close(taskQueue)

	var stats FrameStats
	var err error
	for range tiles {
		result := <-results
		if result.err != nil {
			err = result.err
			continue
		}
		stats.merge(result.stats)
	}
	wg.Wait()

	if err != nil {
		// A superseded frame's output is discarded, never merged.
		return nil, FrameStats{}, err
	}

	stats.finalize()
	fr.logger.Printf("frame %dx%d: %.1f steps/ray, %d/%d rays hit\n",
		fr.width, fr.height, stats.AverageSteps, stats.HitCount, stats.TotalRays)
	return img, stats, nil
}

// renderTile traces all pixels within the tile bounds
func (fr *FrameRenderer) renderTile(tile Tile, img *image.RGBA, layers []scene.Layer, opts scene.Options, cam Camera) FrameStats {
	var stats FrameStats
	for y := tile.Bounds.Min.Y; y < tile.Bounds.Max.Y; y++ {
		for x := tile.Bounds.Min.X; x < tile.Bounds.Max.X; x++ {
			ray := cam.GetRay(x, y, fr.width, fr.height)
			collision := MarchLayers(ray, layers, opts)
			img.SetRGBA(x, y, vec3ToColor(collision.Color))
			stats.add(collision.Iterations, collision.Hit)
		}
	}
	return stats
}

// vec3ToColor converts a color vector to RGBA with clamping
func vec3ToColor(v core.Vec3) color.RGBA {
	v = v.Clamp(0.0, 1.0)
	return color.RGBA{
		R: uint8(255 * v.X),
		G: uint8(255 * v.Y),
		B: uint8(255 * v.Z),
		A: 255,
	}
}
