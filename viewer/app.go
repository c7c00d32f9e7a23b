package main

import (
	"context"
	"fmt"
	"image"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/quatray/go-quaternion-julia/pkg/config"
	"github.com/quatray/go-quaternion-julia/pkg/core"
	"github.com/quatray/go-quaternion-julia/pkg/renderer"
	"github.com/quatray/go-quaternion-julia/pkg/scene"
)

const (
	orbitSensitivity = 0.01
	zoomStep         = 0.25
	// Keep theta off the poles so the orbit basis never degenerates.
	maxTheta = math.Pi/2 - 0.01
)

// App owns the viewer state: the live options, the orbit camera, and the
// asynchronous frame pipeline. Rendering happens off the UI goroutine; a
// configuration or camera change cancels the in-flight frame and starts a
// new one, and stale results are discarded by generation number.
type App struct {
	logger core.Logger

	width, height int
	opts          scene.Options

	distance    float64
	minDistance float64
	phi         float64
	theta       float64

	frames  *renderer.FrameRenderer
	updates <-chan config.Config

	frame      *image.RGBA
	stats      renderer.FrameStats
	screenImg  *ebiten.Image
	results    chan frameResult
	cancel     context.CancelFunc
	generation int
	dirty      bool

	lastCursorX int
	lastCursorY int
	dragging    bool
}

type frameResult struct {
	generation int
	img        *image.RGBA
	stats      renderer.FrameStats
}

// NewApp creates the viewer from a validated configuration. The updates
// channel may be nil when no config file is being watched.
func NewApp(cfg config.Config, updates <-chan config.Config, logger core.Logger) *App {
	return &App{
		logger:      logger,
		width:       cfg.Width,
		height:      cfg.Height,
		opts:        cfg.Options(),
		distance:    cfg.Camera.Distance,
		minDistance: cfg.Camera.MinDistance,
		phi:         cfg.Camera.Phi,
		theta:       cfg.Camera.Theta,
		frames:      renderer.NewFrameRenderer(cfg.Width, cfg.Height, renderer.DefaultConfig(), logger),
		updates:     updates,
		results:     make(chan frameResult, 1),
		dirty:       true,
	}
}

// Update applies input and configuration changes, then keeps the frame
// pipeline running. Called once per tick by ebiten.
func (a *App) Update() error {
	a.applyConfigUpdates()
	a.handleMouse()
	a.handleKeys()
	a.collectFrame()

	if a.dirty {
		a.startRender()
		a.dirty = false
	}
	return nil
}

// applyConfigUpdates takes the newest hot-reloaded configuration, if any
func (a *App) applyConfigUpdates() {
	if a.updates == nil {
		return
	}
	select {
	case cfg, ok := <-a.updates:
		if !ok {
			a.updates = nil
			return
		}
		a.opts = cfg.Options()
		a.minDistance = cfg.Camera.MinDistance
		a.dirty = true
		a.logger.Printf("configuration reloaded\n")
	default:
	}
}

// handleMouse implements drag-to-orbit and wheel-to-dolly
func (a *App) handleMouse() {
	x, y := ebiten.CursorPosition()
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		if a.dragging {
			dx := x - a.lastCursorX
			dy := y - a.lastCursorY
			if dx != 0 || dy != 0 {
				a.phi -= float64(dx) * orbitSensitivity
				a.theta = max(-maxTheta, min(maxTheta, a.theta+float64(dy)*orbitSensitivity))
				a.dirty = true
			}
		}
		a.dragging = true
	} else {
		a.dragging = false
	}
	a.lastCursorX, a.lastCursorY = x, y

	if _, wheelY := ebiten.Wheel(); wheelY != 0 {
		a.distance = max(a.minDistance, a.distance-wheelY*zoomStep)
		a.dirty = true
	}
}

// handleKeys cycles the shape and toggles the diagnostic modes
func (a *App) handleKeys() {
	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		a.opts.Shape = a.opts.Shape.Next()
		a.dirty = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		a.opts.Heatmap = !a.opts.Heatmap
		a.dirty = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyA) {
		a.opts.ShowAxes = !a.opts.ShowAxes
		a.dirty = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		a.opts.AnalyticNormals = !a.opts.AnalyticNormals
		a.dirty = true
	}
}

// collectFrame picks up a finished frame, dropping results from superseded
// generations
func (a *App) collectFrame() {
	select {
	case result := <-a.results:
		if result.generation == a.generation {
			a.frame = result.img
			a.stats = result.stats
		}
	default:
	}
}

// startRender cancels any in-flight frame and launches the next one with a
// snapshot of the current options and camera
func (a *App) startRender() {
	if a.cancel != nil {
		a.cancel()
	}
	ctx, cancel := context.WithCancel(context.Background())
	a.cancel = cancel
	a.generation++

	generation := a.generation
	opts := a.opts
	camera := renderer.NewOrbitCamera(a.distance, a.phi, a.theta)

	go func() {
		img, stats, err := a.frames.RenderFrame(ctx, opts, camera)
		if err != nil {
			// Cancelled frames are expected; their output is discarded.
			return
		}
		a.deliver(frameResult{generation: generation, img: img, stats: stats})
	}()
}

// deliver queues a finished frame, evicting a stale pending result rather
// than dropping the new one. A superseded render can finish after the current
// one and occupy the buffer; the newest result must still get through or the
// viewer would sit on an old image until the next input.
func (a *App) deliver(result frameResult) {
	for {
		select {
		case a.results <- result:
			return
		default:
		}
		select {
		case <-a.results:
		default:
		}
	}
}

// Draw blits the most recent finished frame and a small status line
func (a *App) Draw(screen *ebiten.Image) {
	if a.frame != nil {
		if a.screenImg == nil {
			a.screenImg = ebiten.NewImage(a.width, a.height)
		}
		a.screenImg.WritePixels(a.frame.Pix)
		screen.DrawImage(a.screenImg, nil)
	}

	ebitenutil.DebugPrint(screen, fmt.Sprintf(
		"%s | %.1f steps/ray | tab: shape  h: heatmap  a: axes  n: normals",
		a.opts.Shape, a.stats.AverageSteps))
}

// Layout reports the fixed internal resolution
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.width, a.height
}
