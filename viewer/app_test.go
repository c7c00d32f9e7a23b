package main

import (
	"image"
	"testing"
	"time"

	"github.com/quatray/go-quaternion-julia/pkg/config"
)

type quietLogger struct{}

func (quietLogger) Printf(format string, args ...interface{}) {}

func testApp() *App {
	cfg := config.Default()
	cfg.Width = 32
	cfg.Height = 24
	cfg.Shape = "sphere"
	return NewApp(cfg, nil, quietLogger{})
}

func TestDeliver_EvictsStaleResult(t *testing.T) {
	app := testApp()

	// A superseded render finished late and parked its frame in the buffer
	stale := image.NewRGBA(image.Rect(0, 0, 32, 24))
	app.results <- frameResult{generation: 1, img: stale}
	app.generation = 2

	fresh := image.NewRGBA(image.Rect(0, 0, 32, 24))
	app.deliver(frameResult{generation: 2, img: fresh})

	app.collectFrame()
	if app.frame != fresh {
		t.Fatal("Expected the current generation's frame to displace the stale one")
	}
}

func TestCollectFrame_DiscardsSupersededGenerations(t *testing.T) {
	app := testApp()
	app.generation = 3

	app.deliver(frameResult{generation: 2, img: image.NewRGBA(image.Rect(0, 0, 32, 24))})
	app.collectFrame()

	if app.frame != nil {
		t.Error("Expected a superseded frame to be discarded")
	}
}

func TestStartRender_SupersededFrameStillArrives(t *testing.T) {
	app := testApp()

	// Back-to-back renders: the first is cancelled mid-flight, and whichever
	// order the goroutines finish in, the second's frame must come through
	app.startRender()
	app.startRender()

	deadline := time.After(10 * time.Second)
	for app.frame == nil {
		select {
		case <-deadline:
			t.Fatal("Timed out waiting for the current frame")
		case <-time.After(10 * time.Millisecond):
			app.collectFrame()
		}
	}

	if app.generation != 2 {
		t.Fatalf("Expected generation 2, got %d", app.generation)
	}
	if got := app.frame.Bounds(); got.Dx() != 32 || got.Dy() != 24 {
		t.Errorf("Expected a 32x24 frame, got %v", got)
	}
}
