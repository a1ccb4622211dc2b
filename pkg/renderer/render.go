package renderer

import (
	"context"
	"fmt"
	"runtime"
	"sync/atomic"
	"time"

	"github.com/df07/go-whitted-raytracer/pkg/canvas"
	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/world"
)

// RenderConfig contains configuration for parallel rendering
type RenderConfig struct {
	TileSize   int // Side of each square tile in pixels
	NumWorkers int // Number of parallel workers (0 = use CPU count)
	MaxDepth   int // Reflection/refraction bounces per camera ray
}

// DefaultRenderConfig returns sensible default values
func DefaultRenderConfig() RenderConfig {
	return RenderConfig{
		TileSize:   32,
		NumWorkers: runtime.NumCPU(),
		MaxDepth:   5,
	}
}

// ProgressFunc is told how many of total pixels are done. It is called
// once per pixel from the worker goroutines and must be safe for
// concurrent use.
type ProgressFunc func(done, total int)

// Renderer renders a world through a camera by splitting the image into
// tiles and handing them to a pool of workers.
type Renderer struct {
	world  *world.World
	camera *Camera
	config RenderConfig
	logger core.Logger
}

// NewRenderer creates a new renderer. A non-positive tile size or worker
// count falls back to DefaultRenderConfig; a negative depth becomes 0.
func NewRenderer(w *world.World, camera *Camera, config RenderConfig, logger core.Logger) *Renderer {
	defaults := DefaultRenderConfig()
	if config.TileSize <= 0 {
		config.TileSize = defaults.TileSize
	}
	if config.NumWorkers <= 0 {
		config.NumWorkers = defaults.NumWorkers
	}
	if config.MaxDepth < 0 {
		config.MaxDepth = 0
	}
	if logger == nil {
		logger = NopLogger{}
	}

	return &Renderer{
		world:  w,
		camera: camera,
		config: config,
		logger: logger,
	}
}

// Config returns the effective configuration
func (r *Renderer) Config() RenderConfig {
	return r.config
}

// Render renders the whole image. If ctx is cancelled, tiles not yet started
// are skipped and ctx's error is returned.
func (r *Renderer) Render(ctx context.Context) (*canvas.Canvas, RenderStats, error) {
	return r.RenderWithProgress(ctx, nil)
}

// RenderWithProgress is Render with a progress observer. The observer has no
// effect on the image.
func (r *Renderer) RenderWithProgress(ctx context.Context, progress ProgressFunc) (*canvas.Canvas, RenderStats, error) {
	startTime := time.Now()

	width, height := r.camera.HSize(), r.camera.VSize()
	img := canvas.New(width, height)
	tiles := NewTileGrid(width, height, r.config.TileSize)
	total := width * height

	var onPixel func()
	if progress != nil {
		var completed atomic.Int64
		onPixel = func() {
			progress(int(completed.Add(1)), total)
		}
	}

	raytracer := NewRaytracer(r.world, r.camera, r.config.MaxDepth)
	pool := NewWorkerPool(ctx, raytracer, len(tiles), r.config.NumWorkers, onPixel)

	r.logger.Printf("Rendering %dx%d in %d tiles using %d workers (depth %d)...\n",
		width, height, len(tiles), pool.GetNumWorkers(), r.config.MaxDepth)

	pool.Start()
	for _, tile := range tiles {
		pool.SubmitTask(TileTask{Tile: tile, TaskID: tile.ID, Canvas: img})
	}

	stats := RenderStats{
		TotalPixels: total,
		TotalTiles:  len(tiles),
		NumWorkers:  pool.GetNumWorkers(),
	}

	var renderErr error
	for i := 0; i < len(tiles); i++ {
		result, ok := pool.GetResult()
		if !ok {
			renderErr = fmt.Errorf("worker pool closed unexpectedly")
			break
		}
		if result.Error != nil && renderErr == nil {
			renderErr = result.Error
		}
		stats.RenderedPixels += result.Pixels
	}
	pool.Stop()

	stats.Duration = time.Since(startTime)

	if renderErr != nil {
		r.logger.Printf("Rendering stopped after %d of %d pixels: %v\n", stats.RenderedPixels, total, renderErr)
		return nil, stats, renderErr
	}

	r.logger.Printf("Render completed in %v (%.0f pixels/s)\n", stats.Duration, stats.PixelsPerSecond())
	return img, stats, nil
}
