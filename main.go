package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/df07/go-whitted-raytracer/pkg/canvas"
	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/progress"
	"github.com/df07/go-whitted-raytracer/pkg/renderer"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

const scenesDir = "scenes"

// Config holds the command line options
type Config struct {
	Scene    string
	Width    int
	Height   int
	Depth    int
	Workers  int
	TileSize int
	Format   string
	Output   string
	Progress bool
}

func main() {
	config := Config{}

	// Parse command line flags
	flag.StringVar(&config.Scene, "scene", "default", "Built-in scene id, 'json:<name>' from scenes/, or a path to a .json scene")
	flag.IntVar(&config.Width, "width", 0, "Image width in pixels (0 = scene default)")
	flag.IntVar(&config.Height, "height", 0, "Image height in pixels (0 = scene default)")
	flag.IntVar(&config.Depth, "depth", 0, "Reflection/refraction depth (0 = scene default)")
	flag.IntVar(&config.Workers, "workers", 0, "Number of render workers (0 = number of CPUs)")
	flag.IntVar(&config.TileSize, "tile", 0, "Tile size in pixels (0 = default)")
	flag.StringVar(&config.Format, "format", "png", "Output format: 'png' or 'ppm'")
	flag.StringVar(&config.Output, "out", "", "Output file (default output/<scene>/render_<timestamp>.<format>)")
	flag.BoolVar(&config.Progress, "progress", true, "Show a progress bar while rendering")
	list := flag.Bool("list", false, "List available scenes")
	help := flag.Bool("help", false, "Show help information")
	flag.Parse()

	// Show help if requested
	if *help {
		showHelp()
		return
	}

	logger := renderer.NewDefaultLogger()

	if *list {
		if err := listScenes(logger); err != nil {
			logger.Printf("Error listing scenes: %v\n", err)
			os.Exit(1)
		}
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, config, logger); err != nil {
		logger.Printf("Error: %v\n", err)
		os.Exit(1)
	}
}

func showHelp() {
	fmt.Println("Whitted Raytracer")
	fmt.Println("Usage: raytracer [options]")
	fmt.Println()
	fmt.Println("Options:")
	flag.PrintDefaults()
	fmt.Println()
	fmt.Println("Built-in scenes:")
	for _, info := range scene.ListBuiltinScenes() {
		fmt.Printf("  %-22s %s\n", info.ID, info.Description)
	}
	fmt.Println()
	fmt.Println("Run with -list to include the JSON scenes in scenes/")
}

func listScenes(logger core.Logger) error {
	groups, err := scene.ListAllScenes(scenesDir)
	if err != nil {
		return err
	}
	for _, group := range groups {
		logger.Printf("%s:\n", group.Name)
		for _, info := range group.Scenes {
			logger.Printf("  %-26s %s\n", info.ID, info.Description)
		}
	}
	return nil
}

// run loads the scene, renders it and writes the image
func run(ctx context.Context, config Config, logger core.Logger) error {
	format := strings.ToLower(config.Format)
	if format != "png" && format != "ppm" {
		return fmt.Errorf("unsupported format %q", config.Format)
	}

	s, err := createScene(config.Scene, config.Width, config.Height)
	if err != nil {
		return err
	}
	if config.Depth > 0 {
		s.MaxDepth = config.Depth
	}
	logger.Printf("Loaded scene %s\n", s.Summary())

	renderConfig := s.RenderConfig()
	if config.Workers > 0 {
		renderConfig.NumWorkers = config.Workers
	}
	if config.TileSize > 0 {
		renderConfig.TileSize = config.TileSize
	}

	var image *canvas.Canvas
	var stats renderer.RenderStats
	if config.Progress {
		image, stats, err = renderWithProgressBar(ctx, s, renderConfig)
	} else {
		image, stats, err = renderer.NewRenderer(s.World, s.Camera, renderConfig, logger).Render(ctx)
	}
	if err != nil {
		return fmt.Errorf("render failed: %w", err)
	}

	logger.Printf("Render completed in %v (%.0f pixels/s, %d workers)\n",
		stats.Duration, stats.PixelsPerSecond(), stats.NumWorkers)

	filename := config.Output
	if filename == "" {
		filename = outputPath("output", s.Name, format, time.Now())
	}
	if err := image.Save(filename); err != nil {
		return fmt.Errorf("failed to save image: %w", err)
	}

	logger.Printf("Render saved as %s\n", filename)
	return nil
}

// renderWithProgressBar runs the render in the background while a
// bubbletea program shows its progress. Pressing ctrl+c cancels the render.
func renderWithProgressBar(ctx context.Context, s *scene.Scene, config renderer.RenderConfig) (*canvas.Canvas, renderer.RenderStats, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	total := s.Camera.HSize() * s.Camera.VSize()
	program := tea.NewProgram(progress.New(s.Name, total, cancel), tea.WithContext(ctx))
	reporter := progress.NewReporter(program.Send, total)

	type outcome struct {
		image  *canvas.Canvas
		stats  renderer.RenderStats
		err    error
	}
	done := make(chan outcome, 1)

	go func() {
		// the program owns the terminal, so the renderer stays quiet
		r := renderer.NewRenderer(s.World, s.Camera, config, renderer.NopLogger{})
		c, stats, err := r.RenderWithProgress(ctx, reporter.Report)
		done <- outcome{c, stats, err}
		program.Send(progress.FinishedMsg{Err: err})
	}()

	if _, err := program.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		cancel()
		<-done
		return nil, renderer.RenderStats{}, err
	}

	result := <-done
	return result.image, result.stats, result.err
}

// createScene resolves a scene reference: a built-in id, "json:<name>" for
// a file in scenes/, or a path to a JSON file
func createScene(ref string, width, height int) (*scene.Scene, error) {
	return scene.Load(ref, scenesDir, width, height)
}

// outputPath builds output/<scene>/render_<timestamp>.<format>
func outputPath(dir, sceneName, format string, now time.Time) string {
	timestamp := now.Format("20060102_150405")
	return filepath.Join(dir, sceneName, fmt.Sprintf("render_%s.%s", timestamp, format))
}
