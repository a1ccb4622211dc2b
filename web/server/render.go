package server

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/progress"
	"github.com/df07/go-whitted-raytracer/pkg/renderer"
	"github.com/google/uuid"
)

// SSEEvent represents a unified SSE event for thread-safe writing
type SSEEvent struct {
	Type string `json:"type"` // "console", "progress", "image", "error", "complete"
	Data string `json:"data"` // JSON-encoded data
}

// ProgressUpdate reports finished pixels while a render runs
type ProgressUpdate struct {
	Done      int   `json:"done"`
	Total     int   `json:"total"`
	ElapsedMs int64 `json:"elapsedMs"`
}

// ImageUpdate carries the finished image
type ImageUpdate struct {
	Scene     string `json:"scene"`
	Width     int    `json:"width"`
	Height    int    `json:"height"`
	Depth     int    `json:"depth"`
	ImageData string `json:"imageData"` // Base64 encoded PNG
	Stats     Stats  `json:"stats"`
	ElapsedMs int64  `json:"elapsedMs"`
}

// handleRender renders a scene and streams progress, console output and the
// final image via SSE
func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	// Set SSE headers
	s.setSSEHeaders(w)

	ctx := r.Context()

	// Create unified SSE event channel for thread-safe writing
	sseEventChan := make(chan SSEEvent, 100)
	consoleChan, webLogger := s.setupConsoleLogging()

	// Start single SSE writer goroutine; the handler waits for it so nothing
	// touches w after we return
	writerDone := make(chan struct{})
	go s.writeSSEEvents(ctx, w, sseEventChan, consoleChan, writerDone)
	defer func() {
		close(sseEventChan)
		<-writerDone
	}()

	req, err := s.parseRenderRequest(r)
	if err != nil {
		s.handleError(ctx, sseEventChan, fmt.Sprintf("Invalid request: %v", err))
		return
	}

	sceneObj, err := s.createScene(req)
	if err != nil {
		s.handleError(ctx, sseEventChan, err.Error())
		return
	}
	webLogger.Printf("Loaded scene %s\n", sceneObj.Summary())

	startTime := time.Now()
	total := sceneObj.Camera.HSize() * sceneObj.Camera.VSize()
	reporter := progress.NewReporter(func(msg tea.Msg) {
		p := msg.(progress.Msg)
		s.sendJSON(ctx, sseEventChan, "progress", ProgressUpdate{
			Done:      p.Done,
			Total:     p.Total,
			ElapsedMs: time.Since(startTime).Milliseconds(),
		})
	}, total)

	rt := renderer.NewRenderer(sceneObj.World, sceneObj.Camera, sceneObj.RenderConfig(), webLogger)
	img, stats, err := rt.RenderWithProgress(ctx, reporter.Report)
	if err != nil {
		s.handleError(ctx, sseEventChan, fmt.Sprintf("Rendering failed: %v", err))
		return
	}

	imageData, err := imageToBase64PNG(img.ToImage())
	if err != nil {
		s.handleError(ctx, sseEventChan, fmt.Sprintf("Failed to encode image: %v", err))
		return
	}

	s.sendJSON(ctx, sseEventChan, "image", ImageUpdate{
		Scene:     sceneObj.Name,
		Width:     img.Width(),
		Height:    img.Height(),
		Depth:     sceneObj.MaxDepth,
		ImageData: imageData,
		Stats:     newStats(stats, renderer.AverageLuminance(img)),
		ElapsedMs: time.Since(startTime).Milliseconds(),
	})

	// Send completion event
	select {
	case sseEventChan <- SSEEvent{Type: "complete", Data: "Rendering completed"}:
	case <-ctx.Done():
	}
}

// setSSEHeaders sets the required headers for Server-Sent Events
func (s *Server) setSSEHeaders(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("Access-Control-Allow-Origin", "*")
}

// setupConsoleLogging creates console channel and web logger for a render
func (s *Server) setupConsoleLogging() (chan ConsoleMessage, core.Logger) {
	consoleChan := make(chan ConsoleMessage, 50)
	renderID := "render-" + uuid.New().String()[:8]
	return consoleChan, NewWebLogger(renderID, consoleChan)
}

// writeSSEEvents writes all SSE events from a single goroutine. It returns
// once events is closed, after flushing pending console messages.
func (s *Server) writeSSEEvents(ctx context.Context, w http.ResponseWriter, events <-chan SSEEvent, console <-chan ConsoleMessage, done chan<- struct{}) {
	defer close(done)

	clientGone := false
	write := func(event SSEEvent) {
		if clientGone {
			return
		}
		if _, err := fmt.Fprintf(w, "event: %s\ndata: %s\n\n", event.Type, event.Data); err != nil {
			// Client disconnected during write
			clientGone = true
			return
		}
		if flusher, ok := w.(http.Flusher); ok {
			flusher.Flush()
		}
	}
	writeConsole := func(msg ConsoleMessage) {
		data, err := json.Marshal(msg)
		if err != nil {
			log.Printf("Error marshaling console message: %v", err)
			return
		}
		write(SSEEvent{Type: "console", Data: string(data)})
	}

	for {
		select {
		case event, ok := <-events:
			if !ok {
				for {
					select {
					case msg := <-console:
						writeConsole(msg)
					default:
						return
					}
				}
			}
			write(event)

		case msg := <-console:
			writeConsole(msg)

		case <-ctx.Done():
			// Client disconnected, keep draining so senders never block
			clientGone = true
			for range events {
			}
			return
		}
	}
}

func (s *Server) sendJSON(ctx context.Context, sseEventChan chan<- SSEEvent, eventType string, v interface{}) {
	data, err := json.Marshal(v)
	if err != nil {
		log.Printf("Error marshaling %s event: %v", eventType, err)
		return
	}
	select {
	case sseEventChan <- SSEEvent{Type: eventType, Data: string(data)}:
	case <-ctx.Done():
	}
}

// handleError sends an error event to the SSE channel
func (s *Server) handleError(ctx context.Context, sseEventChan chan<- SSEEvent, message string) {
	select {
	case sseEventChan <- SSEEvent{Type: "error", Data: message}:
	case <-ctx.Done():
		// Client disconnected, don't block
	}
}
