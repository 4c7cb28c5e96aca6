package viewer

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"image"
	"sync"

	"github.com/wailsapp/wails/v2/pkg/runtime"
	"go.uber.org/zap"

	"github.com/akoreman/Monte-Carlo-Ising-Model/internal/config"
	"github.com/akoreman/Monte-Carlo-Ising-Model/internal/pipeline"
	"github.com/akoreman/Monte-Carlo-Ising-Model/internal/report"
)

// Events emitted to the frontend.
const (
	EventStatus   = "statusUpdate"
	EventStart    = "generationStart"
	EventComplete = "generationComplete"
	EventPreview  = "previewUpdated"
	EventClearLog = "clearLog"
)

// ErrBusy is returned when a generation is requested while one is running.
var ErrBusy = errors.New("generation already running")

// App is bound to the frontend. It doubles as the renderer's display surface.
type App struct {
	ctx    context.Context
	cfg    *config.Config
	logger *zap.Logger

	previews *report.MemorySurface
	emit     func(ctx context.Context, event string, data ...interface{})

	mu      sync.Mutex
	running bool
	wg      sync.WaitGroup
}

// NewApp creates the viewer for cfg.
func NewApp(cfg *config.Config, logger *zap.Logger) *App {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &App{
		cfg:      cfg,
		logger:   logger,
		previews: report.NewMemorySurface(),
		emit:     runtime.EventsEmit,
	}
}

// Startup is called when the app starts. The context is kept for runtime calls.
func (a *App) Startup(ctx context.Context) {
	a.ctx = ctx
	runtime.WindowSetTitle(a.ctx, "Ising Plot")
}

func (a *App) send(event string, data ...interface{}) {
	if a.ctx != nil {
		a.emit(a.ctx, event, data...)
	}
}

func (a *App) sendStatus(message string) {
	a.send(EventStatus, message)
	a.logger.Info(message)
}

// Show implements report.Surface: every rendered chart becomes a preview.
func (a *App) Show(name string, img image.Image) error {
	if err := a.previews.Show(name, img); err != nil {
		return err
	}
	a.send(EventPreview, name)
	return nil
}

// Previews returns every rendered chart as a PNG data URL keyed by name.
func (a *App) Previews() map[string]string {
	images := a.previews.Images()
	out := make(map[string]string, len(images))
	for name, data := range images {
		out[name] = "data:image/png;base64," + base64.StdEncoding.EncodeToString(data)
	}
	return out
}

// Settings reports the directories the viewer works on.
func (a *App) Settings() map[string]string {
	return map[string]string{
		"dataDir":   a.cfg.DataDir,
		"outputDir": a.cfg.OutputDir,
		"sizes":     fmt.Sprint(a.cfg.Sizes),
	}
}

// HandleGenerateCharts is called from the frontend. The charts are rendered
// on a background goroutine; progress arrives as statusUpdate events and the
// outcome as a generationComplete event.
func (a *App) HandleGenerateCharts() (string, error) {
	a.mu.Lock()
	if a.running {
		a.mu.Unlock()
		return "", ErrBusy
	}
	a.running = true
	a.mu.Unlock()

	a.send(EventClearLog)
	a.previews.Reset()
	a.sendStatus(fmt.Sprintf("Request: data=[%s], output=[%s], sizes=%v", a.cfg.DataDir, a.cfg.OutputDir, a.cfg.Sizes))

	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		defer func() {
			a.mu.Lock()
			a.running = false
			a.mu.Unlock()
		}()
		defer func() {
			if r := recover(); r != nil {
				msg := fmt.Sprintf("PANIC recovered: %v", r)
				a.sendStatus(msg)
				a.send(EventComplete, false, msg)
			}
		}()

		a.send(EventStart)
		ok, msg := a.generate()
		a.send(EventComplete, ok, msg)
	}()

	return "Chart generation started in background.", nil
}

// generate runs the batch pipeline and returns the completion message.
func (a *App) generate() (bool, string) {
	r := a.cfg.NewRenderer(a.logger, a)
	res, err := pipeline.Run(a.cfg, r, a.sendStatus)
	if err != nil {
		msg := fmt.Sprintf("Error generating charts: %v", err)
		a.sendStatus(msg)
		return false, msg
	}
	msg := fmt.Sprintf("Generated %d charts", len(res.Charts))
	if res.Report != "" {
		msg += fmt.Sprintf(" and report %s", res.Report)
	}
	a.sendStatus(msg)
	return true, msg
}

// Wait blocks until a running generation has finished.
func (a *App) Wait() {
	a.wg.Wait()
}
