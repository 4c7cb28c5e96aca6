// Package viewer is the desktop front end: it runs the batch pipeline in the
// background and shows the rendered charts as they are produced.
package viewer

import (
	"context"
	"embed"
	"fmt"

	"github.com/wailsapp/wails/v2"
	"github.com/wailsapp/wails/v2/pkg/options"
	"github.com/wailsapp/wails/v2/pkg/options/assetserver"
	"go.uber.org/zap"

	"github.com/akoreman/Monte-Carlo-Ising-Model/internal/config"
)

//go:embed all:frontend/public
var assets embed.FS

// Run opens the viewer window and blocks until it is closed.
func Run(cfg *config.Config, logger *zap.Logger) error {
	app := NewApp(cfg, logger)

	err := wails.Run(&options.App{
		Title:  "Ising Plot",
		Width:  1024,
		Height: 768,
		AssetServer: &assetserver.Options{
			Assets: assets,
		},
		BackgroundColour: &options.RGBA{R: 46, G: 46, B: 46, A: 255}, // #2e2e2e
		OnStartup:        app.Startup,
		OnShutdown: func(_ context.Context) {
			app.Wait()
		},
		Bind: []interface{}{
			app,
		},
	})
	if err != nil {
		return fmt.Errorf("error running viewer: %w", err)
	}
	return nil
}
