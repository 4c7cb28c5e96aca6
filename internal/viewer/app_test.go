package viewer

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"

	"github.com/akoreman/Monte-Carlo-Ising-Model/internal/config"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type event struct {
	name string
	data []interface{}
}

type recorder struct {
	mu     sync.Mutex
	events []event
}

func (r *recorder) emit(_ context.Context, name string, data ...interface{}) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, event{name: name, data: data})
}

func (r *recorder) named(name string) []event {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []event
	for _, e := range r.events {
		if e.name == name {
			out = append(out, e)
		}
	}
	return out
}

func newTestApp(t *testing.T, files map[string]string) (*App, *recorder) {
	t.Helper()
	dataDir := t.TempDir()
	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dataDir, name), []byte(content), 0o644))
	}
	cfg, err := config.Load("", nil)
	require.NoError(t, err)
	cfg.DataDir = dataDir
	cfg.OutputDir = t.TempDir()
	cfg.Sizes = []int{8}

	rec := &recorder{}
	app := NewApp(cfg, zap.NewNop())
	app.ctx = context.Background()
	app.emit = rec.emit
	return app, rec
}

func completeFiles() map[string]string {
	files := map[string]string{"temperatureLabels.csv": "1\n2\n"}
	for _, obs := range []string{"SpecificHeat", "Magnetisation", "Susceptibility"} {
		files[obs+"8.csv"] = "0.5,0.01\n0.6,0.02\n"
	}
	return files
}

func TestHandleGenerateCharts(t *testing.T) {
	app, rec := newTestApp(t, completeFiles())

	ack, err := app.HandleGenerateCharts()
	require.NoError(t, err)
	assert.Contains(t, ack, "started")
	app.Wait()

	complete := rec.named(EventComplete)
	require.Len(t, complete, 1)
	assert.Equal(t, true, complete[0].data[0])
	assert.Contains(t, complete[0].data[1], "Generated 3 charts")

	assert.Len(t, rec.named(EventPreview), 3)
	assert.NotEmpty(t, rec.named(EventStatus))

	previews := app.Previews()
	require.Len(t, previews, 3)
	for name, url := range previews {
		assert.True(t, strings.HasPrefix(url, "data:image/png;base64,"), name)
	}
	assert.FileExists(t, filepath.Join(app.cfg.OutputDir, "SpecificHeatPerSpin.pdf"))
}

func TestHandleGenerateChartsFailure(t *testing.T) {
	files := completeFiles()
	delete(files, "Susceptibility8.csv")
	app, rec := newTestApp(t, files)

	_, err := app.HandleGenerateCharts()
	require.NoError(t, err)
	app.Wait()

	complete := rec.named(EventComplete)
	require.Len(t, complete, 1)
	assert.Equal(t, false, complete[0].data[0])
	assert.Contains(t, complete[0].data[1], "Susceptibility8.csv")
	assert.Len(t, app.Previews(), 2)
}

func TestHandleGenerateChartsBusy(t *testing.T) {
	app, _ := newTestApp(t, completeFiles())
	app.running = true

	_, err := app.HandleGenerateCharts()
	assert.ErrorIs(t, err, ErrBusy)
}

func TestSettings(t *testing.T) {
	app, _ := newTestApp(t, nil)
	s := app.Settings()
	assert.Equal(t, app.cfg.DataDir, s["dataDir"])
	assert.Equal(t, "[8]", s["sizes"])
}
