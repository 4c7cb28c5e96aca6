package report

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"sort"
	"sync"
)

// Surface is where rendered artifacts are shown. Show must finish with img
// before returning; the renderer does not reuse img afterwards.
type Surface interface {
	Show(name string, img image.Image) error
}

// NopSurface discards everything. It is the default for batch runs.
type NopSurface struct{}

func (NopSurface) Show(string, image.Image) error { return nil }

// PNGSurface writes each shown image to Dir/<name>.png.
type PNGSurface struct {
	Dir string
}

func (s PNGSurface) Show(name string, img image.Image) error {
	if err := os.MkdirAll(s.Dir, 0o755); err != nil {
		return fmt.Errorf("failed to create preview directory: %w", err)
	}
	path := filepath.Join(s.Dir, name+".png")
	data, err := EncodePNG(img)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write preview %s: %w", path, err)
	}
	return nil
}

// MemorySurface keeps PNG encodings of everything shown, keyed by name.
// It is safe for use from the UI goroutine while a render is in progress.
type MemorySurface struct {
	mu     sync.Mutex
	images map[string][]byte
}

func NewMemorySurface() *MemorySurface {
	return &MemorySurface{images: make(map[string][]byte)}
}

func (s *MemorySurface) Show(name string, img image.Image) error {
	data, err := EncodePNG(img)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.images[name] = data
	s.mu.Unlock()
	return nil
}

// PNG returns the encoded image shown under name.
func (s *MemorySurface) PNG(name string) ([]byte, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	data, ok := s.images[name]
	return data, ok
}

// Images returns a copy of all encoded images.
func (s *MemorySurface) Images() map[string][]byte {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make(map[string][]byte, len(s.images))
	for k, v := range s.images {
		out[k] = v
	}
	return out
}

// Names returns the shown names in sorted order.
func (s *MemorySurface) Names() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	names := make([]string, 0, len(s.images))
	for k := range s.images {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// Reset forgets every image.
func (s *MemorySurface) Reset() {
	s.mu.Lock()
	s.images = make(map[string][]byte)
	s.mu.Unlock()
}

// multiSurface shows on each surface in turn, stopping at the first error.
type multiSurface []Surface

func (m multiSurface) Show(name string, img image.Image) error {
	for _, s := range m {
		if err := s.Show(name, img); err != nil {
			return err
		}
	}
	return nil
}

// Surfaces fans Show out to several surfaces. Nil entries are skipped.
func Surfaces(surfaces ...Surface) Surface {
	var m multiSurface
	for _, s := range surfaces {
		if s != nil {
			m = append(m, s)
		}
	}
	if len(m) == 1 {
		return m[0]
	}
	return m
}

// EncodePNG encodes img losslessly.
func EncodePNG(img image.Image) ([]byte, error) {
	buf := new(bytes.Buffer)
	if err := png.Encode(buf, img); err != nil {
		return nil, fmt.Errorf("failed to encode PNG: %w", err)
	}
	return buf.Bytes(), nil
}
