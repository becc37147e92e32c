package game

import (
	"bytes"
	"fmt"
	_ "image/jpeg" // Register JPEG decoder
	_ "image/png"  // Register PNG decoder
	"os"
	"strings"

	"github.com/decker502/scratchcard/pkg/embedded"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// DefaultFontPath 内置 Go Regular 字体的伪路径
const DefaultFontPath = "builtin:goregular"

// ResourceManager is responsible for centralized management of game resources.
// It loads images asynchronously (the prize image may finish decoding after the
// first frame), caches font faces and owns the audio context.
//
// Resource paths starting with "assets/" or "data/" are read from the embedded
// file systems when the embedded package is initialized; any other path, or an
// embedded miss, falls back to the local file system.
//
// Thread Safety Note:
// The caches are only touched from the game loop goroutine. Image decoding runs in
// a background goroutine, but its result is published through AsyncImage, which
// synchronizes via a closed channel.
type ResourceManager struct {
	audioContext  *audio.Context              // Global audio context, may be nil (no audio)
	imageCache    map[string]*AsyncImage      // Cache for async images: path -> AsyncImage
	fontFaceCache map[string]*text.GoTextFace // Cache for Ebitengine v2 text faces
	fontSources   map[string]*text.GoTextFaceSource
}

// NewResourceManager creates and initializes a new ResourceManager instance.
//
// Parameters:
//   - audioContext: The global audio context, or nil when audio is unavailable.
func NewResourceManager(audioContext *audio.Context) *ResourceManager {
	return &ResourceManager{
		audioContext:  audioContext,
		imageCache:    make(map[string]*AsyncImage),
		fontFaceCache: make(map[string]*text.GoTextFace),
		fontSources:   make(map[string]*text.GoTextFaceSource),
	}
}

// AudioContext returns the audio context (may be nil).
func (rm *ResourceManager) AudioContext() *audio.Context {
	return rm.audioContext
}

// ReadResource reads a resource file, preferring the embedded file systems.
func (rm *ResourceManager) ReadResource(path string) ([]byte, error) {
	clean := strings.TrimPrefix(path, "./")
	if embedded.IsInitialized() && (strings.HasPrefix(clean, "assets/") || strings.HasPrefix(clean, "data/")) {
		if data, err := embedded.ReadFile(clean); err == nil {
			return data, nil
		}
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read resource %s: %w", path, err)
	}
	return data, nil
}

// LoadImageAsync starts decoding the image at path in the background and returns a
// handle immediately. Repeated calls for the same path return the same handle.
//
// Example:
//
//	prize := rm.LoadImageAsync("assets/images/prize.png")
//	// ... later, in Update:
//	if prize.Decoded() { ... }
func (rm *ResourceManager) LoadImageAsync(path string) *AsyncImage {
	if cached, exists := rm.imageCache[path]; exists {
		return cached
	}

	img := newAsyncImage(path)
	rm.imageCache[path] = img
	go img.decode(func() ([]byte, error) { return rm.ReadResource(path) })
	return img
}

// LoadFont loads a TrueType/OpenType font and returns a face of the given size.
// DefaultFontPath selects the built-in Go Regular font.
//
// Parameters:
//   - path: The font file path, or DefaultFontPath.
//   - size: The font size in points.
func (rm *ResourceManager) LoadFont(path string, size float64) (*text.GoTextFace, error) {
	// Create cache key combining path and size
	cacheKey := fmt.Sprintf("%s:%.1f", path, size)
	if cachedFace, exists := rm.fontFaceCache[cacheKey]; exists {
		return cachedFace, nil
	}

	source, ok := rm.fontSources[path]
	if !ok {
		var fontData []byte
		if path == DefaultFontPath {
			fontData = goregular.TTF
		} else {
			data, err := rm.ReadResource(path)
			if err != nil {
				return nil, fmt.Errorf("failed to read font file %s: %w", path, err)
			}
			fontData = data
		}

		var err error
		source, err = text.NewGoTextFaceSource(bytes.NewReader(fontData))
		if err != nil {
			return nil, fmt.Errorf("failed to create font source for %s: %w", path, err)
		}
		rm.fontSources[path] = source
	}

	goTextFace := &text.GoTextFace{
		Source:    source,
		Size:      size,
		Direction: text.DirectionLeftToRight,
	}
	rm.fontFaceCache[cacheKey] = goTextFace

	return goTextFace, nil
}
