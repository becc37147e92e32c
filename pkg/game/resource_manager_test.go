package game

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
	"time"
)

// createTestImage creates a simple w x h PNG image for testing purposes.
func createTestImage(t *testing.T, path string, w, h int) {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	blue := color.RGBA{R: 0, G: 0, B: 255, A: 255}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, blue)
		}
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("failed to create dir: %v", err)
	}
	file, err := os.Create(path)
	if err != nil {
		t.Fatalf("failed to create image: %v", err)
	}
	defer file.Close()
	if err := png.Encode(file, img); err != nil {
		t.Fatalf("failed to encode image: %v", err)
	}
}

// TestLoadImageAsync tests background decoding of a PNG file.
func TestLoadImageAsync(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prize.png")
	createTestImage(t, path, 30, 20)

	rm := NewResourceManager(nil)
	img := rm.LoadImageAsync(path)

	if !img.Wait(5 * time.Second) {
		t.Fatal("decode did not finish")
	}
	if !img.Decoded() {
		t.Fatalf("Decoded() = false, err = %v", img.Err())
	}
	if w, h := img.NaturalSize(); w != 30 || h != 20 {
		t.Errorf("NaturalSize() = %dx%d, want 30x20", w, h)
	}
	if img.Image() == nil {
		t.Error("Image() returned nil after decode")
	}

	// Cached handle
	if again := rm.LoadImageAsync(path); again != img {
		t.Error("LoadImageAsync should return the cached handle")
	}
}

// TestLoadImageAsyncMissingFile tests that a missing file finishes with an error.
func TestLoadImageAsyncMissingFile(t *testing.T) {
	rm := NewResourceManager(nil)
	img := rm.LoadImageAsync(filepath.Join(t.TempDir(), "missing.png"))

	if !img.Wait(5 * time.Second) {
		t.Fatal("decode did not finish")
	}
	if img.Decoded() {
		t.Error("missing file should not decode")
	}
	if img.Err() == nil {
		t.Error("Err() should report the read failure")
	}
	if w, h := img.NaturalSize(); w != 0 || h != 0 {
		t.Errorf("NaturalSize() = %dx%d, want 0x0", w, h)
	}
}

// TestLoadImageAsyncCorrupt tests that undecodable data reports an error.
func TestLoadImageAsyncCorrupt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.png")
	if err := os.WriteFile(path, []byte("not a png"), 0644); err != nil {
		t.Fatal(err)
	}

	rm := NewResourceManager(nil)
	img := rm.LoadImageAsync(path)
	img.Wait(5 * time.Second)
	if img.Decoded() || img.Err() == nil {
		t.Errorf("corrupt image: Decoded() = %v, Err() = %v", img.Decoded(), img.Err())
	}
}

// TestAsyncImagePending tests the state of a handle whose decode has not finished.
func TestAsyncImagePending(t *testing.T) {
	img := newAsyncImage("pending.png")
	if img.Finished() || img.Decoded() {
		t.Error("fresh handle should be pending")
	}
	if img.Err() != nil {
		t.Error("pending handle should have no error")
	}
	if img.Image() != nil {
		t.Error("pending handle should have no image")
	}
	if img.Wait(10 * time.Millisecond) {
		t.Error("Wait on a pending handle should time out")
	}
}

// TestNewDecodedImage tests wrapping an already decoded image.
func TestNewDecodedImage(t *testing.T) {
	img := NewDecodedImage("mem", image.NewRGBA(image.Rect(0, 0, 4, 8)))
	if !img.Decoded() {
		t.Fatal("NewDecodedImage should be decoded")
	}
	if w, h := img.NaturalSize(); w != 4 || h != 8 {
		t.Errorf("NaturalSize() = %dx%d, want 4x8", w, h)
	}
	if img.Path() != "mem" {
		t.Errorf("Path() = %q", img.Path())
	}
}

// TestLoadFont tests loading the built-in font and face caching.
func TestLoadFont(t *testing.T) {
	rm := NewResourceManager(nil)

	face, err := rm.LoadFont(DefaultFontPath, 28)
	if err != nil {
		t.Fatalf("LoadFont() error: %v", err)
	}
	if face.Size != 28 {
		t.Errorf("face.Size = %v, want 28", face.Size)
	}

	again, _ := rm.LoadFont(DefaultFontPath, 28)
	if again != face {
		t.Error("same path and size should return the cached face")
	}
	other, _ := rm.LoadFont(DefaultFontPath, 14)
	if other == face || other.Source != face.Source {
		t.Error("different sizes should share the source but not the face")
	}

	if _, err := rm.LoadFont(filepath.Join(t.TempDir(), "none.ttf"), 12); err == nil {
		t.Error("missing font file should fail")
	}
}
