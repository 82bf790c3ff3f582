package main

import (
	"errors"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"testing"
)

type failingEncoder struct{}

func (failingEncoder) Encode(io.Writer, image.Image) error {
	return errors.New("encode failed")
}

func TestSaveImagePNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.png")
	img := image.NewRGBA(image.Rect(0, 0, 4, 3))
	if err := SaveImage(path, img, PNGEncoder{}); err != nil {
		t.Fatalf("SaveImage: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open %s: %v", path, err)
	}
	defer f.Close()
	decoded, err := png.Decode(f)
	if err != nil {
		t.Fatalf("png.Decode: %v", err)
	}
	if decoded.Bounds().Dx() != 4 || decoded.Bounds().Dy() != 3 {
		t.Errorf("decoded size = %v, want 4x3", decoded.Bounds())
	}
}

func TestSaveImageFailureLeavesNoFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.png")
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	if err := SaveImage(path, img, failingEncoder{}); err == nil {
		t.Fatal("SaveImage succeeded with failing encoder")
	}
	if _, err := os.Stat(path); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("output file exists after failed encode")
	}
	// no stray temp files either
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 0 {
		t.Errorf("left %d files behind in output dir", len(entries))
	}
}
