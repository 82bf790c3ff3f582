package main

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
)

// ImageEncoder serializes a pixel grid to a raster file format.
type ImageEncoder interface {
	Encode(w io.Writer, img image.Image) error
}

// PNGEncoder writes PNG, the tool's only output format.
type PNGEncoder struct{}

func (PNGEncoder) Encode(w io.Writer, img image.Image) error {
	return png.Encode(w, img)
}

// SaveImage encodes img into path. The image is written to a temporary
// file next to the target and renamed into place only after a complete
// successful encode, so a failed run never leaves a corrupt file.
func SaveImage(path string, img image.Image, enc ImageEncoder) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".waveimg-*")
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}
	defer os.Remove(tmp.Name())
	if err := enc.Encode(tmp, img); err != nil {
		tmp.Close()
		return fmt.Errorf("encode image: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("write image: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("save image: %w", err)
	}
	return nil
}
