package main

import (
	"image"
	"image/color"
	"math"

	"golang.org/x/image/draw"
)

// AudioSegment holds the decoded samples selected for one render.
// Samples are channel-major: Samples[ch][i] is sample i of channel ch.
// Values are nominally in [-1, 1]; out-of-range values are drawn as-is
// and simply clipped at the image edge.
type AudioSegment struct {
	SampleRate float64
	Samples    [][]float64
}

func (s *AudioSegment) NumChannels() int {
	return len(s.Samples)
}

// SampleCount returns the number of samples per channel.
func (s *AudioSegment) SampleCount() int {
	if len(s.Samples) == 0 {
		return 0
	}
	return len(s.Samples[0])
}

// CanvasSpec is the immutable description of the output image for one
// render.
type CanvasSpec struct {
	Width      int
	Height     int
	Background color.RGBA
	Foreground color.RGBA
}

// RenderWaveform rasterizes the min/max envelope of seg onto a fresh
// RGBA image.
//
// Each channel gets an exclusive horizontal band of height/numChannels
// rows, stacked top to bottom. Every pixel column maps to its slice of
// the sample range; the column's envelope (minimum and maximum sample
// value) becomes one vertical line around the band's center line, with
// positive values pointing up. Columns whose slice is empty draw
// nothing, so an empty segment yields a plain background image.
func RenderWaveform(seg *AudioSegment, spec CanvasSpec) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, spec.Width, spec.Height))
	draw.Draw(img, img.Bounds(), image.NewUniform(spec.Background), image.Point{}, draw.Src)

	n := seg.SampleCount()
	if n == 0 || spec.Width < 1 {
		return img
	}
	channelHeight := float64(spec.Height) / float64(seg.NumChannels())
	for ch, samples := range seg.Samples {
		top := float64(ch) * channelHeight
		midY := top + channelHeight/2
		for i := 0; i < spec.Width; i++ {
			lo := int(float64(i) / float64(spec.Width) * float64(n))
			hi := int(float64(i+1) / float64(spec.Width) * float64(n))
			lo = clampInt(lo, 0, n-1)
			hi = clampInt(hi, 0, n)
			if lo >= hi {
				continue
			}
			minVal, maxVal := 1.0, -1.0
			for _, s := range samples[lo:hi] {
				if s < minVal {
					minVal = s
				}
				if s > maxVal {
					maxVal = s
				}
			}
			y1 := midY - minVal*channelHeight/2
			y2 := midY - maxVal*channelHeight/2
			drawVerticalSpan(img, i, y1, y2, spec.Foreground)
		}
	}
	return img
}

// drawVerticalSpan fills column x between two fractional y coordinates,
// covering at least one pixel row, clipped to the image bounds.
func drawVerticalSpan(img *image.RGBA, x int, y1, y2 float64, c color.RGBA) {
	if y2 < y1 {
		y1, y2 = y2, y1
	}
	yTop := int(math.Floor(y1))
	yBot := int(math.Ceil(y2))
	if yBot <= yTop {
		yBot = yTop + 1
	}
	h := img.Rect.Dy()
	yTop = clampInt(yTop, 0, h)
	yBot = clampInt(yBot, 0, h)
	for y := yTop; y < yBot; y++ {
		img.SetRGBA(x, y, c)
	}
}
