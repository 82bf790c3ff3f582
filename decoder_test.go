package main

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

// writeTestWAV writes a 16-bit stereo WAV file from raw PCM values.
func writeTestWAV(t *testing.T, path string, left, right []int, rate int) {
	t.Helper()
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create %s: %v", path, err)
	}
	defer f.Close()

	enc := wav.NewEncoder(f, rate, 16, 2, 1)
	data := make([]int, len(left)*2)
	for i := range left {
		data[i*2] = left[i]
		data[i*2+1] = right[i]
	}
	buf := &audio.IntBuffer{
		Format:         &audio.Format{NumChannels: 2, SampleRate: rate},
		Data:           data,
		SourceBitDepth: 16,
	}
	if err := enc.Write(buf); err != nil {
		t.Fatalf("write wav: %v", err)
	}
	if err := enc.Close(); err != nil {
		t.Fatalf("close wav: %v", err)
	}
}

func TestOpenAudioFileWAV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "clip.wav")
	left := []int{0, 8192, 16384, -16384}
	right := []int{16384, 0, -8192, 8192}
	writeTestWAV(t, path, left, right, 44100)

	dec, err := OpenAudioFile(path)
	if err != nil {
		t.Fatalf("OpenAudioFile: %v", err)
	}
	if dec.NumChannels() != 2 {
		t.Errorf("NumChannels() = %d, want 2", dec.NumChannels())
	}
	if dec.SampleRate() != 44100 {
		t.Errorf("SampleRate() = %g, want 44100", dec.SampleRate())
	}
	if dec.TotalSamples() != 4 {
		t.Errorf("TotalSamples() = %d, want 4", dec.TotalSamples())
	}

	seg, err := ReadSegment(dec, 0, dec.TotalSamples())
	if err != nil {
		t.Fatalf("ReadSegment: %v", err)
	}
	wantLeft := []float64{0, 0.25, 0.5, -0.5}
	for i, want := range wantLeft {
		if got := seg.Samples[0][i]; math.Abs(got-want) > 1e-9 {
			t.Errorf("left[%d] = %g, want %g", i, got, want)
		}
	}
	if got := seg.Samples[1][0]; math.Abs(got-0.5) > 1e-9 {
		t.Errorf("right[0] = %g, want 0.5", got)
	}
}

func TestReadSegmentClipsRange(t *testing.T) {
	path := filepath.Join(t.TempDir(), "clip.wav")
	left := []int{100, 200, 300, 400}
	writeTestWAV(t, path, left, left, 8000)

	dec, err := OpenAudioFile(path)
	if err != nil {
		t.Fatalf("OpenAudioFile: %v", err)
	}

	// count running past the end truncates
	seg, err := ReadSegment(dec, 2, 10)
	if err != nil {
		t.Fatalf("ReadSegment: %v", err)
	}
	if seg.SampleCount() != 2 {
		t.Errorf("SampleCount() = %d, want 2", seg.SampleCount())
	}

	// start past the end yields an empty segment, not an error
	seg, err = ReadSegment(dec, 100, 10)
	if err != nil {
		t.Fatalf("ReadSegment: %v", err)
	}
	if seg.SampleCount() != 0 {
		t.Errorf("SampleCount() = %d, want 0", seg.SampleCount())
	}
	if seg.NumChannels() != 2 {
		t.Errorf("NumChannels() = %d, want 2", seg.NumChannels())
	}
}

func TestOpenAudioFileMissing(t *testing.T) {
	if _, err := OpenAudioFile(filepath.Join(t.TempDir(), "nope.wav")); err == nil {
		t.Error("missing file accepted")
	}
}

func TestOpenAudioFileUnknownFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "clip.ogg")
	if err := os.WriteFile(path, []byte("not audio"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := OpenAudioFile(path); err == nil {
		t.Error("unknown extension accepted")
	}
}
