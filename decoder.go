package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// AudioDecoder gives the rendering pipeline access to the decoded
// samples of one audio file.
type AudioDecoder interface {
	NumChannels() int
	SampleRate() float64
	// TotalSamples returns the number of samples per channel.
	TotalSamples() int64
	// Read copies len(dst[ch]) samples starting at startSample into
	// each channel buffer. The requested range must lie within the
	// decoded audio.
	Read(dst [][]float64, startSample int64) error
}

// DecodeFunc decodes a whole audio file into memory.
type DecodeFunc func(path string) (AudioDecoder, error)

var decoders = map[string]DecodeFunc{}

// RegisterDecoder binds a lowercase file extension (without the dot) to
// a decoder.
func RegisterDecoder(ext string, fn DecodeFunc) {
	decoders[ext] = fn
}

func init() {
	RegisterDecoder("wav", decodeWAVFile)
	RegisterDecoder("wave", decodeWAVFile)
	RegisterDecoder("mp3", decodeMP3File)
	RegisterDecoder("flac", decodeFLACFile)
}

// OpenAudioFile checks that path is an existing file and decodes it
// with the decoder registered for its extension.
func OpenAudioFile(path string) (AudioDecoder, error) {
	fi, err := os.Stat(path)
	if err != nil || fi.IsDir() {
		return nil, fmt.Errorf("input file does not exist: %s", path)
	}
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	fn, ok := decoders[ext]
	if !ok {
		return nil, fmt.Errorf("no decoder for %q files", ext)
	}
	dec, err := fn(path)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return dec, nil
}

// ReadSegment extracts a sample range from dec as an AudioSegment.
// The range is clipped to the available samples, so a window that runs
// past the end (or is empty) yields a shorter or empty segment.
func ReadSegment(dec AudioDecoder, startSample, count int64) (*AudioSegment, error) {
	total := dec.TotalSamples()
	if startSample > total {
		startSample = total
	}
	if startSample+count > total {
		count = total - startSample
	}
	dst := make([][]float64, dec.NumChannels())
	for ch := range dst {
		dst[ch] = make([]float64, count)
	}
	if err := dec.Read(dst, startSample); err != nil {
		return nil, err
	}
	return &AudioSegment{SampleRate: dec.SampleRate(), Samples: dst}, nil
}

// clip is the in-memory AudioDecoder shared by all format loaders.
type clip struct {
	sampleRate float64
	samples    [][]float64
}

func (c *clip) NumChannels() int {
	return len(c.samples)
}

func (c *clip) SampleRate() float64 {
	return c.sampleRate
}

func (c *clip) TotalSamples() int64 {
	if len(c.samples) == 0 {
		return 0
	}
	return int64(len(c.samples[0]))
}

func (c *clip) Read(dst [][]float64, startSample int64) error {
	if len(dst) != len(c.samples) {
		return fmt.Errorf("want %d channel buffers, got %d", len(c.samples), len(dst))
	}
	for ch := range dst {
		end := startSample + int64(len(dst[ch]))
		if startSample < 0 || end > c.TotalSamples() {
			return fmt.Errorf("sample range [%d,%d) out of bounds [0,%d)", startSample, end, c.TotalSamples())
		}
		copy(dst[ch], c.samples[ch][startSample:end])
	}
	return nil
}
