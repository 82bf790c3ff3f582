package main

import (
	"fmt"
	"os"

	"github.com/go-audio/wav"
)

// decodeWAVFile loads a whole WAV file into memory as per-channel
// float64 samples scaled by the source bit depth.
func decodeWAVFile(path string) (AudioDecoder, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	dec := wav.NewDecoder(f)
	if !dec.IsValidFile() {
		return nil, fmt.Errorf("not a valid WAV file")
	}
	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return nil, err
	}
	numCh := buf.Format.NumChannels
	if numCh < 1 {
		return nil, fmt.Errorf("no channels")
	}
	bits := int(dec.BitDepth)
	if bits == 0 {
		bits = 16
	}
	scale := float64(int64(1) << (bits - 1))

	frames := len(buf.Data) / numCh
	samples := make([][]float64, numCh)
	for ch := range samples {
		samples[ch] = make([]float64, frames)
	}
	for i := 0; i < frames; i++ {
		for ch := 0; ch < numCh; ch++ {
			samples[ch][i] = float64(buf.Data[i*numCh+ch]) / scale
		}
	}
	return &clip{
		sampleRate: float64(buf.Format.SampleRate),
		samples:    samples,
	}, nil
}
