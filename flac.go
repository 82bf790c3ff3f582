package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/mewkiz/flac"
)

// decodeFLACFile loads a whole FLAC file into memory, frame by frame.
func decodeFLACFile(path string) (AudioDecoder, error) {
	stream, err := flac.ParseFile(path)
	if err != nil {
		return nil, err
	}
	defer stream.Close()

	info := stream.Info
	numCh := int(info.NChannels)
	if numCh < 1 {
		return nil, fmt.Errorf("no channels")
	}
	scale := float64(int64(1) << (info.BitsPerSample - 1))
	samples := make([][]float64, numCh)
	for ch := range samples {
		samples[ch] = make([]float64, 0, info.NSamples)
	}
	for {
		frame, err := stream.ParseNext()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		for ch := 0; ch < numCh && ch < len(frame.Subframes); ch++ {
			for _, s := range frame.Subframes[ch].Samples {
				samples[ch] = append(samples[ch], float64(s)/scale)
			}
		}
	}
	return &clip{
		sampleRate: float64(info.SampleRate),
		samples:    samples,
	}, nil
}
