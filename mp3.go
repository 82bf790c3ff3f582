package main

import (
	"encoding/binary"
	"io"
	"os"

	mp3 "github.com/hajimehoshi/go-mp3"
)

// decodeMP3File loads a whole MP3 file into memory. go-mp3 always
// yields 16-bit little-endian stereo frames at the stream's rate.
func decodeMP3File(path string) (AudioDecoder, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	dec, err := mp3.NewDecoder(f)
	if err != nil {
		return nil, err
	}
	pcm, err := io.ReadAll(dec)
	if err != nil {
		return nil, err
	}

	const frameBytes = 4 // 2 channels x int16
	frames := len(pcm) / frameBytes
	left := make([]float64, frames)
	right := make([]float64, frames)
	for i := 0; i < frames; i++ {
		l := int16(binary.LittleEndian.Uint16(pcm[i*frameBytes:]))
		r := int16(binary.LittleEndian.Uint16(pcm[i*frameBytes+2:]))
		left[i] = float64(l) / 32768
		right[i] = float64(r) / 32768
	}
	return &clip{
		sampleRate: float64(dec.SampleRate()),
		samples:    [][]float64{left, right},
	}, nil
}
