package main

import (
	"fmt"

	"github.com/dh1tw/gosamplerate"
)

// ResampleSegment converts seg to targetRate using libsamplerate's
// one-shot API. The segment is interleaved for the converter and split
// back into channel-major buffers afterwards. Segments that are empty
// or already at the target rate are returned unchanged.
func ResampleSegment(seg *AudioSegment, targetRate float64) (*AudioSegment, error) {
	if targetRate == seg.SampleRate || seg.SampleCount() == 0 {
		return seg, nil
	}
	ratio := targetRate / seg.SampleRate
	nchannels := seg.NumChannels()
	nframes := seg.SampleCount()

	tempBuf := make([]float32, nframes*nchannels)
	for i := 0; i < nframes; i++ {
		for ch := 0; ch < nchannels; ch++ {
			tempBuf[i*nchannels+ch] = float32(seg.Samples[ch][i])
		}
	}
	resampledBuf, err := gosamplerate.Simple(tempBuf, ratio, nchannels, gosamplerate.SRC_SINC_FASTEST)
	if err != nil {
		return nil, fmt.Errorf("resample to %g Hz: %w", targetRate, err)
	}
	resampledFrames := len(resampledBuf) / nchannels
	out := make([][]float64, nchannels)
	for ch := range out {
		out[ch] = make([]float64, resampledFrames)
	}
	for i := 0; i < resampledFrames; i++ {
		for ch := 0; ch < nchannels; ch++ {
			out[ch][i] = float64(resampledBuf[i*nchannels+ch])
		}
	}
	return &AudioSegment{SampleRate: targetRate, Samples: out}, nil
}
