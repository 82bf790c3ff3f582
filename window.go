package main

import "math"

// TimeWindow is the resolved absolute time range selected for
// rendering, in seconds from the start of the audio.
type TimeWindow struct {
	Start float64
	End   float64
}

// ResolveTimeWindow converts the user-supplied start/end parameters
// into an absolute window.
//
// requestedEnd follows the CLI convention: 0 means "to the end", a
// negative value means that many seconds before the end, a positive
// value is an absolute position. The end is clamped to totalDuration
// and requestedStart is clamped into [0, end], so a start past the end
// collapses to an empty window.
func ResolveTimeWindow(requestedStart, requestedEnd, totalDuration float64) TimeWindow {
	end := requestedEnd
	if requestedEnd == 0 {
		end = totalDuration
	} else if requestedEnd < 0 {
		end = totalDuration + requestedEnd
	}
	end = math.Min(totalDuration, end)
	start := clamp(requestedStart, 0, end)
	return TimeWindow{Start: start, End: end}
}

// Duration returns the window length in seconds.
func (w TimeWindow) Duration() float64 {
	return w.End - w.Start
}

// SampleRange converts the window into a (first sample, sample count)
// pair at the given sample rate. Both values truncate toward zero and
// are never negative.
func (w TimeWindow) SampleRange(sampleRate float64) (start, count int64) {
	start = int64(w.Start * sampleRate)
	count = int64((w.End - w.Start) * sampleRate)
	if start < 0 {
		start = 0
	}
	if count < 0 {
		count = 0
	}
	return start, count
}
