package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
)

const helpText = `Usage: waveimg [options]

Options:
  -i <input file>      Input audio file path (wav, mp3, flac)
  -o <output file>     Output PNG image path
  -s <start time>      Start time in seconds (default: 0)
  -e <end time>        End time in seconds, 0 means until end, negative means seconds from end (default: 0)
  -w <width>           Image width in pixels (default: 1920, max: 16384)
  -h <height>          Image height in pixels (default: 300, max: 16384)
  -b <RRGGBBAA>        Background color in RRGGBBAA hex (default: 000000FF)
  -f <RRGGBBAA>        Waveform color in RRGGBBAA hex (default: FFFFFFFF)
  -r <rate>            Resample the selected segment to this rate before rendering (default: off)
  --help               Show this help

Example:
  waveimg -i song.wav -o waveform.png -s 5 -e 30 -w 1920 -h 300 -b 1e1e1eff -f 00ffffff
`

func printHelp() {
	fmt.Print(helpText)
}

func run(cfg *Config) error {
	slog.Info("parameters",
		"input", cfg.InputPath,
		"output", cfg.OutputPath,
		"start", cfg.StartTime,
		"end", cfg.EndTime,
		"width", cfg.Width,
		"height", cfg.Height,
		"background", FormatHexColor(cfg.Background),
		"foreground", FormatHexColor(cfg.Foreground))

	dec, err := OpenAudioFile(cfg.InputPath)
	if err != nil {
		return err
	}
	duration := float64(dec.TotalSamples()) / dec.SampleRate()
	window := ResolveTimeWindow(cfg.StartTime, cfg.EndTime, duration)
	startSample, sampleCount := window.SampleRange(dec.SampleRate())
	slog.Debug("window resolved",
		"start", window.Start,
		"end", window.End,
		"startSample", startSample,
		"sampleCount", sampleCount)

	seg, err := ReadSegment(dec, startSample, sampleCount)
	if err != nil {
		return err
	}
	if cfg.ResampleRate > 0 {
		if seg, err = ResampleSegment(seg, cfg.ResampleRate); err != nil {
			return err
		}
	}

	img := RenderWaveform(seg, CanvasSpec{
		Width:      cfg.Width,
		Height:     cfg.Height,
		Background: cfg.Background,
		Foreground: cfg.Foreground,
	})
	if err := SaveImage(cfg.OutputPath, img, PNGEncoder{}); err != nil {
		return err
	}
	slog.Info("waveform image saved", "path", cfg.OutputPath)
	return nil
}

func main() {
	cfg, err := ParseArgs(os.Args[1:])
	if err != nil {
		if errors.Is(err, ErrHelpRequested) {
			printHelp()
			os.Exit(0)
		}
		fmt.Fprintf(os.Stderr, "waveimg: %v\n", err)
		var ue *usageError
		if errors.As(err, &ue) {
			fmt.Fprintln(os.Stderr)
			printHelp()
		}
		os.Exit(1)
	}
	level := os.Getenv("WAVEIMG_LOG_LEVEL")
	if level == "" {
		level = "info"
	}
	if err := InitLogger(level); err != nil {
		fmt.Fprintf(os.Stderr, "waveimg: %v\n", err)
		os.Exit(1)
	}
	if err := run(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "waveimg: %v\n", err)
		os.Exit(1)
	}
}
