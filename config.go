package main

import (
	"errors"
	"fmt"
	"image/color"
	"strconv"

	homedir "github.com/mitchellh/go-homedir"
)

// maxImageDimension caps both output dimensions.
const maxImageDimension = 16384

const (
	defaultWidth  = 1920
	defaultHeight = 300
)

// Config carries everything one invocation needs. It is built once by
// ParseArgs and passed explicitly; nothing reads flags after startup.
type Config struct {
	InputPath    string
	OutputPath   string
	StartTime    float64 // seconds
	EndTime      float64 // 0 = to end, negative = seconds from end
	Width        int
	Height       int
	Background   color.RGBA
	Foreground   color.RGBA
	ResampleRate float64 // 0 = render at the native rate
}

// usageError marks argument problems so main can print the help text.
type usageError struct {
	msg string
}

func (e *usageError) Error() string {
	return e.msg
}

func usageErrorf(format string, args ...any) error {
	return &usageError{msg: fmt.Sprintf(format, args...)}
}

// ErrHelpRequested is returned by ParseArgs when --help is given.
var ErrHelpRequested = errors.New("help requested")

// ParseArgs builds a Config from the raw argument list (without the
// program name). -h is taken by the image height, so help is --help
// only; this is also why the stdlib flag package is not used here.
func ParseArgs(args []string) (*Config, error) {
	cfg := &Config{
		Width:      defaultWidth,
		Height:     defaultHeight,
		Background: color.RGBA{A: 0xFF},
		Foreground: color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF},
	}
	if len(args) == 0 {
		return nil, usageErrorf("no arguments")
	}
	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch arg {
		case "--help":
			return nil, ErrHelpRequested
		case "-i", "-o", "-s", "-e", "-w", "-h", "-b", "-f", "-r":
			if i+1 >= len(args) {
				return nil, usageErrorf("missing value for %s", arg)
			}
			i++
			if err := cfg.set(arg, args[i]); err != nil {
				return nil, err
			}
		default:
			return nil, usageErrorf("unknown argument: %s", arg)
		}
	}
	return cfg, cfg.validate()
}

func (cfg *Config) set(flag, val string) error {
	switch flag {
	case "-i", "-o":
		path, err := homedir.Expand(val)
		if err != nil {
			return usageErrorf("bad path %q: %v", val, err)
		}
		if flag == "-i" {
			cfg.InputPath = path
		} else {
			cfg.OutputPath = path
		}
	case "-s", "-e", "-r":
		f, err := strconv.ParseFloat(val, 64)
		if err != nil {
			return usageErrorf("bad value for %s: %q", flag, val)
		}
		switch flag {
		case "-s":
			cfg.StartTime = f
		case "-e":
			cfg.EndTime = f
		case "-r":
			cfg.ResampleRate = f
		}
	case "-w", "-h":
		n, err := strconv.Atoi(val)
		if err != nil {
			return usageErrorf("bad value for %s: %q", flag, val)
		}
		if flag == "-w" {
			cfg.Width = n
		} else {
			cfg.Height = n
		}
	case "-b", "-f":
		c, err := ParseHexColor(val)
		if err != nil {
			return usageErrorf("bad value for %s: %v", flag, err)
		}
		if flag == "-b" {
			cfg.Background = c
		} else {
			cfg.Foreground = c
		}
	}
	return nil
}

func (cfg *Config) validate() error {
	if cfg.InputPath == "" || cfg.OutputPath == "" {
		return usageErrorf("input (-i) and output (-o) paths are required")
	}
	if cfg.Width < 1 || cfg.Height < 1 {
		return usageErrorf("width and height must be positive")
	}
	if cfg.Width > maxImageDimension || cfg.Height > maxImageDimension {
		return fmt.Errorf("image size too large, max: %d", maxImageDimension)
	}
	if cfg.ResampleRate < 0 {
		return usageErrorf("resample rate must be positive")
	}
	return nil
}
