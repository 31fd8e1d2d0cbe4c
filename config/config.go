package config

import (
	"flag"
	"fmt"
	"strconv"
	"strings"

	"github.com/gowand/wand"
	"github.com/peterbourgon/ff/v3"
	"go.uber.org/zap"
)

// Options holds the parsed wand CLI configuration
type Options struct {
	Files        []string
	ResizeWidth  int
	ResizeHeight int
	Filter       wand.Filter
	Blur         float64
	Crop         bool
	CropX        wand.Range
	CropY        wand.Range
	Format       string
	OutputDir    string
	Suffix       string
	Concurrency  int
	Debug        bool
	ShowVersion  bool
}

// Parse builds the wand flag set and parses it from args, environment
// variables and an optional .env config file, returning the options and
// a logger configured by the -debug flag.
func Parse(args []string) (*Options, *zap.Logger, error) {
	var (
		fs = flag.NewFlagSet("wand", flag.ContinueOnError)

		debug   = fs.Bool("debug", false, "Debug mode")
		version = fs.Bool("version", false, "Show wand and ImageMagick version")

		_ = fs.String("config", ".env", "Retrieve configuration from the given file")

		resize = fs.String("resize", "",
			"Resize geometry WIDTHxHEIGHT. Either side may be omitted to keep the current dimension e.g. 800x or x600")
		filter = fs.String("filter", "triangle",
			"Resize filter name or index, one of "+strings.Join(wand.FilterNames, ", "))
		blur = fs.Float64("blur", 1,
			"Resize blur factor where > 1 is blurry, < 1 is sharp")
		crop = fs.String("crop", "",
			"Crop ranges X,Y where each range is start:stop with optional bounds, negative bounds count from the end e.g. 10:200,-100:")
		format = fs.String("format", "",
			"Output image format e.g. png, jpeg. Default keeps the input format")
		outputDir = fs.String("output-dir", ".",
			"Directory to write processed images to")
		suffix = fs.String("suffix", "_wand",
			"Suffix appended to output filenames")
		concurrency = fs.Int("concurrency", 1,
			"Number of images processed concurrently")
	)
	if err := ff.Parse(fs, args,
		ff.WithEnvVarPrefix("WAND"),
		ff.WithConfigFileFlag("config"),
		ff.WithIgnoreUndefined(true),
		ff.WithAllowMissingConfigFile(true),
		ff.WithConfigFileParser(ff.EnvParser),
	); err != nil {
		return nil, nil, err
	}

	var (
		logger *zap.Logger
		err    error
	)
	if *debug {
		if logger, err = zap.NewDevelopment(); err != nil {
			return nil, nil, err
		}
	} else {
		if logger, err = zap.NewProduction(); err != nil {
			return nil, nil, err
		}
	}

	options := &Options{
		Files:       fs.Args(),
		Blur:        *blur,
		Format:      *format,
		OutputDir:   *outputDir,
		Suffix:      *suffix,
		Concurrency: *concurrency,
		Debug:       *debug,
		ShowVersion: *version,
	}
	if options.Concurrency < 1 {
		options.Concurrency = 1
	}
	if options.Filter, err = parseFilter(*filter); err != nil {
		return nil, nil, err
	}
	if options.ResizeWidth, options.ResizeHeight, err = parseGeometry(*resize); err != nil {
		return nil, nil, err
	}
	if *crop != "" {
		if options.CropX, options.CropY, err = ParseCrop(*crop); err != nil {
			return nil, nil, err
		}
		options.Crop = true
	}
	return options, logger, nil
}

// parseFilter accepts a filter name or an integral index into the
// filter list
func parseFilter(s string) (wand.Filter, error) {
	if i, err := strconv.Atoi(s); err == nil {
		f := wand.Filter(i)
		if !f.IsValid() {
			return 0, fmt.Errorf("invalid filter index %d", i)
		}
		return f, nil
	}
	return wand.FilterByName(s)
}

// parseGeometry parses WIDTHxHEIGHT where either side may be empty
func parseGeometry(s string) (width, height int, err error) {
	if s == "" {
		return 0, 0, nil
	}
	parts := strings.SplitN(s, "x", 2)
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("invalid resize geometry %q", s)
	}
	if parts[0] != "" {
		if width, err = strconv.Atoi(parts[0]); err != nil {
			return 0, 0, fmt.Errorf("invalid resize width %q", parts[0])
		}
	}
	if parts[1] != "" {
		if height, err = strconv.Atoi(parts[1]); err != nil {
			return 0, 0, fmt.Errorf("invalid resize height %q", parts[1])
		}
	}
	return width, height, nil
}

// ParseCrop parses a crop spec of the form X,Y where each axis is
// either a single coordinate or a start:stop range with optional
// bounds, e.g. "10:200,20:" or "5,:-10"
func ParseCrop(s string) (x, y wand.Range, err error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return x, y, fmt.Errorf("crop must have exactly two axes, got %q", s)
	}
	if x, err = parseRange(parts[0]); err != nil {
		return x, y, err
	}
	if y, err = parseRange(parts[1]); err != nil {
		return x, y, err
	}
	return x, y, nil
}

func parseRange(s string) (wand.Range, error) {
	s = strings.TrimSpace(s)
	if !strings.Contains(s, ":") {
		if s == "" {
			return wand.All(), nil
		}
		i, err := strconv.Atoi(s)
		if err != nil {
			return wand.Range{}, fmt.Errorf("invalid crop coordinate %q", s)
		}
		return wand.At(i), nil
	}
	parts := strings.SplitN(s, ":", 2)
	hasStart := parts[0] != ""
	hasStop := parts[1] != ""
	switch {
	case !hasStart && !hasStop:
		return wand.All(), nil
	case hasStart && !hasStop:
		start, err := strconv.Atoi(parts[0])
		if err != nil {
			return wand.Range{}, fmt.Errorf("invalid crop bound %q", parts[0])
		}
		return wand.From(start), nil
	case !hasStart && hasStop:
		stop, err := strconv.Atoi(parts[1])
		if err != nil {
			return wand.Range{}, fmt.Errorf("invalid crop bound %q", parts[1])
		}
		return wand.To(stop), nil
	default:
		start, err := strconv.Atoi(parts[0])
		if err != nil {
			return wand.Range{}, fmt.Errorf("invalid crop bound %q", parts[0])
		}
		stop, err := strconv.Atoi(parts[1])
		if err != nil {
			return wand.Range{}, fmt.Errorf("invalid crop bound %q", parts[1])
		}
		return wand.Span(start, stop), nil
	}
}
