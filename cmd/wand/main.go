package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gowand/wand"
	"github.com/gowand/wand/config"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

func main() {
	options, logger, err := config.Parse(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	defer logger.Sync()

	if options.Debug {
		wand.SetLogging(func(domain string, level wand.LogLevel, msg string) {
			switch level {
			case wand.LogLevelDebug:
				logger.Debug(domain, zap.String("log", msg))
			case wand.LogLevelInfo:
				logger.Info(domain, zap.String("log", msg))
			case wand.LogLevelWarning, wand.LogLevelError:
				logger.Warn(domain, zap.String("log", msg))
			}
		}, wand.LogLevelDebug)
	} else {
		wand.SetLogging(func(domain string, level wand.LogLevel, msg string) {
			logger.Warn(domain, zap.String("log", msg))
		}, wand.LogLevelWarning)
	}

	if options.ShowVersion {
		fmt.Println(wand.Version())
		return
	}
	if len(options.Files) == 0 {
		fmt.Fprintln(os.Stderr, "wand: no input files")
		os.Exit(2)
	}

	var g errgroup.Group
	g.SetLimit(options.Concurrency)
	for _, file := range options.Files {
		g.Go(func() error {
			if err := process(file, options, logger); err != nil {
				logger.Error("process", zap.String("file", file), zap.Error(err))
				return err
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		os.Exit(1)
	}
}

func process(file string, options *config.Options, logger *zap.Logger) error {
	img, err := wand.NewFromFile(file)
	if err != nil {
		return err
	}
	// closure so the deferred close follows the crop reassignment below
	defer func() {
		_ = img.Close()
	}()

	if options.Crop {
		cropped, err := img.Crop(options.CropX, options.CropY)
		if err != nil {
			return err
		}
		if err := img.Close(); err != nil {
			return err
		}
		img = cropped
	}
	if options.ResizeWidth > 0 || options.ResizeHeight > 0 {
		if err := img.Resize(&wand.ResizeOptions{
			Width:  options.ResizeWidth,
			Height: options.ResizeHeight,
			Filter: options.Filter,
			Blur:   options.Blur,
		}); err != nil {
			return err
		}
	}

	out := outputPath(file, options)
	if options.Format != "" {
		blob, err := img.Blob(options.Format)
		if err != nil {
			return err
		}
		if err := os.WriteFile(out, blob, 0644); err != nil {
			return err
		}
	} else if err := img.Save(out); err != nil {
		return err
	}

	width, height, err := img.Size()
	if err != nil {
		return err
	}
	logger.Info("done",
		zap.String("file", file),
		zap.String("output", out),
		zap.Int("width", width),
		zap.Int("height", height))
	return nil
}

// outputPath derives the destination filename from the input name, the
// configured suffix and the output format
func outputPath(file string, options *config.Options) string {
	base := filepath.Base(file)
	ext := filepath.Ext(base)
	name := strings.TrimSuffix(base, ext)
	if options.Format != "" {
		ext = "." + strings.ToLower(options.Format)
	}
	return filepath.Join(options.OutputDir, name+options.Suffix+ext)
}
