package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"geomdraw/internal/batch"
	"geomdraw/internal/config"
	"geomdraw/internal/geometry"
	"geomdraw/internal/imageio"
	"geomdraw/internal/scene"
)

func main() {
	configFile := flag.String("config", "", "Path to config.json file")
	sceneDir := flag.String("scenes", "", "Directory of scene .json files (default: ./scenes)")
	outputDir := flag.String("output", "", "Output directory (default: ./renders)")
	format := flag.String("format", "", "Output format: webp, png or bmp (default: webp)")
	scale := flag.Int("scale", 0, "Integer upscale factor for output images (default: 1)")
	workers := flag.Int("workers", 0, "Number of worker goroutines (default: NumCPU)")
	testN := flag.Int("test", 0, "Render only first N scenes for testing")
	verbose := flag.Bool("v", false, "Log debug output to stderr")

	flag.Parse()

	if *verbose {
		geometry.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	var cfg config.Config
	if *configFile != "" {
		var err error
		cfg, err = config.Load(*configFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
	}

	cfg.Resolve(config.Flags{
		SceneDir:  *sceneDir,
		OutputDir: *outputDir,
		Format:    *format,
		Scale:     *scale,
		Workers:   *workers,
	})

	if !imageio.Supported(cfg.Format) {
		fmt.Fprintf(os.Stderr, "Error: unsupported format %q (want one of %v)\n", cfg.Format, imageio.Formats)
		os.Exit(1)
	}

	paths, err := scene.Discover(cfg.SceneDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error finding scenes: %v\n", err)
		os.Exit(1)
	}

	if *testN > 0 && *testN < len(paths) {
		paths = paths[:*testN]
	}

	if len(paths) == 0 {
		fmt.Println("No scenes to render.")
		os.Exit(0)
	}

	fmt.Printf("geomdraw → %s (x%d)\n", cfg.Format, cfg.Scale)
	fmt.Printf("Scenes: %d, Workers: %d\n", len(paths), cfg.Workers)
	fmt.Printf("Output: %s\n", cfg.OutputDir)
	fmt.Println("------------------------------------------------------------")

	start := time.Now()

	results := batch.Run(batch.Config{
		OutputDir: cfg.OutputDir,
		Format:    cfg.Format,
		Scale:     cfg.Scale,
		Workers:   cfg.Workers,
		Progress:  2 * time.Second,
	}, paths)

	fmt.Println("------------------------------------------------------------")
	fmt.Printf("Done in %.1fs\n", time.Since(start).Seconds())

	var failed []batch.Result
	for _, r := range results {
		if !r.Success {
			failed = append(failed, r)
		}
	}

	fmt.Printf("Rendered: %d/%d\n", len(results)-len(failed), len(results))

	if len(failed) > 0 {
		fmt.Printf("\nFailed (%d):\n", len(failed))
		limit := min(len(failed), 20)
		for _, r := range failed[:limit] {
			fmt.Printf("  %s: %s\n", r.Scene, r.Error)
		}
	}

	manifestPath := filepath.Join(cfg.OutputDir, "manifest.json")
	if err := os.MkdirAll(cfg.OutputDir, 0755); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	} else if err := batch.WriteManifest(manifestPath, results); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: manifest write failed: %v\n", err)
	} else {
		fmt.Printf("Manifest: %s\n", manifestPath)
	}

	if len(failed) > 0 {
		os.Exit(1)
	}
}
