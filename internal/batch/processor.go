package batch

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"

	"geomdraw/internal/frame"
	"geomdraw/internal/geometry"
	"geomdraw/internal/imageio"
	"geomdraw/internal/scene"
)

// Config holds all shared settings for a batch run.
type Config struct {
	OutputDir string
	Format    string // webp, png or bmp
	Scale     int
	Workers   int
	Progress  time.Duration // 0 disables progress logging
	Logger    *slog.Logger  // nil uses geometry.Logger()

	// Backgrounds is shared by all workers; nil gets a fresh cache per run.
	Backgrounds *imageio.Cache
}

// Result holds the outcome of rendering one scene.
type Result struct {
	Name    string
	Scene   string
	Output  string
	Width   int
	Height  int
	Success bool
	Error   string
}

// Run renders every scene file using a worker pool. Each job draws into
// its own frame, so workers never share a buffer. Results keep the order
// of paths.
func Run(cfg Config, paths []string) []Result {
	log := cfg.Logger
	if log == nil {
		log = geometry.Logger()
	}
	if cfg.Backgrounds == nil {
		cfg.Backgrounds = imageio.NewCache()
	}
	workers := cfg.Workers
	if workers <= 0 {
		workers = 1
	}

	total := len(paths)
	results := make([]Result, total)
	var processed atomic.Int64

	start := time.Now()

	done := make(chan struct{})
	if cfg.Progress > 0 {
		go func() {
			ticker := time.NewTicker(cfg.Progress)
			defer ticker.Stop()
			for {
				select {
				case <-done:
					return
				case <-ticker.C:
					p := processed.Load()
					if p > 0 {
						rate := float64(p) / time.Since(start).Seconds()
						log.Info("batch: progress",
							slog.Int64("done", p), slog.Int("total", total),
							slog.String("rate", fmt.Sprintf("%.1f/s", rate)))
					}
				}
			}
		}()
	}

	jobs := make(chan int, workers*2)
	var wg sync.WaitGroup

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range jobs {
				results[idx] = processScene(cfg, log, paths[idx])
				processed.Add(1)
			}
		}()
	}

	for i := range paths {
		jobs <- i
	}
	close(jobs)

	wg.Wait()
	close(done)

	log.Info("batch: finished", slog.Int("scenes", total), slog.Duration("elapsed", time.Since(start)))
	return results
}

func processScene(cfg Config, log *slog.Logger, path string) Result {
	res := Result{Scene: path}

	s, err := scene.Parse(path)
	if err != nil {
		res.Error = err.Error()
		return res
	}
	res.Name = s.Name
	res.Width, res.Height = s.Width, s.Height

	f := frame.New(s.Width, s.Height)
	if s.Background != "" {
		bg, err := cfg.Backgrounds.Get(s.Background)
		if err != nil {
			log.Warn("batch: background skipped", slog.String("scene", s.Name), slog.Any("err", err))
		} else {
			f.Fill(bg)
		}
	}

	if err := s.Render(f); err != nil {
		res.Error = err.Error()
		return res
	}

	res.Output = OutputPath(cfg.OutputDir, s.Name, cfg.Format)
	if err := imageio.Save(res.Output, frame.Scale(f.Image(), cfg.Scale)); err != nil {
		res.Error = err.Error()
		return res
	}

	log.Debug("batch: rendered", slog.String("scene", s.Name), slog.String("output", res.Output))
	res.Success = true
	return res
}

// OutputPath returns where a scene's image is written.
func OutputPath(dir, name, format string) string {
	return filepath.Join(dir, name+"."+format)
}
