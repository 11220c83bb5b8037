package batch

import (
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"spritecam/internal/logger"
	"spritecam/internal/model"
	"spritecam/internal/rig"
	"spritecam/internal/turntable"

	"go.uber.org/zap"
)

// Config holds the shared settings for a batch run.
type Config struct {
	Record    rig.RecordParams
	Overrides *rig.Overrides
	Steps     int
	Mirror    bool
	Workers   int

	// Load reads model dimensions; nil means model.LoadDimensions.
	Load func(path string) (rig.ModelDimensions, error)
}

// Result holds the outcome of processing one model.
type Result struct {
	Model      string              `json:"model"`
	Dimensions rig.ModelDimensions `json:"dimensions"`
	Distance   float64             `json:"distance"`
	Rig        *rig.Rig            `json:"rig,omitempty"`
	Frames     []turntable.Frame   `json:"frames,omitempty"`
	Success    bool                `json:"success"`
	Error      string              `json:"error,omitempty"`
}

// Run processes all models using a worker pool. Results keep the input order.
func Run(cfg Config, models []string) []Result {
	if cfg.Load == nil {
		cfg.Load = model.LoadDimensions
	}
	if cfg.Workers <= 0 {
		cfg.Workers = 1
	}

	total := len(models)
	results := make([]Result, total)
	var processed atomic.Int64

	start := time.Now()
	steps := turntable.Sweep(cfg.Steps, cfg.Mirror)

	// Progress reporter
	done := make(chan struct{})
	go func() {
		ticker := time.NewTicker(2 * time.Second)
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				p := processed.Load()
				if p > 0 {
					rate := float64(p) / time.Since(start).Seconds()
					logger.Info("batch progress",
						zap.Int64("done", p),
						zap.Int("total", total),
						zap.String("rate", fmt.Sprintf("%.1f models/sec", rate)))
				}
			}
		}
	}()

	// Worker pool
	modelChan := make(chan int, cfg.Workers*2)
	var wg sync.WaitGroup

	for w := 0; w < cfg.Workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range modelChan {
				results[idx] = processModel(cfg, steps, models[idx])
				processed.Add(1)
			}
		}()
	}

	for i := range models {
		modelChan <- i
	}
	close(modelChan)

	wg.Wait()
	close(done)

	return results
}

func processModel(cfg Config, steps []turntable.Step, path string) Result {
	dims, err := cfg.Load(path)
	if err != nil {
		logger.Warn("model skipped", zap.String("model", path), zap.Error(err))
		return Result{Model: path, Error: err.Error()}
	}

	r := rig.Generate(dims, cfg.Overrides, cfg.Record)
	return Result{
		Model:      path,
		Dimensions: dims,
		Distance:   rig.Distance(dims, cfg.Record),
		Rig:        &r,
		Frames:     turntable.Frames(r, steps),
		Success:    true,
	}
}

// Summary counts successes and failures.
func Summary(results []Result) (success int, failed []Result) {
	for _, r := range results {
		if r.Success {
			success++
		} else {
			failed = append(failed, r)
		}
	}
	return success, failed
}
