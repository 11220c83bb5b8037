// Package compress encodes images off the caller's goroutine.
//
// Jobs are queued rather than rejected when the encoder is busy; each
// submission gets its own Pending handle keyed by a job id.
package compress

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"

	"spritecam/internal/logger"

	"go.uber.org/zap"
)

// ErrQueueClosed is returned by Submit after Close.
var ErrQueueClosed = errors.New("compress: queue closed")

// Job is one image to encode.
type Job struct {
	Name  string
	Image image.Image
}

// Result is an encoded job.
type Result struct {
	ID   uint64
	Name string
	Data []byte
}

// WriteFile writes the encoded bytes to path, creating parent directories.
func (r Result) WriteFile(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("compress: mkdir for %s: %w", path, err)
	}
	if err := os.WriteFile(path, r.Data, 0644); err != nil {
		return fmt.Errorf("compress: write %s: %w", path, err)
	}
	return nil
}

// Pending is the handle for a submitted job.
type Pending struct {
	id   uint64
	name string
	ctx  context.Context
	img  image.Image
	done chan struct{}
	res  Result
	err  error
}

// ID returns the job id assigned at submission.
func (p *Pending) ID() uint64 { return p.id }

// Done is closed once the job has finished.
func (p *Pending) Done() <-chan struct{} { return p.done }

// Wait blocks until the job finishes or ctx is done.
func (p *Pending) Wait(ctx context.Context) (Result, error) {
	select {
	case <-p.done:
		return p.res, p.err
	case <-ctx.Done():
		return Result{}, ctx.Err()
	}
}

// Queue runs jobs on a fixed set of workers in submission order.
type Queue struct {
	enc    Encoder
	jobs   chan *Pending
	nextID atomic.Uint64
	wg     sync.WaitGroup

	mu     sync.RWMutex // guards closed and sends on jobs
	closed bool
}

// NewQueue starts workers goroutines (at least one) encoding with enc.
func NewQueue(workers int, enc Encoder) *Queue {
	if workers < 1 {
		workers = 1
	}
	q := &Queue{
		enc:  enc,
		jobs: make(chan *Pending, workers*4),
	}
	for w := 0; w < workers; w++ {
		q.wg.Add(1)
		go q.worker()
	}
	return q
}

// Submit queues job. It blocks only while the queue buffer is full.
// The returned Pending also fails with ctx's error if ctx ends before the
// job starts.
func (q *Queue) Submit(ctx context.Context, job Job) (*Pending, error) {
	if job.Image == nil {
		return nil, fmt.Errorf("compress: job %q has no image", job.Name)
	}

	q.mu.RLock()
	defer q.mu.RUnlock()
	if q.closed {
		return nil, ErrQueueClosed
	}

	p := &Pending{
		id:   q.nextID.Add(1),
		name: job.Name,
		ctx:  ctx,
		img:  job.Image,
		done: make(chan struct{}),
	}
	select {
	case q.jobs <- p:
		return p, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// Close stops accepting jobs and waits for queued ones to finish.
func (q *Queue) Close() {
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		return
	}
	q.closed = true
	close(q.jobs)
	q.mu.Unlock()

	q.wg.Wait()
}

func (q *Queue) worker() {
	defer q.wg.Done()
	for p := range q.jobs {
		q.run(p)
	}
}

func (q *Queue) run(p *Pending) {
	defer close(p.done)

	if err := p.ctx.Err(); err != nil {
		p.err = err
		return
	}

	start := time.Now()
	logger.Debug("compress job started", zap.Uint64("id", p.id), zap.String("name", p.name))

	var buf bytes.Buffer
	if err := q.enc.Encode(&buf, p.img); err != nil {
		p.err = fmt.Errorf("compress: job %d (%s): %w", p.id, p.name, err)
		logger.Error("compress job failed", zap.Uint64("id", p.id), zap.String("name", p.name), zap.Error(err))
		return
	}

	p.res = Result{ID: p.id, Name: p.name, Data: buf.Bytes()}
	p.img = nil
	logger.Debug("compress job done",
		zap.Uint64("id", p.id),
		zap.String("name", p.name),
		zap.Int("bytes", buf.Len()),
		zap.Duration("took", time.Since(start)))
}
