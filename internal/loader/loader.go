package loader

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"sync/atomic"

	"photopick/internal/picker"
	"photopick/internal/progress"

	"github.com/gammazero/workerpool"
	"go.uber.org/zap"
)

// ErrClosed is reported for loads submitted after Close.
var ErrClosed = errors.New("loader closed")

// Emitter receives load lifecycle events from worker goroutines.
type Emitter interface {
	Emit(progress.Event)
}

// FileLoader decodes selections from disk on a bounded worker pool.
type FileLoader struct {
	pool   *workerpool.WorkerPool
	log    *zap.Logger
	events Emitter
	closed atomic.Bool
}

var _ picker.Loader = (*FileLoader)(nil)

// Option configures a FileLoader.
type Option func(*FileLoader)

// WithLogger sets the logger.
func WithLogger(l *zap.Logger) Option {
	return func(f *FileLoader) {
		if l != nil {
			f.log = l
		}
	}
}

// WithEvents sets where lifecycle events are emitted.
func WithEvents(e Emitter) Option {
	return func(f *FileLoader) {
		f.events = e
	}
}

// NewFileLoader starts a pool with the given number of decode workers (minimum 1).
func NewFileLoader(workers int, opts ...Option) *FileLoader {
	if workers < 1 {
		workers = 1
	}
	f := &FileLoader{
		pool: workerpool.New(workers),
		log:  zap.NewNop(),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Load implements picker.Loader. done runs on a worker goroutine.
func (f *FileLoader) Load(ctx context.Context, sel picker.Selection, done func(picker.Result)) *progress.Progress {
	ctx, cancel := context.WithCancel(ctx)
	prog := progress.New(cancel)

	if f.closed.Load() {
		cancel()
		prog.Finish()
		go done(picker.Result{Err: ErrClosed})
		return prog
	}

	f.pool.Submit(func() {
		defer cancel()
		f.emit(sel, progress.StatusRunning, "decoding "+sel.Name, nil)

		r := f.read(ctx, sel, prog)
		prog.Finish()

		switch {
		case r.Err != nil && errors.Is(r.Err, context.Canceled):
			f.emit(sel, progress.StatusAborted, "cancelled "+sel.Name, nil)
		case r.Err != nil:
			f.log.Debug("decode failed", zap.String("path", sel.Path), zap.Error(r.Err))
			f.emit(sel, progress.StatusError, "failed "+sel.Name, nil)
		default:
			f.emit(sel, progress.StatusDone, "decoded "+sel.Name, map[string]string{
				"bytes": strconv.FormatInt(prog.Completed(), 10),
			})
		}
		done(r)
	})
	return prog
}

// read pulls the file through a counting reader and decodes it.
func (f *FileLoader) read(ctx context.Context, sel picker.Selection, prog *progress.Progress) picker.Result {
	if err := ctx.Err(); err != nil {
		return picker.Result{Err: err}
	}

	file, err := os.Open(sel.Path)
	if err != nil {
		return picker.Result{Err: fmt.Errorf("open %s: %w", sel.Name, err)}
	}
	defer file.Close()

	if info, err := file.Stat(); err == nil {
		prog.SetTotal(info.Size())
	}

	data, err := io.ReadAll(&countingReader{ctx: ctx, r: file, prog: prog})
	if err != nil {
		return picker.Result{Err: fmt.Errorf("read %s: %w", sel.Name, err)}
	}
	return DecodeBytes(data)
}

func (f *FileLoader) emit(sel picker.Selection, status progress.Status, msg string, meta map[string]string) {
	if f.events == nil {
		return
	}
	if meta == nil {
		meta = map[string]string{}
	}
	meta["selection"] = sel.Short()
	f.events.Emit(progress.Event{Message: msg, Status: status, Metadata: meta})
}

// Close stops accepting loads and waits for running ones to finish.
func (f *FileLoader) Close() {
	if f.closed.Swap(true) {
		return
	}
	f.pool.StopWait()
}

// countingReader advances prog as bytes are read and stops on cancellation.
type countingReader struct {
	ctx  context.Context
	r    io.Reader
	prog *progress.Progress
}

func (c *countingReader) Read(p []byte) (int, error) {
	if err := c.ctx.Err(); err != nil {
		return 0, err
	}
	n, err := c.r.Read(p)
	c.prog.Add(int64(n))
	return n, err
}

// FuncLoader adapts a plain function into a picker.Loader; each load runs on
// its own goroutine.
type FuncLoader func(ctx context.Context, sel picker.Selection) picker.Result

var _ picker.Loader = FuncLoader(nil)

// Load implements picker.Loader.
func (fn FuncLoader) Load(ctx context.Context, sel picker.Selection, done func(picker.Result)) *progress.Progress {
	ctx, cancel := context.WithCancel(ctx)
	prog := progress.New(cancel)
	go func() {
		defer cancel()
		r := fn(ctx, sel)
		prog.Finish()
		done(r)
	}()
	return prog
}
