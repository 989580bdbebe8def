package picker

import (
	"context"

	"photopick/internal/progress"
	"photopick/internal/trace"

	tea "github.com/charmbracelet/bubbletea"
	oteltrace "go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

// LoadResultMsg is delivered to the update loop when a load finishes.
type LoadResultMsg struct {
	Selection Selection
	Result    Result
	LoadID    string

	progress *progress.Progress
	span     oteltrace.Span
}

// Picker owns the ImageState and the current selection.
// It is not safe for concurrent use; call it only from the update loop.
type Picker struct {
	loader  Loader
	state   ImageState
	current *Selection

	// inflight is the handle of the load for current, if it has not finished.
	inflight         *progress.Progress
	cancelSuperseded bool

	log    *zap.Logger
	tracer *trace.Tracer
}

// Option configures a Picker.
type Option func(*Picker)

// WithLogger sets the logger. Nil keeps the no-op logger.
func WithLogger(l *zap.Logger) Option {
	return func(p *Picker) {
		if l != nil {
			p.log = l
		}
	}
}

// WithTracer sets the tracer used for load spans.
func WithTracer(t *trace.Tracer) Option {
	return func(p *Picker) {
		if t != nil {
			p.tracer = t
		}
	}
}

// WithCancelSuperseded makes a new selection (or a clear) cancel the load of
// the selection it replaces. Without it superseded loads run to completion
// and their results are ignored.
func WithCancelSuperseded(on bool) Option {
	return func(p *Picker) {
		p.cancelSuperseded = on
	}
}

// New returns a picker in the Empty state.
func New(loader Loader, opts ...Option) *Picker {
	p := &Picker{
		loader: loader,
		state:  Empty{},
		log:    zap.NewNop(),
		tracer: trace.Noop(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// State returns the current image state.
func (p *Picker) State() ImageState {
	return p.state
}

// Selection returns the current selection, or nil.
func (p *Picker) Selection() *Selection {
	if p.current == nil {
		return nil
	}
	s := *p.current
	return &s
}

// OnSelectionChanged applies a new pick (or a clear when sel is nil).
// The state changes before it returns. For a non-nil selection the returned
// command waits for the loader and yields a LoadResultMsg; it must be run off
// the update loop, which Bubble Tea does for every tea.Cmd.
func (p *Picker) OnSelectionChanged(sel *Selection) tea.Cmd {
	p.supersede()

	if sel == nil {
		p.current = nil
		p.state = Empty{}
		p.log.Debug("selection cleared")
		return nil
	}

	s := *sel
	p.current = &s

	ctx, span, loadID := p.tracer.StartLoad(context.Background(), s.ID, s.Name)
	results := make(chan Result, 1)
	prog := p.loader.Load(ctx, s, func(r Result) {
		results <- r
	})
	p.inflight = prog
	p.state = Loading{Progress: prog}

	p.log.Debug("load started",
		zap.String("selection", s.Short()),
		zap.String("name", s.Name),
		zap.String("load_id", loadID))

	return func() tea.Msg {
		r := <-results
		return LoadResultMsg{
			Selection: s,
			Result:    r,
			LoadID:    loadID,
			progress:  prog,
			span:      span,
		}
	}
}

// OnLoadResult applies a finished load if it still belongs to the current
// selection. It reports whether the state changed.
func (p *Picker) OnLoadResult(msg LoadResultMsg) bool {
	if p.isStale(msg) {
		p.log.Debug("discarding stale load result",
			zap.String("selection", msg.Selection.Short()),
			zap.String("load_id", msg.LoadID))
		trace.EndLoad(msg.span, trace.OutcomeStale, nil)
		return false
	}

	p.inflight = nil
	switch {
	case msg.Result.Err != nil:
		p.state = Failure{Err: &DecodeFailure{Cause: msg.Result.Err}}
		p.log.Debug("load failed",
			zap.String("selection", msg.Selection.Short()),
			zap.String("load_id", msg.LoadID),
			zap.Error(msg.Result.Err))
		trace.EndLoad(msg.span, trace.OutcomeFailure, msg.Result.Err)
	case msg.Result.Image != nil:
		p.state = Success{Image: msg.Result.Image}
		b := msg.Result.Image.Bounds()
		p.log.Debug("load succeeded",
			zap.String("selection", msg.Selection.Short()),
			zap.String("load_id", msg.LoadID),
			zap.Int("width", b.Dx()),
			zap.Int("height", b.Dy()))
		trace.EndLoad(msg.span, trace.OutcomeSuccess, nil)
	default:
		p.state = Empty{}
		p.log.Debug("load produced no image",
			zap.String("selection", msg.Selection.Short()),
			zap.String("load_id", msg.LoadID))
		trace.EndLoad(msg.span, trace.OutcomeEmpty, nil)
	}
	return true
}

func (p *Picker) isStale(msg LoadResultMsg) bool {
	if p.current == nil || *p.current != msg.Selection {
		return true
	}
	// Re-picking the same item yields an equal selection; a cancelled
	// predecessor must not land on top of its replacement.
	return msg.progress != nil && msg.progress.Cancelled()
}

func (p *Picker) supersede() {
	if p.inflight == nil {
		return
	}
	if p.cancelSuperseded {
		p.inflight.Cancel()
	}
	p.inflight = nil
}
