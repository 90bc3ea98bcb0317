package editor

import (
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/justyntemme/vst3go-webview/pkg/config"
	"github.com/justyntemme/vst3go-webview/pkg/framework/debug"
	"github.com/justyntemme/vst3go-webview/pkg/handle"
)

// Size reports views at a fixed scale; the web view applies the display
// scale itself.
const sizeScaleFactor = 1.0

// WebEditor shows a web page in every spawned view. Spawned views are kept
// in spawn order until their Handle is closed; Size answers from the
// oldest one still open.
type WebEditor[T any] struct {
	stateMu sync.RWMutex
	state   T

	url    string
	opts   options
	script string

	mu        sync.Mutex
	instances []*instance
	nextID    uint64
	closed    bool
}

var _ Editor = (*WebEditor[struct{}])(nil)

// instance is one spawned view.
type instance struct {
	id     uint64
	ref    *viewRef
	bridge *bridge
}

// New creates an editor that loads url. It never returns nil.
func New[T any](userState T, url string, opts ...Option) *WebEditor[T] {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	script, err := initScript(o.info)
	if err != nil {
		o.log.Warn("Page will not receive plugin info: %v", err)
	}
	return &WebEditor[T]{
		state:  userState,
		url:    url,
		opts:   o,
		script: script,
	}
}

// NewFromConfig creates an editor from loaded settings. Options given here
// take precedence over cfg.
func NewFromConfig[T any](userState T, cfg *config.Editor, opts ...Option) *WebEditor[T] {
	if cfg == nil {
		cfg = config.Default()
	}
	log := debug.Default().Named("editor").WithLevel(cfg.Level())

	all := append([]Option{WithLogger(log)}, configOptions(cfg)...)
	return New(userState, cfg.URL, append(all, opts...)...)
}

// URL returns the page every view loads.
func (e *WebEditor[T]) URL() string {
	return e.url
}

// ReadState calls fn with the user state under a shared lock.
func (e *WebEditor[T]) ReadState(fn func(T)) {
	e.stateMu.RLock()
	defer e.stateMu.RUnlock()
	fn(e.state)
}

// UpdateState calls fn with the user state under an exclusive lock.
func (e *WebEditor[T]) UpdateState(fn func(*T)) {
	e.stateMu.Lock()
	defer e.stateMu.Unlock()
	fn(&e.state)
}

// Instances returns the number of open views.
func (e *WebEditor[T]) Instances() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.instances)
}

// Spawn attaches a new view to parent and returns its Handle. A zero
// parent handle fails with handle.ErrNullHandle; a view that cannot be
// built fails with a *SpawnError wrapping ErrWebViewUnavailable.
func (e *WebEditor[T]) Spawn(parent handle.Parent, ctx GuiContext) (io.Closer, error) {
	log := e.opts.log

	native, err := handle.Convert(parent)
	if err != nil {
		log.Error("Rejected parent window %s: %v", parent, err)
		return nil, err
	}

	e.mu.Lock()
	closed := e.closed
	e.mu.Unlock()
	if closed {
		return nil, ErrClosed
	}

	attrs := Attributes{
		URL:        e.url,
		DevTools:   e.opts.devTools,
		Width:      e.opts.width,
		Height:     e.opts.height,
		InitScript: e.script,
	}

	if e.opts.probe {
		geom, err := e.opts.prober(parent)
		switch {
		case err == nil:
			if geom.Known() {
				attrs.Width, attrs.Height = geom.Width, geom.Height
			}
		case errors.Is(err, handle.ErrProbeUnsupported):
			log.Debug("Skipping probe of %s: %v", parent, err)
		default:
			log.Error("Parent window %s failed probe: %v", parent, err)
			return nil, &SpawnError{Platform: parent.Platform, Err: err}
		}
	}

	view, err := e.build(native, attrs)
	if err != nil {
		log.Error("Failed to create web view in %s: %v", parent, err)
		return nil, &SpawnError{Platform: parent.Platform, Err: err}
	}

	ref := newViewRef(view)
	ref.acquire() // host's reference

	if ctx != nil {
		if err := bindContext(ref, ctx); err != nil {
			log.Warn("Page cannot set parameters: %v", err)
		}
	}

	inst := &instance{
		ref:    ref,
		bridge: newBridge(ref, e.opts.params, e.opts.flushInterval, log),
	}

	// The ticker must be running before the instance is published so a
	// concurrent Close always sees a started bridge.
	inst.bridge.start()

	e.mu.Lock()
	if e.closed {
		e.mu.Unlock()
		inst.bridge.stop()
		ref.release()
		ref.release()
		return nil, ErrClosed
	}
	e.nextID++
	inst.id = e.nextID
	e.instances = append(e.instances, inst)
	count := len(e.instances)
	e.mu.Unlock()

	log.Info("Spawned editor view %d in %s (%s, %dx%d, %d open)",
		inst.id, parent, e.url, attrs.Width, attrs.Height, count)
	return &Handle{release: func() { e.closeInstance(inst) }}, nil
}

func (e *WebEditor[T]) build(native handle.Native, attrs Attributes) (WebView, error) {
	if e.opts.builder == nil {
		return nil, fmt.Errorf("%w: no builder configured", ErrWebViewUnavailable)
	}
	view, err := e.opts.builder.BuildAsChild(native, attrs)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrWebViewUnavailable, err)
	}
	if view == nil {
		return nil, ErrWebViewUnavailable
	}
	return view, nil
}

// closeInstance stops the bridge and drops both the editor's and the
// host's references.
func (e *WebEditor[T]) closeInstance(inst *instance) {
	inst.bridge.stop()

	if e.remove(inst) {
		inst.ref.release()
	}
	inst.ref.release()

	e.opts.log.Debug("Closed editor view %d", inst.id)
}

// remove drops inst from the open list and reports whether it was there.
func (e *WebEditor[T]) remove(inst *instance) bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	for i, candidate := range e.instances {
		if candidate == inst {
			e.instances = append(e.instances[:i], e.instances[i+1:]...)
			return true
		}
	}
	return false
}

// Size returns the oldest open view's size in logical pixels, or
// ErrNotSpawned when no view is open.
func (e *WebEditor[T]) Size() (uint32, uint32, error) {
	e.mu.Lock()
	var ref *viewRef
	for _, inst := range e.instances {
		if inst.ref.acquire() {
			ref = inst.ref
			break
		}
	}
	e.mu.Unlock()

	if ref == nil {
		return 0, 0, ErrNotSpawned
	}
	defer ref.release()

	bounds, err := ref.bounds()
	if err != nil {
		return 0, 0, fmt.Errorf("query web view bounds: %w", err)
	}
	w, h := bounds.LogicalSize(sizeScaleFactor)
	return w, h, nil
}

// SetScaleFactor always returns false; the web view follows the display
// scale on its own.
func (e *WebEditor[T]) SetScaleFactor(factor float32) bool {
	e.opts.log.Debug("Ignoring scale factor %.2f", factor)
	return false
}

// ParamValueChanged forwards a host parameter change to every open view.
func (e *WebEditor[T]) ParamValueChanged(id string, normalizedValue float32) {
	for _, b := range e.bridges() {
		b.paramValue(id, normalizedValue)
	}
}

// ParamModulationChanged forwards a modulation offset to every open view.
func (e *WebEditor[T]) ParamModulationChanged(id string, modulationOffset float32) {
	for _, b := range e.bridges() {
		b.paramModulation(id, modulationOffset)
	}
}

// ParamValuesChanged asks every open view to resynchronise all values.
func (e *WebEditor[T]) ParamValuesChanged() {
	for _, b := range e.bridges() {
		b.paramValues()
	}
}

// bridges copies the open views' bridges so events are queued without
// holding e.mu.
func (e *WebEditor[T]) bridges() []*bridge {
	e.mu.Lock()
	defer e.mu.Unlock()

	result := make([]*bridge, len(e.instances))
	for i, inst := range e.instances {
		result[i] = inst.bridge
	}
	return result
}

// Close detaches every open view from the editor and refuses further
// spawns. A view is destroyed once its Handle is also closed.
func (e *WebEditor[T]) Close() error {
	e.mu.Lock()
	if e.closed {
		e.mu.Unlock()
		return ErrClosed
	}
	e.closed = true
	open := e.instances
	e.instances = nil
	e.mu.Unlock()

	for _, inst := range open {
		inst.bridge.stop()
		inst.ref.release()
	}

	e.opts.log.Info("Editor closed with %d open views", len(open))
	return nil
}

// Handle is returned to the host by Spawn. Closing it destroys the view
// once no other call is using it.
type Handle struct {
	once    sync.Once
	release func()
}

// Close tears the view down. It is safe to call more than once.
func (h *Handle) Close() error {
	h.once.Do(h.release)
	return nil
}
