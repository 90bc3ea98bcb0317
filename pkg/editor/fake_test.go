package editor

import (
	"errors"
	"sync"
	"sync/atomic"

	"github.com/justyntemme/vst3go-webview/pkg/handle"
)

// fakeView is a WebView double that counts Destroy calls.
type fakeView struct {
	mu        sync.Mutex
	bounds    Rect
	boundsErr error
	bindErr   error
	scripts   []string
	bindings  map[string]interface{}
	destroyed atomic.Int32
}

func newFakeView(width, height int32) *fakeView {
	return &fakeView{
		bounds:   Rect{Width: width, Height: height},
		bindings: make(map[string]interface{}),
	}
}

func (v *fakeView) Bounds() (Rect, error) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.destroyed.Load() > 0 {
		return Rect{}, errors.New("bounds of destroyed view")
	}
	return v.bounds, v.boundsErr
}

func (v *fakeView) Eval(js string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.scripts = append(v.scripts, js)
}

func (v *fakeView) Dispatch(fn func()) { fn() }

func (v *fakeView) Bind(name string, fn interface{}) error {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.bindErr != nil {
		return v.bindErr
	}
	v.bindings[name] = fn
	return nil
}

func (v *fakeView) Destroy() {
	v.destroyed.Add(1)
}

func (v *fakeView) Scripts() []string {
	v.mu.Lock()
	defer v.mu.Unlock()
	return append([]string(nil), v.scripts...)
}

func (v *fakeView) Binding(name string) interface{} {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.bindings[name]
}

// fakeBuilder hands out views from next, or fresh 800x600 views.
type fakeBuilder struct {
	mu      sync.Mutex
	err     error
	nilView bool
	next    []*fakeView
	built   []*fakeView
	natives []handle.Native
	attrs   []Attributes
}

func (b *fakeBuilder) BuildAsChild(parent handle.Native, attrs Attributes) (WebView, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.natives = append(b.natives, parent)
	b.attrs = append(b.attrs, attrs)
	if b.err != nil {
		return nil, b.err
	}
	if b.nilView {
		return nil, nil
	}

	view := newFakeView(800, 600)
	if len(b.next) > 0 {
		view, b.next = b.next[0], b.next[1:]
	}
	b.built = append(b.built, view)
	return view, nil
}

func (b *fakeBuilder) Built() []*fakeView {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]*fakeView(nil), b.built...)
}

func (b *fakeBuilder) Calls() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.attrs)
}

// fakeContext records parameter gestures coming from the page.
type fakeContext struct {
	mu    sync.Mutex
	calls []string
	value float32
}

func (c *fakeContext) BeginSetParameter(id string) {
	c.record("begin:" + id)
}

func (c *fakeContext) SetParameterNormalized(id string, normalized float32) {
	c.mu.Lock()
	c.value = normalized
	c.mu.Unlock()
	c.record("set:" + id)
}

func (c *fakeContext) EndSetParameter(id string) {
	c.record("end:" + id)
}

func (c *fakeContext) record(call string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.calls = append(c.calls, call)
}
