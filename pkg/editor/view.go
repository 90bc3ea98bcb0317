package editor

import (
	"sync"
	"sync/atomic"
)

// viewRef shares one web view between the editor and the host's closer.
// The view is destroyed when the last reference is released. Calls into
// the view are serialized by mu.
type viewRef struct {
	refs atomic.Int32
	mu   sync.Mutex
	view WebView
}

func newViewRef(view WebView) *viewRef {
	r := &viewRef{view: view}
	r.refs.Store(1)
	return r
}

// acquire takes another reference. It fails once the view is destroyed.
func (r *viewRef) acquire() bool {
	for {
		n := r.refs.Load()
		if n <= 0 {
			return false
		}
		if r.refs.CompareAndSwap(n, n+1) {
			return true
		}
	}
}

func (r *viewRef) release() {
	if r.refs.Add(-1) != 0 {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.view.Destroy()
}

func (r *viewRef) bounds() (Rect, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.view.Bounds()
}

func (r *viewRef) bind(name string, fn interface{}) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.view.Bind(name, fn)
}

// eval schedules js on the view's UI thread.
func (r *viewRef) eval(js string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	view := r.view
	view.Dispatch(func() {
		view.Eval(js)
	})
}
