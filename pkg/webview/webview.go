// Package webview builds editor views with the webview library. Views are
// embedded into Win32 host windows through WebView2; other parents are
// refused with editor.ErrWebViewUnavailable.
package webview

import (
	"fmt"

	wv "github.com/webview/webview"

	"github.com/justyntemme/vst3go-webview/pkg/editor"
	"github.com/justyntemme/vst3go-webview/pkg/handle"
	"github.com/justyntemme/vst3go-webview/pkg/webview/host"
)

// Builder attaches webview controls to a host parent. The zero value is
// ready to use.
type Builder struct{}

var _ editor.Builder = Builder{}

// BuildAsChild creates a view filling parent's client area, loads the init
// script and navigates to attrs.URL.
func (Builder) BuildAsChild(parent handle.Native, attrs editor.Attributes) (editor.WebView, error) {
	win, err := host.Resolve(parent)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", editor.ErrWebViewUnavailable, err)
	}

	// The library sizes the control to the host's client area. SetSize
	// would resize the host window itself, so it is never called.
	w := wv.NewWindow(attrs.DevTools, win.Arg())
	if attrs.InitScript != "" {
		w.Init(attrs.InitScript)
	}
	w.Navigate(attrs.URL)

	return &view{
		w:        w,
		host:     win,
		fallback: editor.Rect{Width: pixels(attrs.Width), Height: pixels(attrs.Height)},
	}, nil
}

// NewEditor creates an editor whose views are built by Builder.
func NewEditor[T any](userState T, url string, opts ...editor.Option) *editor.WebEditor[T] {
	all := append([]editor.Option{editor.WithBuilder(Builder{})}, opts...)
	return editor.New(userState, url, all...)
}

// view adapts a webview control to editor.WebView.
type view struct {
	w    wv.WebView
	host *host.Window

	// fallback is reported when the host window cannot be queried.
	fallback editor.Rect
}

// Bounds reports the host window's client area, which the control fills.
func (v *view) Bounds() (editor.Rect, error) {
	width, height, err := v.host.ClientSize()
	if err != nil {
		return v.fallback, nil
	}
	return editor.Rect{Width: width, Height: height}, nil
}

func (v *view) Eval(js string) { v.w.Eval(js) }

func (v *view) Dispatch(fn func()) { v.w.Dispatch(fn) }

func (v *view) Bind(name string, fn interface{}) error { return v.w.Bind(name, fn) }

func (v *view) Destroy() { v.w.Destroy() }

// pixels clamps a size to the int32 range Rect uses.
func pixels(n uint32) int32 {
	const maxPixels = 1<<31 - 1
	if n > maxPixels {
		return maxPixels
	}
	return int32(n)
}
