// Package editor implements a plugin editor that shows an HTML/JS user
// interface in a web view attached to the host's parent window.
//
// The host drives the Editor contract: Spawn attaches a view and returns a
// closer that tears it down, Size reports the view bounds, and the Param*
// notifications are forwarded to the page over a small event bridge.
package editor

import (
	"io"
	"math"

	"github.com/justyntemme/vst3go-webview/pkg/framework/param"
	"github.com/justyntemme/vst3go-webview/pkg/handle"
)

// Editor is the lifecycle contract a host calls on a plugin editor.
type Editor interface {
	// Spawn attaches a new editor view to parent. Closing the returned
	// value destroys the view.
	Spawn(parent handle.Parent, ctx GuiContext) (io.Closer, error)
	// Size returns the editor size in logical pixels.
	Size() (width, height uint32, err error)
	// SetScaleFactor reports whether the editor applied the factor.
	SetScaleFactor(factor float32) bool
	ParamValueChanged(id string, normalizedValue float32)
	ParamModulationChanged(id string, modulationOffset float32)
	ParamValuesChanged()
}

// GuiContext lets the editor page change parameters through the host.
type GuiContext interface {
	BeginSetParameter(id string)
	SetParameterNormalized(id string, normalized float32)
	EndSetParameter(id string)
}

// WebView is the embedded browser surface.
type WebView interface {
	// Bounds returns the view rectangle in physical pixels.
	Bounds() (Rect, error)
	// Eval runs JavaScript in the page. It must be called on the UI thread.
	Eval(js string)
	// Dispatch schedules fn on the UI thread.
	Dispatch(fn func())
	// Bind exposes a Go function to the page as a global JS function.
	Bind(name string, fn interface{}) error
	Destroy()
}

// Attributes configure a web view at construction time.
type Attributes struct {
	URL        string
	DevTools   bool
	Width      uint32
	Height     uint32
	InitScript string
}

// Builder constructs web views as children of a native window.
type Builder interface {
	BuildAsChild(parent handle.Native, attrs Attributes) (WebView, error)
}

// BuilderFunc adapts a function to Builder.
type BuilderFunc func(parent handle.Native, attrs Attributes) (WebView, error)

func (f BuilderFunc) BuildAsChild(parent handle.Native, attrs Attributes) (WebView, error) {
	return f(parent, attrs)
}

// ParamSource supplies display text and full snapshots for parameter
// events. *param.Registry implements it.
type ParamSource interface {
	Format(id string, normalized float64) (string, bool)
	Snapshot() []param.Snapshot
}

// Rect is a view rectangle in physical pixels.
type Rect struct {
	X, Y          int32
	Width, Height int32
}

// LogicalSize converts the rectangle size to logical pixels. Negative
// extents become zero; a non-positive scale is treated as 1.
func (r Rect) LogicalSize(scale float64) (width, height uint32) {
	if scale <= 0 {
		scale = 1
	}
	return toLogical(r.Width, scale), toLogical(r.Height, scale)
}

func toLogical(v int32, scale float64) uint32 {
	if v <= 0 {
		return 0
	}
	return uint32(math.Round(float64(v) / scale))
}
