// Package host resolves the plugin window a web view is created in.
//
// The webview library attaches to an existing top-level window only on
// Win32, where it takes the address of an HWND and embeds a WebView2
// controller sized to the window's client area. GTK expects a GtkWidget
// and Cocoa an NSWindow, neither of which a host provides, so X11 and
// AppKit parents are rejected instead of being handed over.
package host

import (
	"errors"
	"unsafe"
)

// ErrUnsupported is returned for parent windows the webview library cannot
// embed into.
var ErrUnsupported = errors.New("parent window cannot host a web view")

// Window is a resolved host window.
type Window struct {
	hwnd uintptr
}

// Arg returns the window argument for webview.NewWindow: a pointer to the
// HWND. It stays valid as long as w is reachable.
func (w *Window) Arg() unsafe.Pointer {
	return unsafe.Pointer(&w.hwnd)
}
