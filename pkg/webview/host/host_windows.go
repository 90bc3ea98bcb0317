//go:build windows

package host

import (
	"fmt"

	"github.com/lxn/win"

	"github.com/justyntemme/vst3go-webview/pkg/handle"
)

// Resolve accepts Win32 parents.
func Resolve(parent handle.Native) (*Window, error) {
	h, ok := parent.(handle.Win32WindowHandle)
	if !ok {
		return nil, fmt.Errorf("%s parent on windows: %w", parent.Platform(), ErrUnsupported)
	}
	if h.HWND == 0 {
		return nil, fmt.Errorf("%s hwnd: %w", parent.Platform(), handle.ErrNullHandle)
	}
	return &Window{hwnd: uintptr(h.HWND)}, nil
}

// ClientSize returns the size of the window's client area in pixels.
func (w *Window) ClientSize() (width, height int32, err error) {
	var r win.RECT
	if !win.GetClientRect(win.HWND(w.hwnd), &r) {
		return 0, 0, fmt.Errorf("GetClientRect hwnd 0x%x: %w", w.hwnd, handle.ErrStaleHandle)
	}
	return r.Right - r.Left, r.Bottom - r.Top, nil
}
