// Package handle converts the parent window reference a host passes to a
// plugin editor into the native handle form expected by web view embedding
// APIs.
//
// A Parent is owned by the host. Converting it never takes ownership: the
// resulting Native is only meaningful for the duration of the call that
// attaches a child view to it.
package handle

import (
	"fmt"
	"unsafe"

	"github.com/BurntSushi/xgb/xproto"
)

// Platform identifies which windowing system a handle belongs to.
type Platform int

const (
	// PlatformUnknown is the zero value and never produced by a constructor.
	PlatformUnknown Platform = iota
	// PlatformX11 is an X11 window id.
	PlatformX11
	// PlatformAppKit is a pointer to an NSView.
	PlatformAppKit
	// PlatformWin32 is an HWND.
	PlatformWin32
)

// String returns the platform name.
func (p Platform) String() string {
	switch p {
	case PlatformX11:
		return "x11"
	case PlatformAppKit:
		return "appkit"
	case PlatformWin32:
		return "win32"
	default:
		return "unknown"
	}
}

// Parent is the host-supplied parent window. Exactly one of the platform
// fields is meaningful, selected by Platform.
type Parent struct {
	Platform Platform
	X11      xproto.Window
	NSView   unsafe.Pointer
	HWND     uintptr
}

// X11Window wraps an X11 window id.
func X11Window(window uint32) Parent {
	return Parent{Platform: PlatformX11, X11: xproto.Window(window)}
}

// AppKitNSView wraps an NSView pointer.
func AppKitNSView(view unsafe.Pointer) Parent {
	return Parent{Platform: PlatformAppKit, NSView: view}
}

// Win32HWND wraps a Win32 window handle.
func Win32HWND(hwnd uintptr) Parent {
	return Parent{Platform: PlatformWin32, HWND: hwnd}
}

// String formats the parent for logs.
func (p Parent) String() string {
	switch p.Platform {
	case PlatformX11:
		return fmt.Sprintf("x11:0x%x", uint32(p.X11))
	case PlatformAppKit:
		return fmt.Sprintf("appkit:%p", p.NSView)
	case PlatformWin32:
		return fmt.Sprintf("win32:0x%x", p.HWND)
	default:
		return "unknown"
	}
}

// Native is a borrowed window handle ready to be passed to an embedding API.
type Native interface {
	Platform() Platform
	// Pointer returns the handle in the form C embedding APIs take.
	Pointer() unsafe.Pointer
}

// XcbWindowHandle is an X11 window without a display connection. Backends
// that need the connection must open their own.
type XcbWindowHandle struct {
	Window xproto.Window
}

func (h XcbWindowHandle) Platform() Platform { return PlatformX11 }

func (h XcbWindowHandle) Pointer() unsafe.Pointer {
	return unsafe.Pointer(uintptr(h.Window))
}

// AppKitWindowHandle is a non-nil NSView.
type AppKitWindowHandle struct {
	NSView unsafe.Pointer
}

func (h AppKitWindowHandle) Platform() Platform { return PlatformAppKit }

func (h AppKitWindowHandle) Pointer() unsafe.Pointer { return h.NSView }

// Win32WindowHandle is a non-zero HWND stored as a signed pointer-sized value.
type Win32WindowHandle struct {
	HWND int
}

func (h Win32WindowHandle) Platform() Platform { return PlatformWin32 }

func (h Win32WindowHandle) Pointer() unsafe.Pointer {
	return unsafe.Pointer(uintptr(h.HWND))
}

// Convert produces the native handle for p. A zero or nil identity yields
// ErrNullHandle and no handle.
func Convert(p Parent) (Native, error) {
	switch p.Platform {
	case PlatformX11:
		if p.X11 == 0 {
			return nil, fmt.Errorf("%s window id: %w", p.Platform, ErrNullHandle)
		}
		return XcbWindowHandle{Window: p.X11}, nil
	case PlatformAppKit:
		if p.NSView == nil {
			return nil, fmt.Errorf("%s view: %w", p.Platform, ErrNullHandle)
		}
		return AppKitWindowHandle{NSView: p.NSView}, nil
	case PlatformWin32:
		hwnd := int(p.HWND)
		if hwnd == 0 {
			return nil, fmt.Errorf("%s hwnd: %w", p.Platform, ErrNullHandle)
		}
		return Win32WindowHandle{HWND: hwnd}, nil
	default:
		return nil, fmt.Errorf("platform %d: %w", int(p.Platform), ErrUnknownPlatform)
	}
}

// MustConvert is like Convert but panics when the host breaks the
// non-zero handle precondition.
func MustConvert(p Parent) Native {
	n, err := Convert(p)
	if err != nil {
		panic(err)
	}
	return n
}
