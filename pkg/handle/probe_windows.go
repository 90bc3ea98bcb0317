//go:build windows

package handle

import (
	"fmt"

	"golang.org/x/sys/windows"
)

// Probe checks that a Win32 parent window still exists. The returned
// geometry is always unknown.
func Probe(p Parent) (Geometry, error) {
	if p.Platform != PlatformWin32 {
		return Geometry{}, fmt.Errorf("%s on windows: %w", p.Platform, ErrProbeUnsupported)
	}
	if p.HWND == 0 {
		return Geometry{}, fmt.Errorf("%s hwnd: %w", p.Platform, ErrNullHandle)
	}
	if !windows.IsWindow(windows.HWND(p.HWND)) {
		return Geometry{}, fmt.Errorf("hwnd 0x%x: %w", p.HWND, ErrStaleHandle)
	}
	return Geometry{}, nil
}
