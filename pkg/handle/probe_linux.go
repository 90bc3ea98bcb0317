//go:build linux

package handle

import (
	"fmt"

	"github.com/BurntSushi/xgb"
	"github.com/BurntSushi/xgb/xproto"
)

// Probe checks that an X11 parent window still exists and reports its
// geometry. It opens a short-lived connection to the display named by
// $DISPLAY; without one it returns ErrProbeUnsupported.
func Probe(p Parent) (Geometry, error) {
	if p.Platform != PlatformX11 {
		return Geometry{}, fmt.Errorf("%s on linux: %w", p.Platform, ErrProbeUnsupported)
	}
	if p.X11 == 0 {
		return Geometry{}, fmt.Errorf("%s window id: %w", p.Platform, ErrNullHandle)
	}

	conn, err := xgb.NewConn()
	if err != nil {
		return Geometry{}, fmt.Errorf("connect to X server: %w: %w", ErrProbeUnsupported, err)
	}
	defer conn.Close()

	reply, err := xproto.GetGeometry(conn, xproto.Drawable(p.X11)).Reply()
	if err != nil {
		return Geometry{}, fmt.Errorf("window 0x%x: %w: %w", uint32(p.X11), ErrStaleHandle, err)
	}

	return Geometry{
		X:      int(reply.X),
		Y:      int(reply.Y),
		Width:  uint32(reply.Width),
		Height: uint32(reply.Height),
	}, nil
}
