//go:build linux

package handle

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProbeLinux(t *testing.T) {
	t.Run("NonX11", func(t *testing.T) {
		_, err := Probe(Win32HWND(0x1234))
		assert.ErrorIs(t, err, ErrProbeUnsupported)
	})

	t.Run("NullWindow", func(t *testing.T) {
		_, err := Probe(X11Window(0))
		assert.ErrorIs(t, err, ErrNullHandle)
	})

	t.Run("NoDisplay", func(t *testing.T) {
		t.Setenv("DISPLAY", "")
		_, err := Probe(X11Window(0x1234))
		assert.ErrorIs(t, err, ErrProbeUnsupported)
	})
}
