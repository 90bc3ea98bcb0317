//go:build !windows

package host

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/justyntemme/vst3go-webview/pkg/handle"
)

func TestResolveWin32OffWindows(t *testing.T) {
	w, err := Resolve(handle.Win32WindowHandle{HWND: 0x1234})
	assert.Nil(t, w)
	assert.ErrorIs(t, err, ErrUnsupported)

	_, _, err = (&Window{hwnd: 0x1234}).ClientSize()
	assert.ErrorIs(t, err, ErrUnsupported)
}
