//go:build windows

package host

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/justyntemme/vst3go-webview/pkg/handle"
)

func TestResolveWin32(t *testing.T) {
	w, err := Resolve(handle.Win32WindowHandle{HWND: 0x1234})
	require.NoError(t, err)
	assert.Equal(t, uintptr(0x1234), *(*uintptr)(w.Arg()))

	_, err = Resolve(handle.Win32WindowHandle{})
	assert.ErrorIs(t, err, handle.ErrNullHandle)
}

func TestClientSizeStaleWindow(t *testing.T) {
	_, _, err := (&Window{hwnd: 0x1234}).ClientSize()
	assert.ErrorIs(t, err, handle.ErrStaleHandle)
}
