//go:build !windows

package host

import (
	"fmt"

	"github.com/justyntemme/vst3go-webview/pkg/handle"
)

// Resolve rejects every parent; the webview library has no child-view
// embedding on this platform.
func Resolve(parent handle.Native) (*Window, error) {
	return nil, fmt.Errorf("%s parent: %w", parent.Platform(), ErrUnsupported)
}

// ClientSize is not available on this platform.
func (w *Window) ClientSize() (width, height int32, err error) {
	return 0, 0, ErrUnsupported
}
