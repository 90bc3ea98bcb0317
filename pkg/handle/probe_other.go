//go:build !linux && !windows

package handle

import "fmt"

// Probe is not available on this platform.
func Probe(p Parent) (Geometry, error) {
	return Geometry{}, fmt.Errorf("%s: %w", p.Platform, ErrProbeUnsupported)
}
