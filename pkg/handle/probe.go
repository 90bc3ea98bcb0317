package handle

// Geometry is the parent window's position and size as reported by the
// windowing system. Width and Height are zero when the platform only
// confirms liveness.
type Geometry struct {
	X, Y          int
	Width, Height uint32
}

// Known reports whether the probe returned a usable size.
func (g Geometry) Known() bool {
	return g.Width > 0 && g.Height > 0
}
