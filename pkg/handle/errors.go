package handle

// Error codes
type Error int

const (
	// ErrNullHandle means the host passed a zero window id or nil view.
	ErrNullHandle Error = iota + 1
	// ErrUnknownPlatform means the Parent carries no recognised platform tag.
	ErrUnknownPlatform
	// ErrStaleHandle means the windowing system no longer knows the window.
	ErrStaleHandle
	// ErrProbeUnsupported means liveness cannot be checked on this platform
	// or without a display connection.
	ErrProbeUnsupported
)

func (e Error) Error() string {
	switch e {
	case ErrNullHandle:
		return "null window handle"
	case ErrUnknownPlatform:
		return "unknown window platform"
	case ErrStaleHandle:
		return "window no longer exists"
	case ErrProbeUnsupported:
		return "window probe not supported"
	default:
		return "unknown error"
	}
}
