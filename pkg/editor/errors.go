package editor

import (
	"fmt"

	"github.com/justyntemme/vst3go-webview/pkg/handle"
)

// Error codes
type Error int

const (
	// ErrNotSpawned means no view is alive to answer the call.
	ErrNotSpawned Error = iota + 1
	// ErrWebViewUnavailable means the web view could not be created, for
	// example because the system web view runtime is missing.
	ErrWebViewUnavailable
	// ErrClosed means the editor was closed.
	ErrClosed
)

func (e Error) Error() string {
	switch e {
	case ErrNotSpawned:
		return "no editor view spawned"
	case ErrWebViewUnavailable:
		return "web view unavailable"
	case ErrClosed:
		return "editor closed"
	default:
		return "unknown error"
	}
}

// SpawnError reports a failed Spawn after the parent handle was accepted.
type SpawnError struct {
	Platform handle.Platform
	Err      error
}

func (e *SpawnError) Error() string {
	return fmt.Sprintf("spawn %s editor: %v", e.Platform, e.Err)
}

func (e *SpawnError) Unwrap() error {
	return e.Err
}
