package plugin

import (
	"github.com/justyntemme/vst3go-webview/pkg/framework/param"
)

// Base bundles plugin metadata with its parameters
type Base struct {
	info   Info
	params *param.Registry
}

// NewBase creates a new plugin base with an empty registry
func NewBase(info Info) *Base {
	return &Base{
		info:   info,
		params: param.NewRegistry(),
	}
}

// Info returns the plugin metadata
func (b *Base) Info() Info {
	return b.info
}

// Parameters returns the parameter registry
func (b *Base) Parameters() *param.Registry {
	return b.params
}
