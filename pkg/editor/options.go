package editor

import (
	"time"

	"github.com/justyntemme/vst3go-webview/pkg/config"
	"github.com/justyntemme/vst3go-webview/pkg/framework/debug"
	"github.com/justyntemme/vst3go-webview/pkg/framework/plugin"
	"github.com/justyntemme/vst3go-webview/pkg/handle"
)

// Option configures a WebEditor.
type Option func(*options)

type options struct {
	builder       Builder
	log           *debug.Logger
	params        ParamSource
	devTools      bool
	width         uint32
	height        uint32
	flushInterval time.Duration
	probe         bool
	prober        func(handle.Parent) (handle.Geometry, error)
	info          *plugin.Info
}

func defaultOptions() options {
	return options{
		log:           debug.Default().Named("editor"),
		devTools:      true,
		width:         config.DefaultWidth,
		height:        config.DefaultHeight,
		flushInterval: config.DefaultFlushInterval,
		prober:        handle.Probe,
	}
}

// WithBuilder sets the web view constructor.
func WithBuilder(b Builder) Option {
	return func(o *options) { o.builder = b }
}

// WithLogger replaces the default logger.
func WithLogger(l *debug.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.log = l
		}
	}
}

// WithParams attaches display text and snapshots to parameter events.
func WithParams(src ParamSource) Option {
	return func(o *options) { o.params = src }
}

// WithDevTools toggles the browser inspector. It is on by default.
func WithDevTools(enabled bool) Option {
	return func(o *options) { o.devTools = enabled }
}

// WithSize sets the initial view size used when the host window size is
// unknown.
func WithSize(width, height uint32) Option {
	return func(o *options) {
		o.width = width
		o.height = height
	}
}

// WithFlushInterval sets how often parameter events are delivered. Zero
// delivers each event immediately.
func WithFlushInterval(d time.Duration) Option {
	return func(o *options) { o.flushInterval = d }
}

// WithProbe checks the parent window with the windowing system before
// attaching, and sizes the view to it when the size is known.
func WithProbe(enabled bool) Option {
	return func(o *options) { o.probe = enabled }
}

// withProber replaces the windowing-system query used by WithProbe.
func withProber(fn func(handle.Parent) (handle.Geometry, error)) Option {
	return func(o *options) { o.prober = fn }
}

// WithInfo publishes plugin metadata to the page as window.plugin.info.
func WithInfo(info plugin.Info) Option {
	return func(o *options) { o.info = &info }
}

// configOptions translates loaded settings into options.
func configOptions(cfg *config.Editor) []Option {
	return []Option{
		WithDevTools(cfg.DevTools),
		WithSize(cfg.Width, cfg.Height),
		WithFlushInterval(cfg.FlushInterval),
		WithProbe(cfg.Probe),
	}
}
