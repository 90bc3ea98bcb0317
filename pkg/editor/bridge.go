package editor

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"sync"
	"time"

	"go.uber.org/multierr"

	"github.com/justyntemme/vst3go-webview/pkg/framework/debug"
	"github.com/justyntemme/vst3go-webview/pkg/framework/param"
	"github.com/justyntemme/vst3go-webview/pkg/framework/plugin"
)

// ParamEventName is the DOM event the page receives parameter batches on.
const ParamEventName = "plugin:params"

// Names of the functions bound into the page.
const (
	bindBeginSet = "pluginBeginSetParameter"
	bindSet      = "pluginSetParameter"
	bindEndSet   = "pluginEndSetParameter"
)

// bridgeScript runs before the page loads and wraps the raw bindings and
// event in a window.plugin object.
const bridgeScript = `(function () {
  var listeners = [];
  window.addEventListener("plugin:params", function (e) {
    for (var i = 0; i < listeners.length; i++) listeners[i](e.detail);
  });
  window.plugin = {
    onParams: function (fn) { listeners.push(fn); },
    beginSet: function (id) { return window.pluginBeginSetParameter && window.pluginBeginSetParameter(id); },
    set: function (id, value) { return window.pluginSetParameter && window.pluginSetParameter(id, value); },
    endSet: function (id) { return window.pluginEndSetParameter && window.pluginEndSetParameter(id); }
  };
})();`

// initScript returns the page bootstrap, publishing info when set.
func initScript(info *plugin.Info) (string, error) {
	if info == nil {
		return bridgeScript, nil
	}
	data, err := json.Marshal(info)
	if err != nil {
		return bridgeScript, fmt.Errorf("encode plugin info: %w", err)
	}
	return bridgeScript + "\nwindow.plugin.info = " + string(data) + ";", nil
}

type valueEvent struct {
	Type  string  `json:"type"`
	ID    string  `json:"id"`
	Value float32 `json:"value"`
	Text  string  `json:"text,omitempty"`
}

type modulationEvent struct {
	Type   string  `json:"type"`
	ID     string  `json:"id"`
	Offset float32 `json:"offset"`
}

type valuesEvent struct {
	Type   string           `json:"type"`
	Params []param.Snapshot `json:"params"`
}

// bridge queues host parameter events for one view and delivers them to
// the page in batches. The latest event per id wins; a full resync drops
// queued value events.
type bridge struct {
	ref      *viewRef
	params   ParamSource
	interval time.Duration
	log      *debug.Logger

	mu         sync.Mutex
	values     map[string]valueEvent
	valueOrder []string
	mods       map[string]modulationEvent
	modOrder   []string
	resync     bool

	cancel context.CancelFunc
	done   chan struct{}
}

func newBridge(ref *viewRef, params ParamSource, interval time.Duration, log *debug.Logger) *bridge {
	return &bridge{
		ref:      ref,
		params:   params,
		interval: interval,
		log:      log,
		values:   make(map[string]valueEvent),
		mods:     make(map[string]modulationEvent),
	}
}

// start launches the flush ticker. With a zero interval every event is
// flushed as it is queued and no goroutine runs.
func (b *bridge) start() {
	if b.interval <= 0 {
		return
	}
	ctx, cancel := context.WithCancel(context.Background())
	b.cancel = cancel
	b.done = make(chan struct{})
	go b.run(ctx)
}

func (b *bridge) run(ctx context.Context) {
	defer close(b.done)

	ticker := time.NewTicker(b.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			b.flush()
		}
	}
}

// stop halts the ticker and waits for an in-flight flush.
func (b *bridge) stop() {
	if b.cancel == nil {
		return
	}
	b.cancel()
	<-b.done
}

// paramValue queues a value change. Values are clamped to [0, 1] so one
// bad value cannot make the batch unencodable.
func (b *bridge) paramValue(id string, normalized float32) {
	normalized = float32(clampNormalized(float64(normalized)))
	ev := valueEvent{Type: "value", ID: id, Value: normalized}
	if b.params != nil {
		if text, ok := b.params.Format(id, float64(normalized)); ok {
			ev.Text = text
		}
	}

	b.mu.Lock()
	if _, queued := b.values[id]; !queued {
		b.valueOrder = append(b.valueOrder, id)
	}
	b.values[id] = ev
	b.mu.Unlock()

	b.flushIfImmediate()
}

func (b *bridge) paramModulation(id string, offset float32) {
	offset = float32(clampOffset(float64(offset)))

	b.mu.Lock()
	if _, queued := b.mods[id]; !queued {
		b.modOrder = append(b.modOrder, id)
	}
	b.mods[id] = modulationEvent{Type: "modulation", ID: id, Offset: offset}
	b.mu.Unlock()

	b.flushIfImmediate()
}

func (b *bridge) paramValues() {
	b.mu.Lock()
	b.resync = true
	clear(b.values)
	b.valueOrder = b.valueOrder[:0]
	b.mu.Unlock()

	b.flushIfImmediate()
}

func (b *bridge) flushIfImmediate() {
	if b.interval <= 0 {
		b.flush()
	}
}

// drain empties the queue into a batch in delivery order: resync, values,
// then modulation.
func (b *bridge) drain() []interface{} {
	b.mu.Lock()
	defer b.mu.Unlock()

	batch := make([]interface{}, 0, len(b.valueOrder)+len(b.modOrder)+1)
	if b.resync {
		ev := valuesEvent{Type: "values", Params: []param.Snapshot{}}
		if b.params != nil {
			ev.Params = b.params.Snapshot()
		}
		batch = append(batch, ev)
		b.resync = false
	}
	for _, id := range b.valueOrder {
		batch = append(batch, b.values[id])
	}
	for _, id := range b.modOrder {
		batch = append(batch, b.mods[id])
	}

	clear(b.values)
	b.valueOrder = b.valueOrder[:0]
	clear(b.mods)
	b.modOrder = b.modOrder[:0]
	return batch
}

// flush delivers queued events to the page.
func (b *bridge) flush() {
	batch := b.drain()
	if len(batch) == 0 {
		return
	}

	script, err := eventScript(batch)
	if err != nil {
		b.log.Error("Dropping %d parameter events: %v", len(batch), err)
		return
	}

	if !b.ref.acquire() {
		return
	}
	defer b.ref.release()
	b.ref.eval(script)
}

func eventScript(batch []interface{}) (string, error) {
	payload, err := json.Marshal(batch)
	if err != nil {
		return "", fmt.Errorf("encode parameter events: %w", err)
	}
	return fmt.Sprintf("window.dispatchEvent(new CustomEvent(%q, {detail: %s}));", ParamEventName, payload), nil
}

// bindContext exposes ctx to the page. Every binding is attempted; the
// failures are combined.
func bindContext(ref *viewRef, ctx GuiContext) error {
	var err error
	err = multierr.Append(err, bindFunc(ref, bindBeginSet, func(id string) {
		ctx.BeginSetParameter(id)
	}))
	err = multierr.Append(err, bindFunc(ref, bindSet, func(id string, value float64) {
		ctx.SetParameterNormalized(id, float32(clampNormalized(value)))
	}))
	err = multierr.Append(err, bindFunc(ref, bindEndSet, func(id string) {
		ctx.EndSetParameter(id)
	}))
	return err
}

func bindFunc(ref *viewRef, name string, fn interface{}) error {
	if err := ref.bind(name, fn); err != nil {
		return fmt.Errorf("bind %s: %w", name, err)
	}
	return nil
}

func clampNormalized(v float64) float64 {
	if v < 0 || math.IsNaN(v) {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// clampOffset limits a modulation offset to [-1, 1]. NaN becomes 0.
func clampOffset(v float64) float64 {
	switch {
	case math.IsNaN(v):
		return 0
	case v < -1:
		return -1
	case v > 1:
		return 1
	}
	return v
}
