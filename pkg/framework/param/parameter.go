// Package param holds the plugin parameters an editor displays, keyed by
// the same string ids the host uses in its change notifications.
package param

import (
	"fmt"
	"math"
	"sync/atomic"
)

// Parameter represents a plugin parameter
type Parameter struct {
	ID           string
	Name         string
	Unit         string
	Min          float64
	Max          float64
	DefaultValue float64
	StepCount    int32

	// Normalized value bits for lock-free access from host threads
	value atomic.Uint64

	formatFunc func(float64) string
}

// New creates a parameter over [min, max] set to its default value.
func New(id, name string, min, max, defaultValue float64) *Parameter {
	p := &Parameter{
		ID:           id,
		Name:         name,
		Min:          min,
		Max:          max,
		DefaultValue: defaultValue,
	}
	p.SetValue(p.Normalize(defaultValue))
	return p
}

// WithUnit sets the display unit.
func (p *Parameter) WithUnit(unit string) *Parameter {
	p.Unit = unit
	return p
}

// WithSteps marks the parameter as discrete.
func (p *Parameter) WithSteps(steps int32) *Parameter {
	p.StepCount = steps
	return p
}

// WithFormatter sets custom plain-value formatting.
func (p *Parameter) WithFormatter(format func(float64) string) *Parameter {
	p.formatFunc = format
	return p
}

// GetValue returns the current normalized value (0-1)
func (p *Parameter) GetValue() float64 {
	return math.Float64frombits(p.value.Load())
}

// SetValue sets the normalized value, clamped to 0-1
func (p *Parameter) SetValue(value float64) {
	p.value.Store(math.Float64bits(clamp01(value)))
}

// GetPlainValue converts normalized to plain value
func (p *Parameter) GetPlainValue() float64 {
	return p.Denormalize(p.GetValue())
}

// FormatValue returns the display text for a normalized value
func (p *Parameter) FormatValue(normalized float64) string {
	plain := p.Denormalize(normalized)

	var text string
	switch {
	case p.formatFunc != nil:
		text = p.formatFunc(plain)
	case p.StepCount > 0:
		text = fmt.Sprintf("%.0f", plain)
	default:
		text = fmt.Sprintf("%.2f", plain)
	}

	if p.Unit != "" && p.formatFunc == nil {
		text += " " + p.Unit
	}
	return text
}

// Normalize converts plain value to normalized (0-1)
func (p *Parameter) Normalize(plain float64) float64 {
	if p.Max <= p.Min {
		return 0
	}
	return clamp01((plain - p.Min) / (p.Max - p.Min))
}

// Denormalize converts normalized (0-1) to plain value
func (p *Parameter) Denormalize(normalized float64) float64 {
	return p.Min + clamp01(normalized)*(p.Max-p.Min)
}

func clamp01(v float64) float64 {
	if v < 0 || math.IsNaN(v) {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
