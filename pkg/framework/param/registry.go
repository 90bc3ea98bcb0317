package param

import (
	"fmt"
	"sync"
)

// Snapshot is a point-in-time copy of one parameter for the editor page.
type Snapshot struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Value float64 `json:"value"`
	Text  string  `json:"text"`
}

// Registry manages plugin parameters
type Registry struct {
	params map[string]*Parameter
	order  []string // Registration order
	mu     sync.RWMutex
}

// NewRegistry creates a new parameter registry
func NewRegistry() *Registry {
	return &Registry{
		params: make(map[string]*Parameter),
	}
}

// Add registers parameters. Parameters after a duplicate id are not added.
func (r *Registry) Add(params ...*Parameter) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, p := range params {
		if p.ID == "" {
			return fmt.Errorf("parameter %q has no id", p.Name)
		}
		if _, exists := r.params[p.ID]; exists {
			return fmt.Errorf("duplicate parameter id %q", p.ID)
		}
		r.params[p.ID] = p
		r.order = append(r.order, p.ID)
	}

	return nil
}

// Get retrieves a parameter by ID
func (r *Registry) Get(id string) *Parameter {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.params[id]
}

// GetByIndex retrieves a parameter by registration index
func (r *Registry) GetByIndex(index int) *Parameter {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if index < 0 || index >= len(r.order) {
		return nil
	}
	return r.params[r.order[index]]
}

// Count returns the number of parameters
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.order)
}

// All returns all parameters in order
func (r *Registry) All() []*Parameter {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*Parameter, len(r.order))
	for i, id := range r.order {
		result[i] = r.params[id]
	}
	return result
}

// SetNormalized updates a parameter's value. It reports false for unknown ids.
func (r *Registry) SetNormalized(id string, value float64) bool {
	p := r.Get(id)
	if p == nil {
		return false
	}
	p.SetValue(value)
	return true
}

// Format returns the display text for a normalized value of parameter id.
func (r *Registry) Format(id string, normalized float64) (string, bool) {
	p := r.Get(id)
	if p == nil {
		return "", false
	}
	return p.FormatValue(normalized), true
}

// Snapshot copies every parameter's current value in registration order.
func (r *Registry) Snapshot() []Snapshot {
	params := r.All()
	result := make([]Snapshot, len(params))
	for i, p := range params {
		v := p.GetValue()
		result[i] = Snapshot{
			ID:    p.ID,
			Name:  p.Name,
			Value: v,
			Text:  p.FormatValue(v),
		}
	}
	return result
}
