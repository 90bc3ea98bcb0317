// Package plugin holds the plugin-wide objects an editor is built from.
package plugin

import "errors"

// Info contains plugin metadata, exposed to the editor page as
// window.plugin.info.
type Info struct {
	ID       string `json:"id"`       // Unique plugin identifier (e.g., "com.example.myplugin")
	Name     string `json:"name"`     // Display name
	Version  string `json:"version"`  // Semantic version (e.g., "1.0.0")
	Vendor   string `json:"vendor"`   // Company/developer name
	Category string `json:"category"` // Plugin category (e.g., "Fx", "Instrument")
}

// Validate checks the fields every plugin must set.
func (i Info) Validate() error {
	if i.ID == "" {
		return errors.New("plugin info: missing id")
	}
	if i.Name == "" {
		return errors.New("plugin info: missing name")
	}
	return nil
}
