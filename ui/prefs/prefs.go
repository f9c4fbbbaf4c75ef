// Package prefs provides JSON-based application preferences.
package prefs

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
)

const prefsFile = "preferences.json"

// Prefs stores user preferences for the annotation UI.
type Prefs struct {
	mu   sync.RWMutex
	path string

	// Values is the persisted preference set.
	Values Values
}

// Values are the persisted preference fields.
type Values struct {
	WindowWidth   int     `json:"window_width"`
	WindowHeight  int     `json:"window_height"`
	LastZoom      float64 `json:"last_zoom"`
	Unit          string  `json:"unit"`
	ShowHidden    bool    `json:"show_hidden"`
	LastSaveDir   string  `json:"last_save_dir,omitempty"`
	LastOpenedDoc string  `json:"last_opened_doc,omitempty"`
}

// defaults returns the preference values for a fresh installation.
func defaults() Values {
	return Values{
		WindowWidth:  1200,
		WindowHeight: 800,
		LastZoom:     1.0,
		Unit:         "mm",
		ShowHidden:   true,
	}
}

// Load reads preferences from ~/.config/techdraw/preferences.json.
// Returns defaults if the file doesn't exist.
func Load() *Prefs {
	p := &Prefs{Values: defaults()}

	configDir, err := os.UserConfigDir()
	if err != nil {
		configDir = filepath.Join(os.Getenv("HOME"), ".config")
	}
	dir := filepath.Join(configDir, "techdraw")
	p.path = filepath.Join(dir, prefsFile)

	data, err := os.ReadFile(p.path)
	if err != nil {
		return p
	}
	_ = json.Unmarshal(data, &p.Values)
	return p
}

// Save writes preferences to disk, creating the config directory if
// needed.
func (p *Prefs) Save() error {
	p.mu.RLock()
	data, err := json.MarshalIndent(p.Values, "", "  ")
	p.mu.RUnlock()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(p.path), 0755); err != nil {
		return err
	}
	return os.WriteFile(p.path, data, 0644)
}

// Update applies a mutation under the lock.
func (p *Prefs) Update(fn func(*Values)) {
	p.mu.Lock()
	defer p.mu.Unlock()
	fn(&p.Values)
}
