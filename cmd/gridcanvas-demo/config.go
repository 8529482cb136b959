package main

import (
	_ "embed"
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/charmbracelet/bubbles/key"

	"github.com/iw2rmb/gridcanvas/view"
)

//go:embed gridcanvas.default.json
var defaultConfigJSON []byte

// Config holds the demo configuration.
type Config struct {
	Keys KeyMapConfig `json:"keys"`
}

// KeyMapConfig defines key bindings in config file format.
type KeyMapConfig struct {
	Up    []string `json:"up"`
	Down  []string `json:"down"`
	Left  []string `json:"left"`
	Right []string `json:"right"`

	ExtendUp    []string `json:"extend_up"`
	ExtendDown  []string `json:"extend_down"`
	ExtendLeft  []string `json:"extend_left"`
	ExtendRight []string `json:"extend_right"`

	Edit     []string `json:"edit"`
	Commit   []string `json:"commit"`
	Cancel   []string `json:"cancel"`
	NextCell []string `json:"next_cell"`
	Clear    []string `json:"clear"`

	Undo []string `json:"undo"`
	Redo []string `json:"redo"`
	Quit []string `json:"quit"`
	Help []string `json:"help"`
}

// LoadConfig loads configuration from the first config file found, trying
// path first when set. It falls back to the embedded default.
func LoadConfig(path string) (Config, error) {
	if path != "" {
		return loadConfigFile(path)
	}

	home, _ := os.UserHomeDir()
	if home != "" {
		if cfg, err := loadConfigFile(filepath.Join(home, ".config", "gridcanvas", "gridcanvas.json")); err == nil {
			return cfg, nil
		}
	}
	return defaultConfig(), nil
}

func defaultConfig() Config {
	var cfg Config
	if err := json.Unmarshal(defaultConfigJSON, &cfg); err != nil {
		panic("embedded default config is invalid: " + err.Error())
	}
	return cfg
}

func loadConfigFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}

	// Keys missing from the file keep their default bindings.
	cfg := defaultConfig()
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// ToKeyMap converts config to the grid key map.
func (c *Config) ToKeyMap() view.KeyMap {
	k := c.Keys
	return view.KeyMap{
		Up:    binding(k.Up, "up"),
		Down:  binding(k.Down, "down"),
		Left:  binding(k.Left, "left"),
		Right: binding(k.Right, "right"),

		ExtendUp:    binding(k.ExtendUp, "extend up"),
		ExtendDown:  binding(k.ExtendDown, "extend down"),
		ExtendLeft:  binding(k.ExtendLeft, "extend left"),
		ExtendRight: binding(k.ExtendRight, "extend right"),

		Edit:     binding(k.Edit, "edit cell"),
		Commit:   binding(k.Commit, "commit"),
		Cancel:   binding(k.Cancel, "discard"),
		NextCell: binding(k.NextCell, "commit and move right"),
		Clear:    binding(k.Clear, "clear selection"),

		Undo: binding(k.Undo, "undo"),
		Redo: binding(k.Redo, "redo"),
	}
}

// QuitBinding returns the binding that exits the demo.
func (c *Config) QuitBinding() key.Binding { return binding(c.Keys.Quit, "quit") }

// HelpBinding returns the binding that toggles the full key help.
func (c *Config) HelpBinding() key.Binding { return binding(c.Keys.Help, "keys") }

// binding creates a key binding, returning a disabled binding if keys is empty.
func binding(keys []string, help string) key.Binding {
	if len(keys) == 0 {
		return key.NewBinding(key.WithDisabled())
	}
	return key.NewBinding(
		key.WithKeys(keys...),
		key.WithHelp(keys[0], help),
	)
}
