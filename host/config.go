// Package host holds the parts of the desktop front end that do not need a
// window: configuration and screenshots.
package host

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
)

const (
	DefaultScale = 3
	maxScale     = 8
)

// KeyMap names the keyboard key bound to each pad button.
type KeyMap struct {
	A      string `json:"a"`
	B      string `json:"b"`
	Select string `json:"select"`
	Start  string `json:"start"`
	Up     string `json:"up"`
	Down   string `json:"down"`
	Left   string `json:"left"`
	Right  string `json:"right"`
}

type Config struct {
	ROM     string `json:"rom"`
	Scale   int    `json:"scale"`
	ShowHUD bool   `json:"show_hud"`
	Keys    KeyMap `json:"keys"`
}

func DefaultConfig() *Config {
	return &Config{
		Scale: DefaultScale,
		Keys: KeyMap{
			A:      "X",
			B:      "Z",
			Select: "A",
			Start:  "S",
			Up:     "ArrowUp",
			Down:   "ArrowDown",
			Left:   "ArrowLeft",
			Right:  "ArrowRight",
		},
	}
}

// LoadConfig reads a JSON config over the defaults. A missing file is not
// an error.
func LoadConfig(path string) (*Config, error) {
	c := DefaultConfig()
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return c, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	if err := json.Unmarshal(data, c); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}
	c.validate()
	return c, nil
}

// SetScale sets the window scale, clamped to the supported range.
func (c *Config) SetScale(scale int) {
	switch {
	case scale <= 0:
		c.Scale = DefaultScale
	case scale > maxScale:
		c.Scale = maxScale
	default:
		c.Scale = scale
	}
}

func (c *Config) validate() {
	c.SetScale(c.Scale)
	defaults := DefaultConfig().Keys
	fill := func(key *string, def string) {
		if *key == "" {
			*key = def
		}
	}
	fill(&c.Keys.A, defaults.A)
	fill(&c.Keys.B, defaults.B)
	fill(&c.Keys.Select, defaults.Select)
	fill(&c.Keys.Start, defaults.Start)
	fill(&c.Keys.Up, defaults.Up)
	fill(&c.Keys.Down, defaults.Down)
	fill(&c.Keys.Left, defaults.Left)
	fill(&c.Keys.Right, defaults.Right)
}
