package state

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// File is the YAML form of a single player's collection.
type File struct {
	Player int         `yaml:"player"`
	Items  []FileEntry `yaml:"items"`
}

// FileEntry is an owned item and how many copies are held.
type FileEntry struct {
	Name  string `yaml:"name"`
	Count int    `yaml:"count,omitempty"`
}

// Load reads a state file into a new collection and returns the player index.
func Load(path string) (*Collection, int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, 0, err
	}
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, 0, fmt.Errorf("parse state YAML: %w", err)
	}
	c := New()
	for _, e := range f.Items {
		n := e.Count
		if n == 0 {
			n = 1
		}
		c.CollectN(f.Player, e.Name, n)
	}
	return c, f.Player, nil
}

// Save writes a player's collection as a state file.
func (c *Collection) Save(path string, player int) error {
	data, err := c.Marshal(player)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// Marshal encodes a player's collection in state file form.
func (c *Collection) Marshal(player int) ([]byte, error) {
	f := File{Player: player}
	for _, name := range c.Owned(player) {
		e := FileEntry{Name: name}
		if n := c.Count(name, player); n > 1 {
			e.Count = n
		}
		f.Items = append(f.Items, e)
	}
	return yaml.Marshal(f)
}
