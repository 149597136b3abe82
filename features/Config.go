package features

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Config is the serializable description of a Table. Features are
// listed in channel order; the channel index of a feature is its
// position in the list.
type Config struct {
	Name     string          `yaml:"name" toml:"name"`
	Features []FeatureConfig `yaml:"features" toml:"features"`
}

// FeatureConfig is the serializable description of a single Feature
type FeatureConfig struct {
	Name  string `yaml:"name" toml:"name"`
	Type  string `yaml:"type" toml:"type"`
	Scale int    `yaml:"scale" toml:"scale"`
}

// Table converts the Config into a validated Table
func (c Config) Table() (Table, error) {
	fs := make([]Feature, len(c.Features))
	for i, f := range c.Features {
		typ, err := ParseFeatureType(f.Type)
		if err != nil {
			return Table{}, fmt.Errorf("table: feature %q: %v", f.Name, err)
		}
		fs[i] = Feature{Index: i, Name: f.Name, Type: typ, Scale: f.Scale}
	}
	return NewTable(c.Name, fs)
}

// ConfigOf returns the Config describing a Table
func ConfigOf(t Table) Config {
	fs := make([]FeatureConfig, t.Len())
	for i := 0; i < t.Len(); i++ {
		f := t.At(i)
		fs[i] = FeatureConfig{
			Name:  f.Name,
			Type:  strings.ToLower(f.Type.String()),
			Scale: f.Scale,
		}
	}
	return Config{Name: t.Name(), Features: fs}
}

// LoadTable reads a Table description from a YAML (.yaml, .yml) or
// TOML (.toml) file
func LoadTable(path string) (Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Table{}, fmt.Errorf("loadtable: %w", err)
	}

	var c Config
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &c)
	case ".toml":
		err = toml.Unmarshal(data, &c)
	default:
		return Table{}, fmt.Errorf("loadtable: unsupported config "+
			"extension %q", ext)
	}
	if err != nil {
		return Table{}, fmt.Errorf("loadtable: could not decode %v: %w",
			path, err)
	}

	if c.Name == "" {
		c.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}

	t, err := c.Table()
	if err != nil {
		return Table{}, fmt.Errorf("loadtable: %w", err)
	}
	return t, nil
}
