// Package config loads the fbt configuration file.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/cwbudde/algo-hankel/hankel"
)

// File mirrors the YAML document. Unset keys stay nil so that defaults and
// flags can be layered on top.
type File struct {
	Order    *float64 `yaml:"order"`
	Nodes    *int     `yaml:"nodes"`
	Scale    *float64 `yaml:"scale"`
	LogLevel *string  `yaml:"log_level"`
}

// LoadError reports a configuration file that cannot be read or decoded.
type LoadError struct {
	Op   string
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// Load reads and decodes the file at path. Unknown keys are rejected.
func Load(path string) (File, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return File{}, &LoadError{Op: "config.read", Path: path, Err: err}
	}

	f, err := Decode(bytes.NewReader(b))
	if err != nil {
		return File{}, &LoadError{Op: "config.decode", Path: path, Err: err}
	}

	return f, nil
}

// Decode parses a YAML document. An empty document yields an empty File.
func Decode(r io.Reader) (File, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var f File
	if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
		return File{}, err
	}

	return f, nil
}

// Apply overlays the keys present in f onto cfg.
func (f File) Apply(cfg hankel.Config) hankel.Config {
	if f.Order != nil {
		cfg.Order = *f.Order
	}

	if f.Nodes != nil {
		cfg.Nodes = *f.Nodes
	}

	if f.Scale != nil {
		cfg.Scale = *f.Scale
	}

	return cfg
}

// Level returns the configured log level name, or "" if unset.
func (f File) Level() string {
	if f.LogLevel == nil {
		return ""
	}

	return *f.LogLevel
}
