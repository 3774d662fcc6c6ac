// config.go -- generator configuration file
//
// (c) 2025 Sudhi Herle <sudhi@herle.net>
//
// Licensing Terms: GPLv2
//
// If you need a commercial license for this work, please contact
// the author.
//
// This software does not come with any express or implied
// warranty; it is provided "as is". No claim  is made to its
// suitability for any purpose.

// Package config reads the YAML file that describes a generator run:
//
//	package: ./wire
//	output: wire_endian.go
//	tags: [linux]
//	build-tag: "!purego"
//	types:
//	  - Header
//	  - Record
//	verbose: 1
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v2"
)

var ErrNoTypes = errors.New("config: no types listed")

// Config describes one generator run
type Config struct {
	// Package directory; defaults to the current directory
	Package string `yaml:"package"`

	// Output file; defaults to <first type>_endian.go in Package
	Output string `yaml:"output"`

	// Build tags used to load the package
	Tags []string `yaml:"tags,omitempty"`

	// Build constraint written into the output
	BuildTag string `yaml:"build-tag,omitempty"`

	// Types to generate, in order
	Types []string `yaml:"types"`

	// klog verbosity
	Verbose int `yaml:"verbose,omitempty"`
}

// Load reads and parses the config file fn
func Load(fn string) (*Config, error) {
	b, err := os.ReadFile(fn)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	c, err := Parse(b)
	if err != nil {
		return nil, fmt.Errorf("config: %s: %w", fn, err)
	}

	// relative package dirs are relative to the config file
	if len(c.Package) > 0 && !filepath.IsAbs(c.Package) {
		c.Package = filepath.Join(filepath.Dir(fn), c.Package)
	}
	return c, nil
}

// Parse parses a YAML config
func Parse(b []byte) (*Config, error) {
	var c Config

	if err := yaml.UnmarshalStrict(b, &c); err != nil {
		return nil, err
	}

	c.Types = splitList(c.Types)
	return &c, nil
}

// Validate fills in defaults and rejects an unusable config
func (c *Config) Validate() error {
	c.Types = splitList(c.Types)
	if len(c.Types) == 0 {
		return ErrNoTypes
	}

	if len(c.Package) == 0 {
		c.Package = "."
	}
	return nil
}

// OutputFile returns the path of the generated file
func (c *Config) OutputFile() string {
	if len(c.Output) > 0 {
		if filepath.IsAbs(c.Output) {
			return c.Output
		}
		return filepath.Join(c.Package, c.Output)
	}

	var nm string
	if len(c.Types) > 0 {
		nm = strings.ToLower(c.Types[0])
	}
	return filepath.Join(c.Package, nm+"_endian.go")
}

// Marshal returns the config as YAML
func (c *Config) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}

// splitList flattens comma separated entries and drops empty ones
func splitList(v []string) []string {
	var r []string
	for _, s := range v {
		for _, x := range strings.Split(s, ",") {
			if x = strings.TrimSpace(x); len(x) > 0 {
				r = append(r, x)
			}
		}
	}
	return r
}
