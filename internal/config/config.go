// Package config loads the YAML configuration of the livemark command.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"sort"

	"go.uber.org/multierr"
	"golang.org/x/net/html/atom"
	yaml "gopkg.in/yaml.v3"

	"github.com/iw2rmb/livemark/markup"
	"github.com/iw2rmb/livemark/preview"
	"github.com/iw2rmb/livemark/syntax"
)

type (
	TagConfig struct {
		Render      string `yaml:"render"`
		Class       string `yaml:"class,omitempty"`
		SelfClosing bool   `yaml:"self_closing,omitempty"`
	}

	NodeConfig struct {
		Render string `yaml:"render"`
	}

	ImagesConfig struct {
		// Root resolves relative embed targets. Empty means the directory of
		// the document.
		Root string `yaml:"root,omitempty"`
		// Check enables load checks of embed targets.
		Check bool `yaml:"check"`
	}

	Config struct {
		Tags   map[string]TagConfig  `yaml:"tags,omitempty"`
		Nodes  map[string]NodeConfig `yaml:"nodes,omitempty"`
		Images ImagesConfig          `yaml:"images"`
	}
)

var tagNameRE = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)

// Default returns the configuration used without a file.
func Default() *Config {
	return &Config{Images: ImagesConfig{Check: true}}
}

// Load reads the configuration at path over the defaults. An empty path
// returns the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	if err := Decode(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to process configuration file: %w", err)
	}
	return cfg, nil
}

// Decode unmarshals data into cfg, rejecting unknown fields, and validates
// the result.
func Decode(data []byte, cfg *Config) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("failed to decode configuration data: %w", err)
	}
	return cfg.Validate()
}

// Validate reports every invalid entry at once.
func (c *Config) Validate() (err error) {
	for _, name := range sortedKeys(c.Tags) {
		tc := c.Tags[name]
		if !tagNameRE.MatchString(name) {
			err = multierr.Append(err, fmt.Errorf("tag %q: invalid tag name", name))
		}
		if !knownElement(tc.Render) {
			err = multierr.Append(err, fmt.Errorf("tag %q: unknown element %q", name, tc.Render))
		}
	}
	for _, name := range sortedKeys(c.Nodes) {
		if !markup.KnownNodeType(name) {
			err = multierr.Append(err, fmt.Errorf("node %q: unknown node type", name))
		}
		if !knownElement(c.Nodes[name].Render) {
			err = multierr.Append(err, fmt.Errorf("node %q: unknown element %q", name, c.Nodes[name].Render))
		}
	}
	return err
}

func knownElement(name string) bool {
	return name != "" && atom.Lookup([]byte(name)) != 0
}

// Markup converts the tag and node entries into render overrides.
func (c *Config) Markup() markup.Config {
	out := markup.Config{
		Nodes: make(map[string]markup.NodeSchema, len(c.Nodes)),
		Tags:  make(map[string]markup.TagSchema, len(c.Tags)),
	}
	for name, nc := range c.Nodes {
		out.Nodes[name] = markup.NodeSchema{Render: nc.Render}
	}
	for name, tc := range c.Tags {
		out.Tags[name] = tc.schema()
	}
	return out
}

func (tc TagConfig) schema() markup.TagSchema {
	return markup.TagSchema{
		Render: tc.Render,
		Transform: func(n *markup.Node, cfg markup.Config) markup.Renderable {
			attrs := append([]syntax.Attribute(nil), n.Attributes...)
			if tc.Class != "" {
				attrs = append(attrs, syntax.Attribute{Key: "class", Value: tc.Class})
			}
			el := &markup.Element{Name: tc.Render, Attributes: attrs}
			if !tc.SelfClosing {
				el.Children = n.TransformChildren(cfg)
			}
			return el
		},
	}
}

// ImageLoader returns the loader for documents stored next to docPath, or
// nil when load checks are disabled.
func (c *Config) ImageLoader(docPath string) preview.ImageLoader {
	if !c.Images.Check {
		return nil
	}
	root := c.Images.Root
	if root == "" {
		root = filepath.Dir(docPath)
	}
	return preview.FileImageLoader{Root: root}
}

// Dump marshals cfg back to YAML.
func Dump(cfg *Config) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal config to yaml: %w", err)
	}
	return data, nil
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
