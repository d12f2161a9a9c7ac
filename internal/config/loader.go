package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// File is the on-disk YAML overlay. Every key is optional; unset keys keep
// the value of the configuration being overlaid.
type File struct {
	AssetRoot  string            `yaml:"asset_root,omitempty"`
	OutputPath string            `yaml:"output_path,omitempty"`
	Extensions StringOrArray     `yaml:"extensions,omitempty"`
	MIMETypes  map[string]string `yaml:"mime_types,omitempty"`
}

// StringOrArray accepts either a single YAML string or a sequence of strings.
type StringOrArray []string

// UnmarshalYAML implements custom YAML unmarshaling for StringOrArray.
func (s *StringOrArray) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		var str string

		err := node.Decode(&str)
		if err != nil {
			return err
		}

		if str != "" {
			*s = StringOrArray{str}
		} else {
			*s = StringOrArray{}
		}

		return nil

	case yaml.SequenceNode:
		var arr []string

		err := node.Decode(&arr)
		if err != nil {
			return err
		}

		*s = arr

		return nil

	default:
		return fmt.Errorf("expected string or array, got %v", node.Kind)
	}
}

// LoadFile reads the YAML overlay at path and applies it on top of base.
// base itself is left untouched.
func LoadFile(path string, base *Config) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	return Parse(data, base)
}

// Parse parses YAML data and applies it on top of base.
func Parse(data []byte, base *Config) (*Config, error) {
	var f File

	err := yaml.Unmarshal(data, &f)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config YAML: %w", err)
	}

	cfg := base.Clone()
	f.apply(cfg)
	cfg.Normalize()

	return cfg, nil
}

func (f *File) apply(cfg *Config) {
	if f.AssetRoot != "" {
		cfg.AssetRoot = f.AssetRoot
	}

	if f.OutputPath != "" {
		cfg.OutputPath = f.OutputPath
	}

	// An explicit list replaces the defaults; MIME entries merge.
	if f.Extensions != nil {
		cfg.SupportedExtensions = append([]string{}, f.Extensions...)
	}

	if len(f.MIMETypes) > 0 && cfg.MIMETypes == nil {
		cfg.MIMETypes = make(map[string]string, len(f.MIMETypes))
	}

	for ext, mime := range f.MIMETypes {
		cfg.MIMETypes[strings.ToLower(withDot(strings.TrimSpace(ext)))] = mime
	}
}
