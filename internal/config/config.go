package config

import (
	"fmt"
	"maps"
	"path/filepath"
	"slices"
	"strings"

	"asset-packer/internal/diagnostic"
)

// DefaultMIMEType is returned for extensions missing from the MIME table.
const DefaultMIMEType = "application/octet-stream"

// unsafeMIMEChars cannot appear inside the generated C string literal.
const unsafeMIMEChars = "\"\\\n\r\t\x00"

// Config is the packer configuration.
type Config struct {
	// AssetRoot is the directory scanned for assets.
	AssetRoot string
	// OutputPath is the generated header, overwritten on every run.
	OutputPath string
	// SupportedExtensions lists the packed extensions (".html", ".js", ...).
	SupportedExtensions []string
	// MIMETypes maps a lowercase extension to its MIME type.
	MIMETypes map[string]string
}

// Default returns the configuration the firmware build expects.
func Default() *Config {
	return &Config{
		AssetRoot:           filepath.Join("src", "webUI"),
		OutputPath:          filepath.Join("src", "www.h"),
		SupportedExtensions: []string{".html", ".js", ".css", ".svg", ".ico", ".png"},
		MIMETypes: map[string]string{
			".css":  "text/css",
			".htm":  "text/html",
			".html": "text/html",
			".ico":  "image/x-icon",
			".jpeg": "image/jpeg",
			".jpg":  "image/jpeg",
			".js":   "text/javascript",
			".json": "application/json",
			".png":  "image/png",
			".svg":  "image/svg+xml",
		},
	}
}

// Clone returns a deep copy of c.
func (c *Config) Clone() *Config {
	return &Config{
		AssetRoot:           c.AssetRoot,
		OutputPath:          c.OutputPath,
		SupportedExtensions: slices.Clone(c.SupportedExtensions),
		MIMETypes:           maps.Clone(c.MIMETypes),
	}
}

// Normalize puts extensions into canonical form: a leading dot, and lowercase
// keys for the MIME table. Supported extensions keep their case since they
// are matched against file names verbatim.
func (c *Config) Normalize() {
	for i, ext := range c.SupportedExtensions {
		c.SupportedExtensions[i] = withDot(strings.TrimSpace(ext))
	}

	if len(c.MIMETypes) == 0 {
		return
	}

	normalized := make(map[string]string, len(c.MIMETypes))
	for ext, mime := range c.MIMETypes {
		normalized[strings.ToLower(withDot(strings.TrimSpace(ext)))] = mime
	}

	c.MIMETypes = normalized
}

// Validate reports structural problems with the configuration.
func (c *Config) Validate() *diagnostic.Diagnostics {
	res := &diagnostic.Diagnostics{}

	if c.AssetRoot == "" {
		res.AddError("empty_asset_root", "asset root is empty", "asset_root")
	}

	if c.OutputPath == "" {
		res.AddError("empty_output_path", "output path is empty", "output_path")
	}

	if len(c.SupportedExtensions) == 0 {
		res.AddError("no_extensions", "no supported extensions configured", "extensions")
	}

	for _, ext := range c.SupportedExtensions {
		if ext == "" || ext == "." {
			res.AddError("empty_extension", "extension list contains an empty entry", "extensions")
		}
	}

	// Sorted iteration to keep the report stable.
	for _, ext := range slices.Sorted(maps.Keys(c.MIMETypes)) {
		mime := c.MIMETypes[ext]
		switch {
		case mime == "":
			res.AddError("empty_mime_type", fmt.Sprintf("MIME type for %q is empty", ext), "mime_types")
		case strings.ContainsAny(mime, unsafeMIMEChars):
			// The value is emitted verbatim inside a C string literal.
			res.AddError("invalid_mime_type", fmt.Sprintf("MIME type %q for %q contains a quote, backslash or control character", mime, ext), "mime_types")
		}
	}

	return res
}

// MIMEType classifies name by its lowercased extension.
func (c *Config) MIMEType(name string) string {
	ext := strings.ToLower(filepath.Ext(name))
	if mime, ok := c.MIMETypes[ext]; ok {
		return mime
	}

	return DefaultMIMEType
}

// Supports reports whether name ends with one of the supported extensions.
func (c *Config) Supports(name string) bool {
	ext := filepath.Ext(name)

	return ext != "" && slices.Contains(c.SupportedExtensions, ext)
}

func withDot(ext string) string {
	if ext == "" || strings.HasPrefix(ext, ".") {
		return ext
	}

	return "." + ext
}
