package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, filepath.Join("src", "webUI"), cfg.AssetRoot)
	assert.Equal(t, filepath.Join("src", "www.h"), cfg.OutputPath)
	assert.Equal(t, []string{".html", ".js", ".css", ".svg", ".ico", ".png"}, cfg.SupportedExtensions)
	assert.Len(t, cfg.MIMETypes, 10)
	assert.True(t, cfg.Validate().IsValid())
}

func TestMIMEType(t *testing.T) {
	cfg := Default()

	tests := []struct {
		name string
		want string
	}{
		{"index.html", "text/html"},
		{"legacy.htm", "text/html"},
		{"app.js", "text/javascript"},
		{"style.min.css", "text/css"},
		{"logo.svg", "image/svg+xml"},
		{"favicon.ico", "image/x-icon"},
		{"photo.JPG", "image/jpeg"},
		{"photo.jpeg", "image/jpeg"},
		{"data.json", "application/json"},
		{"INDEX.HTML", "text/html"},
		{"blob.xyz", DefaultMIMEType},
		{"Makefile", DefaultMIMEType},
		{filepath.Join("sub", "dir", "bg.png"), "image/png"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, cfg.MIMEType(tt.name))
		})
	}
}

func TestSupports(t *testing.T) {
	cfg := Default()

	assert.True(t, cfg.Supports("index.html"))
	assert.True(t, cfg.Supports("style.min.css"))
	assert.False(t, cfg.Supports("data.json"))
	assert.False(t, cfg.Supports("README"))
	// Matching is case-sensitive, like shell globs.
	assert.False(t, cfg.Supports("INDEX.HTML"))
}

func TestNormalize(t *testing.T) {
	cfg := &Config{
		AssetRoot:           "web",
		OutputPath:          "out.h",
		SupportedExtensions: []string{"html", " .js "},
		MIMETypes:           map[string]string{"WASM": "application/wasm", ".Txt": "text/plain"},
	}

	cfg.Normalize()

	assert.Equal(t, []string{".html", ".js"}, cfg.SupportedExtensions)
	assert.Equal(t, map[string]string{".wasm": "application/wasm", ".txt": "text/plain"}, cfg.MIMETypes)
}

func TestValidate(t *testing.T) {
	cfg := &Config{
		SupportedExtensions: []string{""},
		MIMETypes:           map[string]string{".a": ""},
	}

	diags := cfg.Validate()
	require.True(t, diags.HasErrors())

	var codes []string
	for _, d := range diags.Errors {
		codes = append(codes, d.Code)
	}

	assert.Equal(t, []string{"empty_asset_root", "empty_output_path", "empty_extension", "empty_mime_type"}, codes)

	cfg.SupportedExtensions = nil
	assert.Equal(t, "no_extensions", cfg.Validate().Errors[2].Code)
}

func TestValidate_MIMELiteral(t *testing.T) {
	tests := []struct {
		name string
		mime string
		ok   bool
	}{
		{"plain", "application/wasm", true},
		{"with parameter", "text/html; charset=utf-8", true},
		{"quote", `text/"html`, false},
		{"backslash", `text\html`, false},
		{"newline", "text/html\nX", false},
		{"carriage return", "text/html\r", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			cfg.MIMETypes[".x"] = tt.mime

			diags := cfg.Validate()
			if tt.ok {
				assert.True(t, diags.IsValid(), diags.Error())
				return
			}

			require.Len(t, diags.Errors, 1)
			assert.Equal(t, "invalid_mime_type", diags.Errors[0].Code)
		})
	}
}

func TestParse_MIMEBreakingLiteralRejected(t *testing.T) {
	cfg, err := Parse([]byte("mime_types:\n  x: \"text/plain\\\";\"\n"), Default())
	require.NoError(t, err)
	assert.Equal(t, `text/plain";`, cfg.MIMETypes[".x"])
	assert.False(t, cfg.Validate().IsValid())
}

func TestClone(t *testing.T) {
	base := Default()
	clone := base.Clone()

	clone.SupportedExtensions[0] = ".htm"
	clone.MIMETypes[".css"] = "text/plain"

	assert.Equal(t, ".html", base.SupportedExtensions[0])
	assert.Equal(t, "text/css", base.MIMETypes[".css"])
}

func TestParse(t *testing.T) {
	yaml := `
asset_root: firmware/ui
output_path: firmware/include/www.h
extensions: [html, .js, .wasm]
mime_types:
  wasm: application/wasm
  .JS: application/javascript
`

	base := Default()

	cfg, err := Parse([]byte(yaml), base)
	require.NoError(t, err)

	assert.Equal(t, "firmware/ui", cfg.AssetRoot)
	assert.Equal(t, "firmware/include/www.h", cfg.OutputPath)
	assert.Equal(t, []string{".html", ".js", ".wasm"}, cfg.SupportedExtensions)
	assert.Equal(t, "application/wasm", cfg.MIMEType("app.wasm"))
	assert.Equal(t, "application/javascript", cfg.MIMEType("app.js"))
	// Untouched defaults survive the merge.
	assert.Equal(t, "text/css", cfg.MIMEType("style.css"))

	// The base configuration is not modified.
	assert.Equal(t, filepath.Join("src", "webUI"), base.AssetRoot)
	assert.Equal(t, "text/javascript", base.MIMEType("app.js"))
}

func TestParse_ScalarExtension(t *testing.T) {
	cfg, err := Parse([]byte("extensions: .html\n"), Default())
	require.NoError(t, err)

	assert.Equal(t, []string{".html"}, cfg.SupportedExtensions)
	assert.Equal(t, filepath.Join("src", "webUI"), cfg.AssetRoot)
}

func TestParse_Empty(t *testing.T) {
	cfg, err := Parse(nil, Default())
	require.NoError(t, err)

	assert.Equal(t, Default(), cfg)
}

func TestParse_Invalid(t *testing.T) {
	_, err := Parse([]byte("extensions: {a: b}\n"), Default())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse config YAML")

	_, err = Parse([]byte("asset_root: [\n"), Default())
	require.Error(t, err)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "packer.yaml")
	require.NoError(t, os.WriteFile(path, []byte("asset_root: assets\n"), 0o600))

	cfg, err := LoadFile(path, Default())
	require.NoError(t, err)
	assert.Equal(t, "assets", cfg.AssetRoot)

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.yaml"), Default())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config file")
}
