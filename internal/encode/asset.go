package encode

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"asset-packer/internal/config"
)

// AssetFile is a discovered file read from disk.
type AssetFile struct {
	// Path is the path as discovered, including the asset root.
	Path string
	// RelPath is Path relative to the asset root.
	RelPath string
	// Data is the raw file content.
	Data []byte
	// Identifier is the C identifier stem derived from RelPath.
	Identifier string
	// MIME is the content type derived from the extension.
	MIME string
}

// CompressedAsset is an AssetFile after compression.
type CompressedAsset struct {
	Identifier string
	RelPath    string
	// Data holds a single gzip member.
	Data []byte
	MIME string
	// RawLen is the size of the uncompressed file.
	RawLen int
}

// Len returns the compressed byte count declared as <id>_gz_len.
func (a *CompressedAsset) Len() int {
	return len(a.Data)
}

// ArrayName returns the name of the byte array declaration.
func (a *CompressedAsset) ArrayName() string {
	return a.Identifier + "_gz"
}

// Identifier derives the C identifier stem for a path relative to the asset
// root: path separators and dots become underscores. Nothing else is
// sanitized, so a leading digit or a dash survives as is.
func Identifier(relPath string) string {
	id := filepath.ToSlash(relPath)
	id = strings.ReplaceAll(id, "/", "_")

	return strings.ReplaceAll(id, ".", "_")
}

// Read loads path and classifies it. path must live under cfg.AssetRoot.
func Read(cfg *config.Config, path string) (*AssetFile, error) {
	rel, err := filepath.Rel(cfg.AssetRoot, path)
	if err != nil {
		return nil, fmt.Errorf("relative path of %s: %w", path, err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading asset %s: %w", path, err)
	}

	return &AssetFile{
		Path:       path,
		RelPath:    rel,
		Data:       data,
		Identifier: Identifier(rel),
		MIME:       cfg.MIMEType(path),
	}, nil
}

// Compress produces the CompressedAsset for f. f is not modified.
func (f *AssetFile) Compress() (*CompressedAsset, error) {
	compressed, err := Compress(f.Data)
	if err != nil {
		return nil, fmt.Errorf("compressing %s: %w", f.RelPath, err)
	}

	return &CompressedAsset{
		Identifier: f.Identifier,
		RelPath:    f.RelPath,
		Data:       compressed,
		MIME:       f.MIME,
		RawLen:     len(f.Data),
	}, nil
}

// Encode reads, compresses and classifies a single asset.
func Encode(cfg *config.Config, path string) (*CompressedAsset, error) {
	f, err := Read(cfg, path)
	if err != nil {
		return nil, err
	}

	return f.Compress()
}
