package emit

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"slices"

	"asset-packer/internal/encode"
)

// Staleness compares a freshly rendered header with the one on disk.
type Staleness struct {
	// Missing is set when there is no file at the output path.
	Missing bool
	// Added lists identifiers present only in the fresh header.
	Added []string
	// Removed lists identifiers present only on disk.
	Removed []string
	// Changed lists identifiers whose payload or MIME type differ.
	Changed []string
	// Differs is set whenever the two files are not byte-identical, even if
	// no block-level difference was found.
	Differs bool
}

// Fresh reports whether the file on disk matches exactly.
func (s *Staleness) Fresh() bool {
	return !s.Missing && !s.Differs
}

// Check compares content with the file at path without modifying it.
func Check(path string, content []byte) (*Staleness, error) {
	existing, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return &Staleness{Missing: true, Differs: true}, nil
	}

	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	st := &Staleness{Differs: !bytes.Equal(existing, content)}
	if !st.Differs {
		return st, nil
	}

	// An unparseable file on disk is simply stale.
	oldBlocks, err := encode.ParseBlocks(string(existing))
	if err != nil {
		return st, nil
	}

	newBlocks, err := encode.ParseBlocks(string(content))
	if err != nil {
		return nil, fmt.Errorf("parsing rendered header: %w", err)
	}

	oldByID := indexBlocks(oldBlocks)
	newByID := indexBlocks(newBlocks)

	for id, nb := range newByID {
		ob, ok := oldByID[id]
		switch {
		case !ok:
			st.Added = append(st.Added, id)
		case ob.MIME != nb.MIME || !bytes.Equal(ob.Data, nb.Data):
			st.Changed = append(st.Changed, id)
		}
	}

	for id := range oldByID {
		if _, ok := newByID[id]; !ok {
			st.Removed = append(st.Removed, id)
		}
	}

	slices.Sort(st.Added)
	slices.Sort(st.Removed)
	slices.Sort(st.Changed)

	return st, nil
}

func indexBlocks(blocks []encode.ParsedBlock) map[string]encode.ParsedBlock {
	idx := make(map[string]encode.ParsedBlock, len(blocks))
	for _, b := range blocks {
		idx[b.Identifier] = b
	}

	return idx
}
