package lsh

import (
	"encoding/gob"
	"os"
	"path/filepath"
)

// snapshot is the serialized form. Buckets are rebuilt on load; persisting
// signatures alone keeps the file roughly a third of the in-memory size.
type snapshot struct {
	Entries []Entry
}

// IndexPath returns the canonical index location: {db_root}/lsh/{db_name}.gob
func IndexPath(dbRoot, dbName string) string {
	return filepath.Join(dbRoot, "lsh", dbName+".gob")
}

// Save writes the index to path, creating parent directories.
func (ix *Index) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	ix.mu.RLock()
	snap := snapshot{Entries: ix.Entries}
	ix.mu.RUnlock()

	tmp := path + ".tmp"
	f, err := os.Create(tmp)
	if err != nil {
		return err
	}
	if err := gob.NewEncoder(f).Encode(snap); err != nil {
		f.Close()
		os.Remove(tmp)
		return err
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return err
	}
	return os.Rename(tmp, path)
}

// Load reads an index from path and rebuilds the band buckets.
func Load(path string) (*Index, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var snap snapshot
	if err := gob.NewDecoder(f).Decode(&snap); err != nil {
		return nil, err
	}

	ix := NewIndex()
	ix.Entries = snap.Entries
	for offset, entry := range ix.Entries {
		for band := 0; band < numBands; band++ {
			key := bandHash(entry.Signature, band)
			ix.Buckets[band][key] = append(ix.Buckets[band][key], offset)
		}
	}
	return ix, nil
}
