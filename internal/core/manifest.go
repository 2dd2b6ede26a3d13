package core

import (
	"encoding/json"
)

// ManifestEntry records the artifacts produced for one compiled module.
type ManifestEntry struct {
	Bundle string `json:"bundle"`
	Entry  string `json:"entry"`
}

// Manifest lists every bundle the last pipeline run produced. It is
// written next to the bundles for consumers that want to enumerate
// them; the renderer itself relies on the fixed naming convention.
type Manifest struct {
	Entries map[string]ManifestEntry `json:"entries"`
}

// BuildManifestName is the manifest's filename inside the output
// directory.
const BuildManifestName = "manifest.json"

func NewManifest(bases []string) *Manifest {
	entries := make(map[string]ManifestEntry, len(bases))
	for _, base := range bases {
		entries[base] = ManifestEntry{
			Bundle: BundleName(base),
			Entry:  EntryName(base),
		}
	}
	return &Manifest{Entries: entries}
}

func (m *Manifest) Encode() ([]byte, error) {
	return json.MarshalIndent(m, "", "  ")
}

func ParseManifest(data []byte) (*Manifest, error) {
	var m Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, err
	}
	return &m, nil
}
