package batch

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// ManifestEntry represents one rendered scene in the output manifest.
type ManifestEntry struct {
	Name   string `json:"name"`
	Scene  string `json:"scene"`
	Image  string `json:"image"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

// WriteManifest writes a JSON list of the successful results to path.
// Image paths are relative to the manifest's directory.
func WriteManifest(path string, results []Result) error {
	base := filepath.Dir(path)
	entries := make([]ManifestEntry, 0, len(results))
	for _, r := range results {
		if !r.Success {
			continue
		}
		img, err := filepath.Rel(base, r.Output)
		if err != nil {
			img = r.Output
		}
		entries = append(entries, ManifestEntry{
			Name:   r.Name,
			Scene:  r.Scene,
			Image:  filepath.ToSlash(img),
			Width:  r.Width,
			Height: r.Height,
		})
	}

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
