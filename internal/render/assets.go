package render

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path"
)

// EntryName is the bundle entry the pages load.
const EntryName = "main"

// ErrNoEntry is returned when the manifest has no main entry.
var ErrNoEntry = errors.New("asset manifest: no main entry")

// Assets are the stylesheet and script URLs of the client bundle.
type Assets struct {
	CSS []string
	JS  []string
}

// DevAssets is the bundle location used when no manifest is configured.
func DevAssets(publicPath string) Assets {
	return Assets{JS: []string{path.Join(publicPath, "bundle.js")}}
}

// LoadManifest reads an assets-webpack-plugin manifest:
//
//	{"main": {"js": "/static/main.1a2b.js", "css": "/static/main.1a2b.css"}}
//
// Each entry value may also be a list of URLs.
func LoadManifest(file string) (Assets, error) {
	data, err := os.ReadFile(file)
	if err != nil {
		return Assets{}, fmt.Errorf("reading asset manifest: %w", err)
	}
	return ParseManifest(data)
}

// ParseManifest decodes manifest JSON as described on LoadManifest.
func ParseManifest(data []byte) (Assets, error) {
	var manifest map[string]map[string]json.RawMessage
	if err := json.Unmarshal(data, &manifest); err != nil {
		return Assets{}, fmt.Errorf("decoding asset manifest: %w", err)
	}

	entry, ok := manifest[EntryName]
	if !ok {
		return Assets{}, ErrNoEntry
	}

	var (
		assets Assets
		err    error
	)
	if assets.JS, err = urls(entry["js"]); err != nil {
		return Assets{}, fmt.Errorf("asset manifest js: %w", err)
	}
	if assets.CSS, err = urls(entry["css"]); err != nil {
		return Assets{}, fmt.Errorf("asset manifest css: %w", err)
	}
	if len(assets.JS) == 0 {
		return Assets{}, fmt.Errorf("%w: missing js", ErrNoEntry)
	}
	return assets, nil
}

func urls(raw json.RawMessage) ([]string, error) {
	if len(raw) == 0 {
		return nil, nil
	}

	var one string
	if err := json.Unmarshal(raw, &one); err == nil {
		return []string{one}, nil
	}

	var many []string
	if err := json.Unmarshal(raw, &many); err != nil {
		return nil, err
	}
	return many, nil
}
