package processor

import (
	"encoding/json"
	"os"

	"github.com/tdewolff/minify/v2"
	mjson "github.com/tdewolff/minify/v2/json"

	"github.com/gabriel-briffe/openaip-airspace/internal/geo"
)

// EncodeCollection marshals the collection, optionally minified for
// publishing.
func EncodeCollection(fc geo.FeatureCollection, minified bool) ([]byte, error) {
	if minified {
		data, err := json.Marshal(fc)
		if err != nil {
			return nil, err
		}
		m := minify.New()
		m.AddFunc("application/json", mjson.Minify)
		return m.Bytes("application/json", data)
	}
	return json.MarshalIndent(fc, "", "  ")
}

// WriteCollection encodes and writes the collection, returning the bytes
// written so the caller can checksum them.
func WriteCollection(path string, fc geo.FeatureCollection, minified bool) ([]byte, error) {
	data, err := EncodeCollection(fc, minified)
	if err != nil {
		return nil, err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return nil, err
	}
	return data, nil
}
