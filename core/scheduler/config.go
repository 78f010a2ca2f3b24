package scheduler

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/kilianp07/heatplan/core/building"
)

// Batch is a list of houses optimised one after the other.
type Batch struct {
	Houses []building.HouseSpec `json:"houses" yaml:"houses"`
}

// LoadBatch loads a Batch from a JSON or YAML file.
func LoadBatch(path string) (Batch, error) {
	f, err := os.Open(path)
	if err != nil {
		return Batch{}, err
	}
	defer f.Close()
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	b, err := DecodeBatch(f, ext)
	if err != nil {
		return Batch{}, fmt.Errorf("%s: %w", path, err)
	}
	return b, nil
}

// DecodeBatch reads from r to decode a Batch.
func DecodeBatch(r io.Reader, format string) (Batch, error) {
	var b Batch
	switch strings.ToLower(format) {
	case "yaml", "yml":
		dec := yaml.NewDecoder(r)
		if err := dec.Decode(&b); err != nil {
			return b, err
		}
	case "json":
		dec := json.NewDecoder(r)
		if err := dec.Decode(&b); err != nil {
			return b, err
		}
	default:
		return b, fmt.Errorf("unsupported format: %s", format)
	}
	for i, h := range b.Houses {
		if err := h.Validate(); err != nil {
			return b, fmt.Errorf("house %d: %w", i, err)
		}
	}
	return b, nil
}
