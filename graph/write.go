package graph

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/amonks/genremap/data"
	"github.com/amonks/genremap/dataset"
)

// Encode writes g as JSON.
func Encode(w io.Writer, g *data.Graph) error {
	if err := json.NewEncoder(w).Encode(g); err != nil {
		return fmt.Errorf("error encoding graph: %w", err)
	}
	return nil
}

// Write saves g to filename, creating missing parent directories. The file is
// replaced atomically, so a failed write leaves any previous file in place.
func Write(filename string, g *data.Graph) error {
	return dataset.WriteFile(filename, func(w io.Writer) error {
		return Encode(w, g)
	})
}

// Read loads a document written by Write.
func Read(filename string) (*data.Graph, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("error opening graph '%s': %w", filename, err)
	}
	defer f.Close()

	var g data.Graph
	if err := json.NewDecoder(f).Decode(&g); err != nil {
		return nil, fmt.Errorf("error decoding graph '%s': %w", filename, err)
	}
	return &g, nil
}
