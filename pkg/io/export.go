package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/matzehuels/tmd/pkg/tree"
)

type columns struct {
	X []float64 `json:"x"`
	Y []float64 `json:"y"`
	Z []float64 `json:"z"`
	D []float64 `json:"d"`
	T []int     `json:"t"`
	P []int     `json:"p"`
}

func fromTree(t *tree.Tree) columns {
	return columns{X: t.X(), Y: t.Y(), Z: t.Z(), D: t.D(), T: t.T(), P: t.P()}
}

// WriteJSON encodes a tree as indented JSON and writes it to w.
// The output can be re-imported with [ReadJSON].
func WriteJSON(t *tree.Tree, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(fromTree(t)); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// ExportJSON writes a tree to a JSON file at path.
func ExportJSON(t *tree.Tree, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return WriteJSON(t, f)
}

// MarshalTree returns the compact JSON encoding of t.
func MarshalTree(t *tree.Tree) ([]byte, error) {
	return json.Marshal(fromTree(t))
}
