package io

import (
	"encoding/json"
	"io"
	"os"

	"github.com/matzehuels/tmd/pkg/errors"
	"github.com/matzehuels/tmd/pkg/tree"
)

type rawColumns struct {
	X *[]float64 `json:"x"`
	Y *[]float64 `json:"y"`
	Z *[]float64 `json:"z"`
	D *[]float64 `json:"d"`
	T *[]int     `json:"t"`
	P *[]int     `json:"p"`
}

// ReadJSON decodes a JSON tree from r.
//
// Every attribute array must be present. The decoded arrays are passed to
// [tree.New], so length mismatches, bad parents and cycles come back with the
// same error codes as direct construction. ReadJSON does not close r.
func ReadJSON(r io.Reader) (*tree.Tree, error) {
	var data rawColumns
	if err := json.NewDecoder(r).Decode(&data); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "decode tree")
	}

	missing := func(name string) error {
		return errors.New(errors.ErrCodeInvalidFormat, "missing %q array", name)
	}
	switch {
	case data.X == nil:
		return nil, missing("x")
	case data.Y == nil:
		return nil, missing("y")
	case data.Z == nil:
		return nil, missing("z")
	case data.D == nil:
		return nil, missing("d")
	case data.T == nil:
		return nil, missing("t")
	case data.P == nil:
		return nil, missing("p")
	}
	return tree.New(*data.X, *data.Y, *data.Z, *data.D, *data.T, *data.P)
}

// ImportJSON reads a JSON file at path and returns the decoded tree.
// A missing file is reported with [errors.ErrCodeFileNotFound].
func ImportJSON(path string) (*tree.Tree, error) {
	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "open %s", path)
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "open %s", path)
	}
	defer f.Close()
	return ReadJSON(f)
}
