// Package io provides JSON import and export for point trees.
//
// # JSON Format
//
// A tree is stored column-wise, one array per point attribute. All six arrays
// are required and must have the same length:
//
//	{
//	  "x": [0, 0, 1],
//	  "y": [0, 0, 0],
//	  "z": [0, 1, 2],
//	  "d": [2, 1, 1],
//	  "t": [1, 3, 3],
//	  "p": [-1, 0, 1]
//	}
//
// x, y and z are coordinates, d is the diameter, t the integer type code and
// p the parent index. The root is point 0 and its parent may be written as -1
// or 0.
//
// # Import
//
// Use [ImportJSON] to read a tree from a file path, or [ReadJSON] to read
// from any io.Reader:
//
//	t, err := io.ImportJSON("neuron.json")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// Both functions run the same validation as [tree.New], so a decoded tree is
// always well formed. Missing arrays and malformed JSON are reported with
// [errors.ErrCodeInvalidFormat].
//
// # Export
//
// Use [ExportJSON] to write a tree to a file, or [WriteJSON] to write to any
// io.Writer. [MarshalTree] returns the compact encoding used for content
// hashing; equal trees always marshal to equal bytes.
//
// [tree.New]: github.com/matzehuels/tmd/pkg/tree.New
// [errors.ErrCodeInvalidFormat]: github.com/matzehuels/tmd/pkg/errors.ErrCodeInvalidFormat
package io
