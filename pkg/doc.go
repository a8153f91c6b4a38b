// Package pkg provides the libraries behind the tmd morphometrics tool.
//
// # Overview
//
// tmd analyzes rooted 3D point trees such as neuron or plant reconstructions.
// The pkg directory is organized into three areas:
//
//  1. [tree] and [geometry] - Domain logic (tree model, sections, distances,
//     topology, reduction, principal axes)
//  2. [io], [cache], [observability] - Infrastructure (JSON codec, report
//     caching, instrumentation hooks)
//  3. [pipeline] - Orchestration (load → analyze → report)
//
// # Architecture
//
// The typical data flow through tmd:
//
//	JSON tree file
//	     ↓
//	[io] package (decode and validate)
//	     ↓
//	[tree] package (degrees, sections, distances, branch orders)
//	     ↓
//	[pipeline] package (report, cached by content hash)
//	     ↓
//	terminal summary / JSON report
//
// # Quick Start
//
//	t, err := io.ImportJSON("neuron.json")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	runner := pipeline.NewRunner(nil, nil, nil)
//	report, _, err := runner.Analyze(ctx, t, pipeline.Options{})
//
// [tree]: github.com/matzehuels/tmd/pkg/tree
// [geometry]: github.com/matzehuels/tmd/pkg/geometry
// [io]: github.com/matzehuels/tmd/pkg/io
// [cache]: github.com/matzehuels/tmd/pkg/cache
// [observability]: github.com/matzehuels/tmd/pkg/observability
// [pipeline]: github.com/matzehuels/tmd/pkg/pipeline
package pkg
