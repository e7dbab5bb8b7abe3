// Package pkg provides the libraries behind the biscuits tool.
//
// # Overview
//
// Biscuits places n round biscuits on a rectangular pan so that the smallest
// clearance (to another biscuit or to a pan edge) is as large as possible.
// The pkg directory is organized into three areas:
//
//  1. Search - [geom], [poisson], [anneal] and [packing]
//  2. Output - [render] and [report]
//  3. Orchestration - [pipeline], [cache] and [observability]
//
// # Architecture
//
// The typical data flow of one run:
//
//	n, pan width, pan length
//	         ↓
//	    [poisson] blue-noise samples, trimmed to n ([packing.Problem.Init])
//	         ↓
//	    [anneal] simulated annealing over [packing.Problem.Perturb]
//	         ↓
//	    best placement ([geom.Placement])
//	         ↓
//	    [render] SVG/PNG/PDF/DXF/JSON output
//
// # Quick Start
//
//	seed := uint64(42)
//	placement, err := packing.Approximate(5, 100, 100, 100_000, &seed)
//	if err != nil {
//	    return err
//	}
//	svg := render.RenderSVG(100, 100, placement)
//
// # Main Packages
//
// [packing] - The problem: validation, initial layout, cost and neighbor
// function. [packing.Solve] wires them to the annealer.
//
// [anneal] - A generic simulated annealing driver with fast, Boltzmann and
// geometric cooling schedules.
//
// [pipeline] - Planning, caching and concurrent execution of many runs, used
// by the CLI.
//
// [cache] - Solution caches: null, on-disk and Redis.
//
// [errors] - Structured error codes shared by every package.
//
// # Testing
//
//	go test ./pkg/...            # All tests
//	go test ./pkg/packing/...    # Specific package
//
// [geom]: https://pkg.go.dev/github.com/nathaniel-may/biscuit-packing/pkg/geom
// [poisson]: https://pkg.go.dev/github.com/nathaniel-may/biscuit-packing/pkg/poisson
// [anneal]: https://pkg.go.dev/github.com/nathaniel-may/biscuit-packing/pkg/anneal
// [packing]: https://pkg.go.dev/github.com/nathaniel-may/biscuit-packing/pkg/packing
// [packing.Problem.Init]: https://pkg.go.dev/github.com/nathaniel-may/biscuit-packing/pkg/packing#Problem.Init
// [packing.Problem.Perturb]: https://pkg.go.dev/github.com/nathaniel-may/biscuit-packing/pkg/packing#Problem.Perturb
// [packing.Solve]: https://pkg.go.dev/github.com/nathaniel-may/biscuit-packing/pkg/packing#Solve
// [geom.Placement]: https://pkg.go.dev/github.com/nathaniel-may/biscuit-packing/pkg/geom#Placement
// [render]: https://pkg.go.dev/github.com/nathaniel-may/biscuit-packing/pkg/render
// [report]: https://pkg.go.dev/github.com/nathaniel-may/biscuit-packing/pkg/report
// [pipeline]: https://pkg.go.dev/github.com/nathaniel-may/biscuit-packing/pkg/pipeline
// [cache]: https://pkg.go.dev/github.com/nathaniel-may/biscuit-packing/pkg/cache
// [observability]: https://pkg.go.dev/github.com/nathaniel-may/biscuit-packing/pkg/observability
// [errors]: https://pkg.go.dev/github.com/nathaniel-may/biscuit-packing/pkg/errors
package pkg
