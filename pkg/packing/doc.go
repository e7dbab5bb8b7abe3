// Package packing places N equal circular biscuits in a rectangular pan so
// that the smallest clearance anywhere (between two biscuits, or between a
// biscuit and the pan edge) is as large as possible.
//
// A biscuit is modelled as its centre point; its radius is a rendering
// concern. The search is a heuristic, not an exact solver:
//
//  1. [Problem.Init] draws a blue-noise layout with the poisson package at
//     radius (width+length)/(8√n), shrinking the radius if the sampler comes
//     up short, then removes random samples until exactly n remain.
//  2. [Problem.Cost] scores a placement as min(width, length) minus its
//     minimum clearance. Lower is better.
//  3. [Problem.Perturb] nudges single coordinates by at most 0.1, with the
//     number of nudges scaled by temperature and problem size.
//  4. The anneal package drives Cost and Perturb to a best placement.
//
// # Usage
//
//	seed := uint64(42)
//	pl, err := packing.Approximate(3, 100, 100, 10_000, &seed)
//
// Use [Solve] for the cost, clearance and iteration statistics alongside the
// placement.
//
// # Concurrency
//
// A Problem holds only immutable parameters; the random generator is passed
// to every call. Cost is pure and safe for concurrent use. Independent runs
// must each use their own *rand.Rand.
package packing
