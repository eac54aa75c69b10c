// Package testutil provides fixture state spaces for tests and benchmarks.
//
// This package is intended for use in tests only.
//
// # Unbounded Grid
//
// Pos walks an infinite 2D grid toward (5, 5). It implements every
// capability: Searchable, Scoreable (Manhattan distance) and CostSearchable
// (unit costs).
//
// # Mazes
//
//	m := testutil.ParseMaze(
//	    "S..#",
//	    ".#.G",
//	)
//	start := m.Start()
//
// Mazes are finite, may carry per-cell entry costs (digits 1-9) and count
// how often each cell is expanded.
//
// # Weighted Graphs
//
// Graph holds an explicit weighted digraph with a heuristic table, and
// ShortestCost computes exact optimal costs for comparison.
package testutil
