// Package aoc2023 holds solvers for the twenty puzzles of Advent of Code 2023
// (days 1 to 20), built on a small set of reusable search and geometry
// packages.
//
// 🚀 What is in here?
//
//	Shared building blocks:
//		• numeric   – digit conversion, GCD/LCM, Abs
//		• trace     – debug-only tracing, compiled out of release builds
//		• gridgraph – byte grids as implicit graphs: points, directions, neighbours
//		• bfs       – breadth-first search over any comparable state
//		• dijkstra  – shortest paths over any comparable state
//		• cycle     – detect when an iterated process repeats and jump ahead
//		• interval  – half-open integer ranges and range splitting
//		• polygon   – shoelace area and Pick's theorem on lattice polygons
//		• automaton – pulse-propagation module networks
//
//	Plumbing:
//		• puzzle    – solver registry and the part1/part2 answer type
//		• inputs    – locate a day's input (flag, directory, embedded)
//		• config    – aoc.yaml: inputs directory and known answers
//		• days/dayNN, days/all – the solvers themselves
//		• cmd/aoc   – the CLI: run, list, verify, version
//
// Every solver prints exactly two lines:
//
//	part1: <value>
//	part2: <value>
//
// Debug tracing is enabled with the aocdebug build tag:
//
//	go run -tags aocdebug ./cmd/aoc run 14 -v
package aoc2023
