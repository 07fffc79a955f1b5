// Package gridgraph treats a rectangular block of puzzle text as a graph of
// byte-valued cells, the shape shared by the maze, mirror, rock and
// heat-loss days.
//
// What:
//
//   - Grid owns a flat row-major []byte buffer with Width and Height.
//   - Cells are addressed by Point{X, Y}: X is the column, Y the row,
//     (0,0) is the top-left character of the input.
//   - Neighbours follow Conn4 (N, E, S, W) or Conn8 (with diagonals),
//     precomputed once at construction.
//   - Direction is the tagged Up/Right/Down/Left enum used by beam and
//     crucible walkers, with Turn/Opposite/Delta helpers.
//
// Why:
//
//   - A single owned buffer makes Clone/Equal/hash-keys cheap, which is what
//     cycle detection on a mutating grid needs.
//   - Bounds checks are explicit (InBounds), so walkers never underflow at
//     an edge.
//
// Complexity:
//
//   - Parse, Clone, Transpose: O(W×H) time and memory.
//   - At, Set, InBounds, Index, Coordinate: O(1).
//
// Errors:
//
//   - ErrEmptyGrid: input has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrOutOfBounds: Set was given a Point outside the grid (panic value).
package gridgraph
