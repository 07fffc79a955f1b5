// Package polygon measures simple lattice polygons given as vertex lists.
//
// The vertex list is treated as closed: the last vertex connects back to the
// first. Vertices may be listed clockwise or counter-clockwise; every
// unsigned result is the same for both orientations.
//
// Area2 is the doubled shoelace sum, kept doubled so it stays an integer.
// Interior applies Pick's theorem, A = i + b/2 - 1, solved for i.
package polygon
