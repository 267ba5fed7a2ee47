// Package matrix provides the dense numeric primitive every algorithm in
// this module is built on: a row-major 2-D float64 buffer with
// bounds-checked access, bulk traversal, and lazy per-row/per-column folds.
//
// 🚀 What is matrix?
//
//	A single concrete type, Dense, plus a tiny fold abstraction, Vec:
//		• Construct: zeros, constant fill, or a per-cell initializer
//		• Access: At/Set with errors that name both index and dimension
//		• Transform: Map (pure copy) and Apply/ApplyRange (in-place)
//		• Fold: Row/Col sequences with Sum, Max, Min, IndexOf
//
// Design rules (inherited module-wide):
//
//   - No panics at the public surface — every user-triggered failure is a
//     sentinel error matched via errors.Is.
//   - Deterministic traversal — Apply and Map walk cells in row-major,
//     ascending order; within one Apply pass, later cells observe values
//     written by earlier cells. Recurrences rely on this ordering.
//   - No algorithm-specific logic — Dense knows storage and traversal,
//     nothing else. The hmm package expresses its recurrences purely as
//     traversals and folds over this type.
//
// Complexity: At/Set O(1); Map/Apply/Sum O(r·c); Row/Col folds O(len).
package matrix
