// Package tour finds the shortest open path through a set of houses.
//
// Plan enumerates visiting orders with an exact depth-first Branch-and-Bound
// (BnB) search over the fixed house layout:
//
//  1. Candidates are branched in ascending house-index order at every depth,
//     so among equal-length optimal paths the first one reached wins: the
//     path whose leading indices are smallest.
//  2. A partial path is pruned as soon as its bound is ≥ the incumbent − Eps.
//     With NoBound the bound is the accumulated length; with EntryBound
//     (default) every unvisited house adds the cheapest edge that could
//     enter it. Both bounds are admissible, so both return the same path.
//  3. A complete path replaces the incumbent only when strictly shorter
//     (by more than Eps).
//
// The path is open: the last house is not joined back to the first.
//
// Complexity:
//   - Worst case factorial in the number of houses (≤ 15); the entry bound
//     keeps the full fifteen-house case to tens of thousands of nodes.
//   - Memory: O(n²) for the distance buffer, O(n) for the search state.
//
// Errors:
//   - ErrTooFewIndices: fewer than two houses.
//   - ErrIndexOutOfRange: an index outside [0,14].
//   - ErrDuplicateIndex: a house listed twice.
//   - ErrBadOptions: negative Eps or an unknown bound.
package tour
