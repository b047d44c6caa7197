// Package partition groups the houses of a chart into connected clusters.
//
// Two houses share a Partition iff they are joined by a chain of links, where
// each link is either
//
//   - "same figure": both houses hold the same Figure, or
//   - "company on a fixed pair": the houses form one of the seven pairs
//     (0,1), (2,3), (4,5), (6,7), (8,9), (10,11), (12,13) and their figures
//     are in company (see package company).
//
// The Judge (house 14) joins clusters only through the same-figure rule.
//
// Algorithm:
//
//  1. Seed sixteen groups, one per Figure value; every house joins the group
//     keyed by its own figure.
//  2. For each fixed pair in company, union the two figure groups and keep
//     folding in every group that intersects the union until nothing changes;
//     every intersecting group then takes the merged membership.
//  3. Keep the distinct groups with at least two houses, in order of first
//     discovery by figure key.
//
// Complexity: O(1); sixteen groups, seven merge steps, each re-scanning at
// most sixteen groups.
//
// Errors:
//
//   - ErrInvalidChart: a house holds a value outside [0,15].
package partition
