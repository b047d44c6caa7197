// Package chart derives a fifteen-house shield chart from four Mother figures.
//
// What:
//
//   - Houses 0–3 are the Mothers, exactly as supplied.
//   - Houses 4–7 are the Daughters: the transpose of the Mothers' bit matrix,
//     so bit i of Daughter j equals bit j of Mother i.
//   - Houses 8–11 are the Nieces: M0⊕M1, M2⊕M3, D0⊕D1, D2⊕D3.
//   - Houses 12–13 are the Witnesses: N0⊕N1 and N2⊕N3.
//   - House 14 is the Judge: W0⊕W1.
//
// Derivation is pure and total over valid Mothers; a Chart is an array value
// and is immutable once returned.
//
// Complexity: O(1), fifteen outputs from fixed formulas.
//
// Errors:
//
//   - ErrInvalidFigure: a Mother outside [0,15]; no partial chart is produced.
package chart
