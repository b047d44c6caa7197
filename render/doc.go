// Package render draws an analysed shield chart as SVG.
//
// What:
//
//   - The chart frame: a 120×120 square holding the outer diamond and the
//     inner lines that separate the fifteen house cells.
//   - One circle per partition member and, for every tour, the line segments
//     between consecutive houses, shortened to stop at the circle edges.
//   - Every house's figure: a stroke for each even row and red dots, grouped
//     by runs, for odd rows. Dots are left out when all Mothers are zero.
//
// Encode writes plain SVG or gzip-compressed SVGZ.
//
// Errors:
//
//   - ErrUnknownFormat: ParseFormat or Encode got an unsupported format.
package render
