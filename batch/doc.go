// Package batch renders many shield charts in parallel.
//
// Run enumerates Mother combinations (by default all 16⁴ of them), analyses
// and renders each one, and hands the encoded drawing to a Sink. Charts are
// independent, so they are spread over a bounded errgroup worker pool; the
// first error, or cancellation of the context, stops the run.
//
// Output names follow the layout "<a><b>/<c><d>.svg", one hex digit per
// Mother, so the 65 536 drawings spread over 256 directories.
package batch
