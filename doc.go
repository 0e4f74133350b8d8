// Package komorebi implements the performance computation engine behind
// the Komorebi Investments 55 portfolio: a fixed set of international
// stocks, tracked as one equal-weighted portfolio.
//
// The raw material is heterogeneous: every security trades in its own
// currency on its own exchange calendar. The engine turns that into a
// single comparable story in four steps:
//
//   - Normalize: re-express each price series in the reporting currency,
//     using a date-aligned exchange rate series.
//   - Align: resample all series onto the union of their trading days,
//     carrying the last known price forward over holidays and closures.
//     Days before a security's first observation stay undefined, never
//     zero.
//   - Valuate: split a notional investment equally across holdings at an
//     inception date and track the aggregate value over time. Benchmarks
//     are rescaled onto the same notional for direct comparison.
//   - Attribute: break the realized return down into per-holding
//     contributions, ranked.
//
// All computations are pure functions over in-memory data: same inputs,
// same outputs, nothing mutated. The only fallible, slow operation is
// fetching prices, and a failed fetch only ever shrinks the portfolio;
// it never produces a partially wrong holding.
//
// This package is the foundation of the k55 command-line tool.
package komorebi
