// Package retroprice computes inflation-adjusted prices for gaming
// platforms. It combines two public datasets:
//
//   - The US consumer price index (FRED series CPIAUCSL), a line-oriented
//     text file reduced here to one averaged index value per calendar year.
//   - The Giantbomb platform catalog, which records for each console its
//     name, abbreviation, release date and original launch price.
//
// The core types are CPI, the averaged index store with its
// AdjustedPrice query, and Platform/AdjustedPlatform, the raw and
// enriched catalog records. An Adjuster drives records from any source
// through validation and adjustment, producing new AdjustedPlatform
// values in arrival order.
//
// All price arithmetic is decimal-exact: adjusting a price to its own
// year returns the price unchanged, and a doubled price yields a doubled
// adjustment.
//
// This package is the foundation of the `rpp` command-line tool; data
// providers live in the fred and giantbomb subpackages, output emitters
// in renderer and chart.
package retroprice
