// Package collateral provides the data model and the pure computations behind
// a loan-to-value (LTV) dashboard for a portfolio of financial assets.
//
// The core functionalities include:
//   - Asset Model: the Asset record, its enums and the data-quality checks
//     applied at the ingest boundary (Asset.Validate).
//   - Metrics Engine: currency, percent, market cap and volume formatting,
//     LTV risk bands and margin levels, all driven by a swappable Policy.
//   - Collection Queries: filter by type, text search, stable sort on a typed
//     set of fields, and aggregation into a Summary.
//   - Import/Export: the {"assets": [...]} JSON exchange format.
//
// Every function is stateless and never mutates its input: queries return new
// slices, and presentation state (selected type, search text, sort order) is
// passed in explicitly through a View.
package collateral
