// Package kessan turns per-security daily price series and periodic
// financial-disclosure series into point-in-time valuation metrics.
//
// For every security it produces a current snapshot (latest valid value of
// each disclosure field, one reference price, and the derived valuation
// ratios) and a historical series replaying the same derivation per
// disclosure. The output is a single JSON array consumed by a dashboard
// front end.
package kessan
