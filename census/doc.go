// Package census embeds the 2020 state directory behind U.S. House
// apportionment: one row per state or territory with its FIPS code, USPS
// abbreviation, full name, and 2020 population.
//
// Overview:
//
//   - All returns the full 52-row directory (50 states + DC + Puerto Rico)
//     in FIPS order.
//   - Lookup resolves free-form input — a FIPS code, an abbreviation, or a
//     full name — to a single row.
//   - Entities converts the directory into the []hhill.Entity an
//     apportionment run consumes, keyed by abbreviation. DC and Puerto Rico
//     sit out by default (neither holds a voting House seat); WithDC and
//     WithPR opt them in.
//
// Data provenance:
//
//   - States carry their official 2020 apportionment populations, which
//     include overseas federal personnel and therefore differ slightly from
//     resident counts.
//   - DC and Puerto Rico have no apportionment population, so their 2020
//     resident populations are embedded instead.
//
// The directory is compile-time data: there is no downloading, caching, or
// file parsing anywhere in this package, and accessors always return copies.
package census
