// Package apportion is a small toolkit for apportioning a fixed number of
// indivisible seats among entities in proportion to their populations —
// the problem the U.S. Constitution poses every ten years for the House
// of Representatives.
//
// 🚀 What is apportion?
//
//	A deterministic, dependency-light library that brings together:
//		• hhill/  — the Huntington-Hill "method of equal proportions" engine:
//		            priority calculation, heap-driven seat allocation, and
//		            strict pre/post validation with sentinel errors
//		• census/ — an embedded 2020 state directory (FIPS, abbreviation,
//		            name, apportionment population) with flexible lookup
//		            and DC / Puerto Rico inclusion switches
//		• report/ — district-size summary statistics for an allocation
//		            (mean, median, spread, and the worst pairwise relative
//		            disparity that Huntington-Hill minimizes)
//		• config/ — optional YAML run configuration for the CLI
//
// ✨ Why choose apportion?
//
//   - Reproducible — identical input always yields identical output,
//     including under exact priority ties (smallest identifier wins)
//   - Rock-solid guarantees — every result is re-validated before return;
//     the sum and floor invariants cannot silently break
//   - Pure Go core — the engine itself uses only the standard library
//   - Configurable — total seats, uniform seat floors, and per-entity
//     floors are all explicit parameters, never hidden module state
//
// Quick example:
//
//	seats, err := hhill.Apportion(census.Entities(), hhill.WithTotalSeats(435))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(seats["CA"]) // California's House delegation
//
// The cmd/apportion binary wraps the same pipeline as a CLI:
// `apportion seats` prints a full seat table, `apportion state texas`
// resolves a state by FIPS code, abbreviation, or name.
package apportion
