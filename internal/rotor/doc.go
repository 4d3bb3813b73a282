// Package rotor sweeps the station solver across a blade geometry
// table and aggregates rotor-level performance.
//
// [LinearAnalyzer] implements the linearized lift/drag BEM analysis;
// [NonlinearAnalyzer] is the declared-but-unavailable variant behind
// the same [Analyzer] contract. [OptimumRotor] generates a Betz-optimum
// geometry table that the analyzers consume.
//
// Stations are mutually independent, so the sweep can run serially or
// with one goroutine per station; both paths produce identical results
// in geometry-table order.
package rotor
