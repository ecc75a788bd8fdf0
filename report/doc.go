// Package report turns algebra results into labelled tabular records and
// writes them to disk.
//
// A Table is a named header plus rows of string cells; the first cell of
// each row is the human-readable operation label ("Vector Addition",
// "Dot Product", "Power Set of Set 1", ...). Builders such as VectorTable
// take exact float64/int/bool results and render them through a Formatter,
// so the rounding policy lives here and nowhere in the algebra packages.
//
// Exporter persists a Table as <dir>/<name>.<ext> in CSV, JSON, YAML or
// TOML, optionally gzip-compressed (<name>.<ext>.gz).
package report
