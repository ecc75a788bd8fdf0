package report

import "errors"

var (
	// ErrUnknownFormat is returned for an export format other than csv, json, yaml or toml.
	ErrUnknownFormat = errors.New("report: unknown format")

	// ErrEmptyName is returned when exporting a table without a name.
	ErrEmptyName = errors.New("report: table has no name")
)
