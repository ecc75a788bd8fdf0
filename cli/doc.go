// Package cli wires the lvlalg command tree: the interactive menu plus one
// one-shot command per algebra module. Commands share the root options
// (configuration file, report destination, output format) and report
// failures as ExitError values carrying the process exit code.
package cli
