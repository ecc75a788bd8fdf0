// Package session drives the interactive lvlalg menu and evaluates the five
// algebra modules on behalf of both the menu and the one-shot CLI commands.
//
// The menu is an explicit state machine:
//
//	Menu ──(1..5)──▶ ModuleSelected ──▶ Completed ──▶ Menu
//	Menu ──(6)─────▶ Menu
//	Menu ──(7)─────▶ Exited
//
// Operand input goes through a Prompter, which re-asks the same question
// while the answer fails to parse and turns end of input into ErrCancelled.
// An Evaluator turns typed operands into a report.Table, recording one
// metrics sample per operation; the Session prints that table, exports it
// and logs the outcome under the session's run id.
package session
