// Package lvlalg is a small computational toolkit over five independent
// algebraic domains: 3D vectors, rectangular real matrices, finite integer
// sets, two-valued boolean logic and complex numbers.
//
// 🚀 What is in the box?
//
//	Pure, side-effect free algebra packages:
//		• vector/     Add, Sub, Dot and Cross over R³
//		• matrix/     Dense matrices with Add, Sub, Mul, Transpose and shape checks
//		• set/        insertion-ordered integer sets, relations and PowerSet
//		• logic/      AND, OR, NOT over a pair of booleans, truth tables
//		• complexnum/ Add, Sub, Mul over complex numbers
//
//	Around them:
//		• parse/   fallible, typed parsing of user input lines
//		• report/  labelled result tables exported as CSV, JSON, YAML or TOML
//		• session/ the interactive menu state machine and module evaluators
//		• cli/     the cobra command tree behind cmd/lvlalg
//		• config/, logging/, metrics/ envconfig settings, zap loggers, Prometheus counters
//
// ✨ Guarantees
//
//   - The algebra packages do no I/O. User-triggered conditions come back
//     as errors, not panics.
//   - Results are exact float64 values; rounding happens only when a report
//     is rendered.
//   - Matrix multiplication and power-set enumeration use fixed orders, so
//     output is reproducible run to run.
//
// Quick start:
//
//	go run ./cmd/lvlalg                          # interactive menu
//	go run ./cmd/lvlalg vector --a "1 2 3" --b "4 5 6"
//	go run ./cmd/lvlalg matrix --a "1 2; 3 4" --b "5 6; 7 8" --format json
package lvlalg
