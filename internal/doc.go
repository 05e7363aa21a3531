// Package internal contains the core implementation packages for gondola.
//
// # Package Organization
//
// The internal packages are organized by functional domain:
//
//   - puzzle: Solver contract, registry and the timed runner
//   - calibration, cubegame, schematic, scratchcards: One package per day
//   - input: Input path resolution and context-bounded file reads
//   - report: Text, JSON, YAML and HTML rendering of results
//   - config: Configuration loading with defaults and validation
//   - errors: Typed errors with codes, locations and per-day collection
//   - logging: Structured logging on log/slog
//   - watcher: File system monitoring with debouncing
//   - version: Build information
//
// # Inter-Package Communication
//
//   - Day packages depend only on errors; they take lines and return int64
//   - puzzle runs any Solver and returns Results consumed by report
//   - The cmd package wires config, input, puzzle, report and watcher
//
// # Testing Strategy
//
//   - Unit tests with testify for every package
//   - Property tests with gopter behind the "property" build tag
//   - Goroutine leak checks with goleak for input and watcher
package internal
