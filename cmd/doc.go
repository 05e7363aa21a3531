// # Available Commands
//
//   - solve: Solve one day, or every day with "all"
//   - list: List the days that have a solver
//   - watch: Re-solve a day whenever its input file changes
//   - validate: Check configuration and inputs without printing answers
//   - version: Show build information
//
// # Command Examples
//
//	// Solve day 3 from ./input/day3.txt
//	gondola solve 3
//
//	// Only part 2 of day 1, from a sample file
//	gondola solve 1 --part 2 --input sample.txt
//
//	// Every day as JSON
//	gondola solve all --output json
//
//	// Keep re-solving day 4 while editing its input
//	gondola watch 4
//
// # Error Handling
//
// Commands return structured errors from internal/errors. Parse errors carry
// the file, line and column of the offending input. "solve all" prints the
// answers of every day that succeeded before reporting the ones that failed,
// and exits non-zero if any did.
package cmd
