// Package input loads puzzle input files and splits them into lines.
package input

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	perrors "github.com/conneroisu/gondola/internal/errors"
)

// SplitLines splits text on '\n', drops a trailing '\r' from each line and
// ignores the empty line produced by a final newline. Empty text yields no
// lines.
func SplitLines(text string) []string {
	if text == "" {
		return nil
	}

	text = strings.TrimSuffix(text, "\n")
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}

	return lines
}

type readResult struct {
	data []byte
	err  error
}

// ReadLines reads the whole file at path and returns its lines. The read
// runs on its own goroutine so a cancelled ctx returns immediately; the
// goroutine still finishes the read and exits.
func ReadLines(ctx context.Context, path string) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	done := make(chan readResult, 1)
	go func() {
		data, err := os.ReadFile(path)
		done <- readResult{data: data, err: err}
	}()

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-done:
		if res.err != nil {
			return nil, perrors.NewIOError(perrors.ErrCodeInputRead, "failed to read input", res.err).
				WithLocation(path, 0, 0)
		}
		return SplitLines(string(res.data)), nil
	}
}

// Resolve builds the input path for day from a directory and a file name
// pattern such as "day%d.txt".
func Resolve(dir, pattern string, day int) (string, error) {
	if err := ValidatePattern(pattern); err != nil {
		return "", err
	}
	return filepath.Join(dir, fmt.Sprintf(pattern, day)), nil
}

// ValidatePattern checks that pattern contains exactly one %d verb and no
// other verbs.
func ValidatePattern(pattern string) error {
	verbs := 0
	for i := 0; i < len(pattern); i++ {
		if pattern[i] != '%' {
			continue
		}
		if i+1 >= len(pattern) {
			return invalidPattern(pattern, "trailing '%'")
		}
		i++
		switch {
		case pattern[i] == '%':
		case pattern[i] == 'd':
			verbs++
		case pattern[i] == '0' && i+2 < len(pattern) && pattern[i+1] >= '1' && pattern[i+1] <= '9' && pattern[i+2] == 'd':
			// zero padded, e.g. %02d
			i += 2
			verbs++
		default:
			return invalidPattern(pattern, fmt.Sprintf("unsupported verb %%%c", pattern[i]))
		}
	}

	if verbs != 1 {
		return invalidPattern(pattern, fmt.Sprintf("expected exactly one %%d, found %d", verbs))
	}
	if filepath.IsAbs(pattern) {
		return invalidPattern(pattern, "pattern must be relative to the input directory")
	}
	return nil
}

func invalidPattern(pattern, reason string) error {
	return perrors.NewConfigError(perrors.ErrCodeConfigInvalid, "invalid input pattern: "+reason).
		WithContext("pattern", pattern)
}
