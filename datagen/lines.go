package datagen

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	// ErrMissingLines is returned when no row count argument was given.
	ErrMissingLines = errors.New("missing number of lines")
	// ErrInvalidLines is returned when the row count argument is not an integer.
	ErrInvalidLines = errors.New("invalid number of lines")
)

// ParseLines reads the row count from the first positional argument.
// Zero and negative counts are accepted and produce a header-only file.
func ParseLines(args []string) (int, error) {
	if len(args) == 0 || strings.TrimSpace(args[0]) == "" {
		return 0, ErrMissingLines
	}
	n, err := strconv.Atoi(strings.TrimSpace(args[0]))
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a number", ErrInvalidLines, args[0])
	}
	return n, nil
}
