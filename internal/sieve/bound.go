package sieve

import (
	"errors"
	"fmt"
	"strconv"
)

// ErrInvalidBound is returned by ParseBound for input that is not a
// non-negative decimal integer.
var ErrInvalidBound = errors.New("bound must be a non-negative integer")

// ParseBound parses s as a scan bound. Only the digits 0-9 are accepted;
// signs, spaces and separators are rejected.
func ParseBound(s string) (uint64, error) {
	if s == "" {
		return 0, fmt.Errorf("%w: empty value", ErrInvalidBound)
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, fmt.Errorf("%w: %q", ErrInvalidBound, s)
		}
	}
	n, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrInvalidBound, err)
	}
	return n, nil
}
