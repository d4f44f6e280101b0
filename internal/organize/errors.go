package organize

import (
	"errors"
	"fmt"
	"strings"
)

// Error kind markers. Each per-entry failure is tagged with one of these so
// callers can classify outcomes with errors.Is without string matching.
var (
	ErrTraversal = errors.New("traversal error")
	ErrIO        = errors.New("io error")
	ErrDateTime  = errors.New("datetime error")
	ErrCollision = errors.New("destination already exists")
)

// wrap tags err with the given marker and operation context for later
// classification.
func wrap(marker error, operation string, err error) error {
	operation = strings.TrimSpace(operation)
	if operation == "" {
		operation = "organize"
	}
	if err != nil {
		return fmt.Errorf("%w: %s: %w", marker, operation, err)
	}
	return fmt.Errorf("%w: %s", marker, operation)
}
