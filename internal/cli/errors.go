package cli

import (
	"errors"
	"fmt"
)

// ErrUsage is returned when too few positional arguments are given.
// The usage text has already been written to the command's Writer.
var ErrUsage = errors.New("wrong number of arguments")

// PatternNotFoundError reports that the metadata marker does not occur in
// the initcode, or occurs with no bytes after it.
type PatternNotFoundError struct {
	Pattern string
}

func (e *PatternNotFoundError) Error() string {
	return fmt.Sprintf("Pattern %s not found in initCode", e.Pattern)
}
