package salience

import (
	"errors"
	"fmt"
)

// ErrDivisionGuard is matched by every DivisionGuardError via errors.Is.
var ErrDivisionGuard = errors.New("division guard")

// Guard names reported by DivisionGuardError.
const (
	GuardListCount        = "list count"
	GuardTotalOccurrences = "total occurrences"
)

// MalformedLineError reports a freelist line that contains no tokens.
type MalformedLineError struct {
	Line int // 1-based line number
}

func (e *MalformedLineError) Error() string {
	return fmt.Sprintf("line %d: freelist has no items", e.Line)
}

// DivisionGuardError reports a zero denominator when computing frequency
// percentages or composite salience.
type DivisionGuardError struct {
	Guard string
}

func (e *DivisionGuardError) Error() string {
	return fmt.Sprintf("cannot summarize: %s is zero", e.Guard)
}

// Is reports whether target is ErrDivisionGuard.
func (e *DivisionGuardError) Is(target error) bool {
	return target == ErrDivisionGuard
}
