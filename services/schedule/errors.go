package schedule

import "fmt"

// FormatError signals a malformed "HH:MM" clock string.
type FormatError struct {
	Input string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("invalid time format %q: expected HH:MM", e.Input)
}

// InvalidRangeError signals a range whose start is not strictly before
// its end.
type InvalidRangeError struct {
	Range Range
}

func (e *InvalidRangeError) Error() string {
	return fmt.Sprintf("invalid range %s: start must be before end", e.Range)
}

// OverlapError signals that a candidate slot collides with an existing one
// on the same date.
type OverlapError struct {
	Candidate Range
	Existing  Range
}

func (e *OverlapError) Error() string {
	return fmt.Sprintf("range %s overlaps existing slot %s", e.Candidate, e.Existing)
}

// SlotAlreadyBookedError signals a lost booking race: the requested slot
// was taken between being shown as open and the commit.
type SlotAlreadyBookedError struct {
	Date  string
	Range Range
}

func (e *SlotAlreadyBookedError) Error() string {
	return fmt.Sprintf("slot %s on %s is already booked", e.Range, e.Date)
}

// ValidationError signals missing or malformed client input.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
}

// StorageError wraps a persistence collaborator failure. The cause is
// opaque to the core; it is surfaced unchanged so the caller can decide
// to retry or abort.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage failure during %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}
