// Package schedule holds the pure slot arithmetic: clock parsing, overlap
// detection, availability sets and the per-date booking ledger. Nothing in
// this package performs I/O; callers feed it freshly loaded collections.
package schedule

import "fmt"

// Range is a half-open wall-clock interval [Start, End) in minutes from
// midnight on a single calendar date.
type Range struct {
	Start int
	End   int
}

// ValidOrder reports whether the range is strictly ordered. Zero-length
// ranges are invalid.
func (r Range) ValidOrder() bool {
	return r.Start < r.End
}

// Overlaps reports whether two half-open ranges intersect. Touching
// endpoints (a.End == b.Start) do not count as overlap. Every range
// comparison in the codebase goes through this predicate.
func Overlaps(a, b Range) bool {
	return a.Start < b.End && b.Start < a.End
}

// ParseClock parses a strict "HH:MM" string (zero-padded, HH 00-23,
// MM 00-59) into minutes from midnight. Seconds and timezone suffixes
// are rejected.
func ParseClock(text string) (int, error) {
	if len(text) != 5 || text[2] != ':' {
		return 0, &FormatError{Input: text}
	}
	for _, i := range []int{0, 1, 3, 4} {
		if text[i] < '0' || text[i] > '9' {
			return 0, &FormatError{Input: text}
		}
	}
	hh := int(text[0]-'0')*10 + int(text[1]-'0')
	mm := int(text[3]-'0')*10 + int(text[4]-'0')
	if hh > 23 || mm > 59 {
		return 0, &FormatError{Input: text}
	}
	return hh*60 + mm, nil
}

// FormatClock renders minutes from midnight as zero-padded "HH:MM".
func FormatClock(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// ParseRange parses a start/end clock pair into a Range. Ordering is not
// checked here; that is the validator's job.
func ParseRange(startTime, endTime string) (Range, error) {
	start, err := ParseClock(startTime)
	if err != nil {
		return Range{}, err
	}
	end, err := ParseClock(endTime)
	if err != nil {
		return Range{}, err
	}
	return Range{Start: start, End: end}, nil
}

func (r Range) String() string {
	return FormatClock(r.Start) + "-" + FormatClock(r.End)
}
