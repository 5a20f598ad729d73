package schedule

import (
	"errors"
	"testing"
)

func TestParseClock(t *testing.T) {
	cases := []struct {
		input   string
		want    int
		wantErr bool
	}{
		{"00:00", 0, false},
		{"09:30", 570, false},
		{"14:15", 855, false},
		{"23:59", 1439, false},
		{"24:00", 0, true},
		{"12:60", 0, true},
		{"9:30", 0, true},   // not zero-padded
		{"09:30:00", 0, true}, // seconds not accepted
		{"09-30", 0, true},
		{"ab:cd", 0, true},
		{"", 0, true},
	}
	for _, tc := range cases {
		got, err := ParseClock(tc.input)
		if tc.wantErr {
			if err == nil {
				t.Errorf("ParseClock(%q): expected error, got %d", tc.input, got)
				continue
			}
			var formatErr *FormatError
			if !errors.As(err, &formatErr) {
				t.Errorf("ParseClock(%q): expected FormatError, got %T", tc.input, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseClock(%q): unexpected error: %v", tc.input, err)
			continue
		}
		if got != tc.want {
			t.Errorf("ParseClock(%q) = %d, want %d", tc.input, got, tc.want)
		}
	}
}

func TestFormatClockRoundTrip(t *testing.T) {
	for _, text := range []string{"00:00", "09:05", "13:45", "23:59"} {
		minutes, err := ParseClock(text)
		if err != nil {
			t.Fatalf("ParseClock(%q) failed: %v", text, err)
		}
		if got := FormatClock(minutes); got != text {
			t.Errorf("FormatClock(ParseClock(%q)) = %q", text, got)
		}
	}
}

func TestOverlapsSymmetry(t *testing.T) {
	ranges := []Range{
		{540, 600},  // 09:00-10:00
		{570, 630},  // 09:30-10:30
		{600, 660},  // 10:00-11:00
		{0, 1440},   // whole day
		{840, 900},  // 14:00-15:00
	}
	for _, a := range ranges {
		for _, b := range ranges {
			if Overlaps(a, b) != Overlaps(b, a) {
				t.Errorf("Overlaps(%s, %s) is not symmetric", a, b)
			}
		}
	}
}

func TestOverlapsSelf(t *testing.T) {
	for _, r := range []Range{{540, 600}, {0, 1}, {1380, 1440}} {
		if !r.ValidOrder() {
			t.Fatalf("test range %s must be valid", r)
		}
		if !Overlaps(r, r) {
			t.Errorf("Overlaps(%s, %s) = false, want true", r, r)
		}
	}
}

func TestOverlapsAdjacent(t *testing.T) {
	a := Range{540, 600} // 09:00-10:00
	b := Range{600, 660} // 10:00-11:00
	if Overlaps(a, b) {
		t.Errorf("touching endpoints must not count as overlap: %s vs %s", a, b)
	}
	if Overlaps(b, a) {
		t.Errorf("touching endpoints must not count as overlap: %s vs %s", b, a)
	}
}

func TestValidOrder(t *testing.T) {
	if (Range{600, 600}).ValidOrder() {
		t.Error("zero-length range must be invalid")
	}
	if (Range{660, 600}).ValidOrder() {
		t.Error("reversed range must be invalid")
	}
	if !(Range{600, 601}).ValidOrder() {
		t.Error("one-minute range must be valid")
	}
}
