package utils

import (
	"testing"
	"time"
)

func TestParseISO8601AcceptedShapes(t *testing.T) {
	cases := []struct {
		in   string
		want time.Time
	}{
		{"2025-01-01T00:00:00Z", time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)},
		{"2025-01-01T00:00:00+00:00", time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)},
		{"2025-01-01T12:30:45", time.Date(2025, 1, 1, 12, 30, 45, 0, time.UTC)},
		{"2025-06-15T03:10:00.123456Z", time.Date(2025, 6, 15, 3, 10, 0, 123456000, time.UTC)},
		{"2025-01-01T15:04", time.Date(2025, 1, 1, 15, 4, 0, 0, time.UTC)},
		{"2025-01-01", time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)},
	}

	for _, tc := range cases {
		got, err := ParseISO8601(tc.in)
		if err != nil {
			t.Fatalf("ParseISO8601(%q) returned error: %v", tc.in, err)
		}
		if !got.Equal(tc.want) {
			t.Fatalf("ParseISO8601(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestParseISO8601ZMeansUTCOffset(t *testing.T) {
	withZ, err := ParseISO8601("2025-01-01T00:00:00Z")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	withOffset, err := ParseISO8601("2025-01-01T00:00:00+00:00")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !withZ.Equal(withOffset) {
		t.Fatalf("Z and +00:00 parsed to different instants: %v vs %v", withZ, withOffset)
	}
}

func TestParseISO8601Rejects(t *testing.T) {
	for _, in := range []string{"", "01/02/2025", "2025-13-01T00:00:00", "yesterday", "2025-01-01T25:00:00"} {
		if _, err := ParseISO8601(in); err == nil {
			t.Fatalf("ParseISO8601(%q) unexpectedly succeeded", in)
		}
	}
}
