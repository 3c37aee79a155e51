package service

import (
	"testing"

	"bimbelku_backend/internals/helpers/dbtime"
)

func tod(t *testing.T, s string) dbtime.Tod {
	t.Helper()
	v, err := dbtime.Parse(s)
	if err != nil {
		t.Fatalf("parse %q: %v", s, err)
	}
	return v
}

func TestOverlaps(t *testing.T) {
	cases := []struct {
		name   string
		aStart string
		aEnd   string
		bStart string
		bEnd   string
		want   bool
	}{
		{"disjoint", "08:00", "09:00", "10:00", "11:00", false},
		{"adjacent back-to-back", "09:00", "10:00", "10:00", "11:00", false},
		{"adjacent reversed", "10:00", "11:00", "09:00", "10:00", false},
		{"partial overlap", "09:00", "10:00", "09:30", "10:30", true},
		{"contained", "09:00", "12:00", "10:00", "11:00", true},
		{"identical", "09:00", "10:00", "09:00", "10:00", true},
		{"one minute shared", "09:00", "10:01", "10:00", "11:00", true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			a1, a2 := tod(t, tc.aStart), tod(t, tc.aEnd)
			b1, b2 := tod(t, tc.bStart), tod(t, tc.bEnd)
			if got := Overlaps(a1, a2, b1, b2); got != tc.want {
				t.Errorf("Overlaps(%s-%s, %s-%s) = %v, want %v",
					tc.aStart, tc.aEnd, tc.bStart, tc.bEnd, got, tc.want)
			}
			// simetris terhadap urutan argumen
			if got := Overlaps(b1, b2, a1, a2); got != tc.want {
				t.Errorf("Overlaps(%s-%s, %s-%s) = %v, want %v (swapped)",
					tc.bStart, tc.bEnd, tc.aStart, tc.aEnd, got, tc.want)
			}
		})
	}
}
