package dbtime

import "testing"

func TestParse(t *testing.T) {
	cases := []struct {
		in      string
		wantMin int
		wantErr bool
	}{
		{"00:00", 0, false},
		{"09:00", 540, false},
		{"23:59", 1439, false},
		{" 10:30 ", 630, false},
		{"09:00:00", 0, true}, // bentuk kolom TIME hanya diterima Scan
		{"24:00", 0, true},
		{"09:60", 0, true},
		{"9:00", 0, true}, // harus zero-padded
		{"0900", 0, true},
		{"", 0, true},
		{"abcde", 0, true},
	}
	for _, tc := range cases {
		got, err := Parse(tc.in)
		if tc.wantErr {
			if err == nil {
				t.Errorf("Parse(%q): expected error, got %v", tc.in, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("Parse(%q): unexpected error %v", tc.in, err)
			continue
		}
		if got.Minutes() != tc.wantMin {
			t.Errorf("Parse(%q).Minutes() = %d, want %d", tc.in, got.Minutes(), tc.wantMin)
		}
	}
}

func TestValueRoundTrip(t *testing.T) {
	tod, err := Parse("09:30")
	if err != nil {
		t.Fatal(err)
	}
	v, err := tod.Value()
	if err != nil {
		t.Fatal(err)
	}
	if v != "09:30:00" {
		t.Errorf("Value() = %v, want 09:30:00", v)
	}

	var back Tod
	if err := back.Scan("09:30:00"); err != nil {
		t.Fatal(err)
	}
	if !back.Equal(tod) {
		t.Errorf("Scan round trip mismatch: %v vs %v", back, tod)
	}
}

func TestBefore(t *testing.T) {
	a, _ := Parse("09:00")
	b, _ := Parse("10:00")
	if !a.Before(b) {
		t.Error("09:00 should be before 10:00")
	}
	if b.Before(a) {
		t.Error("10:00 should not be before 09:00")
	}
	if a.Before(a) {
		t.Error("a time is not before itself")
	}
}
