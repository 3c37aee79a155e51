package constants

import "testing"

func TestParseDayOfWeek(t *testing.T) {
	cases := []struct {
		in      string
		want    int
		wantErr bool
	}{
		{"MONDAY", DayMonday, false},
		{"SUNDAY", DaySunday, false},
		{"wednesday", DayWednesday, false},
		{" Friday ", DayFriday, false},
		{"", 0, true},
		{"FUNDAY", 0, true},
		{"1", 0, true},
	}
	for _, tc := range cases {
		got, err := ParseDayOfWeek(tc.in)
		if (err != nil) != tc.wantErr {
			t.Errorf("ParseDayOfWeek(%q) err = %v, wantErr %v", tc.in, err, tc.wantErr)
			continue
		}
		if err == nil && got != tc.want {
			t.Errorf("ParseDayOfWeek(%q) = %d, want %d", tc.in, got, tc.want)
		}
	}
}

func TestDayNameRoundTrip(t *testing.T) {
	for d := DayMonday; d <= DaySunday; d++ {
		name := DayName(d)
		back, err := ParseDayOfWeek(name)
		if err != nil {
			t.Fatalf("DayName(%d) = %q does not parse back: %v", d, name, err)
		}
		if back != d {
			t.Errorf("round trip %d → %q → %d", d, name, back)
		}
	}
}

func TestDayNameOutOfRange(t *testing.T) {
	if got := DayName(0); got != "" {
		t.Errorf("DayName(0) = %q, want empty", got)
	}
	if got := DayName(8); got != "" {
		t.Errorf("DayName(8) = %q, want empty", got)
	}
}
