package constants

import (
	"fmt"
	"strings"
)

/* =======================================================
   Day-of-week enum (boundary format: MONDAY..SUNDAY)
   Disimpan sebagai int 1..7 di DB supaya ordering natural.
   ======================================================= */

const (
	DayMonday    = 1
	DayTuesday   = 2
	DayWednesday = 3
	DayThursday  = 4
	DayFriday    = 5
	DaySaturday  = 6
	DaySunday    = 7
)

var dayNames = [...]string{
	DayMonday:    "MONDAY",
	DayTuesday:   "TUESDAY",
	DayWednesday: "WEDNESDAY",
	DayThursday:  "THURSDAY",
	DayFriday:    "FRIDAY",
	DaySaturday:  "SATURDAY",
	DaySunday:    "SUNDAY",
}

// ParseDayOfWeek menerima "MONDAY".."SUNDAY" (case-insensitive) → 1..7
func ParseDayOfWeek(s string) (int, error) {
	u := strings.ToUpper(strings.TrimSpace(s))
	for i := DayMonday; i <= DaySunday; i++ {
		if dayNames[i] == u {
			return i, nil
		}
	}
	return 0, fmt.Errorf("invalid day_of_week %q (want MONDAY..SUNDAY)", s)
}

// DayName: 1..7 → "MONDAY".."SUNDAY"; kosong jika di luar range
func DayName(d int) string {
	if d < DayMonday || d > DaySunday {
		return ""
	}
	return dayNames[d]
}

func IsValidDay(d int) bool {
	return d >= DayMonday && d <= DaySunday
}
