// file: internals/helpers/dbtime/tod.go
package dbtime

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// Tod = time-of-day, resolusi menit, map ke kolom Postgres TIME.
// Format wire: "HH:MM" 24 jam, zero-padded.
type Tod struct{ time.Time }

// From: bikin Tod dari time.Time (ambil HH:mm, buang tanggal & zona)
func From(t time.Time) Tod {
	return Tod{
		Time: time.Date(0, 1, 1, t.Hour(), t.Minute(), 0, 0, time.UTC),
	}
}

// Parse: bikin Tod dari string "HH:MM" (strict: 00-23 / 00-59, zero-padded)
func Parse(s string) (Tod, error) {
	var tt Tod
	return tt, tt.parse(s)
}

func (t *Tod) parse(s string) error {
	s = strings.TrimSpace(s)
	if len(s) != 5 || s[2] != ':' {
		return fmt.Errorf("invalid time %q (want HH:MM)", s)
	}
	tt, err := time.Parse("15:04", s)
	if err != nil {
		return fmt.Errorf("invalid time %q (want HH:MM): %w", s, err)
	}
	t.Time = time.Date(0, 1, 1, tt.Hour(), tt.Minute(), 0, 0, time.UTC)
	return nil
}

// trimSeconds: kolom TIME Postgres datang sebagai "HH:MM:SS"
func trimSeconds(s string) string {
	s = strings.TrimSpace(s)
	if len(s) == 8 && s[2] == ':' && s[5] == ':' {
		return s[:5]
	}
	return s
}

// Scan: terima time.Time atau string ("HH:MM[:SS]")
func (t *Tod) Scan(v any) error {
	switch x := v.(type) {
	case time.Time:
		t.Time = time.Date(0, 1, 1, x.Hour(), x.Minute(), 0, 0, time.UTC)
		return nil
	case []byte:
		return t.parse(trimSeconds(string(x)))
	case string:
		return t.parse(trimSeconds(x))
	case nil:
		t.Time = time.Time{}
		return nil
	default:
		return fmt.Errorf("tod: unsupported Scan type %T", v)
	}
}

// Value: kirim "HH:MM:SS" agar Postgres TIME paham
func (t Tod) Value() (driver.Value, error) {
	return t.Format("15:04") + ":00", nil
}

// Minutes: menit sejak 00:00 — basis perbandingan interval
func (t Tod) Minutes() int {
	return t.Hour()*60 + t.Minute()
}

// Before: t < other (resolusi menit)
func (t Tod) Before(other Tod) bool {
	return t.Minutes() < other.Minutes()
}

func (t Tod) Equal(other Tod) bool {
	return t.Minutes() == other.Minutes()
}

func (t Tod) String() string {
	return t.Format("15:04")
}

// JSON codec: selalu "HH:MM"
func (t Tod) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.Format("15:04"))
}

func (t *Tod) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	return t.parse(s)
}
