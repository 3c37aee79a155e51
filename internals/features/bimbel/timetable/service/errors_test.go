package service

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

type fakePgErr struct{ code string }

func (e *fakePgErr) Error() string    { return "pq: state " + e.code }
func (e *fakePgErr) SQLState() string { return e.code }

func TestIsRetryableTxErr(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, false},
		{"serialization failure", &fakePgErr{code: "40001"}, true},
		{"deadlock", &fakePgErr{code: "40P01"}, true},
		{"wrapped deadlock", fmt.Errorf("tx: %w", &fakePgErr{code: "40P01"}), true},
		{"unique violation", &fakePgErr{code: "23505"}, false},
		{"plain error", errors.New("connection refused"), false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := isRetryableTxErr(tc.err); got != tc.want {
				t.Errorf("isRetryableTxErr(%v) = %v, want %v", tc.err, got, tc.want)
			}
		})
	}
}

func TestIsDuplicateKeyErr(t *testing.T) {
	if !isDuplicateKeyErr(&fakePgErr{code: "23505"}) {
		t.Error("23505 must map to duplicate key")
	}
	if !isDuplicateKeyErr(errors.New(`pq: duplicate key value violates unique constraint "uq_timetable_entries_slot"`)) {
		t.Error("message fallback must map to duplicate key")
	}
	if isDuplicateKeyErr(&fakePgErr{code: "40001"}) {
		t.Error("40001 is not a duplicate key error")
	}
}

func TestScheduleConflictErrorMessage(t *testing.T) {
	err := &ScheduleConflictError{Conflicts: []ConflictDetail{
		{ClassName: "Kelas 10 IPA", SubjectName: "Matematika", DayOfWeek: "MONDAY", StartTime: "09:00", EndTime: "10:00"},
		{ClassName: "Kelas 11 IPS", SubjectName: "Fisika", DayOfWeek: "MONDAY", StartTime: "09:30", EndTime: "10:30"},
	}}
	msg := err.Error()
	if !strings.Contains(msg, "Kelas 10 IPA") || !strings.Contains(msg, "Kelas 11 IPS") {
		t.Errorf("message should name every conflicting entry: %q", msg)
	}
}

func TestConcurrencyConflictUnwrap(t *testing.T) {
	inner := &fakePgErr{code: "40001"}
	err := &ConcurrencyConflictError{Err: inner}
	var pg *fakePgErr
	if !errors.As(err, &pg) {
		t.Fatal("ConcurrencyConflictError must unwrap to the underlying error")
	}
}
