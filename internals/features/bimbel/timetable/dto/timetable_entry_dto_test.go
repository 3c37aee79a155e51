package dto

import (
	"errors"
	"testing"

	"github.com/google/uuid"

	svc "bimbelku_backend/internals/features/bimbel/timetable/service"
)

func validCreateRequest() CreateTimetableEntryRequest {
	return CreateTimetableEntryRequest{
		ClassID:   uuid.NewString(),
		SubjectID: uuid.NewString(),
		TeacherID: uuid.NewString(),
		DayOfWeek: "MONDAY",
		StartTime: "09:00",
		EndTime:   "10:30",
	}
}

func TestCreateRequestToInput(t *testing.T) {
	in, err := validCreateRequest().ToInput()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if in.DayOfWeek != 1 {
		t.Errorf("day = %d, want 1", in.DayOfWeek)
	}
	if in.StartTime.String() != "09:00" || in.EndTime.String() != "10:30" {
		t.Errorf("times = %s-%s", in.StartTime, in.EndTime)
	}
}

func TestCreateRequestToInputRejectsBadFields(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*CreateTimetableEntryRequest)
	}{
		{"bad class uuid", func(r *CreateTimetableEntryRequest) { r.ClassID = "not-a-uuid" }},
		{"bad day name", func(r *CreateTimetableEntryRequest) { r.DayOfWeek = "SOMEDAY" }},
		{"numeric day", func(r *CreateTimetableEntryRequest) { r.DayOfWeek = "1" }},
		{"seconds in start", func(r *CreateTimetableEntryRequest) { r.StartTime = "09:00:30" }},
		{"non padded hour", func(r *CreateTimetableEntryRequest) { r.StartTime = "9:00" }},
		{"out of range time", func(r *CreateTimetableEntryRequest) { r.EndTime = "24:00" }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := validCreateRequest()
			tc.mutate(&req)
			_, err := req.ToInput()
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			var ve *svc.ValidationError
			if !errors.As(err, &ve) {
				t.Errorf("error type = %T, want *service.ValidationError", err)
			}
		})
	}
}

func TestUpdateRequestToPatch(t *testing.T) {
	day := "FRIDAY"
	start := "13:00"
	req := UpdateTimetableEntryRequest{DayOfWeek: &day, StartTime: &start}

	patch, err := req.ToPatch()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if patch.DayOfWeek == nil || *patch.DayOfWeek != 5 {
		t.Errorf("day patch = %v, want 5", patch.DayOfWeek)
	}
	if patch.StartTime == nil || patch.StartTime.String() != "13:00" {
		t.Errorf("start patch = %v", patch.StartTime)
	}
	if patch.EndTime != nil || patch.ClassID != nil || patch.TeacherID != nil {
		t.Error("untouched fields must stay nil")
	}
}

func TestUpdateRequestToPatchRejectsBadTime(t *testing.T) {
	bad := "25:00"
	req := UpdateTimetableEntryRequest{EndTime: &bad}
	if _, err := req.ToPatch(); err == nil {
		t.Fatal("expected error for 25:00")
	}
}
