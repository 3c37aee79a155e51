// file: internals/features/bimbel/timetable/dto/timetable_entry_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	"bimbelku_backend/internals/constants"
	m "bimbelku_backend/internals/features/bimbel/timetable/model"
	svc "bimbelku_backend/internals/features/bimbel/timetable/service"
	"bimbelku_backend/internals/helpers/dbtime"
)

/* =========================
   Requests
   ========================= */

type CreateTimetableEntryRequest struct {
	ClassID   string  `json:"class_id" validate:"required,uuid4"`
	SubjectID string  `json:"subject_id" validate:"required,uuid4"`
	TeacherID string  `json:"teacher_id" validate:"required,uuid4"`
	DayOfWeek string  `json:"day_of_week" validate:"required"`
	StartTime string  `json:"start_time" validate:"required"`
	EndTime   string  `json:"end_time" validate:"required"`
	Room      *string `json:"room,omitempty" validate:"omitempty,max=100"`
	IsPrimary bool    `json:"is_primary"`
}

// ToInput: parse field wire-format (nama hari, HH:MM) jadi input
// service. Error parse di sini = 400, bukan urusan service.
func (r CreateTimetableEntryRequest) ToInput() (svc.CreateEntryInput, error) {
	var in svc.CreateEntryInput

	classID, err := uuid.Parse(r.ClassID)
	if err != nil {
		return in, &svc.ValidationError{Msg: "class_id is not a valid uuid"}
	}
	subjectID, err := uuid.Parse(r.SubjectID)
	if err != nil {
		return in, &svc.ValidationError{Msg: "subject_id is not a valid uuid"}
	}
	teacherID, err := uuid.Parse(r.TeacherID)
	if err != nil {
		return in, &svc.ValidationError{Msg: "teacher_id is not a valid uuid"}
	}
	day, err := constants.ParseDayOfWeek(r.DayOfWeek)
	if err != nil {
		return in, &svc.ValidationError{Msg: err.Error()}
	}
	start, err := dbtime.Parse(r.StartTime)
	if err != nil {
		return in, &svc.ValidationError{Msg: "start_time must be HH:MM (24h)"}
	}
	end, err := dbtime.Parse(r.EndTime)
	if err != nil {
		return in, &svc.ValidationError{Msg: "end_time must be HH:MM (24h)"}
	}

	in = svc.CreateEntryInput{
		ClassID:   classID,
		SubjectID: subjectID,
		TeacherID: teacherID,
		DayOfWeek: day,
		StartTime: start,
		EndTime:   end,
		Room:      r.Room,
		IsPrimary: r.IsPrimary,
	}
	return in, nil
}

type UpdateTimetableEntryRequest struct {
	ClassID   *string `json:"class_id,omitempty" validate:"omitempty,uuid4"`
	SubjectID *string `json:"subject_id,omitempty" validate:"omitempty,uuid4"`
	TeacherID *string `json:"teacher_id,omitempty" validate:"omitempty,uuid4"`
	DayOfWeek *string `json:"day_of_week,omitempty"`
	StartTime *string `json:"start_time,omitempty"`
	EndTime   *string `json:"end_time,omitempty"`
	Room      *string `json:"room,omitempty" validate:"omitempty,max=100"`
	IsPrimary *bool   `json:"is_primary,omitempty"`
}

func (r UpdateTimetableEntryRequest) ToPatch() (svc.UpdateEntryInput, error) {
	var p svc.UpdateEntryInput

	if r.ClassID != nil {
		id, err := uuid.Parse(*r.ClassID)
		if err != nil {
			return p, &svc.ValidationError{Msg: "class_id is not a valid uuid"}
		}
		p.ClassID = &id
	}
	if r.SubjectID != nil {
		id, err := uuid.Parse(*r.SubjectID)
		if err != nil {
			return p, &svc.ValidationError{Msg: "subject_id is not a valid uuid"}
		}
		p.SubjectID = &id
	}
	if r.TeacherID != nil {
		id, err := uuid.Parse(*r.TeacherID)
		if err != nil {
			return p, &svc.ValidationError{Msg: "teacher_id is not a valid uuid"}
		}
		p.TeacherID = &id
	}
	if r.DayOfWeek != nil {
		day, err := constants.ParseDayOfWeek(*r.DayOfWeek)
		if err != nil {
			return p, &svc.ValidationError{Msg: err.Error()}
		}
		p.DayOfWeek = &day
	}
	if r.StartTime != nil {
		t, err := dbtime.Parse(*r.StartTime)
		if err != nil {
			return p, &svc.ValidationError{Msg: "start_time must be HH:MM (24h)"}
		}
		p.StartTime = &t
	}
	if r.EndTime != nil {
		t, err := dbtime.Parse(*r.EndTime)
		if err != nil {
			return p, &svc.ValidationError{Msg: "end_time must be HH:MM (24h)"}
		}
		p.EndTime = &t
	}
	p.Room = r.Room
	p.IsPrimary = r.IsPrimary
	return p, nil
}

type CheckConflictRequest struct {
	TeacherID string `json:"teacher_id" validate:"required,uuid4"`
	DayOfWeek string `json:"day_of_week" validate:"required"`
	StartTime string `json:"start_time" validate:"required"`
	EndTime   string `json:"end_time" validate:"required"`
	ExcludeID string `json:"exclude_entry_id,omitempty" validate:"omitempty,uuid4"`
}

/* =========================
   Responses
   ========================= */

type TimetableEntryResponse struct {
	TimetableEntryID           string     `json:"timetable_entry_id"`
	TimetableEntryBimbelID     string     `json:"timetable_entry_bimbel_id"`
	TimetableEntryClassID      string     `json:"timetable_entry_class_id"`
	TimetableEntrySubjectID    string     `json:"timetable_entry_subject_id"`
	TimetableEntryTeacherID    string     `json:"timetable_entry_teacher_id"`
	TimetableEntryAssignmentID *string    `json:"timetable_entry_assignment_id,omitempty"`
	TimetableEntryDayOfWeek    string     `json:"timetable_entry_day_of_week"`
	TimetableEntryStartTime    string     `json:"timetable_entry_start_time"`
	TimetableEntryEndTime      string     `json:"timetable_entry_end_time"`
	TimetableEntryRoom         *string    `json:"timetable_entry_room,omitempty"`
	TimetableEntryClassName    string     `json:"timetable_entry_class_name,omitempty"`
	TimetableEntrySubjectName  string     `json:"timetable_entry_subject_name,omitempty"`
	TimetableEntryTeacherName  string     `json:"timetable_entry_teacher_name,omitempty"`
	TimetableEntryIsActive     bool       `json:"timetable_entry_is_active"`
	TimetableEntryCreatedAt    time.Time  `json:"timetable_entry_created_at"`
	TimetableEntryUpdatedAt    *time.Time `json:"timetable_entry_updated_at,omitempty"`
}

func FromTimetableEntryModel(e *m.TimetableEntryModel) TimetableEntryResponse {
	resp := TimetableEntryResponse{
		TimetableEntryID:        e.TimetableEntryID.String(),
		TimetableEntryBimbelID:  e.TimetableEntryBimbelID.String(),
		TimetableEntryClassID:   e.TimetableEntryClassID.String(),
		TimetableEntrySubjectID: e.TimetableEntrySubjectID.String(),
		TimetableEntryTeacherID: e.TimetableEntryTeacherID.String(),
		TimetableEntryDayOfWeek: constants.DayName(e.TimetableEntryDayOfWeek),
		TimetableEntryStartTime: e.TimetableEntryStartTime.String(),
		TimetableEntryEndTime:   e.TimetableEntryEndTime.String(),
		TimetableEntryRoom:      e.TimetableEntryRoom,
		TimetableEntryIsActive:  e.TimetableEntryIsActive,
		TimetableEntryCreatedAt: e.TimetableEntryCreatedAt,
	}
	if e.TimetableEntryAssignmentID != nil {
		s := e.TimetableEntryAssignmentID.String()
		resp.TimetableEntryAssignmentID = &s
	}
	if !e.TimetableEntryUpdatedAt.IsZero() {
		t := e.TimetableEntryUpdatedAt
		resp.TimetableEntryUpdatedAt = &t
	}
	snap := e.NameSnapshot()
	resp.TimetableEntryClassName = snap.ClassName
	resp.TimetableEntrySubjectName = snap.SubjectName
	resp.TimetableEntryTeacherName = snap.TeacherName
	return resp
}

func FromTimetableEntryModels(list []m.TimetableEntryModel) []TimetableEntryResponse {
	out := make([]TimetableEntryResponse, 0, len(list))
	for i := range list {
		out = append(out, FromTimetableEntryModel(&list[i]))
	}
	return out
}

type CheckConflictResponse struct {
	HasConflict bool                 `json:"has_conflict"`
	Conflicts   []svc.ConflictDetail `json:"conflicts"`
}
