// file: internals/features/bimbel/timetable/dto/teacher_class_assignment_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	m "bimbelku_backend/internals/features/bimbel/timetable/model"
	svc "bimbelku_backend/internals/features/bimbel/timetable/service"
)

type CreateTeacherClassAssignmentRequest struct {
	ClassID   string `json:"class_id" validate:"required,uuid4"`
	TeacherID string `json:"teacher_id" validate:"required,uuid4"`
	IsPrimary bool   `json:"is_primary"`
}

func (r CreateTeacherClassAssignmentRequest) ToInput() (svc.CreateAssignmentInput, error) {
	var in svc.CreateAssignmentInput
	classID, err := uuid.Parse(r.ClassID)
	if err != nil {
		return in, &svc.ValidationError{Msg: "class_id is not a valid uuid"}
	}
	teacherID, err := uuid.Parse(r.TeacherID)
	if err != nil {
		return in, &svc.ValidationError{Msg: "teacher_id is not a valid uuid"}
	}
	in = svc.CreateAssignmentInput{
		ClassID:   classID,
		TeacherID: teacherID,
		IsPrimary: r.IsPrimary,
	}
	return in, nil
}

type TeacherClassAssignmentResponse struct {
	TeacherClassAssignmentID         string    `json:"teacher_class_assignment_id"`
	TeacherClassAssignmentBimbelID   string    `json:"teacher_class_assignment_bimbel_id"`
	TeacherClassAssignmentClassID    string    `json:"teacher_class_assignment_class_id"`
	TeacherClassAssignmentTeacherID  string    `json:"teacher_class_assignment_teacher_id"`
	TeacherClassAssignmentIsPrimary  bool      `json:"teacher_class_assignment_is_primary"`
	TeacherClassAssignmentAssignedAt time.Time `json:"teacher_class_assignment_assigned_at"`
}

func FromTeacherClassAssignmentModel(a *m.TeacherClassAssignmentModel) TeacherClassAssignmentResponse {
	return TeacherClassAssignmentResponse{
		TeacherClassAssignmentID:         a.TeacherClassAssignmentID.String(),
		TeacherClassAssignmentBimbelID:   a.TeacherClassAssignmentBimbelID.String(),
		TeacherClassAssignmentClassID:    a.TeacherClassAssignmentClassID.String(),
		TeacherClassAssignmentTeacherID:  a.TeacherClassAssignmentTeacherID.String(),
		TeacherClassAssignmentIsPrimary:  a.TeacherClassAssignmentIsPrimary,
		TeacherClassAssignmentAssignedAt: a.TeacherClassAssignmentAssignedAt,
	}
}

func FromTeacherClassAssignmentModels(list []m.TeacherClassAssignmentModel) []TeacherClassAssignmentResponse {
	out := make([]TeacherClassAssignmentResponse, 0, len(list))
	for i := range list {
		out = append(out, FromTeacherClassAssignmentModel(&list[i]))
	}
	return out
}
