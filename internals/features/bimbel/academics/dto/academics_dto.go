// file: internals/features/bimbel/academics/dto/academics_dto.go
package dto

import (
	"time"

	m "bimbelku_backend/internals/features/bimbel/academics/model"
)

/* =========================
   Class
   ========================= */

type CreateClassRequest struct {
	ClassName  string  `json:"class_name" validate:"required,min=1,max=150"`
	ClassLevel *string `json:"class_level,omitempty" validate:"omitempty,max=50"`
}

type UpdateClassRequest struct {
	ClassName  *string `json:"class_name,omitempty" validate:"omitempty,min=1,max=150"`
	ClassLevel *string `json:"class_level,omitempty" validate:"omitempty,max=50"`
	IsActive   *bool   `json:"class_is_active,omitempty"`
}

type ClassResponse struct {
	ClassID        string    `json:"class_id"`
	ClassBimbelID  string    `json:"class_bimbel_id"`
	ClassName      string    `json:"class_name"`
	ClassLevel     *string   `json:"class_level,omitempty"`
	ClassIsActive  bool      `json:"class_is_active"`
	ClassCreatedAt time.Time `json:"class_created_at"`
}

func FromClassModel(c *m.ClassModel) ClassResponse {
	return ClassResponse{
		ClassID:        c.ClassID.String(),
		ClassBimbelID:  c.ClassBimbelID.String(),
		ClassName:      c.ClassName,
		ClassLevel:     c.ClassLevel,
		ClassIsActive:  c.ClassIsActive,
		ClassCreatedAt: c.ClassCreatedAt,
	}
}

func FromClassModels(list []m.ClassModel) []ClassResponse {
	out := make([]ClassResponse, 0, len(list))
	for i := range list {
		out = append(out, FromClassModel(&list[i]))
	}
	return out
}

/* =========================
   Subject
   ========================= */

type CreateSubjectRequest struct {
	SubjectName string  `json:"subject_name" validate:"required,min=1,max=150"`
	SubjectCode *string `json:"subject_code,omitempty" validate:"omitempty,max=30"`
}

type UpdateSubjectRequest struct {
	SubjectName *string `json:"subject_name,omitempty" validate:"omitempty,min=1,max=150"`
	SubjectCode *string `json:"subject_code,omitempty" validate:"omitempty,max=30"`
	IsActive    *bool   `json:"subject_is_active,omitempty"`
}

type SubjectResponse struct {
	SubjectID        string    `json:"subject_id"`
	SubjectBimbelID  string    `json:"subject_bimbel_id"`
	SubjectName      string    `json:"subject_name"`
	SubjectCode      *string   `json:"subject_code,omitempty"`
	SubjectIsActive  bool      `json:"subject_is_active"`
	SubjectCreatedAt time.Time `json:"subject_created_at"`
}

func FromSubjectModel(s *m.SubjectModel) SubjectResponse {
	return SubjectResponse{
		SubjectID:        s.SubjectID.String(),
		SubjectBimbelID:  s.SubjectBimbelID.String(),
		SubjectName:      s.SubjectName,
		SubjectCode:      s.SubjectCode,
		SubjectIsActive:  s.SubjectIsActive,
		SubjectCreatedAt: s.SubjectCreatedAt,
	}
}

func FromSubjectModels(list []m.SubjectModel) []SubjectResponse {
	out := make([]SubjectResponse, 0, len(list))
	for i := range list {
		out = append(out, FromSubjectModel(&list[i]))
	}
	return out
}

/* =========================
   Teacher
   ========================= */

type CreateTeacherRequest struct {
	TeacherName  string  `json:"teacher_name" validate:"required,min=1,max=150"`
	TeacherEmail *string `json:"teacher_email,omitempty" validate:"omitempty,email"`
	TeacherPhone *string `json:"teacher_phone,omitempty" validate:"omitempty,max=30"`
}

type UpdateTeacherRequest struct {
	TeacherName  *string `json:"teacher_name,omitempty" validate:"omitempty,min=1,max=150"`
	TeacherEmail *string `json:"teacher_email,omitempty" validate:"omitempty,email"`
	TeacherPhone *string `json:"teacher_phone,omitempty" validate:"omitempty,max=30"`
	IsActive     *bool   `json:"teacher_is_active,omitempty"`
}

type TeacherResponse struct {
	TeacherID                string    `json:"teacher_id"`
	TeacherBimbelID          string    `json:"teacher_bimbel_id"`
	TeacherName              string    `json:"teacher_name"`
	TeacherEmail             *string   `json:"teacher_email,omitempty"`
	TeacherPhone             *string   `json:"teacher_phone,omitempty"`
	TeacherSubjectNamesCache []string  `json:"teacher_subject_names_cache"`
	TeacherIsActive          bool      `json:"teacher_is_active"`
	TeacherCreatedAt         time.Time `json:"teacher_created_at"`
}

func FromTeacherModel(t *m.TeacherModel) TeacherResponse {
	names := make([]string, 0, len(t.TeacherSubjectNamesCache))
	names = append(names, t.TeacherSubjectNamesCache...)
	return TeacherResponse{
		TeacherID:                t.TeacherID.String(),
		TeacherBimbelID:          t.TeacherBimbelID.String(),
		TeacherName:              t.TeacherName,
		TeacherEmail:             t.TeacherEmail,
		TeacherPhone:             t.TeacherPhone,
		TeacherSubjectNamesCache: names,
		TeacherIsActive:          t.TeacherIsActive,
		TeacherCreatedAt:         t.TeacherCreatedAt,
	}
}

func FromTeacherModels(list []m.TeacherModel) []TeacherResponse {
	out := make([]TeacherResponse, 0, len(list))
	for i := range list {
		out = append(out, FromTeacherModel(&list[i]))
	}
	return out
}

/* =========================
   Qualification (teacher_subjects)
   ========================= */

type AddTeacherSubjectRequest struct {
	SubjectID string `json:"subject_id" validate:"required,uuid4"`
}
