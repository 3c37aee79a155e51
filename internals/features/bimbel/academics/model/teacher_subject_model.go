// file: internals/features/bimbel/academics/model/teacher_subject_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

/* =======================================================
   TeacherSubjectModel — kualifikasi: teacher boleh mengampu subject.
   Unique (alive): (teacher_subject_teacher_id, teacher_subject_subject_id)
   ======================================================= */

type TeacherSubjectModel struct {
	TeacherSubjectID uuid.UUID `json:"teacher_subject_id" gorm:"type:uuid;primaryKey;column:teacher_subject_id;default:gen_random_uuid()"`

	TeacherSubjectBimbelID  uuid.UUID `json:"teacher_subject_bimbel_id" gorm:"type:uuid;not null;column:teacher_subject_bimbel_id;index"`
	TeacherSubjectTeacherID uuid.UUID `json:"teacher_subject_teacher_id" gorm:"type:uuid;not null;column:teacher_subject_teacher_id;index"`
	TeacherSubjectSubjectID uuid.UUID `json:"teacher_subject_subject_id" gorm:"type:uuid;not null;column:teacher_subject_subject_id;index"`

	TeacherSubjectCreatedAt time.Time      `json:"teacher_subject_created_at" gorm:"column:teacher_subject_created_at;not null;autoCreateTime"`
	TeacherSubjectDeletedAt gorm.DeletedAt `json:"teacher_subject_deleted_at" gorm:"column:teacher_subject_deleted_at;index"`
}

func (TeacherSubjectModel) TableName() string {
	return "teacher_subjects"
}
