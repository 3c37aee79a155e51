// file: internals/features/bimbel/timetable/model/teacher_class_assignment_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

/* =======================================================
   TeacherClassAssignmentModel — roster fact: teacher terkait dengan
   class, tanpa semantik waktu. Tidak pernah kena cek konflik maupun
   kualifikasi.

   Invariant primary: maksimal 1 assignment alive per class dengan
   is_primary=true (backstop: partial unique index di schema).
   ======================================================= */

type TeacherClassAssignmentModel struct {
	TeacherClassAssignmentID uuid.UUID `json:"teacher_class_assignment_id" gorm:"type:uuid;primaryKey;column:teacher_class_assignment_id;default:gen_random_uuid()"`

	TeacherClassAssignmentBimbelID  uuid.UUID `json:"teacher_class_assignment_bimbel_id" gorm:"type:uuid;not null;column:teacher_class_assignment_bimbel_id;index"`
	TeacherClassAssignmentClassID   uuid.UUID `json:"teacher_class_assignment_class_id" gorm:"type:uuid;not null;column:teacher_class_assignment_class_id;index"`
	TeacherClassAssignmentTeacherID uuid.UUID `json:"teacher_class_assignment_teacher_id" gorm:"type:uuid;not null;column:teacher_class_assignment_teacher_id;index"`

	TeacherClassAssignmentIsPrimary bool `json:"teacher_class_assignment_is_primary" gorm:"type:boolean;not null;default:false;column:teacher_class_assignment_is_primary"`

	TeacherClassAssignmentAssignedAt time.Time      `json:"teacher_class_assignment_assigned_at" gorm:"column:teacher_class_assignment_assigned_at;not null;autoCreateTime"`
	TeacherClassAssignmentUpdatedAt  time.Time      `json:"teacher_class_assignment_updated_at" gorm:"column:teacher_class_assignment_updated_at;not null;autoUpdateTime"`
	TeacherClassAssignmentDeletedAt  gorm.DeletedAt `json:"teacher_class_assignment_deleted_at" gorm:"column:teacher_class_assignment_deleted_at;index"`
}

func (TeacherClassAssignmentModel) TableName() string {
	return "teacher_class_assignments"
}
