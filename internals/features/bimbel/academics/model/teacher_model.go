// file: internals/features/bimbel/academics/model/teacher_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

type TeacherModel struct {
	// PK
	TeacherID uuid.UUID `json:"teacher_id" gorm:"type:uuid;primaryKey;column:teacher_id;default:gen_random_uuid()"`

	// Tenant / scope
	TeacherBimbelID uuid.UUID `json:"teacher_bimbel_id" gorm:"type:uuid;not null;column:teacher_bimbel_id;index"`

	TeacherName  string  `json:"teacher_name" gorm:"type:text;not null;column:teacher_name"`
	TeacherEmail *string `json:"teacher_email,omitempty" gorm:"type:text;column:teacher_email"`
	TeacherPhone *string `json:"teacher_phone,omitempty" gorm:"type:text;column:teacher_phone"`

	// Cache nama mapel yang boleh diampu (denormalized, di-maintain
	// oleh endpoint kualifikasi; sumber kebenaran tetap teacher_subjects)
	TeacherSubjectNamesCache pq.StringArray `json:"teacher_subject_names_cache" gorm:"type:text[];column:teacher_subject_names_cache"`

	TeacherIsActive bool `json:"teacher_is_active" gorm:"type:boolean;not null;default:true;column:teacher_is_active"`

	TeacherCreatedAt time.Time      `json:"teacher_created_at" gorm:"column:teacher_created_at;not null;autoCreateTime"`
	TeacherUpdatedAt time.Time      `json:"teacher_updated_at" gorm:"column:teacher_updated_at;not null;autoUpdateTime"`
	TeacherDeletedAt gorm.DeletedAt `json:"teacher_deleted_at" gorm:"column:teacher_deleted_at;index"`
}

func (TeacherModel) TableName() string {
	return "teachers"
}
