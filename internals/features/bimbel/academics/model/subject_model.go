// file: internals/features/bimbel/academics/model/subject_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SubjectModel struct {
	// PK
	SubjectID uuid.UUID `json:"subject_id" gorm:"type:uuid;primaryKey;column:subject_id;default:gen_random_uuid()"`

	// Tenant / scope
	SubjectBimbelID uuid.UUID `json:"subject_bimbel_id" gorm:"type:uuid;not null;column:subject_bimbel_id;index"`

	SubjectName string  `json:"subject_name" gorm:"type:text;not null;column:subject_name"`
	SubjectCode *string `json:"subject_code,omitempty" gorm:"type:text;column:subject_code"`

	SubjectIsActive bool `json:"subject_is_active" gorm:"type:boolean;not null;default:true;column:subject_is_active"`

	SubjectCreatedAt time.Time      `json:"subject_created_at" gorm:"column:subject_created_at;not null;autoCreateTime"`
	SubjectUpdatedAt time.Time      `json:"subject_updated_at" gorm:"column:subject_updated_at;not null;autoUpdateTime"`
	SubjectDeletedAt gorm.DeletedAt `json:"subject_deleted_at" gorm:"column:subject_deleted_at;index"`
}

func (SubjectModel) TableName() string {
	return "subjects"
}
