// file: internals/features/bimbel/academics/model/class_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

/* =======================================================
   ClassModel — map ke tabel classes (rombongan belajar)
   ======================================================= */

type ClassModel struct {
	// PK
	ClassID uuid.UUID `json:"class_id" gorm:"type:uuid;primaryKey;column:class_id;default:gen_random_uuid()"`

	// Tenant / scope
	ClassBimbelID uuid.UUID `json:"class_bimbel_id" gorm:"type:uuid;not null;column:class_bimbel_id;index"`

	ClassName  string  `json:"class_name" gorm:"type:text;not null;column:class_name"`
	ClassLevel *string `json:"class_level,omitempty" gorm:"type:text;column:class_level"`

	ClassIsActive bool `json:"class_is_active" gorm:"type:boolean;not null;default:true;column:class_is_active"`

	ClassCreatedAt time.Time      `json:"class_created_at" gorm:"column:class_created_at;not null;autoCreateTime"`
	ClassUpdatedAt time.Time      `json:"class_updated_at" gorm:"column:class_updated_at;not null;autoUpdateTime"`
	ClassDeletedAt gorm.DeletedAt `json:"class_deleted_at" gorm:"column:class_deleted_at;index"`
}

func (ClassModel) TableName() string {
	return "classes"
}
