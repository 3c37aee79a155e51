// file: internals/features/bimbel/timetable/model/timetable_entry_model.go
package model

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"bimbelku_backend/internals/helpers/dbtime"
)

/* =======================================================
   TimetableEntryModel — slot mingguan: subject diajar teacher ke
   class pada hari + rentang jam tertentu. Map ke tabel timetable_entries.

   Interval waktu half-open [start, end): end == start slot lain
   berarti back-to-back, bukan bentrok.

   is_active=false = nonaktif (history tetap ada, tapi keluar dari
   scan konflik & listing). deleted_at = row mati total.
   ======================================================= */

type TimetableEntryModel struct {
	// PK
	TimetableEntryID uuid.UUID `json:"timetable_entry_id" gorm:"type:uuid;primaryKey;column:timetable_entry_id;default:gen_random_uuid()"`

	// Tenant / scope
	TimetableEntryBimbelID uuid.UUID `json:"timetable_entry_bimbel_id" gorm:"type:uuid;not null;column:timetable_entry_bimbel_id;index"`

	// Referensi entity store (semua se-tenant)
	TimetableEntryClassID   uuid.UUID `json:"timetable_entry_class_id" gorm:"type:uuid;not null;column:timetable_entry_class_id;index"`
	TimetableEntrySubjectID uuid.UUID `json:"timetable_entry_subject_id" gorm:"type:uuid;not null;column:timetable_entry_subject_id"`
	TimetableEntryTeacherID uuid.UUID `json:"timetable_entry_teacher_id" gorm:"type:uuid;not null;column:timetable_entry_teacher_id;index:idx_timetable_entries_teacher_day"`

	// Opsional: link ke roster fact (teacher_class_assignments)
	TimetableEntryAssignmentID *uuid.UUID `json:"timetable_entry_assignment_id,omitempty" gorm:"type:uuid;column:timetable_entry_assignment_id"`

	// Slot mingguan
	TimetableEntryDayOfWeek int        `json:"timetable_entry_day_of_week" gorm:"type:int;not null;column:timetable_entry_day_of_week;index:idx_timetable_entries_teacher_day"` // 1..7
	TimetableEntryStartTime dbtime.Tod `json:"timetable_entry_start_time" gorm:"type:time;not null;column:timetable_entry_start_time"`
	TimetableEntryEndTime   dbtime.Tod `json:"timetable_entry_end_time" gorm:"type:time;not null;column:timetable_entry_end_time"`

	TimetableEntryRoom *string `json:"timetable_entry_room,omitempty" gorm:"type:text;column:timetable_entry_room"`

	TimetableEntryIsActive bool `json:"timetable_entry_is_active" gorm:"type:boolean;not null;default:true;column:timetable_entry_is_active"`

	// Snapshot nama (class/subject/teacher) saat create/update — dipakai
	// merender detail konflik tanpa join
	TimetableEntryNameSnapshot datatypes.JSON `json:"timetable_entry_name_snapshot,omitempty" gorm:"column:timetable_entry_name_snapshot"`

	TimetableEntryCreatedAt time.Time      `json:"timetable_entry_created_at" gorm:"column:timetable_entry_created_at;not null;autoCreateTime"`
	TimetableEntryUpdatedAt time.Time      `json:"timetable_entry_updated_at" gorm:"column:timetable_entry_updated_at;not null;autoUpdateTime"`
	TimetableEntryDeletedAt gorm.DeletedAt `json:"timetable_entry_deleted_at" gorm:"column:timetable_entry_deleted_at;index"`
}

func (TimetableEntryModel) TableName() string {
	return "timetable_entries"
}

/* =======================================================
   Name snapshot codec
   ======================================================= */

type EntryNameSnapshot struct {
	ClassName   string `json:"class_name"`
	SubjectName string `json:"subject_name"`
	TeacherName string `json:"teacher_name"`
}

func (m *TimetableEntryModel) SetNameSnapshot(s EntryNameSnapshot) error {
	b, err := json.Marshal(s)
	if err != nil {
		return err
	}
	m.TimetableEntryNameSnapshot = datatypes.JSON(b)
	return nil
}

// NameSnapshot: decode snapshot; kosong kalau kolom null/rusak
func (m *TimetableEntryModel) NameSnapshot() EntryNameSnapshot {
	var s EntryNameSnapshot
	if len(m.TimetableEntryNameSnapshot) > 0 {
		_ = json.Unmarshal(m.TimetableEntryNameSnapshot, &s)
	}
	return s
}
