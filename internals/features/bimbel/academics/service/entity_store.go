// file: internals/features/bimbel/academics/service/entity_store.go
package service

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	m "bimbelku_backend/internals/features/bimbel/academics/model"
)

/* =======================================================
   EntityStore — lookup existence/ownership Class/Subject/Teacher
   per tenant. Dipakai core timetable; semua method menerima *gorm.DB
   supaya bisa ikut transaksi pemanggil.
   ======================================================= */

type EntityStore struct{}

func (EntityStore) GetClass(db *gorm.DB, bimbelID, classID uuid.UUID) (*m.ClassModel, error) {
	var row m.ClassModel
	err := db.
		Where("class_id = ? AND class_bimbel_id = ? AND class_is_active = TRUE", classID, bimbelID).
		First(&row).Error
	if err != nil {
		return nil, err
	}
	return &row, nil
}

// GetClassForUpdate: sama, tapi kunci row FOR UPDATE — dipakai sebagai
// titik serialisasi invariant primary per class.
func (EntityStore) GetClassForUpdate(tx *gorm.DB, bimbelID, classID uuid.UUID) (*m.ClassModel, error) {
	var row m.ClassModel
	err := tx.
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("class_id = ? AND class_bimbel_id = ? AND class_is_active = TRUE", classID, bimbelID).
		First(&row).Error
	if err != nil {
		return nil, err
	}
	return &row, nil
}

func (EntityStore) GetSubject(db *gorm.DB, bimbelID, subjectID uuid.UUID) (*m.SubjectModel, error) {
	var row m.SubjectModel
	err := db.
		Where("subject_id = ? AND subject_bimbel_id = ? AND subject_is_active = TRUE", subjectID, bimbelID).
		First(&row).Error
	if err != nil {
		return nil, err
	}
	return &row, nil
}

func (EntityStore) GetTeacher(db *gorm.DB, bimbelID, teacherID uuid.UUID) (*m.TeacherModel, error) {
	var row m.TeacherModel
	err := db.
		Where("teacher_id = ? AND teacher_bimbel_id = ? AND teacher_is_active = TRUE", teacherID, bimbelID).
		First(&row).Error
	if err != nil {
		return nil, err
	}
	return &row, nil
}

// GetTeacherForUpdate: kunci row teacher — titik serialisasi scan konflik
// per (teacher, day). Insert jadwal baru untuk teacher yang sama harus
// antre di lock ini, jadi check-then-act tidak balapan.
func (EntityStore) GetTeacherForUpdate(tx *gorm.DB, bimbelID, teacherID uuid.UUID) (*m.TeacherModel, error) {
	var row m.TeacherModel
	err := tx.
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("teacher_id = ? AND teacher_bimbel_id = ? AND teacher_is_active = TRUE", teacherID, bimbelID).
		First(&row).Error
	if err != nil {
		return nil, err
	}
	return &row, nil
}
