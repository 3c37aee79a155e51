// file: internals/features/bimbel/academics/service/qualification.go
package service

import (
	"time"

	"github.com/google/uuid"
	gocache "github.com/patrickmn/go-cache"
	"gorm.io/gorm"
)

/* =======================================================
   QualificationIndex — read view (teacher → set subject yang boleh
   diampu). Mutasi kualifikasi terjadi di layer CRUD academics; di sini
   hanya dibaca.

   Dua jalur:
   - IsQualifiedTx / QualifiedSubjectNamesTx: query otoritatif, ikut
     transaksi pipeline mutasi timetable.
   - QualifiedSubjectIDs: lookup ber-cache TTL untuk endpoint read.
   ======================================================= */

const qualCacheTTL = 1 * time.Minute

type SubjectRef struct {
	SubjectID   uuid.UUID `json:"subject_id"`
	SubjectName string    `json:"subject_name"`
}

type QualificationIndex struct {
	DB    *gorm.DB
	cache *gocache.Cache
}

func NewQualificationIndex(db *gorm.DB) *QualificationIndex {
	return &QualificationIndex{
		DB:    db,
		cache: gocache.New(qualCacheTTL, 5*time.Minute),
	}
}

// IsQualifiedTx: apakah (teacher, subject) ada di mapping alive.
// Selalu lewat DB (bukan cache) supaya konsisten dengan transaksi pemanggil.
func (q *QualificationIndex) IsQualifiedTx(tx *gorm.DB, teacherID, subjectID uuid.UUID) (bool, error) {
	var n int64
	err := tx.Table("teacher_subjects").
		Where("teacher_subject_teacher_id = ? AND teacher_subject_subject_id = ? AND teacher_subject_deleted_at IS NULL",
			teacherID, subjectID).
		Count(&n).Error
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// QualifiedSubjectsTx: daftar subject yang boleh diampu (id + nama),
// untuk detail QualificationError.
func (q *QualificationIndex) QualifiedSubjectsTx(tx *gorm.DB, teacherID uuid.UUID) ([]SubjectRef, error) {
	var out []SubjectRef
	err := tx.Table("teacher_subjects ts").
		Select("s.subject_id AS subject_id, s.subject_name AS subject_name").
		Joins("JOIN subjects s ON s.subject_id = ts.teacher_subject_subject_id").
		Where("ts.teacher_subject_teacher_id = ? AND ts.teacher_subject_deleted_at IS NULL AND s.subject_deleted_at IS NULL",
			teacherID).
		Order("s.subject_name ASC").
		Scan(&out).Error
	return out, err
}

// QualifiedSubjects: versi ber-cache untuk endpoint read (bukan pipeline mutasi).
func (q *QualificationIndex) QualifiedSubjects(teacherID uuid.UUID) ([]SubjectRef, error) {
	key := teacherID.String()
	if v, ok := q.cache.Get(key); ok {
		if refs, ok := v.([]SubjectRef); ok {
			return refs, nil
		}
	}
	refs, err := q.QualifiedSubjectsTx(q.DB, teacherID)
	if err != nil {
		return nil, err
	}
	q.cache.Set(key, refs, qualCacheTTL)
	return refs, nil
}

// Invalidate: panggil setelah mutasi kualifikasi di layer CRUD.
func (q *QualificationIndex) Invalidate(teacherID uuid.UUID) {
	q.cache.Delete(teacherID.String())
}
