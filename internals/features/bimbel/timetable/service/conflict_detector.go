// file: internals/features/bimbel/timetable/service/conflict_detector.go
package service

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"bimbelku_backend/internals/constants"
	m "bimbelku_backend/internals/features/bimbel/timetable/model"
	"bimbelku_backend/internals/helpers/dbtime"
)

/* =======================================================
   ConflictDetector — scan linear entry aktif (teacher, day) terhadap
   kandidat. Working set kecil (jumlah kelas harian satu teacher),
   jadi linear scan cukup.
   ======================================================= */

// Candidate: slot yang sedang diuji (create: ExcludeID = uuid.Nil,
// update: ExcludeID = id entry sendiri supaya tidak self-conflict).
type Candidate struct {
	ExcludeID uuid.UUID
	ClassID   uuid.UUID
	SubjectID uuid.UUID
	TeacherID uuid.UUID
	DayOfWeek int
	StartTime dbtime.Tod
	EndTime   dbtime.Tod
}

// ScanResult: Duplicate diisi kalau ada entry identik
// (class+subject+teacher+day+start); Overlapping berisi SEMUA entry
// yang rentangnya beririsan (bukan cuma yang pertama).
type ScanResult struct {
	Duplicate   *m.TimetableEntryModel
	Overlapping []m.TimetableEntryModel
}

type ConflictDetector struct{}

// FetchActive: ambil entry aktif+alive satu (bimbel, teacher, day),
// minus ExcludeID. Pemanggil yang menentukan db ber-lock atau tidak.
func (ConflictDetector) FetchActive(db *gorm.DB, bimbelID, teacherID uuid.UUID, dayOfWeek int, excludeID uuid.UUID) ([]m.TimetableEntryModel, error) {
	q := db.
		Where("timetable_entry_bimbel_id = ? AND timetable_entry_teacher_id = ? AND timetable_entry_day_of_week = ? AND timetable_entry_is_active = TRUE",
			bimbelID, teacherID, dayOfWeek)
	if excludeID != uuid.Nil {
		q = q.Where("timetable_entry_id <> ?", excludeID)
	}

	var rows []m.TimetableEntryModel
	if err := q.Order("timetable_entry_start_time ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// Scan: murni in-memory, tanpa side effect — bagian yang dites tanpa DB.
func (ConflictDetector) Scan(existing []m.TimetableEntryModel, cand Candidate) ScanResult {
	var res ScanResult
	for i := range existing {
		e := &existing[i]
		if e.TimetableEntryID == cand.ExcludeID {
			continue
		}
		if e.TimetableEntryClassID == cand.ClassID &&
			e.TimetableEntrySubjectID == cand.SubjectID &&
			e.TimetableEntryStartTime.Equal(cand.StartTime) &&
			res.Duplicate == nil {
			res.Duplicate = e
			continue
		}
		if Overlaps(e.TimetableEntryStartTime, e.TimetableEntryEndTime, cand.StartTime, cand.EndTime) {
			res.Overlapping = append(res.Overlapping, *e)
		}
	}
	return res
}

// FindConflicts: fetch + scan, hasil langsung dalam bentuk detail.
// Dipakai probe CheckConflict DAN pipeline mutasi — logika tunggal.
func (d ConflictDetector) FindConflicts(db *gorm.DB, bimbelID uuid.UUID, cand Candidate) (ScanResult, error) {
	rows, err := d.FetchActive(db, bimbelID, cand.TeacherID, cand.DayOfWeek, cand.ExcludeID)
	if err != nil {
		return ScanResult{}, err
	}
	return d.Scan(rows, cand), nil
}

// Details: map entry bentrok → ConflictDetail (pakai name snapshot).
func Details(entries []m.TimetableEntryModel) []ConflictDetail {
	out := make([]ConflictDetail, 0, len(entries))
	for i := range entries {
		e := &entries[i]
		snap := e.NameSnapshot()
		out = append(out, ConflictDetail{
			EntryID:     e.TimetableEntryID,
			ClassName:   snap.ClassName,
			SubjectName: snap.SubjectName,
			DayOfWeek:   constants.DayName(e.TimetableEntryDayOfWeek),
			StartTime:   e.TimetableEntryStartTime.String(),
			EndTime:     e.TimetableEntryEndTime.String(),
		})
	}
	return out
}
