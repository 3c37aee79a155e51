// file: internals/features/bimbel/timetable/service/timetable_service.go
package service

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"bimbelku_backend/internals/constants"
	academicsModel "bimbelku_backend/internals/features/bimbel/academics/model"
	academicsSvc "bimbelku_backend/internals/features/bimbel/academics/service"
	m "bimbelku_backend/internals/features/bimbel/timetable/model"
	"bimbelku_backend/internals/helpers/dbtime"
)

/* =======================================================
   TimetableService — orkestrasi create/update/delete entry +
   assignment teacher-class. Pemilik boundary transaksi: seluruh urutan
   validate → qualification → conflict scan → demote primary → write
   jalan dalam SATU transaksi, diserialisasi per teacher (lock row
   teacher) dan per class (lock row class).
   ======================================================= */

const maxTxRetries = 3

type TimetableService struct {
	DB    *gorm.DB
	Store academicsSvc.EntityStore
	Qual  *academicsSvc.QualificationIndex
	Det   ConflictDetector
}

func NewTimetableService(db *gorm.DB, qual *academicsSvc.QualificationIndex) *TimetableService {
	return &TimetableService{DB: db, Qual: qual}
}

/* =========================
   Inputs
   ========================= */

type CreateEntryInput struct {
	ClassID   uuid.UUID
	SubjectID uuid.UUID
	TeacherID uuid.UUID
	DayOfWeek int
	StartTime dbtime.Tod
	EndTime   dbtime.Tod
	Room      *string
	IsPrimary bool
}

// UpdateEntryInput: patch parsial — nil = tidak diubah.
type UpdateEntryInput struct {
	ClassID   *uuid.UUID
	SubjectID *uuid.UUID
	TeacherID *uuid.UUID
	DayOfWeek *int
	StartTime *dbtime.Tod
	EndTime   *dbtime.Tod
	Room      *string
	IsPrimary *bool
}

type CreateAssignmentInput struct {
	ClassID   uuid.UUID
	TeacherID uuid.UUID
	IsPrimary bool
}

/* =========================
   Tx plumbing: bounded retry untuk serialization/deadlock
   ========================= */

type pgSQLErr interface {
	SQLState() string
	Error() string
}

// 40001 serialization_failure, 40P01 deadlock_detected
func isRetryableTxErr(err error) bool {
	if err == nil {
		return false
	}
	var pgErr pgSQLErr
	if errors.As(err, &pgErr) {
		switch pgErr.SQLState() {
		case "40001", "40P01":
			return true
		}
	}
	s := strings.ToLower(err.Error())
	return strings.Contains(s, "40001") || strings.Contains(s, "deadlock detected")
}

func isDuplicateKeyErr(err error) bool {
	if err == nil {
		return false
	}
	var pgErr pgSQLErr
	if errors.As(err, &pgErr) && pgErr.SQLState() == "23505" {
		return true
	}
	s := strings.ToLower(err.Error())
	return strings.Contains(s, "duplicate key") || strings.Contains(s, "unique constraint")
}

func (s *TimetableService) runInTx(ctx context.Context, fn func(tx *gorm.DB) error) error {
	var err error
	for attempt := 0; attempt < maxTxRetries; attempt++ {
		err = s.DB.WithContext(ctx).Transaction(fn)
		if err == nil || !isRetryableTxErr(err) {
			return err
		}
	}
	return &ConcurrencyConflictError{Err: err}
}

/* =========================
   Validation (bentuk slot)
   ========================= */

func validateSlot(dayOfWeek int, start, end dbtime.Tod) error {
	if !constants.IsValidDay(dayOfWeek) {
		return &ValidationError{Msg: "day_of_week must be MONDAY..SUNDAY"}
	}
	if start.Minutes() >= end.Minutes() {
		return &ValidationError{Msg: "start_time must be before end_time"}
	}
	return nil
}

/* =========================
   Create
   ========================= */

func (s *TimetableService) CreateEntry(ctx context.Context, bimbelID uuid.UUID, in CreateEntryInput) (*m.TimetableEntryModel, error) {
	if err := validateSlot(in.DayOfWeek, in.StartTime, in.EndTime); err != nil {
		return nil, err
	}

	var created m.TimetableEntryModel
	err := s.runInTx(ctx, func(tx *gorm.DB) error {
		// 1) Resolve + tenant check. Lock class dulu baru teacher —
		// urutan konsisten di semua jalur supaya tidak saling deadlock.
		class, err := s.Store.GetClassForUpdate(tx, bimbelID, in.ClassID)
		if err != nil {
			return asNotFound(err, "class")
		}
		teacher, err := s.Store.GetTeacherForUpdate(tx, bimbelID, in.TeacherID)
		if err != nil {
			return asNotFound(err, "teacher")
		}
		subject, err := s.Store.GetSubject(tx, bimbelID, in.SubjectID)
		if err != nil {
			return asNotFound(err, "subject")
		}

		// 2) Kualifikasi (query otoritatif, bukan cache)
		if err := s.requireQualified(tx, teacher, subject); err != nil {
			return err
		}

		// 3) Duplicate + conflict scan; lock teacher di atas yang
		// menyerialisasi check-then-act per (teacher, day)
		cand := Candidate{
			ClassID:   in.ClassID,
			SubjectID: in.SubjectID,
			TeacherID: in.TeacherID,
			DayOfWeek: in.DayOfWeek,
			StartTime: in.StartTime,
			EndTime:   in.EndTime,
		}
		res, err := s.Det.FindConflicts(tx, bimbelID, cand)
		if err != nil {
			return err
		}
		if res.Duplicate != nil {
			return &DuplicateAssignmentError{ExistingEntryID: res.Duplicate.TimetableEntryID}
		}
		if len(res.Overlapping) > 0 {
			return &ScheduleConflictError{Conflicts: Details(res.Overlapping)}
		}

		// 4) Roster fact; promote bila diminta primary
		var assignmentID *uuid.UUID
		if in.IsPrimary {
			a, err := s.ensureAssignmentTx(tx, bimbelID, in.ClassID, in.TeacherID)
			if err != nil {
				return err
			}
			if err := s.promoteToPrimaryTx(tx, bimbelID, in.ClassID, a.TeacherClassAssignmentID); err != nil {
				return err
			}
			assignmentID = &a.TeacherClassAssignmentID
		}

		// 5) Persist
		entry := m.TimetableEntryModel{
			TimetableEntryBimbelID:     bimbelID,
			TimetableEntryClassID:      in.ClassID,
			TimetableEntrySubjectID:    in.SubjectID,
			TimetableEntryTeacherID:    in.TeacherID,
			TimetableEntryAssignmentID: assignmentID,
			TimetableEntryDayOfWeek:    in.DayOfWeek,
			TimetableEntryStartTime:    in.StartTime,
			TimetableEntryEndTime:      in.EndTime,
			TimetableEntryRoom:         in.Room,
			TimetableEntryIsActive:     true,
		}
		if err := entry.SetNameSnapshot(m.EntryNameSnapshot{
			ClassName:   class.ClassName,
			SubjectName: subject.SubjectName,
			TeacherName: teacher.TeacherName,
		}); err != nil {
			return err
		}
		if err := tx.Create(&entry).Error; err != nil {
			if isDuplicateKeyErr(err) {
				// backstop index unique (class,subject,teacher,day,start) alive
				return &DuplicateAssignmentError{}
			}
			return err
		}
		created = entry
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &created, nil
}

/* =========================
   Update
   ========================= */

func (s *TimetableService) UpdateEntry(ctx context.Context, bimbelID, entryID uuid.UUID, patch UpdateEntryInput) (*m.TimetableEntryModel, error) {
	var updated m.TimetableEntryModel
	err := s.runInTx(ctx, func(tx *gorm.DB) error {
		var existing m.TimetableEntryModel
		if err := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("timetable_entry_id = ? AND timetable_entry_bimbel_id = ? AND timetable_entry_is_active = TRUE",
				entryID, bimbelID).
			First(&existing).Error; err != nil {
			return asNotFound(err, "timetable entry")
		}

		merged := applyEntryPatch(&existing, patch)
		if err := validateSlot(merged.DayOfWeek, merged.StartTime, merged.EndTime); err != nil {
			return err
		}

		// Re-resolve referensi terhadap kandidat hasil merge; lock class
		// lalu teacher, sama seperti jalur create.
		class, err := s.Store.GetClassForUpdate(tx, bimbelID, merged.ClassID)
		if err != nil {
			return asNotFound(err, "class")
		}
		teacher, err := s.Store.GetTeacherForUpdate(tx, bimbelID, merged.TeacherID)
		if err != nil {
			return asNotFound(err, "teacher")
		}
		subject, err := s.Store.GetSubject(tx, bimbelID, merged.SubjectID)
		if err != nil {
			return asNotFound(err, "subject")
		}

		if err := s.requireQualified(tx, teacher, subject); err != nil {
			return err
		}

		// Conflict scan terhadap sisa set aktif — exclude diri sendiri.
		merged.ExcludeID = existing.TimetableEntryID
		res, err := s.Det.FindConflicts(tx, bimbelID, merged)
		if err != nil {
			return err
		}
		if res.Duplicate != nil {
			return &DuplicateAssignmentError{ExistingEntryID: res.Duplicate.TimetableEntryID}
		}
		if len(res.Overlapping) > 0 {
			return &ScheduleConflictError{Conflicts: Details(res.Overlapping)}
		}

		// Promote hanya saat transisi → true
		if patch.IsPrimary != nil && *patch.IsPrimary {
			a, err := s.ensureAssignmentTx(tx, bimbelID, merged.ClassID, merged.TeacherID)
			if err != nil {
				return err
			}
			if err := s.promoteToPrimaryTx(tx, bimbelID, merged.ClassID, a.TeacherClassAssignmentID); err != nil {
				return err
			}
			existing.TimetableEntryAssignmentID = &a.TeacherClassAssignmentID
		}

		existing.TimetableEntryClassID = merged.ClassID
		existing.TimetableEntrySubjectID = merged.SubjectID
		existing.TimetableEntryTeacherID = merged.TeacherID
		existing.TimetableEntryDayOfWeek = merged.DayOfWeek
		existing.TimetableEntryStartTime = merged.StartTime
		existing.TimetableEntryEndTime = merged.EndTime
		if patch.Room != nil {
			existing.TimetableEntryRoom = patch.Room
		}
		if err := existing.SetNameSnapshot(m.EntryNameSnapshot{
			ClassName:   class.ClassName,
			SubjectName: subject.SubjectName,
			TeacherName: teacher.TeacherName,
		}); err != nil {
			return err
		}

		if err := tx.Save(&existing).Error; err != nil {
			if isDuplicateKeyErr(err) {
				return &DuplicateAssignmentError{}
			}
			return err
		}
		updated = existing
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// applyEntryPatch: merge patch di atas entry existing → kandidat.
// Murni, dites tanpa DB.
func applyEntryPatch(existing *m.TimetableEntryModel, patch UpdateEntryInput) Candidate {
	cand := Candidate{
		ClassID:   existing.TimetableEntryClassID,
		SubjectID: existing.TimetableEntrySubjectID,
		TeacherID: existing.TimetableEntryTeacherID,
		DayOfWeek: existing.TimetableEntryDayOfWeek,
		StartTime: existing.TimetableEntryStartTime,
		EndTime:   existing.TimetableEntryEndTime,
	}
	if patch.ClassID != nil {
		cand.ClassID = *patch.ClassID
	}
	if patch.SubjectID != nil {
		cand.SubjectID = *patch.SubjectID
	}
	if patch.TeacherID != nil {
		cand.TeacherID = *patch.TeacherID
	}
	if patch.DayOfWeek != nil {
		cand.DayOfWeek = *patch.DayOfWeek
	}
	if patch.StartTime != nil {
		cand.StartTime = *patch.StartTime
	}
	if patch.EndTime != nil {
		cand.EndTime = *patch.EndTime
	}
	return cand
}

/* =========================
   Delete (soft, is_active=false)
   ========================= */

// DeleteEntry: keluarkan entry dari scan konflik & listing, history
// tetap ada. Tanpa re-check invariant — menghapus entry tidak mungkin
// melanggar overlap maupun primary-count.
func (s *TimetableService) DeleteEntry(ctx context.Context, bimbelID, entryID uuid.UUID) error {
	return s.runInTx(ctx, func(tx *gorm.DB) error {
		var existing m.TimetableEntryModel
		if err := tx.
			Where("timetable_entry_id = ? AND timetable_entry_bimbel_id = ? AND timetable_entry_is_active = TRUE",
				entryID, bimbelID).
			First(&existing).Error; err != nil {
			return asNotFound(err, "timetable entry")
		}
		return tx.Model(&existing).
			Update("timetable_entry_is_active", false).Error
	})
}

/* =========================
   Reads — ordering (day, start) ASC adalah kontrak publik
   (caller merender grid mingguan)
   ========================= */

func (s *TimetableService) ListForTeacher(ctx context.Context, bimbelID, teacherID uuid.UUID, dayOfWeek *int) ([]m.TimetableEntryModel, error) {
	if dayOfWeek != nil && !constants.IsValidDay(*dayOfWeek) {
		return nil, &ValidationError{Msg: "day_of_week must be MONDAY..SUNDAY"}
	}
	q := s.DB.WithContext(ctx).
		Where("timetable_entry_bimbel_id = ? AND timetable_entry_teacher_id = ? AND timetable_entry_is_active = TRUE",
			bimbelID, teacherID)
	if dayOfWeek != nil {
		q = q.Where("timetable_entry_day_of_week = ?", *dayOfWeek)
	}
	var rows []m.TimetableEntryModel
	err := q.Order("timetable_entry_day_of_week ASC, timetable_entry_start_time ASC").Find(&rows).Error
	return rows, err
}

func (s *TimetableService) ListForClass(ctx context.Context, bimbelID, classID uuid.UUID) ([]m.TimetableEntryModel, error) {
	var rows []m.TimetableEntryModel
	err := s.DB.WithContext(ctx).
		Where("timetable_entry_bimbel_id = ? AND timetable_entry_class_id = ? AND timetable_entry_is_active = TRUE",
			bimbelID, classID).
		Order("timetable_entry_day_of_week ASC, timetable_entry_start_time ASC").
		Find(&rows).Error
	return rows, err
}

// CheckConflict: probe bebas side-effect, logika persis sama dengan
// pipeline mutasi (detector yang sama). Tanpa lock — hasilnya BUKAN
// reservasi; commit pesaing yang balapan dengan read ini bisa lolos.
func (s *TimetableService) CheckConflict(ctx context.Context, bimbelID, teacherID uuid.UUID, dayOfWeek int, start, end dbtime.Tod, excludeID uuid.UUID) ([]ConflictDetail, error) {
	if err := validateSlot(dayOfWeek, start, end); err != nil {
		return nil, err
	}
	rows, err := s.Det.FetchActive(s.DB.WithContext(ctx), bimbelID, teacherID, dayOfWeek, excludeID)
	if err != nil {
		return nil, err
	}
	out := make([]ConflictDetail, 0)
	for i := range rows {
		e := &rows[i]
		if Overlaps(e.TimetableEntryStartTime, e.TimetableEntryEndTime, start, end) {
			out = append(out, Details(rows[i:i+1])...)
		}
	}
	return out, nil
}

/* =========================
   Assignments (roster fact, terpisah dari slot waktu)
   ========================= */

// CreateAssignment: link teacher-class polos — tanpa cek kualifikasi
// dan tanpa cek konflik (tidak ada semantik waktu di sini).
func (s *TimetableService) CreateAssignment(ctx context.Context, bimbelID uuid.UUID, in CreateAssignmentInput) (*m.TeacherClassAssignmentModel, error) {
	var created m.TeacherClassAssignmentModel
	err := s.runInTx(ctx, func(tx *gorm.DB) error {
		if _, err := s.Store.GetClassForUpdate(tx, bimbelID, in.ClassID); err != nil {
			return asNotFound(err, "class")
		}
		if _, err := s.Store.GetTeacher(tx, bimbelID, in.TeacherID); err != nil {
			return asNotFound(err, "teacher")
		}

		// CreateAssignment eksplisit menolak link double — beda dengan
		// jalur entry is_primary=true yang upsert.
		var n int64
		if err := tx.Model(&m.TeacherClassAssignmentModel{}).
			Where("teacher_class_assignment_class_id = ? AND teacher_class_assignment_teacher_id = ? AND teacher_class_assignment_bimbel_id = ?",
				in.ClassID, in.TeacherID, bimbelID).
			Count(&n).Error; err != nil {
			return err
		}
		if n > 0 {
			return &DuplicateAssignmentError{}
		}

		a, err := s.ensureAssignmentTx(tx, bimbelID, in.ClassID, in.TeacherID)
		if err != nil {
			return err
		}
		if in.IsPrimary {
			if err := s.promoteToPrimaryTx(tx, bimbelID, in.ClassID, a.TeacherClassAssignmentID); err != nil {
				return err
			}
			a.TeacherClassAssignmentIsPrimary = true
		}
		created = *a
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &created, nil
}

// PromoteToPrimary: jadikan assignment ini primary untuk class-nya;
// semua primary lain di class yang sama didemosi dalam transaksi yang sama.
func (s *TimetableService) PromoteToPrimary(ctx context.Context, bimbelID, assignmentID uuid.UUID) (*m.TeacherClassAssignmentModel, error) {
	var promoted m.TeacherClassAssignmentModel
	err := s.runInTx(ctx, func(tx *gorm.DB) error {
		var a m.TeacherClassAssignmentModel
		if err := tx.
			Where("teacher_class_assignment_id = ? AND teacher_class_assignment_bimbel_id = ?", assignmentID, bimbelID).
			First(&a).Error; err != nil {
			return asNotFound(err, "assignment")
		}
		if _, err := s.Store.GetClassForUpdate(tx, bimbelID, a.TeacherClassAssignmentClassID); err != nil {
			return asNotFound(err, "class")
		}
		if err := s.promoteToPrimaryTx(tx, bimbelID, a.TeacherClassAssignmentClassID, a.TeacherClassAssignmentID); err != nil {
			return err
		}
		a.TeacherClassAssignmentIsPrimary = true
		promoted = a
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &promoted, nil
}

func (s *TimetableService) DeleteAssignment(ctx context.Context, bimbelID, assignmentID uuid.UUID) error {
	return s.runInTx(ctx, func(tx *gorm.DB) error {
		var a m.TeacherClassAssignmentModel
		if err := tx.
			Where("teacher_class_assignment_id = ? AND teacher_class_assignment_bimbel_id = ?", assignmentID, bimbelID).
			First(&a).Error; err != nil {
			return asNotFound(err, "assignment")
		}
		return tx.Delete(&a).Error
	})
}

func (s *TimetableService) ListAssignments(ctx context.Context, bimbelID uuid.UUID, classID, teacherID *uuid.UUID) ([]m.TeacherClassAssignmentModel, error) {
	q := s.DB.WithContext(ctx).
		Where("teacher_class_assignment_bimbel_id = ?", bimbelID)
	if classID != nil {
		q = q.Where("teacher_class_assignment_class_id = ?", *classID)
	}
	if teacherID != nil {
		q = q.Where("teacher_class_assignment_teacher_id = ?", *teacherID)
	}
	var rows []m.TeacherClassAssignmentModel
	err := q.Order("teacher_class_assignment_assigned_at ASC").Find(&rows).Error
	return rows, err
}

/* =========================
   Internals
   ========================= */

// ensureAssignmentTx: ambil assignment alive (class, teacher), buat
// kalau belum ada. Pemanggil wajib sudah memegang lock class.
func (s *TimetableService) ensureAssignmentTx(tx *gorm.DB, bimbelID, classID, teacherID uuid.UUID) (*m.TeacherClassAssignmentModel, error) {
	var a m.TeacherClassAssignmentModel
	err := tx.
		Where("teacher_class_assignment_class_id = ? AND teacher_class_assignment_teacher_id = ? AND teacher_class_assignment_bimbel_id = ?",
			classID, teacherID, bimbelID).
		First(&a).Error
	if err == nil {
		return &a, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	a = m.TeacherClassAssignmentModel{
		TeacherClassAssignmentBimbelID:  bimbelID,
		TeacherClassAssignmentClassID:   classID,
		TeacherClassAssignmentTeacherID: teacherID,
	}
	if err := tx.Create(&a).Error; err != nil {
		return nil, err
	}
	return &a, nil
}

// promoteToPrimaryTx: demote semua primary lain di class, lalu set
// target. Atomik terhadap promosi konkuren karena row class di-lock
// FOR UPDATE oleh pemanggil — balapan dua promosi tidak bisa berakhir
// dua primary (atau nol).
func (s *TimetableService) promoteToPrimaryTx(tx *gorm.DB, bimbelID, classID, assignmentID uuid.UUID) error {
	if err := tx.Model(&m.TeacherClassAssignmentModel{}).
		Where("teacher_class_assignment_class_id = ? AND teacher_class_assignment_bimbel_id = ? AND teacher_class_assignment_id <> ? AND teacher_class_assignment_is_primary = TRUE",
			classID, bimbelID, assignmentID).
		Update("teacher_class_assignment_is_primary", false).Error; err != nil {
		return err
	}
	return tx.Model(&m.TeacherClassAssignmentModel{}).
		Where("teacher_class_assignment_id = ?", assignmentID).
		Update("teacher_class_assignment_is_primary", true).Error
}

func (s *TimetableService) requireQualified(tx *gorm.DB, teacher *academicsModel.TeacherModel, subject *academicsModel.SubjectModel) error {
	ok, err := s.Qual.IsQualifiedTx(tx, teacher.TeacherID, subject.SubjectID)
	if err != nil {
		return err
	}
	if ok {
		return nil
	}
	refs, err := s.Qual.QualifiedSubjectsTx(tx, teacher.TeacherID)
	if err != nil {
		return err
	}
	names := make([]string, 0, len(refs))
	for _, r := range refs {
		names = append(names, r.SubjectName)
	}
	return &QualificationError{
		TeacherName:       teacher.TeacherName,
		SubjectName:       subject.SubjectName,
		QualifiedSubjects: names,
	}
}

func asNotFound(err error, resource string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &NotFoundError{Resource: resource}
	}
	return err
}
