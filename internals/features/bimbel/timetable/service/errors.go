// file: internals/features/bimbel/timetable/service/errors.go
package service

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

/* =======================================================
   Error taxonomy timetable. Semua error request-scoped; tidak ada yang
   fatal untuk proses, dan transaksi yang gagal tidak meninggalkan
   partial write.
   ======================================================= */

// ValidationError: input malformed (hari/jam) atau start >= end.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

// NotFoundError: class/subject/teacher/entry tidak ada, atau milik
// bimbel lain (tidak dibedakan supaya tidak bocor lintas tenant).
type NotFoundError struct {
	Resource string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Resource)
}

// QualificationError: teacher tidak berkualifikasi untuk subject.
// Bawa daftar nama mapel yang boleh diampu supaya caller bisa koreksi.
type QualificationError struct {
	TeacherName       string   `json:"teacher_name"`
	SubjectName       string   `json:"subject_name"`
	QualifiedSubjects []string `json:"qualified_subjects"`
}

func (e *QualificationError) Error() string {
	return fmt.Sprintf("teacher %q is not qualified for subject %q (qualified: %s)",
		e.TeacherName, e.SubjectName, strings.Join(e.QualifiedSubjects, ", "))
}

// DuplicateAssignmentError: entry aktif identik (class+subject+teacher+day+start)
// sudah ada. Remedy caller: no-op, bukan cari jam lain.
type DuplicateAssignmentError struct {
	ExistingEntryID uuid.UUID `json:"existing_entry_id"`
}

func (e *DuplicateAssignmentError) Error() string {
	return fmt.Sprintf("identical timetable entry already exists (%s)", e.ExistingEntryID)
}

// ConflictDetail: satu entry yang bentrok, dengan konteks yang bisa
// langsung dirender caller.
type ConflictDetail struct {
	EntryID     uuid.UUID `json:"entry_id"`
	ClassName   string    `json:"class_name"`
	SubjectName string    `json:"subject_name"`
	DayOfWeek   string    `json:"day_of_week"`
	StartTime   string    `json:"start_time"`
	EndTime     string    `json:"end_time"`
}

// ScheduleConflictError: slot kandidat overlap dengan ≥1 entry aktif
// teacher yang sama di hari yang sama. SEMUA yang bentrok dilaporkan.
type ScheduleConflictError struct {
	Conflicts []ConflictDetail `json:"conflicts"`
}

func (e *ScheduleConflictError) Error() string {
	parts := make([]string, 0, len(e.Conflicts))
	for _, cf := range e.Conflicts {
		parts = append(parts, fmt.Sprintf("%s %s–%s (%s)", cf.DayOfWeek, cf.StartTime, cf.EndTime, cf.ClassName))
	}
	return "schedule conflict with: " + strings.Join(parts, "; ")
}

// ConcurrencyConflictError: transaksi gugur karena write pesaing
// (serialization/deadlock) dan retry terbatas sudah habis. Satu-satunya
// jenis yang aman di-retry otomatis oleh caller.
type ConcurrencyConflictError struct {
	Err error
}

func (e *ConcurrencyConflictError) Error() string {
	return fmt.Sprintf("transaction aborted by competing write: %v", e.Err)
}

func (e *ConcurrencyConflictError) Unwrap() error { return e.Err }
