package service

import (
	"errors"
	"testing"

	"github.com/google/uuid"

	m "bimbelku_backend/internals/features/bimbel/timetable/model"
)

func entry(t *testing.T, classID, subjectID uuid.UUID, start, end string) m.TimetableEntryModel {
	t.Helper()
	return m.TimetableEntryModel{
		TimetableEntryID:        uuid.New(),
		TimetableEntryClassID:   classID,
		TimetableEntrySubjectID: subjectID,
		TimetableEntryDayOfWeek: 1,
		TimetableEntryStartTime: tod(t, start),
		TimetableEntryEndTime:   tod(t, end),
	}
}

func TestScanNoConflict(t *testing.T) {
	var d ConflictDetector
	classID, subjectID := uuid.New(), uuid.New()
	existing := []m.TimetableEntryModel{
		entry(t, classID, subjectID, "08:00", "09:00"),
		entry(t, classID, subjectID, "10:00", "11:00"),
	}
	res := d.Scan(existing, Candidate{
		ClassID:   classID,
		SubjectID: subjectID,
		DayOfWeek: 1,
		StartTime: tod(t, "09:00"),
		EndTime:   tod(t, "10:00"),
	})
	if res.Duplicate != nil {
		t.Fatalf("unexpected duplicate: %v", res.Duplicate.TimetableEntryID)
	}
	if len(res.Overlapping) != 0 {
		t.Fatalf("expected no overlap, got %d", len(res.Overlapping))
	}
}

func TestScanDuplicateWinsOverOverlap(t *testing.T) {
	var d ConflictDetector
	classID, subjectID := uuid.New(), uuid.New()
	dup := entry(t, classID, subjectID, "09:00", "10:00")
	res := d.Scan([]m.TimetableEntryModel{dup}, Candidate{
		ClassID:   classID,
		SubjectID: subjectID,
		DayOfWeek: 1,
		StartTime: tod(t, "09:00"),
		EndTime:   tod(t, "10:00"),
	})
	if res.Duplicate == nil {
		t.Fatal("expected duplicate, got none")
	}
	if res.Duplicate.TimetableEntryID != dup.TimetableEntryID {
		t.Errorf("duplicate id = %v, want %v", res.Duplicate.TimetableEntryID, dup.TimetableEntryID)
	}
}

func TestScanSameSlotDifferentSubjectIsOverlap(t *testing.T) {
	var d ConflictDetector
	classID := uuid.New()
	res := d.Scan(
		[]m.TimetableEntryModel{entry(t, classID, uuid.New(), "09:00", "10:00")},
		Candidate{
			ClassID:   classID,
			SubjectID: uuid.New(),
			DayOfWeek: 1,
			StartTime: tod(t, "09:00"),
			EndTime:   tod(t, "10:00"),
		})
	if res.Duplicate != nil {
		t.Fatal("different subject must not be a duplicate")
	}
	if len(res.Overlapping) != 1 {
		t.Fatalf("expected 1 overlap, got %d", len(res.Overlapping))
	}
}

func TestScanReportsAllOverlaps(t *testing.T) {
	var d ConflictDetector
	classID, subjectID := uuid.New(), uuid.New()
	existing := []m.TimetableEntryModel{
		entry(t, classID, subjectID, "08:30", "09:30"),
		entry(t, classID, subjectID, "09:45", "10:30"),
		entry(t, classID, subjectID, "11:00", "12:00"), // clear
	}
	res := d.Scan(existing, Candidate{
		ClassID:   classID,
		SubjectID: uuid.New(),
		DayOfWeek: 1,
		StartTime: tod(t, "09:00"),
		EndTime:   tod(t, "10:00"),
	})
	if len(res.Overlapping) != 2 {
		t.Fatalf("expected 2 overlaps, got %d", len(res.Overlapping))
	}
}

func TestScanExcludesSelf(t *testing.T) {
	var d ConflictDetector
	classID, subjectID := uuid.New(), uuid.New()
	self := entry(t, classID, subjectID, "09:00", "10:00")
	res := d.Scan([]m.TimetableEntryModel{self}, Candidate{
		ExcludeID: self.TimetableEntryID,
		ClassID:   classID,
		SubjectID: subjectID,
		DayOfWeek: 1,
		StartTime: tod(t, "09:00"),
		EndTime:   tod(t, "10:30"),
	})
	if res.Duplicate != nil || len(res.Overlapping) != 0 {
		t.Fatalf("entry must not conflict with itself: dup=%v overlaps=%d", res.Duplicate, len(res.Overlapping))
	}
}

func TestApplyEntryPatch(t *testing.T) {
	classID, subjectID, teacherID := uuid.New(), uuid.New(), uuid.New()
	existing := m.TimetableEntryModel{
		TimetableEntryID:        uuid.New(),
		TimetableEntryClassID:   classID,
		TimetableEntrySubjectID: subjectID,
		TimetableEntryTeacherID: teacherID,
		TimetableEntryDayOfWeek: 2,
		TimetableEntryStartTime: tod(t, "09:00"),
		TimetableEntryEndTime:   tod(t, "10:00"),
	}

	t.Run("empty patch keeps everything", func(t *testing.T) {
		cand := applyEntryPatch(&existing, UpdateEntryInput{})
		if cand.ClassID != classID || cand.SubjectID != subjectID || cand.TeacherID != teacherID {
			t.Error("references changed by empty patch")
		}
		if cand.DayOfWeek != 2 || !cand.StartTime.Equal(existing.TimetableEntryStartTime) {
			t.Error("slot changed by empty patch")
		}
	})

	t.Run("partial patch merges over existing", func(t *testing.T) {
		day := 5
		start := tod(t, "13:00")
		cand := applyEntryPatch(&existing, UpdateEntryInput{DayOfWeek: &day, StartTime: &start})
		if cand.DayOfWeek != 5 {
			t.Errorf("day = %d, want 5", cand.DayOfWeek)
		}
		if !cand.StartTime.Equal(start) {
			t.Errorf("start = %s, want 13:00", cand.StartTime)
		}
		if !cand.EndTime.Equal(existing.TimetableEntryEndTime) {
			t.Error("end must stay untouched")
		}
		if cand.TeacherID != teacherID {
			t.Error("teacher must stay untouched")
		}
	})
}

func TestValidateSlot(t *testing.T) {
	cases := []struct {
		name    string
		day     int
		start   string
		end     string
		wantErr bool
	}{
		{"valid", 1, "09:00", "10:00", false},
		{"sunday", 7, "09:00", "10:00", false},
		{"day zero", 0, "09:00", "10:00", true},
		{"day eight", 8, "09:00", "10:00", true},
		{"start equals end", 3, "10:00", "10:00", true},
		{"start after end", 3, "11:00", "10:00", true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := validateSlot(tc.day, tod(t, tc.start), tod(t, tc.end))
			if (err != nil) != tc.wantErr {
				t.Errorf("validateSlot(%d, %s, %s) err = %v, wantErr %v", tc.day, tc.start, tc.end, err, tc.wantErr)
			}
			if err != nil {
				var ve *ValidationError
				if !errors.As(err, &ve) {
					t.Errorf("error type = %T, want *ValidationError", err)
				}
			}
		})
	}
}
