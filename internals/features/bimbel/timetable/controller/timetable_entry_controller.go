// file: internals/features/bimbel/timetable/controller/timetable_entry_controller.go
package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	academicsSvc "bimbelku_backend/internals/features/bimbel/academics/service"
	"bimbelku_backend/internals/features/bimbel/timetable/dto"
	svc "bimbelku_backend/internals/features/bimbel/timetable/service"
	helper "bimbelku_backend/internals/helpers"
	authHelper "bimbelku_backend/internals/helpers/auth"
	"bimbelku_backend/internals/helpers/dbtime"

	"bimbelku_backend/internals/constants"
)

type TimetableEntryController struct {
	Service  *svc.TimetableService
	Validate *validator.Validate
}

func NewTimetableEntryController(db *gorm.DB, qual *academicsSvc.QualificationIndex) *TimetableEntryController {
	return &TimetableEntryController{
		Service:  svc.NewTimetableService(db, qual),
		Validate: validator.New(),
	}
}

// POST /api/a/:bimbel_id/timetable-entries
func (ctl *TimetableEntryController) Create(c *fiber.Ctx) error {
	bimbelID, err := authHelper.GetBimbelID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if err := authHelper.EnsureBimbelScope(c, bimbelID); err != nil {
		return helper.JsonError(c, fiber.StatusForbidden, err.Error())
	}

	var req dto.CreateTimetableEntryRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	in, err := req.ToInput()
	if err != nil {
		return writeServiceError(c, err)
	}

	entry, err := ctl.Service.CreateEntry(c.UserContext(), bimbelID, in)
	if err != nil {
		return writeServiceError(c, err)
	}
	return helper.JsonCreated(c, "Timetable entry berhasil dibuat", dto.FromTimetableEntryModel(entry))
}

// PUT /api/a/:bimbel_id/timetable-entries/:id
func (ctl *TimetableEntryController) Update(c *fiber.Ctx) error {
	bimbelID, err := authHelper.GetBimbelID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if err := authHelper.EnsureBimbelScope(c, bimbelID); err != nil {
		return helper.JsonError(c, fiber.StatusForbidden, err.Error())
	}
	entryID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "id is not a valid uuid")
	}

	var req dto.UpdateTimetableEntryRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	patch, err := req.ToPatch()
	if err != nil {
		return writeServiceError(c, err)
	}

	entry, err := ctl.Service.UpdateEntry(c.UserContext(), bimbelID, entryID, patch)
	if err != nil {
		return writeServiceError(c, err)
	}
	return helper.JsonUpdated(c, "Timetable entry berhasil diperbarui", dto.FromTimetableEntryModel(entry))
}

// DELETE /api/a/:bimbel_id/timetable-entries/:id
func (ctl *TimetableEntryController) Delete(c *fiber.Ctx) error {
	bimbelID, err := authHelper.GetBimbelID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if err := authHelper.EnsureBimbelScope(c, bimbelID); err != nil {
		return helper.JsonError(c, fiber.StatusForbidden, err.Error())
	}
	entryID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "id is not a valid uuid")
	}

	if err := ctl.Service.DeleteEntry(c.UserContext(), bimbelID, entryID); err != nil {
		return writeServiceError(c, err)
	}
	return helper.JsonDeleted(c, "Timetable entry berhasil dihapus", fiber.Map{
		"timetable_entry_id": entryID,
	})
}

// GET /api/u/:bimbel_id/timetable-entries/by-teacher/:teacher_id?day_of_week=MONDAY
func (ctl *TimetableEntryController) ListByTeacher(c *fiber.Ctx) error {
	bimbelID, err := authHelper.GetBimbelID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	teacherID, err := uuid.Parse(c.Params("teacher_id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "teacher_id is not a valid uuid")
	}

	var day *int
	if raw := c.Query("day_of_week"); raw != "" {
		d, err := constants.ParseDayOfWeek(raw)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
		}
		day = &d
	}

	rows, err := ctl.Service.ListForTeacher(c.UserContext(), bimbelID, teacherID, day)
	if err != nil {
		return writeServiceError(c, err)
	}
	return helper.JsonList(c, "OK", dto.FromTimetableEntryModels(rows), nil)
}

// GET /api/u/:bimbel_id/timetable-entries/by-class/:class_id
func (ctl *TimetableEntryController) ListByClass(c *fiber.Ctx) error {
	bimbelID, err := authHelper.GetBimbelID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	classID, err := uuid.Parse(c.Params("class_id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "class_id is not a valid uuid")
	}

	rows, err := ctl.Service.ListForClass(c.UserContext(), bimbelID, classID)
	if err != nil {
		return writeServiceError(c, err)
	}
	return helper.JsonList(c, "OK", dto.FromTimetableEntryModels(rows), nil)
}

// POST /api/u/:bimbel_id/timetable-entries/check-conflict
// Probe read-only: tidak me-reserve slot apa pun.
func (ctl *TimetableEntryController) CheckConflict(c *fiber.Ctx) error {
	bimbelID, err := authHelper.GetBimbelID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var req dto.CheckConflictRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	teacherID, err := uuid.Parse(req.TeacherID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "teacher_id is not a valid uuid")
	}
	day, err := constants.ParseDayOfWeek(req.DayOfWeek)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	start, err := dbtime.Parse(req.StartTime)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "start_time must be HH:MM (24h)")
	}
	end, err := dbtime.Parse(req.EndTime)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "end_time must be HH:MM (24h)")
	}
	excludeID := uuid.Nil
	if req.ExcludeID != "" {
		excludeID, err = uuid.Parse(req.ExcludeID)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "exclude_entry_id is not a valid uuid")
		}
	}

	conflicts, err := ctl.Service.CheckConflict(c.UserContext(), bimbelID, teacherID, day, start, end, excludeID)
	if err != nil {
		return writeServiceError(c, err)
	}
	return helper.JsonOK(c, "OK", dto.CheckConflictResponse{
		HasConflict: len(conflicts) > 0,
		Conflicts:   conflicts,
	})
}
