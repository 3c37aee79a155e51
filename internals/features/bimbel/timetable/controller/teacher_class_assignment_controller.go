// file: internals/features/bimbel/timetable/controller/teacher_class_assignment_controller.go
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
)

type TeacherClassAssignmentController struct {
	Service  *svc.TimetableService
	Validate *validator.Validate
}

func NewTeacherClassAssignmentController(db *gorm.DB, qual *academicsSvc.QualificationIndex) *TeacherClassAssignmentController {
	return &TeacherClassAssignmentController{
		Service:  svc.NewTimetableService(db, qual),
		Validate: validator.New(),
	}
}

// POST /api/a/:bimbel_id/teacher-class-assignments
func (ctl *TeacherClassAssignmentController) Create(c *fiber.Ctx) error {
	bimbelID, err := authHelper.GetBimbelID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if err := authHelper.EnsureBimbelScope(c, bimbelID); err != nil {
		return helper.JsonError(c, fiber.StatusForbidden, err.Error())
	}

	var req dto.CreateTeacherClassAssignmentRequest
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

	a, err := ctl.Service.CreateAssignment(c.UserContext(), bimbelID, in)
	if err != nil {
		return writeServiceError(c, err)
	}
	return helper.JsonCreated(c, "Assignment berhasil dibuat", dto.FromTeacherClassAssignmentModel(a))
}

// PATCH /api/a/:bimbel_id/teacher-class-assignments/:id/promote
func (ctl *TeacherClassAssignmentController) Promote(c *fiber.Ctx) error {
	bimbelID, err := authHelper.GetBimbelID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if err := authHelper.EnsureBimbelScope(c, bimbelID); err != nil {
		return helper.JsonError(c, fiber.StatusForbidden, err.Error())
	}
	assignmentID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "id is not a valid uuid")
	}

	a, err := ctl.Service.PromoteToPrimary(c.UserContext(), bimbelID, assignmentID)
	if err != nil {
		return writeServiceError(c, err)
	}
	return helper.JsonUpdated(c, "Assignment dipromosikan jadi primary", dto.FromTeacherClassAssignmentModel(a))
}

// DELETE /api/a/:bimbel_id/teacher-class-assignments/:id
func (ctl *TeacherClassAssignmentController) Delete(c *fiber.Ctx) error {
	bimbelID, err := authHelper.GetBimbelID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if err := authHelper.EnsureBimbelScope(c, bimbelID); err != nil {
		return helper.JsonError(c, fiber.StatusForbidden, err.Error())
	}
	assignmentID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "id is not a valid uuid")
	}

	if err := ctl.Service.DeleteAssignment(c.UserContext(), bimbelID, assignmentID); err != nil {
		return writeServiceError(c, err)
	}
	return helper.JsonDeleted(c, "Assignment berhasil dihapus", fiber.Map{
		"teacher_class_assignment_id": assignmentID,
	})
}

// GET /api/u/:bimbel_id/teacher-class-assignments?class_id=&teacher_id=
func (ctl *TeacherClassAssignmentController) List(c *fiber.Ctx) error {
	bimbelID, err := authHelper.GetBimbelID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var classID, teacherID *uuid.UUID
	if raw := c.Query("class_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "class_id is not a valid uuid")
		}
		classID = &id
	}
	if raw := c.Query("teacher_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "teacher_id is not a valid uuid")
		}
		teacherID = &id
	}

	rows, err := ctl.Service.ListAssignments(c.UserContext(), bimbelID, classID, teacherID)
	if err != nil {
		return writeServiceError(c, err)
	}
	return helper.JsonList(c, "OK", dto.FromTeacherClassAssignmentModels(rows), nil)
}
