// file: internals/features/bimbel/timetable/controller/error_mapper.go
package controller

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	svc "bimbelku_backend/internals/features/bimbel/timetable/service"
	helper "bimbelku_backend/internals/helpers"
)

/* =======================================================
   Pemetaan taxonomy error service → HTTP. Satu-satunya tempat
   translasi; controller lain tinggal `return writeServiceError(c, err)`.

   400 VALIDATION_ERROR       input tidak valid
   404 NOT_FOUND              referensi tidak ada / beda tenant
   422 QUALIFICATION_ERROR    teacher tidak qualified untuk subject
   409 DUPLICATE_ASSIGNMENT   entry identik sudah ada
   409 SCHEDULE_CONFLICT      overlap dengan entry aktif
   409 CONCURRENCY_CONFLICT   retry transaksi habis
   ======================================================= */

func writeServiceError(c *fiber.Ctx, err error) error {
	var (
		vErr    *svc.ValidationError
		nfErr   *svc.NotFoundError
		qErr    *svc.QualificationError
		dupErr  *svc.DuplicateAssignmentError
		confErr *svc.ScheduleConflictError
		ccErr   *svc.ConcurrencyConflictError
	)

	switch {
	case errors.As(err, &vErr):
		return helper.JsonErrorWithCode(c, fiber.StatusBadRequest, "VALIDATION_ERROR", vErr.Error(), nil)
	case errors.As(err, &nfErr):
		return helper.JsonErrorWithCode(c, fiber.StatusNotFound, "NOT_FOUND", nfErr.Error(), nil)
	case errors.As(err, &qErr):
		return helper.JsonErrorWithCode(c, fiber.StatusUnprocessableEntity, "QUALIFICATION_ERROR", qErr.Error(), fiber.Map{
			"teacher_name":       qErr.TeacherName,
			"subject_name":       qErr.SubjectName,
			"qualified_subjects": qErr.QualifiedSubjects,
		})
	case errors.As(err, &dupErr):
		details := fiber.Map{}
		if dupErr.ExistingEntryID != uuid.Nil {
			details["existing_entry_id"] = dupErr.ExistingEntryID.String()
		}
		return helper.JsonErrorWithCode(c, fiber.StatusConflict, "DUPLICATE_ASSIGNMENT", dupErr.Error(), details)
	case errors.As(err, &confErr):
		return helper.JsonErrorWithCode(c, fiber.StatusConflict, "SCHEDULE_CONFLICT", confErr.Error(), fiber.Map{
			"conflicts": confErr.Conflicts,
		})
	case errors.As(err, &ccErr):
		return helper.JsonErrorWithCode(c, fiber.StatusConflict, "CONCURRENCY_CONFLICT",
			"schedule is being modified concurrently, please retry", nil)
	default:
		log.Printf("[ERROR] timetable: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "internal server error")
	}
}
