// file: internals/features/bimbel/timetable/route/user_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	academicsSvc "bimbelku_backend/internals/features/bimbel/academics/service"
	"bimbelku_backend/internals/features/bimbel/timetable/controller"
)

// TimetableUserRoutes — read & probe, semua role login boleh akses.
func TimetableUserRoutes(user fiber.Router, db *gorm.DB, qual *academicsSvc.QualificationIndex) {
	entryCtl := controller.NewTimetableEntryController(db, qual)
	assignCtl := controller.NewTeacherClassAssignmentController(db, qual)

	entries := user.Group("/:bimbel_id/timetable-entries")
	entries.Get("/by-teacher/:teacher_id", entryCtl.ListByTeacher)
	entries.Get("/by-class/:class_id", entryCtl.ListByClass)
	entries.Post("/check-conflict", entryCtl.CheckConflict)

	user.Get("/:bimbel_id/teacher-class-assignments", assignCtl.List)
}
