// file: internals/features/bimbel/timetable/route/admin_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	academicsSvc "bimbelku_backend/internals/features/bimbel/academics/service"
	"bimbelku_backend/internals/features/bimbel/timetable/controller"
)

// TimetableAdminRoutes — mutasi jadwal. Group pemanggil sudah memasang
// AuthJWT + guard staff.
func TimetableAdminRoutes(admin fiber.Router, db *gorm.DB, qual *academicsSvc.QualificationIndex) {
	entryCtl := controller.NewTimetableEntryController(db, qual)
	assignCtl := controller.NewTeacherClassAssignmentController(db, qual)

	entries := admin.Group("/:bimbel_id/timetable-entries")
	entries.Post("/", entryCtl.Create)
	entries.Put("/:id", entryCtl.Update)
	entries.Delete("/:id", entryCtl.Delete)

	assignments := admin.Group("/:bimbel_id/teacher-class-assignments")
	assignments.Post("/", assignCtl.Create)
	assignments.Patch("/:id/promote", assignCtl.Promote)
	assignments.Delete("/:id", assignCtl.Delete)
}
