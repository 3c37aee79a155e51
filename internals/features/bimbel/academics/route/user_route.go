// file: internals/features/bimbel/academics/route/user_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"bimbelku_backend/internals/features/bimbel/academics/controller"
	svc "bimbelku_backend/internals/features/bimbel/academics/service"
)

// AcademicsUserRoutes — read master data untuk semua role login.
func AcademicsUserRoutes(user fiber.Router, db *gorm.DB, qual *svc.QualificationIndex) {
	classCtl := controller.NewClassController(db)
	subjectCtl := controller.NewSubjectController(db)
	teacherCtl := controller.NewTeacherController(db, qual)

	classes := user.Group("/:bimbel_id/classes")
	classes.Get("/", classCtl.List)
	classes.Get("/:id", classCtl.GetByID)

	subjects := user.Group("/:bimbel_id/subjects")
	subjects.Get("/", subjectCtl.List)
	subjects.Get("/:id", subjectCtl.GetByID)

	teachers := user.Group("/:bimbel_id/teachers")
	teachers.Get("/", teacherCtl.List)
	teachers.Get("/:id", teacherCtl.GetByID)
	teachers.Get("/:id/subjects", teacherCtl.ListSubjects)
}
