// file: internals/features/bimbel/academics/route/admin_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"bimbelku_backend/internals/features/bimbel/academics/controller"
	svc "bimbelku_backend/internals/features/bimbel/academics/service"
)

// AcademicsAdminRoutes — CRUD master data (class/subject/teacher) +
// mutasi kualifikasi. Guard staff dipasang di group pemanggil.
func AcademicsAdminRoutes(admin fiber.Router, db *gorm.DB, qual *svc.QualificationIndex) {
	classCtl := controller.NewClassController(db)
	subjectCtl := controller.NewSubjectController(db)
	teacherCtl := controller.NewTeacherController(db, qual)

	classes := admin.Group("/:bimbel_id/classes")
	classes.Post("/", classCtl.Create)
	classes.Put("/:id", classCtl.Update)
	classes.Delete("/:id", classCtl.Delete)

	subjects := admin.Group("/:bimbel_id/subjects")
	subjects.Post("/", subjectCtl.Create)
	subjects.Put("/:id", subjectCtl.Update)
	subjects.Delete("/:id", subjectCtl.Delete)

	teachers := admin.Group("/:bimbel_id/teachers")
	teachers.Post("/", teacherCtl.Create)
	teachers.Put("/:id", teacherCtl.Update)
	teachers.Delete("/:id", teacherCtl.Delete)
	teachers.Post("/:id/subjects", teacherCtl.AddSubject)
	teachers.Delete("/:id/subjects/:subject_id", teacherCtl.RemoveSubject)
}
