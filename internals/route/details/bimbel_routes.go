// file: internals/route/details/bimbel_routes.go
package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	academicsRoute "bimbelku_backend/internals/features/bimbel/academics/route"
	academicsSvc "bimbelku_backend/internals/features/bimbel/academics/service"
	timetableRoute "bimbelku_backend/internals/features/bimbel/timetable/route"
	helper "bimbelku_backend/internals/helpers"
	authHelper "bimbelku_backend/internals/helpers/auth"
)

// requireStaff: teacher/admin/owner saja yang boleh mutasi.
func requireStaff(c *fiber.Ctx) error {
	if !authHelper.IsStaff(c) {
		return helper.JsonError(c, fiber.StatusForbidden, "akses khusus staff")
	}
	return c.Next()
}

func BimbelAdminRoutes(admin fiber.Router, db *gorm.DB, qual *academicsSvc.QualificationIndex) {
	admin.Use(requireStaff)

	academicsRoute.AcademicsAdminRoutes(admin, db, qual)
	timetableRoute.TimetableAdminRoutes(admin, db, qual)
}

func BimbelUserRoutes(user fiber.Router, db *gorm.DB, qual *academicsSvc.QualificationIndex) {
	academicsRoute.AcademicsUserRoutes(user, db, qual)
	timetableRoute.TimetableUserRoutes(user, db, qual)
}
