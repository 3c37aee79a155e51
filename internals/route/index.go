// file: internals/route/index.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"bimbelku_backend/internals/configs"
	academicsSvc "bimbelku_backend/internals/features/bimbel/academics/service"
	authmw "bimbelku_backend/internals/middlewares/auth_bimbel"
	"bimbelku_backend/internals/route/details"
)

/* =======================================================
   SetupRoutes — dua surface:
   /api/a : mutasi (staff ke atas)
   /api/u : read & probe (semua user login)
   ======================================================= */

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	secret := configs.GetEnv("JWT_SECRET", "")

	// QualificationIndex dibagi satu instance supaya Invalidate dari
	// CRUD academics kelihatan oleh endpoint read timetable.
	qual := academicsSvc.NewQualificationIndex(db)

	api := app.Group("/api", authmw.AuthJWT(authmw.AuthJWTOpts{
		Secret:              secret,
		AllowCookieFallback: true,
	}))

	details.BimbelAdminRoutes(api.Group("/a"), db, qual)
	details.BimbelUserRoutes(api.Group("/u"), db, qual)
}
