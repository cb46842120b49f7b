// file: internals/route/index.go
package route

import (
	"log"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"atletaku_backend/internals/configs"
	"atletaku_backend/internals/lock"
	authMiddleware "atletaku_backend/internals/middlewares/auth"
	routeDetails "atletaku_backend/internals/route/details"
)

var startTime time.Time

func SetupRoutes(app *fiber.App, db *gorm.DB, locker lock.Locker) {
	startTime = time.Now()
	validate := validator.New()

	// ===================== BASE =====================
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "ok",
			"uptime": time.Since(startTime).String(),
		})
	})

	// ===================== PRIVATE (USER) =====================
	log.Println("[INFO] Setting up USER group...")
	user := app.Group("/api/u",
		authMiddleware.AuthJWT(authMiddleware.AuthJWTOpts{
			Secret:              configs.JWTSecret,
			AllowCookieFallback: true,
		}),
	)
	routeDetails.AcademicUserRoutes(user, db, validate, locker)
	routeDetails.TrainingUserRoutes(user, db, validate)

	// ===================== ADMIN (per school) =====================
	log.Println("[INFO] Setting up ADMIN group (Auth + RoleCheck)...")
	admin := app.Group("/api/a",
		authMiddleware.AuthJWT(authMiddleware.AuthJWTOpts{
			Secret:              configs.JWTSecret,
			AllowCookieFallback: true,
		}),
		authMiddleware.RequireStaff(),
	)
	routeDetails.AcademicAdminRoutes(admin, db, validate, locker)
	routeDetails.TrainingAdminRoutes(admin, db, validate)
}
