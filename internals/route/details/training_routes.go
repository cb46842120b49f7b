// file: internals/route/details/training_routes.go
package details

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	assignmentCtl "atletaku_backend/internals/features/athletics/assignments/controller"
	programCtl "atletaku_backend/internals/features/athletics/programs/controller"
	"atletaku_backend/internals/middlewares"
)

/* ===================== ADMIN (/api/a) ===================== */

func TrainingAdminRoutes(r fiber.Router, db *gorm.DB, v *validator.Validate) {
	programs := programCtl.New(db, v)
	p := r.Group("/training-programs")
	p.Post("/", middlewares.WriteRateLimiter(), programs.Create)
	p.Get("/", programs.List)
	p.Get("/:id", programs.GetByID)
	p.Patch("/:id", middlewares.WriteRateLimiter(), programs.Patch)
	p.Delete("/:id", middlewares.WriteRateLimiter(), programs.Delete)

	assignments := assignmentCtl.New(db, v)
	a := r.Group("/program-assignments")
	a.Post("/", middlewares.WriteRateLimiter(), assignments.Create)
	a.Get("/", assignments.List)
	a.Delete("/:id", middlewares.WriteRateLimiter(), assignments.Delete)
}

/* ===================== USER (/api/u) ===================== */

func TrainingUserRoutes(r fiber.Router, db *gorm.DB, v *validator.Validate) {
	assignments := assignmentCtl.New(db, v)
	a := r.Group("/assignments")
	a.Get("/", assignments.ListMine)
	a.Get("/:id", assignments.GetMine)
	a.Post("/:id/logs", middlewares.WriteRateLimiter(), assignments.UpsertSetLog)
}
