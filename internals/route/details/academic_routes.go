// file: internals/route/details/academic_routes.go
package details

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	offeringCtl "atletaku_backend/internals/features/school/academics/class_offerings/controller"
	sectionCtl "atletaku_backend/internals/features/school/academics/class_sections/controller"
	courseCtl "atletaku_backend/internals/features/school/academics/courses/controller"
	enrollmentCtl "atletaku_backend/internals/features/school/academics/enrollments/controller"
	"atletaku_backend/internals/lock"
	"atletaku_backend/internals/middlewares"
)

/* ===================== ADMIN (/api/a) ===================== */

func AcademicAdminRoutes(r fiber.Router, db *gorm.DB, v *validator.Validate, locker lock.Locker) {
	courses := courseCtl.New(db, v)
	c := r.Group("/courses")
	c.Post("/", middlewares.WriteRateLimiter(), courses.Create)
	c.Get("/", courses.List)
	c.Get("/:id", courses.GetByID)
	c.Patch("/:id", middlewares.WriteRateLimiter(), courses.Patch)
	c.Delete("/:id", middlewares.WriteRateLimiter(), courses.Delete)

	sections := sectionCtl.New(db, v)
	s := r.Group("/class-sections")
	s.Post("/", middlewares.WriteRateLimiter(), sections.Create)
	s.Get("/", sections.List)
	s.Get("/:id", sections.GetByID)
	s.Patch("/:id", middlewares.WriteRateLimiter(), sections.Patch)
	s.Delete("/:id", middlewares.WriteRateLimiter(), sections.Delete)

	offerings := offeringCtl.New(db, v, locker)
	o := r.Group("/class-offerings")
	o.Post("/", middlewares.WriteRateLimiter(), offerings.Create)
	o.Get("/", offerings.List)
	o.Get("/:id", offerings.GetByID)
	o.Patch("/:id", middlewares.WriteRateLimiter(), offerings.Patch)
	o.Delete("/:id", middlewares.WriteRateLimiter(), offerings.Delete)

	// Jadwal: replace utuh, bukan merge. Cek bentrok di controller.
	o.Put("/:id/schedule", middlewares.WriteRateLimiter(), offerings.SetSchedule)
	o.Delete("/:id/schedule", middlewares.WriteRateLimiter(), offerings.DeleteSchedule)

	enrollments := enrollmentCtl.New(db, v)
	e := r.Group("/enrollments")
	e.Post("/", middlewares.WriteRateLimiter(), enrollments.Create)
	e.Get("/section/:section_id", enrollments.ListBySection)
	e.Delete("/:id", middlewares.WriteRateLimiter(), enrollments.Delete)
}

/* ===================== USER (/api/u) ===================== */

func AcademicUserRoutes(r fiber.Router, db *gorm.DB, v *validator.Validate, locker lock.Locker) {
	offerings := offeringCtl.New(db, v, locker)
	r.Get("/timetable", offerings.MyTimetable)
}
