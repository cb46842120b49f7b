// file: internals/features/school/academics/enrollments/controller/enrollment_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	d "atletaku_backend/internals/features/school/academics/enrollments/dto"
	m "atletaku_backend/internals/features/school/academics/enrollments/model"
	helper "atletaku_backend/internals/helpers"
)

type EnrollmentController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func New(db *gorm.DB, v *validator.Validate) *EnrollmentController {
	return &EnrollmentController{DB: db, Validate: v}
}

func (ctl *EnrollmentController) Create(c *fiber.Ctx) error {
	schoolID, err := helper.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}

	var req d.CreateEnrollmentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var enrollment m.EnrollmentModel
	if err := req.ApplyToModel(&enrollment); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	enrollment.EnrollmentsSchoolID = schoolID

	if err := ctl.DB.WithContext(c.Context()).Create(&enrollment).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	return helper.JsonCreated(c, "Siswa berhasil didaftarkan", d.NewEnrollmentResponse(&enrollment))
}

func (ctl *EnrollmentController) ListBySection(c *fiber.Ctx) error {
	schoolID, err := helper.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}
	sectionID, err := uuid.Parse(strings.TrimSpace(c.Params("section_id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "section_id invalid")
	}

	paging := helper.ResolvePaging(c, 50, 200)

	q := ctl.DB.WithContext(c.Context()).Model(&m.EnrollmentModel{}).
		Where("enrollments_school_id = ? AND enrollments_section_id = ?", schoolID, sectionID)

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.WritePGError(c, err)
	}

	var rows []m.EnrollmentModel
	if err := q.Order("enrollments_created_at ASC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&rows).Error; err != nil {
		return helper.WritePGError(c, err)
	}

	out := make([]d.EnrollmentResponse, 0, len(rows))
	for i := range rows {
		out = append(out, d.NewEnrollmentResponse(&rows[i]))
	}
	return helper.JsonList(c, "", out, helper.BuildPagination(total, paging.Page, paging.PerPage))
}

func (ctl *EnrollmentController) Delete(c *fiber.Ctx) error {
	schoolID, err := helper.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "id invalid")
	}

	var enrollment m.EnrollmentModel
	err = ctl.DB.WithContext(c.Context()).
		Where("enrollment_id = ? AND enrollments_school_id = ?", id, schoolID).
		First(&enrollment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Enrollment tidak ditemukan")
		}
		return helper.WritePGError(c, err)
	}

	if err := ctl.DB.WithContext(c.Context()).Delete(&enrollment).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	return helper.JsonDeleted(c, "Enrollment berhasil dihapus", fiber.Map{"enrollment_id": id})
}
