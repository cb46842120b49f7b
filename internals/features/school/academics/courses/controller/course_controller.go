// file: internals/features/school/academics/courses/controller/course_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	d "atletaku_backend/internals/features/school/academics/courses/dto"
	m "atletaku_backend/internals/features/school/academics/courses/model"
	helper "atletaku_backend/internals/helpers"
)

type CourseController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func New(db *gorm.DB, v *validator.Validate) *CourseController {
	return &CourseController{DB: db, Validate: v}
}

func (ctl *CourseController) findOwned(c *fiber.Ctx, schoolID uuid.UUID) (*m.CourseModel, error) {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return nil, helper.JsonError(c, fiber.StatusBadRequest, "id invalid")
	}
	var course m.CourseModel
	err = ctl.DB.WithContext(c.Context()).
		Where("course_id = ? AND courses_school_id = ?", id, schoolID).
		First(&course).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, helper.JsonError(c, fiber.StatusNotFound, "Course tidak ditemukan")
		}
		return nil, helper.WritePGError(c, err)
	}
	return &course, nil
}

func (ctl *CourseController) Create(c *fiber.Ctx) error {
	schoolID, err := helper.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}

	var req d.CreateCourseRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var course m.CourseModel
	req.ApplyToModel(&course)
	course.CoursesSchoolID = schoolID

	if err := ctl.DB.WithContext(c.Context()).Create(&course).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	return helper.JsonCreated(c, "Course berhasil dibuat", d.NewCourseResponse(&course))
}

func (ctl *CourseController) List(c *fiber.Ctx) error {
	schoolID, err := helper.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}

	paging := helper.ResolvePaging(c, 20, 100)

	q := ctl.DB.WithContext(c.Context()).Model(&m.CourseModel{}).
		Where("courses_school_id = ?", schoolID)

	if search := strings.TrimSpace(c.Query("q")); search != "" {
		like := "%" + strings.ToLower(search) + "%"
		q = q.Where("LOWER(courses_title) LIKE ? OR LOWER(courses_code) LIKE ?", like, like)
	}
	if s := strings.TrimSpace(c.Query("active")); s != "" {
		q = q.Where("courses_is_active = ?", s == "true" || s == "1")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.WritePGError(c, err)
	}

	var rows []m.CourseModel
	if err := q.Order("courses_code ASC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&rows).Error; err != nil {
		return helper.WritePGError(c, err)
	}

	out := make([]d.CourseResponse, 0, len(rows))
	for i := range rows {
		out = append(out, d.NewCourseResponse(&rows[i]))
	}
	return helper.JsonList(c, "", out, helper.BuildPagination(total, paging.Page, paging.PerPage))
}

func (ctl *CourseController) GetByID(c *fiber.Ctx) error {
	schoolID, err := helper.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}
	course, err := ctl.findOwned(c, schoolID)
	if err != nil {
		return err
	}
	return helper.JsonOK(c, "", d.NewCourseResponse(course))
}

func (ctl *CourseController) Patch(c *fiber.Ctx) error {
	schoolID, err := helper.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}
	course, err := ctl.findOwned(c, schoolID)
	if err != nil {
		return err
	}

	var req d.PatchCourseRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}
	req.ApplyPatch(course)

	if err := ctl.DB.WithContext(c.Context()).Save(course).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	return helper.JsonUpdated(c, "Course berhasil diubah", d.NewCourseResponse(course))
}

func (ctl *CourseController) Delete(c *fiber.Ctx) error {
	schoolID, err := helper.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}
	course, err := ctl.findOwned(c, schoolID)
	if err != nil {
		return err
	}
	if err := ctl.DB.WithContext(c.Context()).Delete(course).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	return helper.JsonDeleted(c, "Course berhasil dihapus", fiber.Map{"course_id": course.CourseID})
}
