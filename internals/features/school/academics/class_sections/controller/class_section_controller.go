// file: internals/features/school/academics/class_sections/controller/class_section_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	d "atletaku_backend/internals/features/school/academics/class_sections/dto"
	m "atletaku_backend/internals/features/school/academics/class_sections/model"
	helper "atletaku_backend/internals/helpers"
)

type ClassSectionController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func New(db *gorm.DB, v *validator.Validate) *ClassSectionController {
	return &ClassSectionController{DB: db, Validate: v}
}

func (ctl *ClassSectionController) findOwned(c *fiber.Ctx, schoolID uuid.UUID) (*m.ClassSectionModel, error) {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return nil, helper.JsonError(c, fiber.StatusBadRequest, "id invalid")
	}
	var section m.ClassSectionModel
	err = ctl.DB.WithContext(c.Context()).
		Where("class_section_id = ? AND class_sections_school_id = ?", id, schoolID).
		First(&section).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, helper.JsonError(c, fiber.StatusNotFound, "Section tidak ditemukan")
		}
		return nil, helper.WritePGError(c, err)
	}
	return &section, nil
}

func (ctl *ClassSectionController) Create(c *fiber.Ctx) error {
	schoolID, err := helper.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}

	var req d.CreateClassSectionRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var section m.ClassSectionModel
	req.ApplyToModel(&section)
	section.ClassSectionsSchoolID = schoolID

	if err := ctl.DB.WithContext(c.Context()).Create(&section).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	return helper.JsonCreated(c, "Section berhasil dibuat", d.NewClassSectionResponse(&section))
}

func (ctl *ClassSectionController) List(c *fiber.Ctx) error {
	schoolID, err := helper.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}

	paging := helper.ResolvePaging(c, 20, 100)

	q := ctl.DB.WithContext(c.Context()).Model(&m.ClassSectionModel{}).
		Where("class_sections_school_id = ?", schoolID)

	if search := strings.TrimSpace(c.Query("q")); search != "" {
		q = q.Where("LOWER(class_sections_name) LIKE ?", "%"+strings.ToLower(search)+"%")
	}
	if year := strings.TrimSpace(c.Query("academic_year")); year != "" {
		q = q.Where("class_sections_academic_year = ?", year)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.WritePGError(c, err)
	}

	var rows []m.ClassSectionModel
	if err := q.Order("class_sections_name ASC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&rows).Error; err != nil {
		return helper.WritePGError(c, err)
	}

	out := make([]d.ClassSectionResponse, 0, len(rows))
	for i := range rows {
		out = append(out, d.NewClassSectionResponse(&rows[i]))
	}
	return helper.JsonList(c, "", out, helper.BuildPagination(total, paging.Page, paging.PerPage))
}

func (ctl *ClassSectionController) GetByID(c *fiber.Ctx) error {
	schoolID, err := helper.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}
	section, err := ctl.findOwned(c, schoolID)
	if err != nil {
		return err
	}
	return helper.JsonOK(c, "", d.NewClassSectionResponse(section))
}

func (ctl *ClassSectionController) Patch(c *fiber.Ctx) error {
	schoolID, err := helper.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}
	section, err := ctl.findOwned(c, schoolID)
	if err != nil {
		return err
	}

	var req d.PatchClassSectionRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}
	req.ApplyPatch(section)

	if err := ctl.DB.WithContext(c.Context()).Save(section).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	return helper.JsonUpdated(c, "Section berhasil diubah", d.NewClassSectionResponse(section))
}

func (ctl *ClassSectionController) Delete(c *fiber.Ctx) error {
	schoolID, err := helper.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}
	section, err := ctl.findOwned(c, schoolID)
	if err != nil {
		return err
	}
	if err := ctl.DB.WithContext(c.Context()).Delete(section).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	return helper.JsonDeleted(c, "Section berhasil dihapus", fiber.Map{"class_section_id": section.ClassSectionID})
}
