// file: internals/features/school/academics/class_offerings/controller/class_offering_controller.go
package controller

import (
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	d "atletaku_backend/internals/features/school/academics/class_offerings/dto"
	m "atletaku_backend/internals/features/school/academics/class_offerings/model"
	svc "atletaku_backend/internals/features/school/academics/class_offerings/service"
	helper "atletaku_backend/internals/helpers"
	"atletaku_backend/internals/lock"
)

/* =========================
   Controller & Constructor
   ========================= */

type ClassOfferingController struct {
	DB       *gorm.DB
	Validate *validator.Validate
	Locker   lock.Locker // nil bila redis tidak dikonfigurasi
}

func New(db *gorm.DB, v *validator.Validate, locker lock.Locker) *ClassOfferingController {
	return &ClassOfferingController{DB: db, Validate: v, Locker: locker}
}

func parseUUIDParam(c *fiber.Ctx, name string) (uuid.UUID, error) {
	idStr := strings.TrimSpace(c.Params(name))
	if idStr == "" {
		return uuid.Nil, fiber.NewError(fiber.StatusBadRequest, name+" is required")
	}
	return uuid.Parse(idStr)
}

// findOwnedOffering — cari offering dalam scope tenant. ID milik tenant lain
// tidak dibedakan dari tidak-ada: dua-duanya 404, sebelum logika lain jalan.
func (ctl *ClassOfferingController) findOwnedOffering(c *fiber.Ctx, schoolID, id uuid.UUID) (*m.ClassOfferingModel, error) {
	var offering m.ClassOfferingModel
	err := ctl.DB.WithContext(c.Context()).
		Where("class_offering_id = ? AND class_offerings_school_id = ?", id, schoolID).
		First(&offering).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, helper.JsonError(c, fiber.StatusNotFound, "Offering tidak ditemukan")
		}
		return nil, helper.WritePGError(c, err)
	}
	return &offering, nil
}

/* =========================
   Create
   ========================= */

func (ctl *ClassOfferingController) Create(c *fiber.Ctx) error {
	schoolID, err := helper.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}

	var req d.CreateClassOfferingRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var model m.ClassOfferingModel
	if err := req.ApplyToModel(&model); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	model.ClassOfferingsSchoolID = schoolID

	if err := ctl.DB.WithContext(c.Context()).Create(&model).Error; err != nil {
		return helper.WritePGError(c, err)
	}

	return helper.JsonCreated(c, "Offering berhasil dibuat", d.NewClassOfferingResponse(&model))
}

/* =========================
   List & Get
   ========================= */

func (ctl *ClassOfferingController) List(c *fiber.Ctx) error {
	schoolID, err := helper.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}

	paging := helper.ResolvePaging(c, 20, 100)

	q := ctl.DB.WithContext(c.Context()).Model(&m.ClassOfferingModel{}).
		Where("class_offerings_school_id = ?", schoolID)

	if s := strings.TrimSpace(c.Query("section_id")); s != "" {
		if _, err := uuid.Parse(s); err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "section_id invalid")
		}
		q = q.Where("class_offerings_section_id = ?", s)
	}
	if s := strings.TrimSpace(c.Query("course_id")); s != "" {
		if _, err := uuid.Parse(s); err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "course_id invalid")
		}
		q = q.Where("class_offerings_course_id = ?", s)
	}
	if s := strings.TrimSpace(c.Query("status")); s != "" {
		q = q.Where("class_offerings_status = ?", s)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.WritePGError(c, err)
	}

	var rows []m.ClassOfferingModel
	if err := q.Order("class_offerings_created_at DESC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&rows).Error; err != nil {
		return helper.WritePGError(c, err)
	}

	out := make([]d.ClassOfferingResponse, 0, len(rows))
	for i := range rows {
		out = append(out, d.NewClassOfferingResponse(&rows[i]))
	}
	return helper.JsonList(c, "", out, helper.BuildPagination(total, paging.Page, paging.PerPage))
}

func (ctl *ClassOfferingController) GetByID(c *fiber.Ctx) error {
	schoolID, err := helper.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "id invalid")
	}

	offering, err := ctl.findOwnedOffering(c, schoolID, id)
	if err != nil {
		return err
	}

	resp := d.NewClassOfferingResponse(offering)

	var entry m.ScheduleEntryModel
	err = ctl.DB.WithContext(c.Context()).
		Where("schedule_entries_offering_id = ? AND schedule_entries_school_id = ?", id, schoolID).
		First(&entry).Error
	if err == nil {
		sr := d.NewScheduleResponse(&entry)
		resp.Schedule = &sr
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.WritePGError(c, err)
	}

	return helper.JsonOK(c, "", resp)
}

/* =========================
   Patch & Delete
   ========================= */

func (ctl *ClassOfferingController) Patch(c *fiber.Ctx) error {
	schoolID, err := helper.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "id invalid")
	}

	offering, err := ctl.findOwnedOffering(c, schoolID, id)
	if err != nil {
		return err
	}

	var req d.PatchClassOfferingRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}
	if err := req.ApplyPatch(offering); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	if err := ctl.DB.WithContext(c.Context()).Save(offering).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	return helper.JsonUpdated(c, "Offering berhasil diubah", d.NewClassOfferingResponse(offering))
}

// Delete — soft delete offering; entry jadwal ikut dihapus permanen
// (lifecycle entry menempel pada offering).
func (ctl *ClassOfferingController) Delete(c *fiber.Ctx) error {
	schoolID, err := helper.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "id invalid")
	}

	offering, err := ctl.findOwnedOffering(c, schoolID, id)
	if err != nil {
		return err
	}

	if err := ctl.DB.WithContext(c.Context()).Transaction(func(tx *gorm.DB) error {
		if er := tx.
			Where("schedule_entries_offering_id = ? AND schedule_entries_school_id = ?", id, schoolID).
			Delete(&m.ScheduleEntryModel{}).Error; er != nil {
			return er
		}
		return tx.Delete(offering).Error
	}); err != nil {
		return helper.WritePGError(c, err)
	}

	return helper.JsonDeleted(c, "Offering berhasil dihapus", fiber.Map{"class_offering_id": id})
}

/* =========================
   Schedule: set / replace / delete
   ========================= */

const scheduleLockTTL = 5 * time.Second

// SetSchedule — PUT /:id/schedule. Entry lama (kalau ada) diganti utuh.
// Cek bentrok hanya untuk offering upcoming/ongoing dengan rooms bukan
// ONLINE; selain itu langsung disimpan. Pasangan cek+tulis dibungkus lock
// per tenant untuk menutup jendela race dua booking serentak.
func (ctl *ClassOfferingController) SetSchedule(c *fiber.Ctx) error {
	schoolID, err := helper.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "id invalid")
	}

	offering, err := ctl.findOwnedOffering(c, schoolID, id)
	if err != nil {
		return err
	}

	var req d.SetScheduleRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	if ctl.Locker != nil {
		key := "schedlock:" + schoolID.String()
		ok, lockErr := ctl.Locker.Lock(c.Context(), key, scheduleLockTTL)
		if lockErr != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, lockErr.Error())
		}
		if !ok {
			return helper.JsonError(c, fiber.StatusConflict, "Jadwal sedang diproses, coba lagi")
		}
		defer func() { _ = ctl.Locker.Unlock(c.Context(), key) }()
	}

	// entry lama — untuk replace & exclude dari cek
	var existing m.ScheduleEntryModel
	var excludeID *uuid.UUID
	err = ctl.DB.WithContext(c.Context()).
		Where("schedule_entries_offering_id = ? AND schedule_entries_school_id = ?", id, schoolID).
		First(&existing).Error
	switch {
	case err == nil:
		excludeID = &existing.ScheduleEntryID
	case errors.Is(err, gorm.ErrRecordNotFound):
		// create baru
	default:
		return helper.WritePGError(c, err)
	}

	entry := m.ScheduleEntryModel{
		ScheduleEntriesSchoolID:   schoolID,
		ScheduleEntriesOfferingID: offering.ClassOfferingID,
		ScheduleEntriesSectionID:  offering.ClassOfferingsSectionID,
	}
	req.ApplyToEntry(&entry)

	if offering.ClassOfferingsStatus.SubjectToConflictCheck() && !svc.IsOnline(entry.ScheduleEntriesRooms) {
		err := svc.CheckScheduleConflict(ctl.DB.WithContext(c.Context()), svc.CheckInput{
			SchoolID:       schoolID,
			OfferingID:     offering.ClassOfferingID,
			SectionID:      offering.ClassOfferingsSectionID,
			Days:           svc.DecodeField(entry.ScheduleEntriesDays),
			TimeRanges:     svc.DecodeField(entry.ScheduleEntriesTimeRanges),
			Rooms:          svc.DecodeField(entry.ScheduleEntriesRooms),
			ExcludeEntryID: excludeID,
		})
		var conflict *svc.ScheduleConflictError
		if errors.As(err, &conflict) {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{
				"success":  false,
				"message":  conflict.Error(),
				"conflict": conflict,
			})
		}
		if err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
		}
	}

	if excludeID != nil {
		existing.ScheduleEntriesDays = entry.ScheduleEntriesDays
		existing.ScheduleEntriesTimeRanges = entry.ScheduleEntriesTimeRanges
		existing.ScheduleEntriesRooms = entry.ScheduleEntriesRooms
		existing.ScheduleEntriesSectionID = entry.ScheduleEntriesSectionID
		if err := ctl.DB.WithContext(c.Context()).Save(&existing).Error; err != nil {
			return helper.WritePGError(c, err)
		}
		return helper.JsonUpdated(c, "Jadwal berhasil diganti", d.NewScheduleResponse(&existing))
	}

	if err := ctl.DB.WithContext(c.Context()).Create(&entry).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	return helper.JsonCreated(c, "Jadwal berhasil dibuat", d.NewScheduleResponse(&entry))
}

func (ctl *ClassOfferingController) DeleteSchedule(c *fiber.Ctx) error {
	schoolID, err := helper.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "id invalid")
	}

	if _, err := ctl.findOwnedOffering(c, schoolID, id); err != nil {
		return err
	}

	res := ctl.DB.WithContext(c.Context()).
		Where("schedule_entries_offering_id = ? AND schedule_entries_school_id = ?", id, schoolID).
		Delete(&m.ScheduleEntryModel{})
	if res.Error != nil {
		return helper.WritePGError(c, res.Error)
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Jadwal tidak ditemukan")
	}

	return helper.JsonDeleted(c, "Jadwal berhasil dihapus", fiber.Map{"class_offering_id": id})
}
