// file: internals/features/athletics/programs/controller/training_program_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	d "atletaku_backend/internals/features/athletics/programs/dto"
	m "atletaku_backend/internals/features/athletics/programs/model"
	helper "atletaku_backend/internals/helpers"
)

type TrainingProgramController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func New(db *gorm.DB, v *validator.Validate) *TrainingProgramController {
	return &TrainingProgramController{DB: db, Validate: v}
}

func (ctl *TrainingProgramController) findOwned(c *fiber.Ctx, schoolID uuid.UUID) (*m.TrainingProgramModel, error) {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return nil, helper.JsonError(c, fiber.StatusBadRequest, "id invalid")
	}
	var program m.TrainingProgramModel
	err = ctl.DB.WithContext(c.Context()).
		Where("training_program_id = ? AND training_programs_school_id = ?", id, schoolID).
		First(&program).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, helper.JsonError(c, fiber.StatusNotFound, "Program tidak ditemukan")
		}
		return nil, helper.WritePGError(c, err)
	}
	return &program, nil
}

func (ctl *TrainingProgramController) loadExercises(c *fiber.Ctx, schoolID, programID uuid.UUID) ([]m.ProgramExerciseModel, error) {
	var rows []m.ProgramExerciseModel
	err := ctl.DB.WithContext(c.Context()).
		Where("program_exercises_school_id = ? AND program_exercises_program_id = ?", schoolID, programID).
		Order("program_exercises_position ASC").
		Find(&rows).Error
	return rows, err
}

// Create — program + seluruh exercise-nya dibuat dalam satu transaksi.
// Urutan exercise di body menentukan position.
func (ctl *TrainingProgramController) Create(c *fiber.Ctx) error {
	schoolID, err := helper.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}
	coachID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var req d.CreateTrainingProgramRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var program m.TrainingProgramModel
	if err := req.ApplyToModel(&program, coachID); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	program.TrainingProgramsSchoolID = schoolID

	var exercises []m.ProgramExerciseModel
	err = ctl.DB.WithContext(c.Context()).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&program).Error; err != nil {
			return err
		}
		exercises = make([]m.ProgramExerciseModel, 0, len(req.Exercises))
		for i, ex := range req.Exercises {
			exercises = append(exercises, m.ProgramExerciseModel{
				ProgramExercisesSchoolID:  schoolID,
				ProgramExercisesProgramID: program.TrainingProgramID,
				ProgramExercisesName:      strings.TrimSpace(ex.ProgramExercisesName),
				ProgramExercisesSetCount:  ex.ProgramExercisesSetCount,
				ProgramExercisesPosition:  i,
			})
		}
		return tx.Create(&exercises).Error
	})
	if err != nil {
		return helper.WritePGError(c, err)
	}

	resp := d.NewTrainingProgramResponse(&program)
	for i := range exercises {
		resp.Exercises = append(resp.Exercises, d.NewExerciseResponse(&exercises[i]))
	}
	return helper.JsonCreated(c, "Program berhasil dibuat", resp)
}

func (ctl *TrainingProgramController) List(c *fiber.Ctx) error {
	schoolID, err := helper.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}

	paging := helper.ResolvePaging(c, 20, 100)

	q := ctl.DB.WithContext(c.Context()).Model(&m.TrainingProgramModel{}).
		Where("training_programs_school_id = ?", schoolID)

	if search := strings.TrimSpace(c.Query("q")); search != "" {
		like := "%" + strings.ToLower(search) + "%"
		q = q.Where("LOWER(training_programs_name) LIKE ?", like)
	}
	if s := strings.TrimSpace(c.Query("coach_id")); s != "" {
		coachID, err := uuid.Parse(s)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "coach_id invalid")
		}
		q = q.Where("training_programs_coach_id = ?", coachID)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.WritePGError(c, err)
	}

	var rows []m.TrainingProgramModel
	if err := q.Order("training_programs_created_at DESC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&rows).Error; err != nil {
		return helper.WritePGError(c, err)
	}

	out := make([]d.TrainingProgramResponse, 0, len(rows))
	for i := range rows {
		out = append(out, d.NewTrainingProgramResponse(&rows[i]))
	}
	return helper.JsonList(c, "", out, helper.BuildPagination(total, paging.Page, paging.PerPage))
}

func (ctl *TrainingProgramController) GetByID(c *fiber.Ctx) error {
	schoolID, err := helper.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}
	program, err := ctl.findOwned(c, schoolID)
	if err != nil {
		return err
	}

	exercises, err := ctl.loadExercises(c, schoolID, program.TrainingProgramID)
	if err != nil {
		return helper.WritePGError(c, err)
	}

	resp := d.NewTrainingProgramResponse(program)
	for i := range exercises {
		resp.Exercises = append(resp.Exercises, d.NewExerciseResponse(&exercises[i]))
	}
	return helper.JsonOK(c, "", resp)
}

func (ctl *TrainingProgramController) Patch(c *fiber.Ctx) error {
	schoolID, err := helper.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}
	program, err := ctl.findOwned(c, schoolID)
	if err != nil {
		return err
	}

	var req d.PatchTrainingProgramRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}
	if err := req.ApplyPatch(program); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	if err := ctl.DB.WithContext(c.Context()).Save(program).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	return helper.JsonUpdated(c, "Program berhasil diubah", d.NewTrainingProgramResponse(program))
}

// Delete — program beserta exercise-nya (soft delete, satu transaksi).
func (ctl *TrainingProgramController) Delete(c *fiber.Ctx) error {
	schoolID, err := helper.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}
	program, err := ctl.findOwned(c, schoolID)
	if err != nil {
		return err
	}

	err = ctl.DB.WithContext(c.Context()).Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Where("program_exercises_school_id = ? AND program_exercises_program_id = ?",
				schoolID, program.TrainingProgramID).
			Delete(&m.ProgramExerciseModel{}).Error; err != nil {
			return err
		}
		return tx.Delete(program).Error
	})
	if err != nil {
		return helper.WritePGError(c, err)
	}
	return helper.JsonDeleted(c, "Program berhasil dihapus", fiber.Map{"training_program_id": program.TrainingProgramID})
}
