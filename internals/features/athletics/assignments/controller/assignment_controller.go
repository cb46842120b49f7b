// file: internals/features/athletics/assignments/controller/assignment_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	d "atletaku_backend/internals/features/athletics/assignments/dto"
	m "atletaku_backend/internals/features/athletics/assignments/model"
	svc "atletaku_backend/internals/features/athletics/assignments/service"
	pm "atletaku_backend/internals/features/athletics/programs/model"
	helper "atletaku_backend/internals/helpers"
)

type AssignmentController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func New(db *gorm.DB, v *validator.Validate) *AssignmentController {
	return &AssignmentController{DB: db, Validate: v}
}

func (ctl *AssignmentController) findOwned(c *fiber.Ctx, schoolID uuid.UUID) (*m.ProgramAssignmentModel, error) {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return nil, helper.JsonError(c, fiber.StatusBadRequest, "id invalid")
	}
	var as m.ProgramAssignmentModel
	err = ctl.DB.WithContext(c.Context()).
		Where("program_assignment_id = ? AND program_assignments_school_id = ?", id, schoolID).
		First(&as).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, helper.JsonError(c, fiber.StatusNotFound, "Assignment tidak ditemukan")
		}
		return nil, helper.WritePGError(c, err)
	}
	return &as, nil
}

/* =======================================================
   Admin/coach handlers (/api/a)
   ======================================================= */

// Create — berikan program ke satu siswa. Program harus milik tenant
// yang sama; duplikat assignment program+siswa dibiarkan (coach bisa
// mengulang program yang sama di periode berbeda).
func (ctl *AssignmentController) Create(c *fiber.Ctx) error {
	schoolID, err := helper.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}

	var req d.CreateAssignmentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var program pm.TrainingProgramModel
	err = ctl.DB.WithContext(c.Context()).
		Where("training_program_id = ? AND training_programs_school_id = ?",
			req.ProgramAssignmentsProgramID, schoolID).
		First(&program).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Program tidak ditemukan")
		}
		return helper.WritePGError(c, err)
	}

	as := m.ProgramAssignmentModel{
		ProgramAssignmentsSchoolID:  schoolID,
		ProgramAssignmentsProgramID: req.ProgramAssignmentsProgramID,
		ProgramAssignmentsStudentID: req.ProgramAssignmentsStudentID,
		ProgramAssignmentsStatus:    string(svc.StatusAssigned),
	}
	if err := ctl.DB.WithContext(c.Context()).Create(&as).Error; err != nil {
		return helper.WritePGError(c, err)
	}

	cnt, err := svc.CountUnits(ctl.DB.WithContext(c.Context()), schoolID, &as)
	if err != nil {
		return helper.WritePGError(c, err)
	}
	return helper.JsonCreated(c, "Assignment berhasil dibuat", d.NewAssignmentResponse(&as, cnt))
}

func (ctl *AssignmentController) List(c *fiber.Ctx) error {
	schoolID, err := helper.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}

	paging := helper.ResolvePaging(c, 20, 100)

	q := ctl.DB.WithContext(c.Context()).Model(&m.ProgramAssignmentModel{}).
		Where("program_assignments_school_id = ?", schoolID)

	if s := strings.TrimSpace(c.Query("program_id")); s != "" {
		programID, err := uuid.Parse(s)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "program_id invalid")
		}
		q = q.Where("program_assignments_program_id = ?", programID)
	}
	if s := strings.TrimSpace(c.Query("student_id")); s != "" {
		studentID, err := uuid.Parse(s)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "student_id invalid")
		}
		q = q.Where("program_assignments_student_id = ?", studentID)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.WritePGError(c, err)
	}

	var rows []m.ProgramAssignmentModel
	if err := q.Order("program_assignments_assigned_at DESC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&rows).Error; err != nil {
		return helper.WritePGError(c, err)
	}

	out := make([]d.AssignmentResponse, 0, len(rows))
	for i := range rows {
		cnt, err := svc.CountUnits(ctl.DB.WithContext(c.Context()), schoolID, &rows[i])
		if err != nil {
			return helper.WritePGError(c, err)
		}
		out = append(out, d.NewAssignmentResponse(&rows[i], cnt))
	}
	return helper.JsonList(c, "", out, helper.BuildPagination(total, paging.Page, paging.PerPage))
}

func (ctl *AssignmentController) Delete(c *fiber.Ctx) error {
	schoolID, err := helper.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}
	as, err := ctl.findOwned(c, schoolID)
	if err != nil {
		return err
	}

	err = ctl.DB.WithContext(c.Context()).Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Where("exercise_set_logs_school_id = ? AND exercise_set_logs_assignment_id = ?",
				schoolID, as.ProgramAssignmentID).
			Delete(&m.ExerciseSetLogModel{}).Error; err != nil {
			return err
		}
		return tx.Delete(as).Error
	})
	if err != nil {
		return helper.WritePGError(c, err)
	}
	return helper.JsonDeleted(c, "Assignment berhasil dihapus", fiber.Map{"program_assignment_id": as.ProgramAssignmentID})
}

/* =======================================================
   Student handlers (/api/u)
   ======================================================= */

// ListMine — assignment milik siswa yang login, status dan persen
// dihitung ulang dari log (bukan dari kolom status).
func (ctl *AssignmentController) ListMine(c *fiber.Ctx) error {
	schoolID, err := helper.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}
	studentID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var rows []m.ProgramAssignmentModel
	err = ctl.DB.WithContext(c.Context()).
		Where("program_assignments_school_id = ? AND program_assignments_student_id = ?",
			schoolID, studentID).
		Order("program_assignments_assigned_at DESC").
		Find(&rows).Error
	if err != nil {
		return helper.WritePGError(c, err)
	}

	out := make([]d.AssignmentResponse, 0, len(rows))
	for i := range rows {
		cnt, err := svc.CountUnits(ctl.DB.WithContext(c.Context()), schoolID, &rows[i])
		if err != nil {
			return helper.WritePGError(c, err)
		}
		out = append(out, d.NewAssignmentResponse(&rows[i], cnt))
	}
	return helper.JsonList(c, "", out, nil)
}

// GetMine — detail satu assignment milik siswa, beserta seluruh lognya.
func (ctl *AssignmentController) GetMine(c *fiber.Ctx) error {
	schoolID, err := helper.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}
	studentID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	as, err := ctl.findOwned(c, schoolID)
	if err != nil {
		return err
	}
	if as.ProgramAssignmentsStudentID != studentID {
		return helper.JsonError(c, fiber.StatusNotFound, "Assignment tidak ditemukan")
	}

	cnt, err := svc.CountUnits(ctl.DB.WithContext(c.Context()), schoolID, as)
	if err != nil {
		return helper.WritePGError(c, err)
	}

	var logs []m.ExerciseSetLogModel
	err = ctl.DB.WithContext(c.Context()).
		Where("exercise_set_logs_school_id = ? AND exercise_set_logs_assignment_id = ?",
			schoolID, as.ProgramAssignmentID).
		Order("exercise_set_logs_exercise_id ASC, exercise_set_logs_set_number ASC").
		Find(&logs).Error
	if err != nil {
		return helper.WritePGError(c, err)
	}

	logOut := make([]d.SetLogResponse, 0, len(logs))
	for i := range logs {
		logOut = append(logOut, d.NewSetLogResponse(&logs[i]))
	}
	return helper.JsonOK(c, "", fiber.Map{
		"assignment": d.NewAssignmentResponse(as, cnt),
		"logs":       logOut,
	})
}

// UpsertSetLog — POST /:id/logs. Catat (atau timpa) satu set, lalu
// hitung ulang kolom status assignment.
func (ctl *AssignmentController) UpsertSetLog(c *fiber.Ctx) error {
	schoolID, err := helper.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}
	studentID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	as, err := ctl.findOwned(c, schoolID)
	if err != nil {
		return err
	}
	if as.ProgramAssignmentsStudentID != studentID {
		return helper.JsonError(c, fiber.StatusNotFound, "Assignment tidak ditemukan")
	}

	var req d.UpsertSetLogRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	// Exercise harus bagian dari program assignment ini, dan set_number
	// tidak boleh melewati set_count exercise.
	var exercise pm.ProgramExerciseModel
	err = ctl.DB.WithContext(c.Context()).
		Where("program_exercise_id = ? AND program_exercises_school_id = ? AND program_exercises_program_id = ?",
			req.ExerciseSetLogsExerciseID, schoolID, as.ProgramAssignmentsProgramID).
		First(&exercise).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusBadRequest, "Exercise bukan bagian dari program ini")
		}
		return helper.WritePGError(c, err)
	}
	if req.ExerciseSetLogsSetNumber > exercise.ProgramExercisesSetCount {
		return helper.JsonError(c, fiber.StatusBadRequest, "set_number melewati jumlah set exercise")
	}

	var log m.ExerciseSetLogModel
	err = ctl.DB.WithContext(c.Context()).Transaction(func(tx *gorm.DB) error {
		err := tx.
			Where("exercise_set_logs_school_id = ? AND exercise_set_logs_assignment_id = ? AND exercise_set_logs_exercise_id = ? AND exercise_set_logs_set_number = ?",
				schoolID, as.ProgramAssignmentID, req.ExerciseSetLogsExerciseID, req.ExerciseSetLogsSetNumber).
			First(&log).Error
		switch {
		case err == nil:
			// timpa isi log lama
		case errors.Is(err, gorm.ErrRecordNotFound):
			log = m.ExerciseSetLogModel{
				ExerciseSetLogsSchoolID:     schoolID,
				ExerciseSetLogsAssignmentID: as.ProgramAssignmentID,
				ExerciseSetLogsExerciseID:   req.ExerciseSetLogsExerciseID,
				ExerciseSetLogsSetNumber:    req.ExerciseSetLogsSetNumber,
			}
		default:
			return err
		}

		log.ExerciseSetLogsReps = req.ExerciseSetLogsReps
		log.ExerciseSetLogsWeight = req.ExerciseSetLogsWeight
		log.ExerciseSetLogsIsCompleted = req.ExerciseSetLogsIsCompleted
		if err := tx.Save(&log).Error; err != nil {
			return err
		}

		_, err = svc.RefreshAssignmentStatus(tx, schoolID, as)
		return err
	})
	if err != nil {
		return helper.WritePGError(c, err)
	}

	cnt, err := svc.CountUnits(ctl.DB.WithContext(c.Context()), schoolID, as)
	if err != nil {
		return helper.WritePGError(c, err)
	}
	return helper.JsonOK(c, "Log berhasil disimpan", fiber.Map{
		"log":        d.NewSetLogResponse(&log),
		"assignment": d.NewAssignmentResponse(as, cnt),
	})
}
