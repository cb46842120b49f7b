// file: internals/features/athletics/programs/dto/training_program_dto.go
package dto

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	m "atletaku_backend/internals/features/athletics/programs/model"
)

/* =======================================================
   Request DTOs
   ======================================================= */

type CreateExerciseRequest struct {
	ProgramExercisesName     string `json:"program_exercises_name"      validate:"required,max=160"`
	ProgramExercisesSetCount int    `json:"program_exercises_set_count" validate:"required,gte=1,lte=50"`
}

type CreateTrainingProgramRequest struct {
	TrainingProgramsName  string                  `json:"training_programs_name" validate:"required,max=160"`
	TrainingProgramsNotes *string                 `json:"training_programs_notes,omitempty"`
	TrainingProgramsTags  []string                `json:"training_programs_tags,omitempty" validate:"omitempty,dive,max=40"`
	Exercises             []CreateExerciseRequest `json:"exercises" validate:"required,min=1,dive"`
}

func (r *CreateTrainingProgramRequest) ApplyToModel(dst *m.TrainingProgramModel, coachID uuid.UUID) error {
	dst.TrainingProgramsCoachID = coachID
	dst.TrainingProgramsName = strings.TrimSpace(r.TrainingProgramsName)
	dst.TrainingProgramsNotes = strPtrOrNil(r.TrainingProgramsNotes)

	if len(r.TrainingProgramsTags) > 0 {
		raw, err := json.Marshal(r.TrainingProgramsTags)
		if err != nil {
			return fmt.Errorf("training_programs_tags: %w", err)
		}
		dst.TrainingProgramsTags = datatypes.JSON(raw)
	}
	return nil
}

type PatchTrainingProgramRequest struct {
	TrainingProgramsName  *string  `json:"training_programs_name,omitempty" validate:"omitempty,max=160"`
	TrainingProgramsNotes *string  `json:"training_programs_notes,omitempty"`
	TrainingProgramsTags  []string `json:"training_programs_tags,omitempty" validate:"omitempty,dive,max=40"`
}

func (p *PatchTrainingProgramRequest) ApplyPatch(dst *m.TrainingProgramModel) error {
	if p.TrainingProgramsName != nil {
		dst.TrainingProgramsName = strings.TrimSpace(*p.TrainingProgramsName)
	}
	if p.TrainingProgramsNotes != nil {
		dst.TrainingProgramsNotes = strPtrOrNil(p.TrainingProgramsNotes)
	}
	if p.TrainingProgramsTags != nil {
		raw, err := json.Marshal(p.TrainingProgramsTags)
		if err != nil {
			return fmt.Errorf("training_programs_tags: %w", err)
		}
		dst.TrainingProgramsTags = datatypes.JSON(raw)
	}
	return nil
}

/* =======================================================
   Response DTOs
   ======================================================= */

type ExerciseResponse struct {
	ProgramExerciseID        uuid.UUID `json:"program_exercise_id"`
	ProgramExercisesName     string    `json:"program_exercises_name"`
	ProgramExercisesSetCount int       `json:"program_exercises_set_count"`
	ProgramExercisesPosition int       `json:"program_exercises_position"`
}

func NewExerciseResponse(src *m.ProgramExerciseModel) ExerciseResponse {
	return ExerciseResponse{
		ProgramExerciseID:        src.ProgramExerciseID,
		ProgramExercisesName:     src.ProgramExercisesName,
		ProgramExercisesSetCount: src.ProgramExercisesSetCount,
		ProgramExercisesPosition: src.ProgramExercisesPosition,
	}
}

type TrainingProgramResponse struct {
	TrainingProgramID         uuid.UUID          `json:"training_program_id"`
	TrainingProgramsSchoolID  uuid.UUID          `json:"training_programs_school_id"`
	TrainingProgramsCoachID   uuid.UUID          `json:"training_programs_coach_id"`
	TrainingProgramsName      string             `json:"training_programs_name"`
	TrainingProgramsNotes     *string            `json:"training_programs_notes,omitempty"`
	TrainingProgramsTags      []string           `json:"training_programs_tags,omitempty"`
	TrainingProgramsCreatedAt time.Time          `json:"training_programs_created_at"`
	TrainingProgramsUpdatedAt time.Time          `json:"training_programs_updated_at"`
	Exercises                 []ExerciseResponse `json:"exercises,omitempty"`
}

func NewTrainingProgramResponse(src *m.TrainingProgramModel) TrainingProgramResponse {
	resp := TrainingProgramResponse{
		TrainingProgramID:         src.TrainingProgramID,
		TrainingProgramsSchoolID:  src.TrainingProgramsSchoolID,
		TrainingProgramsCoachID:   src.TrainingProgramsCoachID,
		TrainingProgramsName:      src.TrainingProgramsName,
		TrainingProgramsNotes:     src.TrainingProgramsNotes,
		TrainingProgramsCreatedAt: src.TrainingProgramsCreatedAt,
		TrainingProgramsUpdatedAt: src.TrainingProgramsUpdatedAt,
	}
	if len(src.TrainingProgramsTags) > 0 {
		_ = json.Unmarshal(src.TrainingProgramsTags, &resp.TrainingProgramsTags)
	}
	return resp
}

func strPtrOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	t := strings.TrimSpace(*s)
	if t == "" {
		return nil
	}
	return &t
}
